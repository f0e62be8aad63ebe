package render

import (
	"context"
	"fmt"
	"strings"
)

// UniformKind classifies an active uniform into one of the supported
// GLSL shapes. The classification is closed: a type tag outside this
// set aborts program construction with UnknownUniformTypeError.
type UniformKind int

const (
	KindFloat UniformKind = iota // scalar float
	KindInt                      // scalar int, bool, or sampler
	KindFloatVec2
	KindFloatVec3
	KindFloatVec4
	KindIntVec2 // int or bool vector
	KindIntVec3
	KindIntVec4
	KindMat2
	KindMat3
	KindMat4
)

// classifyUniform maps a driver-reported type tag to a UniformKind.
// Bools ride the int paths and samplers are set as texture unit
// indices, so both collapse onto the int kinds.
func classifyUniform(t Enum) (UniformKind, bool) {
	switch t {
	case FLOAT:
		return KindFloat, true
	case INT, BOOL, SAMPLER_2D, SAMPLER_CUBE:
		return KindInt, true
	case FLOAT_VEC2:
		return KindFloatVec2, true
	case FLOAT_VEC3:
		return KindFloatVec3, true
	case FLOAT_VEC4:
		return KindFloatVec4, true
	case INT_VEC2, BOOL_VEC2:
		return KindIntVec2, true
	case INT_VEC3, BOOL_VEC3:
		return KindIntVec3, true
	case INT_VEC4, BOOL_VEC4:
		return KindIntVec4, true
	case FLOAT_MAT2:
		return KindMat2, true
	case FLOAT_MAT3:
		return KindMat3, true
	case FLOAT_MAT4:
		return KindMat4, true
	default:
		return 0, false
	}
}

// Components returns the number of scalar components one element of
// the kind occupies (16 for a 4x4 matrix, 3 for a vec3, 1 for scalars).
func (k UniformKind) Components() int {
	switch k {
	case KindFloatVec2, KindIntVec2:
		return 2
	case KindFloatVec3, KindIntVec3:
		return 3
	case KindFloatVec4, KindIntVec4:
		return 4
	case KindMat2:
		return 4
	case KindMat3:
		return 9
	case KindMat4:
		return 16
	default:
		return 1
	}
}

// UniformSetter pushes a value to one uniform. Accepted inputs depend
// on the uniform's kind: Go numerics for scalars, []float32/[]float64
// or a Flattener for float vectors and matrices, []int32/[]int for int
// vectors. A value whose component count does not match the uniform's
// shape is rejected.
//
// Vector and matrix setters reuse an internal scratch buffer across
// calls; they are not safe for concurrent use.
type UniformSetter func(value any) error

// Program wraps a linked driver-side program handle together with its
// introspected attribute locations and per-uniform setters. It is
// immutable after construction except for values pushed through the
// setters.
type Program struct {
	driver  Driver
	handle  ProgramID
	attribs map[string]int32
	setters map[string]UniformSetter
}

// NewProgram compiles both shader stages, links them, and builds the
// attribute and uniform-setter mappings from the driver's introspection
// results. Array uniforms (reported as "name[0]") are registered once
// under their base name and use the array upload calls.
//
// Construction either returns a fully usable Program or an error;
// there is no partial-success state. Errors are *ShaderCompileError,
// *ProgramLinkError, or *UnknownUniformTypeError.
func NewProgram(d Driver, vertexSrc, fragmentSrc string) (*Program, error) {
	vert, err := compileShader(d, VERTEX_SHADER, vertexSrc)
	if err != nil {
		return nil, err
	}
	frag, err := compileShader(d, FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		d.DeleteShader(vert)
		return nil, err
	}

	handle := d.CreateProgram()
	d.AttachShader(handle, vert)
	d.AttachShader(handle, frag)
	d.LinkProgram(handle)

	// Shaders are owned by the program once linked.
	d.DeleteShader(vert)
	d.DeleteShader(frag)

	if d.ProgramParameter(handle, LINK_STATUS) == 0 {
		log := d.ProgramInfoLog(handle)
		d.DeleteProgram(handle)
		return nil, &ProgramLinkError{Log: log}
	}

	p := &Program{
		driver:  d,
		handle:  handle,
		attribs: make(map[string]int32),
		setters: make(map[string]UniformSetter),
	}

	numAttribs := d.ProgramParameter(handle, ACTIVE_ATTRIBUTES)
	for i := 0; i < numAttribs; i++ {
		info := d.ActiveAttrib(handle, i)
		p.attribs[info.Name] = d.AttribLocation(handle, info.Name)
	}

	numUniforms := d.ProgramParameter(handle, ACTIVE_UNIFORMS)
	for i := 0; i < numUniforms; i++ {
		info := d.ActiveUniform(handle, i)
		kind, ok := classifyUniform(info.Type)
		if !ok {
			d.DeleteProgram(handle)
			return nil, &UnknownUniformTypeError{Name: info.Name, Type: info.Type}
		}

		// Array detection is by name alone: the driver reports array
		// uniforms as "name[0]" regardless of declared size, so a
		// size-1 array still takes the array call path.
		name := info.Name
		isArray := strings.HasSuffix(name, "[0]")
		if isArray {
			name = strings.TrimSuffix(name, "[0]")
		}
		loc := d.UniformLocation(handle, info.Name)
		p.setters[name] = newSetter(d, loc, kind, info.Size, isArray)
	}

	return p, nil
}

// LoadProgram preprocesses both shader sources through pp (resolving
// includes and extension macros) and constructs a Program from the
// result. The context bounds the source fetches.
func LoadProgram(ctx context.Context, d Driver, pp *Preprocessor, vertexURL, fragmentURL string) (*Program, error) {
	vsrc, err := pp.Process(ctx, vertexURL)
	if err != nil {
		return nil, err
	}
	fsrc, err := pp.Process(ctx, fragmentURL)
	if err != nil {
		return nil, err
	}
	return NewProgram(d, vsrc, fsrc)
}

// Handle returns the driver-side program handle.
func (p *Program) Handle() ProgramID { return p.handle }

// Use makes the program current on its driver.
func (p *Program) Use() { p.driver.UseProgram(p.handle) }

// AttribLocation returns the bound location of an active attribute.
// The second result is false if the attribute is not active.
func (p *Program) AttribLocation(name string) (int32, bool) {
	loc, ok := p.attribs[name]
	return loc, ok
}

// Attributes returns the attribute name to location mapping. The map
// is shared; callers must not modify it.
func (p *Program) Attributes() map[string]int32 { return p.attribs }

// Setter returns the uniform setter registered under name. Array
// uniforms are registered under their base name without the "[0]"
// suffix. The second result is false if no such active uniform exists.
func (p *Program) Setter(name string) (UniformSetter, bool) {
	s, ok := p.setters[name]
	return s, ok
}

// SetUniform pushes a value to the named uniform.
func (p *Program) SetUniform(name string, value any) error {
	s, ok := p.setters[name]
	if !ok {
		return fmt.Errorf("no active uniform %q", name)
	}
	return s(value)
}

// SetUniforms pushes every entry of values to its uniform, ignoring
// names that are not active. Useful for applying shared material or
// per-frame blocks where not every program uses every value.
func (p *Program) SetUniforms(values map[string]any) error {
	for name, v := range values {
		s, ok := p.setters[name]
		if !ok {
			continue
		}
		if err := s(v); err != nil {
			return fmt.Errorf("uniform %q: %w", name, err)
		}
	}
	return nil
}

// Delete releases the driver-side program object.
func (p *Program) Delete() {
	if p.handle != 0 {
		p.driver.DeleteProgram(p.handle)
		p.handle = 0
	}
}

// compileShader compiles one stage and returns its handle, or a
// *ShaderCompileError carrying the driver's info log.
func compileShader(d Driver, stage Enum, src string) (ShaderID, error) {
	s := d.CreateShader(stage)
	d.ShaderSource(s, src)
	d.CompileShader(s)
	if d.ShaderParameter(s, COMPILE_STATUS) == 0 {
		log := d.ShaderInfoLog(s)
		d.DeleteShader(s)
		return 0, &ShaderCompileError{Stage: stage, Log: log}
	}
	return s, nil
}

// newSetter builds the setter closure for one uniform. Non-scalar and
// array setters allocate a scratch buffer sized exactly to the
// uniform's total component count, reused on every call.
func newSetter(d Driver, loc int32, kind UniformKind, size int, isArray bool) UniformSetter {
	count := kind.Components()
	if isArray {
		count *= size
	}

	switch kind {
	case KindFloat:
		if isArray {
			scratch := make([]float32, count)
			return func(v any) error {
				if err := fillFloats(scratch, v); err != nil {
					return err
				}
				d.Uniform1fv(loc, scratch)
				return nil
			}
		}
		return func(v any) error {
			f, err := toFloat32(v)
			if err != nil {
				return err
			}
			d.Uniform1f(loc, f)
			return nil
		}

	case KindInt:
		if isArray {
			scratch := make([]int32, count)
			return func(v any) error {
				if err := fillInts(scratch, v); err != nil {
					return err
				}
				d.Uniform1iv(loc, scratch)
				return nil
			}
		}
		return func(v any) error {
			i, err := toInt32(v)
			if err != nil {
				return err
			}
			d.Uniform1i(loc, i)
			return nil
		}

	case KindFloatVec2, KindFloatVec3, KindFloatVec4:
		upload := pickFloatVec(d, kind)
		scratch := make([]float32, count)
		return func(v any) error {
			if err := fillFloats(scratch, v); err != nil {
				return err
			}
			upload(loc, scratch)
			return nil
		}

	case KindIntVec2, KindIntVec3, KindIntVec4:
		upload := pickIntVec(d, kind)
		scratch := make([]int32, count)
		return func(v any) error {
			if err := fillInts(scratch, v); err != nil {
				return err
			}
			upload(loc, scratch)
			return nil
		}

	default: // KindMat2, KindMat3, KindMat4
		upload := pickMatrix(d, kind)
		scratch := make([]float32, count)
		return func(v any) error {
			if err := fillFloats(scratch, v); err != nil {
				return err
			}
			// Input is already column-major; the driver must not
			// transpose.
			upload(loc, false, scratch)
			return nil
		}
	}
}

func pickFloatVec(d Driver, kind UniformKind) func(int32, []float32) {
	switch kind {
	case KindFloatVec2:
		return d.Uniform2fv
	case KindFloatVec3:
		return d.Uniform3fv
	default:
		return d.Uniform4fv
	}
}

func pickIntVec(d Driver, kind UniformKind) func(int32, []int32) {
	switch kind {
	case KindIntVec2:
		return d.Uniform2iv
	case KindIntVec3:
		return d.Uniform3iv
	default:
		return d.Uniform4iv
	}
}

func pickMatrix(d Driver, kind UniformKind) func(int32, bool, []float32) {
	switch kind {
	case KindMat2:
		return d.UniformMatrix2fv
	case KindMat3:
		return d.UniformMatrix3fv
	default:
		return d.UniformMatrix4fv
	}
}

// fillFloats overwrites dst with the flattened form of v. The value's
// component count must match len(dst) exactly, which guarantees no
// stale components survive from a previous call.
func fillFloats(dst []float32, v any) error {
	switch src := v.(type) {
	case Flattener:
		return copyFloats(dst, src.Flatten())
	case []float32:
		return copyFloats(dst, src)
	case []float64:
		if len(src) != len(dst) {
			return fmt.Errorf("value has %d components, uniform expects %d", len(src), len(dst))
		}
		for i, f := range src {
			dst[i] = float32(f)
		}
		return nil
	default:
		return fmt.Errorf("cannot use %T as a float uniform value", v)
	}
}

func copyFloats(dst, src []float32) error {
	if len(src) != len(dst) {
		return fmt.Errorf("value has %d components, uniform expects %d", len(src), len(dst))
	}
	copy(dst, src)
	return nil
}

// fillInts overwrites dst with the int form of v.
func fillInts(dst []int32, v any) error {
	switch src := v.(type) {
	case []int32:
		if len(src) != len(dst) {
			return fmt.Errorf("value has %d components, uniform expects %d", len(src), len(dst))
		}
		copy(dst, src)
		return nil
	case []int:
		if len(src) != len(dst) {
			return fmt.Errorf("value has %d components, uniform expects %d", len(src), len(dst))
		}
		for i, n := range src {
			dst[i] = int32(n)
		}
		return nil
	default:
		return fmt.Errorf("cannot use %T as an int uniform value", v)
	}
}

func toFloat32(v any) (float32, error) {
	switch n := v.(type) {
	case float32:
		return n, nil
	case float64:
		return float32(n), nil
	case int:
		return float32(n), nil
	case int32:
		return float32(n), nil
	default:
		return 0, fmt.Errorf("cannot use %T as a float uniform value", v)
	}
}

func toInt32(v any) (int32, error) {
	switch n := v.(type) {
	case int:
		return int32(n), nil
	case int32:
		return n, nil
	case int64:
		return int32(n), nil
	case uint32:
		return int32(n), nil
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("cannot use %T as an int uniform value", v)
	}
}
