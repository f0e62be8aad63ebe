package render

// Enum is a GL enumeration constant, as reported by the driver for
// shader kinds, status queries, and uniform type tags.
type Enum uint32

// Shader kinds and query parameters.
const (
	FRAGMENT_SHADER Enum = 0x8B30
	VERTEX_SHADER   Enum = 0x8B31

	COMPILE_STATUS    Enum = 0x8B81
	LINK_STATUS       Enum = 0x8B82
	ACTIVE_UNIFORMS   Enum = 0x8B86
	ACTIVE_ATTRIBUTES Enum = 0x8B89
)

// Uniform type tags reported by active-uniform introspection.
const (
	FLOAT      Enum = 0x1406
	INT        Enum = 0x1404
	BOOL       Enum = 0x8B56
	FLOAT_VEC2 Enum = 0x8B50
	FLOAT_VEC3 Enum = 0x8B51
	FLOAT_VEC4 Enum = 0x8B52
	INT_VEC2   Enum = 0x8B53
	INT_VEC3   Enum = 0x8B54
	INT_VEC4   Enum = 0x8B55
	BOOL_VEC2  Enum = 0x8B57
	BOOL_VEC3  Enum = 0x8B58
	BOOL_VEC4  Enum = 0x8B59
	FLOAT_MAT2 Enum = 0x8B5A
	FLOAT_MAT3 Enum = 0x8B5B
	FLOAT_MAT4 Enum = 0x8B5C

	SAMPLER_2D   Enum = 0x8B5E
	SAMPLER_CUBE Enum = 0x8B60
)

// ShaderID is a driver-side shader object handle.
type ShaderID uint32

// ProgramID is a driver-side linked program handle.
type ProgramID uint32

// ActiveInfo describes one active attribute or uniform reported by
// program introspection. Size is the declared array size (1 for
// non-array variables); for array uniforms Name carries the driver's
// trailing "[0]" suffix.
type ActiveInfo struct {
	Name string
	Type Enum
	Size int
}

// Driver is the graphics-context surface the library needs: shader
// compilation, program linking, introspection, and the uniform upload
// family. It is passed explicitly into program construction; there is
// no ambient global context. backend/opengl provides the real
// implementation over go-gl.
type Driver interface {
	CreateShader(kind Enum) ShaderID
	ShaderSource(s ShaderID, src string)
	CompileShader(s ShaderID)
	ShaderParameter(s ShaderID, pname Enum) int
	ShaderInfoLog(s ShaderID) string
	DeleteShader(s ShaderID)

	CreateProgram() ProgramID
	AttachShader(p ProgramID, s ShaderID)
	LinkProgram(p ProgramID)
	ProgramParameter(p ProgramID, pname Enum) int
	ProgramInfoLog(p ProgramID) string
	DeleteProgram(p ProgramID)
	UseProgram(p ProgramID)

	ActiveAttrib(p ProgramID, index int) ActiveInfo
	ActiveUniform(p ProgramID, index int) ActiveInfo
	AttribLocation(p ProgramID, name string) int32
	UniformLocation(p ProgramID, name string) int32

	Uniform1f(loc int32, v float32)
	Uniform1i(loc int32, v int32)
	Uniform1fv(loc int32, v []float32)
	Uniform2fv(loc int32, v []float32)
	Uniform3fv(loc int32, v []float32)
	Uniform4fv(loc int32, v []float32)
	Uniform1iv(loc int32, v []int32)
	Uniform2iv(loc int32, v []int32)
	Uniform3iv(loc int32, v []int32)
	Uniform4iv(loc int32, v []int32)
	UniformMatrix2fv(loc int32, transpose bool, v []float32)
	UniformMatrix3fv(loc int32, transpose bool, v []float32)
	UniformMatrix4fv(loc int32, transpose bool, v []float32)

	// Extensions reports the extension names the context supports.
	// The preprocessor uses it to resolve HAS_EXTENSION() macros.
	Extensions() []string
}
