// Package opengl provides the OpenGL 4.1 driver backend for the
// render package, implemented over go-gl.
package opengl

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/render"
)

// Driver implements render.Driver against the current OpenGL context.
// A context must be current on the calling thread (see InitWindow).
type Driver struct{}

// NewDriver returns a Driver bound to the current OpenGL context.
func NewDriver() *Driver {
	return &Driver{}
}

func (*Driver) CreateShader(kind render.Enum) render.ShaderID {
	return render.ShaderID(gl.CreateShader(uint32(kind)))
}

func (*Driver) ShaderSource(s render.ShaderID, src string) {
	csource, free := gl.Strs(src + "\x00")
	gl.ShaderSource(uint32(s), 1, csource, nil)
	free()
}

func (*Driver) CompileShader(s render.ShaderID) {
	gl.CompileShader(uint32(s))
}

func (*Driver) ShaderParameter(s render.ShaderID, pname render.Enum) int {
	var v int32
	gl.GetShaderiv(uint32(s), uint32(pname), &v)
	return int(v)
}

func (*Driver) ShaderInfoLog(s render.ShaderID) string {
	var logLength int32
	gl.GetShaderiv(uint32(s), gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetShaderInfoLog(uint32(s), logLength, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

func (*Driver) DeleteShader(s render.ShaderID) {
	gl.DeleteShader(uint32(s))
}

func (*Driver) CreateProgram() render.ProgramID {
	return render.ProgramID(gl.CreateProgram())
}

func (*Driver) AttachShader(p render.ProgramID, s render.ShaderID) {
	gl.AttachShader(uint32(p), uint32(s))
}

func (*Driver) LinkProgram(p render.ProgramID) {
	gl.LinkProgram(uint32(p))
}

func (*Driver) ProgramParameter(p render.ProgramID, pname render.Enum) int {
	var v int32
	gl.GetProgramiv(uint32(p), uint32(pname), &v)
	return int(v)
}

func (*Driver) ProgramInfoLog(p render.ProgramID) string {
	var logLength int32
	gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetProgramInfoLog(uint32(p), logLength, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

func (*Driver) DeleteProgram(p render.ProgramID) {
	gl.DeleteProgram(uint32(p))
}

func (*Driver) UseProgram(p render.ProgramID) {
	gl.UseProgram(uint32(p))
}

func (*Driver) ActiveAttrib(p render.ProgramID, index int) render.ActiveInfo {
	var bufSize int32
	gl.GetProgramiv(uint32(p), gl.ACTIVE_ATTRIBUTE_MAX_LENGTH, &bufSize)
	name := make([]byte, bufSize+1)
	var length, size int32
	var xtype uint32
	gl.GetActiveAttrib(uint32(p), uint32(index), bufSize, &length, &size, &xtype, &name[0])
	return render.ActiveInfo{
		Name: string(name[:length]),
		Type: render.Enum(xtype),
		Size: int(size),
	}
}

func (*Driver) ActiveUniform(p render.ProgramID, index int) render.ActiveInfo {
	var bufSize int32
	gl.GetProgramiv(uint32(p), gl.ACTIVE_UNIFORM_MAX_LENGTH, &bufSize)
	name := make([]byte, bufSize+1)
	var length, size int32
	var xtype uint32
	gl.GetActiveUniform(uint32(p), uint32(index), bufSize, &length, &size, &xtype, &name[0])
	return render.ActiveInfo{
		Name: string(name[:length]),
		Type: render.Enum(xtype),
		Size: int(size),
	}
}

func (*Driver) AttribLocation(p render.ProgramID, name string) int32 {
	return gl.GetAttribLocation(uint32(p), gl.Str(name+"\x00"))
}

func (*Driver) UniformLocation(p render.ProgramID, name string) int32 {
	return gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00"))
}

func (*Driver) Uniform1f(loc int32, v float32) { gl.Uniform1f(loc, v) }
func (*Driver) Uniform1i(loc int32, v int32)   { gl.Uniform1i(loc, v) }

func (*Driver) Uniform1fv(loc int32, v []float32) {
	gl.Uniform1fv(loc, int32(len(v)), &v[0])
}

func (*Driver) Uniform2fv(loc int32, v []float32) {
	gl.Uniform2fv(loc, int32(len(v)/2), &v[0])
}

func (*Driver) Uniform3fv(loc int32, v []float32) {
	gl.Uniform3fv(loc, int32(len(v)/3), &v[0])
}

func (*Driver) Uniform4fv(loc int32, v []float32) {
	gl.Uniform4fv(loc, int32(len(v)/4), &v[0])
}

func (*Driver) Uniform1iv(loc int32, v []int32) {
	gl.Uniform1iv(loc, int32(len(v)), &v[0])
}

func (*Driver) Uniform2iv(loc int32, v []int32) {
	gl.Uniform2iv(loc, int32(len(v)/2), &v[0])
}

func (*Driver) Uniform3iv(loc int32, v []int32) {
	gl.Uniform3iv(loc, int32(len(v)/3), &v[0])
}

func (*Driver) Uniform4iv(loc int32, v []int32) {
	gl.Uniform4iv(loc, int32(len(v)/4), &v[0])
}

func (*Driver) UniformMatrix2fv(loc int32, transpose bool, v []float32) {
	gl.UniformMatrix2fv(loc, int32(len(v)/4), transpose, &v[0])
}

func (*Driver) UniformMatrix3fv(loc int32, transpose bool, v []float32) {
	gl.UniformMatrix3fv(loc, int32(len(v)/9), transpose, &v[0])
}

func (*Driver) UniformMatrix4fv(loc int32, transpose bool, v []float32) {
	gl.UniformMatrix4fv(loc, int32(len(v)/16), transpose, &v[0])
}

// Extensions reports the extension names the current context supports.
func (*Driver) Extensions() []string {
	var n int32
	gl.GetIntegerv(gl.NUM_EXTENSIONS, &n)
	exts := make([]string, 0, n)
	for i := int32(0); i < n; i++ {
		exts = append(exts, gl.GoStr(gl.GetStringi(gl.EXTENSIONS, uint32(i))))
	}
	return exts
}
