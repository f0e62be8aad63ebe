package render

import (
	"fmt"
	"strings"
)

// ShaderCompileError reports a shader stage that failed to compile,
// including the driver's info log.
type ShaderCompileError struct {
	Stage Enum // VERTEX_SHADER or FRAGMENT_SHADER
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", stageName(e.Stage), e.Log)
}

// ProgramLinkError reports a program that failed to link, including
// the driver's info log.
type ProgramLinkError struct {
	Log string
}

func (e *ProgramLinkError) Error() string {
	return fmt.Sprintf("shader program linking failed: %s", e.Log)
}

// UnknownUniformTypeError reports an active uniform whose type tag
// matches no supported kind. Program construction aborts rather than
// silently skipping the uniform.
type UnknownUniformTypeError struct {
	Name string
	Type Enum
}

func (e *UnknownUniformTypeError) Error() string {
	return fmt.Sprintf("uniform %q has unsupported type 0x%04X", e.Name, uint32(e.Type))
}

// RecursiveIncludeError reports an include directive that re-enters a
// path already on the active inclusion chain.
type RecursiveIncludeError struct {
	Path  string
	Chain []string
}

func (e *RecursiveIncludeError) Error() string {
	return fmt.Sprintf("recursive include of %q (chain: %s)", e.Path, strings.Join(e.Chain, " -> "))
}

// IncludeLoadError reports an included source that could not be
// fetched.
type IncludeLoadError struct {
	Path string
	Err  error
}

func (e *IncludeLoadError) Error() string {
	return fmt.Sprintf("cannot load include %q: %v", e.Path, e.Err)
}

func (e *IncludeLoadError) Unwrap() error { return e.Err }

func stageName(stage Enum) string {
	switch stage {
	case VERTEX_SHADER:
		return "vertex"
	case FRAGMENT_SHADER:
		return "fragment"
	default:
		return fmt.Sprintf("stage(0x%04X)", uint32(stage))
	}
}
