/*
Package render provides shader program management for OpenGL: compile
and link shader stages, then drive every uniform through automatically
generated, type-checked setters instead of hand-written location
plumbing.

# Overview

Constructing a Program introspects the linked program's active
attributes and uniforms. Each uniform is classified by its declared
GLSL type and gets a setter closure that normalizes Go values (numbers,
slices, or anything implementing Flattener) into the exact buffer shape
the matching driver upload call requires. Array uniforms are detected
from the driver's "name[0]" reporting and use the array call variants.

Shader sources may be assembled by a Preprocessor, which resolves
#include "path" directives recursively through a Fetcher (HTTP or
fs.FS) and rewrites HAS_EXTENSION(name) macros from the driver's
extension list. Include cycles and unfetchable includes fail the build.

# Quick Start

	// Setup (backend/opengl provides the go-gl driver)
	driver := opengl.NewDriver()

	pp := render.NewPreprocessor(
	    render.FSFetcher{FS: shaderFS},
	    render.WithExtensions(driver.Extensions()...),
	)
	prog, err := render.LoadProgram(ctx, driver, pp, "shaders/main.vert", "shaders/main.frag")
	if err != nil {
	    // ShaderCompileError, ProgramLinkError, include errors...
	}

	// Per frame
	prog.Use()
	prog.SetUniform("projection", render.Ortho(0, w, h, 0, -1, 1))
	prog.SetUniform("tint", render.Vec4{1, 0.5, 0, 1})

A Program's setters reuse internal scratch buffers and are not safe for
concurrent use.
*/
package render
