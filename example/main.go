// Example renders a pulsing triangle driven entirely through uniform
// setters: the projection matrix, tint color, and time are pushed by
// name with no hand-written location plumbing. The fragment shader is
// assembled by the preprocessor from an embedded #include tree.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
package main

import (
	"context"
	"embed"
	"fmt"
	"os"
	"runtime"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/render"
	"github.com/go-theft-auto/render/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "render example"
)

//go:embed shaders
var shaderFS embed.FS

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	window, err := opengl.InitWindow(windowWidth, windowHeight, windowTitle)
	if err != nil {
		return err
	}
	defer window.Terminate()

	driver := opengl.NewDriver()

	pp := render.NewPreprocessor(
		render.FSFetcher{FS: shaderFS},
		render.WithExtensions(driver.Extensions()...),
	)
	prog, err := render.LoadProgram(context.Background(), driver, pp,
		"shaders/main.vert", "shaders/main.frag")
	if err != nil {
		return fmt.Errorf("build program: %w", err)
	}
	defer prog.Delete()

	// Triangle geometry in pixel coordinates.
	vertices := []float32{
		400, 120,
		160, 480,
		640, 480,
	}

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(unsafe.Sizeof(float32(0))),
		gl.Ptr(vertices), gl.STATIC_DRAW)

	posLoc, ok := prog.AttribLocation("position")
	if !ok {
		return fmt.Errorf("attribute %q not active", "position")
	}
	gl.VertexAttribPointerWithOffset(uint32(posLoc), 2, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(uint32(posLoc))
	gl.BindVertexArray(0)

	tint := render.Vec4{X: 1.0, Y: 0.55, Z: 0.1, W: 1.0}

	for !window.ShouldClose() {
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		prog.Use()
		err := prog.SetUniforms(map[string]any{
			"projection": render.Ortho(0, windowWidth, windowHeight, 0, -1, 1),
			"tint":       tint,
			"time":       float32(glfw.GetTime()),
		})
		if err != nil {
			return err
		}

		gl.BindVertexArray(vao)
		gl.DrawArrays(gl.TRIANGLES, 0, 3)
		gl.BindVertexArray(0)

		window.SwapBuffers()
	}

	return nil
}
