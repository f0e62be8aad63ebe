package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window wraps a GLFW window with a current OpenGL 4.1 core context.
type Window struct {
	*glfw.Window
}

// InitWindow initializes GLFW, creates a window with an OpenGL 4.1
// core profile context, makes the context current, and loads the GL
// function pointers. The caller must run on the main thread
// (runtime.LockOSThread) and call Terminate when done.
func InitWindow(width, height int, title string) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	return &Window{Window: window}, nil
}

// Terminate destroys the window and shuts down GLFW.
func (w *Window) Terminate() {
	w.Destroy()
	glfw.Terminate()
}
