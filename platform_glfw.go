//go:build !sdl

package main

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const pollEventsCall = "glfwPollEvents"

type glfwPlatform struct{}

func newPlatform() Platform {
	return glfwPlatform{}
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// glfwFailure turns a value recovered from a go-gl/glfw panic into an error
// wrapping sentinel. Panics that did not come from glfw are re-raised.
func glfwFailure(recovered any, sentinel error) error {
	if recovered == nil {
		return nil
	}
	if err, ok := recovered.(*glfw.Error); ok {
		return fmt.Errorf("%w: %v", sentinel, err)
	}
	panic(recovered)
}

// Init reports a platform error as a failed hint: glfw.Init only logs it and
// the next call panics with NotInitialized.
func (glfwPlatform) Init(conf ContextConfig) (err error) {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("%w: %v", ErrPlatformInit, err)
	}
	defer func() {
		if ferr := glfwFailure(recover(), ErrPlatformInit); ferr != nil {
			err = ferr
		}
	}()

	glfw.WindowHint(glfw.Samples, conf.Samples)
	glfw.WindowHint(glfw.ContextVersionMajor, conf.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, conf.Minor)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfwBool(conf.ForwardCompatible))
	if conf.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	}
	return nil
}

func (glfwPlatform) CreateWindow(conf WindowConfig) (win Window, err error) {
	defer func() {
		if ferr := glfwFailure(recover(), ErrWindowCreate); ferr != nil {
			win, err = nil, ferr
		}
	}()

	glfw.WindowHint(glfw.Visible, glfwBool(conf.Visible))

	w, err := glfw.CreateWindow(conf.Width, conf.Height, conf.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWindowCreate, err)
	}
	if w == nil {
		return nil, fmt.Errorf("%w: no window returned", ErrWindowCreate)
	}
	w.MakeContextCurrent()
	return &glfwWindow{w: w}, nil
}

func (glfwPlatform) Terminate() {
	glfw.Terminate()
}

type glfwWindow struct {
	w *glfw.Window
}

func (gw *glfwWindow) SetStickyKeys() {
	gw.w.SetInputMode(glfw.StickyKeysMode, glfw.True)
}

func (gw *glfwWindow) EscapePressed() bool {
	return gw.w.GetKey(glfw.KeyEscape) == glfw.Press
}

func (gw *glfwWindow) ShouldClose() bool {
	return gw.w.ShouldClose()
}

func (gw *glfwWindow) PollEvents() {
	glfw.PollEvents()
}

func (gw *glfwWindow) SwapBuffers() {
	gw.w.SwapBuffers()
}

func (gw *glfwWindow) FramebufferSize() (int, int) {
	return gw.w.GetFramebufferSize()
}

func (gw *glfwWindow) Time() float64 {
	return glfw.GetTime()
}
