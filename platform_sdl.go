//go:build sdl

package main

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

const pollEventsCall = "SDL_PollEvent"

type glAttribute struct {
	attr  sdl.GLattr
	value int
}

type sdlPlatform struct {
	windows []*sdlWindow
}

func newPlatform() Platform {
	return &sdlPlatform{}
}

func (p *sdlPlatform) Init(conf ContextConfig) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("%w: %v", ErrPlatformInit, err)
	}

	attrs := []glAttribute{
		{sdl.GL_CONTEXT_MAJOR_VERSION, conf.Major},
		{sdl.GL_CONTEXT_MINOR_VERSION, conf.Minor},
	}
	if conf.CoreProfile {
		attrs = append(attrs, glAttribute{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE})
	}
	if conf.ForwardCompatible {
		attrs = append(attrs, glAttribute{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG})
	}
	if conf.Samples > 0 {
		attrs = append(attrs,
			glAttribute{sdl.GL_MULTISAMPLEBUFFERS, 1},
			glAttribute{sdl.GL_MULTISAMPLESAMPLES, conf.Samples},
		)
	}
	for _, a := range attrs {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			return fmt.Errorf("%w: %v", ErrPlatformInit, err)
		}
	}
	return nil
}

func (p *sdlPlatform) CreateWindow(conf WindowConfig) (Window, error) {
	var flags uint32 = sdl.WINDOW_OPENGL
	if conf.Visible {
		flags |= sdl.WINDOW_SHOWN
	} else {
		flags |= sdl.WINDOW_HIDDEN
	}

	win, err := sdl.CreateWindow(conf.Title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(conf.Width), int32(conf.Height), flags)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWindowCreate, err)
	}

	context, err := win.GLCreateContext()
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("%w: %v", ErrWindowCreate, err)
	}
	if err := win.GLMakeCurrent(context); err != nil {
		sdl.GLDeleteContext(context)
		win.Destroy()
		return nil, fmt.Errorf("%w: %v", ErrWindowCreate, err)
	}

	sw := &sdlWindow{window: win, context: context}
	p.windows = append(p.windows, sw)
	return sw, nil
}

func (p *sdlPlatform) Terminate() {
	for _, sw := range p.windows {
		sdl.GLDeleteContext(sw.context)
		sw.window.Destroy()
	}
	p.windows = nil
	sdl.Quit()
}

type sdlWindow struct {
	window      *sdl.Window
	context     sdl.GLContext
	escape      stickyKey
	shouldClose bool
}

func (sw *sdlWindow) SetStickyKeys() {
	sw.escape.sticky = true
}

func (sw *sdlWindow) EscapePressed() bool {
	return sw.escape.pressed()
}

func (sw *sdlWindow) ShouldClose() bool {
	return sw.shouldClose
}

func (sw *sdlWindow) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			sw.shouldClose = true
		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_CLOSE {
				sw.shouldClose = true
			}
		case *sdl.KeyboardEvent:
			if e.Keysym.Sym != sdl.K_ESCAPE {
				continue
			}
			if e.Type == sdl.KEYDOWN {
				sw.escape.press()
			} else {
				sw.escape.release()
			}
		}
	}
}

func (sw *sdlWindow) SwapBuffers() {
	sw.window.GLSwap()
}

func (sw *sdlWindow) FramebufferSize() (int, int) {
	w, h := sw.window.GLGetDrawableSize()
	return int(w), int(h)
}

func (sw *sdlWindow) Time() float64 {
	return float64(sdl.GetTicks()) / 1000
}
