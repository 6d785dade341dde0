package main

// Platform is the windowing library. Terminate may be called even when Init
// failed.
type Platform interface {
	Init(conf ContextConfig) error
	CreateWindow(conf WindowConfig) (Window, error)
	Terminate()
}

// Window is a window whose GL context is current on the calling thread.
type Window interface {
	SetStickyKeys()
	EscapePressed() bool
	ShouldClose() bool
	PollEvents()
	SwapBuffers()
	FramebufferSize() (width, height int)
	// Time returns seconds since the platform was initialized.
	Time() float64
}

// stickyKey keeps a press visible to the next query even when the key was
// released between two polls.
type stickyKey struct {
	sticky  bool
	down    bool
	latched bool
}

func (k *stickyKey) press() {
	k.down = true
	if k.sticky {
		k.latched = true
	}
}

func (k *stickyKey) release() {
	k.down = false
}

func (k *stickyKey) pressed() bool {
	p := k.down || k.latched
	k.latched = false
	return p
}
