package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// diagnostics receives the name of a call whose driver error is about to be
// reported.
var diagnostics io.Writer = os.Stdout

// GLError is a driver error code raised after an individual call.
type GLError struct {
	Call string
	Code uint32
}

func (e *GLError) Name() string {
	switch e.Code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	}
	return "unknown"
}

func (e *GLError) Error() string {
	return fmt.Sprintf("%s: GL error: 0x%x (%s)", e.Call, e.Code, e.Name())
}

// checkError turns the driver's pending error, if any, into a *GLError
// attributed to call.
func checkError(g Graphics, call string) error {
	code := g.GetError()
	if code == gl.NO_ERROR {
		return nil
	}
	fmt.Fprintf(diagnostics, "- %s\n", call)
	return &GLError{Call: call, Code: code}
}
