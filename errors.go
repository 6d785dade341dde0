package main

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrPlatformInit  = errors.New("failed to initialize windowing library")
	ErrWindowCreate  = errors.New("failed to open window. If you have an Intel GPU, they are not 3.3 compatible. Try the 2.1 version of the tutorials")
	ErrLoaderInit    = errors.New("failed to initialize OpenGL function loader")
)

// ShaderError reports a shader stage that could not be created or compiled.
type ShaderError struct {
	Stage ShaderStage
	Log   string
}

func (e *ShaderError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, e.Log)
}

// LinkError carries the driver's info log of a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "program linking failed: " + e.Log
}
