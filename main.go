package main

import (
	"log/slog"
	"os"
	"runtime"
)

func init() {
	// GLFW, SDL and the GL context are bound to the main thread.
	runtime.LockOSThread()
}

func main() {
	conf, err := LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	level, _ := conf.Log.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	renderInput := NewRenderInput(conf, newPlatform(), newGLGraphics(), logger)
	if err := Run(renderInput); err != nil {
		logger.Error("renderer stopped", "err", err)
		os.Exit(1)
	}
}
