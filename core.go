package main

import "log/slog"

type RenderInput struct {
	conf     *Config
	log      *slog.Logger
	platform Platform
	gfx      Graphics

	window     Window
	winWidth   int
	winHeight  int
	delta      float64
	terminated bool
}

func NewRenderInput(conf *Config, platform Platform, gfx Graphics, log *slog.Logger) *RenderInput {
	return &RenderInput{
		conf:     conf,
		log:      log,
		platform: platform,
		gfx:      gfx,
	}
}

// Run initializes, loops until escape or a close request and always
// terminates the platform once before returning.
func Run(in *RenderInput) error {
	defer CoreCleanup(in)

	if err := CoreInit(in); err != nil {
		return err
	}
	return CoreRun(in)
}

func CoreInit(in *RenderInput) error {
	if err := in.platform.Init(in.conf.Context); err != nil {
		return err
	}

	window, err := in.platform.CreateWindow(in.conf.Window)
	if err != nil {
		return err
	}
	in.window = window

	if err := in.gfx.Init(); err != nil {
		return err
	}

	renderer, version := in.gfx.Version()
	in.log.Info("opengl initialized", "renderer", renderer, "version", version)

	in.window.SetStickyKeys()

	in.winWidth, in.winHeight = in.window.FramebufferSize()
	in.gfx.Viewport(0, 0, int32(in.winWidth), int32(in.winHeight))
	return nil
}

func CoreRun(in *RenderInput) error {
	scene, err := NewTriangleScene(in.gfx, in.conf.Render.ClearColor)
	if err != nil {
		return err
	}
	defer scene.Destroy()

	lastTime := in.window.Time()
	timer := lastTime
	frameCounter := 0

	for !in.window.EscapePressed() && !in.window.ShouldClose() {
		currentTime := in.window.Time()
		in.delta = currentTime - lastTime
		lastTime = currentTime

		in.window.PollEvents()
		if err := checkError(in.gfx, pollEventsCall); err != nil {
			return err
		}

		if err := scene.render(); err != nil {
			return err
		}

		in.window.SwapBuffers()
		frameCounter++

		if currentTime-timer >= 1.0 {
			in.log.Debug("frame stats", "fps", frameCounter, "delta", in.delta)
			timer = currentTime
			frameCounter = 0
		}
	}
	in.log.Info("render loop stopped")
	return nil
}

func CoreCleanup(in *RenderInput) {
	if in.terminated {
		return
	}
	in.terminated = true
	in.platform.Terminate()
}
