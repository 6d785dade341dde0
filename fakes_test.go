package main

import (
	"io"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeGraphics records every call by name and hands out increasing handles.
type fakeGraphics struct {
	calls      []string
	nextHandle uint32

	initErr           error
	createShaderFails bool
	compileFails      map[ShaderStage]bool
	linkFails         bool

	// errAfter names the call after which GetError reports errCode once.
	errAfter string
	errCode  uint32
	pending  uint32

	shaderStages   map[uint32]ShaderStage
	deletedShaders []uint32
	attached       []uint32
	viewport       [4]int32
	bufferData     []float32
	attribIndex    uint32
	attribSize     int32
	attribStride   int32
	clearColor     mgl32.Vec4
	drawFirst      int32
	drawCount      int32
}

func newFakeGraphics() *fakeGraphics {
	return &fakeGraphics{
		compileFails: map[ShaderStage]bool{},
		shaderStages: map[uint32]ShaderStage{},
	}
}

func (f *fakeGraphics) record(call string) {
	f.calls = append(f.calls, call)
	if f.errAfter == call {
		f.pending = f.errCode
	}
}

func (f *fakeGraphics) handle() uint32 {
	f.nextHandle++
	return f.nextHandle
}

func (f *fakeGraphics) Init() error {
	f.record("Init")
	return f.initErr
}

func (f *fakeGraphics) Version() (string, string) {
	return "fake renderer", "3.3.0 fake"
}

func (f *fakeGraphics) GetError() uint32 {
	code := f.pending
	f.pending = 0
	return code
}

func (f *fakeGraphics) Viewport(x, y, width, height int32) {
	f.record("Viewport")
	f.viewport = [4]int32{x, y, width, height}
}

func (f *fakeGraphics) CreateShader(stage ShaderStage) uint32 {
	f.record("CreateShader")
	if f.createShaderFails {
		return 0
	}
	h := f.handle()
	f.shaderStages[h] = stage
	return h
}

func (f *fakeGraphics) ShaderSource(shader uint32, source string) { f.record("ShaderSource") }
func (f *fakeGraphics) CompileShader(shader uint32)                { f.record("CompileShader") }

func (f *fakeGraphics) ShaderCompiled(shader uint32) bool {
	return !f.compileFails[f.shaderStages[shader]]
}

func (f *fakeGraphics) ShaderInfoLog(shader uint32) string {
	return "0:3(2): error: syntax error"
}

func (f *fakeGraphics) DeleteShader(shader uint32) {
	f.record("DeleteShader")
	f.deletedShaders = append(f.deletedShaders, shader)
}

func (f *fakeGraphics) CreateProgram() uint32 {
	f.record("CreateProgram")
	return f.handle()
}

func (f *fakeGraphics) AttachShader(program, shader uint32) {
	f.record("AttachShader")
	f.attached = append(f.attached, shader)
}

func (f *fakeGraphics) LinkProgram(program uint32)        { f.record("LinkProgram") }
func (f *fakeGraphics) ProgramLinked(program uint32) bool { return !f.linkFails }

func (f *fakeGraphics) ProgramInfoLog(program uint32) string {
	return "error: unresolved varying"
}

func (f *fakeGraphics) UseProgram(program uint32)    { f.record("UseProgram") }
func (f *fakeGraphics) DeleteProgram(program uint32) { f.record("DeleteProgram") }

func (f *fakeGraphics) GenVertexArray() uint32 {
	f.record("GenVertexArray")
	return f.handle()
}

func (f *fakeGraphics) BindVertexArray(vao uint32) {
	if vao == 0 {
		f.record("UnbindVertexArray")
		return
	}
	f.record("BindVertexArray")
}

func (f *fakeGraphics) DeleteVertexArray(vao uint32) { f.record("DeleteVertexArray") }

func (f *fakeGraphics) GenBuffer() uint32 {
	f.record("GenBuffer")
	return f.handle()
}

func (f *fakeGraphics) BindArrayBuffer(vbo uint32) {
	if vbo == 0 {
		f.record("UnbindArrayBuffer")
		return
	}
	f.record("BindArrayBuffer")
}

func (f *fakeGraphics) ArrayBufferStaticData(data []float32) {
	f.record("ArrayBufferStaticData")
	f.bufferData = append([]float32(nil), data...)
}

func (f *fakeGraphics) DeleteBuffer(vbo uint32) { f.record("DeleteBuffer") }

func (f *fakeGraphics) VertexAttribFloats(index uint32, size, stride int32) {
	f.record("VertexAttribFloats")
	f.attribIndex, f.attribSize, f.attribStride = index, size, stride
}

func (f *fakeGraphics) EnableVertexAttribArray(index uint32) { f.record("EnableVertexAttribArray") }

func (f *fakeGraphics) ClearColor(color mgl32.Vec4) {
	f.record("ClearColor")
	f.clearColor = color
}

func (f *fakeGraphics) ClearColorBuffer() { f.record("ClearColorBuffer") }

func (f *fakeGraphics) DrawTriangles(first, count int32) {
	f.record("DrawTriangles")
	f.drawFirst, f.drawCount = first, count
}

func (f *fakeGraphics) count(call string) int {
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

// fakeWindow reports escape once escapeAt frames were swapped, and a close
// request once closeAt frames were swapped. Negative values never fire.
type fakeWindow struct {
	escapeAt int
	closeAt  int

	sticky bool
	polls  int
	swaps  int
	clock  float64
	width  int
	height int
}

func (w *fakeWindow) SetStickyKeys()      { w.sticky = true }
func (w *fakeWindow) EscapePressed() bool { return w.escapeAt >= 0 && w.swaps >= w.escapeAt }
func (w *fakeWindow) ShouldClose() bool   { return w.closeAt >= 0 && w.swaps >= w.closeAt }
func (w *fakeWindow) PollEvents()         { w.polls++ }
func (w *fakeWindow) SwapBuffers()        { w.swaps++ }

func (w *fakeWindow) FramebufferSize() (int, int) {
	return w.width, w.height
}

func (w *fakeWindow) Time() float64 {
	w.clock += 0.25
	return w.clock
}

type fakePlatform struct {
	initErr   error
	createErr error
	window    *fakeWindow

	contextConf ContextConfig
	windowConf  WindowConfig
	inits       int
	created     int
	terminated  int
}

func (p *fakePlatform) Init(conf ContextConfig) error {
	p.inits++
	p.contextConf = conf
	return p.initErr
}

func (p *fakePlatform) CreateWindow(conf WindowConfig) (Window, error) {
	if p.createErr != nil {
		return nil, p.createErr
	}
	p.created++
	p.windowConf = conf
	return p.window, nil
}

func (p *fakePlatform) Terminate() {
	p.terminated++
}
