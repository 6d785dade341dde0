package main

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

type glGraphics struct{}

func newGLGraphics() Graphics {
	return glGraphics{}
}

func (glGraphics) Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("%w: %v", ErrLoaderInit, err)
	}
	return nil
}

func (glGraphics) Version() (string, string) {
	return gl.GoStr(gl.GetString(gl.RENDERER)), gl.GoStr(gl.GetString(gl.VERSION))
}

func (glGraphics) GetError() uint32 {
	return gl.GetError()
}

func (glGraphics) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (glGraphics) CreateShader(stage ShaderStage) uint32 {
	return gl.CreateShader(uint32(stage))
}

func (glGraphics) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (glGraphics) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (glGraphics) ShaderCompiled(shader uint32) bool {
	var success int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &success)
	return success == gl.TRUE
}

func (glGraphics) ShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (glGraphics) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (glGraphics) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (glGraphics) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (glGraphics) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (glGraphics) ProgramLinked(program uint32) bool {
	var success int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &success)
	return success == gl.TRUE
}

func (glGraphics) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (glGraphics) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (glGraphics) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (glGraphics) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (glGraphics) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (glGraphics) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (glGraphics) GenBuffer() uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	return vbo
}

func (glGraphics) BindArrayBuffer(vbo uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
}

func (glGraphics) ArrayBufferStaticData(data []float32) {
	gl.BufferData(gl.ARRAY_BUFFER, 4*len(data), gl.Ptr(data), gl.STATIC_DRAW)
}

func (glGraphics) DeleteBuffer(vbo uint32) {
	gl.DeleteBuffers(1, &vbo)
}

func (glGraphics) VertexAttribFloats(index uint32, size, stride int32) {
	gl.VertexAttribPointer(index, size, gl.FLOAT, false, stride, nil)
}

func (glGraphics) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (glGraphics) ClearColor(color mgl32.Vec4) {
	gl.ClearColor(color[0], color[1], color[2], color[3])
}

func (glGraphics) ClearColorBuffer() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (glGraphics) DrawTriangles(first, count int32) {
	gl.DrawArrays(gl.TRIANGLES, first, count)
}
