package main

import "github.com/go-gl/mathgl/mgl32"

// Graphics is the part of OpenGL this program talks to. Handles are the
// driver's object names; zero means "none".
type Graphics interface {
	Init() error
	Version() (renderer, version string)
	GetError() uint32
	Viewport(x, y, width, height int32)

	CreateShader(stage ShaderStage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)
	GenBuffer() uint32
	BindArrayBuffer(vbo uint32)
	ArrayBufferStaticData(data []float32)
	DeleteBuffer(vbo uint32)
	// VertexAttribFloats describes attribute index as size non-normalized
	// floats, stride bytes apart, starting at offset 0 of the bound buffer.
	VertexAttribFloats(index uint32, size, stride int32)
	EnableVertexAttribArray(index uint32)

	ClearColor(color mgl32.Vec4)
	ClearColorBuffer()
	DrawTriangles(first, count int32)
}
