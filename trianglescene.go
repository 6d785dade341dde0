package main

import "github.com/go-gl/mathgl/mgl32"

const (
	triangleVertexCount = 3
	coordsPerVertex     = 3

	// triangleStride is the byte stride given for attribute 0. Tightly
	// packed vec3 data would be 12 (or 0); 4 makes consecutive vertices
	// overlap by two floats.
	triangleStride = 4
)

var triangleVertices = []float32{
	-0.5, -0.5, 0,
	0.5, -0.5, 0,
	0, 0.5, 0,
}

// TriangleScene owns the program and the vertex array/buffer pair drawn each
// frame.
type TriangleScene struct {
	gfx        Graphics
	clearColor mgl32.Vec4

	shaderProgram uint32
	vao           uint32
	vbo           uint32
}

func NewTriangleScene(g Graphics, clearColor mgl32.Vec4) (*TriangleScene, error) {
	program, err := buildProgram(g)
	if err != nil {
		return nil, err
	}

	ts := &TriangleScene{
		gfx:           g,
		clearColor:    clearColor,
		shaderProgram: program,
	}

	ts.vao = g.GenVertexArray()
	g.BindVertexArray(ts.vao)

	ts.vbo = g.GenBuffer()
	g.BindArrayBuffer(ts.vbo)
	g.ArrayBufferStaticData(triangleVertices)
	g.VertexAttribFloats(0, coordsPerVertex, triangleStride)
	g.EnableVertexAttribArray(0)
	g.BindArrayBuffer(0)

	g.BindVertexArray(0)

	return ts, nil
}

func (ts *TriangleScene) render() error {
	g := ts.gfx

	g.ClearColor(ts.clearColor)
	if err := checkError(g, "glClearColor"); err != nil {
		return err
	}
	g.ClearColorBuffer()
	if err := checkError(g, "glClear"); err != nil {
		return err
	}

	g.UseProgram(ts.shaderProgram)
	g.BindVertexArray(ts.vao)
	g.DrawTriangles(0, triangleVertexCount)
	if err := checkError(g, "glDrawArrays"); err != nil {
		return err
	}
	g.BindVertexArray(0)
	return nil
}

// Destroy releases the driver objects. It is safe to call more than once.
func (ts *TriangleScene) Destroy() {
	if ts.vbo != 0 {
		ts.gfx.DeleteBuffer(ts.vbo)
		ts.vbo = 0
	}
	if ts.vao != 0 {
		ts.gfx.DeleteVertexArray(ts.vao)
		ts.vao = 0
	}
	if ts.shaderProgram != 0 {
		ts.gfx.DeleteProgram(ts.shaderProgram)
		ts.shaderProgram = 0
	}
}
