package main

import "github.com/go-gl/gl/v3.3-core/gl"

const vertexShaderSource = `#version 330 core
layout (location = 0) in vec3 position;
void main() {
  gl_Position = vec4(position.x, position.y, position.z, 1.0);
}
`

const fragmentShaderSource = `#version 330 core
out vec4 color;
void main() {
  color = vec4(1.0f, 0.5f, 0.2f, 1.0f);
}
`

type ShaderStage uint32

const (
	VertexShader   ShaderStage = gl.VERTEX_SHADER
	FragmentShader ShaderStage = gl.FRAGMENT_SHADER
)

func (s ShaderStage) String() string {
	switch s {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	}
	return "unknown"
}

func compileShader(g Graphics, stage ShaderStage, source string) (uint32, error) {
	shader := g.CreateShader(stage)
	if shader == 0 {
		return 0, &ShaderError{Stage: stage, Log: "failed to create shader"}
	}

	g.ShaderSource(shader, source)
	g.CompileShader(shader)
	if !g.ShaderCompiled(shader) {
		log := g.ShaderInfoLog(shader)
		g.DeleteShader(shader)
		return 0, &ShaderError{Stage: stage, Log: log}
	}
	if err := checkError(g, "glShaderSource"); err != nil {
		g.DeleteShader(shader)
		return 0, err
	}
	return shader, nil
}

// buildProgram compiles and links the fixed shader pair. The shader objects
// are owned by the returned program and already deleted.
func buildProgram(g Graphics) (uint32, error) {
	vertexShader, err := compileShader(g, VertexShader, vertexShaderSource)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(g, FragmentShader, fragmentShaderSource)
	if err != nil {
		g.DeleteShader(vertexShader)
		return 0, err
	}

	program := g.CreateProgram()
	g.AttachShader(program, vertexShader)
	g.AttachShader(program, fragmentShader)
	g.LinkProgram(program)

	if !g.ProgramLinked(program) {
		log := g.ProgramInfoLog(program)
		g.DeleteShader(vertexShader)
		g.DeleteShader(fragmentShader)
		g.DeleteProgram(program)
		return 0, &LinkError{Log: log}
	}

	g.DeleteShader(vertexShader)
	g.DeleteShader(fragmentShader)
	return program, nil
}
