package shader

// SolidVertex transforms pixel-space positions by uProjection and passes
// a per-vertex color through.
const SolidVertex = `#version 410 core

layout (location = 0) in vec2 aPos;
layout (location = 1) in vec4 aColor;

uniform mat4 uProjection;

out vec4 vColor;

void main() {
	gl_Position = uProjection * vec4(aPos, 0.0, 1.0);
	vColor = aColor;
}
`

// SolidFragment writes the interpolated vertex color.
const SolidFragment = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
	FragColor = vColor;
}
`
