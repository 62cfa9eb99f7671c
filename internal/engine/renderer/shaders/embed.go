// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// CubeVertexShader offsets each mesh vertex by its per-instance translation.
//
//go:embed cube.vert
var CubeVertexShader string

// CubeFragmentShader applies a flat material colour with Lambert shading.
//
//go:embed cube.frag
var CubeFragmentShader string
