package light

import (
	_ "embed"
)

// GLSLLightsSource declares the light structs, the per-category light arrays and uLightSize.
//
//go:embed assets/lights.glsl
var GLSLLightsSource string
