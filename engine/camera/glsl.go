package camera

import (
	_ "embed"
)

// GLSLCameraSource declares the camera uniforms filled from Camera.Uniforms.
//
//go:embed assets/camera.glsl
var GLSLCameraSource string
