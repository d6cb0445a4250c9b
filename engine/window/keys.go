package window

import "github.com/go-gl/glfw/v3.3/glfw"

// Key codes passed to the key callbacks. Printable keys match their ASCII values.
const (
	KeyW     = uint32(glfw.KeyW)
	KeyA     = uint32(glfw.KeyA)
	KeyS     = uint32(glfw.KeyS)
	KeyD     = uint32(glfw.KeyD)
	KeyQ     = uint32(glfw.KeyQ)
	KeyE     = uint32(glfw.KeyE)
	KeyR     = uint32(glfw.KeyR)
	KeyF     = uint32(glfw.KeyF)
	KeySpace = uint32(glfw.KeySpace)

	KeyUp    = uint32(glfw.KeyUp)
	KeyDown  = uint32(glfw.KeyDown)
	KeyLeft  = uint32(glfw.KeyLeft)
	KeyRight = uint32(glfw.KeyRight)

	KeyLeftShift  = uint32(glfw.KeyLeftShift)
	KeyRightShift = uint32(glfw.KeyRightShift)
)
