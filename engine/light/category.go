package light

// Category names the kind of a light. The render context maps each category to the
// uniform array it is uploaded into and to a slot in the packed count uniform.
type Category string

const (
	// CategoryAmbient is a uniform, directionless contribution.
	CategoryAmbient Category = "ambient"

	// CategoryDirectional is a light with no position, only direction, like the sun.
	CategoryDirectional Category = "directional"

	// CategoryPoint emits in all directions from a position and attenuates with distance.
	CategoryPoint Category = "point"

	// CategorySpot emits in a cone from a position along a direction.
	CategorySpot Category = "spot"

	// CategoryPointShadow is a point light that samples a cube shadow map.
	CategoryPointShadow Category = "pointShadow"
)

// Categories lists the known categories in the order their counts are packed into SizeUniform.
var Categories = []Category{
	CategoryAmbient,
	CategoryDirectional,
	CategoryPoint,
	CategorySpot,
	CategoryPointShadow,
}

// SizeUniform is the ivec4 array holding the light count of every category.
const SizeUniform = "uLightSize"

// DefaultUniformNames maps each category to the uniform array its lights are uploaded into.
var DefaultUniformNames = map[Category]string{
	CategoryAmbient:     "uAmbientLight",
	CategoryDirectional: "uDirectionalLight",
	CategoryPoint:       "uPointLight",
	CategorySpot:        "uSpotLight",
	CategoryPointShadow: "uPointShadowLight",
}

// SizeIndex returns the position of c in Categories, or -1.
func SizeIndex(c Category) int {
	for i, cat := range Categories {
		if cat == c {
			return i
		}
	}
	return -1
}
