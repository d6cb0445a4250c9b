package light

import (
	"sync"

	"github.com/Carmen-Shannon/glue/engine/renderer/uniform"
	"github.com/Carmen-Shannon/glue/engine/texture"
	"github.com/go-gl/mathgl/mgl32"
)

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	mu *sync.Mutex

	category   Category
	position   mgl32.Vec3
	direction  mgl32.Vec3
	color      mgl32.Vec3
	intensity  float32
	lightRange float32
	innerCone  float32 // stored as cos(angle in radians)
	outerCone  float32 // stored as cos(angle in radians)
	bias       float32
	shadowMap  texture.Texture
	enabled    bool
}

// Light defines the interface for a light source in a scene.
//
// All categories share this interface; properties that a category does not use are
// ignored when its uniforms are built. The scene groups lights by Category and the render
// context uploads each group into the category's uniform array once per task.
type Light interface {
	// Category returns the kind of light source.
	//
	// Returns:
	//   - Category: the light category
	Category() Category

	// Position returns the world-space position of the light.
	// Meaningless for ambient and directional lights.
	//
	// Returns:
	//   - mgl32.Vec3: the position
	Position() mgl32.Vec3

	// Direction returns the normalized direction of the light.
	// Used by directional and spot lights.
	//
	// Returns:
	//   - mgl32.Vec3: the normalized direction
	Direction() mgl32.Vec3

	// Color returns the RGB color of the light.
	Color() mgl32.Vec3

	// Intensity returns the scalar intensity multiplier for the light.
	Intensity() float32

	// Range returns the maximum attenuation distance for point, spot and point shadow lights.
	Range() float32

	// InnerCone returns the cosine of the inner cone half-angle for spot lights.
	InnerCone() float32

	// OuterCone returns the cosine of the outer cone half-angle for spot lights.
	OuterCone() float32

	// ShadowMap returns the cube depth texture sampled by point shadow lights, or nil.
	ShadowMap() texture.Texture

	// Enabled returns whether this light is active for rendering.
	// Disabled lights are left out of the scene's light groups.
	//
	// Returns:
	//   - bool: true if the light is enabled
	Enabled() bool

	// Uniforms builds the struct value uploaded for this light into its category's array.
	//
	// Returns:
	//   - uniform.Values: the struct members for the light's category
	Uniforms() uniform.Values

	SetPosition(x, y, z float32)
	SetDirection(x, y, z float32)
	SetColor(r, g, b float32)
	SetIntensity(intensity float32)
	SetRange(lightRange float32)

	// SetSpotCone sets the inner and outer cone half-angles for spot lights.
	// Angles are specified in degrees and stored internally as cosines.
	//
	// Parameters:
	//   - innerDeg: inner cone half-angle in degrees
	//   - outerDeg: outer cone half-angle in degrees
	SetSpotCone(innerDeg, outerDeg float32)

	SetShadowMap(tex texture.Texture)
	SetEnabled(enabled bool)
}

var _ Light = &lightImpl{}

// NewLight creates a new Light of the specified category with sensible defaults and
// any provided options applied.
//
// Parameters:
//   - category: the kind of light to create
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(category Category, opts ...LightBuilderOption) Light {
	l := &lightImpl{
		mu:         &sync.Mutex{},
		category:   category,
		direction:  mgl32.Vec3{0, -1, 0},
		color:      mgl32.Vec3{1, 1, 1},
		intensity:  1.0,
		lightRange: 10.0,
		innerCone:  cosDeg(25),
		outerCone:  cosDeg(35),
		bias:       0.05,
		enabled:    true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Category() Category {
	return l.category
}

func (l *lightImpl) Position() mgl32.Vec3 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.position
}

func (l *lightImpl) Direction() mgl32.Vec3 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.direction
}

func (l *lightImpl) Color() mgl32.Vec3 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.intensity
}

func (l *lightImpl) Range() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lightRange
}

func (l *lightImpl) InnerCone() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.innerCone
}

func (l *lightImpl) OuterCone() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.outerCone
}

func (l *lightImpl) ShadowMap() texture.Texture {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.shadowMap
}

func (l *lightImpl) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

func (l *lightImpl) Uniforms() uniform.Values {
	l.mu.Lock()
	defer l.mu.Unlock()

	v := uniform.Values{
		"color":     l.color,
		"intensity": l.intensity,
	}
	switch l.category {
	case CategoryDirectional:
		v["direction"] = l.direction
	case CategoryPoint:
		v["position"] = l.position
		v["range"] = l.lightRange
	case CategorySpot:
		v["position"] = l.position
		v["direction"] = l.direction
		v["range"] = l.lightRange
		v["innerCone"] = l.innerCone
		v["outerCone"] = l.outerCone
	case CategoryPointShadow:
		v["position"] = l.position
		v["range"] = l.lightRange
		v["bias"] = l.bias
		if l.shadowMap != nil {
			v["shadowMap"] = l.shadowMap
		}
	}
	return v
}

func (l *lightImpl) SetPosition(x, y, z float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.position = mgl32.Vec3{x, y, z}
}

func (l *lightImpl) SetDirection(x, y, z float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.direction = normalize3(x, y, z)
}

func (l *lightImpl) SetColor(r, g, b float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.color = mgl32.Vec3{r, g, b}
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.intensity = intensity
}

func (l *lightImpl) SetRange(lightRange float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lightRange = lightRange
}

func (l *lightImpl) SetSpotCone(innerDeg, outerDeg float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.innerCone = cosDeg(innerDeg)
	l.outerCone = cosDeg(outerDeg)
}

func (l *lightImpl) SetShadowMap(tex texture.Texture) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.shadowMap = tex
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}
