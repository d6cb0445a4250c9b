package uniform

import (
	"fmt"
	"strconv"
)

// Values is a uniform value tree keyed by uniform name.
//
// Leaves may be scalars, vectors, matrices (plain arrays, slices or mgl32 types), samplers,
// or a Producer that is invoked lazily at bind time. Structs are nested Values and arrays of
// structs are []Values.
type Values map[string]any

// Producer yields a uniform value when the uniform is actually bound.
type Producer func() any

// Uploader issues the native uniform upload calls for the currently bound program.
// The length of v is always a multiple of the type's component count.
type Uploader interface {
	Uniform1i(loc Location, v []int32)
	Uniform2i(loc Location, v []int32)
	Uniform3i(loc Location, v []int32)
	Uniform4i(loc Location, v []int32)
	Uniform1f(loc Location, v []float32)
	Uniform2f(loc Location, v []float32)
	Uniform3f(loc Location, v []float32)
	Uniform4f(loc Location, v []float32)
	UniformMatrix2f(loc Location, v []float32)
	UniformMatrix3f(loc Location, v []float32)
	UniformMatrix4f(loc Location, v []float32)
}

// SamplerResolver turns a sampler value (a texture) into the texture slot it is bound to.
type SamplerResolver func(value any) (int, error)

// Binder walks a Values tree against a Node tree and uploads every leaf that the program declares.
type Binder struct {
	uploader Uploader
	samplers SamplerResolver
}

// NewBinder creates a Binder.
//
// Parameters:
//   - uploader: the native upload target
//   - samplers: resolves sampler values to texture slots; may be nil if no samplers are bound
//
// Returns:
//   - *Binder: the binder
func NewBinder(uploader Uploader, samplers SamplerResolver) *Binder {
	return &Binder{uploader: uploader, samplers: samplers}
}

// Bind uploads values onto the uniform tree of the currently bound program.
// Keys that the tree does not declare are skipped. A value that does not fit its declared
// type is an error.
//
// Parameters:
//   - values: the value tree
//   - node: the root of the program's uniform tree
//
// Returns:
//   - error: an error naming the uniform whose value could not be converted
func (b *Binder) Bind(values Values, node *Node) error {
	if node == nil {
		return nil
	}
	for name, value := range values {
		child, ok := node.Child(name)
		if !ok {
			continue
		}
		if err := b.bindNode(name, value, child); err != nil {
			return err
		}
	}
	return nil
}

func (b *Binder) bindNode(name string, value any, node *Node) error {
	if p, ok := value.(Producer); ok {
		value = p()
	} else if f, ok := value.(func() any); ok {
		value = f()
	}
	if value == nil {
		return nil
	}

	if node.Kind() == KindGroup {
		return b.bindGroup(name, value, node)
	}
	return b.bindLeaf(name, value, node)
}

func (b *Binder) bindGroup(name string, value any, node *Node) error {
	switch v := value.(type) {
	case Values:
		return b.bindChildren(name, v, node)
	case map[string]any:
		return b.bindChildren(name, v, node)
	case []Values:
		for i, elem := range v {
			child, ok := node.Child(strconv.Itoa(i))
			if !ok {
				continue
			}
			if err := b.bindGroup(name+"["+strconv.Itoa(i)+"]", elem, child); err != nil {
				return err
			}
		}
		return nil
	case []any:
		for i, elem := range v {
			child, ok := node.Child(strconv.Itoa(i))
			if !ok {
				continue
			}
			if err := b.bindNode(name+"["+strconv.Itoa(i)+"]", elem, child); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("uniform %q: cannot bind %T to a struct uniform", name, value)
}

func (b *Binder) bindChildren(name string, values map[string]any, node *Node) error {
	for key, value := range values {
		child, ok := node.Child(key)
		if !ok {
			continue
		}
		if err := b.bindNode(name+"."+key, value, child); err != nil {
			return err
		}
	}
	return nil
}

func (b *Binder) bindLeaf(name string, value any, node *Node) error {
	loc := node.Location()
	t := node.Type()

	if t.IsSampler() {
		if b.samplers == nil {
			return fmt.Errorf("uniform %q: no sampler resolver for %s", name, t)
		}
		slot, err := b.samplers(value)
		if err != nil {
			return fmt.Errorf("uniform %q: %w", name, err)
		}
		b.uploader.Uniform1i(loc, []int32{int32(slot)})
		return nil
	}

	if t.IsInteger() {
		v, ok := Ints(value)
		if !ok || len(v) == 0 || len(v)%t.Components() != 0 {
			return fmt.Errorf("uniform %q: cannot upload %T as %s", name, value, t)
		}
		v = v[:min(len(v), node.Count()*t.Components())]
		switch t.Components() {
		case 1:
			b.uploader.Uniform1i(loc, v)
		case 2:
			b.uploader.Uniform2i(loc, v)
		case 3:
			b.uploader.Uniform3i(loc, v)
		case 4:
			b.uploader.Uniform4i(loc, v)
		}
		return nil
	}

	v, ok := Floats(value)
	if !ok || len(v) == 0 || len(v)%t.Components() != 0 {
		return fmt.Errorf("uniform %q: cannot upload %T as %s", name, value, t)
	}
	// elements past the declared array length are dropped
	v = v[:min(len(v), node.Count()*t.Components())]
	switch t {
	case TypeFloat:
		b.uploader.Uniform1f(loc, v)
	case TypeVec2:
		b.uploader.Uniform2f(loc, v)
	case TypeVec3:
		b.uploader.Uniform3f(loc, v)
	case TypeVec4:
		b.uploader.Uniform4f(loc, v)
	case TypeMat2:
		b.uploader.UniformMatrix2f(loc, v)
	case TypeMat3:
		b.uploader.UniformMatrix3f(loc, v)
	case TypeMat4:
		b.uploader.UniformMatrix4f(loc, v)
	default:
		return fmt.Errorf("uniform %q: unsupported type %s", name, t)
	}
	return nil
}
