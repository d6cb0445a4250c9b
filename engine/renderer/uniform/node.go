// Package uniform maps nested uniform value trees onto a shader program's uniform locations.
//
// A linked program's active uniforms are introspected into a tree of Nodes. Every Node is
// either a Leaf, which carries a native location and a declared Type, or a Group, which
// carries named children. Struct members are children keyed by member name and array
// elements of struct arrays are children keyed by their decimal index ("0", "1", ...).
package uniform

import (
	"strings"
)

// Location is a native uniform location handle.
type Location int32

// Kind tags a Node as either a Leaf or a Group.
type Kind int

const (
	// KindLeaf is a single uploadable uniform (possibly an array of a basic type).
	KindLeaf Kind = iota

	// KindGroup is a struct or an array of structs.
	KindGroup
)

// Node is one entry in a shader's uniform tree.
type Node struct {
	kind     Kind
	location Location
	typ      Type
	count    int
	children map[string]*Node
}

// Info describes one active uniform as reported by program introspection.
type Info struct {
	// Name is the fully qualified name, e.g. "uPointLight[1].color" or "uLightSize[0]".
	Name string
	// Location is the native location of the uniform.
	Location Location
	// Type is the declared type of the uniform.
	Type Type
	// Count is the array length for arrays of basic types, 1 otherwise.
	Count int
}

// Leaf creates a leaf Node.
//
// Parameters:
//   - location: the native uniform location
//   - t: the declared type
//   - count: the array length, values below 1 are treated as 1
//
// Returns:
//   - *Node: the leaf node
func Leaf(location Location, t Type, count int) *Node {
	return &Node{
		kind:     KindLeaf,
		location: location,
		typ:      t,
		count:    max(count, 1),
	}
}

// Group creates an empty group Node.
func Group() *Node {
	return &Node{
		kind:     KindGroup,
		children: make(map[string]*Node),
	}
}

func (n *Node) Kind() Kind {
	return n.kind
}

func (n *Node) Location() Location {
	return n.location
}

func (n *Node) Type() Type {
	return n.typ
}

func (n *Node) Count() int {
	return n.count
}

// Child returns the named child of a group. Leaves have no children.
func (n *Node) Child(key string) (*Node, bool) {
	if n == nil || n.kind != KindGroup {
		return nil, false
	}
	c, ok := n.children[key]
	return c, ok
}

// Set adds or replaces a child of a group node. It is a no-op on leaves.
func (n *Node) Set(key string, child *Node) {
	if n.kind != KindGroup {
		return
	}
	n.children[key] = child
}

// BuildTree converts a flat list of introspected uniforms into a tree rooted at a Group.
// A trailing "[0]" on the last path segment denotes an array of a basic type and is folded
// into a single leaf with the reported Count. Any other index becomes a group child keyed
// by the index.
//
// Parameters:
//   - infos: the active uniforms of a program
//
// Returns:
//   - *Node: the root group
func BuildTree(infos []Info) *Node {
	root := Group()
	for _, info := range infos {
		path := splitName(info.Name)
		if len(path) == 0 {
			continue
		}
		parent := root
		for _, key := range path[:len(path)-1] {
			child, ok := parent.children[key]
			if !ok || child.kind != KindGroup {
				child = Group()
				parent.children[key] = child
			}
			parent = child
		}
		parent.children[path[len(path)-1]] = Leaf(info.Location, info.Type, info.Count)
	}
	return root
}

// splitName turns "a[1].b[0]" into ["a", "1", "b"]. Only the trailing "[0]" is dropped.
func splitName(name string) []string {
	name = strings.TrimSuffix(name, "[0]")
	var path []string
	for _, part := range strings.Split(name, ".") {
		for {
			open := strings.IndexByte(part, '[')
			if open < 0 {
				break
			}
			end := strings.IndexByte(part[open:], ']')
			if end < 0 {
				break
			}
			if open > 0 {
				path = append(path, part[:open])
			}
			path = append(path, part[open+1:open+end])
			part = part[open+end+1:]
		}
		if part != "" {
			path = append(path, part)
		}
	}
	return path
}
