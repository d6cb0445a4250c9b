package glbackend

import (
	"github.com/Carmen-Shannon/glue/engine/geometry"
	"github.com/Carmen-Shannon/glue/engine/renderer"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type glAttribute struct {
	buffer uint32
	size   int32
}

type glGeometry struct {
	vao        uint32
	attributes map[string]glAttribute
	ebo        uint32
	enabled    []uint32
}

func (b *backend) CreateGeometry(g geometry.Geometry) (renderer.Handle, error) {
	geom := &glGeometry{attributes: make(map[string]glAttribute)}
	gl.GenVertexArrays(1, &geom.vao)
	gl.BindVertexArray(geom.vao)

	for _, attr := range g.Attributes() {
		var vbo uint32
		gl.GenBuffers(1, &vbo)
		gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(attr.Data)*4, gl.Ptr(attr.Data), gl.STATIC_DRAW)
		geom.attributes[attr.Name] = glAttribute{buffer: vbo, size: int32(attr.Size)}
	}

	if indices := g.Indices(); len(indices) > 0 {
		gl.GenBuffers(1, &geom.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, geom.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	b.geometries[renderer.Handle(geom.vao)] = geom
	return renderer.Handle(geom.vao), nil
}

// BindGeometry binds the vertex array and points the attributes the program declares at
// the geometry's buffers. Arrays enabled for a previous program are disabled.
func (b *backend) BindGeometry(geom renderer.Handle, program renderer.Handle) {
	g, ok := b.geometries[geom]
	if !ok {
		return
	}
	gl.BindVertexArray(g.vao)

	p, ok := b.programs[program]
	if !ok {
		return
	}
	for _, loc := range g.enabled {
		gl.DisableVertexAttribArray(loc)
	}
	g.enabled = g.enabled[:0]

	for name, loc := range p.attribs {
		attr, ok := g.attributes[name]
		if !ok || loc < 0 {
			continue
		}
		gl.BindBuffer(gl.ARRAY_BUFFER, attr.buffer)
		gl.EnableVertexAttribArray(uint32(loc))
		gl.VertexAttribPointerWithOffset(uint32(loc), attr.size, gl.FLOAT, false, 0, 0)
		g.enabled = append(g.enabled, uint32(loc))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (b *backend) Draw(r geometry.DrawRange, indexed bool) {
	mode := primitiveMode(r.Primitive)
	if indexed {
		gl.DrawElementsWithOffset(mode, int32(r.Count), gl.UNSIGNED_INT, uintptr(r.First*4))
		return
	}
	gl.DrawArrays(mode, int32(r.First), int32(r.Count))
}

func primitiveMode(p geometry.Primitive) uint32 {
	switch p {
	case geometry.PrimitiveTriangleStrip:
		return gl.TRIANGLE_STRIP
	case geometry.PrimitiveLines:
		return gl.LINES
	case geometry.PrimitiveLineStrip:
		return gl.LINE_STRIP
	case geometry.PrimitivePoints:
		return gl.POINTS
	}
	return gl.TRIANGLES
}
