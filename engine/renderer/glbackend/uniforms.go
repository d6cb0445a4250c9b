package glbackend

import (
	"github.com/Carmen-Shannon/glue/engine/renderer/uniform"
	"github.com/go-gl/gl/v4.1-core/gl"
)

func (b *backend) Uniform1i(loc uniform.Location, v []int32) {
	gl.Uniform1iv(int32(loc), int32(len(v)), &v[0])
}

func (b *backend) Uniform2i(loc uniform.Location, v []int32) {
	gl.Uniform2iv(int32(loc), int32(len(v)/2), &v[0])
}

func (b *backend) Uniform3i(loc uniform.Location, v []int32) {
	gl.Uniform3iv(int32(loc), int32(len(v)/3), &v[0])
}

func (b *backend) Uniform4i(loc uniform.Location, v []int32) {
	gl.Uniform4iv(int32(loc), int32(len(v)/4), &v[0])
}

func (b *backend) Uniform1f(loc uniform.Location, v []float32) {
	gl.Uniform1fv(int32(loc), int32(len(v)), &v[0])
}

func (b *backend) Uniform2f(loc uniform.Location, v []float32) {
	gl.Uniform2fv(int32(loc), int32(len(v)/2), &v[0])
}

func (b *backend) Uniform3f(loc uniform.Location, v []float32) {
	gl.Uniform3fv(int32(loc), int32(len(v)/3), &v[0])
}

func (b *backend) Uniform4f(loc uniform.Location, v []float32) {
	gl.Uniform4fv(int32(loc), int32(len(v)/4), &v[0])
}

// Matrices are column-major, so they are never transposed.

func (b *backend) UniformMatrix2f(loc uniform.Location, v []float32) {
	gl.UniformMatrix2fv(int32(loc), int32(len(v)/4), false, &v[0])
}

func (b *backend) UniformMatrix3f(loc uniform.Location, v []float32) {
	gl.UniformMatrix3fv(int32(loc), int32(len(v)/9), false, &v[0])
}

func (b *backend) UniformMatrix4f(loc uniform.Location, v []float32) {
	gl.UniformMatrix4fv(int32(loc), int32(len(v)/16), false, &v[0])
}
