package renderer

import (
	"maps"

	"github.com/Carmen-Shannon/glue/common"
	"github.com/Carmen-Shannon/glue/engine/light"
)

// Metrics is a snapshot of render context counters.
//
// Created counts native objects created since the last context reset. Every other counter
// covers the most recent Render call.
type Metrics struct {
	Created map[common.ResourceCategory]int

	// Tasks is the number of render tasks executed.
	Tasks int
	// ShaderCalls is the number of program switches.
	ShaderCalls int
	// CameraCalls, LightCalls and MaterialCalls count uniform groups actually uploaded.
	CameraCalls   int
	LightCalls    int
	MaterialCalls int
	// GeometryCalls is the number of vertex state binds.
	GeometryCalls int
	// TextureCalls is the number of texture slot assignments.
	TextureCalls int
	// MeshCalls is the number of meshes drawn and DrawCalls the number of draw calls they issued.
	MeshCalls int
	DrawCalls int
	// SkippedMeshes counts meshes with no material able to draw in the task's mode.
	SkippedMeshes int
	// Lights is the number of lights bound by the last task, LightsByCategory the same split by category.
	Lights           int
	LightsByCategory map[light.Category]int
}

func newMetrics() Metrics {
	m := Metrics{
		Created:          make(map[common.ResourceCategory]int, len(common.ResourceCategories)),
		LightsByCategory: make(map[light.Category]int, len(light.Categories)),
	}
	for _, c := range common.ResourceCategories {
		m.Created[c] = 0
	}
	return m
}

// resetFrame zeroes the per-frame counters and keeps Created.
func (m *Metrics) resetFrame() {
	created := m.Created
	*m = newMetrics()
	m.Created = created
}

func (m Metrics) clone() Metrics {
	out := m
	out.Created = maps.Clone(m.Created)
	out.LightsByCategory = maps.Clone(m.LightsByCategory)
	return out
}
