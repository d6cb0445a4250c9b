package profiler

import (
	"testing"
	"time"

	"github.com/Carmen-Shannon/glue/common"
	"github.com/Carmen-Shannon/glue/engine/light"
	"github.com/Carmen-Shannon/glue/engine/renderer"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestMetricsFields(t *testing.T) {
	fields := metricsFields(renderer.Metrics{
		Created:          map[common.ResourceCategory]int{common.ResourceShader: 2},
		Tasks:            3,
		DrawCalls:        7,
		LightsByCategory: map[light.Category]int{light.CategoryPoint: 4},
	})

	tests := []struct {
		key  string
		want int
	}{
		{"tasks", 3},
		{"draws", 7},
		{"created." + common.ResourceShader.String(), 2},
		{"lights.point", 4},
	}
	for _, tt := range tests {
		if got := fields[tt.key]; got != tt.want {
			t.Errorf("fields[%q] = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestTickLogsOncePerInterval(t *testing.T) {
	logger, hook := test.NewNullLogger()
	p := NewProfiler()
	p.SetLogger(logger)
	p.SetInterval(time.Hour)

	if p.Tick(renderer.Metrics{}) {
		t.Error("Tick logged before the interval elapsed")
	}
	if len(hook.Entries) != 0 {
		t.Errorf("entries = %d, want 0", len(hook.Entries))
	}

	p.lastTime = time.Now().Add(-2 * time.Hour)
	if !p.Tick(renderer.Metrics{MeshCalls: 5}) {
		t.Fatal("Tick did not log after the interval elapsed")
	}
	if len(hook.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(hook.Entries))
	}
	last := hook.LastEntry()
	if last.Level != log.InfoLevel || last.Data["meshes"] != 5 {
		t.Errorf("last entry = %v %v, want info with meshes=5", last.Level, last.Data)
	}
	if p.frameCount != 0 {
		t.Errorf("frameCount = %d, want 0 after logging", p.frameCount)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{1.234, 1.23},
		{2.5, 2.5},
		{60, 60},
	}
	for _, tt := range tests {
		if got := round2(tt.in); got != tt.want {
			t.Errorf("round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
