package profiler

import (
	"runtime"
	"time"

	"github.com/Carmen-Shannon/glue/engine/renderer"
	log "github.com/sirupsen/logrus"
)

// Profiler tracks frame rate, memory statistics and render context metrics.
// Logs a summary at a configurable interval.
type Profiler struct {
	logger         log.FieldLogger
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second and the logger to the logrus standard logger.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{
		logger:         log.StandardLogger(),
		frameCount:     0,
		lastTime:       time.Now(),
		updateInterval: time.Second,
		memStats:       runtime.MemStats{},
	}
}

// SetLogger replaces the logger stats are written to. A nil logger is ignored.
func (p *Profiler) SetLogger(logger log.FieldLogger) {
	if logger != nil {
		p.logger = logger
	}
}

// SetInterval changes how often stats are logged. Non-positive values are ignored.
func (p *Profiler) SetInterval(interval time.Duration) {
	if interval > 0 {
		p.updateInterval = interval
	}
}

// Tick should be called once per frame with the metrics of the frame just rendered.
// Logs performance statistics when the update interval has elapsed. The render counters
// logged are those of the last frame of the interval.
//
// Parameters:
//   - metrics: the render context metrics of the current frame
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(metrics renderer.Metrics) bool {
	p.frameCount++
	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024

	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		// PauseNs is a circular buffer of the last 256 GC pauses
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			pause := p.memStats.PauseNs[i%256] / 1000
			if pause > maxPauseUs {
				maxPauseUs = pause
			}
		}
	}

	p.logger.WithFields(log.Fields{
		"fps":          round2(fps),
		"heapMB":       round2(allocMB),
		"allocRateMBs": round2(allocRateMB),
		"gc":           gcCount,
		"gcLastUs":     lastPauseUs,
		"gcMaxUs":      maxPauseUs,
		"sysMB":        round2(sysMB),
	}).Info("frame stats")
	p.logger.WithFields(metricsFields(metrics)).Info("render stats")

	p.frameCount = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// metricsFields flattens a metrics snapshot into log fields. Creation counters are prefixed
// with "created." and per-category light counts with "lights.".
func metricsFields(m renderer.Metrics) log.Fields {
	fields := log.Fields{
		"tasks":    m.Tasks,
		"shaders":  m.ShaderCalls,
		"cameras":  m.CameraCalls,
		"lights":   m.LightCalls,
		"material": m.MaterialCalls,
		"geometry": m.GeometryCalls,
		"textures": m.TextureCalls,
		"meshes":   m.MeshCalls,
		"draws":    m.DrawCalls,
		"skipped":  m.SkippedMeshes,
		"bound":    m.Lights,
	}
	for category, n := range m.Created {
		fields["created."+category.String()] = n
	}
	for category, n := range m.LightsByCategory {
		fields["lights."+string(category)] = n
	}
	return fields
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
