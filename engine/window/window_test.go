package window

import "testing"

func TestBuilderOptions(t *testing.T) {
	w := &engineWindow{width: 1280, height: 720}
	for _, opt := range []WindowBuilderOption{
		WithTitle("demo"),
		WithSize(800, 0),
		WithHeight(600),
		WithMinSize(100, 50),
		WithMaxSize(DontCare, 2000),
		WithVSync(false),
		WithSamples(-4),
	} {
		opt(w)
	}

	if w.title != "demo" {
		t.Errorf("title = %q, want %q", w.title, "demo")
	}
	if w.width != 800 || w.height != 600 {
		t.Errorf("size = %dx%d, want 800x600", w.width, w.height)
	}
	if w.minWidth != 100 || w.minHeight != 50 || w.maxWidth != DontCare || w.maxHeight != 2000 {
		t.Errorf("limits = %d,%d %d,%d, want 100,50 -1,2000", w.minWidth, w.minHeight, w.maxWidth, w.maxHeight)
	}
	if w.vsync {
		t.Error("vsync = true, want false")
	}
	if w.samples != 0 {
		t.Errorf("samples = %d, want 0", w.samples)
	}
}

func TestUninitializedWindow(t *testing.T) {
	w := &engineWindow{}
	if w.IsRunning() {
		t.Error("IsRunning() = true for a window without a platform window")
	}
	if err := w.Close(); err == nil {
		t.Error("Close() returned nil for a window without a platform window")
	}
	// must not panic
	w.SwapBuffers()
	w.MakeContextCurrent()
	w.SetTitle("x")
}

func TestMouseButtonString(t *testing.T) {
	tests := []struct {
		b    MouseButton
		want string
	}{
		{MouseButtonLeft, "left"},
		{MouseButtonRight, "right"},
		{MouseButtonMiddle, "middle"},
		{MouseButton(7), "MouseButton(7)"},
	}
	for _, tt := range tests {
		if got := tt.b.String(); got != tt.want {
			t.Errorf("MouseButton(%d).String() = %q, want %q", int(tt.b), got, tt.want)
		}
	}
}
