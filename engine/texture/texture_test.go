package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"
	"time"
)

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(y), A: 255})
		}
	}
	return img
}

func TestFromImageFlipsRows(t *testing.T) {
	tex := FromImage("grid", testImage(2, 3))
	if !tex.Loaded() {
		t.Fatal("FromImage texture should be loaded")
	}
	if got := tex.Size(); got.Width != 2 || got.Height != 3 {
		t.Errorf("Size = %v, want 2x3", got)
	}
	faces := tex.Faces()
	if len(faces) != 1 {
		t.Fatalf("faces = %d, want 1", len(faces))
	}
	// first stored row is the bottom row of the source image
	if faces[0].Pix[0] != 2 {
		t.Errorf("first row red = %d, want 2", faces[0].Pix[0])
	}
}

func TestNewTextureTracksScreen(t *testing.T) {
	tex := NewTexture("color")
	if !tex.TracksScreen() {
		t.Error("texture without size or source should track the screen")
	}
	if !tex.Loaded() {
		t.Error("render target textures are always loaded")
	}
	if NewTexture("fixed", WithSize(64, 64)).TracksScreen() {
		t.Error("sized texture should not track the screen")
	}
}

func TestPendingTexture(t *testing.T) {
	tex := NewPending("cube", WithKind(KindCube))
	if tex.Loaded() {
		t.Fatal("pending texture should not be loaded")
	}
	if got := len(tex.Faces()); got != 6 {
		t.Errorf("placeholder faces = %d, want 6", got)
	}
	if err := tex.SetImages(testImage(1, 1)); err == nil {
		t.Error("SetImages with one face on a cube map should fail")
	}
	faces := make([]image.Image, 6)
	for i := range faces {
		faces[i] = testImage(4, 4)
	}
	if err := tex.SetImages(faces...); err != nil {
		t.Fatal(err)
	}
	if !tex.Loaded() {
		t.Error("texture should be loaded after SetImages")
	}
}

func TestLoaderLoadBytes(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage(8, 4)); err != nil {
		t.Fatal(err)
	}

	l := NewLoader(WithWorkers(1), WithMaxSize(4))
	tex := l.LoadBytes("encoded", buf.Bytes())

	deadline := time.Now().Add(5 * time.Second)
	for !tex.Loaded() {
		if time.Now().After(deadline) {
			t.Fatal("texture did not load in time")
		}
		time.Sleep(5 * time.Millisecond)
	}
	if got := tex.Size(); got.Width != 4 || got.Height != 2 {
		t.Errorf("Size = %v, want 4x2 after fitting", got)
	}
}

func TestLoaderBadData(t *testing.T) {
	l := NewLoader(WithWorkers(1))
	tex := l.LoadBytes("broken", []byte("not an image"))

	deadline := time.Now().Add(5 * time.Second)
	for !tex.Loaded() {
		if time.Now().After(deadline) {
			t.Fatal("failed load should still stop polling")
		}
		time.Sleep(5 * time.Millisecond)
	}
	if got := tex.Size(); !got.IsZero() {
		t.Errorf("Size = %v, want zero for a failed load", got)
	}
}

func TestSetImagesWhileRendererReads(t *testing.T) {
	tex := NewTexture("target")
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := tex.SetImages(testImage(2, 2)); err != nil {
			t.Error(err)
		}
	}()
	for i := 0; i < 100; i++ {
		_ = tex.HasSource()
		_ = tex.TracksScreen()
	}
	wg.Wait()

	if !tex.HasSource() {
		t.Error("HasSource() = false after SetImages")
	}
	if tex.TracksScreen() {
		t.Error("TracksScreen() = true after SetImages")
	}
}
