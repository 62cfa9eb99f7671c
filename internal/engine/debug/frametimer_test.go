package debug

import (
	"strings"
	"testing"
	"time"
)

func TestFrameTimer(t *testing.T) {
	start := time.Unix(0, 0)
	ft := NewFrameTimer(time.Second, start)

	now := start
	for i := 0; i < 9; i++ {
		now = now.Add(100 * time.Millisecond)
		if _, ok := ft.Tick(now); ok {
			t.Fatalf("report after %d frames, before the interval elapsed", i+1)
		}
	}

	now = now.Add(100 * time.Millisecond)
	r, ok := ft.Tick(now)
	if !ok {
		t.Fatal("expected a report after one second")
	}
	if r.Frames != 10 {
		t.Errorf("expected 10 frames, got %d", r.Frames)
	}
	if r.FPS < 9.99 || r.FPS > 10.01 {
		t.Errorf("expected 10 fps, got %v", r.FPS)
	}
	if r.AvgFrame != 100*time.Millisecond {
		t.Errorf("expected 100ms average, got %v", r.AvgFrame)
	}
	if r.MaxFrame != 100*time.Millisecond {
		t.Errorf("expected 100ms worst frame, got %v", r.MaxFrame)
	}

	// The next interval starts clean.
	now = now.Add(1500 * time.Millisecond)
	r, ok = ft.Tick(now)
	if !ok || r.Frames != 1 || r.MaxFrame != 1500*time.Millisecond {
		t.Errorf("second interval = %+v, %v", r, ok)
	}
}

func TestTitle(t *testing.T) {
	r := FrameReport{FPS: 59.94, AvgFrame: 16683 * time.Microsecond}
	got := Title("many cubes", r, 1234, 160000, true)
	for _, want := range []string{"many cubes", "59.9 fps", "16.68 ms", "1234/160000", "culling on"} {
		if !strings.Contains(got, want) {
			t.Errorf("title %q missing %q", got, want)
		}
	}
	if off := Title("x", r, 0, 0, false); !strings.Contains(off, "culling off") {
		t.Errorf("title %q should report culling off", off)
	}
}
