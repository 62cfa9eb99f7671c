package debug

import (
	"fmt"
	"time"
)

// FrameTimer accumulates frame times and reports once per interval.
type FrameTimer struct {
	Interval time.Duration

	start  time.Time
	frames int
	worst  time.Duration
	last   time.Time
}

// FrameReport summarizes one interval.
type FrameReport struct {
	Frames   int
	FPS      float64
	AvgFrame time.Duration
	MaxFrame time.Duration
}

// NewFrameTimer creates a timer reporting every interval, starting at now.
func NewFrameTimer(interval time.Duration, now time.Time) *FrameTimer {
	return &FrameTimer{Interval: interval, start: now, last: now}
}

// Tick records a frame finishing at now. When an interval has elapsed it
// returns the report for it and starts the next one.
func (t *FrameTimer) Tick(now time.Time) (FrameReport, bool) {
	dt := now.Sub(t.last)
	t.last = now
	t.frames++
	if dt > t.worst {
		t.worst = dt
	}

	elapsed := now.Sub(t.start)
	if elapsed < t.Interval {
		return FrameReport{}, false
	}

	r := FrameReport{
		Frames:   t.frames,
		FPS:      float64(t.frames) / elapsed.Seconds(),
		AvgFrame: elapsed / time.Duration(t.frames),
		MaxFrame: t.worst,
	}
	t.start = now
	t.frames = 0
	t.worst = 0
	return r, true
}

// Title formats a window title from a report and visible/total counts.
func Title(base string, r FrameReport, visible, total int, culling bool) string {
	mode := "culling on"
	if !culling {
		mode = "culling off"
	}
	return fmt.Sprintf("%s | %.1f fps (%.2f ms) | %d/%d visible | %s",
		base, r.FPS, float64(r.AvgFrame.Microseconds())/1000, visible, total, mode)
}
