package shape

import "time"

// FrameMeter paces animation loops. It is not safe for concurrent use.
type FrameMeter struct {
	now       func() time.Time
	lastFrame time.Time
	lastTick  time.Time
}

// NewFrameMeter returns a meter reading time from now, or from time.Now
// when now is nil.
func NewFrameMeter(now func() time.Time) *FrameMeter {
	if now == nil {
		now = time.Now
	}
	return &FrameMeter{now: now}
}

// FPS returns the frame rate implied by the time since the previous call,
// truncated to an integer. The first call returns 0.
func (m *FrameMeter) FPS() int {
	t := m.now()
	prev := m.lastFrame
	m.lastFrame = t
	if prev.IsZero() {
		return 0
	}
	d := t.Sub(prev)
	if d <= 0 {
		return 0
	}
	return int(time.Second / d)
}

// Interval calls fn and reports true when at least every has elapsed since
// the last time it did. The first call always fires.
func (m *FrameMeter) Interval(every time.Duration, fn func()) bool {
	t := m.now()
	if !m.lastTick.IsZero() && t.Sub(m.lastTick) < every {
		return false
	}
	m.lastTick = t
	if fn != nil {
		fn()
	}
	return true
}
