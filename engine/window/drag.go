package window

// dragTracker turns absolute cursor samples into deltas while the primary
// button is held.
type dragTracker struct {
	active bool
	lastX  float64
	lastY  float64
}

func (d *dragTracker) press(x, y float64) {
	d.active = true
	d.lastX, d.lastY = x, y
}

func (d *dragTracker) release() {
	d.active = false
}

// move records a cursor sample. ok is false when no drag is active or the
// cursor did not move.
func (d *dragTracker) move(x, y float64) (dx, dy float32, ok bool) {
	if !d.active {
		return 0, 0, false
	}
	dx, dy = float32(x-d.lastX), float32(y-d.lastY)
	d.lastX, d.lastY = x, y
	return dx, dy, dx != 0 || dy != 0
}
