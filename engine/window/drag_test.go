package window

import "testing"

func TestDragTracker(t *testing.T) {
	var d dragTracker

	if _, _, ok := d.move(10, 10); ok {
		t.Fatal("move without press reported a drag")
	}

	d.press(10, 10)
	dx, dy, ok := d.move(15, 7)
	if !ok || dx != 5 || dy != -3 {
		t.Errorf("move = (%v, %v, %v), want (5, -3, true)", dx, dy, ok)
	}
	if _, _, ok := d.move(15, 7); ok {
		t.Error("stationary sample reported a drag")
	}

	d.release()
	if _, _, ok := d.move(20, 20); ok {
		t.Error("move after release reported a drag")
	}

	// A new press starts from the press point, not the last sample.
	d.press(100, 100)
	if dx, dy, _ := d.move(101, 100); dx != 1 || dy != 0 {
		t.Errorf("move after re-press = (%v, %v), want (1, 0)", dx, dy)
	}
}
