package runner

import "testing"

func TestTrackStartsTiled(t *testing.T) {
	tr := NewTrack(800, 2)
	segs := tr.Segments()
	if segs[0].X != 0 || segs[1].X != 800 {
		t.Errorf("segments = %+v, expected x=0 and x=800", segs)
	}
}

func TestTrackAdvanceShiftsBoth(t *testing.T) {
	tr := NewTrack(800, 2)
	tr.Advance(0.5, 300)

	segs := tr.Segments()
	if !approx(segs[0].X, -150) || !approx(segs[1].X, 650) {
		t.Errorf("segments = %+v, expected -150 and 650", segs)
	}
}

func TestTrackWrapsSegment(t *testing.T) {
	tr := NewTrack(800, 2)

	// Exactly one viewport width: the first segment reaches -800 and wraps.
	tr.Advance(1, 800)

	segs := tr.Segments()
	if segs[0].X != 798 {
		t.Errorf("wrapped segment x = %f, expected 798", segs[0].X)
	}
	if !approx(segs[1].X, 0) {
		t.Errorf("second segment x = %f, expected 0", segs[1].X)
	}
}

func TestTrackCoversViewport(t *testing.T) {
	tr := NewTrack(800, 2)
	for i := 0; i < 2000; i++ {
		tr.Advance(1.0/60, 450)

		segs := tr.Segments()
		lo, hi := segs[0].X, segs[1].X
		if lo > hi {
			lo, hi = hi, lo
		}
		// Left segment must start at or before the viewport edge and the
		// right one must start no later than where the left one ends.
		if lo > 0 || hi > lo+800 {
			t.Fatalf("frame %d: gap in ground, segments %+v", i, segs)
		}
	}
}

func TestTrackCoversViewportAfterLongFrame(t *testing.T) {
	tests := []struct {
		name         string
		delta, speed float64
	}{
		{"exactly one width", 1, 800},
		{"two widths", 2, 800},
		{"stalled frame", 10, 300},
		{"width and a half", 1.5, 800},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := NewTrack(800, 2)
			tr.Advance(1.0/60, 300)
			tr.Advance(tc.delta, tc.speed)

			segs := tr.Segments()
			lo, hi := segs[0].X, segs[1].X
			if lo > hi {
				lo, hi = hi, lo
			}
			if lo > 0 || lo <= -800 || hi > lo+800 {
				t.Errorf("gap in ground after a %.0f unit shift, segments %+v", tc.delta*tc.speed, segs)
			}
		})
	}
}

func TestTrackReset(t *testing.T) {
	tr := NewTrack(800, 2)
	tr.Advance(0.3, 300)
	tr.Reset()

	if tr.Segments() != NewTrack(800, 2).Segments() {
		t.Errorf("Reset() should restore start positions, got %+v", tr.Segments())
	}
}
