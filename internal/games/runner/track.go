package runner

import "math"

// Segment is one ground tile. Its width always equals the viewport width.
type Segment struct {
	X float64 // Left edge
}

// Track keeps two ground segments tiling the viewport. Whenever one of them
// scrolls fully off the left edge it is moved to the right edge, so the pair
// always covers the viewport plus one segment of buffer.
type Track struct {
	segments [2]Segment
	width    float64
	epsilon  float64
}

// NewTrack creates a track for a viewport of the given width.
func NewTrack(width, epsilon float64) *Track {
	t := &Track{width: width, epsilon: epsilon}
	t.Reset()
	return t
}

// Reset puts the segments back at 0 and width.
func (t *Track) Reset() {
	t.segments = [2]Segment{{X: 0}, {X: t.width}}
}

// Advance scrolls both segments left by speed*delta. A segment whose right
// edge passed the left edge of the viewport is attached epsilon before the
// end of the other segment: x = width-epsilon for a wrap exactly at -width,
// shifted by the overshoot otherwise. A shift longer than one segment is
// reduced modulo the width, since the ground pattern repeats every segment.
func (t *Track) Advance(delta, speed float64) {
	shift := speed * delta
	if shift > t.width {
		shift = math.Mod(shift, t.width)
	}
	for i := range t.segments {
		t.segments[i].X -= shift
	}
	for i := range t.segments {
		if t.segments[i].X <= -t.width {
			other := t.segments[1-i]
			t.segments[i].X = other.X + t.width - t.epsilon
		}
	}
}

// Segments returns a copy of both segments.
func (t *Track) Segments() [2]Segment {
	return t.segments
}

// Width returns the segment width.
func (t *Track) Width() float64 {
	return t.width
}
