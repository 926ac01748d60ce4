// Package trace writes per-frame session records as CSV.
package trace

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

// Frame is one CSV row.
type Frame struct {
	Frame    int     `csv:"frame"`
	Time     float64 `csv:"time"`
	Distance float64 `csv:"distance"`
	Score    int     `csv:"score"`
	Speed    float64 `csv:"speed"`
	PlayerY  float64 `csv:"player_y"`
	State    string  `csv:"state"`
	Cleared  int     `csv:"cleared"`
	GameOver bool    `csv:"game_over"`
}

// FromSnapshot builds a row from a session snapshot taken at elapsed seconds.
func FromSnapshot(s runner.Snapshot, elapsed float64) Frame {
	return Frame{
		Frame:    s.Frames,
		Time:     elapsed,
		Distance: s.Distance,
		Score:    s.Score,
		Speed:    s.Speed,
		PlayerY:  s.Player.Y,
		State:    s.Player.State.String(),
		Cleared:  s.Cleared,
		GameOver: s.GameOver,
	}
}

// Writer appends frames to a CSV stream. The header is written with the
// first frame.
type Writer struct {
	out           io.Writer
	closer        io.Closer
	headerWritten bool
	rows          int
}

// NewWriter writes frames to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{out: w}
}

// NewWriteCloser writes frames to wc and closes it on Close.
func NewWriteCloser(wc io.WriteCloser) *Writer {
	return &Writer{out: wc, closer: wc}
}

// Create opens (or truncates) path for writing.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating trace %s: %w", path, err)
	}
	return NewWriteCloser(f), nil
}

// Write appends one frame.
func (w *Writer) Write(f Frame) error {
	records := []Frame{f}

	if !w.headerWritten {
		if err := gocsv.Marshal(records, w.out); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
		w.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, w.out); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
	}

	w.rows++
	return nil
}

// Rows returns the number of frames written.
func (w *Writer) Rows() int {
	return w.rows
}

// Close closes the underlying file when the writer owns one.
func (w *Writer) Close() error {
	if w.closer == nil {
		return nil
	}
	return w.closer.Close()
}
