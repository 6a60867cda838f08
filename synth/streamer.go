package synth

import (
	"fmt"
	"io"
	"time"

	"github.com/faiface/beep"
)

// Streamer plays back a pre-rendered stereo buffer. It implements beep.StreamSeeker.
type Streamer struct {
	pos   int
	left  []float32
	right []float32
}

func NewStreamer(sr beep.SampleRate, clipLength time.Duration) *Streamer {
	bufLen := sr.N(clipLength)
	return &Streamer{
		left:  make([]float32, bufLen),
		right: make([]float32, bufLen),
	}
}

// Stream implements beep.Streamer.
func (s *Streamer) Stream(samples [][2]float64) (n int, ok bool) {
	left := make([]float32, len(samples))
	right := make([]float32, len(samples))

	n, err := s.Read(left, right)
	if err != nil {
		return 0, false
	}

	for i := 0; i < n; i++ {
		samples[i][0] = float64(left[i])
		samples[i][1] = float64(right[i])
	}
	return n, true
}

// Len returns the total number of samples of the Streamer.
func (s *Streamer) Len() int {
	// left and right have the same length
	return len(s.left)
}

// Position returns the current position of the Streamer.
func (s *Streamer) Position() int {
	return s.pos
}

// Seek sets the position of the Streamer to the provided value.
func (s *Streamer) Seek(p int) error {
	if p < 0 || p > len(s.left) {
		return fmt.Errorf("p is out of range: %d", p)
	}
	s.pos = p
	return nil
}

func (s *Streamer) Err() error {
	return nil
}

// Read copies from the current position into out buffers and advances. It
// returns io.EOF once the buffer is drained.
func (s *Streamer) Read(outLeft, outRight []float32) (int, error) {
	if s.pos >= len(s.left) {
		return 0, io.EOF
	}
	n := copy(outLeft, s.left[s.pos:])
	copy(outRight, s.right[s.pos:s.pos+n])
	s.pos += n
	return n, nil
}
