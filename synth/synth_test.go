package synth_test

import (
	"os"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/rapidmidiex/rmxharmony/pitch"
	"github.com/rapidmidiex/rmxharmony/synth"
	"github.com/rapidmidiex/rmxharmony/vpiano"
	"github.com/stretchr/testify/require"
)

func TestVoice(t *testing.T) {
	// G7: G B D F
	got := synth.Voice([]pitch.Class{7, 11, 2, 5}, vpiano.C4)
	require.Equal(t, []uint8{67, 71, 74, 77}, got)

	// Repeated pitch classes go up an octave.
	got = synth.Voice([]pitch.Class{0, 0}, vpiano.C4)
	require.Equal(t, []uint8{60, 72}, got)

	// Keys past 127 are dropped.
	got = synth.Voice([]pitch.Class{0, 4, 7, 11, 2, 5, 9}, vpiano.C7)
	require.Equal(t, []uint8{96, 100, 103, 107, 110, 113, 117}, got)
	got = synth.Voice([]pitch.Class{7, 11, 2}, vpiano.Octave(9))
	require.Equal(t, []uint8{127}, got)
}

func TestChordMessages(t *testing.T) {
	on, off := synth.ChordMessages([]uint8{60, 64, 67}, 90)
	require.Len(t, on, 3)
	require.Len(t, off, 3)

	var ch, key, vel uint8
	require.True(t, on[1].GetNoteStart(&ch, &key, &vel))
	require.Equal(t, uint8(64), key)
	require.Equal(t, uint8(90), vel)

	require.True(t, off[2].GetNoteEnd(&ch, &key))
	require.Equal(t, uint8(67), key)
}

func TestStreamer(t *testing.T) {
	sr := beep.SampleRate(1000)
	s := synth.NewStreamer(sr, 10*time.Millisecond)
	require.Equal(t, 10, s.Len())

	samples := make([][2]float64, 4)
	n, ok := s.Stream(samples)
	require.True(t, ok)
	require.Equal(t, 4, n)
	require.Equal(t, 4, s.Position())

	samples = make([][2]float64, 8)
	n, ok = s.Stream(samples)
	require.True(t, ok)
	require.Equal(t, 6, n)

	n, ok = s.Stream(samples)
	require.False(t, ok)
	require.Equal(t, 0, n)

	require.NoError(t, s.Seek(0))
	require.Error(t, s.Seek(11))
	require.Error(t, s.Seek(-1))
	require.NoError(t, s.Err())
}

func TestPlayChord(t *testing.T) {
	path := os.Getenv("RMX_SOUNDFONT")
	if path == "" {
		t.Skip("RMX_SOUNDFONT not set")
	}

	p, err := synth.NewPlayer(synth.NewPlayerOpts{SoundFontPath: path})
	require.NoError(t, err)

	streamer := synth.NewStreamer(p.SampleRate(), time.Second)
	p.PlayChord(synth.Voice([]pitch.Class{0, 4, 7}, vpiano.C4), synth.DefaultVelocity, streamer)

	samples := make([][2]float64, streamer.Len())
	n, ok := streamer.Stream(samples)
	require.True(t, ok)

	silent := true
	for _, s := range samples[:n] {
		if s[0] != 0 || s[1] != 0 {
			silent = false
			break
		}
	}
	require.False(t, silent, "rendered chord should not be silent")
}

func TestNewPlayerMissingFile(t *testing.T) {
	_, err := synth.NewPlayer(synth.NewPlayerOpts{SoundFontPath: "does-not-exist.sf2"})
	require.ErrorIs(t, err, os.ErrNotExist)
}
