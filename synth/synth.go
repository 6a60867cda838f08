// Package synth renders chords through a SoundFont synthesizer for playback with beep.
package synth

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/sinshu/go-meltysynth/meltysynth"
	"gitlab.com/gomidi/midi/v2"
)

const (
	DefaultSampleRate = 44100
	DefaultVelocity   = 100
	// Bigger -> less CPU, slower response
	// Lower -> more CPU, faster response
	speakerLatency = 20 * time.Millisecond
)

type (
	// Player owns a synthesizer. The synthesizer is not safe for concurrent
	// use, so every call goes through mu.
	Player struct {
		mu         sync.Mutex
		synth      *meltysynth.Synthesizer
		sampleRate beep.SampleRate
	}

	NewPlayerOpts struct {
		// Path to an .sf2 SoundFont file.
		SoundFontPath string
		// Defaults to DefaultSampleRate.
		SampleRate int
	}
)

func NewPlayer(o NewPlayerOpts) (*Player, error) {
	if o.SampleRate <= 0 {
		o.SampleRate = DefaultSampleRate
	}

	// Load the SoundFont.
	sf2, err := os.Open(o.SoundFontPath)
	if err != nil {
		return nil, fmt.Errorf("open soundfont: %w", err)
	}
	defer sf2.Close()
	soundFont, err := meltysynth.NewSoundFont(sf2)
	if err != nil {
		return nil, fmt.Errorf("load soundfont: %w", err)
	}

	// Create the synthesizer.
	settings := meltysynth.NewSynthesizerSettings(int32(o.SampleRate))
	synthesizer, err := meltysynth.NewSynthesizer(soundFont, settings)
	if err != nil {
		return nil, fmt.Errorf("create synthesizer: %w", err)
	}

	return &Player{
		synth:      synthesizer,
		sampleRate: beep.SampleRate(o.SampleRate),
	}, nil
}

func (p *Player) SampleRate() beep.SampleRate {
	return p.sampleRate
}

// Send forwards a note start or note end to the synthesizer. Other messages are ignored.
func (p *Player) Send(msg midi.Message) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.send(msg)
}

func (p *Player) send(msg midi.Message) {
	var ch, key, vel uint8
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		p.synth.NoteOn(int32(ch), int32(key), int32(vel))
	case msg.GetNoteEnd(&ch, &key):
		p.synth.NoteOff(int32(ch), int32(key))
	}
}

// PlayChord strikes all keys together, renders the waveform into the
// streamer's buffers, then releases the keys.
func (p *Player) PlayChord(keys []uint8, velocity uint8, streamer *Streamer) {
	on, off := ChordMessages(keys, velocity)

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, msg := range on {
		p.send(msg)
	}
	// Render the waveform.
	p.synth.Render(streamer.left, streamer.right)
	for _, msg := range off {
		p.send(msg)
	}
}

// InitSpeaker prepares the audio device for the player's sample rate.
func (p *Player) InitSpeaker() error {
	return speaker.Init(p.sampleRate, p.sampleRate.N(speakerLatency))
}

// Audition renders the chord and plays it on the speaker, cutting off
// whatever was playing before.
func (p *Player) Audition(keys []uint8, clipLength time.Duration) {
	streamer := NewStreamer(p.sampleRate, clipLength)
	p.PlayChord(keys, DefaultVelocity, streamer)

	speaker.Clear()
	speaker.Play(beep.Take(p.sampleRate.N(clipLength), streamer))
}
