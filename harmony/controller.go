package harmony

import (
	"log"
	"sync"

	"github.com/rapidmidiex/rmxharmony/pitch"
)

// Controller owns the current State and serialises transitions, so it can be
// shared between the UI loop and background commands.
type Controller struct {
	mu    sync.RWMutex
	state State
	log   *log.Logger
}

func NewController(initial State, l *log.Logger) *Controller {
	if l == nil {
		l = log.Default()
	}
	return &Controller{state: initial, log: l}
}

// State returns the current state. Callers must treat its maps as read-only.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Apply replaces the state with f(current) and returns the new state.
func (c *Controller) Apply(f func(State) State) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = f(c.state)
	return c.state
}

func (c *Controller) RotateDegrees(steps int) State {
	s := c.Apply(func(s State) State { return Rotate(s, steps) })
	c.log.Printf("rotate %+d: %s", steps, s.Title())
	return s
}

func (c *Controller) TransposeSemitoneBy(delta int) State {
	s := c.Apply(func(s State) State { return Transpose(s, delta) })
	c.log.Printf("transpose %+d: %s", delta, s.Title())
	return s
}

func (c *Controller) SetEnharmonicPreference(pc pitch.Class, b pitch.Bias) State {
	s := c.Apply(func(s State) State { return SetEnharmonicPreference(s, pc, b) })
	c.log.Printf("prefer %s for %d: %s", b, pc, s.Title())
	return s
}
