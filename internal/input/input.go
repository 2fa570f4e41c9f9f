// Package input turns raw terminal bytes into per-frame boolean intents.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminal input has no key-up events, so a key counts as held while its
// autorepeat keeps arriving within this window.
const keyHoldDuration = 30 * time.Millisecond

// Input is one frame's worth of discrete intents.
type Input struct {
	Left    bool // Rotate counter-clockwise
	Right   bool // Rotate clockwise
	Thrust  bool // Accelerate along the facing vector
	Fire    bool // Spawn a bullet (subject to the fire cooldown)
	Restart bool // Start a fresh session from the game-over screen
	Quit    bool
}

// Source supplies one Input sample per frame.
type Source interface {
	Poll() Input
}

// keyState tracks the last time each key was seen.
type keyState struct {
	left    time.Time
	right   time.Time
	thrust  time.Time
	fire    time.Time
	restart time.Time
	quit    time.Time
}

// Stream reads terminal bytes on a background goroutine and derives held-key
// state from press timestamps. Implements Source.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and feeds the stream.
// The goroutine exits when r returns an error (e.g. the terminal closes).
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Poll drains all pending bytes (non-blocking), updates key timestamps, and
// reports which intents are currently held.
func (s *Stream) Poll() Input {
	now := time.Now()
	var buf []byte

	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				goto parse
			}
			buf = append(buf, b)
		default:
			goto parse
		}
	}

parse:
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequences: ESC [ <code> (arrow keys)
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A': // Up arrow
				s.state.thrust = now
				i += 2
				continue
			case 'C': // Right arrow
				s.state.right = now
				i += 2
				continue
			case 'D': // Left arrow
				s.state.left = now
				i += 2
				continue
			}
		}

		s.applyByte(b, now)
	}

	held := func(t time.Time) bool { return now.Sub(t) < keyHoldDuration }
	return Input{
		Left:    held(s.state.left),
		Right:   held(s.state.right),
		Thrust:  held(s.state.thrust),
		Fire:    held(s.state.fire),
		Restart: held(s.state.restart),
		Quit:    held(s.state.quit),
	}
}

// applyByte updates key timestamps for a single non-sequence byte.
func (s *Stream) applyByte(b byte, now time.Time) {
	switch b {
	case 'a', 'A', 'j', 'J':
		s.state.left = now
	case 'd', 'D', 'l', 'L':
		s.state.right = now
	case 'w', 'W', 'i', 'I':
		s.state.thrust = now
	case ' ':
		s.state.fire = now
	case '\n', '\r':
		s.state.restart = now
	case 'q', 'Q', '\x03':
		s.state.quit = now
	}
}

var _ Source = (*Stream)(nil)
