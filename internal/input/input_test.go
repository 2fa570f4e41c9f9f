package input

import (
	"bufio"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// pollSoon waits for the reader goroutine to feed the stream, then polls.
func pollSoon(s *Stream) Input {
	time.Sleep(10 * time.Millisecond)
	return s.Poll()
}

func TestPollMapsKeys(t *testing.T) {
	tests := []struct {
		name  string
		bytes string
		check func(t *testing.T, inp Input)
	}{
		{"left key", "a", func(t *testing.T, inp Input) { assert.True(t, inp.Left) }},
		{"right key", "d", func(t *testing.T, inp Input) { assert.True(t, inp.Right) }},
		{"thrust key", "w", func(t *testing.T, inp Input) { assert.True(t, inp.Thrust) }},
		{"fire key", " ", func(t *testing.T, inp Input) { assert.True(t, inp.Fire) }},
		{"restart key", "\r", func(t *testing.T, inp Input) { assert.True(t, inp.Restart) }},
		{"quit key", "q", func(t *testing.T, inp Input) { assert.True(t, inp.Quit) }},
		{"ctrl-c quits", "\x03", func(t *testing.T, inp Input) { assert.True(t, inp.Quit) }},
		{"up arrow thrusts", "\x1b[A", func(t *testing.T, inp Input) { assert.True(t, inp.Thrust) }},
		{"left arrow", "\x1b[D", func(t *testing.T, inp Input) { assert.True(t, inp.Left) }},
		{"right arrow", "\x1b[C", func(t *testing.T, inp Input) { assert.True(t, inp.Right) }},
		{"combination", "w a ", func(t *testing.T, inp Input) {
			assert.True(t, inp.Thrust)
			assert.True(t, inp.Left)
			assert.True(t, inp.Fire)
		}},
		{"unmapped byte", "x", func(t *testing.T, inp Input) { assert.Equal(t, Input{}, inp) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := StartStream(bufio.NewReader(strings.NewReader(tt.bytes)))
			tt.check(t, pollSoon(s))
		})
	}
}

func TestKeysReleaseAfterHoldWindow(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("w")))

	inp := pollSoon(s)
	assert.True(t, inp.Thrust)

	time.Sleep(keyHoldDuration + 10*time.Millisecond)
	inp = s.Poll()
	assert.False(t, inp.Thrust)
}

func TestPollOnClosedStream(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("")))
	time.Sleep(10 * time.Millisecond)

	// The reader goroutine closed the channel; polling stays safe.
	assert.Equal(t, Input{}, s.Poll())
	assert.Equal(t, Input{}, s.Poll())
}
