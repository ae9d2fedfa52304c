// Package input turns the raw terminal byte stream into per-frame key state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a movement key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Input represents the current frame's input state. Movement keys are held;
// the remaining keys are taps that are only reported in the frame they arrive.
type Input struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool

	Quit    bool
	Space   bool
	Enter   bool
	Mute    bool
	Restart bool
	Number  int // Digit tapped this frame, -1 if none
	Pressed []byte
}

// Axis returns the steering direction, each axis in -1..1.
func (in Input) Axis() (x, y float64) {
	if in.Left {
		x--
	}
	if in.Right {
		x++
	}
	if in.Up {
		y--
	}
	if in.Down {
		y++
	}
	return x, y
}

// keyState tracks the last time each movement key was pressed.
type keyState struct {
	left  time.Time
	right time.Time
	up    time.Time
	down  time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
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

// ReadInput drains all available bytes from the stream (non-blocking).
// A closed stream reports Quit once its last bytes have been delivered.
func ReadInput(s *Stream) Input {
	var buf []byte
	closed := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in := s.apply(buf, time.Now())
	if closed && len(buf) == 0 {
		in.Quit = true
	}
	return in
}

// ResetKeyInput forgets held keys, so a restart does not inherit movement.
func ResetKeyInput(s *Stream) {
	s.state = keyState{}
}

// apply parses one frame of bytes received at now.
func (s *Stream) apply(buf []byte, now time.Time) Input {
	in := Input{Number: -1, Pressed: buf}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI (ESC [) and SS3 (ESC O) arrow sequences.
		if b == '\x1b' && i+2 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O') {
			if s.arrow(buf[i+2], now) {
				i += 2
				continue
			}
		}

		switch b {
		case 'a', 'A':
			s.state.left = now
		case 'd', 'D':
			s.state.right = now
		case 'w', 'W':
			s.state.up = now
		case 's', 'S':
			s.state.down = now
		case 'q', 'Q', '\x03':
			in.Quit = true
		case 'm', 'M':
			in.Mute = true
		case 'r', 'R':
			in.Restart = true
		case ' ':
			in.Space = true
		case '\n', '\r':
			in.Enter = true
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			in.Number = int(b - '0')
		}
	}

	in.Left = now.Sub(s.state.left) < keyHoldDuration
	in.Right = now.Sub(s.state.right) < keyHoldDuration
	in.Up = now.Sub(s.state.up) < keyHoldDuration
	in.Down = now.Sub(s.state.down) < keyHoldDuration
	return in
}

func (s *Stream) arrow(code byte, now time.Time) bool {
	switch code {
	case 'A':
		s.state.up = now
	case 'B':
		s.state.down = now
	case 'C':
		s.state.right = now
	case 'D':
		s.state.left = now
	default:
		return false
	}
	return true
}
