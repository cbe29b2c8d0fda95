package framing

import "bytes"

const newline = '\n'

// Newline separates payloads with a single '\n'. There is no header, no
// terminator and no escaping: payloads must not contain '\n' themselves.
//
// Parsing never fails. Without a trailing '\n' the rest of the input is the
// last frame.
type Newline struct{}

// Name returns "newline".
func (Newline) Name() string { return "newline" }

// Header returns nil.
func (Newline) Header() []byte { return nil }

// Boundary returns an Intersperse with "\n".
func (Newline) Boundary() Boundary {
	return Intersperse{Separator: []byte{newline}}
}

// Terminate returns nil.
func (Newline) Terminate() []byte { return nil }

// UnrenderFrames returns input as it is with the newline step function.
func (Newline) UnrenderFrames(input []byte) ([]byte, StepFunc, error) {
	return input, newlineStep(true), nil
}

// UnrenderPartial is like UnrenderFrames, but a frame isn't complete until
// its '\n' arrived.
func (Newline) UnrenderPartial(input []byte) ([]byte, StepFunc, error) {
	return input, newlineStep(false), nil
}

func newlineStep(final bool) StepFunc {
	return func(input []byte) ([]byte, []byte, error) {
		if len(input) == 0 {
			return nil, nil, nil
		}
		i := bytes.IndexByte(input, newline)
		if i < 0 {
			if !final {
				return nil, input, ErrIncomplete
			}
			return input, nil, nil
		}
		return input[:i], input[i+1:], nil
	}
}
