package framing

import (
	"bytes"
	"fmt"
	"strconv"
)

const (
	netstringColon = ':'
	netstringComma = ','
)

// Netstring frames every payload as "<decimal length>:<payload>,", see
// https://cr.yp.to/proto/netstrings.txt.
//
// By default the byte after a payload is dropped without looking at it. Set
// Strict to report a FrameError when it isn't ','.
//
// A malformed frame is skipped up to the first ',' after it. A length prefix
// ends at the first ':' or ',', so "a,b:c," holds two bad frames, "a" and
// "b". Resyncing only depends on bytes already seen, which keeps the result
// the same however the input is split into reads.
type Netstring struct {
	Strict bool
}

// Name returns "netstring", or "netstring-strict" in strict mode.
func (n Netstring) Name() string {
	if n.Strict {
		return "netstring-strict"
	}
	return "netstring"
}

// Header returns nil.
func (Netstring) Header() []byte { return nil }

// Boundary returns a Bracket with the length prefix and the ',' suffix.
func (Netstring) Boundary() Boundary {
	return Bracket{Wrap: netstringWrap}
}

// Terminate returns nil.
func (Netstring) Terminate() []byte { return nil }

// UnrenderFrames returns input as it is with the netstring step function.
func (n Netstring) UnrenderFrames(input []byte) ([]byte, StepFunc, error) {
	return input, n.step(true), nil
}

// UnrenderPartial is like UnrenderFrames, but a frame isn't complete until
// its payload and terminator arrived.
func (n Netstring) UnrenderPartial(input []byte) ([]byte, StepFunc, error) {
	return input, n.step(false), nil
}

func netstringWrap(payload []byte) ([]byte, []byte) {
	prefix := strconv.AppendInt(nil, int64(len(payload)), 10)
	prefix = append(prefix, netstringColon)
	return prefix, []byte{netstringComma}
}

// lengthError keeps the message other netstring peers expect.
type lengthError []byte

func (e lengthError) Error() string {
	return "Bad netstring frame, couldn't parse value as integer value: " + string(e)
}

func (n Netstring) step(final bool) StepFunc {
	name := n.Name()
	return func(input []byte) ([]byte, []byte, error) {
		if len(input) == 0 {
			return nil, nil, nil
		}

		i := bytes.IndexByte(input, netstringColon)
		if c := bytes.IndexByte(input, netstringComma); c >= 0 && (i < 0 || c < i) {
			return nil, input[c+1:], newFrameError(name, lengthError(bytes.Clone(input[:c])))
		}
		if i < 0 {
			if !final {
				return nil, input, ErrIncomplete
			}
			return nil, nil, newFrameError(name, lengthError(bytes.Clone(input)))
		}
		l, ok := parseLength(input[:i])
		if !ok {
			rest, found := skipPast(input[i+1:], netstringComma)
			if !found && !final {
				return nil, input, ErrIncomplete
			}
			return nil, rest, newFrameError(name, lengthError(bytes.Clone(input[:i])))
		}

		body := input[i+1:]
		if len(body) <= l {
			if !final {
				return nil, input, ErrIncomplete
			}
			if n.Strict && len(body) < l {
				return nil, nil, newFrameError(name, fmt.Errorf("truncated payload: want %d bytes, got %d", l, len(body)))
			}
			if n.Strict {
				return nil, nil, newFrameError(name, fmt.Errorf("missing ',' after %d bytes payload", l))
			}
			// The stream ended early: take what is there.
			return body, nil, nil
		}

		frame, rest := body[:l], body[l+1:]
		if n.Strict && body[l] != netstringComma {
			rest, found := skipPast(body[l:], netstringComma)
			if !found && !final {
				return nil, input, ErrIncomplete
			}
			return nil, rest, newFrameError(name, fmt.Errorf("want ',' after %d bytes payload, got %q", l, body[l]))
		}
		return frame, rest, nil
	}
}

// parseLength accepts a non-empty run of digits fitting an int.
func parseLength(b []byte) (int, bool) {
	if len(b) == 0 || !isDigits(b) {
		return 0, false
	}
	l, err := strconv.Atoi(string(b))
	if err != nil {
		return 0, false
	}
	return l, true
}

func isDigits(b []byte) bool {
	for _, c := range b {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
