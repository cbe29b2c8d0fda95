package framing

import (
	"bytes"
	"errors"
	"fmt"
)

// SLIP special bytes, RFC 1055.
const (
	slipEnd    = 0xc0
	slipEsc    = 0xdb
	slipEscEnd = 0xdc
	slipEscEsc = 0xdd
)

var errTrailingEsc = errors.New("ESC at end of frame")

// SLIP escapes END and ESC bytes inside each payload and ends it with END,
// as in RFC 1055. Unlike Newline it can carry any payload.
//
// An ESC followed by anything but ESC_END or ESC_ESC makes the frame a
// FrameError; the next frame starts after its END as usual.
type SLIP struct{}

// Name returns "slip".
func (SLIP) Name() string { return "slip" }

// Header returns nil.
func (SLIP) Header() []byte { return nil }

// Terminate returns nil.
func (SLIP) Terminate() []byte { return nil }

// Boundary returns a General which escapes the payload and appends END.
func (SLIP) Boundary() Boundary {
	return General{Transform: slipEscape}
}

// UnrenderFrames returns input as it is with the SLIP step function.
func (s SLIP) UnrenderFrames(input []byte) ([]byte, StepFunc, error) {
	return input, s.step(true), nil
}

// UnrenderPartial is like UnrenderFrames, but a frame isn't complete until
// its END arrived.
func (s SLIP) UnrenderPartial(input []byte) ([]byte, StepFunc, error) {
	return input, s.step(false), nil
}

func (s SLIP) step(final bool) StepFunc {
	name := s.Name()
	return func(input []byte) ([]byte, []byte, error) {
		if len(input) == 0 {
			return nil, nil, nil
		}
		packet, rest := input, []byte(nil)
		if i := bytes.IndexByte(input, slipEnd); i >= 0 {
			packet, rest = input[:i], input[i+1:]
		} else if !final {
			return nil, input, ErrIncomplete
		}
		frame, err := slipUnescape(packet)
		if err != nil {
			return nil, rest, newFrameError(name, err)
		}
		return frame, rest, nil
	}
}

func slipEscape(p []byte) []byte {
	ret := make([]byte, 0, len(p)+1)
	for _, b := range p {
		switch b {
		case slipEnd:
			ret = append(ret, slipEsc, slipEscEnd)
		case slipEsc:
			ret = append(ret, slipEsc, slipEscEsc)
		default:
			ret = append(ret, b)
		}
	}
	return append(ret, slipEnd)
}

func slipUnescape(p []byte) ([]byte, error) {
	ret := make([]byte, 0, len(p))
	for i := 0; i < len(p); i++ {
		if p[i] != slipEsc {
			ret = append(ret, p[i])
			continue
		}
		i++
		if i == len(p) {
			return nil, errTrailingEsc
		}
		switch p[i] {
		case slipEscEnd:
			ret = append(ret, slipEnd)
		case slipEscEsc:
			ret = append(ret, slipEsc)
		default:
			return nil, fmt.Errorf("invalid escape 0x%02x at offset %d", p[i], i)
		}
	}
	return ret, nil
}
