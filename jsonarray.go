package framing

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

var (
	arrayOpen  = []byte{'['}
	arrayClose = []byte{']'}
)

// JSONArray writes the stream as one JSON array, one payload per element.
// Payloads must be JSON values.
//
// A stream which doesn't start with '[' fails with a HeaderError. An element
// which isn't valid JSON is a FrameError; reading goes on with the next
// element. Anything after the closing ']' is ignored.
type JSONArray struct{}

// Name returns "json-array".
func (JSONArray) Name() string { return "json-array" }

// Header returns "[".
func (JSONArray) Header() []byte { return arrayOpen }

// Terminate returns "]".
func (JSONArray) Terminate() []byte { return arrayClose }

// Boundary returns an Intersperse with ",".
func (JSONArray) Boundary() Boundary {
	return Intersperse{Separator: []byte{','}}
}

// UnrenderFrames strips the leading '[' and returns the element step function.
func (a JSONArray) UnrenderFrames(input []byte) ([]byte, StepFunc, error) {
	rest, err := stripHeader(a.Name(), arrayOpen, trimSpace(input), false)
	if err != nil {
		return input, nil, err
	}
	return rest, a.step(true), nil
}

// UnrenderPartial is like UnrenderFrames, but an element isn't complete until
// the ',' or ']' after it arrived.
func (a JSONArray) UnrenderPartial(input []byte) ([]byte, StepFunc, error) {
	rest, err := stripHeader(a.Name(), arrayOpen, trimSpace(input), true)
	if err != nil {
		return input, nil, err
	}
	return rest, a.step(false), nil
}

func (a JSONArray) step(final bool) StepFunc {
	name := a.Name()
	return func(input []byte) ([]byte, []byte, error) {
		if len(input) == 0 {
			return nil, nil, nil
		}
		b := trimSpace(input)
		if len(b) == 0 {
			if !final {
				return nil, input, ErrIncomplete
			}
			return nil, nil, nil
		}
		if b[0] == ']' {
			return nil, nil, nil
		}

		n, complete := jsonValueLen(b)
		value, after := b[:n], trimSpace(b[n:])
		if !final && (!complete || len(after) == 0) {
			return nil, input, ErrIncomplete
		}
		if n == 0 {
			return nil, b[1:], newFrameError(name, fmt.Errorf("unexpected %q", b[0]))
		}
		if len(after) > 0 && after[0] == ',' {
			after = after[1:]
		}
		if !json.Valid(value) {
			return nil, after, newFrameError(name, fmt.Errorf("invalid element %q", value))
		}
		return value, after, nil
	}
}

// jsonValueLen returns the length of the JSON value at the start of b. It
// only tracks strings and nesting; the value itself is checked afterwards.
// complete is false when b ends before the value does.
func jsonValueLen(b []byte) (n int, complete bool) {
	depth := 0
	inString, escaped := false, false
	for i, c := range b {
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
				if depth == 0 {
					return i + 1, true
				}
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			if depth == 0 {
				return i, true
			}
			depth--
			if depth == 0 {
				return i + 1, true
			}
		case ',', ' ', '\t', '\r', '\n':
			if depth == 0 {
				return i, true
			}
		}
	}
	return len(b), false
}

func trimSpace(b []byte) []byte {
	return bytes.TrimLeft(b, " \t\r\n")
}
