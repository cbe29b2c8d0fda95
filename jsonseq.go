package framing

import (
	"bytes"
	"errors"
)

const (
	recordSeparator = 0x1e
	lineFeed        = '\n'
)

var (
	errNoRecordSeparator = errors.New("record doesn't start with RS")
	errTruncatedRecord   = errors.New("truncated record")
)

// JSONSeq frames payloads as JSON text sequences (RFC 7464): every record is
// an RS byte, the payload and a line feed.
//
// Bytes before the first RS are reported as a FrameError. A record without
// its closing line feed at the end of the stream is reported as truncated.
type JSONSeq struct{}

// Name returns "json-seq".
func (JSONSeq) Name() string { return "json-seq" }

// Header returns nil.
func (JSONSeq) Header() []byte { return nil }

// Terminate returns nil.
func (JSONSeq) Terminate() []byte { return nil }

// Boundary returns a Bracket with RS as prefix and LF as suffix.
func (JSONSeq) Boundary() Boundary {
	return Bracket{Wrap: func([]byte) ([]byte, []byte) {
		return []byte{recordSeparator}, []byte{lineFeed}
	}}
}

// UnrenderFrames returns input as it is with the record step function.
func (s JSONSeq) UnrenderFrames(input []byte) ([]byte, StepFunc, error) {
	return input, s.step(true), nil
}

// UnrenderPartial is like UnrenderFrames, but a record isn't complete until
// the next RS arrived.
func (s JSONSeq) UnrenderPartial(input []byte) ([]byte, StepFunc, error) {
	return input, s.step(false), nil
}

func (s JSONSeq) step(final bool) StepFunc {
	name := s.Name()
	return func(input []byte) ([]byte, []byte, error) {
		// Consecutive RS bytes carry no record.
		for len(input) > 1 && input[0] == recordSeparator && input[1] == recordSeparator {
			input = input[1:]
		}
		if len(input) == 0 {
			return nil, nil, nil
		}
		if input[0] != recordSeparator {
			i := bytes.IndexByte(input, recordSeparator)
			if i < 0 {
				if !final {
					return nil, input, ErrIncomplete
				}
				return nil, nil, newFrameError(name, errNoRecordSeparator)
			}
			return nil, input[i:], newFrameError(name, errNoRecordSeparator)
		}

		record := input[1:]
		var rest []byte
		if i := bytes.IndexByte(record, recordSeparator); i >= 0 {
			record, rest = record[:i], record[i:]
		} else if !final {
			return nil, input, ErrIncomplete
		}
		if len(record) == 0 && rest == nil {
			// A lone RS at the end of the stream.
			return nil, nil, nil
		}
		if record[len(record)-1] != lineFeed {
			return nil, rest, newFrameError(name, errTruncatedRecord)
		}
		return record[:len(record)-1], rest, nil
	}
}
