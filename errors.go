package framing

import (
	"errors"
	"fmt"
)

var (
	// ErrIncomplete means the buffered input doesn't hold a complete frame
	// yet. It is only returned by PartialUnrenderer step functions.
	ErrIncomplete = errors.New("incomplete frame")

	// ErrFrameTooLarge means a frame grew beyond the decoder's limit.
	ErrFrameTooLarge = errors.New("frame too large")

	// ErrUnknownStrategy means no strategy is registered under a name.
	ErrUnknownStrategy = errors.New("unknown framing strategy")

	errClosed = errors.New("encoder closed")
)

// FrameError is a malformed frame. The stream around it is still usable.
type FrameError struct {
	Strategy string
	Err      error
}

func newFrameError(strategy string, err error) error {
	return &FrameError{
		Strategy: strategy,
		Err:      err,
	}
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("%s: %s", e.Strategy, e.Err.Error())
}

func (e *FrameError) Unwrap() error {
	return e.Err
}

// Temporary returns true: reading may go on with the next frame.
func (e *FrameError) Temporary() bool {
	return true
}

// HeaderError means the stream doesn't start with the strategy's header.
// Nothing in the stream can be framed.
type HeaderError struct {
	Strategy string
	Want     []byte
	Got      []byte
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("%s: bad stream header: want %q, got %q", e.Strategy, e.Want, e.Got)
}

// Temporary returns false.
func (e *HeaderError) Temporary() bool {
	return false
}

// IsFrameError reports whether err is a recoverable per-frame error.
func IsFrameError(err error) bool {
	var fe *FrameError
	return errors.As(err, &fe)
}
