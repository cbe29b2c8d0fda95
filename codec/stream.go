package codec

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/googollee/go-framing"
)

// Encode writes the values of g to w, each marshaled by c and framed by r.
func Encode[T any](w io.Writer, r framing.Renderer, c Codec, g framing.StreamGenerator[T], opts ...framing.Option) error {
	return framing.Render(w, r, framing.Map(g, func(v T) ([]byte, error) {
		return c.Marshal(v)
	}), opts...)
}

// Decoder reads values of type T from a framed stream.
type Decoder[T any] struct {
	dec *framing.Decoder
	c   Codec
}

// NewDecoder returns a Decoder reading frames of u from r and unmarshaling
// them with c.
func NewDecoder[T any](r io.Reader, u framing.Unrenderer, c Codec, opts ...framing.Option) *Decoder[T] {
	return &Decoder[T]{
		dec: framing.NewDecoder(r, u, opts...),
		c:   c,
	}
}

// Decode returns the next value. A frame which fails to unmarshal is reported
// as a *framing.FrameError like a malformed frame, and decoding may go on.
func (d *Decoder[T]) Decode() (T, error) {
	var ret T
	frame, err := d.dec.Next()
	if err != nil {
		return ret, err
	}
	if err := d.c.Unmarshal(frame, &ret); err != nil {
		return ret, &framing.FrameError{
			Strategy: d.c.Name(),
			Err:      fmt.Errorf("unmarshal: %w", err),
		}
	}
	return ret, nil
}

// All returns an iterator over the values of the stream, in the manner of
// framing.Decoder.Frames.
func (d *Decoder[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			v, err := d.Decode()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(v, err) {
				return
			}
			if err != nil && !framing.IsFrameError(err) {
				return
			}
		}
	}
}
