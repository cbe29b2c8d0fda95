package framing

import (
	"bytes"
	"fmt"
	"io"
)

// Encoder writes payloads to an io.Writer framed by a Renderer.
//
// The header is written with the first frame, or by Close when there was no
// frame. Close writes the terminator. An Encoder isn't safe for concurrent
// use.
type Encoder struct {
	w        io.Writer
	r        Renderer
	name     string
	boundary Boundary
	opts     options

	buf    bytes.Buffer
	frames int
	closed bool
	err    error
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer, r Renderer, opts ...Option) *Encoder {
	name := nameOf(r)
	return &Encoder{
		w:        w,
		r:        r,
		name:     name,
		boundary: r.Boundary(),
		opts:     newOptions("encoder", opts),
	}
}

// WriteFrame writes one payload. A write error is returned by every later
// call.
func (e *Encoder) WriteFrame(p []byte) error {
	if e.frames == 0 {
		return e.writeFirst(p)
	}
	return e.writeRest(p)
}

// Frames returns the number of payloads written so far.
func (e *Encoder) Frames() int {
	return e.frames
}

func (e *Encoder) writeFirst(p []byte) error {
	if err := e.check(); err != nil {
		return err
	}
	e.buf.Reset()
	e.buf.Write(e.r.Header())
	return e.frame(p, true)
}

func (e *Encoder) writeRest(p []byte) error {
	if err := e.check(); err != nil {
		return err
	}
	e.buf.Reset()
	return e.frame(p, false)
}

func (e *Encoder) check() error {
	if e.err != nil {
		return e.err
	}
	if e.closed {
		return errClosed
	}
	return nil
}

func (e *Encoder) frame(p []byte, first bool) error {
	switch b := e.boundary.(type) {
	case Bracket:
		prefix, suffix := b.Wrap(p)
		e.buf.Write(prefix)
		e.buf.Write(p)
		e.buf.Write(suffix)
	case Intersperse:
		if !first {
			e.buf.Write(b.Separator)
		}
		e.buf.Write(p)
	case General:
		e.buf.Write(b.Transform(p))
	default:
		e.err = fmt.Errorf("%s: unknown boundary %T", e.name, e.boundary)
		return e.err
	}
	if err := e.flush(); err != nil {
		return err
	}
	e.frames++
	e.opts.observer.FrameWritten(e.name, len(p))
	return nil
}

func (e *Encoder) flush() error {
	if _, err := e.buf.WriteTo(e.w); err != nil {
		e.err = err
		e.opts.logger.Error(err, "write frame failed", "strategy", e.name, "frames", e.frames)
		return err
	}
	return nil
}

// Close writes the terminator. It doesn't close the underlying writer.
// Calling Close again does nothing.
func (e *Encoder) Close() error {
	if e.closed {
		return e.err
	}
	e.closed = true
	if e.err != nil {
		return e.err
	}
	e.buf.Reset()
	if e.frames == 0 {
		e.buf.Write(e.r.Header())
	}
	e.buf.Write(e.r.Terminate())
	if e.buf.Len() == 0 {
		return nil
	}
	return e.flush()
}

// Render writes the values of g to w framed by r, then the terminator.
func Render(w io.Writer, r Renderer, g StreamGenerator[[]byte], opts ...Option) error {
	enc := NewEncoder(w, r, opts...)
	if err := g.GenerateStream(enc.writeFirst, enc.writeRest); err != nil {
		return err
	}
	return enc.Close()
}

// RenderBytes returns payloads framed by r.
func RenderBytes(r Renderer, payloads ...[]byte) []byte {
	var buf bytes.Buffer
	// Writing to a bytes.Buffer doesn't fail.
	_ = Render(&buf, r, FromSlice(payloads...))
	return buf.Bytes()
}
