package framing

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"
)

// Decoder reads frames from an io.Reader.
//
// With a PartialUnrenderer frames are returned as soon as they are complete.
// Any other Unrenderer sees the whole stream once the reader hit io.EOF.
// A Decoder isn't safe for concurrent use.
type Decoder struct {
	r       io.Reader
	u       Unrenderer
	partial PartialUnrenderer
	name    string
	opts    options

	chunk   []byte
	buf     []byte
	step    StepFunc
	started bool
	final   bool
	eof     bool
	err     error
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader, u Unrenderer, opts ...Option) *Decoder {
	ret := &Decoder{
		r:    r,
		u:    u,
		name: nameOf(u),
		opts: newOptions("decoder", opts),
	}
	ret.partial, _ = u.(PartialUnrenderer)
	return ret
}

// Next returns the next frame.
//
// A *FrameError only concerns that frame, Next may be called again to get the
// following one. io.EOF means the stream is over. Any other error is fatal and
// returned by every later call.
func (d *Decoder) Next() ([]byte, error) {
	for {
		if d.err != nil {
			return nil, d.err
		}
		if d.eof {
			return d.nextFinal()
		}
		if d.partial != nil {
			frame, err := d.nextPartial()
			if !errors.Is(err, ErrIncomplete) {
				return frame, err
			}
		}
		if err := d.fill(); err != nil {
			d.err = err
		}
	}
}

// Frames returns an iterator over the frames of the stream. Frame errors are
// yielded with a nil frame and the iteration goes on; it stops after a fatal
// error, or quietly at the end of the stream.
func (d *Decoder) Frames() iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		for {
			frame, err := d.Next()
			if err == io.EOF {
				return
			}
			if !yield(frame, err) {
				return
			}
			if err != nil && !IsFrameError(err) {
				return
			}
		}
	}
}

// Buffered returns the bytes read from the reader but not consumed yet.
func (d *Decoder) Buffered() []byte {
	return d.buf
}

func (d *Decoder) nextPartial() ([]byte, error) {
	if !d.started {
		rest, step, err := d.partial.UnrenderPartial(d.buf)
		if errors.Is(err, ErrIncomplete) {
			return nil, err
		}
		if err != nil {
			return nil, d.fatal(err)
		}
		d.buf, d.step, d.started = rest, step, true
	}
	if len(d.buf) == 0 {
		return nil, ErrIncomplete
	}
	frame, rest, err := d.step(d.buf)
	if errors.Is(err, ErrIncomplete) {
		return nil, err
	}
	return d.emit(frame, rest, err)
}

func (d *Decoder) nextFinal() ([]byte, error) {
	if !d.final {
		input := d.buf
		if d.started {
			// The header is gone already, only the step function is needed.
			input = nil
		}
		rest, step, err := d.u.UnrenderFrames(input)
		if err != nil {
			return nil, d.fatal(err)
		}
		if !d.started {
			d.buf = rest
		}
		d.step, d.started, d.final = step, true, true
	}
	if len(d.buf) == 0 {
		d.err = io.EOF
		return nil, io.EOF
	}
	frame, rest, err := d.step(d.buf)
	if errors.Is(err, ErrIncomplete) {
		return nil, d.fatal(fmt.Errorf("%s: step wants more input at end of stream", d.name))
	}
	return d.emit(frame, rest, err)
}

func (d *Decoder) emit(frame, rest []byte, err error) ([]byte, error) {
	if len(rest) >= len(d.buf) && len(d.buf) > 0 {
		return nil, d.fatal(fmt.Errorf("%s: step made no progress", d.name))
	}
	d.buf = rest
	if frame == nil && err == nil {
		d.err = io.EOF
		return nil, io.EOF
	}
	if err != nil {
		d.opts.observer.FrameFailed(d.name, err)
		d.opts.logger.V(1).Info("skip bad frame", "strategy", d.name, "error", err.Error())
		return nil, err
	}
	d.opts.observer.FrameRead(d.name, len(frame))
	return bytes.Clone(frame), nil
}

func (d *Decoder) fill() error {
	if len(d.buf) >= d.opts.maxFrameSize {
		return fmt.Errorf("%w: %d bytes buffered", ErrFrameTooLarge, len(d.buf))
	}
	if d.chunk == nil {
		d.chunk = make([]byte, d.opts.bufferSize)
	}
	chunk := d.chunk
	if room := d.opts.maxFrameSize - len(d.buf); room < len(chunk) {
		chunk = chunk[:room]
	}
	n, err := d.r.Read(chunk)
	d.buf = append(d.buf, chunk[:n]...)
	if err == io.EOF {
		d.eof = true
		return nil
	}
	return err
}

func (d *Decoder) fatal(err error) error {
	d.err = err
	d.opts.observer.FrameFailed(d.name, err)
	d.opts.logger.Error(err, "decode stream failed", "strategy", d.name)
	return err
}

// Result is the outcome of one frame.
type Result struct {
	Frame []byte
	Err   error
}

// Unrender splits the complete stream input into frames. A frame error ends up
// in its Result; only a header error fails the whole call.
func Unrender(u Unrenderer, input []byte) ([]Result, error) {
	rest, step, err := u.UnrenderFrames(input)
	if err != nil {
		return nil, err
	}
	var ret []Result
	for len(rest) > 0 {
		frame, next, err := step(rest)
		if frame == nil && err == nil {
			break
		}
		if len(next) >= len(rest) {
			return ret, fmt.Errorf("%s: step made no progress", nameOf(u))
		}
		ret = append(ret, Result{Frame: frame, Err: err})
		rest = next
	}
	return ret, nil
}
