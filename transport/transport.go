// Package transport carries framed streams over message-oriented
// connections, such as engine.io or websocket.
package transport

import (
	"io"

	"github.com/googollee/go-framing"
)

// NextReader returns the reader of the next incoming message. It returns
// io.EOF when no more messages come.
type NextReader func() (io.Reader, error)

// NextWriter returns the writer of the next outgoing message. The message is
// sent when the writer is closed.
type NextWriter func() (io.WriteCloser, error)

// Messages returns a generator over whole incoming messages.
func Messages(next NextReader) framing.StreamGeneratorFunc[[]byte] {
	return func(first, rest func([]byte) error) error {
		sink := first
		for {
			r, err := next()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			b, err := io.ReadAll(r)
			closeReader(r)
			if err != nil {
				return err
			}
			if err := sink(b); err != nil {
				return err
			}
			sink = rest
		}
	}
}

// Reader joins incoming messages into one byte stream, so frames may span
// messages.
type Reader struct {
	next NextReader
	cur  io.Reader
	err  error
}

// NewReader returns a Reader over the messages of next.
func NewReader(next NextReader) *Reader {
	return &Reader{
		next: next,
	}
}

func (r *Reader) Read(p []byte) (int, error) {
	for {
		if r.cur == nil {
			if r.err != nil {
				return 0, r.err
			}
			r.cur, r.err = r.next()
			if r.err != nil {
				r.cur = nil
				continue
			}
		}
		n, err := r.cur.Read(p)
		if err == io.EOF {
			closeReader(r.cur)
			r.cur = nil
			if n == 0 {
				continue
			}
			err = nil
		}
		return n, err
	}
}

// Writer sends every Write as one outgoing message.
type Writer struct {
	next NextWriter
}

// NewWriter returns a Writer over next.
func NewWriter(next NextWriter) *Writer {
	return &Writer{
		next: next,
	}
}

func (w *Writer) Write(p []byte) (int, error) {
	wc, err := w.next()
	if err != nil {
		return 0, err
	}
	n, err := wc.Write(p)
	if cerr := wc.Close(); err == nil {
		err = cerr
	}
	return n, err
}

func closeReader(r io.Reader) {
	if c, ok := r.(io.Closer); ok {
		c.Close()
	}
}
