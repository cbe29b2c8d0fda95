// Package eio carries framed streams over engine.io connections.
package eio

import (
	"io"

	engineio "github.com/googollee/go-engine.io"

	"github.com/googollee/go-framing"
	"github.com/googollee/go-framing/transport"
)

// Conn is the part of engineio.Conn used to move frames.
type Conn interface {
	NextReader() (engineio.FrameType, io.ReadCloser, error)
	NextWriter(typ engineio.FrameType) (io.WriteCloser, error)
}

// NextReader reads messages of conn of any frame type.
func NextReader(conn Conn) transport.NextReader {
	return func() (io.Reader, error) {
		_, r, err := conn.NextReader()
		if err != nil {
			return nil, err
		}
		return r, nil
	}
}

// NextWriter writes messages of type typ to conn.
func NextWriter(conn Conn, typ engineio.FrameType) transport.NextWriter {
	return func() (io.WriteCloser, error) {
		return conn.NextWriter(typ)
	}
}

// Send renders the payloads of g framed by r to conn, one message per frame.
func Send(conn Conn, typ engineio.FrameType, r framing.Renderer, g framing.StreamGenerator[[]byte], opts ...framing.Option) error {
	return framing.Render(transport.NewWriter(NextWriter(conn, typ)), r, g, opts...)
}

// Receive returns a Decoder reading frames of u across the messages of conn.
func Receive(conn Conn, u framing.Unrenderer, opts ...framing.Option) *framing.Decoder {
	return framing.NewDecoder(transport.NewReader(NextReader(conn)), u, opts...)
}
