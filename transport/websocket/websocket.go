// Package websocket carries framed streams over gorilla websocket
// connections.
package websocket

import (
	"io"
	"time"

	"github.com/gorilla/websocket"

	"github.com/googollee/go-framing"
	"github.com/googollee/go-framing/transport"
)

const closeTimeout = time.Second

// NextReader reads text and binary messages of conn. A normal close ends the
// stream with io.EOF.
func NextReader(conn *websocket.Conn) transport.NextReader {
	return func() (io.Reader, error) {
		_, r, err := conn.NextReader()
		if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			return nil, io.EOF
		}
		if err != nil {
			return nil, err
		}
		return r, nil
	}
}

// NextWriter writes messages of messageType, websocket.TextMessage or
// websocket.BinaryMessage, to conn.
func NextWriter(conn *websocket.Conn, messageType int) transport.NextWriter {
	return func() (io.WriteCloser, error) {
		return conn.NextWriter(messageType)
	}
}

// Send renders the payloads of g framed by r to conn, one message per frame,
// then closes the stream normally.
func Send(conn *websocket.Conn, messageType int, r framing.Renderer, g framing.StreamGenerator[[]byte], opts ...framing.Option) error {
	if err := framing.Render(transport.NewWriter(NextWriter(conn, messageType)), r, g, opts...); err != nil {
		return err
	}
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	return conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeTimeout))
}

// Receive returns a Decoder reading frames of u across the messages of conn.
func Receive(conn *websocket.Conn, u framing.Unrenderer, opts ...framing.Option) *framing.Decoder {
	return framing.NewDecoder(transport.NewReader(NextReader(conn)), u, opts...)
}
