package eio

import (
	"bytes"
	"io"
	"testing"

	engineio "github.com/googollee/go-engine.io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/googollee/go-framing"
)

type fakeConn struct {
	typ     engineio.FrameType
	current *bytes.Buffer
	types   []engineio.FrameType
	data    [][]byte
}

func (c *fakeConn) NextWriter(ft engineio.FrameType) (io.WriteCloser, error) {
	c.current = bytes.NewBuffer(nil)
	c.typ = ft
	return c, nil
}

func (c *fakeConn) Write(p []byte) (int, error) {
	return c.current.Write(p)
}

func (c *fakeConn) Close() error {
	c.types = append(c.types, c.typ)
	c.data = append(c.data, c.current.Bytes())
	return nil
}

func (c *fakeConn) NextReader() (engineio.FrameType, io.ReadCloser, error) {
	if len(c.data) == 0 {
		return engineio.TEXT, nil, io.EOF
	}
	typ, b := c.types[0], c.data[0]
	c.types, c.data = c.types[1:], c.data[1:]
	return typ, io.NopCloser(bytes.NewReader(b)), nil
}

func TestSendReceive(t *testing.T) {
	should := assert.New(t)
	must := require.New(t)

	payloads := [][]byte{[]byte("hello"), {0xc0, 0xdb}, {}}
	conn := &fakeConn{}
	must.NoError(Send(conn, engineio.BINARY, framing.SLIP{}, framing.FromSlice(payloads...)))
	should.Equal([]engineio.FrameType{engineio.BINARY, engineio.BINARY, engineio.BINARY}, conn.types)

	var got [][]byte
	for frame, err := range Receive(conn, framing.SLIP{}).Frames() {
		must.NoError(err)
		got = append(got, frame)
	}
	should.Equal(payloads, got)
}

func TestSendText(t *testing.T) {
	should := assert.New(t)

	conn := &fakeConn{}
	err := Send(conn, engineio.TEXT, framing.JSONArray{}, framing.FromSlice([]byte("1"), []byte(`"a"`)))
	should.NoError(err)
	should.Equal([][]byte{[]byte("[1"), []byte(`,"a"`), []byte("]")}, conn.data)
}
