package transport

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/googollee/go-framing"
)

type fakeConn struct {
	in      []string
	current *bytes.Buffer
	out     []string
	closed  int
}

func (c *fakeConn) NextReader() (io.Reader, error) {
	if len(c.in) == 0 {
		return nil, io.EOF
	}
	r := io.NopCloser(strings.NewReader(c.in[0]))
	c.in = c.in[1:]
	return r, nil
}

func (c *fakeConn) NextWriter() (io.WriteCloser, error) {
	c.current = bytes.NewBuffer(nil)
	return c, nil
}

func (c *fakeConn) Write(p []byte) (int, error) {
	return c.current.Write(p)
}

func (c *fakeConn) Close() error {
	c.out = append(c.out, c.current.String())
	c.closed++
	return nil
}

func TestMessages(t *testing.T) {
	conn := &fakeConn{in: []string{"a", "", "bc"}}

	var got []string
	err := Messages(conn.NextReader).GenerateStream(func(b []byte) error {
		got = append(got, "first:"+string(b))
		return nil
	}, func(b []byte) error {
		got = append(got, "rest:"+string(b))
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"first:a", "rest:", "rest:bc"}, got)
}

func TestMessagesError(t *testing.T) {
	rerr := errors.New("conn reset")
	next := func() (io.Reader, error) { return nil, rerr }

	err := Messages(next).GenerateStream(func([]byte) error { return nil }, func([]byte) error { return nil })
	assert.Equal(t, rerr, err)
}

func TestReaderJoinsMessages(t *testing.T) {
	assert := assert.New(t)
	must := require.New(t)

	conn := &fakeConn{in: []string{"3:a", "bc,", "", "2:", "de,"}}
	dec := framing.NewDecoder(NewReader(conn.NextReader), framing.Netstring{})

	var frames []string
	for frame, err := range dec.Frames() {
		must.NoError(err)
		frames = append(frames, string(frame))
	}
	assert.Equal([]string{"abc", "de"}, frames)
}

func TestWriterFramePerMessage(t *testing.T) {
	assert := assert.New(t)

	conn := &fakeConn{}
	err := framing.Render(NewWriter(conn.NextWriter), framing.Netstring{}, framing.FromSlice([]byte("ab"), []byte("c")))
	assert.NoError(err)
	assert.Equal([]string{"2:ab,", "1:c,"}, conn.out)
}
