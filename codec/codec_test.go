package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X int    `json:"x" yaml:"x"`
	Y int    `json:"y" yaml:"y"`
	N string `json:"n,omitempty" yaml:"n,omitempty"`
}

func TestCodecs(t *testing.T) {
	assert := assert.New(t)
	must := require.New(t)

	in := point{X: 1, Y: 2, N: "a\nb"}
	for _, c := range []Codec{JSON, YAML} {
		b, err := c.Marshal(in)
		must.NoError(err, c.Name())
		var out point
		must.NoError(c.Unmarshal(b, &out), c.Name())
		assert.Equal(in, out, c.Name())
	}

	b, err := JSON.Marshal(in)
	must.NoError(err)
	assert.Equal(`{"x":1,"y":2,"n":"a\nb"}`, string(b))
}

func TestRaw(t *testing.T) {
	assert := assert.New(t)

	b, err := Raw.Marshal("abc")
	assert.NoError(err)
	assert.Equal([]byte("abc"), b)

	var s string
	assert.NoError(Raw.Unmarshal([]byte("def"), &s))
	assert.Equal("def", s)

	var p []byte
	assert.NoError(Raw.Unmarshal([]byte("ghi"), &p))
	assert.Equal([]byte("ghi"), p)

	_, err = Raw.Marshal(1)
	assert.Error(err)
	assert.Error(Raw.Unmarshal(nil, new(int)))
}

func TestLookup(t *testing.T) {
	assert := assert.New(t)

	c, err := Lookup("json")
	assert.NoError(err)
	assert.Equal("application/json", c.ContentType())

	_, err = Lookup("xml")
	assert.ErrorContains(err, `unknown codec "xml"`)

	assert.Equal([]string{"json", "raw", "yaml"}, Names())
}
