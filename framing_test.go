package framing

import (
	"bytes"
	"testing"
	"testing/iotest"
	"testing/quick"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyBoundary(b Boundary, p []byte) []byte {
	switch b := b.(type) {
	case Bracket:
		prefix, suffix := b.Wrap(p)
		return append(append(append([]byte{}, prefix...), p...), suffix...)
	case Intersperse:
		return append(append([]byte{}, b.Separator...), p...)
	case General:
		return b.Transform(p)
	}
	return nil
}

func TestRender(t *testing.T) {
	assert := assert.New(t)

	for _, test := range tests {
		assert.Equal(test.data, RenderBytes(test.strategy, test.payloads...), test.strategy.Name())
	}
}

func TestUnrender(t *testing.T) {
	assert := assert.New(t)
	must := require.New(t)

	for _, test := range tests {
		results, err := Unrender(test.strategy, test.data)
		must.NoError(err, test.strategy.Name())

		var frames [][]byte
		for _, r := range results {
			must.NoError(r.Err, test.strategy.Name())
			frames = append(frames, r.Frame)
		}
		assert.Equal(test.payloads, frames, test.strategy.Name())
	}
}

func TestDecoderOneByteAtATime(t *testing.T) {
	must := require.New(t)

	for _, test := range tests {
		dec := NewDecoder(iotest.OneByteReader(bytes.NewReader(test.data)), test.strategy)

		var frames [][]byte
		for frame, err := range dec.Frames() {
			must.NoError(err, test.strategy.Name())
			frames = append(frames, frame)
		}
		if diff := cmp.Diff(test.payloads, frames); diff != "" {
			t.Errorf("%s: frames mismatch (-want +got):\n%s", test.strategy.Name(), diff)
		}
	}
}

type decoded struct {
	frames [][]byte
	errs   int
}

func decodeAll(t *testing.T, dec *Decoder) decoded {
	var ret decoded
	for frame, err := range dec.Frames() {
		if err != nil {
			require.True(t, IsFrameError(err), "%v", err)
			ret.errs++
			continue
		}
		ret.frames = append(ret.frames, frame)
	}
	return ret
}

func TestDecoderSplitReadsWithBadFrames(t *testing.T) {
	at := assert.New(t)

	tests := []struct {
		strategy Strategy
		data     []byte
		errs     int
	}{
		{Netstring{}, []byte("x:bad,3:cde,a,b:c,1:d,3:abcX1:a,"), 3},
		{Netstring{Strict: true}, []byte("x:bad,3:cde,3:abcX1:a,2:ok,5:ab"), 3},
		{SLIP{}, []byte{0x01, slipEnd, slipEsc, 0x00, slipEnd, 0x02, slipEnd, slipEsc}, 2},
		{JSONSeq{}, []byte("junk\x1e1\n\x1e\x1e2\x1e[3]\n\x1e4"), 3},
		{JSONArray{}, []byte(`[1, tru, "a,b", {"x":[1,2]}, ,2]`), 2},
		{Newline{}, []byte("a\n\nb"), 0},
	}
	for _, test := range tests {
		name := test.strategy.Name()
		_, partial := test.strategy.(PartialUnrenderer)
		require.True(t, partial, name)

		results, err := Unrender(test.strategy, test.data)
		require.NoError(t, err, name)
		var want decoded
		for _, r := range results {
			if r.Err != nil {
				want.errs++
				continue
			}
			want.frames = append(want.frames, r.Frame)
		}
		at.Equal(test.errs, want.errs, name)

		whole := decodeAll(t, NewDecoder(bytes.NewReader(test.data), test.strategy))
		split := decodeAll(t, NewDecoder(iotest.OneByteReader(bytes.NewReader(test.data)), test.strategy))
		halves := decodeAll(t, NewDecoder(iotest.HalfReader(bytes.NewReader(test.data)), test.strategy))
		if diff := cmp.Diff(want, whole, cmp.AllowUnexported(decoded{})); diff != "" {
			t.Errorf("%s: whole reads mismatch (-want +got):\n%s", name, diff)
		}
		if diff := cmp.Diff(want, split, cmp.AllowUnexported(decoded{})); diff != "" {
			t.Errorf("%s: one byte reads mismatch (-want +got):\n%s", name, diff)
		}
		if diff := cmp.Diff(want, halves, cmp.AllowUnexported(decoded{})); diff != "" {
			t.Errorf("%s: half reads mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func TestDescriptorsAreStable(t *testing.T) {
	assert := assert.New(t)
	payload := []byte("payload\xc0\xdb")

	for _, test := range tests {
		s := test.strategy
		assert.Equal(s.Header(), s.Header(), s.Name())
		assert.Equal(s.Terminate(), s.Terminate(), s.Name())
		assert.IsType(s.Boundary(), s.Boundary(), s.Name())
		assert.Equal(applyBoundary(s.Boundary(), payload), applyBoundary(s.Boundary(), payload), s.Name())
	}
}

func TestEmptyInput(t *testing.T) {
	assert := assert.New(t)
	must := require.New(t)

	for _, test := range tests {
		rest, step, err := test.strategy.UnrenderFrames(nil)
		must.NoError(err, test.strategy.Name())
		assert.Empty(rest, test.strategy.Name())

		frame, rest, err := step(rest)
		assert.Nil(frame, test.strategy.Name())
		assert.Empty(rest, test.strategy.Name())
		assert.NoError(err, test.strategy.Name())
	}
}

func TestNetstringRoundTrip(t *testing.T) {
	f := func(payloads [][]byte) bool {
		results, err := Unrender(Netstring{Strict: true}, RenderBytes(Netstring{}, payloads...))
		if err != nil || len(results) != len(payloads) {
			return false
		}
		for i, r := range results {
			if r.Err != nil || !bytes.Equal(r.Frame, payloads[i]) {
				return false
			}
		}
		return true
	}

	assert.Nil(t, quick.Check(f, nil))
}

func TestNewlineRoundTrip(t *testing.T) {
	f := func(payloads []string) bool {
		var in [][]byte
		for _, p := range payloads {
			p = string(bytes.ReplaceAll([]byte(p), []byte{'\n'}, nil))
			if p == "" {
				continue
			}
			in = append(in, []byte(p))
		}
		results, err := Unrender(Newline{}, RenderBytes(Newline{}, in...))
		if err != nil || len(results) != len(in) {
			return false
		}
		for i, r := range results {
			if !bytes.Equal(r.Frame, in[i]) {
				return false
			}
		}
		return true
	}

	assert.Nil(t, quick.Check(f, nil))
}

func TestSLIPRoundTrip(t *testing.T) {
	f := func(payloads [][]byte) bool {
		results, err := Unrender(SLIP{}, RenderBytes(SLIP{}, payloads...))
		if err != nil || len(results) != len(payloads) {
			return false
		}
		for i, r := range results {
			if r.Err != nil || !bytes.Equal(r.Frame, payloads[i]) {
				return false
			}
		}
		return true
	}

	assert.Nil(t, quick.Check(f, nil))
}
