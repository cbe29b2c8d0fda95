package framing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSONArrayStep(t *testing.T) {
	at := assert.New(t)

	tests := []struct {
		final bool
		input string
		frame []byte
		rest  string
		err   string
	}{
		{true, ` {"a": "}"} , 2]`, []byte(`{"a": "}"}`), ` 2]`, ""},
		{true, `"esc \" ,"]`, []byte(`"esc \" ,"`), `]`, ""},
		{true, `]`, nil, "", ""},
		{true, `  `, nil, "", ""},
		{true, `tru, 1]`, nil, ` 1]`, "invalid element"},
		{true, `,1]`, nil, `1]`, "unexpected ','"},
		{true, `[1, 2`, nil, "", "invalid element"},
		{true, `12`, []byte(`12`), "", ""},
		{false, `12`, nil, `12`, ErrIncomplete.Error()},
		{false, `12 `, nil, `12 `, ErrIncomplete.Error()},
		{false, `12,`, []byte(`12`), "", ""},
		{false, `{"a":[1,`, nil, `{"a":[1,`, ErrIncomplete.Error()},
		{false, `  `, nil, `  `, ErrIncomplete.Error()},
	}
	for _, test := range tests {
		var step StepFunc
		if test.final {
			_, step, _ = JSONArray{}.UnrenderFrames(nil)
		} else {
			_, step, _ = JSONArray{}.UnrenderPartial([]byte("["))
		}

		frame, rest, err := step([]byte(test.input))
		if test.err == "" {
			at.NoError(err, test.input)
		} else if at.Error(err, test.input) {
			at.Contains(err.Error(), test.err, test.input)
		}
		at.Equal(test.frame, frame, test.input)
		at.Equal(test.rest, string(rest), test.input)
	}
}

func TestJSONArrayPartialHeader(t *testing.T) {
	assert := assert.New(t)

	rest, _, err := JSONArray{}.UnrenderPartial([]byte("  "))
	assert.Equal(ErrIncomplete, err)
	assert.Equal([]byte("  "), rest)

	rest, _, err = JSONArray{}.UnrenderPartial([]byte(" [1"))
	assert.NoError(err)
	assert.Equal([]byte("1"), rest)
}
