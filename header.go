package framing

import "bytes"

// stripHeader removes header from the front of input. An empty input is an
// empty stream, not a mismatch.
func stripHeader(strategy string, header, input []byte, partial bool) ([]byte, error) {
	if len(header) == 0 || len(input) == 0 {
		if partial && len(header) > 0 {
			return input, ErrIncomplete
		}
		return input, nil
	}
	if bytes.HasPrefix(input, header) {
		return input[len(header):], nil
	}
	if partial && len(input) < len(header) && bytes.HasPrefix(header, input) {
		return input, ErrIncomplete
	}
	got := input
	if len(got) > len(header) {
		got = got[:len(header)]
	}
	return input, &HeaderError{
		Strategy: strategy,
		Want:     header,
		Got:      bytes.Clone(got),
	}
}

// skipPast returns what follows the first delim in input. found is false
// when input holds no delim, and the whole input is skipped.
func skipPast(input []byte, delim byte) (rest []byte, found bool) {
	i := bytes.IndexByte(input, delim)
	if i < 0 {
		return nil, false
	}
	return input[i+1:], true
}
