package framing

var tests = []struct {
	strategy Strategy
	payloads [][]byte
	data     []byte
}{
	{Newline{}, [][]byte{[]byte("ab"), []byte("cde")}, []byte("ab\ncde")},
	{Newline{}, [][]byte{[]byte("hello 你好")}, []byte("hello 你好")},
	{Netstring{}, [][]byte{[]byte("ab"), []byte("cde")}, []byte("2:ab,3:cde,")},
	{Netstring{}, [][]byte{[]byte(""), []byte("a\nb,c:")}, []byte("0:,6:a\nb,c:,")},
	{Netstring{Strict: true}, [][]byte{[]byte("hello world")}, []byte("11:hello world,")},
	{JSONSeq{}, [][]byte{[]byte(`{"a":1}`), []byte(`[2]`)}, []byte("\x1e{\"a\":1}\n\x1e[2]\n")},
	{SLIP{}, [][]byte{{0x01, slipEnd, 0x02}, {slipEsc}, {}}, []byte{
		0x01, slipEsc, slipEscEnd, 0x02, slipEnd,
		slipEsc, slipEscEsc, slipEnd,
		slipEnd,
	}},
	{JSONArray{}, [][]byte{[]byte(`{"a":[1,2]}`), []byte(`"x,]"`), []byte(`3`)}, []byte(`[{"a":[1,2]},"x,]",3]`)},
	{JSONArray{}, nil, []byte(`[]`)},
	{NoFraming{}, [][]byte{[]byte("whole stream")}, []byte("whole stream")},
}
