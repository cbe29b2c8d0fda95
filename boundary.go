package framing

// Boundary describes how a single payload is delimited inside the stream.
// It is one of Bracket, Intersperse or General.
type Boundary interface {
	isBoundary()
}

// Bracket surrounds every payload with a prefix and a suffix computed from the
// payload.
type Bracket struct {
	Wrap func(payload []byte) (prefix, suffix []byte)
}

// Intersperse puts Separator between consecutive payloads. Nothing is written
// before the first payload or after the last one.
type Intersperse struct {
	Separator []byte
}

// General rewrites every payload before it is written, e.g. to escape it.
type General struct {
	Transform func(payload []byte) []byte
}

func (Bracket) isBoundary()     {}
func (Intersperse) isBoundary() {}
func (General) isBoundary()     {}
