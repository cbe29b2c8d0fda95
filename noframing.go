package framing

// NoFraming writes payloads back to back with nothing around them. Reading
// returns the whole input as a single frame, so it only round-trips one
// payload per stream.
type NoFraming struct{}

func (NoFraming) Name() string      { return "none" }
func (NoFraming) Header() []byte    { return nil }
func (NoFraming) Terminate() []byte { return nil }

func (NoFraming) Boundary() Boundary {
	return General{Transform: func(p []byte) []byte { return p }}
}

func (NoFraming) UnrenderFrames(input []byte) ([]byte, StepFunc, error) {
	return input, func(input []byte) ([]byte, []byte, error) {
		if len(input) == 0 {
			return nil, nil, nil
		}
		return input, nil, nil
	}, nil
}
