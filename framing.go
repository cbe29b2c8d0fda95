package framing

// Renderer describes how a stream of payloads is written.
//
// All methods are pure: they return the same value on every call.
type Renderer interface {
	// Header is written once before the first payload. It may be empty.
	Header() []byte
	// Boundary is applied to every payload.
	Boundary() Boundary
	// Terminate is written once after the last payload. It may be empty.
	Terminate() []byte
}

// StepFunc peels one frame off the front of input.
//
// It returns the frame and the bytes left after it. rest is usable even when
// err is not nil, so a caller may skip a malformed frame and keep going.
// A nil frame with a nil error means the input holds no more frames; stepping
// an empty input always returns (nil, nil, nil).
type StepFunc func(input []byte) (frame, rest []byte, err error)

// Unrenderer describes how a stream of payloads is read back.
type Unrenderer interface {
	// UnrenderFrames strips the header from input and returns the rest of it
	// together with the step function for the frames that follow. input is
	// taken as the complete stream: a truncated trailing frame is returned
	// as it is.
	UnrenderFrames(input []byte) (rest []byte, step StepFunc, err error)
}

// PartialUnrenderer is an Unrenderer which can tell a frame that has not fully
// arrived yet apart from a final one.
//
// The header strip and the step function returned by UnrenderPartial report
// ErrIncomplete, leaving the input untouched, when more bytes are needed.
type PartialUnrenderer interface {
	Unrenderer
	UnrenderPartial(input []byte) (rest []byte, step StepFunc, err error)
}

// Strategy is a named framing which can both render and unrender.
type Strategy interface {
	Renderer
	Unrenderer
	// Name identifies the strategy in a registry and in errors.
	Name() string
}
