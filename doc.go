/*
Package framing emits and parses a sequence of payloads as one continuous byte
stream.

A framing strategy decides how a single payload is delimited in the stream: a
header written once, a boundary treatment applied to every payload and a
terminator written once. Rendering goes through an Encoder:

	enc := framing.NewEncoder(w, framing.Netstring{})
	for _, p := range payloads {
		if err := enc.WriteFrame(p); err != nil {
			return err
		}
	}
	return enc.Close()

Parsing steps through the input one frame at a time. A malformed frame is
reported as a *FrameError together with a usable remainder, so the next frame
can still be read:

	dec := framing.NewDecoder(r, framing.Netstring{})
	for {
		frame, err := dec.Next()
		if err == io.EOF {
			break
		}
		var fe *framing.FrameError
		if errors.As(err, &fe) {
			continue
		}
		if err != nil {
			return err
		}
		handle(frame)
	}

Payloads are bytes which are already encoded; see package codec for value
encoders, and the transport packages for HTTP and websocket glue.
*/
package framing
