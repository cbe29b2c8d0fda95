package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/googollee/go-framing"
	"github.com/googollee/go-framing/codec"
)

type report struct {
	Frames int
	Bad    int
	Bytes  int
}

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Check a stream for malformed frames",
	Long: `Decode every frame of file, or stdin, and report how many are well formed.
With --codec other than raw each payload must also unmarshal.

Example:
  framecat check -s json-seq --codec json events.seq`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := openInput(cmd, args)
		if err != nil {
			return err
		}
		defer in.Close()

		// Validated in PersistentPreRunE.
		cd, _ := codec.Lookup(cfg.Codec)
		r, err := check(in, inputStrategy(), cd, cfg.FramingOptions())
		cmd.Printf("frames: %d, bad: %d, bytes: %d\n", r.Frames, r.Bad, r.Bytes)
		if err != nil {
			return err
		}
		if r.Bad > 0 {
			return fmt.Errorf("%d bad frames", r.Bad)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func check(in io.Reader, u framing.Unrenderer, cd codec.Codec, opts []framing.Option) (report, error) {
	var r report
	dec := framing.NewDecoder(in, u, opts...)
	for frame, err := range dec.Frames() {
		if err != nil {
			if !framing.IsFrameError(err) {
				return r, err
			}
			r.Bad++
			continue
		}
		if cd != codec.Raw {
			var v interface{}
			if err := cd.Unmarshal(frame, &v); err != nil {
				r.Bad++
				continue
			}
		}
		r.Frames++
		r.Bytes += len(frame)
	}
	return r, nil
}
