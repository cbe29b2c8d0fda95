package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/googollee/go-framing"
)

type convertStats struct {
	Frames  int
	Skipped int
}

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert --to <strategy> [file]",
	Short: "Reframe a stream in another strategy",
	Long: `Read frames from file, or stdin, and write their payloads to stdout framed
by another strategy. Malformed frames are skipped unless --strict is set.

Example:
  framecat convert -s netstring --to newline records.ns`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		toName, _ := cmd.Flags().GetString("to")
		strict, _ := cmd.Flags().GetBool("strict")
		to, err := framing.Lookup(toName)
		if err != nil {
			return err
		}

		in, err := openInput(cmd, args)
		if err != nil {
			return err
		}
		defer in.Close()

		stats, err := convert(in, cmd.OutOrStdout(), inputStrategy(), to, strict, cfg.FramingOptions())
		if stats.Skipped > 0 {
			cmd.PrintErrf("skipped %d bad frames\n", stats.Skipped)
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().String("to", "newline", "framing strategy of the output")
	convertCmd.Flags().Bool("strict", false, "stop at the first malformed frame")
}

func convert(in io.Reader, out io.Writer, from framing.Unrenderer, to framing.Renderer, strict bool, opts []framing.Option) (convertStats, error) {
	var stats convertStats
	dec := framing.NewDecoder(in, from, opts...)
	frames := framing.Map(wellFormed(dec, strict, &stats.Skipped), func(p []byte) ([]byte, error) {
		stats.Frames++
		return p, nil
	})
	err := framing.Render(out, to, frames, opts...)
	return stats, err
}

// wellFormed yields the frames of dec. Malformed frames are counted to
// skipped, or end the stream if strict is set.
func wellFormed(dec *framing.Decoder, strict bool, skipped *int) framing.StreamGeneratorFunc[[]byte] {
	return func(first, rest func([]byte) error) error {
		sink := first
		for frame, err := range dec.Frames() {
			if err != nil {
				if strict || !framing.IsFrameError(err) {
					return err
				}
				*skipped++
				continue
			}
			if err := sink(frame); err != nil {
				return err
			}
			sink = rest
		}
		return nil
	}
}
