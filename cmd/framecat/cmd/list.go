package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/googollee/go-framing"
	"github.com/googollee/go-framing/codec"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the framing strategies and codecs",
	Args:  cobra.NoArgs,
	PersistentPreRunE: func(*cobra.Command, []string) error {
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "STRATEGY\tBOUNDARY\tHEADER\tTERMINATOR\tSTREAMING")
		for _, name := range framing.Names() {
			s, err := framing.Lookup(name)
			if err != nil {
				return err
			}
			_, partial := s.(framing.PartialUnrenderer)
			fmt.Fprintf(w, "%s\t%s\t%q\t%q\t%v\n", name, boundaryName(s.Boundary()), s.Header(), s.Terminate(), partial)
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "CODEC\tCONTENT TYPE")
		for _, name := range codec.Names() {
			cd, err := codec.Lookup(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%s\n", name, cd.ContentType())
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func boundaryName(b framing.Boundary) string {
	switch b.(type) {
	case framing.Bracket:
		return "bracket"
	case framing.Intersperse:
		return "intersperse"
	case framing.General:
		return "general"
	}
	return fmt.Sprintf("%T", b)
}
