package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/googollee/go-framing"
	"github.com/googollee/go-framing/config"
	"github.com/googollee/go-framing/logger"
)

var (
	cfgFile string
	cfg     = config.DefaultConfig()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "framecat",
	Short: "Convert and inspect framed byte streams",
	Long: `framecat reads a stream of frames in one framing strategy and writes it
in another, checks streams for malformed frames, and serves streams over HTTP.

The settings come from a YAML or TOML profile given by --config; flags
override the profile.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgFile != "" {
			loaded, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = loaded
		}
		applyFlags(cmd.Flags())
		if err := cfg.Validate(); err != nil {
			return err
		}
		logger.Setup(cfg.Logging.Enable, cfg.Logging.Verbosity)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "profile file (.yaml, .yml or .toml)")
	rootCmd.PersistentFlags().StringP("strategy", "s", cfg.Strategy, "framing strategy of the input")
	rootCmd.PersistentFlags().String("codec", cfg.Codec, "codec of the payloads")
	rootCmd.PersistentFlags().Int("max-frame-size", cfg.MaxFrameSize, "max bytes buffered for one frame")
	rootCmd.PersistentFlags().CountP("verbose", "v", "log verbosity, repeat for more")
	rootCmd.PersistentFlags().Bool("quiet", false, "disable logging")
}

func applyFlags(flags *pflag.FlagSet) {
	if flags.Changed("strategy") {
		cfg.Strategy, _ = flags.GetString("strategy")
	}
	if flags.Changed("codec") {
		cfg.Codec, _ = flags.GetString("codec")
	}
	if flags.Changed("max-frame-size") {
		cfg.MaxFrameSize, _ = flags.GetInt("max-frame-size")
	}
	if flags.Changed("verbose") {
		cfg.Logging.Verbosity, _ = flags.GetCount("verbose")
	}
	if quiet, _ := flags.GetBool("quiet"); quiet {
		cfg.Logging.Enable = false
	}
}

func inputStrategy() framing.Strategy {
	// Validated in PersistentPreRunE.
	s, _ := framing.Lookup(cfg.Strategy)
	return s
}

func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}
