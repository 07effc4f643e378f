package main

import (
	"fmt"
	"os"

	"drillbook/internal/config"
	"drillbook/internal/logging"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose      bool
	configPath   string
	outputFormat string
	inputFile    string

	// Loaded in PersistentPreRunE
	cfg    = config.DefaultConfig()
	logger = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "drillbook",
	Short: "Run small array and text-parsing drills against your own input",
	Long: `drillbook runs classic two-pointer array routines, a multi-value
header parser, a log id extractor and a closing-hour penalty scan.

Integer inputs are taken from arguments, --file, or stdin, separated by
whitespace or commas; put -- before negative numbers given as arguments.
Text inputs are taken from arguments, --file, or stdin.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// setup loads config, applies flag overrides and initializes logging.
func setup(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}

	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	if verbose {
		loaded.Logging.DebugMode = true
	}
	if outputFormat != "" {
		loaded.Output.Format = outputFormat
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	base, err := logging.Build(cfg.Logging)
	if err != nil {
		return err
	}
	logger = base.With(zap.String("run", uuid.NewString()[:8]))
	logging.Initialize(logger, cfg.Logging)

	logging.Get(logging.CategoryBoot).Debug("config loaded from %s", path)
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: $XDG_CONFIG_HOME/drillbook/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "Output format: json, yaml, text")
	rootCmd.PersistentFlags().StringVarP(&inputFile, "file", "f", "", "Read input from file instead of args/stdin")

	twoSumCmd.Flags().IntVar(&twoSumTarget, "target", 0, "Target sum (required)")
	_ = twoSumCmd.MarkFlagRequired("target")

	squaresCmd.Flags().BoolVar(&sortFirst, "sort", false, "Sort input before squaring")

	logIDsCmd.Flags().StringSliceVar(&masterIDs, "master", nil, "Known master ids (comma separated)")

	headersCmd.AddCommand(headersBatchCmd)

	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(threeSumCmd)
	rootCmd.AddCommand(squaresCmd)
	rootCmd.AddCommand(moveZeroesCmd)
	rootCmd.AddCommand(reverseCmd)
	rootCmd.AddCommand(twoSumCmd)
	rootCmd.AddCommand(headersCmd)
	rootCmd.AddCommand(logIDsCmd)
	rootCmd.AddCommand(penaltyCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
