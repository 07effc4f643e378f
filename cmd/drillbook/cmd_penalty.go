package main

import (
	"fmt"
	"io"
	"strings"

	"drillbook/internal/penalty"

	"github.com/spf13/cobra"
)

// penaltyCmd finds the best closing hour
var penaltyCmd = &cobra.Command{
	Use:   "penalty [log]",
	Short: "Find the closing hour with the lowest penalty for a Y/N customer log",
	Long: `Each character of the log is one hour: Y if customers came, N if not.
Closing at hour k costs one per N before k and one per Y from k on.
The earliest hour with the lowest cost wins.`,
	Example: `  drillbook penalty YNNYYNY`,
	RunE:    runPenalty,
}

func runPenalty(cmd *cobra.Command, args []string) error {
	text, err := readText(cmd, args)
	if err != nil {
		return err
	}

	// Args are joined with spaces; stdin usually ends with a newline.
	log := strings.Join(strings.Fields(text), "")

	result, err := penalty.BestClosingHour(log)
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), result, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "best hour: %d\nmin penalty: %d\n", result.Hour, result.Penalty)
		return err
	})
}
