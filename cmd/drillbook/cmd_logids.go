package main

import (
	"fmt"
	"io"
	"strings"

	"drillbook/internal/logging"
	"drillbook/internal/logids"

	"github.com/spf13/cobra"
)

var masterIDs []string

// logIDsCmd extracts and matches ids in log text
var logIDsCmd = &cobra.Command{
	Use:   "logids [text]",
	Short: "Extract id tokens from log text and match them against master ids",
	Example: `  drillbook logids --master txn_1001,cus_A99 "Refer to txn_1001 and cus_A9"`,
	RunE: runLogIDs,
}

// logIDsResult is the structured form of a logids run.
type logIDsResult struct {
	Extracted     []string `json:"extracted" yaml:"extracted"`
	ExactMatches  []string `json:"exact_matches" yaml:"exact_matches"`
	PrefixMatches []string `json:"prefix_matches" yaml:"prefix_matches"`
}

func runLogIDs(cmd *cobra.Command, args []string) error {
	text, err := readText(cmd, args)
	if err != nil {
		return err
	}

	ids := logids.Extract(text)
	result := logIDsResult{
		Extracted:     ids,
		ExactMatches:  logids.ExactMatches(ids, masterIDs),
		PrefixMatches: logids.PrefixMatches(ids, masterIDs),
	}
	logging.Get(logging.CategoryCLI).Info("logids: %d tokens, %d exact, %d prefix",
		len(ids), len(result.ExactMatches), len(result.PrefixMatches))

	return render(cmd.OutOrStdout(), result, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "extracted: %s\nexact: %s\nprefix: %s\n",
			strings.Join(result.Extracted, " "),
			strings.Join(result.ExactMatches, " "),
			strings.Join(result.PrefixMatches, " "))
		return err
	})
}
