package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"drillbook/internal/headers"
	"drillbook/internal/logging"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// headersCmd parses a header block
var headersCmd = &cobra.Command{
	Use:   "headers",
	Short: "Parse \"Name: value\" lines into a multi-value header map",
	Long: `Parses newline separated "Name: value" lines. Names are lower-cased.
A name seen once maps to its value; a repeated name maps to the list of all
its values in order. Lines without a colon are skipped.`,
	Example: `  printf 'Content-Type: a\nContent-Type: b\n' | drillbook headers -o json
  drillbook headers -f request.txt`,
	Args: cobra.NoArgs,
	RunE: runHeaders,
}

// headersBatchCmd parses several header files concurrently
var headersBatchCmd = &cobra.Command{
	Use:   "batch FILE...",
	Short: "Parse several header files concurrently",
	Long: `Reads and parses each file on its own goroutine, at most
batch.max_concurrency at a time. Results are printed in argument order.
The first unreadable file aborts the batch.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runHeadersBatch,
}

func runHeaders(cmd *cobra.Command, args []string) error {
	raw, err := readText(cmd, args)
	if err != nil {
		return err
	}

	m := headers.Parse(raw)
	logging.Get(logging.CategoryCLI).Info("headers: %d names", m.Len())

	return render(cmd.OutOrStdout(), m, func(w io.Writer) error {
		return writeHeaderText(w, m)
	})
}

// fileHeaders pairs a batch input with its parsed headers.
type fileHeaders struct {
	File    string       `json:"file" yaml:"file"`
	Headers *headers.Map `json:"headers" yaml:"headers"`
}

func runHeadersBatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	results, err := parseHeaderFiles(ctx, args, cfg.Batch.MaxConcurrency)
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), results, func(w io.Writer) error {
		for i, r := range results {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "== %s ==\n", r.File); err != nil {
				return err
			}
			if err := writeHeaderText(w, r.Headers); err != nil {
				return err
			}
		}
		return nil
	})
}

// parseHeaderFiles parses every path with at most limit files in flight.
func parseHeaderFiles(ctx context.Context, paths []string, limit int) ([]fileHeaders, error) {
	log := logging.Get(logging.CategoryCLI)
	results := make([]fileHeaders, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			results[i] = fileHeaders{File: path, Headers: headers.Parse(string(data))}
			log.Debug("parsed %s: %d names", path, results[i].Headers.Len())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func writeHeaderText(w io.Writer, m *headers.Map) error {
	var err error
	m.Each(func(name string, v headers.Value) {
		if err != nil {
			return
		}
		if s, ok := v.Single(); ok {
			_, err = fmt.Fprintf(w, "%s: %s\n", name, s)
			return
		}
		if _, err = fmt.Fprintf(w, "%s:\n", name); err != nil {
			return
		}
		for _, s := range v.Values() {
			if _, err = fmt.Fprintf(w, "  - %s\n", s); err != nil {
				return
			}
		}
	})
	return err
}
