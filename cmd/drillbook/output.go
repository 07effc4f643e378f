package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"drillbook/internal/config"

	"gopkg.in/yaml.v3"
)

// render writes v in the configured output format. text renders the
// human-readable form.
func render(w io.Writer, v interface{}, text func(io.Writer) error) error {
	switch cfg.Output.Format {
	case config.OutputJSON:
		data, err := encodeJSON(v, cfg.Output.Indent)
		if err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		if cfg.Output.Indent > 0 {
			enc.SetIndent(cfg.Output.Indent)
		}
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return text(w)
	}
}

// encodeJSON is compact when indent is zero.
func encodeJSON(v interface{}, indent int) ([]byte, error) {
	if indent == 0 {
		return json.Marshal(v)
	}
	return json.MarshalIndent(v, "", strings.Repeat(" ", indent))
}

func formatInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprint(n)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
