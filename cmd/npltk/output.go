package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/npillmayer/npltk/internal/config"
	"gopkg.in/yaml.v3"
)

// encode writes v to w in format. For the text format it calls text.
func encode(w io.Writer, format string, v interface{}, text func(io.Writer) error) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	return text(w)
}
