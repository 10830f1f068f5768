package io

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/jorgecontrerasostos/unitconv/pkg/convert"
	"github.com/jorgecontrerasostos/unitconv/pkg/errors"
)

// Format is an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Formats lists the supported export formats.
var Formats = []Format{FormatJSON, FormatTOML, FormatYAML}

// ParseFormat resolves a format name, case-insensitively. "yml" is accepted
// as an alias for yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want json, toml or yaml)", s)
	}
}

type table struct {
	Conversions []row `json:"conversions" toml:"conversion" yaml:"conversions"`
}

type row struct {
	Category  string `json:"category" toml:"category" yaml:"category"`
	Direction string `json:"direction" toml:"direction" yaml:"direction"`
	From      string `json:"from" toml:"from" yaml:"from"`
	To        string `json:"to" toml:"to" yaml:"to"`
	Formula   string `json:"formula" toml:"formula" yaml:"formula"`
}

func newTable(convs []convert.Conversion) table {
	out := table{Conversions: make([]row, len(convs))}
	for i, c := range convs {
		out.Conversions[i] = row{
			Category:  c.Category.String(),
			Direction: c.Direction.String(),
			From:      c.From,
			To:        c.To,
			Formula:   c.Formula,
		}
	}
	return out
}

// WriteTable encodes convs in the given format and writes it to w.
func WriteTable(w io.Writer, format Format, convs []convert.Conversion) error {
	out := newTable(convs)

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(out); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
	}
	return nil
}
