package io

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/jorgecontrerasostos/unitconv/pkg/convert"
	"github.com/jorgecontrerasostos/unitconv/pkg/errors"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"TOML", FormatTOML, false},
		{"yml", FormatYAML, false},
		{" yaml ", FormatYAML, false},
		{"csv", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("error code = %v", errors.GetCode(err))
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWriteTableDecodes(t *testing.T) {
	decoders := map[Format]func([]byte, *table) error{
		FormatJSON: func(b []byte, v *table) error { return json.Unmarshal(b, v) },
		FormatTOML: func(b []byte, v *table) error { return toml.Unmarshal(b, v) },
		FormatYAML: func(b []byte, v *table) error { return yaml.Unmarshal(b, v) },
	}

	for _, format := range Formats {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteTable(&buf, format, convert.Table()); err != nil {
				t.Fatalf("WriteTable() error = %v", err)
			}

			var got table
			if err := decoders[format](buf.Bytes(), &got); err != nil {
				t.Fatalf("decode: %v\n%s", err, buf.String())
			}
			if len(got.Conversions) != 6 {
				t.Fatalf("decoded %d rows, want 6", len(got.Conversions))
			}
			first := got.Conversions[0]
			if first.Category != "temperature" || first.Direction != "c2f" || first.Formula != "v*1.8 + 32" {
				t.Errorf("first row = %+v", first)
			}
			if last := got.Conversions[5]; last.From != "kg" || last.To != "lb" {
				t.Errorf("last row = %+v", last)
			}
		})
	}
}

func TestWriteTableUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTable(&buf, Format("xml"), convert.Table())
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("WriteTable() error = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written for an unknown format")
	}
}
