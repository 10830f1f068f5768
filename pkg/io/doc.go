// Package io exports the conversion table in machine-readable formats.
//
// # Formats
//
// [WriteTable] supports three encodings of the same data:
//
//   - json: an object with a "conversions" array
//   - toml: an array of [[conversion]] tables
//   - yaml: a mapping with a "conversions" sequence
//
// Each row carries the category, the direction name, the source and target
// unit symbols and the formula in terms of v:
//
//	{
//	  "conversions": [
//	    {"category": "temperature", "direction": "c2f", "from": "°C", "to": "°F", "formula": "v*1.8 + 32"}
//	  ]
//	}
//
// The conversion functions themselves are not serialized; the output is
// documentation for scripts and other tools, not a way to define new units.
package io
