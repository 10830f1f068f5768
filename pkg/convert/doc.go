// Package convert is the unit conversion engine.
//
// # Overview
//
// Conversions are grouped into three [Category] values (temperature,
// distance, weight). Each category owns exactly two [Direction] values, one
// for each way between its pair of units. Every (Category, Direction) pair
// maps to a fixed affine formula:
//
//	Temperature  C -> F   v*1.8 + 32
//	Temperature  F -> C   (v-32) / 1.8
//	Distance     mi -> km v*1.60934
//	Distance     km -> mi v / 1.60934
//	Weight       lb -> kg v*0.453592
//	Weight       kg -> lb v / 0.453592
//
// The formulas are exposed both as plain functions ([CelsiusToFahrenheit] and
// friends) and as rows of a data table ([Table], [Lookup]) so that callers
// can dispatch on the pair instead of branching on it.
//
// # Input
//
// The formula functions accept any real number, including negative and
// fractional values, and never fail. Validation of user text happens in
// [ParseValue], which rejects empty, non-numeric and non-finite input with an
// INVALID_NUMBER error that records the raw text.
//
// # Output
//
// [FormatResult] renders a result the way the interactive menu prints it:
// integral values keep a trailing ".0" (212.0), other values use the
// shortest representation that round-trips.
//
// # Concurrency
//
// Everything in this package is stateless and safe for concurrent use.
package convert
