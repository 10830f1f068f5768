// Package menu implements the interactive text menu of the unit converter.
//
// The [Controller] is a two-level state machine. The top menu offers the
// three categories plus quit; each category menu offers its two conversion
// directions plus "go back". After every conversion attempt, successful or
// not, control returns to the top menu. Only an explicit "q"/"Q" at the top
// menu, the end of input, or context cancellation stops the loop.
//
// All I/O goes through the reader, writer and logger handed to [New], so a
// session can be driven from a string in tests:
//
//	var out bytes.Buffer
//	c := menu.New(strings.NewReader("1\n1\n100\nq\n"), &out, log.New(io.Discard))
//	_ = c.Run(ctx) // out now contains "212.0"
//
// Menu errors ("Option not found") are written to the output stream. Numeric
// parse errors go to the logger, which the CLI points at stderr.
package menu
