package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/jorgecontrerasostos/unitconv/pkg/convert"
	"github.com/jorgecontrerasostos/unitconv/pkg/observability"
)

// convertCommand creates the one-shot conversion command.
func (c *CLI) convertCommand() *cobra.Command {
	var withUnits bool

	cmd := &cobra.Command{
		Use:   "convert <category> <direction> <value>",
		Short: "Convert a single value without the menu",
		Long: `Convert a single value and print the result.

Categories: temperature, distance, weight.
Directions: c2f, f2c (temperature), mi2km, km2mi (distance), lb2kg, kg2lb (weight).

Flags must come before the category so that negative values are not read
as flags.`,
		Example: `  unitconv convert temperature c2f 100
  unitconv convert --units distance km2mi 42.195
  unitconv convert weight lb2kg -5`,
		Args:              cobra.ExactArgs(3),
		ValidArgsFunction: completeConvertArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cat, err := convert.ParseCategory(args[0])
			if err != nil {
				return err
			}
			dir, err := convert.ParseDirection(cat, args[1])
			if err != nil {
				return err
			}
			conv, err := convert.Lookup(cat, dir)
			if err != nil {
				return err
			}

			start := time.Now()
			v, err := convert.ParseValue(args[2])
			if err != nil {
				observability.Conversion().OnInvalidInput(cmd.Context(), observability.InputKindNumber, args[2])
				return err
			}
			result := conv.Apply(v)
			observability.Conversion().OnConversion(cmd.Context(), cat.String(), dir.String(), time.Since(start))
			logger.Debug("convert", "category", cat, "direction", dir, "value", v, "result", result)

			printResult(cmd.OutOrStdout(), c.styles(cmd.OutOrStdout()),
				convert.FormatResult(v), convert.FormatResult(result), conv.From, conv.To, withUnits)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&withUnits, "units", "u", false, "print the input value and unit symbols")
	cmd.Flags().SetInterspersed(false)

	return cmd
}

// completeConvertArgs completes category and direction names.
func completeConvertArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		var names []string
		for _, cat := range convert.Categories() {
			names = append(names, cat.String())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	case 1:
		cat, err := convert.ParseCategory(args[0])
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		var names []string
		for _, dir := range cat.Directions() {
			names = append(names, dir.String())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	default:
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
}
