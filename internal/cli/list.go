package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/jorgecontrerasostos/unitconv/pkg/convert"
	convio "github.com/jorgecontrerasostos/unitconv/pkg/io"
)

const formatText = "text"

// listCommand creates the command that prints the conversion table.
func (c *CLI) listCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the supported conversions and their formulas",
		Example: `  unitconv list
  unitconv list --format toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			convs := convert.Table()

			if format == "" || strings.EqualFold(format, formatText) {
				fmt.Fprintln(w, renderTable(c.styles(w), convs))
				return nil
			}

			f, err := convio.ParseFormat(format)
			if err != nil {
				return err
			}
			return convio.WriteTable(w, f, convs)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json, toml, yaml")
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json", "toml", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// renderTable renders convs as a bordered text table.
func renderTable(st styles, convs []convert.Conversion) string {
	rows := make([][]string, 0, len(convs))
	for _, conv := range convs {
		rows = append(rows, []string{
			conv.Category.String(),
			conv.Direction.String(),
			conv.From + " " + iconArrow + " " + conv.To,
			conv.Formula,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(st.border).
		Headers("Category", "Direction", "Units", "Formula").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 { // header
				return st.header
			}
			if col == 3 {
				return st.value
			}
			return st.dim
		})

	return t.Render()
}
