package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// pickCommand creates the full-screen menu command.
func (c *CLI) pickCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Full-screen converter driven by the arrow keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if !isTerminal(in) {
				return fmt.Errorf("pick needs an interactive terminal; run unitconv without a subcommand to read from a pipe")
			}

			p := tea.NewProgram(NewPickModel(cmd.Context()),
				tea.WithContext(cmd.Context()),
				tea.WithInput(in),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := p.Run(); err != nil {
				if errors.Is(err, tea.ErrProgramKilled) && cmd.Context().Err() != nil {
					return cmd.Context().Err()
				}
				return err
			}
			return nil
		},
	}
}
