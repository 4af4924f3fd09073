package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/repaso/internal/screens/quiz"
	"github.com/abhisek/repaso/internal/ui/theme"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget all review progress (settings and exam history are kept)",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		p := newPrinter(cmd)
		if !yes {
			ok, err := quiz.Confirm("Delete all review progress?", cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if !ok {
				p.println("aborted")
				return nil
			}
		}
		if err := d.app.Reset(cmd.Context()); err != nil {
			return err
		}
		p.println(theme.Correct.Render("progress reset"))
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}
