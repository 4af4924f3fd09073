package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/repaso/internal/ui/theme"
)

var weakCmd = &cobra.Command{
	Use:   "weak [question-id]",
	Short: "List weak questions, or toggle the manual weak mark on one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scope, err := scopeFlag(cmd)
		if err != nil {
			return err
		}
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		p := newPrinter(cmd)
		if len(args) == 1 {
			weak, err := d.app.ToggleManualWeak(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if weak {
				p.println(fmt.Sprintf("%s marked weak", args[0]))
			} else {
				p.println(fmt.Sprintf("%s unmarked", args[0]))
			}
			return nil
		}

		ids := d.app.WeakIDs(scope)
		if len(ids) == 0 {
			p.println(theme.Subtitle.Render("No weak questions in " + scope.String()))
			return nil
		}
		for _, id := range ids {
			q, _ := d.app.Pool().Question(id)
			s, _ := d.app.Review(id)
			mark := " "
			if s.ManualWeak {
				mark = "*"
			}
			p.println(fmt.Sprintf("%s %-6s  %-60s  %d wrong", mark, id, truncate(q.Prompt, 60), s.WrongCount))
		}
		p.println(theme.Subtitle.Render(fmt.Sprintf("%d weak (* = marked by hand)", len(ids))))
		return nil
	},
}

func init() {
	weakCmd.Flags().Int("topic", 0, "Restrict the list to one topic (1-5)")
}
