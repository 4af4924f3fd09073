package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/repaso/internal/ui/theme"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent practice exams",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		p := newPrinter(cmd)
		if n, _ := cmd.Flags().GetInt("answers"); n > 0 {
			return printAnswers(cmd, d, p, n)
		}

		history := d.app.History()
		if len(history) == 0 {
			p.println(theme.Subtitle.Render("No exams yet. Run 'repaso exam'."))
			return nil
		}

		loc := d.app.Location()
		p.println(theme.Label.Render(fmt.Sprintf("%-16s  %-8s  %7s  %8s  %s", "Finished", "Mode", "Score", "Time", "Result")))
		for _, r := range history {
			verdict := theme.Incorrect.Render("NO APTO")
			if r.Passed {
				verdict = theme.Correct.Render("APTO")
			}
			p.println(fmt.Sprintf("%-16s  %-8s  %7s  %8s  %s",
				r.FinishedAt.In(loc).Format("2006-01-02 15:04"),
				r.Mode,
				fmt.Sprintf("%d/%d", r.Correct, r.Total),
				time.Duration(r.TimeSpentSec)*time.Second,
				verdict))
		}
		return nil
	},
}

// printAnswers lists the last n recorded answers.
func printAnswers(cmd *cobra.Command, d *deps, p *printer, n int) error {
	recs, err := d.store.EventRepo().RecentAnswers(cmd.Context(), n)
	if err != nil {
		return err
	}
	loc := d.app.Location()
	for _, r := range recs {
		mark := theme.Correct.Render("✓")
		if !r.Correct {
			mark = theme.Incorrect.Render("✗")
		}
		p.println(fmt.Sprintf("%s %s  %-6s  chose %s  %s",
			mark, r.Timestamp.In(loc).Format("2006-01-02 15:04"), r.QuestionID, r.Chosen, r.Outcome))
	}
	if len(recs) == 0 {
		p.println(theme.Subtitle.Render("No answers recorded yet."))
	}
	return nil
}

func init() {
	historyCmd.Flags().Int("answers", 0, "Show the last N answers instead of exams")
}
