package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/repaso/internal/screens/quiz"
	"github.com/abhisek/repaso/internal/ui/theme"
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Adaptive study: always the most useful next question",
	Long: `Runs an open-ended adaptive session. Each question is picked from due,
weak, new and learning questions in that order, avoiding the ones just seen.
Answer with the option letter or the arrows and enter, press ? first
when guessing, and q to stop.`,
	RunE: runStudy,
}

func init() {
	studyCmd.Flags().Int("topic", 0, "Restrict to one topic (1-5)")
	studyCmd.Flags().Bool("weak-first", false, "Go through the weak questions in scope first")
}

func runStudy(cmd *cobra.Command, args []string) error {
	scope, err := scopeFlag(cmd)
	if err != nil {
		return err
	}
	d, err := openDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	var priority []string
	if weakFirst, _ := cmd.Flags().GetBool("weak-first"); weakFirst {
		priority = d.app.WeakIDs(scope)
	}

	p := newPrinter(cmd)
	if _, ok := d.app.StartAdaptive(scope, priority); !ok {
		p.println(theme.Warning.Render("No questions in " + scope.String()))
		return nil
	}

	if err := runQuiz(cmd, quiz.AdaptiveSource{App: d.app, Scope: scope}, true); err != nil {
		return err
	}

	final, err := d.app.FinishAdaptive()
	if err != nil {
		return err
	}
	p.println(theme.Title.Render("Session over"))
	p.println(fmt.Sprintf("%d answered, %d correct", final.Answered, final.Correct))
	return nil
}
