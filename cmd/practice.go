package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/repaso/internal/screens/quiz"
	"github.com/abhisek/repaso/internal/session"
	"github.com/abhisek/repaso/internal/study"
	"github.com/abhisek/repaso/internal/ui/theme"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Fixed-length study session (due, weak and new questions)",
	Long: `Builds a session of about 60% due, 25% weak and 15% new questions.
Wrong answers come back a few questions later. With --wrong the session
covers only the weak questions.`,
	RunE: runPractice,
}

func init() {
	practiceCmd.Flags().String("preset", "", "Session length: short, medium or long (default from settings)")
	practiceCmd.Flags().Int("topic", 0, "Focus topic (1-5); its questions come first")
	practiceCmd.Flags().Bool("only-topic", false, "Use only questions from --topic")
	practiceCmd.Flags().Bool("wrong", false, "Review the weak questions only")
}

func runPractice(cmd *cobra.Command, args []string) error {
	scope, err := scopeFlag(cmd)
	if err != nil {
		return err
	}
	onlyTopic, _ := cmd.Flags().GetBool("only-topic")
	if onlyTopic && scope.All() {
		return fmt.Errorf("--only-topic needs --topic")
	}

	d, err := openDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	p := newPrinter(cmd)
	var active *session.Active
	if wrong, _ := cmd.Flags().GetBool("wrong"); wrong {
		active, err = d.app.StartTargeted(scope)
		if err != nil {
			p.println(theme.Warning.Render("Nothing to review in " + scope.String()))
			return nil
		}
	} else {
		settings := d.app.Settings()
		preset := settings.DefaultPreset
		if name, _ := cmd.Flags().GetString("preset"); name != "" {
			if preset, err = study.ParsePreset(name); err != nil {
				return err
			}
		}
		var breakdown study.Breakdown
		if cmd.Flags().Changed("topic") || cmd.Flags().Changed("only-topic") {
			active, breakdown = d.app.StartFocused(preset.Size(), scope.Topic, onlyTopic)
		} else {
			active, breakdown = d.app.StartStudy(preset.Size())
		}
		p.println(theme.Subtitle.Render(fmt.Sprintf("%d due · %d weak · %d new", breakdown.Due, breakdown.Weak, breakdown.New)))
	}
	if len(active.IDs) == 0 {
		p.println(theme.Warning.Render("No questions to practice"))
		return nil
	}

	if err := runQuiz(cmd, quiz.SessionSource{App: d.app}, true); err != nil {
		return err
	}
	sum, err := d.app.FinishSession()
	if err != nil {
		return err
	}
	p.println(theme.Title.Render("Session over"))
	p.println(fmt.Sprintf("%d answered, %d correct (%.0f%%)", sum.Answered, sum.Correct, sum.Accuracy*100))
	if len(sum.WrongIDs) > 0 {
		p.println(theme.Subtitle.Render(fmt.Sprintf("missed: %v", sum.WrongIDs)))
	}
	return nil
}
