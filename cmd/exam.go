package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/repaso/internal/bank"
	"github.com/abhisek/repaso/internal/exam"
	"github.com/abhisek/repaso/internal/screens/quiz"
	"github.com/abhisek/repaso/internal/ui/theme"
)

var examCmd = &cobra.Command{
	Use:   "exam",
	Short: "Timed 25-question practice exam (simulacro)",
	Long: `Runs a 25-question exam with the official topic distribution and a
45-minute limit. 15 correct answers pass. Answers are not revealed until
the end; unanswered questions count as wrong.`,
	RunE: runExam,
}

func init() {
	examCmd.Flags().String("mode", string(exam.ModeOfficial), "official (random) or adaptive (questions you need most)")
	examCmd.Flags().Int64("seed", 0, "Random seed for official mode (0 picks one)")
}

func runExam(cmd *cobra.Command, args []string) error {
	modeName, _ := cmd.Flags().GetString("mode")
	mode, err := exam.ParseMode(modeName)
	if err != nil {
		return err
	}
	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	d, err := openDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	if err := exam.CheckFeasible(d.app.Pool()); err != nil {
		return fmt.Errorf("cannot build an exam from this question bank: %w", err)
	}
	if _, err := d.app.StartSimulacro(mode, rand.New(rand.NewSource(seed))); err != nil {
		return err
	}

	p := newPrinter(cmd)
	p.println(theme.Title.Render(fmt.Sprintf("Simulacro (%s): %d questions, %s", mode, exam.Size, exam.DefaultDuration)))
	if err := runQuiz(cmd, quiz.SessionSource{App: d.app}, false); err != nil {
		return err
	}

	rec, err := d.app.FinishSimulacro(cmd.Context(), mode)
	if err != nil {
		return err
	}
	printRecord(p, d.app.Pool(), rec)
	return nil
}

// printRecord shows the verdict and the per-topic tally.
func printRecord(p *printer, pool *bank.Pool, rec exam.Record) {
	verdict := theme.Incorrect.Render("NO APTO")
	if rec.Passed {
		verdict = theme.Correct.Render("APTO")
	}
	p.println(fmt.Sprintf("%s  %d/%d correct in %s", verdict, rec.Correct, rec.Total,
		time.Duration(rec.TimeSpentSec)*time.Second))
	for _, id := range bank.TopicIDs {
		ts := rec.ByTopic[id]
		p.println(fmt.Sprintf("  Tarea %d  %-40s  %d/%d", id, truncate(pool.TopicName(id), 40), ts.Correct, ts.Total))
	}
}
