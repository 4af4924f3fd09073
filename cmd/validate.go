package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/repaso/internal/bank"
	"github.com/abhisek/repaso/internal/exam"
	"github.com/abhisek/repaso/internal/ui/theme"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the question bank and list every problem",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cfg.DatasetPath == "" {
			return errNoDataset
		}
		pool, problems, err := bank.LoadFile(cfg.DatasetPath)
		if err != nil {
			return err
		}
		return reportProblems(newPrinter(cmd), pool, problems)
	},
}

// reportProblems prints the validation result and fails when there are
// problems.
func reportProblems(p *printer, pool *bank.Pool, problems []bank.ValidationError) error {
	for _, e := range problems {
		line := e.String()
		if e.QuestionID != "" {
			line = fmt.Sprintf("%s [%s]", line, e.QuestionID)
		}
		p.println(theme.Incorrect.Render("✗ ") + line)
	}
	if len(problems) > 0 {
		return fmt.Errorf("%d problems found", len(problems))
	}

	p.println(theme.Correct.Render("✓ ") + fmt.Sprintf("%s: %d questions, %d topics", pool.Version(), pool.Len(), len(pool.Topics())))
	if err := exam.CheckFeasible(pool); err != nil {
		p.println(theme.Warning.Render("! ") + err.Error())
	}
	return nil
}
