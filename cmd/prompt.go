package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/repaso/internal/screens/quiz"
	"github.com/abhisek/repaso/internal/ui/theme"
)

// printer writes lines to the command's output.
type printer struct {
	out io.Writer
}

func newPrinter(cmd *cobra.Command) *printer {
	return &printer{out: cmd.OutOrStdout()}
}

func (p *printer) println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

// runQuiz drives src interactively on the command's input and output and
// reports an expired deadline.
func runQuiz(cmd *cobra.Command, src quiz.Source, reveal bool) error {
	ending, err := quiz.Run(cmd.Context(), src, cmd.InOrStdin(), cmd.OutOrStdout(), quiz.WithReveal(reveal))
	if err != nil {
		return err
	}
	if ending == quiz.EndTimeUp {
		newPrinter(cmd).println(theme.Warning.Render("Time is up"))
	}
	return nil
}
