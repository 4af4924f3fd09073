package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/repaso/internal/review"
	"github.com/abhisek/repaso/internal/ui/components"
	"github.com/abhisek/repaso/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show level, coverage and per-topic progress",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	d, err := openDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	p := newPrinter(cmd)
	lvl := d.app.Level()
	p.println(theme.Title.Render("Nivel: " + string(lvl.Level)))
	p.println(theme.Subtitle.Render(lvl.Description))
	p.println()
	p.println(components.NewProgressBar("Coverage", lvl.Coverage, true, 30).View() +
		theme.Subtitle.Render(fmt.Sprintf("  %d/%d seen", lvl.Seen, lvl.Total)))
	p.println(components.NewProgressBar("Mastery ", lvl.Mastery, true, 30).View() +
		theme.Subtitle.Render(fmt.Sprintf("  %d mastered", lvl.Mastered)))
	p.println(fmt.Sprintf("%d due today", d.app.DueCount()))
	p.println()

	var head strings.Builder
	fmt.Fprintf(&head, "%-7s  %-40s", "Tarea", "Name")
	for _, s := range review.AllStatuses {
		fmt.Fprintf(&head, "  %8s", s)
	}
	fmt.Fprintf(&head, "  %8s", "accuracy")
	p.println(theme.Label.Render(head.String()))
	p.println(strings.Repeat("─", head.Len()))

	events := d.store.EventRepo()
	for _, tb := range d.app.Breakdown() {
		var row strings.Builder
		fmt.Fprintf(&row, "%-7d  %-40s", tb.Topic.ID, truncate(tb.Topic.Name, 40))
		for _, s := range review.AllStatuses {
			row.WriteString("  " + statusStyle(s).Render(fmt.Sprintf("%8d", tb.ByStatus[s])))
		}
		acc, n, err := events.TopicAccuracy(ctx, int(tb.Topic.ID))
		if err != nil {
			return fmt.Errorf("topic accuracy: %w", err)
		}
		if n == 0 {
			fmt.Fprintf(&row, "  %8s", "-")
		} else {
			fmt.Fprintf(&row, "  %7.0f%%", acc*100)
		}
		p.println(row.String())
	}

	total, err := events.AnswerCount(ctx)
	if err != nil {
		return fmt.Errorf("answer count: %w", err)
	}
	p.println()
	p.println(theme.Subtitle.Render(fmt.Sprintf("%d answers recorded", total)))
	return nil
}
