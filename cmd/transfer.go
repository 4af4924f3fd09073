package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/repaso/internal/backup"
	"github.com/abhisek/repaso/internal/ui/theme"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write progress and settings as a JSON backup",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		compress, _ := cmd.Flags().GetBool("gzip")

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		data, err := d.app.Export(compress)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		if out == "" || out == "-" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("write backup: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", out)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file|->",
	Short: "Replace progress and settings with a backup (plain or gzip JSON)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			data []byte
			err  error
		)
		if args[0] == "-" {
			data, err = io.ReadAll(cmd.InOrStdin())
		} else {
			data, err = os.ReadFile(args[0])
		}
		if err != nil {
			return fmt.Errorf("read backup: %w", err)
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		if err := d.app.Import(cmd.Context(), data); err != nil {
			var ie *backup.ImportError
			if errors.As(err, &ie) {
				return fmt.Errorf("backup rejected: %s", ie.Reason)
			}
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), theme.Correct.Render(fmt.Sprintf("imported %d questions", len(d.app.Reviews()))))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("out", "o", "", "Output file (default stdout)")
	exportCmd.Flags().Bool("gzip", false, "Compress the backup with gzip")
}
