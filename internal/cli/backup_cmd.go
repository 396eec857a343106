package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newBackupCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export and restore data backups",
	}

	cmd.AddCommand(
		newBackupExportCmd(app),
		newBackupRestoreCmd(app),
	)

	return cmd
}

func newBackupExportCmd(app *App) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all data to a dated JSON backup file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := app.Backups.ExportToDir(context.Background(), dir)
			if err != nil {
				return err
			}
			abs, err := filepath.Abs(path)
			if err != nil {
				abs = path
			}
			fmt.Printf("Backup written to %s\n", abs)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "Directory to write the backup into")
	return cmd
}

func newBackupRestoreCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "restore <file>",
		Short: "Replace all data from a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := confirmDestructive(
				"This will overwrite your current data. Are you sure?", yes)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}

			if err := app.Backups.RestoreFile(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Data restored successfully")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}
