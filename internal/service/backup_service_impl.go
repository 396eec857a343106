package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nhb-tools/sitedesk/internal/backup"
	"github.com/nhb-tools/sitedesk/internal/logger"
	"github.com/nhb-tools/sitedesk/internal/state"
)

type backupService struct {
	store *state.Store
}

func NewBackupService(store *state.Store) BackupService {
	return &backupService{store: store}
}

// Export serializes the full current state verbatim.
func (s *backupService) Export(ctx context.Context) (*ExportFile, error) {
	data, err := backup.Encode(backup.FromData(s.store.Snapshot()))
	if err != nil {
		return nil, err
	}
	return &ExportFile{Name: backup.FileName(time.Now()), Data: data}, nil
}

// ExportToDir writes the export file into dir and returns its path.
func (s *backupService) ExportToDir(ctx context.Context, dir string) (string, error) {
	file, err := s.Export(ctx)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, file.Name)
	if err := os.WriteFile(path, file.Data, 0644); err != nil {
		return "", fmt.Errorf("writing backup: %w", err)
	}
	logger.L.WithField("path", path).Info("backup exported")
	return path, nil
}

// Restore parses a backup blob and, if valid, wholly replaces the current
// state and persists it. On any parse or validation failure the current
// state is left untouched.
func (s *backupService) Restore(ctx context.Context, blob []byte) error {
	a, err := backup.Parse(blob)
	if err != nil {
		return err
	}
	if err := s.store.Replace(ctx, a.Data()); err != nil {
		return err
	}
	logger.L.WithFields(map[string]any{
		"projects": len(a.Projects),
		"expenses": len(a.Expenses),
		"tasks":    len(a.Tasks),
	}).Info("backup restored")
	return nil
}

// RestoreFile reads a backup file from disk and restores it.
func (s *backupService) RestoreFile(ctx context.Context, path string) error {
	blob, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading backup file: %w", err)
	}
	return s.Restore(ctx, blob)
}
