package services

import (
	"context"
	"fmt"
	"time"

	"github.com/activitytracker/core/internal/infrastructure/logger"
	"github.com/activitytracker/core/internal/ports"
)

// BackupService handles document export and import
type BackupService struct {
	store  ports.DocumentStore
	logger *logger.Logger
}

// NewBackupService creates a new backup service
func NewBackupService(store ports.DocumentStore, logger *logger.Logger) *BackupService {
	return &BackupService{
		store:  store,
		logger: logger,
	}
}

// Export returns the pretty-printed document and a date-stamped filename
// suggestion for the download
func (s *BackupService) Export(ctx context.Context) ([]byte, string, error) {
	data, err := s.store.Export(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to export document: %w", err)
	}

	filename := fmt.Sprintf("activity-tracker-backup-%s.json", time.Now().UTC().Format("2006-01-02"))

	s.logger.Info("Document exported", "bytes", len(data), "filename", filename)

	return data, filename, nil
}

// Import replaces the persisted document with the supplied JSON. The replace
// is destructive; there is no merge with existing data. Validation failures
// surface as entities.ErrInvalidImport with a human-readable reason.
func (s *BackupService) Import(ctx context.Context, payload []byte) error {
	if err := s.store.Import(ctx, payload); err != nil {
		s.logger.Warn("Import rejected", "error", err)
		return err
	}

	s.logger.Info("Document imported", "bytes", len(payload))

	return nil
}
