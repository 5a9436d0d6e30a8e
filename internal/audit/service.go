// Package audit records noteworthy platform events (imports, deletions)
// for later inspection.
package audit

import (
	"encoding/json"
	"log"

	"github.com/ndrozd/coachfit/internal/database/audit"
	"github.com/ndrozd/coachfit/internal/entities"
	"github.com/ndrozd/coachfit/internal/importers"
)

// Service provides high-level audit logging functionality.
type Service struct {
	repo *audit.Repository
}

// NewService creates a new audit service.
func NewService(repo *audit.Repository) *Service {
	return &Service{repo: repo}
}

// Log records a generic audit event.
func (s *Service) Log(event *entities.AuditEvent) error {
	return s.repo.LogEvent(event)
}

// LogAsync records an audit event in the background (non-blocking).
func (s *Service) LogAsync(event *entities.AuditEvent) {
	go func() {
		if err := s.repo.LogEvent(event); err != nil {
			log.Printf("Failed to log audit event: %v", err)
		}
	}()
}

// LogDeviceImport records the outcome of one confirmed device import batch.
func (s *Service) LogDeviceImport(userID uint, batchID string, summary importers.Summary) {
	event := &entities.AuditEvent{
		UserID:      userID,
		EventType:   entities.AuditEventImport,
		Action:      "device_import",
		Description: describeImport(summary),
		Status:      entities.AuditStatusSuccess,
	}

	metadata := map[string]any{
		"batch_id":   batchID,
		"imported":   summary.Imported,
		"duplicates": summary.Duplicates,
		"failed":     summary.Failed,
	}
	if mdBytes, err := json.Marshal(metadata); err == nil {
		event.Metadata = string(mdBytes)
	}

	if summary.Failed > 0 {
		event.Status = entities.AuditStatusFailed
		if len(summary.Errors) > 0 {
			event.ErrorMsg = truncate(summary.Errors[0], 500)
		}
	}

	s.LogAsync(event)
}

// LogSessionDelete records removal of a training session.
func (s *Service) LogSessionDelete(userID, sessionID uint, err error) {
	event := &entities.AuditEvent{
		UserID:      userID,
		EventType:   entities.AuditEventDelete,
		Action:      "session_delete",
		Description: "Deleted training session",
		Status:      entities.AuditStatusSuccess,
	}
	if err != nil {
		event.Status = entities.AuditStatusFailed
		event.ErrorMsg = truncate(err.Error(), 500)
	}
	s.LogAsync(event)
}

func describeImport(summary importers.Summary) string {
	switch {
	case summary.Failed > 0:
		return "Device import finished with errors"
	case summary.Imported == 0 && summary.Duplicates > 0:
		return "Device import: all sessions were already imported"
	default:
		return "Imported training sessions from device files"
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
