// Package sessions provides database operations for training sessions.
//
// The repository is the persistence collaborator of the device import
// pipeline: it owns the dedup-key uniqueness check.
//
//	var _ importers.SessionSink = (*Repository)(nil)
package sessions

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/ndrozd/coachfit/internal/entities"
	"github.com/ndrozd/coachfit/internal/importers"
)

// Repository handles all training-session database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new sessions repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Save offers one session candidate for persistence. A candidate whose
// dedup key already exists is reported as a duplicate and not written.
// The unique index on dedup_key backs the check against races between
// concurrent uploads of the same file.
func (r *Repository) Save(session *entities.TrainingSession) (importers.SaveStatus, error) {
	var count int64
	err := r.db.Model(&entities.TrainingSession{}).
		Where("dedup_key = ?", session.DedupKey).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to check for duplicate session: %w", err)
	}
	if count > 0 {
		return importers.SaveDuplicate, nil
	}

	if err := r.db.Create(session).Error; err != nil {
		if isUniqueViolation(err) {
			return importers.SaveDuplicate, nil
		}
		return 0, fmt.Errorf("failed to save session: %w", err)
	}

	return importers.SaveAccepted, nil
}

// GetSessionsForUser retrieves a user's sessions, newest first.
func (r *Repository) GetSessionsForUser(userID uint, limit, offset int) ([]entities.TrainingSession, int64, error) {
	var sessions []entities.TrainingSession
	var total int64

	query := r.db.Model(&entities.TrainingSession{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	err := query.Order("date DESC").Limit(limit).Offset(offset).Find(&sessions).Error
	return sessions, total, err
}

// GetSessionByID retrieves one session scoped to its owner.
func (r *Repository) GetSessionByID(id, userID uint) (*entities.TrainingSession, error) {
	var session entities.TrainingSession
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteSession removes one session scoped to its owner.
func (r *Repository) DeleteSession(id, userID uint) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.TrainingSession{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// isUniqueViolation detects the sqlite unique-constraint error without
// depending on the driver's error type.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
