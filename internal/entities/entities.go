package entities

import (
	"time"

	"gorm.io/gorm"
)

// SessionCategory is the two-value taxonomy used for persisted sessions.
// The richer sport tag is kept alongside it for display purposes.
type SessionCategory string

const (
	SessionCategoryCardio   SessionCategory = "cardio"
	SessionCategoryStrength SessionCategory = "strength"
)

// SessionSourceDeviceImport marks sessions created by the device file
// importer, as opposed to manually entered ones.
const SessionSourceDeviceImport = "device_import"

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"uniqueIndex;size:100" json:"username"`
	Email     string         `gorm:"uniqueIndex;size:255" json:"email"`
	Token     string         `gorm:"uniqueIndex;size:64" json:"-"` // API token, hidden from JSON
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// TrainingSession is one persisted workout. Optional metrics use pointers
// so that "not measured" is distinguishable from "measured as zero".
type TrainingSession struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	UserID          uint            `gorm:"index" json:"user_id"`
	Date            time.Time       `gorm:"index" json:"date"`
	Category        SessionCategory `gorm:"size:20" json:"category"`
	Sport           string          `gorm:"size:50" json:"sport"`
	DurationMinutes int             `json:"duration_minutes"`
	Calories        int             `json:"calories"`
	DistanceKm      *float64        `json:"distance_km,omitempty"`
	AvgHeartRate    *int            `json:"avg_heart_rate,omitempty"`
	MaxHeartRate    *int            `json:"max_heart_rate,omitempty"`
	MinHeartRate    *int            `json:"min_heart_rate,omitempty"`
	Note            string          `gorm:"size:500" json:"note"`
	SourceTag       string          `gorm:"size:50;index" json:"source_tag"`
	DedupKey        string          `gorm:"uniqueIndex;size:80" json:"dedup_key"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (TrainingSession) TableName() string {
	return "training_sessions"
}

type AuditEventType string

const (
	AuditEventImport AuditEventType = "import"
	AuditEventDelete AuditEventType = "delete"
)

type AuditStatus string

const (
	AuditStatusSuccess AuditStatus = "success"
	AuditStatusFailed  AuditStatus = "failed"
)

type AuditEvent struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      uint           `gorm:"index" json:"user_id"`
	EventType   AuditEventType `gorm:"index;size:50" json:"event_type"`
	Action      string         `gorm:"size:100" json:"action"`      // e.g., "device_import"
	Description string         `gorm:"size:500" json:"description"` // Human-readable summary
	Metadata    string         `gorm:"type:text" json:"metadata,omitempty"` // JSON for extra data
	Status      AuditStatus    `gorm:"size:20" json:"status"`
	ErrorMsg    string         `gorm:"size:500" json:"error_msg,omitempty"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
}

func (AuditEvent) TableName() string {
	return "audit_events"
}
