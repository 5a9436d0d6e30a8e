// Package scheduler wires cron schedules to background tasks.
package scheduler

import (
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/ndrozd/coachfit/internal/tasks"
)

// AuditCleanupScheduler periodically enqueues the audit retention cleanup
// task on the background queue.
type AuditCleanupScheduler struct {
	taskClient    *tasks.Client
	schedule      string
	retentionDays int

	cron      *cron.Cron
	mu        sync.Mutex
	isRunning bool
}

// NewAuditCleanupScheduler creates a new scheduler instance.
func NewAuditCleanupScheduler(taskClient *tasks.Client, schedule string, retentionDays int) *AuditCleanupScheduler {
	return &AuditCleanupScheduler{
		taskClient:    taskClient,
		schedule:      schedule,
		retentionDays: retentionDays,
		cron:          cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the schedule. Safe to call once; later calls are no-ops.
func (s *AuditCleanupScheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	_, err := s.cron.AddFunc(s.schedule, s.enqueueCleanup)
	if err != nil {
		return fmt.Errorf("failed to schedule audit cleanup: %w", err)
	}

	s.cron.Start()
	s.isRunning = true
	log.Printf("Audit cleanup scheduled (%s, retention %d days)", s.schedule, s.retentionDays)
	return nil
}

// Stop halts the schedule; a cleanup already enqueued still runs.
func (s *AuditCleanupScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}
	s.cron.Stop()
	s.isRunning = false
}

func (s *AuditCleanupScheduler) enqueueCleanup() {
	task := tasks.CleanupAuditEventsTask{RetentionDays: s.retentionDays}
	if _, err := s.taskClient.Add(task).Save(); err != nil {
		log.Printf("Failed to enqueue audit cleanup task: %v", err)
	}
}
