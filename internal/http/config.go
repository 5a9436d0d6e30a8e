package http

import (
	"github.com/ndrozd/coachfit/internal/audit"
	auditdb "github.com/ndrozd/coachfit/internal/database/audit"
	"github.com/ndrozd/coachfit/internal/database/sessions"
	"github.com/ndrozd/coachfit/internal/importers"
)

// RouterConfig contains all dependencies and configuration needed to
// build the HTTP router.
type RouterConfig struct {
	Pipeline     *importers.Pipeline
	SessionsRepo *sessions.Repository
	AuditRepo    *auditdb.Repository
	Auditor      *audit.Service

	MaxFileSizeMB int
	MaxBatchFiles int

	Version string
}
