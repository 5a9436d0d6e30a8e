package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	auditdb "github.com/ndrozd/coachfit/internal/database/audit"
)

// AuditController exposes the audit trail of imports and deletions.
type AuditController struct {
	repo *auditdb.Repository
}

func NewAuditController(repo *auditdb.Repository) *AuditController {
	return &AuditController{repo: repo}
}

// List returns the user's audit events, newest first.
func (c *AuditController) List(ctx *gin.Context) {
	limit, offset := parsePagination(ctx)

	events, total, err := c.repo.GetEvents(GetUserID(ctx), limit, offset)
	if err != nil {
		respondInternalError(ctx, err, "list audit events")
		return
	}

	ctx.JSON(http.StatusOK, PaginatedResponse{
		Data:    events,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: int64(offset+len(events)) < total,
	})
}
