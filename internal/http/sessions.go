package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ndrozd/coachfit/internal/audit"
	"github.com/ndrozd/coachfit/internal/database/sessions"
)

// SessionsController exposes the persisted training sessions so imports
// are inspectable.
type SessionsController struct {
	repo         *sessions.Repository
	auditService *audit.Service
}

func NewSessionsController(repo *sessions.Repository, auditService *audit.Service) *SessionsController {
	return &SessionsController{repo: repo, auditService: auditService}
}

// List returns the user's sessions, newest first.
func (c *SessionsController) List(ctx *gin.Context) {
	limit, offset := parsePagination(ctx)

	result, total, err := c.repo.GetSessionsForUser(GetUserID(ctx), limit, offset)
	if err != nil {
		respondInternalError(ctx, err, "list sessions")
		return
	}

	ctx.JSON(http.StatusOK, PaginatedResponse{
		Data:    result,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: int64(offset+len(result)) < total,
	})
}

// Get returns one session by ID.
func (c *SessionsController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	session, err := c.repo.GetSessionByID(id, GetUserID(ctx))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(ctx, "session")
			return
		}
		respondInternalError(ctx, err, "get session")
		return
	}

	ctx.JSON(http.StatusOK, session)
}

// Delete removes one session.
func (c *SessionsController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	userID := GetUserID(ctx)
	err := c.repo.DeleteSession(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(ctx, "session")
		return
	}
	if c.auditService != nil {
		c.auditService.LogSessionDelete(userID, id, err)
	}
	if err != nil {
		respondInternalError(ctx, err, "delete session")
		return
	}

	ctx.JSON(http.StatusOK, SuccessResponse{Message: "session deleted"})
}
