package http

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ndrozd/coachfit/internal/activity"
	"github.com/ndrozd/coachfit/internal/audit"
	"github.com/ndrozd/coachfit/internal/entities"
	"github.com/ndrozd/coachfit/internal/importers"
)

// DeviceImportController handles the two-step device file import flow:
// upload files for a preview, then confirm the (possibly sport-edited)
// candidates for persistence.
type DeviceImportController struct {
	pipeline      *importers.Pipeline
	auditService  *audit.Service
	maxFileSize   int64
	maxBatchFiles int
}

func NewDeviceImportController(pipeline *importers.Pipeline, auditService *audit.Service, maxFileSizeMB, maxBatchFiles int) *DeviceImportController {
	return &DeviceImportController{
		pipeline:      pipeline,
		auditService:  auditService,
		maxFileSize:   int64(maxFileSizeMB) * 1024 * 1024,
		maxBatchFiles: maxBatchFiles,
	}
}

// DeviceImportFileResult is one row of the preview: either a candidate
// with a suggested sport, or the failure reason.
type DeviceImportFileResult struct {
	FileName       string                    `json:"file_name"`
	Success        bool                      `json:"success"`
	Error          string                    `json:"error,omitempty"`
	ErrorKind      string                    `json:"error_kind,omitempty"`
	Candidate      *entities.TrainingSession `json:"candidate,omitempty"`
	SuggestedSport string                    `json:"suggested_sport,omitempty"`
}

type DeviceImportPreviewResponse struct {
	BatchID      string                   `json:"batch_id"`
	Files        []DeviceImportFileResult `json:"files"`
	SportOptions []string                 `json:"sport_options"`
}

// ConfirmSession is one candidate sent back after user review. Sport may
// have been edited in the preview dropdown; the dedup key is carried
// through unchanged from the preview.
type ConfirmSession struct {
	Date            time.Time `json:"date" binding:"required"`
	Sport           string    `json:"sport" binding:"required"`
	DurationMinutes int       `json:"duration_minutes"`
	Calories        int       `json:"calories"`
	DistanceKm      *float64  `json:"distance_km"`
	AvgHeartRate    *int      `json:"avg_heart_rate"`
	MaxHeartRate    *int      `json:"max_heart_rate"`
	MinHeartRate    *int      `json:"min_heart_rate"`
	Note            string    `json:"note"`
	DedupKey        string    `json:"dedup_key" binding:"required"`
}

type DeviceImportConfirmRequest struct {
	BatchID  string           `json:"batch_id"`
	Sessions []ConfirmSession `json:"sessions" binding:"required"`
}

// Preview accepts a multipart upload of device files and returns per-file
// outcomes without persisting anything.
func (c *DeviceImportController) Preview(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		respondBadRequest(ctx, "multipart form expected")
		return
	}

	uploads := form.File["files"]
	if len(uploads) == 0 {
		respondBadRequest(ctx, "no files provided")
		return
	}
	if len(uploads) > c.maxBatchFiles {
		respondBadRequest(ctx, "too many files in one batch")
		return
	}

	var files []importers.File
	var oversized []DeviceImportFileResult
	var openFiles []io.Closer

	defer func() {
		for _, f := range openFiles {
			f.Close()
		}
	}()

	for _, upload := range uploads {
		if upload.Size > c.maxFileSize {
			oversized = append(oversized, DeviceImportFileResult{
				FileName: upload.Filename,
				Success:  false,
				Error:    "file too large",
			})
			continue
		}

		file, err := upload.Open()
		if err != nil {
			respondInternalError(ctx, err, "device import upload")
			return
		}
		openFiles = append(openFiles, file)

		files = append(files, importers.File{
			Name: upload.Filename,
			Data: io.LimitReader(file, c.maxFileSize+1),
		})
	}

	batch := c.pipeline.Preview(GetUserID(ctx), files)

	response := DeviceImportPreviewResponse{
		BatchID:      batch.ID,
		Files:        make([]DeviceImportFileResult, 0, len(batch.Outcomes)+len(oversized)),
		SportOptions: sportOptions(),
	}

	for _, outcome := range batch.Outcomes {
		result := DeviceImportFileResult{
			FileName: outcome.FileName,
			Success:  outcome.Success(),
		}
		if outcome.Success() {
			result.Candidate = outcome.Candidate
			result.SuggestedSport = string(outcome.SuggestedSport)
		} else {
			result.Error = outcome.Err.Error()
			result.ErrorKind = string(importers.ClassifyFailure(outcome.Err))
		}
		response.Files = append(response.Files, result)
	}
	response.Files = append(response.Files, oversized...)

	ctx.JSON(http.StatusOK, response)
}

// Confirm persists the reviewed candidates and reports the tally of
// imported vs. duplicate vs. failed sessions.
func (c *DeviceImportController) Confirm(ctx *gin.Context) {
	var req DeviceImportConfirmRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "invalid confirm request: "+err.Error())
		return
	}

	userID := GetUserID(ctx)

	sessions := make([]*entities.TrainingSession, 0, len(req.Sessions))
	for _, candidate := range req.Sessions {
		session := &entities.TrainingSession{
			UserID:          userID,
			Date:            candidate.Date,
			Sport:           candidate.Sport,
			DurationMinutes: candidate.DurationMinutes,
			Calories:        candidate.Calories,
			DistanceKm:      candidate.DistanceKm,
			AvgHeartRate:    candidate.AvgHeartRate,
			MaxHeartRate:    candidate.MaxHeartRate,
			MinHeartRate:    candidate.MinHeartRate,
			Note:            candidate.Note,
			SourceTag:       entities.SessionSourceDeviceImport,
			DedupKey:        candidate.DedupKey,
		}
		// Recompute the category from the (possibly edited) sport.
		importers.ApplySportOverride(session, activity.NormalizeSport(candidate.Sport))
		sessions = append(sessions, session)
	}

	summary := c.pipeline.Commit(sessions)

	if c.auditService != nil {
		c.auditService.LogDeviceImport(userID, req.BatchID, summary)
	}

	ctx.JSON(http.StatusOK, summary)
}

func sportOptions() []string {
	sports := activity.AllSports()
	options := make([]string, len(sports))
	for i, sport := range sports {
		options[i] = string(sport)
	}
	return options
}
