package importers

import (
	"errors"
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/ndrozd/coachfit/internal/activity"
	"github.com/ndrozd/coachfit/internal/entities"
	"github.com/ndrozd/coachfit/internal/gpx"
	"github.com/ndrozd/coachfit/internal/tcx"
	"github.com/ndrozd/coachfit/internal/xmltree"
)

// SaveStatus is the persistence collaborator's verdict on one candidate.
type SaveStatus int

const (
	// SaveAccepted means a new session record was written.
	SaveAccepted SaveStatus = iota
	// SaveDuplicate means a session with the same dedup key already
	// exists; nothing was written. This is a normal outcome, not an error.
	SaveDuplicate
)

// SessionSink is the persistence collaborator. It owns the uniqueness
// check against the dedup key and durable storage.
//
// Implemented by sessions.Repository (internal/database/sessions).
type SessionSink interface {
	Save(session *entities.TrainingSession) (SaveStatus, error)
}

// File is one uploaded device file.
type File struct {
	Name string
	Data io.Reader
}

// FailureKind labels per-file failures for the UI.
type FailureKind string

const (
	FailureUnsupportedFormat FailureKind = "unsupported_format"
	FailureMalformed         FailureKind = "malformed_document"
	FailureNoActivity        FailureKind = "no_activity"
	FailureNoTrack           FailureKind = "no_track"
	FailureParse             FailureKind = "parse_failure"
)

// ClassifyFailure maps an extraction error onto its failure kind.
func ClassifyFailure(err error) FailureKind {
	switch {
	case errors.Is(err, ErrUnsupportedFormat):
		return FailureUnsupportedFormat
	case errors.Is(err, xmltree.ErrMalformed):
		return FailureMalformed
	case errors.Is(err, tcx.ErrNoActivity):
		return FailureNoActivity
	case errors.Is(err, gpx.ErrNoTrack):
		return FailureNoTrack
	default:
		return FailureParse
	}
}

// Outcome is the result of running one file through the pipeline: either a
// session candidate with an editable sport suggestion, or a failure.
type Outcome struct {
	FileName       string
	Candidate      *entities.TrainingSession
	SuggestedSport activity.Sport
	Err            error
}

// Success reports whether the file produced a candidate.
func (o Outcome) Success() bool {
	return o.Err == nil
}

// Batch collects the per-file outcomes of one upload.
type Batch struct {
	ID       string
	Outcomes []Outcome
}

// Summary tallies the confirm step. Duplicates are counted separately from
// hard errors; both differ from imports.
type Summary struct {
	Imported   int      `json:"imported"`
	Duplicates int      `json:"duplicates"`
	Failed     int      `json:"failed"`
	Errors     []string `json:"errors,omitempty"`
}

// Pipeline runs uploaded files through extraction and mapping, and offers
// confirmed candidates to the persistence sink.
type Pipeline struct {
	sink SessionSink
}

// NewPipeline creates a pipeline backed by the given persistence sink.
func NewPipeline(sink SessionSink) *Pipeline {
	return &Pipeline{sink: sink}
}

// Preview runs every file through extraction and mapping without touching
// storage. Files are processed sequentially in upload order; a failure in
// one file is recorded in its outcome and the rest still import.
func (p *Pipeline) Preview(ownerID uint, files []File) Batch {
	batch := Batch{
		ID:       uuid.NewString(),
		Outcomes: make([]Outcome, 0, len(files)),
	}

	for _, file := range files {
		batch.Outcomes = append(batch.Outcomes, p.processFile(ownerID, file))
	}

	return batch
}

func (p *Pipeline) processFile(ownerID uint, file File) Outcome {
	outcome := Outcome{FileName: file.Name}

	format, err := DetectFormat(file.Name)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	act, err := ExtractActivity(format, file.Data)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	outcome.Candidate = MapSession(ownerID, act)
	outcome.SuggestedSport = act.Sport
	return outcome
}

// Commit offers each candidate to the sink, in order, and tallies the
// results. There is no rollback: candidates persisted before a later
// failure stay committed.
func (p *Pipeline) Commit(sessions []*entities.TrainingSession) Summary {
	var summary Summary

	for _, session := range sessions {
		status, err := p.sink.Save(session)
		if err != nil {
			log.Printf("Failed to persist imported session (%s): %v", session.DedupKey, err)
			summary.Failed++
			summary.Errors = append(summary.Errors, err.Error())
			continue
		}
		if status == SaveDuplicate {
			summary.Duplicates++
			continue
		}
		summary.Imported++
	}

	return summary
}
