package importers

import (
	"fmt"
	"math"

	"github.com/ndrozd/coachfit/internal/activity"
	"github.com/ndrozd/coachfit/internal/entities"
)

// MapSession converts an extracted activity into the training session the
// platform persists. It is a pure, total function: any well-formed
// activity maps to a valid session, including zero-duration ones.
//
// Optional metrics are carried through only when the source value is
// strictly positive, so downstream consumers can tell "not measured" from
// "measured as zero".
func MapSession(ownerID uint, act *activity.Activity) *entities.TrainingSession {
	session := &entities.TrainingSession{
		UserID:          ownerID,
		Date:            act.StartTime,
		Category:        entities.SessionCategory(act.Sport.Category()),
		Sport:           string(act.Sport),
		DurationMinutes: int(math.Round(act.TotalDurationSeconds / 60)),
		Calories:        act.Calories,
		Note:            provenanceNote(act),
		SourceTag:       entities.SessionSourceDeviceImport,
		DedupKey:        DedupKey(ownerID, act),
	}

	if act.DistanceMeters > 0 {
		km := math.Round(act.DistanceMeters/1000*100) / 100
		session.DistanceKm = &km
	}
	session.AvgHeartRate = positiveOrNil(act.AvgHeartRate)
	session.MaxHeartRate = positiveOrNil(act.MaxHeartRate)
	session.MinHeartRate = positiveOrNil(act.MinHeartRate)

	return session
}

// ApplySportOverride replaces the suggested sport on a candidate with the
// user's pick and recomputes the category. The dedup key is left alone:
// it is derived from the file's normalized sport so that re-importing the
// same file still collides regardless of manual edits.
func ApplySportOverride(session *entities.TrainingSession, sport activity.Sport) {
	session.Sport = string(sport)
	session.Category = entities.SessionCategory(sport.Category())
}

// provenanceNote is display text recording where the session came from;
// nothing parses it.
func provenanceNote(act *activity.Activity) string {
	return fmt.Sprintf("Imported from fitness device (recorded %s)",
		act.StartTime.Local().Format("2006-01-02 15:04"))
}

func positiveOrNil(value int) *int {
	if value <= 0 {
		return nil
	}
	return &value
}
