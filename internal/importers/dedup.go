package importers

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/ndrozd/coachfit/internal/activity"
)

// dedupKeyPrefix namespaces device-import dedup keys in storage.
const dedupKeyPrefix = "garmin_"

// DedupKey derives the deterministic deduplication key for an activity.
// The key covers the fields that identify one recorded session: owner,
// start instant, duration, normalized sport, calories and distance.
// Matching is exact; a one-second time shift or a one-calorie difference
// yields a different key. The hash is FNV-1a, a bucketing key rather than
// a security boundary.
func DedupKey(ownerID uint, act *activity.Activity) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%s|%g|%s|%d|%g",
		ownerID,
		act.StartTime.UTC().Format(time.RFC3339),
		act.TotalDurationSeconds,
		act.Sport,
		act.Calories,
		act.DistanceMeters,
	)
	return fmt.Sprintf("%s%x", dedupKeyPrefix, h.Sum64())
}
