package importers

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndrozd/coachfit/internal/activity"
)

func baseActivity() *activity.Activity {
	return &activity.Activity{
		StartTime:            time.Date(2024, 3, 10, 8, 30, 0, 0, time.UTC),
		TotalDurationSeconds: 1800,
		Sport:                activity.SportRunning,
		Calories:             250,
		DistanceMeters:       5000,
	}
}

func TestDedupKey_Deterministic(t *testing.T) {
	first := DedupKey(1, baseActivity())
	second := DedupKey(1, baseActivity())
	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "garmin_"))
}

func TestDedupKey_AnySingleInputChangesTheKey(t *testing.T) {
	base := DedupKey(1, baseActivity())

	variants := map[string]func() (uint, *activity.Activity){
		"owner": func() (uint, *activity.Activity) {
			return 2, baseActivity()
		},
		"start time +1s": func() (uint, *activity.Activity) {
			act := baseActivity()
			act.StartTime = act.StartTime.Add(time.Second)
			return 1, act
		},
		"duration +1s": func() (uint, *activity.Activity) {
			act := baseActivity()
			act.TotalDurationSeconds++
			return 1, act
		},
		"sport": func() (uint, *activity.Activity) {
			act := baseActivity()
			act.Sport = activity.SportCycling
			return 1, act
		},
		"calories +1": func() (uint, *activity.Activity) {
			act := baseActivity()
			act.Calories++
			return 1, act
		},
		"distance +1m": func() (uint, *activity.Activity) {
			act := baseActivity()
			act.DistanceMeters++
			return 1, act
		},
	}

	seen := map[string]string{base: "base"}
	for name, build := range variants {
		owner, act := build()
		key := DedupKey(owner, act)
		previous, dup := seen[key]
		require.False(t, dup, "variant %q collides with %q", name, previous)
		seen[key] = name
	}
}

func TestDedupKey_IgnoresFieldsOutsideTheContract(t *testing.T) {
	withSamples := baseActivity()
	withSamples.AvgHeartRate = 150
	withSamples.TrackPoints = []activity.TrackPoint{{Time: withSamples.StartTime}}

	// Heart rate and trackpoints are not identity inputs; re-exports that
	// differ only there still collide.
	assert.Equal(t, DedupKey(1, baseActivity()), DedupKey(1, withSamples))
}

func TestDedupKey_TimezoneNormalization(t *testing.T) {
	local := baseActivity()
	local.StartTime = time.Date(2024, 3, 10, 10, 30, 0, 0, time.FixedZone("CEST", 2*3600))

	// Same instant expressed in a different zone is the same session.
	assert.Equal(t, DedupKey(1, baseActivity()), DedupKey(1, local))
}
