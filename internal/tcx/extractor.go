// Package tcx extracts activities from Garmin Training Center XML files.
// TCX carries a precomputed per-lap summary, so most metrics are read
// directly rather than derived from samples.
package tcx

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ndrozd/coachfit/internal/activity"
	"github.com/ndrozd/coachfit/internal/xmltree"
)

// ErrNoActivity marks structurally valid XML with no activity element.
var ErrNoActivity = errors.New("no activity found in TCX document")

// Extract parses one activity from a TCX document.
//
// Only the first lap of the first activity is summarized; multi-lap files
// lose the remaining laps. Missing or unparsable summary fields default to
// zero and never fail the extraction.
func Extract(r io.Reader) (*activity.Activity, error) {
	root, err := xmltree.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse failure: %w", err)
	}

	activities, ok := root.Child("Activities")
	if !ok {
		return nil, ErrNoActivity
	}
	node, ok := activities.Child("Activity")
	if !ok {
		return nil, ErrNoActivity
	}

	lap, _ := node.Child("Lap")

	startTime, err := parseStartTime(node, lap)
	if err != nil {
		return nil, err
	}

	sportLabel, _ := node.Attr("Sport")

	act := &activity.Activity{
		StartTime: startTime,
		Sport:     activity.NormalizeSport(sportLabel),
	}

	if lap != nil {
		act.TotalDurationSeconds, _ = lap.ChildFloat("TotalTimeSeconds")
		act.Calories, _ = lap.ChildInt("Calories")
		act.DistanceMeters, _ = lap.ChildFloat("DistanceMeters")
		act.AvgHeartRate = heartRateValue(lap, "AverageHeartRateBpm")
		act.MaxHeartRate = heartRateValue(lap, "MaximumHeartRateBpm")

		if track, ok := lap.Child("Track"); ok {
			act.TrackPoints, act.MinHeartRate = extractTrackPoints(track)
		}
	}

	return act, nil
}

// parseStartTime reads the lap's StartTime attribute, falling back to the
// activity's Id element, which TCX also fills with the start timestamp.
func parseStartTime(node, lap *xmltree.Node) (time.Time, error) {
	if lap != nil {
		if raw, ok := lap.Attr("StartTime"); ok {
			if t, err := time.Parse(time.RFC3339, raw); err == nil {
				return t, nil
			}
		}
	}
	if raw, ok := node.ChildText("Id"); ok {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse failure: activity has no usable start time")
}

// heartRateValue reads a TCX heart-rate element, which nests the number
// under a Value child.
func heartRateValue(lap *xmltree.Node, name string) int {
	hr, ok := lap.Child(name)
	if !ok {
		return 0
	}
	value, _ := hr.ChildInt("Value")
	return value
}

// extractTrackPoints reads per-sample trackpoints in document order and
// tracks the running minimum heart rate, since TCX has no summary field
// for it. Each sample field is independently optional.
func extractTrackPoints(track *xmltree.Node) ([]activity.TrackPoint, int) {
	var points []activity.TrackPoint
	minHR := 0

	for _, node := range track.Children("Trackpoint") {
		var point activity.TrackPoint

		if raw, ok := node.ChildText("Time"); ok {
			if t, err := time.Parse(time.RFC3339, raw); err == nil {
				point.Time = t
			}
		}
		if hr, ok := node.Child("HeartRateBpm"); ok {
			point.HeartRate, _ = hr.ChildInt("Value")
		}
		if pos, ok := node.Child("Position"); ok {
			point.Latitude, _ = pos.ChildFloat("LatitudeDegrees")
			point.Longitude, _ = pos.ChildFloat("LongitudeDegrees")
		}
		point.Altitude, _ = node.ChildFloat("AltitudeMeters")

		if point.HeartRate > 0 && (minHR == 0 || point.HeartRate < minHR) {
			minHR = point.HeartRate
		}

		points = append(points, point)
	}

	return points, minHR
}
