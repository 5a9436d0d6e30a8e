// Package gpx extracts activities from GPS Exchange Format files. GPX
// carries no lap summary, so duration and heart-rate statistics are
// aggregated from the raw point sequence. Calories and distance are not
// derivable from this schema and stay zero.
package gpx

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/ndrozd/coachfit/internal/activity"
	"github.com/ndrozd/coachfit/internal/xmltree"
)

// ErrNoTrack marks structurally valid XML with no track element.
var ErrNoTrack = errors.New("no track found in GPX document")

// Extract parses one activity from a GPX document.
func Extract(r io.Reader) (*activity.Activity, error) {
	root, err := xmltree.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse failure: %w", err)
	}

	track, ok := root.Child("trk")
	if !ok {
		return nil, ErrNoTrack
	}

	startTime := resolveStartTime(root, track)

	name, _ := track.ChildText("name")

	act := &activity.Activity{
		StartTime: startTime,
		Sport:     activity.DetectSport(name),
	}

	act.TrackPoints = extractPoints(track, startTime)
	aggregate(act)

	return act, nil
}

// resolveStartTime picks the track-level time if present, then the document
// metadata time, then the current time. GPX commonly omits a top-level
// timestamp, so the final fallback is deliberate.
func resolveStartTime(root, track *xmltree.Node) time.Time {
	if raw, ok := track.ChildText("time"); ok {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t
		}
	}
	if metadata, ok := root.Child("metadata"); ok {
		if raw, ok := metadata.ChildText("time"); ok {
			if t, err := time.Parse(time.RFC3339, raw); err == nil {
				return t
			}
		}
	}
	return time.Now()
}

// extractPoints walks every segment's points in document order. A point
// with no usable timestamp gets start time + index seconds, so files with
// missing per-point times still produce a monotonic sequence.
func extractPoints(track *xmltree.Node, startTime time.Time) []activity.TrackPoint {
	var points []activity.TrackPoint
	index := 0

	for _, segment := range track.Children("trkseg") {
		for _, node := range segment.Children("trkpt") {
			point := activity.TrackPoint{
				Time: startTime.Add(time.Duration(index) * time.Second),
			}

			if raw, ok := node.ChildText("time"); ok {
				if t, err := time.Parse(time.RFC3339, raw); err == nil {
					point.Time = t
				}
			}
			if raw, ok := node.Attr("lat"); ok {
				point.Latitude, _ = strconv.ParseFloat(raw, 64)
			}
			if raw, ok := node.Attr("lon"); ok {
				point.Longitude, _ = strconv.ParseFloat(raw, 64)
			}
			point.Altitude, _ = node.ChildFloat("ele")
			point.HeartRate = pointHeartRate(node)

			points = append(points, point)
			index++
		}
	}

	return points
}

// pointHeartRate reads the heart-rate extension. Garmin nests it under
// TrackPointExtension; some writers put hr directly under extensions.
func pointHeartRate(node *xmltree.Node) int {
	ext, ok := node.Child("extensions")
	if !ok {
		return 0
	}
	if tpe, ok := ext.Child("TrackPointExtension"); ok {
		if hr, ok := tpe.ChildInt("hr"); ok {
			return hr
		}
	}
	hr, _ := ext.ChildInt("hr")
	return hr
}

// aggregate derives the summary metrics the schema does not carry.
func aggregate(act *activity.Activity) {
	points := act.TrackPoints
	if len(points) >= 2 {
		first := points[0].Time
		last := points[len(points)-1].Time
		act.TotalDurationSeconds = last.Sub(first).Seconds()
	}

	sum, count := 0, 0
	for _, point := range points {
		if point.HeartRate <= 0 {
			continue
		}
		sum += point.HeartRate
		count++
		if point.HeartRate > act.MaxHeartRate {
			act.MaxHeartRate = point.HeartRate
		}
		if act.MinHeartRate == 0 || point.HeartRate < act.MinHeartRate {
			act.MinHeartRate = point.HeartRate
		}
	}
	if count > 0 {
		act.AvgHeartRate = int(math.Round(float64(sum) / float64(count)))
	}
}
