// Package activity holds the transient in-memory representation of one
// device-recorded workout, extracted from a TCX or GPX file before it is
// mapped onto a persisted training session.
package activity

import "time"

// TrackPoint is a single raw sample. Every field except Time is optional;
// zero means the source file did not carry the channel.
type TrackPoint struct {
	Time      time.Time
	HeartRate int // bpm
	Latitude  float64
	Longitude float64
	Altitude  float64
}

// Activity is what an extractor produces from one file. It lives only for
// the duration of that file's processing and is never persisted directly.
type Activity struct {
	StartTime            time.Time
	TotalDurationSeconds float64
	Sport                Sport
	Calories             int
	DistanceMeters       float64
	AvgHeartRate         int // bpm, 0 when the file has no heart-rate channel
	MaxHeartRate         int
	MinHeartRate         int

	// TrackPoints are kept in document order; source files are assumed
	// chronological and are not re-sorted.
	TrackPoints []TrackPoint
}
