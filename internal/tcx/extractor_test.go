package tcx

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndrozd/coachfit/internal/activity"
	"github.com/ndrozd/coachfit/internal/xmltree"
)

const fullDocument = `<?xml version="1.0" encoding="UTF-8"?>
<TrainingCenterDatabase xmlns="http://www.garmin.com/xmlschemas/TrainingCenterDatabase/v2">
  <Activities>
    <Activity Sport="Running">
      <Id>2024-03-10T08:30:00Z</Id>
      <Lap StartTime="2024-03-10T08:30:00Z">
        <TotalTimeSeconds>1800.0</TotalTimeSeconds>
        <DistanceMeters>5000.0</DistanceMeters>
        <Calories>250</Calories>
        <AverageHeartRateBpm><Value>150</Value></AverageHeartRateBpm>
        <MaximumHeartRateBpm><Value>175</Value></MaximumHeartRateBpm>
        <Track>
          <Trackpoint>
            <Time>2024-03-10T08:30:00Z</Time>
            <Position>
              <LatitudeDegrees>52.52</LatitudeDegrees>
              <LongitudeDegrees>13.405</LongitudeDegrees>
            </Position>
            <AltitudeMeters>34.5</AltitudeMeters>
            <HeartRateBpm><Value>120</Value></HeartRateBpm>
          </Trackpoint>
          <Trackpoint>
            <Time>2024-03-10T08:30:10Z</Time>
            <HeartRateBpm><Value>135</Value></HeartRateBpm>
          </Trackpoint>
          <Trackpoint>
            <Time>2024-03-10T08:30:20Z</Time>
          </Trackpoint>
        </Track>
      </Lap>
    </Activity>
  </Activities>
</TrainingCenterDatabase>`

func TestExtract_FullDocument(t *testing.T) {
	act, err := Extract(strings.NewReader(fullDocument))
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 10, 8, 30, 0, 0, time.UTC), act.StartTime)
	assert.Equal(t, activity.SportRunning, act.Sport)
	assert.Equal(t, 1800.0, act.TotalDurationSeconds)
	assert.Equal(t, 5000.0, act.DistanceMeters)
	assert.Equal(t, 250, act.Calories)
	assert.Equal(t, 150, act.AvgHeartRate)
	assert.Equal(t, 175, act.MaxHeartRate)

	// Minimum HR comes from the samples; the third point has no HR channel
	// and must not drag the minimum to zero.
	assert.Equal(t, 120, act.MinHeartRate)

	require.Len(t, act.TrackPoints, 3)
	assert.Equal(t, 52.52, act.TrackPoints[0].Latitude)
	assert.Equal(t, 13.405, act.TrackPoints[0].Longitude)
	assert.Equal(t, 34.5, act.TrackPoints[0].Altitude)
	assert.Equal(t, 120, act.TrackPoints[0].HeartRate)
	assert.Equal(t, 0, act.TrackPoints[2].HeartRate)
}

func TestExtract_MissingSummaryFieldsDefaultToZero(t *testing.T) {
	input := `<TrainingCenterDatabase>
  <Activities>
    <Activity Sport="Biking">
      <Id>2024-03-10T08:30:00Z</Id>
      <Lap StartTime="2024-03-10T08:30:00Z">
        <TotalTimeSeconds>not-a-number</TotalTimeSeconds>
      </Lap>
    </Activity>
  </Activities>
</TrainingCenterDatabase>`

	act, err := Extract(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, activity.SportCycling, act.Sport)
	assert.Equal(t, 0.0, act.TotalDurationSeconds)
	assert.Equal(t, 0, act.Calories)
	assert.Equal(t, 0.0, act.DistanceMeters)
	assert.Equal(t, 0, act.AvgHeartRate)
	assert.Equal(t, 0, act.MaxHeartRate)
	assert.Equal(t, 0, act.MinHeartRate)
	assert.Empty(t, act.TrackPoints)
}

func TestExtract_StartTimeFallsBackToActivityID(t *testing.T) {
	input := `<TrainingCenterDatabase>
  <Activities>
    <Activity Sport="Running">
      <Id>2024-05-01T06:00:00Z</Id>
      <Lap>
        <TotalTimeSeconds>600</TotalTimeSeconds>
      </Lap>
    </Activity>
  </Activities>
</TrainingCenterDatabase>`

	act, err := Extract(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 6, 0, 0, 0, time.UTC), act.StartTime)
}

func TestExtract_OnlyFirstLapIsSummarized(t *testing.T) {
	input := `<TrainingCenterDatabase>
  <Activities>
    <Activity Sport="Running">
      <Id>2024-05-01T06:00:00Z</Id>
      <Lap StartTime="2024-05-01T06:00:00Z">
        <TotalTimeSeconds>600</TotalTimeSeconds>
        <Calories>100</Calories>
      </Lap>
      <Lap StartTime="2024-05-01T06:10:00Z">
        <TotalTimeSeconds>900</TotalTimeSeconds>
        <Calories>150</Calories>
      </Lap>
    </Activity>
  </Activities>
</TrainingCenterDatabase>`

	act, err := Extract(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 600.0, act.TotalDurationSeconds)
	assert.Equal(t, 100, act.Calories)
}

func TestExtract_NoActivity(t *testing.T) {
	inputs := []string{
		`<TrainingCenterDatabase><Activities></Activities></TrainingCenterDatabase>`,
		`<TrainingCenterDatabase></TrainingCenterDatabase>`,
	}

	for _, input := range inputs {
		_, err := Extract(strings.NewReader(input))
		assert.ErrorIs(t, err, ErrNoActivity)
	}
}

func TestExtract_MalformedDocument(t *testing.T) {
	_, err := Extract(strings.NewReader(`<TrainingCenterDatabase><Activities>`))
	require.Error(t, err)
	assert.ErrorIs(t, err, xmltree.ErrMalformed)
}

func TestExtract_UnknownSportNormalizesToOther(t *testing.T) {
	input := `<TrainingCenterDatabase>
  <Activities>
    <Activity Sport="UnicycleJousting">
      <Id>2024-05-01T06:00:00Z</Id>
    </Activity>
  </Activities>
</TrainingCenterDatabase>`

	act, err := Extract(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, activity.SportOther, act.Sport)
}
