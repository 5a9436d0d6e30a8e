package importers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndrozd/coachfit/internal/activity"
	"github.com/ndrozd/coachfit/internal/entities"
)

const runTCX = `<TrainingCenterDatabase>
  <Activities>
    <Activity Sport="Running">
      <Id>2024-03-10T08:30:00Z</Id>
      <Lap StartTime="2024-03-10T08:30:00Z">
        <TotalTimeSeconds>1800</TotalTimeSeconds>
        <DistanceMeters>5000</DistanceMeters>
        <Calories>250</Calories>
        <AverageHeartRateBpm><Value>150</Value></AverageHeartRateBpm>
        <MaximumHeartRateBpm><Value>175</Value></MaximumHeartRateBpm>
      </Lap>
    </Activity>
  </Activities>
</TrainingCenterDatabase>`

const rideGPX = `<gpx>
  <metadata><time>2024-03-11T17:00:00Z</time></metadata>
  <trk>
    <name>Morning Bike Ride</name>
    <trkseg>
      <trkpt lat="1" lon="1"><time>2024-03-11T17:00:00Z</time></trkpt>
      <trkpt lat="2" lon="2"><time>2024-03-11T17:30:00Z</time></trkpt>
    </trkseg>
  </trk>
</gpx>`

// mockSink records saved sessions and simulates duplicate detection by
// dedup key, like the real repository.
type mockSink struct {
	saved    []*entities.TrainingSession
	seenKeys map[string]bool
	saveErr  error
}

func newMockSink() *mockSink {
	return &mockSink{seenKeys: make(map[string]bool)}
}

func (m *mockSink) Save(session *entities.TrainingSession) (SaveStatus, error) {
	if m.saveErr != nil {
		return 0, m.saveErr
	}
	if m.seenKeys[session.DedupKey] {
		return SaveDuplicate, nil
	}
	m.seenKeys[session.DedupKey] = true
	m.saved = append(m.saved, session)
	return SaveAccepted, nil
}

func TestPipeline_Preview_EndToEndTCX(t *testing.T) {
	pipeline := NewPipeline(newMockSink())

	batch := pipeline.Preview(7, []File{{Name: "run.tcx", Data: strings.NewReader(runTCX)}})

	assert.NotEmpty(t, batch.ID)
	require.Len(t, batch.Outcomes, 1)

	outcome := batch.Outcomes[0]
	require.True(t, outcome.Success())
	assert.Equal(t, activity.SportRunning, outcome.SuggestedSport)

	session := outcome.Candidate
	assert.Equal(t, entities.SessionCategoryCardio, session.Category)
	assert.Equal(t, 30, session.DurationMinutes)
	assert.Equal(t, 250, session.Calories)
	require.NotNil(t, session.DistanceKm)
	assert.Equal(t, 5.0, *session.DistanceKm)
	require.NotNil(t, session.AvgHeartRate)
	assert.Equal(t, 150, *session.AvgHeartRate)
	require.NotNil(t, session.MaxHeartRate)
	assert.Equal(t, 175, *session.MaxHeartRate)
}

func TestPipeline_Preview_GPXKeywordDetection(t *testing.T) {
	pipeline := NewPipeline(newMockSink())

	batch := pipeline.Preview(7, []File{{Name: "ride.gpx", Data: strings.NewReader(rideGPX)}})

	require.Len(t, batch.Outcomes, 1)
	outcome := batch.Outcomes[0]
	require.True(t, outcome.Success())
	assert.Equal(t, activity.SportCycling, outcome.SuggestedSport)
	assert.Equal(t, 30, outcome.Candidate.DurationMinutes)
}

func TestPipeline_Preview_FailureIsolation(t *testing.T) {
	pipeline := NewPipeline(newMockSink())

	files := []File{
		{Name: "one.tcx", Data: strings.NewReader(runTCX)},
		{Name: "two.tcx", Data: strings.NewReader("<TrainingCenterDatabase><Activities>")},
		{Name: "three.gpx", Data: strings.NewReader(rideGPX)},
	}

	batch := pipeline.Preview(7, files)
	require.Len(t, batch.Outcomes, 3)

	assert.True(t, batch.Outcomes[0].Success())
	assert.False(t, batch.Outcomes[1].Success())
	assert.True(t, batch.Outcomes[2].Success())

	assert.Equal(t, FailureMalformed, ClassifyFailure(batch.Outcomes[1].Err))
}

func TestPipeline_Preview_UnsupportedExtensionIsRejectedBeforeParsing(t *testing.T) {
	pipeline := NewPipeline(newMockSink())

	batch := pipeline.Preview(7, []File{{Name: "workout.fit", Data: strings.NewReader("garbage")}})

	require.Len(t, batch.Outcomes, 1)
	outcome := batch.Outcomes[0]
	require.False(t, outcome.Success())
	assert.Equal(t, FailureUnsupportedFormat, ClassifyFailure(outcome.Err))
}

func TestPipeline_Commit_CountsImportedAndDuplicates(t *testing.T) {
	sink := newMockSink()
	pipeline := NewPipeline(sink)

	batch := pipeline.Preview(7, []File{{Name: "run.tcx", Data: strings.NewReader(runTCX)}})
	require.True(t, batch.Outcomes[0].Success())

	summary := pipeline.Commit([]*entities.TrainingSession{batch.Outcomes[0].Candidate})
	assert.Equal(t, Summary{Imported: 1}, summary)

	// Re-submitting the identical file yields a duplicate, not a second write.
	again := pipeline.Preview(7, []File{{Name: "run.tcx", Data: strings.NewReader(runTCX)}})
	summary = pipeline.Commit([]*entities.TrainingSession{again.Outcomes[0].Candidate})
	assert.Equal(t, Summary{Duplicates: 1}, summary)

	assert.Len(t, sink.saved, 1)
}

func TestPipeline_Commit_SameFileDifferentOwnerIsNotADuplicate(t *testing.T) {
	sink := newMockSink()
	pipeline := NewPipeline(sink)

	first := pipeline.Preview(7, []File{{Name: "run.tcx", Data: strings.NewReader(runTCX)}})
	second := pipeline.Preview(8, []File{{Name: "run.tcx", Data: strings.NewReader(runTCX)}})

	summary := pipeline.Commit([]*entities.TrainingSession{
		first.Outcomes[0].Candidate,
		second.Outcomes[0].Candidate,
	})
	assert.Equal(t, Summary{Imported: 2}, summary)
}

func TestPipeline_Commit_NoRollbackOnLaterFailure(t *testing.T) {
	sink := newMockSink()
	pipeline := NewPipeline(sink)

	run := pipeline.Preview(7, []File{{Name: "run.tcx", Data: strings.NewReader(runTCX)}})
	ride := pipeline.Preview(7, []File{{Name: "ride.gpx", Data: strings.NewReader(rideGPX)}})

	summary := pipeline.Commit([]*entities.TrainingSession{run.Outcomes[0].Candidate})
	assert.Equal(t, 1, summary.Imported)

	sink.saveErr = assert.AnError
	summary = pipeline.Commit([]*entities.TrainingSession{ride.Outcomes[0].Candidate})
	assert.Equal(t, 1, summary.Failed)
	assert.Len(t, summary.Errors, 1)

	// The earlier import stays committed.
	assert.Len(t, sink.saved, 1)
}
