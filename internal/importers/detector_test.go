package importers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		filename string
		format   Format
	}{
		{"morning-run.tcx", FormatTCX},
		{"MORNING-RUN.TCX", FormatTCX},
		{"ride.Gpx", FormatGPX},
		{"export/2024/activity.gpx", FormatGPX},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			format, err := DetectFormat(tt.filename)
			require.NoError(t, err)
			assert.Equal(t, tt.format, format)
		})
	}
}

func TestDetectFormat_Unsupported(t *testing.T) {
	tests := []string{"workout.fit", "notes.txt", "archive.tcx.zip", "noextension", ""}

	for _, filename := range tests {
		t.Run(filename, func(t *testing.T) {
			_, err := DetectFormat(filename)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnsupportedFormat)
		})
	}
}

func TestDetectFormat_ErrorCarriesExtension(t *testing.T) {
	_, err := DetectFormat("workout.fit")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".fit")
}
