package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSport(t *testing.T) {
	tests := []struct {
		label    string
		expected Sport
	}{
		{"Running", SportRunning},
		{"running", SportRunning},
		{"  Biking  ", SportCycling},
		{"indoor_cycling", SportCycling},
		{"lap_swimming", SportSwimming},
		{"strength_training", SportStrength},
		{"elliptical", SportCardioMachine},
		{"Yoga", SportYoga},
		{"hiking", SportHiking},
		{"Tennis", SportTennis},
		{"football", SportSoccer},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeSport(tt.label))
		})
	}
}

func TestNormalizeSport_IsTotal(t *testing.T) {
	// Every input yields a tag from the vocabulary, never a panic.
	inputs := []string{"", "   ", "CrossCountrySkiing", "garbage-123", "????", "スキー"}
	for _, input := range inputs {
		assert.Equal(t, SportOther, NormalizeSport(input))
	}
}

func TestDetectSport(t *testing.T) {
	tests := []struct {
		name     string
		expected Sport
	}{
		{"Morning Bike Ride", SportCycling},
		{"MORNING RUN", SportRunning},
		{"Abendlauf am Fluss", SportRunning},
		{"Lunch swim", SportSwimming},
		{"Leg day at the gym", SportStrength},
		{"Sunrise Yoga", SportYoga},
		{"Untitled activity", SportOther},
		{"", SportOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectSport(tt.name))
		})
	}
}

func TestSportCategory(t *testing.T) {
	assert.Equal(t, CategoryCardio, SportRunning.Category())
	assert.Equal(t, CategoryCardio, SportCycling.Category())
	assert.Equal(t, CategoryCardio, SportSwimming.Category())
	assert.Equal(t, CategoryStrength, SportStrength.Category())
	assert.Equal(t, CategoryStrength, SportYoga.Category())
	assert.Equal(t, CategoryStrength, SportWalking.Category())
	assert.Equal(t, CategoryStrength, SportOther.Category())
}
