package activity

import "strings"

// Sport is the platform's closed sport vocabulary. Anything a device
// reports that has no mapping collapses to SportOther.
type Sport string

const (
	SportRunning       Sport = "running"
	SportCycling       Sport = "cycling"
	SportSwimming      Sport = "swimming"
	SportStrength      Sport = "strength_training"
	SportYoga          Sport = "yoga"
	SportWalking       Sport = "walking"
	SportHiking        Sport = "hiking"
	SportTennis        Sport = "tennis"
	SportBasketball    Sport = "basketball"
	SportSoccer        Sport = "soccer"
	SportCardioMachine Sport = "cardio_machine"
	SportOther         Sport = "other"
)

// Category is the binary taxonomy persisted sessions use.
type Category string

const (
	CategoryCardio   Category = "cardio"
	CategoryStrength Category = "strength"
)

// Category collapses the sport tag onto cardio/strength. Running, cycling
// and swimming are cardio; everything else, including "other", counts as
// strength at persistence time.
func (s Sport) Category() Category {
	switch s {
	case SportRunning, SportCycling, SportSwimming:
		return CategoryCardio
	default:
		return CategoryStrength
	}
}

// sportLabels maps vendor sport labels (TCX Sport attribute values,
// Garmin activity type strings) onto the vocabulary. Lookup is done on
// the lowercased, trimmed label. Extending the mapping means adding rows.
var sportLabels = map[string]Sport{
	"running":             SportRunning,
	"run":                 SportRunning,
	"treadmill_running":   SportRunning,
	"trail_running":       SportRunning,
	"track_running":       SportRunning,
	"biking":              SportCycling,
	"cycling":             SportCycling,
	"road_biking":         SportCycling,
	"mountain_biking":     SportCycling,
	"indoor_cycling":      SportCycling,
	"virtual_ride":        SportCycling,
	"swimming":            SportSwimming,
	"lap_swimming":        SportSwimming,
	"open_water_swimming": SportSwimming,
	"strength_training":   SportStrength,
	"strength":            SportStrength,
	"weight_training":     SportStrength,
	"fitness_equipment":   SportCardioMachine,
	"cardio_machine":      SportCardioMachine,
	"elliptical":          SportCardioMachine,
	"indoor_cardio":       SportCardioMachine,
	"indoor_rowing":       SportCardioMachine,
	"stair_climbing":      SportCardioMachine,
	"yoga":                SportYoga,
	"pilates":             SportYoga,
	"walking":             SportWalking,
	"casual_walking":      SportWalking,
	"speed_walking":       SportWalking,
	"hiking":              SportHiking,
	"tennis":              SportTennis,
	"basketball":          SportBasketball,
	"soccer":              SportSoccer,
	"football":            SportSoccer,
}

// NormalizeSport maps a raw vendor sport label onto the vocabulary.
// It is total: unrecognized labels (and the empty string) yield SportOther.
func NormalizeSport(label string) Sport {
	if sport, ok := sportLabels[strings.ToLower(strings.TrimSpace(label))]; ok {
		return sport
	}
	return SportOther
}

// AllSports lists the vocabulary in display order, for sport pickers.
func AllSports() []Sport {
	return []Sport{
		SportRunning,
		SportCycling,
		SportSwimming,
		SportStrength,
		SportYoga,
		SportWalking,
		SportHiking,
		SportTennis,
		SportBasketball,
		SportSoccer,
		SportCardioMachine,
		SportOther,
	}
}

// sportKeywords drives free-text detection for GPX track names, which carry
// no sport field. Matching is a case-insensitive substring search; the
// keyword list deliberately mixes languages seen in real exports.
var sportKeywords = []struct {
	keyword string
	sport   Sport
}{
	{"run", SportRunning},
	{"jog", SportRunning},
	{"lauf", SportRunning},
	{"course", SportRunning},
	{"bike", SportCycling},
	{"cycl", SportCycling},
	{"ride", SportCycling},
	{"velo", SportCycling},
	{"rad", SportCycling},
	{"swim", SportSwimming},
	{"schwimm", SportSwimming},
	{"natation", SportSwimming},
	{"strength", SportStrength},
	{"weight", SportStrength},
	{"gym", SportStrength},
	{"kraft", SportStrength},
	{"yoga", SportYoga},
}

// DetectSport guesses a sport from a free-text activity name, e.g.
// "Morning Bike Ride". Unmatched names yield SportOther.
func DetectSport(name string) Sport {
	lower := strings.ToLower(name)
	for _, entry := range sportKeywords {
		if strings.Contains(lower, entry.keyword) {
			return entry.sport
		}
	}
	return SportOther
}
