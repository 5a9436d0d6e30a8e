// Command generate_demo creates a demo database with a sample athlete and
// a few weeks of training history.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ndrozd/coachfit/internal/activity"
	"github.com/ndrozd/coachfit/internal/database"
	"github.com/ndrozd/coachfit/internal/database/sessions"
	"github.com/ndrozd/coachfit/internal/entities"
	"github.com/ndrozd/coachfit/internal/importers"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(*dbPath), 0o755); err != nil {
		log.Fatalf("Failed to create demo directory: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	user, err := db.CreateUser("demo-athlete", "demo@example.com")
	if err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}
	log.Printf("Created demo user %s (id=%d, token=%s)", user.Username, user.ID, user.Token)

	repo := sessions.NewRepository(db.DB)
	saved := 0
	for _, session := range demoSessions(user.ID) {
		status, err := repo.Save(session)
		if err != nil {
			log.Printf("Failed to save session on %s: %v", session.Date.Format("2006-01-02"), err)
			continue
		}
		if status == importers.SaveAccepted {
			saved++
		}
	}
	log.Printf("Saved %d training sessions", saved)

	log.Println("Demo database generated successfully!")
}

// demoSessions builds four weeks of a plausible mixed training plan:
// device-imported cardio workouts plus manually logged strength work.
func demoSessions(userID uint) []*entities.TrainingSession {
	var out []*entities.TrainingSession
	start := time.Now().AddDate(0, 0, -28).Truncate(24 * time.Hour)

	type workout struct {
		dayOffset int
		sport     activity.Sport
		minutes   int
		calories  int
		distance  float64 // km, 0 means not measured
		avgHR     int     // 0 means not measured
		maxHR     int
		note      string
		imported  bool
	}

	plan := []workout{
		{0, activity.SportRunning, 35, 320, 6.2, 148, 172, "Easy aerobic run", true},
		{1, activity.SportStrength, 50, 210, 0, 0, 0, "Lower body: squats, lunges, deadlifts", false},
		{3, activity.SportCycling, 75, 540, 28.5, 138, 165, "Endurance ride along the river", true},
		{4, activity.SportYoga, 40, 110, 0, 0, 0, "Recovery flow", false},
		{5, activity.SportRunning, 45, 430, 8.1, 155, 181, "Tempo intervals 4x1km", true},
		{7, activity.SportSwimming, 40, 300, 1.5, 132, 150, "Technique drills", true},
		{8, activity.SportStrength, 55, 230, 0, 0, 0, "Upper body push/pull", false},
		{10, activity.SportRunning, 60, 520, 10.4, 150, 176, "Long run, negative split", true},
		{12, activity.SportCycling, 90, 650, 34.0, 141, 168, "Group ride, rolling hills", true},
		{14, activity.SportWalking, 70, 240, 5.8, 105, 120, "Active recovery hike", true},
		{15, activity.SportStrength, 45, 190, 0, 0, 0, "Core and mobility", false},
		{17, activity.SportRunning, 35, 330, 6.4, 147, 170, "Easy run with strides", true},
		{19, activity.SportSwimming, 45, 340, 1.8, 135, 152, "Continuous swim", true},
		{21, activity.SportRunning, 75, 640, 13.0, 152, 179, "Long run, fueling practice", true},
		{23, activity.SportStrength, 50, 215, 0, 0, 0, "Full body circuit", false},
		{25, activity.SportCycling, 60, 470, 24.2, 144, 171, "Sweet spot intervals", true},
		{27, activity.SportRunning, 30, 280, 5.3, 143, 166, "Shakeout before race week", true},
	}

	for _, w := range plan {
		date := start.AddDate(0, 0, w.dayOffset).Add(7 * time.Hour)
		session := &entities.TrainingSession{
			UserID:          userID,
			Date:            date,
			Category:        entities.SessionCategory(w.sport.Category()),
			Sport:           string(w.sport),
			DurationMinutes: w.minutes,
			Calories:        w.calories,
			Note:            w.note,
		}
		if w.distance > 0 {
			d := w.distance
			session.DistanceKm = &d
		}
		if w.avgHR > 0 {
			avg, max := w.avgHR, w.maxHR
			session.AvgHeartRate = &avg
			session.MaxHeartRate = &max
		}
		if w.imported {
			session.SourceTag = entities.SessionSourceDeviceImport
			act := &activity.Activity{
				StartTime:            date,
				TotalDurationSeconds: float64(w.minutes * 60),
				Sport:                w.sport,
				Calories:             w.calories,
				DistanceMeters:       w.distance * 1000,
			}
			session.DedupKey = importers.DedupKey(userID, act)
		} else {
			// The dedup key column is unique, so manually logged demo
			// sessions need distinct keys too.
			session.DedupKey = fmt.Sprintf("manual_%d_%s", userID, date.Format("20060102"))
		}
		out = append(out, session)
	}

	return out
}
