// Package cli implements the coachfit command line subcommands.
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/ndrozd/coachfit/internal/config"
	"github.com/ndrozd/coachfit/internal/database"
	"github.com/ndrozd/coachfit/internal/database/sessions"
	"github.com/ndrozd/coachfit/internal/entities"
	"github.com/ndrozd/coachfit/internal/importers"
)

// DeviceImportCommand imports TCX/GPX device export files from disk.
type DeviceImportCommand struct {
	DatabasePath string
	UserID       uint
	DryRun       bool
	Files        []string
}

func NewDeviceImportCommand() *DeviceImportCommand {
	return &DeviceImportCommand{}
}

func (cmd *DeviceImportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("device-import", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file")
	userID := fs.Uint("user", 0, "Owning user ID for the imported sessions")
	fs.BoolVar(&cmd.DryRun, "dry-run", false, "Show what would be imported without making changes")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s device-import [options] <file.tcx|file.gpx> ...\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Import activity files exported by a fitness device or tracking app.\n")
		fmt.Fprintf(os.Stderr, "Supported formats: .tcx, .gpx (case-insensitive).\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s device-import morning-run.tcx evening-ride.gpx\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s device-import -user 3 -dry-run export/*.tcx\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	cmd.UserID = uint(*userID)
	cmd.Files = fs.Args()
	if len(cmd.Files) == 0 {
		return fmt.Errorf("no input files provided")
	}

	return nil
}

func (cmd *DeviceImportCommand) Run() error {
	fmt.Println("Device Import")
	fmt.Println("=============")

	if cmd.DryRun {
		fmt.Println("DRY RUN MODE - No changes will be made")
		fmt.Println()
	}

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	pipeline := importers.NewPipeline(sessions.NewRepository(db.DB))

	var files []importers.File
	var handles []*os.File
	defer func() {
		for _, f := range handles {
			f.Close()
		}
	}()

	for _, path := range cmd.Files {
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		handles = append(handles, file)
		files = append(files, importers.File{Name: path, Data: file})
	}

	batch := pipeline.Preview(cmd.UserID, files)

	var candidates []*entities.TrainingSession
	for _, outcome := range batch.Outcomes {
		if !outcome.Success() {
			fmt.Printf("  FAIL %s: %v\n", outcome.FileName, outcome.Err)
			continue
		}
		candidate := outcome.Candidate
		fmt.Printf("  OK   %s: %s, %d min, %d kcal\n",
			outcome.FileName, candidate.Sport, candidate.DurationMinutes, candidate.Calories)
		candidates = append(candidates, candidate)
	}

	if cmd.DryRun {
		fmt.Printf("\nWould import %d session(s)\n", len(candidates))
		return nil
	}

	summary := pipeline.Commit(candidates)
	fmt.Printf("\nImported: %d, duplicates: %d, failed: %d\n",
		summary.Imported, summary.Duplicates, summary.Failed)
	for _, msg := range summary.Errors {
		fmt.Printf("  error: %s\n", msg)
	}

	if summary.Failed > 0 {
		return fmt.Errorf("%d session(s) failed to import", summary.Failed)
	}
	return nil
}
