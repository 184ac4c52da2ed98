package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"slotwise/internal/config"
	"slotwise/internal/domain"
	"slotwise/internal/engine"
	"slotwise/internal/gridio"
	"slotwise/internal/repository/postgres"
	"slotwise/internal/service"
	noopstorage "slotwise/internal/storage/noop"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var (
		file     = flag.String("file", "", "path to the timetable workbook (.xlsx)")
		semester = flag.String("semester", "", "semester label, e.g. 2026-monsoon")
		commit   = flag.Bool("commit", false, "commit the parsed schedule to the database")
	)
	flag.Parse()

	if *file == "" || *semester == "" {
		flag.Usage()
		return fmt.Errorf("both -file and -semester are required")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	workbook, err := os.ReadFile(*file)
	if err != nil {
		return fmt.Errorf("failed to read workbook: %w", err)
	}

	eng := engine.New(cfg.Engine.Options())

	if !*commit {
		return dryRun(eng, *file, workbook)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	svc := service.NewImportService(eng, noopstorage.NewArchive(), cfg.Archive.KeyPrefix,
		postgres.NewSubjectRepo(db),
		postgres.NewInstructorRepo(db),
		postgres.NewRoomRepo(db),
		postgres.NewSectionRepo(db),
		postgres.NewScheduleRepo(db),
		postgres.NewImportRunRepo(db))

	ctx := context.Background()
	session, err := svc.Parse(ctx, *semester, filepath.Base(*file), workbook)
	if err != nil {
		return err
	}
	printReport(session.TimeAxis, session.Slots, session.Diagnostics, session.CrossCheck)

	result, err := svc.Commit(ctx, session.ID)
	if err != nil {
		return err
	}
	fmt.Printf("\ncommitted run %s: inserted=%d dropped=%d\n", result.ImportRunID, result.Inserted, result.Dropped)
	return nil
}

// dryRun parses the workbook and prints the report without touching the
// database.
func dryRun(eng *engine.Engine, file string, workbook []byte) error {
	grid, err := gridio.ReadWorkbook(bytes.NewReader(workbook))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filepath.Base(file), err)
	}
	result, err := eng.Run(grid)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(file), err)
	}
	printReport(result.TimeAxis, result.Slots, result.Diagnostics, result.CrossCheck)
	return nil
}

func printReport(axis []engine.TimeColumn, slots []engine.ExtractedSlot, diags []engine.Diagnostic, crossCheck []engine.CrossCheckRow) {
	real := 0
	for _, tc := range axis {
		if !tc.BreakOrLunch {
			real++
		}
	}
	fmt.Printf("time axis: %d teaching columns\n", real)
	fmt.Printf("slots extracted: %d\n", len(slots))

	skipped, failed := 0, 0
	for _, d := range diags {
		switch d.Status {
		case domain.DiagnosticSkipped:
			skipped++
		case domain.DiagnosticFailed:
			failed++
		}
	}
	fmt.Printf("diagnostics: %d lines (%d skipped, %d failed)\n", len(diags), skipped, failed)
	for _, d := range diags {
		if d.Status == domain.DiagnosticParsed {
			continue
		}
		fmt.Printf("  row %d [%s] %q: %s\n", d.Row, d.Status, d.RawText, d.Reason)
	}

	fmt.Println("\ncross-check:")
	for _, row := range crossCheck {
		status := "no reference"
		if row.Consistent != nil {
			if *row.Consistent {
				status = "consistent"
			} else {
				status = "MISMATCH"
			}
		}
		fmt.Printf("  %-12s L=%d T=%d P=%d  %s\n",
			row.SubjectCode, row.Lectures, row.Tutorials, row.Practicals, status)
	}
}
