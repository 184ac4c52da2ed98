package main

import (
	"fmt"
	"log"

	"slotwise/internal/config"
	"slotwise/internal/engine"
	"slotwise/internal/handler"
	"slotwise/internal/port"
	"slotwise/internal/repository/postgres"
	"slotwise/internal/router"
	"slotwise/internal/service"
	noopstorage "slotwise/internal/storage/noop"
	s3storage "slotwise/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	subjectRepo := postgres.NewSubjectRepo(db)
	instructorRepo := postgres.NewInstructorRepo(db)
	roomRepo := postgres.NewRoomRepo(db)
	sectionRepo := postgres.NewSectionRepo(db)
	scheduleRepo := postgres.NewScheduleRepo(db)
	runRepo := postgres.NewImportRunRepo(db)

	// Initialize workbook archive
	var archive port.ObjectStorage
	if cfg.Archive.Bucket != "" {
		archive, err = s3storage.NewArchive(&cfg.Archive)
		if err != nil {
			return fmt.Errorf("failed to initialize archive: %w", err)
		}
	} else {
		archive = noopstorage.NewArchive()
	}

	// Initialize services
	eng := engine.New(cfg.Engine.Options())
	importSvc := service.NewImportService(eng, archive, cfg.Archive.KeyPrefix,
		subjectRepo, instructorRepo, roomRepo, sectionRepo, scheduleRepo, runRepo)
	scheduleSvc := service.NewScheduleService(scheduleRepo, runRepo)

	// Initialize handlers
	importH := handler.NewImportHandler(importSvc)
	scheduleH := handler.NewScheduleHandler(scheduleSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg.CORS.AllowedOrigins, importH, scheduleH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
