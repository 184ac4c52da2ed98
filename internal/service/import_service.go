package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"slotwise/internal/domain"
	"slotwise/internal/engine"
	"slotwise/internal/gridio"
	"slotwise/internal/port"
)

// ImportSession holds one parsed grid awaiting human review. Sessions are
// process-local: the review surface reads slots and diagnostics, may edit
// the slot list, and eventually commits or abandons the session.
type ImportSession struct {
	ID          uuid.UUID              `json:"id"`
	Semester    string                 `json:"semester"`
	FileName    string                 `json:"file_name"`
	ArchiveKey  string                 `json:"archive_key"`
	CreatedAt   time.Time              `json:"created_at"`
	TimeAxis    []engine.TimeColumn    `json:"time_axis"`
	Slots       []engine.ExtractedSlot `json:"slots"`
	Diagnostics []engine.Diagnostic    `json:"diagnostics"`
	CrossCheck  []engine.CrossCheckRow `json:"cross_check"`

	subjects map[string]engine.SubjectMeta
}

// CommitResult summarizes a committed import.
type CommitResult struct {
	ImportRunID uuid.UUID              `json:"import_run_id"`
	Inserted    int                    `json:"inserted"`
	Dropped     int                    `json:"dropped"`
	CrossCheck  []engine.CrossCheckRow `json:"cross_check"`
}

// ImportService runs the extraction pipeline and commits reviewed results.
type ImportService interface {
	Parse(ctx context.Context, semester, fileName string, workbook []byte) (*ImportSession, error)
	Get(id uuid.UUID) (*ImportSession, error)
	UpdateSlots(id uuid.UUID, slots []engine.ExtractedSlot) (*ImportSession, error)
	Commit(ctx context.Context, id uuid.UUID) (*CommitResult, error)
}

type importService struct {
	eng            *engine.Engine
	archive        port.ObjectStorage
	archivePrefix  string
	subjectRepo    port.SubjectRepository
	instructorRepo port.InstructorRepository
	roomRepo       port.RoomRepository
	sectionRepo    port.SectionRepository
	scheduleRepo   port.ScheduleRepository
	runRepo        port.ImportRunRepository

	mu       sync.Mutex
	sessions map[uuid.UUID]*ImportSession
}

// NewImportService wires the engine against the store and the workbook
// archive.
func NewImportService(
	eng *engine.Engine,
	archive port.ObjectStorage,
	archivePrefix string,
	subjectRepo port.SubjectRepository,
	instructorRepo port.InstructorRepository,
	roomRepo port.RoomRepository,
	sectionRepo port.SectionRepository,
	scheduleRepo port.ScheduleRepository,
	runRepo port.ImportRunRepository,
) ImportService {
	return &importService{
		eng:            eng,
		archive:        archive,
		archivePrefix:  archivePrefix,
		subjectRepo:    subjectRepo,
		instructorRepo: instructorRepo,
		roomRepo:       roomRepo,
		sectionRepo:    sectionRepo,
		scheduleRepo:   scheduleRepo,
		runRepo:        runRepo,
		sessions:       make(map[uuid.UUID]*ImportSession),
	}
}

func (s *importService) Parse(ctx context.Context, semester, fileName string, workbook []byte) (*ImportSession, error) {
	if strings.TrimSpace(semester) == "" {
		return nil, domain.ErrMissingSemester
	}

	sessionID := uuid.New()
	archiveKey, err := s.archive.Upload(ctx, port.UploadInput{
		Key:         path.Join(s.archivePrefix, semester, sessionID.String()+path.Ext(fileName)),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Body:        bytes.NewReader(workbook),
	})
	if err != nil {
		// The archive is an audit convenience; a failed upload must not block
		// the import itself.
		log.Printf("importService.Parse: workbook archive failed: %v", err)
		archiveKey = ""
	}

	grid, err := gridio.ReadWorkbook(bytes.NewReader(workbook))
	if err != nil {
		return nil, fmt.Errorf("importService.Parse: %w", err)
	}

	result, err := s.eng.Run(grid)
	if err != nil {
		return nil, fmt.Errorf("importService.Parse: %w", err)
	}

	session := &ImportSession{
		ID:          sessionID,
		Semester:    semester,
		FileName:    fileName,
		ArchiveKey:  archiveKey,
		CreatedAt:   time.Now().UTC(),
		TimeAxis:    result.TimeAxis,
		Slots:       result.Slots,
		Diagnostics: result.Diagnostics,
		CrossCheck:  result.CrossCheck,
		subjects:    result.Subjects,
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	log.Printf("importService.Parse: session %s semester=%s slots=%d diagnostics=%d",
		session.ID, semester, len(session.Slots), len(session.Diagnostics))
	return session, nil
}

func (s *importService) Get(id uuid.UUID) (*ImportSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

// UpdateSlots replaces the session's slot list with the review surface's
// edited version and refreshes the cross-check against it.
func (s *importService) UpdateSlots(id uuid.UUID, slots []engine.ExtractedSlot) (*ImportSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	session.Slots = slots
	session.CrossCheck = engine.CrossCheck(slots, session.subjects)
	return session, nil
}

// Commit normalizes and resolves the reviewed slots, upserts the entity
// rows by natural key, and replaces the semester's schedule in one
// transaction. The session is discarded on success.
func (s *importService) Commit(ctx context.Context, id uuid.UUID) (*CommitResult, error) {
	session, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	run := &domain.ImportRun{
		Semester:   session.Semester,
		FileName:   session.FileName,
		ArchiveKey: session.ArchiveKey,
	}
	if err := s.runRepo.Create(ctx, run); err != nil {
		return nil, fmt.Errorf("importService.Commit: %w", err)
	}

	ids, err := s.upsertEntities(ctx, session)
	if err != nil {
		s.failRun(ctx, run.ID)
		return nil, fmt.Errorf("importService.Commit: %w", err)
	}

	resolved := engine.Resolve(session.Semester, session.Slots, ids)
	if resolved.Dropped > 0 {
		log.Printf("importService.Commit: session %s dropped %d unresolved slots", id, resolved.Dropped)
	}

	if err := s.scheduleRepo.ReplaceForSemester(ctx, session.Semester, resolved.Slots); err != nil {
		s.failRun(ctx, run.ID)
		return nil, fmt.Errorf("importService.Commit: %w", err)
	}

	if err := s.runRepo.Finish(ctx, run.ID, domain.ImportCommitted, len(resolved.Slots), resolved.Dropped); err != nil {
		return nil, fmt.Errorf("importService.Commit: %w", err)
	}

	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()

	return &CommitResult{
		ImportRunID: run.ID,
		Inserted:    len(resolved.Slots),
		Dropped:     resolved.Dropped,
		CrossCheck:  engine.CrossCheck(session.Slots, session.subjects),
	}, nil
}

// upsertEntities pushes the deduplicated entity set through the store's
// upsert-by-natural-key calls and collects the assigned identifiers.
func (s *importService) upsertEntities(ctx context.Context, session *ImportSession) (engine.EntityIDs, error) {
	entities := engine.Normalize(session.Slots)
	ids := engine.EntityIDs{
		Subjects:    make(map[string]uuid.UUID, len(entities.Subjects)),
		Instructors: make(map[string]uuid.UUID, len(entities.Instructors)),
		Rooms:       make(map[string]uuid.UUID, len(entities.Rooms)),
		Sections:    make(map[string]uuid.UUID, len(entities.Sections)),
	}

	for _, code := range entities.Subjects {
		subject := domain.Subject{Code: code}
		if meta, ok := session.subjects[code]; ok {
			subject.Name = meta.Name
			subject.LectureHours = meta.Lecture
			subject.TutorialHours = meta.Tutorial
			subject.PracticalHours = meta.Practical
			subject.SelfStudyHours = meta.SelfStudy
		}
		id, err := s.subjectRepo.UpsertByCode(ctx, &subject)
		if err != nil {
			return ids, err
		}
		ids.Subjects[strings.ToLower(code)] = id
	}

	for _, name := range entities.Instructors {
		slug := engine.InstructorSlug(name)
		if slug == "" {
			slug = strings.ToLower(domain.UnknownInstructor)
		}
		id, err := s.instructorRepo.UpsertBySlug(ctx, &domain.Instructor{Slug: slug, DisplayName: name})
		if err != nil {
			return ids, err
		}
		ids.Instructors[strings.ToLower(name)] = id
		if name == domain.UnknownInstructor {
			ids.UnknownInstructor = id
		}
	}

	for name, kind := range entities.Rooms {
		id, err := s.roomRepo.UpsertByName(ctx, &domain.Room{Name: name, Kind: kind})
		if err != nil {
			return ids, err
		}
		ids.Rooms[strings.ToLower(name)] = id
	}

	for _, name := range entities.Sections {
		id, err := s.sectionRepo.UpsertByNameSemester(ctx, &domain.Section{Name: name, Semester: session.Semester})
		if err != nil {
			return ids, err
		}
		ids.Sections[strings.ToLower(name)] = id
	}

	return ids, nil
}

func (s *importService) failRun(ctx context.Context, runID uuid.UUID) {
	if err := s.runRepo.Finish(ctx, runID, domain.ImportFailed, 0, 0); err != nil {
		log.Printf("importService: marking run %s failed: %v", runID, err)
	}
}
