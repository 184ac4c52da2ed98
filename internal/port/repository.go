package port

import (
	"context"

	"github.com/google/uuid"

	"slotwise/internal/domain"
)

// SubjectRepository persists subjects, upserted by course code.
type SubjectRepository interface {
	UpsertByCode(ctx context.Context, subject *domain.Subject) (uuid.UUID, error)
	GetByCode(ctx context.Context, code string) (*domain.Subject, error)
	List(ctx context.Context) ([]domain.Subject, error)
}

// InstructorRepository persists instructors, upserted by derived slug.
// The slug is the natural key: spellings that normalize identically are the
// same instructor.
type InstructorRepository interface {
	UpsertBySlug(ctx context.Context, instructor *domain.Instructor) (uuid.UUID, error)
	List(ctx context.Context) ([]domain.Instructor, error)
}

// RoomRepository persists rooms, upserted by name.
type RoomRepository interface {
	UpsertByName(ctx context.Context, room *domain.Room) (uuid.UUID, error)
	List(ctx context.Context) ([]domain.Room, error)
}

// SectionRepository persists sections, upserted by (name, semester).
type SectionRepository interface {
	UpsertByNameSemester(ctx context.Context, section *domain.Section) (uuid.UUID, error)
	ListBySemester(ctx context.Context, semester string) ([]domain.Section, error)
}

// ScheduleFilter narrows schedule queries. Zero-valued fields match all.
type ScheduleFilter struct {
	Section string
	Day     domain.DayOfWeek
}

// ScheduleRepository persists committed schedule slots. ReplaceForSemester
// is the delete-then-insert replace for one semester partition, atomic
// within a single call; serializing concurrent imports of the same semester
// is the caller's responsibility.
type ScheduleRepository interface {
	ReplaceForSemester(ctx context.Context, semester string, slots []domain.ScheduleSlot) error
	ListBySemester(ctx context.Context, semester string, filter ScheduleFilter) ([]domain.ScheduleEntry, error)
}

// ImportRunRepository records the audit trail of import runs.
type ImportRunRepository interface {
	Create(ctx context.Context, run *domain.ImportRun) error
	Finish(ctx context.Context, id uuid.UUID, status domain.ImportStatus, slotCount, droppedCount int) error
	List(ctx context.Context, semester string) ([]domain.ImportRun, error)
}
