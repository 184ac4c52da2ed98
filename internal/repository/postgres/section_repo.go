package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"slotwise/internal/domain"
	"slotwise/internal/port"
)

type sectionRepo struct {
	db *sqlx.DB
}

// NewSectionRepo creates a new PostgreSQL-backed SectionRepository.
func NewSectionRepo(db *sqlx.DB) port.SectionRepository {
	return &sectionRepo{db: db}
}

func (r *sectionRepo) UpsertByNameSemester(ctx context.Context, section *domain.Section) (uuid.UUID, error) {
	now := time.Now().UTC()
	query := `INSERT INTO sections (id, name, semester, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (name, semester) DO UPDATE SET updated_at = EXCLUDED.updated_at
		RETURNING id`

	var id uuid.UUID
	err := r.db.GetContext(ctx, &id, query, uuid.New(), section.Name, section.Semester, now)
	if err != nil {
		return uuid.Nil, fmt.Errorf("sectionRepo.UpsertByNameSemester: %w", err)
	}
	section.ID = id
	return id, nil
}

func (r *sectionRepo) ListBySemester(ctx context.Context, semester string) ([]domain.Section, error) {
	var sections []domain.Section
	err := r.db.SelectContext(ctx, &sections,
		"SELECT * FROM sections WHERE semester = $1 ORDER BY name", semester)
	if err != nil {
		return nil, fmt.Errorf("sectionRepo.ListBySemester: %w", err)
	}
	return sections, nil
}
