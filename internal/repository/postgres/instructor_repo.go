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

type instructorRepo struct {
	db *sqlx.DB
}

// NewInstructorRepo creates a new PostgreSQL-backed InstructorRepository.
func NewInstructorRepo(db *sqlx.DB) port.InstructorRepository {
	return &instructorRepo{db: db}
}

// UpsertBySlug keeps the first-seen display name on conflict; re-imports
// with a different spelling of the same slug do not churn the stored name.
func (r *instructorRepo) UpsertBySlug(ctx context.Context, instructor *domain.Instructor) (uuid.UUID, error) {
	now := time.Now().UTC()
	query := `INSERT INTO instructors (id, slug, display_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (slug) DO UPDATE SET updated_at = EXCLUDED.updated_at
		RETURNING id`

	var id uuid.UUID
	err := r.db.GetContext(ctx, &id, query, uuid.New(), instructor.Slug, instructor.DisplayName, now)
	if err != nil {
		return uuid.Nil, fmt.Errorf("instructorRepo.UpsertBySlug: %w", err)
	}
	instructor.ID = id
	return id, nil
}

func (r *instructorRepo) List(ctx context.Context) ([]domain.Instructor, error) {
	var instructors []domain.Instructor
	err := r.db.SelectContext(ctx, &instructors, "SELECT * FROM instructors ORDER BY display_name")
	if err != nil {
		return nil, fmt.Errorf("instructorRepo.List: %w", err)
	}
	return instructors, nil
}
