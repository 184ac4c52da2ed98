package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"slotwise/internal/domain"
	"slotwise/internal/port"
)

type subjectRepo struct {
	db *sqlx.DB
}

// NewSubjectRepo creates a new PostgreSQL-backed SubjectRepository.
func NewSubjectRepo(db *sqlx.DB) port.SubjectRepository {
	return &subjectRepo{db: db}
}

func (r *subjectRepo) UpsertByCode(ctx context.Context, subject *domain.Subject) (uuid.UUID, error) {
	now := time.Now().UTC()
	query := `INSERT INTO subjects (id, code, name, lecture_hours, tutorial_hours, practical_hours, self_study_hours, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		ON CONFLICT (code) DO UPDATE SET
			name = EXCLUDED.name,
			lecture_hours = EXCLUDED.lecture_hours,
			tutorial_hours = EXCLUDED.tutorial_hours,
			practical_hours = EXCLUDED.practical_hours,
			self_study_hours = EXCLUDED.self_study_hours,
			updated_at = EXCLUDED.updated_at
		RETURNING id`

	var id uuid.UUID
	err := r.db.GetContext(ctx, &id, query,
		uuid.New(), subject.Code, subject.Name,
		subject.LectureHours, subject.TutorialHours, subject.PracticalHours, subject.SelfStudyHours, now)
	if err != nil {
		return uuid.Nil, fmt.Errorf("subjectRepo.UpsertByCode: %w", err)
	}
	subject.ID = id
	return id, nil
}

func (r *subjectRepo) GetByCode(ctx context.Context, code string) (*domain.Subject, error) {
	var subject domain.Subject
	err := r.db.GetContext(ctx, &subject, "SELECT * FROM subjects WHERE code = $1", code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("subjectRepo.GetByCode: %w", err)
	}
	return &subject, nil
}

func (r *subjectRepo) List(ctx context.Context) ([]domain.Subject, error) {
	var subjects []domain.Subject
	err := r.db.SelectContext(ctx, &subjects, "SELECT * FROM subjects ORDER BY code")
	if err != nil {
		return nil, fmt.Errorf("subjectRepo.List: %w", err)
	}
	return subjects, nil
}
