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

type importRunRepo struct {
	db *sqlx.DB
}

// NewImportRunRepo creates a new PostgreSQL-backed ImportRunRepository.
func NewImportRunRepo(db *sqlx.DB) port.ImportRunRepository {
	return &importRunRepo{db: db}
}

func (r *importRunRepo) Create(ctx context.Context, run *domain.ImportRun) error {
	run.ID = uuid.New()
	now := time.Now().UTC()
	run.CreatedAt = now
	run.UpdatedAt = now
	if run.Status == "" {
		run.Status = domain.ImportPending
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO import_runs (id, semester, file_name, archive_key, status, slot_count, dropped_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		run.ID, run.Semester, run.FileName, run.ArchiveKey, run.Status,
		run.SlotCount, run.DroppedCount, run.CreatedAt, run.UpdatedAt)
	if err != nil {
		return fmt.Errorf("importRunRepo.Create: %w", err)
	}
	return nil
}

func (r *importRunRepo) Finish(ctx context.Context, id uuid.UUID, status domain.ImportStatus, slotCount, droppedCount int) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE import_runs SET status = $1, slot_count = $2, dropped_count = $3, updated_at = $4 WHERE id = $5`,
		status, slotCount, droppedCount, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("importRunRepo.Finish: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *importRunRepo) List(ctx context.Context, semester string) ([]domain.ImportRun, error) {
	var runs []domain.ImportRun
	err := r.db.SelectContext(ctx, &runs,
		"SELECT * FROM import_runs WHERE semester = $1 ORDER BY created_at DESC", semester)
	if err != nil {
		return nil, fmt.Errorf("importRunRepo.List: %w", err)
	}
	return runs, nil
}
