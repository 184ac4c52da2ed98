package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"slotwise/internal/domain"
	"slotwise/internal/port"
)

type scheduleRepo struct {
	db *sqlx.DB
}

// NewScheduleRepo creates a new PostgreSQL-backed ScheduleRepository.
func NewScheduleRepo(db *sqlx.DB) port.ScheduleRepository {
	return &scheduleRepo{db: db}
}

// ReplaceForSemester deletes the semester's existing slots and bulk-inserts
// the new batch inside one transaction. Two concurrent replaces of the same
// semester still interleave destructively; callers must serialize imports
// per semester.
func (r *scheduleRepo) ReplaceForSemester(ctx context.Context, semester string, slots []domain.ScheduleSlot) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("scheduleRepo.ReplaceForSemester begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM schedule_slots WHERE semester = $1", semester); err != nil {
		return fmt.Errorf("scheduleRepo.ReplaceForSemester delete: %w", err)
	}

	if len(slots) > 0 {
		now := time.Now().UTC()
		rows := make([]domain.ScheduleSlot, len(slots))
		for i, s := range slots {
			s.ID = uuid.New()
			s.Semester = semester
			s.CreatedAt = now
			rows[i] = s
		}
		_, err = tx.NamedExecContext(ctx,
			`INSERT INTO schedule_slots
				(id, semester, day, start_minutes, end_minutes, subject_id, section_id, instructor_id, room_id, slot_type, raw_source, created_at)
			VALUES
				(:id, :semester, :day, :start_minutes, :end_minutes, :subject_id, :section_id, :instructor_id, :room_id, :slot_type, :raw_source, :created_at)`,
			rows)
		if err != nil {
			return fmt.Errorf("scheduleRepo.ReplaceForSemester insert: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("scheduleRepo.ReplaceForSemester commit: %w", err)
	}
	return nil
}

func (r *scheduleRepo) ListBySemester(ctx context.Context, semester string, filter port.ScheduleFilter) ([]domain.ScheduleEntry, error) {
	query := `SELECT
			ss.id, ss.semester, ss.day, ss.start_minutes, ss.end_minutes,
			sub.code AS subject_code, sub.name AS subject_name,
			sec.name AS section_name,
			ins.display_name AS instructor_name,
			rm.name AS room_name,
			ss.slot_type
		FROM schedule_slots ss
		JOIN subjects sub ON sub.id = ss.subject_id
		JOIN sections sec ON sec.id = ss.section_id
		LEFT JOIN instructors ins ON ins.id = ss.instructor_id
		LEFT JOIN rooms rm ON rm.id = ss.room_id
		WHERE ss.semester = $1`
	args := []interface{}{semester}

	var conds []string
	if filter.Section != "" {
		args = append(args, filter.Section)
		conds = append(conds, fmt.Sprintf("LOWER(sec.name) = LOWER($%d)", len(args)))
	}
	if filter.Day != "" {
		args = append(args, filter.Day)
		conds = append(conds, fmt.Sprintf("ss.day = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " AND " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY ss.day, ss.start_minutes, sec.name"

	var entries []domain.ScheduleEntry
	if err := r.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, fmt.Errorf("scheduleRepo.ListBySemester: %w", err)
	}
	return entries, nil
}
