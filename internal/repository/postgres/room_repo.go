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

type roomRepo struct {
	db *sqlx.DB
}

// NewRoomRepo creates a new PostgreSQL-backed RoomRepository.
func NewRoomRepo(db *sqlx.DB) port.RoomRepository {
	return &roomRepo{db: db}
}

func (r *roomRepo) UpsertByName(ctx context.Context, room *domain.Room) (uuid.UUID, error) {
	now := time.Now().UTC()
	query := `INSERT INTO rooms (id, name, kind, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (name) DO UPDATE SET
			kind = EXCLUDED.kind,
			updated_at = EXCLUDED.updated_at
		RETURNING id`

	var id uuid.UUID
	err := r.db.GetContext(ctx, &id, query, uuid.New(), room.Name, room.Kind, now)
	if err != nil {
		return uuid.Nil, fmt.Errorf("roomRepo.UpsertByName: %w", err)
	}
	room.ID = id
	return id, nil
}

func (r *roomRepo) List(ctx context.Context) ([]domain.Room, error) {
	var rooms []domain.Room
	err := r.db.SelectContext(ctx, &rooms, "SELECT * FROM rooms ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("roomRepo.List: %w", err)
	}
	return rooms, nil
}
