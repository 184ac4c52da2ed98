package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"slotwise/internal/domain"
)

// MockRoomRepo is a mock implementation of port.RoomRepository.
type MockRoomRepo struct {
	mock.Mock
}

func (m *MockRoomRepo) UpsertByName(ctx context.Context, room *domain.Room) (uuid.UUID, error) {
	args := m.Called(ctx, room)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockRoomRepo) List(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}
