package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"slotwise/internal/domain"
	"slotwise/internal/port"
)

// MockScheduleRepo is a mock implementation of port.ScheduleRepository.
type MockScheduleRepo struct {
	mock.Mock
}

func (m *MockScheduleRepo) ReplaceForSemester(ctx context.Context, semester string, slots []domain.ScheduleSlot) error {
	args := m.Called(ctx, semester, slots)
	return args.Error(0)
}

func (m *MockScheduleRepo) ListBySemester(ctx context.Context, semester string, filter port.ScheduleFilter) ([]domain.ScheduleEntry, error) {
	args := m.Called(ctx, semester, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScheduleEntry), args.Error(1)
}
