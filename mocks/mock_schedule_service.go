package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"slotwise/internal/domain"
	"slotwise/internal/port"
)

// MockScheduleService is a mock implementation of service.ScheduleService.
type MockScheduleService struct {
	mock.Mock
}

func (m *MockScheduleService) List(ctx context.Context, semester string, filter port.ScheduleFilter) ([]domain.ScheduleEntry, error) {
	args := m.Called(ctx, semester, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScheduleEntry), args.Error(1)
}

func (m *MockScheduleService) ImportRuns(ctx context.Context, semester string) ([]domain.ImportRun, error) {
	args := m.Called(ctx, semester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ImportRun), args.Error(1)
}
