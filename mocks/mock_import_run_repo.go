package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"slotwise/internal/domain"
)

// MockImportRunRepo is a mock implementation of port.ImportRunRepository.
type MockImportRunRepo struct {
	mock.Mock
}

func (m *MockImportRunRepo) Create(ctx context.Context, run *domain.ImportRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockImportRunRepo) Finish(ctx context.Context, id uuid.UUID, status domain.ImportStatus, slotCount, droppedCount int) error {
	args := m.Called(ctx, id, status, slotCount, droppedCount)
	return args.Error(0)
}

func (m *MockImportRunRepo) List(ctx context.Context, semester string) ([]domain.ImportRun, error) {
	args := m.Called(ctx, semester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ImportRun), args.Error(1)
}
