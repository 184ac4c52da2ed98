package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"slotwise/internal/engine"
	"slotwise/internal/service"
)

// MockImportService is a mock implementation of service.ImportService.
type MockImportService struct {
	mock.Mock
}

func (m *MockImportService) Parse(ctx context.Context, semester, fileName string, workbook []byte) (*service.ImportSession, error) {
	args := m.Called(ctx, semester, fileName, workbook)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ImportSession), args.Error(1)
}

func (m *MockImportService) Get(id uuid.UUID) (*service.ImportSession, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ImportSession), args.Error(1)
}

func (m *MockImportService) UpdateSlots(id uuid.UUID, slots []engine.ExtractedSlot) (*service.ImportSession, error) {
	args := m.Called(id, slots)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ImportSession), args.Error(1)
}

func (m *MockImportService) Commit(ctx context.Context, id uuid.UUID) (*service.CommitResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CommitResult), args.Error(1)
}
