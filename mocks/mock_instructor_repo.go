package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"slotwise/internal/domain"
)

// MockInstructorRepo is a mock implementation of port.InstructorRepository.
type MockInstructorRepo struct {
	mock.Mock
}

func (m *MockInstructorRepo) UpsertBySlug(ctx context.Context, instructor *domain.Instructor) (uuid.UUID, error) {
	args := m.Called(ctx, instructor)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockInstructorRepo) List(ctx context.Context) ([]domain.Instructor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Instructor), args.Error(1)
}
