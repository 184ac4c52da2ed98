package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"slotwise/internal/domain"
)

// MockSectionRepo is a mock implementation of port.SectionRepository.
type MockSectionRepo struct {
	mock.Mock
}

func (m *MockSectionRepo) UpsertByNameSemester(ctx context.Context, section *domain.Section) (uuid.UUID, error) {
	args := m.Called(ctx, section)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockSectionRepo) ListBySemester(ctx context.Context, semester string) ([]domain.Section, error) {
	args := m.Called(ctx, semester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Section), args.Error(1)
}
