package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"slotwise/internal/domain"
)

// MockSubjectRepo is a mock implementation of port.SubjectRepository.
type MockSubjectRepo struct {
	mock.Mock
}

func (m *MockSubjectRepo) UpsertByCode(ctx context.Context, subject *domain.Subject) (uuid.UUID, error) {
	args := m.Called(ctx, subject)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockSubjectRepo) GetByCode(ctx context.Context, code string) (*domain.Subject, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subject), args.Error(1)
}

func (m *MockSubjectRepo) List(ctx context.Context) ([]domain.Subject, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Subject), args.Error(1)
}
