package service

import (
	"context"

	"slotwise/internal/domain"
	"slotwise/internal/port"
)

// ScheduleService provides read access to committed schedules.
type ScheduleService interface {
	List(ctx context.Context, semester string, filter port.ScheduleFilter) ([]domain.ScheduleEntry, error)
	ImportRuns(ctx context.Context, semester string) ([]domain.ImportRun, error)
}

type scheduleService struct {
	scheduleRepo port.ScheduleRepository
	runRepo      port.ImportRunRepository
}

func NewScheduleService(scheduleRepo port.ScheduleRepository, runRepo port.ImportRunRepository) ScheduleService {
	return &scheduleService{scheduleRepo: scheduleRepo, runRepo: runRepo}
}

func (s *scheduleService) List(ctx context.Context, semester string, filter port.ScheduleFilter) ([]domain.ScheduleEntry, error) {
	if semester == "" {
		return nil, domain.ErrMissingSemester
	}
	return s.scheduleRepo.ListBySemester(ctx, semester, filter)
}

func (s *scheduleService) ImportRuns(ctx context.Context, semester string) ([]domain.ImportRun, error) {
	if semester == "" {
		return nil, domain.ErrMissingSemester
	}
	return s.runRepo.List(ctx, semester)
}
