package service

import (
	"context"
	"time"

	"gymadmin/gym-app/internal/domain"
	"gymadmin/gym-app/internal/repository"
)

// SummaryService produces the activity overview counters.
type SummaryService interface {
	GetSummary(ctx context.Context) (*domain.Summary, error)
}

type summaryService struct {
	userRepo    repository.UserRepository
	paymentRepo repository.PaymentRepository
	machineRepo repository.MachineRepository
	now         func() time.Time
}

// NewSummaryService creates a new instance of summaryService.
func NewSummaryService(
	userRepo repository.UserRepository,
	paymentRepo repository.PaymentRepository,
	machineRepo repository.MachineRepository,
) SummaryService {
	return &summaryService{
		userRepo:    userRepo,
		paymentRepo: paymentRepo,
		machineRepo: machineRepo,
		now:         time.Now,
	}
}

// GetSummary loads the three collections fresh and aggregates them.
func (s *summaryService) GetSummary(ctx context.Context) (*domain.Summary, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	machines, err := s.machineRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := domain.Summarize(users, payments, machines, s.now())
	return &summary, nil
}
