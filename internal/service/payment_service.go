package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gymadmin/gym-app/internal/domain"
	"gymadmin/gym-app/internal/repository"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrInvalidPlan     = errors.New("plan must be monthly or annual")
	ErrInvalidDate     = errors.New("date must be in YYYY-MM-DD format")
)

// PaymentDetail is a payment joined with the paying member's name.
type PaymentDetail struct {
	domain.Payment
	UserName string `json:"userName"`
}

// PaymentService records membership payments. The amount and due date are
// derived from the plan, never supplied by the caller.
type PaymentService interface {
	RecordPayment(ctx context.Context, userID, paymentDate string, plan domain.Plan) (*domain.Payment, error)
	GetPayment(ctx context.Context, id string) (*domain.Payment, error)
	ListPayments(ctx context.Context) ([]PaymentDetail, error)
	ListPaymentsForUser(ctx context.Context, userID string) ([]domain.Payment, error)
	UpdatePayment(ctx context.Context, id, userID, paymentDate string, plan domain.Plan) (*domain.Payment, error)
	DeletePayment(ctx context.Context, id string) error
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	userRepo    repository.UserRepository
}

// NewPaymentService creates a new instance of paymentService.
func NewPaymentService(paymentRepo repository.PaymentRepository, userRepo repository.UserRepository) PaymentService {
	return &paymentService{paymentRepo: paymentRepo, userRepo: userRepo}
}

// derive computes the amount and due date for a plan and payment date.
func derive(paymentDate string, plan domain.Plan) (amount, dueDate string, err error) {
	if !plan.IsValid() {
		return "", "", ErrInvalidPlan
	}
	paid, err := time.Parse(domain.DateLayout, paymentDate)
	if err != nil {
		return "", "", ErrInvalidDate
	}
	amount = strconv.Itoa(domain.PlanAmount(plan))
	dueDate = domain.ComputeDueDate(paid, plan).Format(domain.DateLayout)
	return amount, dueDate, nil
}

// RecordPayment stores a new payment for a member.
func (s *paymentService) RecordPayment(ctx context.Context, userID, paymentDate string, plan domain.Plan) (*domain.Payment, error) {
	if userID == "" || paymentDate == "" {
		return nil, ErrValidationFailed
	}
	amount, dueDate, err := derive(paymentDate, plan)
	if err != nil {
		return nil, err
	}

	p := &domain.Payment{
		UserID:      userID,
		Amount:      amount,
		PaymentDate: paymentDate,
		Plan:        plan,
		DueDate:     dueDate,
	}
	id, err := s.paymentRepo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = id
	return p, nil
}

func (s *paymentService) GetPayment(ctx context.Context, id string) (*domain.Payment, error) {
	p, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return p, nil
}

// ListPayments returns every payment joined with the paying member's name,
// falling back when the member has been deleted.
func (s *paymentService) ListPayments(ctx context.Context) ([]PaymentDetail, error) {
	payments, err := s.paymentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name + " " + u.Surname
	}

	result := make([]PaymentDetail, len(payments))
	for i, p := range payments {
		name, ok := names[p.UserID]
		if !ok {
			name = UnknownMemberLabel
		}
		result[i] = PaymentDetail{Payment: p, UserName: name}
	}
	return result, nil
}

func (s *paymentService) ListPaymentsForUser(ctx context.Context, userID string) ([]domain.Payment, error) {
	return s.paymentRepo.ListByUser(ctx, userID)
}

// UpdatePayment replaces the payment's details, recomputing the amount and
// due date from the new plan and payment date.
func (s *paymentService) UpdatePayment(ctx context.Context, id, userID, paymentDate string, plan domain.Plan) (*domain.Payment, error) {
	if userID == "" || paymentDate == "" {
		return nil, ErrValidationFailed
	}
	amount, dueDate, err := derive(paymentDate, plan)
	if err != nil {
		return nil, err
	}

	patch := domain.PaymentPatch{
		UserID:      &userID,
		Amount:      &amount,
		PaymentDate: &paymentDate,
		Plan:        &plan,
		DueDate:     &dueDate,
	}
	p, err := s.paymentRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *paymentService) DeletePayment(ctx context.Context, id string) error {
	return s.paymentRepo.Delete(ctx, id)
}
