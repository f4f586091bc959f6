package service

import (
	"context"
	"testing"
	"time"

	"gymadmin/gym-app/internal/domain"
	"gymadmin/gym-app/internal/repository/kv"
)

func TestGetSummary(t *testing.T) {
	store := newTestStore(t)
	userRepo := kv.NewUserRepository(store)
	paymentRepo := kv.NewPaymentRepository(store)
	machineRepo := kv.NewMachineRepository(store)
	ctx := context.Background()

	user := newTestMember(t, ctx, userRepo)

	paymentSvc := NewPaymentService(paymentRepo, userRepo)
	// Due 2024-02-15, overdue relative to the fixed clock below.
	if _, err := paymentSvc.RecordPayment(ctx, user.ID, "2024-01-15", domain.PlanMonthly); err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	// Due 2025-06-01, not yet.
	if _, err := paymentSvc.RecordPayment(ctx, user.ID, "2024-06-01", domain.PlanAnnual); err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}

	if _, err := machineRepo.Create(ctx, &domain.Machine{Code: "M1", Type: "t1", RoomNumber: "3"}); err != nil {
		t.Fatalf("Create machine: %v", err)
	}

	fixed, err := time.Parse(domain.DateLayout, "2024-06-15")
	if err != nil {
		t.Fatalf("parse clock: %v", err)
	}
	svc := &summaryService{
		userRepo:    userRepo,
		paymentRepo: paymentRepo,
		machineRepo: machineRepo,
		now:         func() time.Time { return fixed },
	}

	summary, err := svc.GetSummary(ctx)
	if err != nil {
		t.Fatalf("GetSummary: %v", err)
	}
	if summary.NewUsers != 1 {
		t.Errorf("NewUsers = %d, want 1", summary.NewUsers)
	}
	if summary.PendingPayments != 1 {
		t.Errorf("PendingPayments = %d, want 1", summary.PendingPayments)
	}
	// No mutation path writes LastMaintenance, so alerts stay at zero.
	if summary.MaintenanceAlerts != 0 {
		t.Errorf("MaintenanceAlerts = %d, want 0", summary.MaintenanceAlerts)
	}
}

func TestGetSummaryEmptyStore(t *testing.T) {
	store := newTestStore(t)
	svc := NewSummaryService(
		kv.NewUserRepository(store),
		kv.NewPaymentRepository(store),
		kv.NewMachineRepository(store),
	)

	summary, err := svc.GetSummary(context.Background())
	if err != nil {
		t.Fatalf("GetSummary on empty store: %v", err)
	}
	if *summary != (domain.Summary{}) {
		t.Errorf("GetSummary on empty store = %+v, want zero counters", *summary)
	}
}
