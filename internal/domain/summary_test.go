package domain

import (
	"testing"
	"time"
)

func TestSummarize(t *testing.T) {
	now := date("2024-06-01")

	users := []User{
		{ID: "1", Name: "Ana"},
		{ID: "2", Name: "Eva"},
	}
	payments := []Payment{
		{ID: "p1", DueDate: "2024-05-01"}, // overdue
		{ID: "p2", DueDate: "2024-07-01"}, // not due yet
		{ID: "p3", DueDate: "garbage"},    // unparseable, not counted
		{ID: "p4", DueDate: "2023-01-01"}, // long overdue
	}
	machines := []Machine{
		{ID: "m1", Code: "M1"},
		{ID: "m2", Code: "M2", LastMaintenance: "2024-01-01"},
	}

	got := Summarize(users, payments, machines, now)

	if got.NewUsers != 2 {
		t.Errorf("NewUsers = %d, want 2", got.NewUsers)
	}
	if got.PendingPayments != 2 {
		t.Errorf("PendingPayments = %d, want 2", got.PendingPayments)
	}
	if got.MaintenanceAlerts != 1 {
		t.Errorf("MaintenanceAlerts = %d, want 1", got.MaintenanceAlerts)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(nil, nil, nil, time.Now())
	if got != (Summary{}) {
		t.Errorf("Summarize(nil, nil, nil) = %+v, want zero counters", got)
	}
}

// A payment due exactly today is not pending yet; only past due dates count.
func TestSummarizeDueTodayNotPending(t *testing.T) {
	now := date("2024-06-01")
	payments := []Payment{{ID: "p1", DueDate: "2024-06-01"}}
	got := Summarize(nil, payments, nil, now)
	if got.PendingPayments != 0 {
		t.Errorf("PendingPayments = %d, want 0", got.PendingPayments)
	}
}
