package domain

import "time"

// Summary holds the activity counters shown on the overview screen.
type Summary struct {
	NewUsers          int `json:"newUsers"`
	PendingPayments   int `json:"pendingPayments"`
	MaintenanceAlerts int `json:"maintenanceAlerts"`
}

// Summarize computes the activity counters from already-loaded collections.
//
// NewUsers is the total member count, not a time-windowed figure. A payment
// is pending once its due date has passed; payments with an unparseable due
// date are not counted. MaintenanceAlerts counts machines with a
// LastMaintenance value, which no mutation path currently sets.
func Summarize(users []User, payments []Payment, machines []Machine, now time.Time) Summary {
	s := Summary{NewUsers: len(users)}

	for _, p := range payments {
		due, err := time.Parse(DateLayout, p.DueDate)
		if err != nil {
			continue
		}
		if due.Before(now) {
			s.PendingPayments++
		}
	}

	for _, m := range machines {
		if m.LastMaintenance != "" {
			s.MaintenanceAlerts++
		}
	}

	return s
}
