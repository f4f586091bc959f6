package domain

import "time"

// Plan is a membership payment frequency.
type Plan string

const (
	PlanMonthly Plan = "monthly"
	PlanAnnual  Plan = "annual"
)

// IsValid reports whether the plan is one of the supported frequencies.
func (p Plan) IsValid() bool {
	return p == PlanMonthly || p == PlanAnnual
}

// Fixed plan prices. No proration or partial-period logic.
const (
	AmountMonthly = 1200
	AmountAnnual  = 12000
)

// PlanAmount returns the price of a plan. Unknown plans price at zero;
// callers are expected to validate the plan first.
func PlanAmount(p Plan) int {
	switch p {
	case PlanMonthly:
		return AmountMonthly
	case PlanAnnual:
		return AmountAnnual
	default:
		return 0
	}
}

// ComputeDueDate returns the date the next payment falls due: one calendar
// month after paymentDate for a monthly plan, twelve for an annual one.
// Month-end overflow follows time.AddDate normalization.
func ComputeDueDate(paymentDate time.Time, plan Plan) time.Time {
	if plan == PlanAnnual {
		return paymentDate.AddDate(1, 0, 0)
	}
	return paymentDate.AddDate(0, 1, 0)
}

// DateLayout is the wire format for all persisted dates.
const DateLayout = "2006-01-02"

// Payment records a membership payment by a user.
type Payment struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"` // User id
	Amount      string `json:"amount"`
	PaymentDate string `json:"paymentDate"` // YYYY-MM-DD
	Plan        Plan   `json:"plan"`
	DueDate     string `json:"dueDate"` // YYYY-MM-DD, derived from PaymentDate and Plan
}

// PaymentPatch describes a partial update to a Payment. Amount and DueDate
// are derived fields; the payment service recomputes them whenever the plan
// or payment date changes.
type PaymentPatch struct {
	UserID      *string
	Amount      *string
	PaymentDate *string
	Plan        *Plan
	DueDate     *string
}

func (p PaymentPatch) Apply(pay *Payment) {
	if p.UserID != nil {
		pay.UserID = *p.UserID
	}
	if p.Amount != nil {
		pay.Amount = *p.Amount
	}
	if p.PaymentDate != nil {
		pay.PaymentDate = *p.PaymentDate
	}
	if p.Plan != nil {
		pay.Plan = *p.Plan
	}
	if p.DueDate != nil {
		pay.DueDate = *p.DueDate
	}
}
