package domain

// Routine assigns an exercise to a member on a given day.
type Routine struct {
	ID       string `json:"id"`
	Day      string `json:"day"`
	User     string `json:"user"`     // User id
	Exercise string `json:"exercise"` // Exercise id
	Time     string `json:"time"`     // Duration in minutes
	Quantity string `json:"quantity"` // Repetitions
}

// RoutinePatch describes a partial update to a Routine.
type RoutinePatch struct {
	Day      *string
	User     *string
	Exercise *string
	Time     *string
	Quantity *string
}

func (p RoutinePatch) Apply(r *Routine) {
	if p.Day != nil {
		r.Day = *p.Day
	}
	if p.User != nil {
		r.User = *p.User
	}
	if p.Exercise != nil {
		r.Exercise = *p.Exercise
	}
	if p.Time != nil {
		r.Time = *p.Time
	}
	if p.Quantity != nil {
		r.Quantity = *p.Quantity
	}
}
