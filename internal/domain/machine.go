package domain

// MachineType is a category of gym machine (e.g. "Treadmill"), with an
// optional photo stored as a URI or media object key.
type MachineType struct {
	ID    string `json:"id"`
	Type  string `json:"type"` // Display label
	Photo string `json:"photo,omitempty"`
}

// MachineTypePatch describes a partial update to a MachineType.
type MachineTypePatch struct {
	Type  *string
	Photo *string
}

func (p MachineTypePatch) Apply(t *MachineType) {
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Photo != nil {
		t.Photo = *p.Photo
	}
}

// Machine is a physical machine on the gym floor.
//
// Type holds the id of a MachineType. The reference is not enforced: the
// type may have been deleted, and displays fall back to an "unknown" label.
type Machine struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	Type       string `json:"type"` // MachineType id
	RoomNumber string `json:"roomNumber"`

	// LastMaintenance is read by the activity summary but no mutation path
	// currently writes it; maintenance history lives in the "maintenances"
	// collection instead. Kept pending product clarification.
	LastMaintenance string `json:"lastMaintenance,omitempty"`
}

// MachinePatch describes a partial update to a Machine.
type MachinePatch struct {
	Code       *string
	Type       *string
	RoomNumber *string
}

func (p MachinePatch) Apply(m *Machine) {
	if p.Code != nil {
		m.Code = *p.Code
	}
	if p.Type != nil {
		m.Type = *p.Type
	}
	if p.RoomNumber != nil {
		m.RoomNumber = *p.RoomNumber
	}
}
