package domain

// Maintenance is a service record for a machine.
type Maintenance struct {
	ID          string `json:"id"`
	MachineID   string `json:"machineId"` // Machine id
	Date        string `json:"date"`      // YYYY-MM-DD
	Description string `json:"description"`
}

// MaintenancePatch describes a partial update to a Maintenance record.
type MaintenancePatch struct {
	MachineID   *string
	Date        *string
	Description *string
}

func (p MaintenancePatch) Apply(m *Maintenance) {
	if p.MachineID != nil {
		m.MachineID = *p.MachineID
	}
	if p.Date != nil {
		m.Date = *p.Date
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
}
