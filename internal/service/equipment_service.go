package service

import (
	"context"
	"errors"

	"gymadmin/gym-app/internal/domain"
	"gymadmin/gym-app/internal/repository"
)

var (
	ErrMachineTypeNotFound = errors.New("machine type not found")
	ErrMachineNotFound     = errors.New("machine not found")
	ErrMaintenanceNotFound = errors.New("maintenance record not found")
)

// Fallback labels rendered when a reference cannot be resolved. Deleting a
// machine or type never cascades, so lists must stay renderable with
// dangling references.
const (
	UnknownTypeLabel    = "Unknown type"
	UnknownMachineLabel = "Unknown machine"
)

// MachineWithType is a machine joined with its resolved type label.
type MachineWithType struct {
	domain.Machine
	TypeLabel string `json:"typeLabel"`
}

// MaintenanceDetail is a maintenance record joined with its machine.
type MaintenanceDetail struct {
	domain.Maintenance
	MachineCode string `json:"machineCode"`
	TypeLabel   string `json:"typeLabel"`
}

// EquipmentService manages machine categories, machines, and maintenance
// records.
type EquipmentService interface {
	CreateMachineType(ctx context.Context, label, photo string) (*domain.MachineType, error)
	GetMachineType(ctx context.Context, id string) (*domain.MachineType, error)
	ListMachineTypes(ctx context.Context) ([]domain.MachineType, error)
	UpdateMachineType(ctx context.Context, id string, patch domain.MachineTypePatch) (*domain.MachineType, error)
	DeleteMachineType(ctx context.Context, id string) error

	CreateMachine(ctx context.Context, code, typeID, roomNumber string) (*domain.Machine, error)
	GetMachine(ctx context.Context, id string) (*domain.Machine, error)
	ListMachines(ctx context.Context) ([]MachineWithType, error)
	UpdateMachine(ctx context.Context, id string, patch domain.MachinePatch) (*domain.Machine, error)
	DeleteMachine(ctx context.Context, id string) error

	CreateMaintenance(ctx context.Context, machineID, date, description string) (*domain.Maintenance, error)
	GetMaintenance(ctx context.Context, id string) (*domain.Maintenance, error)
	ListMaintenances(ctx context.Context) ([]MaintenanceDetail, error)
	UpdateMaintenance(ctx context.Context, id string, patch domain.MaintenancePatch) (*domain.Maintenance, error)
	DeleteMaintenance(ctx context.Context, id string) error
}

type equipmentService struct {
	typeRepo        repository.MachineTypeRepository
	machineRepo     repository.MachineRepository
	maintenanceRepo repository.MaintenanceRepository
}

// NewEquipmentService creates a new instance of equipmentService.
func NewEquipmentService(
	typeRepo repository.MachineTypeRepository,
	machineRepo repository.MachineRepository,
	maintenanceRepo repository.MaintenanceRepository,
) EquipmentService {
	return &equipmentService{
		typeRepo:        typeRepo,
		machineRepo:     machineRepo,
		maintenanceRepo: maintenanceRepo,
	}
}

// --- Machine types ---

func (s *equipmentService) CreateMachineType(ctx context.Context, label, photo string) (*domain.MachineType, error) {
	if label == "" {
		return nil, ErrValidationFailed
	}

	t := &domain.MachineType{Type: label, Photo: photo}
	id, err := s.typeRepo.Create(ctx, t)
	if err != nil {
		return nil, err
	}
	t.ID = id
	return t, nil
}

func (s *equipmentService) GetMachineType(ctx context.Context, id string) (*domain.MachineType, error) {
	t, err := s.typeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMachineTypeNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *equipmentService) ListMachineTypes(ctx context.Context) ([]domain.MachineType, error) {
	return s.typeRepo.List(ctx)
}

func (s *equipmentService) UpdateMachineType(ctx context.Context, id string, patch domain.MachineTypePatch) (*domain.MachineType, error) {
	if patch.Type != nil && *patch.Type == "" {
		return nil, ErrValidationFailed
	}
	t, err := s.typeRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMachineTypeNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *equipmentService) DeleteMachineType(ctx context.Context, id string) error {
	return s.typeRepo.Delete(ctx, id)
}

// --- Machines ---

// CreateMachine registers a machine. Code, type, and room number are all
// required by the form.
func (s *equipmentService) CreateMachine(ctx context.Context, code, typeID, roomNumber string) (*domain.Machine, error) {
	if code == "" || typeID == "" || roomNumber == "" {
		return nil, ErrValidationFailed
	}

	m := &domain.Machine{Code: code, Type: typeID, RoomNumber: roomNumber}
	id, err := s.machineRepo.Create(ctx, m)
	if err != nil {
		return nil, err
	}
	m.ID = id
	return m, nil
}

func (s *equipmentService) GetMachine(ctx context.Context, id string) (*domain.Machine, error) {
	m, err := s.machineRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMachineNotFound
		}
		return nil, err
	}
	return m, nil
}

// ListMachines returns every machine with its type label resolved. A machine
// whose type has been deleted renders with the unknown-type fallback.
func (s *equipmentService) ListMachines(ctx context.Context) ([]MachineWithType, error) {
	machines, err := s.machineRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	types, err := s.typeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	labels := make(map[string]string, len(types))
	for _, t := range types {
		labels[t.ID] = t.Type
	}

	result := make([]MachineWithType, len(machines))
	for i, m := range machines {
		label, ok := labels[m.Type]
		if !ok {
			label = UnknownTypeLabel
		}
		result[i] = MachineWithType{Machine: m, TypeLabel: label}
	}
	return result, nil
}

func (s *equipmentService) UpdateMachine(ctx context.Context, id string, patch domain.MachinePatch) (*domain.Machine, error) {
	for _, f := range []*string{patch.Code, patch.Type, patch.RoomNumber} {
		if f != nil && *f == "" {
			return nil, ErrValidationFailed
		}
	}
	m, err := s.machineRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMachineNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *equipmentService) DeleteMachine(ctx context.Context, id string) error {
	return s.machineRepo.Delete(ctx, id)
}

// --- Maintenance records ---

func (s *equipmentService) CreateMaintenance(ctx context.Context, machineID, date, description string) (*domain.Maintenance, error) {
	if machineID == "" || date == "" || description == "" {
		return nil, ErrValidationFailed
	}

	m := &domain.Maintenance{MachineID: machineID, Date: date, Description: description}
	id, err := s.maintenanceRepo.Create(ctx, m)
	if err != nil {
		return nil, err
	}
	m.ID = id
	return m, nil
}

func (s *equipmentService) GetMaintenance(ctx context.Context, id string) (*domain.Maintenance, error) {
	m, err := s.maintenanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMaintenanceNotFound
		}
		return nil, err
	}
	return m, nil
}

// ListMaintenances returns every maintenance record joined with its machine
// code and type label, each link tolerating a deleted target.
func (s *equipmentService) ListMaintenances(ctx context.Context) ([]MaintenanceDetail, error) {
	records, err := s.maintenanceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	machines, err := s.machineRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	types, err := s.typeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	machineByID := make(map[string]domain.Machine, len(machines))
	for _, m := range machines {
		machineByID[m.ID] = m
	}
	labels := make(map[string]string, len(types))
	for _, t := range types {
		labels[t.ID] = t.Type
	}

	result := make([]MaintenanceDetail, len(records))
	for i, rec := range records {
		detail := MaintenanceDetail{
			Maintenance: rec,
			MachineCode: UnknownMachineLabel,
			TypeLabel:   UnknownTypeLabel,
		}
		if m, ok := machineByID[rec.MachineID]; ok {
			detail.MachineCode = m.Code
			if label, ok := labels[m.Type]; ok {
				detail.TypeLabel = label
			}
		}
		result[i] = detail
	}
	return result, nil
}

func (s *equipmentService) UpdateMaintenance(ctx context.Context, id string, patch domain.MaintenancePatch) (*domain.Maintenance, error) {
	m, err := s.maintenanceRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMaintenanceNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *equipmentService) DeleteMaintenance(ctx context.Context, id string) error {
	return s.maintenanceRepo.Delete(ctx, id)
}
