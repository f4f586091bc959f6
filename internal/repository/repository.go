package repository

import (
	"context"

	"gymadmin/gym-app/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicateKey = RepositoryError("duplicate key")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// AdminRepository defines the interface for interacting with admin accounts.
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Admin, error)
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
	List(ctx context.Context) ([]domain.Admin, error)
}

// UserRepository defines the interface for interacting with gym members.
//
// Create rejects a duplicate IDNumber with ErrDuplicateKey and performs no
// write. Update performs no such check (uniqueness is enforced at create
// time only).
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (string, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByIDNumber(ctx context.Context, idNumber string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// MachineTypeRepository defines the interface for machine categories.
type MachineTypeRepository interface {
	Create(ctx context.Context, t *domain.MachineType) (string, error)
	GetByID(ctx context.Context, id string) (*domain.MachineType, error)
	List(ctx context.Context) ([]domain.MachineType, error)
	Update(ctx context.Context, id string, patch domain.MachineTypePatch) (*domain.MachineType, error)
	Delete(ctx context.Context, id string) error
}

// MachineRepository defines the interface for gym machines.
type MachineRepository interface {
	Create(ctx context.Context, m *domain.Machine) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Machine, error)
	List(ctx context.Context) ([]domain.Machine, error)
	Update(ctx context.Context, id string, patch domain.MachinePatch) (*domain.Machine, error)
	Delete(ctx context.Context, id string) error
}

// ExerciseRepository defines the interface for exercises.
type ExerciseRepository interface {
	Create(ctx context.Context, e *domain.Exercise) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Exercise, error)
	List(ctx context.Context) ([]domain.Exercise, error)
	Update(ctx context.Context, id string, patch domain.ExercisePatch) (*domain.Exercise, error)
	Delete(ctx context.Context, id string) error
}

// RoutineRepository defines the interface for member routines.
type RoutineRepository interface {
	Create(ctx context.Context, r *domain.Routine) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Routine, error)
	List(ctx context.Context) ([]domain.Routine, error)
	Update(ctx context.Context, id string, patch domain.RoutinePatch) (*domain.Routine, error)
	Delete(ctx context.Context, id string) error
}

// MaintenanceRepository defines the interface for machine service records.
type MaintenanceRepository interface {
	Create(ctx context.Context, m *domain.Maintenance) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Maintenance, error)
	List(ctx context.Context) ([]domain.Maintenance, error)
	Update(ctx context.Context, id string, patch domain.MaintenancePatch) (*domain.Maintenance, error)
	Delete(ctx context.Context, id string) error
}

// PaymentRepository defines the interface for membership payments.
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	List(ctx context.Context) ([]domain.Payment, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Payment, error)
	Update(ctx context.Context, id string, patch domain.PaymentPatch) (*domain.Payment, error)
	Delete(ctx context.Context, id string) error
}
