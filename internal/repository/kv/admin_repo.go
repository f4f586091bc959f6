package kv

import (
	"context"
	"errors"

	"gymadmin/gym-app/internal/domain"
	"gymadmin/gym-app/internal/repository"
	"gymadmin/gym-app/internal/storage"
)

// kvAdminRepository implements repository.AdminRepository over the
// collection store.
type kvAdminRepository struct {
	coll collection[domain.Admin]
}

// NewAdminRepository creates a new admin repository backed by store.
func NewAdminRepository(store storage.CollectionStore) repository.AdminRepository {
	return &kvAdminRepository{
		coll: collection[domain.Admin]{
			store: store,
			key:   storage.CollectionAdmins,
			getID: func(a *domain.Admin) string { return a.ID },
			setID: func(a *domain.Admin, id string) { a.ID = id },
		},
	}
}

// Create appends a new admin account.
func (r *kvAdminRepository) Create(ctx context.Context, admin *domain.Admin) (string, error) {
	if admin.Email == "" || admin.PasswordHash == "" {
		return "", errors.New("admin email and password hash are required")
	}
	return r.coll.insert(ctx, admin)
}

func (r *kvAdminRepository) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	return r.coll.findByID(ctx, id)
}

// GetByEmail retrieves an admin by email address.
func (r *kvAdminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	admins, err := r.coll.records(ctx)
	if err != nil {
		return nil, err
	}
	for i := range admins {
		if admins[i].Email == email {
			return &admins[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *kvAdminRepository) List(ctx context.Context) ([]domain.Admin, error) {
	return r.coll.records(ctx)
}
