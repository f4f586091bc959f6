package kv

import (
	"context"
	"errors"

	"gymadmin/gym-app/internal/domain"
	"gymadmin/gym-app/internal/repository"
	"gymadmin/gym-app/internal/storage"
)

// kvUserRepository implements repository.UserRepository over the collection
// store.
type kvUserRepository struct {
	coll collection[domain.User]
}

// NewUserRepository creates a new member repository backed by store.
func NewUserRepository(store storage.CollectionStore) repository.UserRepository {
	return &kvUserRepository{
		coll: collection[domain.User]{
			store: store,
			key:   storage.CollectionUsers,
			getID: func(u *domain.User) string { return u.ID },
			setID: func(u *domain.User, id string) { u.ID = id },
		},
	}
}

// Create appends a new member after checking the IDNumber is not already
// registered. On a duplicate, nothing is written.
func (r *kvUserRepository) Create(ctx context.Context, user *domain.User) (string, error) {
	if user.IDNumber == "" {
		return "", errors.New("user idNumber is required")
	}

	users, err := r.coll.records(ctx)
	if err != nil {
		return "", err
	}
	for i := range users {
		if users[i].IDNumber == user.IDNumber {
			return "", repository.ErrDuplicateKey
		}
	}

	id := nextID()
	user.ID = id
	users = append(users, *user)

	if err := r.coll.save(ctx, users); err != nil {
		return "", err
	}
	return id, nil
}

func (r *kvUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.coll.findByID(ctx, id)
}

// GetByIDNumber retrieves a member by national ID number.
func (r *kvUserRepository) GetByIDNumber(ctx context.Context, idNumber string) (*domain.User, error) {
	users, err := r.coll.records(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].IDNumber == idNumber {
			return &users[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *kvUserRepository) List(ctx context.Context) ([]domain.User, error) {
	return r.coll.records(ctx)
}

// Update shallow-merges patch into the matching member. IDNumber uniqueness
// is deliberately not re-checked here; it is enforced at create time only.
func (r *kvUserRepository) Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	return r.coll.update(ctx, id, func(u *domain.User) { patch.Apply(u) })
}

func (r *kvUserRepository) Delete(ctx context.Context, id string) error {
	return r.coll.delete(ctx, id)
}
