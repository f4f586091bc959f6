package kv

import (
	"context"

	"gymadmin/gym-app/internal/domain"
	"gymadmin/gym-app/internal/repository"
	"gymadmin/gym-app/internal/storage"
)

type kvMachineTypeRepository struct {
	coll collection[domain.MachineType]
}

// NewMachineTypeRepository creates a new machine category repository backed
// by store.
func NewMachineTypeRepository(store storage.CollectionStore) repository.MachineTypeRepository {
	return &kvMachineTypeRepository{
		coll: collection[domain.MachineType]{
			store: store,
			key:   storage.CollectionMachineTypes,
			getID: func(t *domain.MachineType) string { return t.ID },
			setID: func(t *domain.MachineType, id string) { t.ID = id },
		},
	}
}

func (r *kvMachineTypeRepository) Create(ctx context.Context, t *domain.MachineType) (string, error) {
	return r.coll.insert(ctx, t)
}

func (r *kvMachineTypeRepository) GetByID(ctx context.Context, id string) (*domain.MachineType, error) {
	return r.coll.findByID(ctx, id)
}

func (r *kvMachineTypeRepository) List(ctx context.Context) ([]domain.MachineType, error) {
	return r.coll.records(ctx)
}

func (r *kvMachineTypeRepository) Update(ctx context.Context, id string, patch domain.MachineTypePatch) (*domain.MachineType, error) {
	return r.coll.update(ctx, id, func(t *domain.MachineType) { patch.Apply(t) })
}

// Delete removes the category. Machines referencing it are left alone; their
// type lookups degrade to the unknown-type fallback.
func (r *kvMachineTypeRepository) Delete(ctx context.Context, id string) error {
	return r.coll.delete(ctx, id)
}
