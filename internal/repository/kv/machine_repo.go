package kv

import (
	"context"

	"gymadmin/gym-app/internal/domain"
	"gymadmin/gym-app/internal/repository"
	"gymadmin/gym-app/internal/storage"
)

type kvMachineRepository struct {
	coll collection[domain.Machine]
}

// NewMachineRepository creates a new machine repository backed by store.
func NewMachineRepository(store storage.CollectionStore) repository.MachineRepository {
	return &kvMachineRepository{
		coll: collection[domain.Machine]{
			store: store,
			key:   storage.CollectionMachines,
			getID: func(m *domain.Machine) string { return m.ID },
			setID: func(m *domain.Machine, id string) { m.ID = id },
		},
	}
}

func (r *kvMachineRepository) Create(ctx context.Context, m *domain.Machine) (string, error) {
	return r.coll.insert(ctx, m)
}

func (r *kvMachineRepository) GetByID(ctx context.Context, id string) (*domain.Machine, error) {
	return r.coll.findByID(ctx, id)
}

func (r *kvMachineRepository) List(ctx context.Context) ([]domain.Machine, error) {
	return r.coll.records(ctx)
}

func (r *kvMachineRepository) Update(ctx context.Context, id string, patch domain.MachinePatch) (*domain.Machine, error) {
	return r.coll.update(ctx, id, func(m *domain.Machine) { patch.Apply(m) })
}

// Delete removes the machine. Exercises and maintenance records referencing
// it are not cascaded; their lookups degrade to fallbacks.
func (r *kvMachineRepository) Delete(ctx context.Context, id string) error {
	return r.coll.delete(ctx, id)
}
