package kv

import (
	"context"

	"gymadmin/gym-app/internal/domain"
	"gymadmin/gym-app/internal/repository"
	"gymadmin/gym-app/internal/storage"
)

type kvMaintenanceRepository struct {
	coll collection[domain.Maintenance]
}

// NewMaintenanceRepository creates a new maintenance record repository
// backed by store.
func NewMaintenanceRepository(store storage.CollectionStore) repository.MaintenanceRepository {
	return &kvMaintenanceRepository{
		coll: collection[domain.Maintenance]{
			store: store,
			key:   storage.CollectionMaintenances,
			getID: func(m *domain.Maintenance) string { return m.ID },
			setID: func(m *domain.Maintenance, id string) { m.ID = id },
		},
	}
}

func (r *kvMaintenanceRepository) Create(ctx context.Context, m *domain.Maintenance) (string, error) {
	return r.coll.insert(ctx, m)
}

func (r *kvMaintenanceRepository) GetByID(ctx context.Context, id string) (*domain.Maintenance, error) {
	return r.coll.findByID(ctx, id)
}

func (r *kvMaintenanceRepository) List(ctx context.Context) ([]domain.Maintenance, error) {
	return r.coll.records(ctx)
}

func (r *kvMaintenanceRepository) Update(ctx context.Context, id string, patch domain.MaintenancePatch) (*domain.Maintenance, error) {
	return r.coll.update(ctx, id, func(m *domain.Maintenance) { patch.Apply(m) })
}

func (r *kvMaintenanceRepository) Delete(ctx context.Context, id string) error {
	return r.coll.delete(ctx, id)
}
