package kv

import (
	"context"

	"gymadmin/gym-app/internal/domain"
	"gymadmin/gym-app/internal/repository"
	"gymadmin/gym-app/internal/storage"
)

type kvRoutineRepository struct {
	coll collection[domain.Routine]
}

// NewRoutineRepository creates a new routine repository backed by store.
func NewRoutineRepository(store storage.CollectionStore) repository.RoutineRepository {
	return &kvRoutineRepository{
		coll: collection[domain.Routine]{
			store: store,
			key:   storage.CollectionRoutines,
			getID: func(rt *domain.Routine) string { return rt.ID },
			setID: func(rt *domain.Routine, id string) { rt.ID = id },
		},
	}
}

func (r *kvRoutineRepository) Create(ctx context.Context, rt *domain.Routine) (string, error) {
	return r.coll.insert(ctx, rt)
}

func (r *kvRoutineRepository) GetByID(ctx context.Context, id string) (*domain.Routine, error) {
	return r.coll.findByID(ctx, id)
}

func (r *kvRoutineRepository) List(ctx context.Context) ([]domain.Routine, error) {
	return r.coll.records(ctx)
}

func (r *kvRoutineRepository) Update(ctx context.Context, id string, patch domain.RoutinePatch) (*domain.Routine, error) {
	return r.coll.update(ctx, id, func(rt *domain.Routine) { patch.Apply(rt) })
}

func (r *kvRoutineRepository) Delete(ctx context.Context, id string) error {
	return r.coll.delete(ctx, id)
}
