package kv

import (
	"context"

	"gymadmin/gym-app/internal/domain"
	"gymadmin/gym-app/internal/repository"
	"gymadmin/gym-app/internal/storage"
)

type kvExerciseRepository struct {
	coll collection[domain.Exercise]
}

// NewExerciseRepository creates a new exercise repository backed by store.
func NewExerciseRepository(store storage.CollectionStore) repository.ExerciseRepository {
	return &kvExerciseRepository{
		coll: collection[domain.Exercise]{
			store: store,
			key:   storage.CollectionExercises,
			getID: func(e *domain.Exercise) string { return e.ID },
			setID: func(e *domain.Exercise, id string) { e.ID = id },
		},
	}
}

func (r *kvExerciseRepository) Create(ctx context.Context, e *domain.Exercise) (string, error) {
	return r.coll.insert(ctx, e)
}

func (r *kvExerciseRepository) GetByID(ctx context.Context, id string) (*domain.Exercise, error) {
	return r.coll.findByID(ctx, id)
}

func (r *kvExerciseRepository) List(ctx context.Context) ([]domain.Exercise, error) {
	return r.coll.records(ctx)
}

func (r *kvExerciseRepository) Update(ctx context.Context, id string, patch domain.ExercisePatch) (*domain.Exercise, error) {
	return r.coll.update(ctx, id, func(e *domain.Exercise) { patch.Apply(e) })
}

func (r *kvExerciseRepository) Delete(ctx context.Context, id string) error {
	return r.coll.delete(ctx, id)
}
