package kv

import (
	"context"

	"gymadmin/gym-app/internal/domain"
	"gymadmin/gym-app/internal/repository"
	"gymadmin/gym-app/internal/storage"
)

type kvPaymentRepository struct {
	coll collection[domain.Payment]
}

// NewPaymentRepository creates a new payment repository backed by store.
func NewPaymentRepository(store storage.CollectionStore) repository.PaymentRepository {
	return &kvPaymentRepository{
		coll: collection[domain.Payment]{
			store: store,
			key:   storage.CollectionPayments,
			getID: func(p *domain.Payment) string { return p.ID },
			setID: func(p *domain.Payment, id string) { p.ID = id },
		},
	}
}

func (r *kvPaymentRepository) Create(ctx context.Context, p *domain.Payment) (string, error) {
	return r.coll.insert(ctx, p)
}

func (r *kvPaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	return r.coll.findByID(ctx, id)
}

func (r *kvPaymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	return r.coll.records(ctx)
}

// ListByUser returns the payments recorded for one member, in stored order.
func (r *kvPaymentRepository) ListByUser(ctx context.Context, userID string) ([]domain.Payment, error) {
	payments, err := r.coll.records(ctx)
	if err != nil {
		return nil, err
	}
	matched := []domain.Payment{}
	for _, p := range payments {
		if p.UserID == userID {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (r *kvPaymentRepository) Update(ctx context.Context, id string, patch domain.PaymentPatch) (*domain.Payment, error) {
	return r.coll.update(ctx, id, func(p *domain.Payment) { patch.Apply(p) })
}

func (r *kvPaymentRepository) Delete(ctx context.Context, id string) error {
	return r.coll.delete(ctx, id)
}
