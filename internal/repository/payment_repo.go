package repository

import (
	"context"

	"github.com/StefanoAus/icoffee-backend/internal/apperrors"
	"github.com/StefanoAus/icoffee-backend/internal/models"
	"github.com/StefanoAus/icoffee-backend/internal/store"
)

// PaymentRepository handles the payments document: date -> group -> payer.
type PaymentRepository struct {
	store store.DocumentStore
}

// NewPaymentRepository creates a repository over the given store.
func NewPaymentRepository(st store.DocumentStore) *PaymentRepository {
	return &PaymentRepository{store: st}
}

// All returns the full payments document. A missing document is an empty map.
func (r *PaymentRepository) All(ctx context.Context) (models.Payments, error) {
	payments := models.Payments{}
	if _, err := r.store.Load(ctx, store.KeyPayments, &payments); err != nil {
		return nil, apperrors.Persistence("unable to read payments", err)
	}
	return payments, nil
}

// SaveAll replaces the whole payments document.
func (r *PaymentRepository) SaveAll(ctx context.Context, payments models.Payments) error {
	if err := r.store.Save(ctx, store.KeyPayments, payments); err != nil {
		return apperrors.Persistence("unable to save payment", err)
	}
	return nil
}
