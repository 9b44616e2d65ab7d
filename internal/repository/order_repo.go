package repository

import (
	"context"

	"github.com/StefanoAus/icoffee-backend/internal/apperrors"
	"github.com/StefanoAus/icoffee-backend/internal/models"
	"github.com/StefanoAus/icoffee-backend/internal/store"
)

// OrderRepository handles the orders document keyed by date.
type OrderRepository struct {
	store store.DocumentStore
}

// NewOrderRepository creates a repository over the given store.
func NewOrderRepository(st store.DocumentStore) *OrderRepository {
	return &OrderRepository{store: st}
}

// All returns the full orders document. A missing document is an empty map.
func (r *OrderRepository) All(ctx context.Context) (models.Orders, error) {
	orders := models.Orders{}
	if _, err := r.store.Load(ctx, store.KeyOrders, &orders); err != nil {
		return nil, apperrors.Persistence("unable to read orders", err)
	}
	return orders, nil
}

// ForDate returns the entries recorded for one date, in stored order.
func (r *OrderRepository) ForDate(ctx context.Context, date string) ([]models.OrderEntry, error) {
	orders, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	return orders[date], nil
}

// SaveAll replaces the whole orders document.
func (r *OrderRepository) SaveAll(ctx context.Context, orders models.Orders) error {
	if err := r.store.Save(ctx, store.KeyOrders, orders); err != nil {
		return apperrors.Persistence("unable to save orders", err)
	}
	return nil
}
