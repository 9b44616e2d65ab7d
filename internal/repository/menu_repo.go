package repository

import (
	"context"

	"github.com/StefanoAus/icoffee-backend/internal/apperrors"
	"github.com/StefanoAus/icoffee-backend/internal/models"
	"github.com/StefanoAus/icoffee-backend/internal/store"
)

// MenuRepository handles the menu document holding both category lists.
type MenuRepository struct {
	store store.DocumentStore
}

// NewMenuRepository creates a repository over the given store.
func NewMenuRepository(st store.DocumentStore) *MenuRepository {
	return &MenuRepository{store: st}
}

// Get returns the stored menu. A missing document is an empty menu.
// The raw document may contain malformed entries; normalization is the
// catalog service's responsibility.
func (r *MenuRepository) Get(ctx context.Context) (models.Menu, error) {
	var menu models.Menu
	if _, err := r.store.Load(ctx, store.KeyMenu, &menu); err != nil {
		return models.Menu{}, apperrors.Persistence("unable to read menu", err)
	}
	return menu, nil
}

// Save replaces the whole menu document.
func (r *MenuRepository) Save(ctx context.Context, menu models.Menu) error {
	if err := r.store.Save(ctx, store.KeyMenu, menu); err != nil {
		return apperrors.Persistence("unable to save menu", err)
	}
	return nil
}
