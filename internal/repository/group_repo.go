package repository

import (
	"context"
	"strings"

	"github.com/StefanoAus/icoffee-backend/internal/apperrors"
	"github.com/StefanoAus/icoffee-backend/internal/store"
)

// GroupRepository handles the groups document: an ordered list of distinct
// group names.
type GroupRepository struct {
	store store.DocumentStore
}

// NewGroupRepository creates a repository over the given store.
func NewGroupRepository(st store.DocumentStore) *GroupRepository {
	return &GroupRepository{store: st}
}

// List returns all group names in stored order.
func (r *GroupRepository) List(ctx context.Context) ([]string, error) {
	var groups []string
	if _, err := r.store.Load(ctx, store.KeyGroups, &groups); err != nil {
		return nil, apperrors.Persistence("unable to read groups", err)
	}
	return groups, nil
}

// SaveAll replaces the whole groups document.
func (r *GroupRepository) SaveAll(ctx context.Context, groups []string) error {
	if err := r.store.Save(ctx, store.KeyGroups, groups); err != nil {
		return apperrors.Persistence("unable to save groups", err)
	}
	return nil
}

// Contains reports whether name is present in groups (exact match).
func Contains(groups []string, name string) bool {
	for _, g := range groups {
		if g == name {
			return true
		}
	}
	return false
}

// NormalizeGroups trims entries, drops empties and deduplicates while
// preserving first-seen order.
func NormalizeGroups(groups []string) []string {
	normalized := make([]string, 0, len(groups))
	for _, g := range groups {
		trimmed := strings.TrimSpace(g)
		if trimmed == "" || Contains(normalized, trimmed) {
			continue
		}
		normalized = append(normalized, trimmed)
	}
	return normalized
}
