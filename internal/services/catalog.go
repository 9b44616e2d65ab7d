package services

import (
	"context"
	"strings"

	"github.com/StefanoAus/icoffee-backend/internal/apperrors"
	"github.com/StefanoAus/icoffee-backend/internal/models"
	"github.com/StefanoAus/icoffee-backend/internal/policy"
	"github.com/StefanoAus/icoffee-backend/internal/repository"
)

// Menu categories after alias resolution.
const (
	CategoryDrinks = "drinks"
	CategoryFoods  = "foods"
)

// MenuService manages the purchasable item catalog. Reads re-normalize the
// stored document (malformed and empty entries are dropped, options are
// deduplicated) without persisting; mutations persist the normalized
// document, so the catalog self-heals on every write.
type MenuService struct {
	menu *repository.MenuRepository
}

// NewMenuService creates a catalog service over the menu repository.
func NewMenuService(menu *repository.MenuRepository) *MenuService {
	return &MenuService{menu: menu}
}

// MenuItemUpdates carries a partial menu item update. An absent Options
// field preserves the existing options; a present one fully replaces them
// and must resolve to at least one non-empty deduplicated value.
type MenuItemUpdates struct {
	NewName *string   `json:"newName"`
	Options *[]string `json:"options"`
}

// ResolveCategory maps case-insensitive singular/plural aliases onto the
// canonical category keys. Anything else is a validation error.
func ResolveCategory(category string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "drink", "drinks":
		return CategoryDrinks, nil
	case "food", "foods":
		return CategoryFoods, nil
	default:
		return "", apperrors.Validation("invalid category")
	}
}

// normalizeOptions trims, drops empties and deduplicates while preserving
// first-seen order.
func normalizeOptions(options []string) []string {
	unique := make([]string, 0, len(options))
	for _, option := range options {
		trimmed := strings.TrimSpace(option)
		if trimmed == "" || containsString(unique, trimmed) {
			continue
		}
		unique = append(unique, trimmed)
	}
	return unique
}

func containsString(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

// normalizeItems prunes items that normalize to an empty name or zero
// options.
func normalizeItems(items []models.MenuItem) []models.MenuItem {
	normalized := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		options := normalizeOptions(item.Options)
		if name == "" || len(options) == 0 {
			continue
		}
		normalized = append(normalized, models.MenuItem{Name: name, Options: options})
	}
	return normalized
}

// normalizeMenu returns the self-healed view of a stored menu document.
func normalizeMenu(menu models.Menu) models.Menu {
	return models.Menu{
		Drinks: normalizeItems(menu.Drinks),
		Foods:  normalizeItems(menu.Foods),
	}
}

// categoryItems returns the list for a canonical category key.
func categoryItems(menu models.Menu, category string) []models.MenuItem {
	if category == CategoryDrinks {
		return menu.Drinks
	}
	return menu.Foods
}

func setCategoryItems(menu *models.Menu, category string, items []models.MenuItem) {
	if category == CategoryDrinks {
		menu.Drinks = items
	} else {
		menu.Foods = items
	}
}

// itemIndex finds an item by exact name within a category list, -1 if
// absent.
func itemIndex(items []models.MenuItem, name string) int {
	for i := range items {
		if items[i].Name == name {
			return i
		}
	}
	return -1
}

// GetMenu returns the normalized catalog. Normalization is not persisted on
// plain reads.
func (s *MenuService) GetMenu(ctx context.Context) (models.Menu, error) {
	menu, err := s.menu.Get(ctx)
	if err != nil {
		return models.Menu{}, err
	}
	return normalizeMenu(menu), nil
}

// AddItem creates a new catalog entry in the given category.
func (s *MenuService) AddItem(ctx context.Context, actorRole, category, name string, options []string) error {
	if err := policy.RequireAdmin(actorRole); err != nil {
		return err
	}

	categoryKey, err := ResolveCategory(category)
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return apperrors.Validation("the item name is required")
	}
	normalized := normalizeOptions(options)
	if len(normalized) == 0 {
		return apperrors.Validation("specify at least one variant")
	}

	menu, err := s.menu.Get(ctx)
	if err != nil {
		return err
	}
	menu = normalizeMenu(menu)

	items := categoryItems(menu, categoryKey)
	if itemIndex(items, name) != -1 {
		return apperrors.Conflict("an item with this name already exists")
	}

	setCategoryItems(&menu, categoryKey, append(items, models.MenuItem{Name: name, Options: normalized}))
	return s.menu.Save(ctx, menu)
}

// UpdateItem renames an item and/or replaces its options.
func (s *MenuService) UpdateItem(ctx context.Context, actorRole, category, name string, updates MenuItemUpdates) error {
	if err := policy.RequireAdmin(actorRole); err != nil {
		return err
	}

	categoryKey, err := ResolveCategory(category)
	if err != nil {
		return apperrors.Validation("invalid data for the update")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return apperrors.Validation("invalid data for the update")
	}

	menu, err := s.menu.Get(ctx)
	if err != nil {
		return err
	}
	menu = normalizeMenu(menu)

	items := categoryItems(menu, categoryKey)
	index := itemIndex(items, name)
	if index == -1 {
		return apperrors.NotFound("item not found")
	}
	current := items[index]

	newName := current.Name
	if updates.NewName != nil {
		newName = strings.TrimSpace(*updates.NewName)
	}
	if newName == "" {
		return apperrors.Validation("the updated name cannot be empty")
	}
	if newName != current.Name && itemIndex(items, newName) != -1 {
		return apperrors.Conflict("an item with the new name already exists")
	}

	options := current.Options
	if updates.Options != nil {
		options = normalizeOptions(*updates.Options)
		if len(options) == 0 {
			return apperrors.Validation("enter at least one variant")
		}
	}

	items[index] = models.MenuItem{Name: newName, Options: options}
	setCategoryItems(&menu, categoryKey, items)
	return s.menu.Save(ctx, menu)
}

// RemoveItem deletes an item from its category.
func (s *MenuService) RemoveItem(ctx context.Context, actorRole, category, name string) error {
	if err := policy.RequireAdmin(actorRole); err != nil {
		return err
	}

	categoryKey, err := ResolveCategory(category)
	if err != nil {
		return apperrors.Validation("invalid data for the deletion")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return apperrors.Validation("invalid data for the deletion")
	}

	menu, err := s.menu.Get(ctx)
	if err != nil {
		return err
	}
	menu = normalizeMenu(menu)

	items := categoryItems(menu, categoryKey)
	index := itemIndex(items, name)
	if index == -1 {
		return apperrors.NotFound("item not found")
	}

	setCategoryItems(&menu, categoryKey, append(items[:index], items[index+1:]...))
	return s.menu.Save(ctx, menu)
}

// ItemOptionExists reports whether (itemName, variant) is a valid selection
// in the given category right now. The first item whose trimmed name matches
// decides; comparison is exact after trimming. Used by order validation.
func (s *MenuService) ItemOptionExists(ctx context.Context, category, itemName, variant string) (bool, error) {
	categoryKey, err := ResolveCategory(category)
	if err != nil {
		return false, err
	}

	menu, err := s.menu.Get(ctx)
	if err != nil {
		return false, err
	}

	for _, item := range categoryItems(menu, categoryKey) {
		if strings.TrimSpace(item.Name) != itemName {
			continue
		}
		for _, option := range item.Options {
			if strings.TrimSpace(option) == variant {
				return true, nil
			}
		}
		return false, nil
	}
	return false, nil
}
