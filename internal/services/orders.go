package services

import (
	"context"
	"sort"
	"strings"

	"github.com/StefanoAus/icoffee-backend/internal/apperrors"
	"github.com/StefanoAus/icoffee-backend/internal/models"
	"github.com/StefanoAus/icoffee-backend/internal/policy"
	"github.com/StefanoAus/icoffee-backend/internal/repository"
)

// OrderService is the per-date order ledger: at most one order per
// (date, username), upsert on resubmission, selections validated against the
// current menu catalog at write time.
type OrderService struct {
	orders *repository.OrderRepository
	menu   *MenuService
}

// NewOrderService creates an order ledger over the given repository and
// catalog.
func NewOrderService(orders *repository.OrderRepository, menu *MenuService) *OrderService {
	return &OrderService{orders: orders, menu: menu}
}

// SubmitOrder validates and upserts one user's order for the given date.
// Validation runs in a fixed sequence: required fields, then
// at-least-one-selection, then catalog existence per selected category.
// A selection counts only when both item and variant are non-empty after
// trimming. An existing entry for (date, username) is replaced in place,
// keeping its position; the group snapshot is refreshed on every submission.
func (s *OrderService) SubmitOrder(ctx context.Context, date, username, group string, order models.OrderPayload) error {
	username = strings.TrimSpace(username)
	group = strings.TrimSpace(group)
	if username == "" || group == "" {
		return apperrors.Validation("missing or invalid order data")
	}

	normalized := order.Normalize()
	if normalized.Drink == nil && normalized.Food == nil {
		return apperrors.Validation("select at least one drink or food")
	}

	if normalized.Drink != nil {
		ok, err := s.menu.ItemOptionExists(ctx, CategoryDrinks, normalized.Drink.Item, normalized.Drink.Variant)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.Validation("the selected item is no longer available")
		}
	}
	if normalized.Food != nil {
		ok, err := s.menu.ItemOptionExists(ctx, CategoryFoods, normalized.Food.Item, normalized.Food.Variant)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.Validation("the selected item is no longer available")
		}
	}

	// Only the validated selections are stored; legacy text never survives
	// a resubmission.
	stored := models.OrderPayload{Drink: normalized.Drink, Food: normalized.Food}

	orders, err := s.orders.All(ctx)
	if err != nil {
		return err
	}

	entries := orders[date]
	updated := false
	for i := range entries {
		if entries[i].Username == username {
			entries[i].Order = stored
			entries[i].Group = group
			updated = true
			break
		}
	}
	if !updated {
		entries = append(entries, models.OrderEntry{
			Username: username,
			Group:    group,
			Order:    stored,
		})
	}
	orders[date] = entries

	return s.orders.SaveAll(ctx, orders)
}

// ListOrders returns the orders for one date. Non-admin callers must supply
// a group filter; admins may omit it to see all groups. When a filter is
// present it applies for any role. Entries are sorted by (group, username)
// ascending and each order passes through the normalization view.
func (s *OrderService) ListOrders(ctx context.Context, date, group, role string) ([]models.OrderEntry, error) {
	group = strings.TrimSpace(group)
	if !policy.IsAdmin(role) && group == "" {
		return nil, apperrors.Validation("missing required group")
	}

	entries, err := s.orders.ForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	list := make([]models.OrderEntry, 0, len(entries))
	for _, entry := range entries {
		if group != "" && entry.Group != group {
			continue
		}
		entry.Order = entry.Order.Normalize()
		list = append(list, entry)
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].Group != list[j].Group {
			return list[i].Group < list[j].Group
		}
		return list[i].Username < list[j].Username
	})
	return list, nil
}
