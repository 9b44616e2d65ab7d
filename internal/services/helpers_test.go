package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/StefanoAus/icoffee-backend/internal/models"
	"github.com/StefanoAus/icoffee-backend/internal/store"
)

// seeded builds an in-memory store preloaded with the given documents. Nil
// arguments leave the corresponding document absent, exercising the
// missing-document defaults.
type seeded struct {
	Users    []models.User
	Groups   []string
	Menu     *models.Menu
	Orders   models.Orders
	Payments models.Payments
}

func newSeededStore(t *testing.T, docs seeded) *store.MemStore {
	t.Helper()
	ctx := context.Background()
	st := store.NewMemStore()

	if docs.Users != nil {
		require.NoError(t, st.Save(ctx, store.KeyUsers, docs.Users))
	}
	if docs.Groups != nil {
		require.NoError(t, st.Save(ctx, store.KeyGroups, docs.Groups))
	}
	if docs.Menu != nil {
		require.NoError(t, st.Save(ctx, store.KeyMenu, docs.Menu))
	}
	if docs.Orders != nil {
		require.NoError(t, st.Save(ctx, store.KeyOrders, docs.Orders))
	}
	if docs.Payments != nil {
		require.NoError(t, st.Save(ctx, store.KeyPayments, docs.Payments))
	}
	return st
}
