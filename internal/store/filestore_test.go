package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StefanoAus/icoffee-backend/internal/store"
)

func TestFileStore_MissingDocument(t *testing.T) {
	fs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)

	var out []string
	found, err := fs.Load(context.Background(), store.KeyGroups, &out)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, out)
}

func TestFileStore_RoundTrip(t *testing.T) {
	fs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	groups := []string{"Alpha", "Beta"}
	require.NoError(t, fs.Save(ctx, store.KeyGroups, groups))

	var out []string
	found, err := fs.Load(ctx, store.KeyGroups, &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, groups, out)
}

func TestFileStore_SaveReplacesWholeDocument(t *testing.T) {
	fs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, fs.Save(ctx, store.KeyGroups, []string{"Alpha", "Beta"}))
	require.NoError(t, fs.Save(ctx, store.KeyGroups, []string{"Gamma"}))

	var out []string
	_, err = fs.Load(ctx, store.KeyGroups, &out)
	require.NoError(t, err)
	assert.Equal(t, []string{"Gamma"}, out)
}

func TestMemStore_RoundTrip(t *testing.T) {
	ms := store.NewMemStore()
	ctx := context.Background()

	var out map[string]string
	found, err := ms.Load(ctx, store.KeyPayments, &out)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, ms.Save(ctx, store.KeyPayments, map[string]string{"Alpha": "anna"}))
	found, err = ms.Load(ctx, store.KeyPayments, &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, map[string]string{"Alpha": "anna"}, out)
}
