// Package store provides whole-document persistence for the ordering
// backend. Each entity type (users, groups, menu, orders, payments) lives in
// one JSON document addressed by a well-known key. Writes replace the whole
// document; there is no partial-document locking and no cross-document
// transaction, so a group rename touching both the users and groups
// documents is two independent writes.
//
// Three implementations exist: FileStore (JSON files on disk, the default),
// PostgresStore (a key->jsonb table, selected when DATABASE_URL is set), and
// MemStore (in-memory, for tests).
package store

import "context"

// Well-known document keys. One JSON document per entity type.
const (
	KeyUsers    = "users"
	KeyGroups   = "groups"
	KeyMenu     = "menu"
	KeyOrders   = "orders"
	KeyPayments = "payments"
)

// DocumentStore is the persistence seam behind the service components.
// Implementations guarantee that Save replaces the stored document
// atomically with respect to other Save calls for the same key. The
// exclusive section covers the write-replace only, not a caller's whole
// read-modify-write span: two near-simultaneous writers race and the last
// writer wins.
type DocumentStore interface {
	// Load decodes the document at key into out. When no document exists
	// it returns found=false and leaves out untouched, so callers start
	// from their zero value.
	Load(ctx context.Context, key string, out any) (found bool, err error)

	// Save encodes v and replaces the document at key.
	Save(ctx context.Context, key string, v any) error
}
