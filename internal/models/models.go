// Package models defines the domain entities and data transfer objects for
// the ordering backend. It includes the document shapes persisted by the
// store (users, groups, menu, orders, payments) and the view models returned
// by the API.
package models

// Role values form a closed enumeration. Any unrecognized value is treated
// as RoleUser (see ParseRole in the policy package).
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a system account with role-based access control.
//
// Document: users (ordered sequence of User records)
// Note: Password is stored as-is; the login endpoint compares it verbatim.
// It must never be included in API responses.
type User struct {
	Username string `json:"username"` // Unique key, used for login
	Password string `json:"password"` // Stored verbatim
	Group    string `json:"group"`    // Reference to a group name
	Role     string `json:"role"`     // "user" or "admin"
}

// Profile is the public projection of a User returned by login.
type Profile struct {
	Username string `json:"username"`
	Group    string `json:"group"`
	Role     string `json:"role"`
}

// Profile returns the user's public projection.
func (u User) Profile() Profile {
	return Profile{Username: u.Username, Group: u.Group, Role: u.Role}
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// MenuItem is a purchasable entry within a menu category.
// Name is unique within its category; Options is an ordered set of distinct
// non-empty variant labels. Items that normalize to an empty name or zero
// options are pruned on every read.
type MenuItem struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

// Menu is the full catalog document, one list per category.
//
// Document: menu
type Menu struct {
	Drinks []MenuItem `json:"drinks"`
	Foods  []MenuItem `json:"foods"`
}

// OrderEntry is one user's order for a given date. Group is a snapshot taken
// at submission time and is not required to match the user's current group.
//
// Document: orders (map of date -> ordered sequence of OrderEntry)
type OrderEntry struct {
	Username string       `json:"username"`
	Group    string       `json:"group"`
	Order    OrderPayload `json:"order"`
}

// Orders is the orders document keyed by date (YYYY-MM-DD).
type Orders map[string][]OrderEntry

// Payments is the payments document: date -> group -> payer username.
// At most one payer per (date, group); re-recording overwrites.
type Payments map[string]map[string]string

// PayerRecord identifies who paid for a group on a specific date.
type PayerRecord struct {
	Username string `json:"username"`
	Date     string `json:"date"`
}

// PaymentTotal is one row of the "who paid least" ranking for a group.
type PaymentTotal struct {
	Username string `json:"username"`
	Count    int    `json:"count"`
}

// PaymentLogEntry is one historical payment of a group, most recent first
// in API responses.
type PaymentLogEntry struct {
	Date     string `json:"date"`
	Username string `json:"username"`
}

// PaymentStatus aggregates a group's payment state: the payer for the
// requested date (nil if none recorded), the running ranking, and the
// chronological log.
type PaymentStatus struct {
	Group  string            `json:"group"`
	Date   string            `json:"date"`
	Payer  *PayerRecord      `json:"payer"`
	Totals []PaymentTotal    `json:"totals"`
	Log    []PaymentLogEntry `json:"log"`
}
