package user

import "errors"

// Role classifies an account's access level and pricing tier.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleReseller Role = "reseller"
	RoleCustomer Role = "customer"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleReseller, RoleCustomer:
		return true
	}
	return false
}

func (r Role) IsAdmin() bool    { return r == RoleAdmin }
func (r Role) IsReseller() bool { return r == RoleReseller }

// Account represents a storefront user.
//
// PasswordHash travels inside the persisted snapshot so accounts survive a
// reload; API handlers blank it before responding.
type Account struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	PasswordHash   string  `json:"passwordHash,omitempty"`
	Role           Role    `json:"role"`
	DiscountRate   float64 `json:"discountRate,omitempty"`
	TotalPurchases float64 `json:"totalPurchases,omitempty"`
	IsActive       bool    `json:"isActive"`
}

// Sanitized returns a copy of the account safe to put on the wire.
func (a Account) Sanitized() Account {
	a.PasswordHash = ""
	return a
}

var (
	// ErrNotFound is returned when an account id or email does not resolve.
	ErrNotFound = errors.New("account not found")
	// ErrInvalid is returned for malformed account input.
	ErrInvalid = errors.New("invalid account")
)
