package pricing

import "github.com/hbenomar/macstore-backend/internal/modules/user"

// DefaultResellerDiscount is the storewide reseller discount applied when no
// override is configured.
const DefaultResellerDiscount = 0.20

// Resolver is the single point mapping an account role to the unit price it
// pays for a product.
type Resolver struct {
	ResellerDiscount float64
}

// NewResolver builds a Resolver, falling back to the default discount when
// the configured rate is out of range.
func NewResolver(discount float64) Resolver {
	if discount <= 0 || discount >= 1 {
		discount = DefaultResellerDiscount
	}
	return Resolver{ResellerDiscount: discount}
}

// UnitPrice returns the effective unit price for the given role. Resellers
// pay the list price less the discount; everyone else pays list price.
func (r Resolver) UnitPrice(listPrice float64, role user.Role) float64 {
	if role.IsReseller() {
		return listPrice * (1 - r.ResellerDiscount)
	}
	return listPrice
}
