package catalog

import "errors"

// Category is the fixed set of product families the store sells.
type Category string

const (
	CategoryIPhone  Category = "iPhone"
	CategoryMacBook Category = "MacBook"
	CategoryIPad    Category = "iPad"
	CategoryWatch   Category = "Watch"
	CategoryAirPods Category = "AirPods"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryIPhone, CategoryMacBook, CategoryIPad, CategoryWatch, CategoryAirPods:
		return true
	}
	return false
}

// Product is an item in the storefront catalog.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      Category `json:"category"`
	Description   string   `json:"description"`
	Specs         []string `json:"specs"`
	Price         float64  `json:"price"`
	PurchasePrice float64  `json:"purchasePrice,omitempty"`
	Stock         int      `json:"stock"`
	Image         string   `json:"image"`
}

var (
	// ErrNotFound is returned when a product id does not resolve.
	ErrNotFound = errors.New("product not found")
	// ErrInvalid is returned for malformed product input.
	ErrInvalid = errors.New("invalid product")
)
