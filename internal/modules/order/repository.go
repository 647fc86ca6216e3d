package order

import "context"

// Repository defines data access for orders and the stock they consume.
type Repository interface {
	// ProductForSale returns the display name and list price of a product.
	ProductForSale(ctx context.Context, productID string) (name string, listPrice float64, err error)

	// CommitOrder applies a placement as one observable state transition:
	// the order is prepended to the ledger, each product's stock is
	// decremented (floored at zero), and the reseller's lifetime total is
	// increased by amount when resellerID is set. Nothing is applied if any
	// product id is unknown.
	CommitOrder(ctx context.Context, o *Order, decrements map[string]int, resellerID string, amount float64) error

	// GetOrderByID retrieves an order by id.
	GetOrderByID(ctx context.Context, id string) (*Order, error)

	// ListOrders returns all orders, most recent first.
	ListOrders(ctx context.Context) ([]Order, error)

	// UpdateOrderStatus overwrites the status of an order.
	UpdateOrderStatus(ctx context.Context, id string, status Status) error
}
