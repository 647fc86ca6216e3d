package catalog

import "context"

// Repository defines the interface for catalog data storage.
type Repository interface {
	ListProducts(ctx context.Context, category Category) ([]Product, error)
	GetProductByID(ctx context.Context, id string) (*Product, error)
	CreateProduct(ctx context.Context, p *Product) error
	UpdateProduct(ctx context.Context, p *Product) error
	DeleteProduct(ctx context.Context, id string) error
}
