package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service defines catalog business logic.
type Service interface {
	ListProducts(ctx context.Context, category Category) ([]Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	CreateProduct(ctx context.Context, req SaveProductRequest) (*Product, error)
	UpdateProduct(ctx context.Context, id string, req SaveProductRequest) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// SaveProductRequest holds the data for creating or replacing a product.
type SaveProductRequest struct {
	Name          string   `json:"name"`
	Category      Category `json:"category"`
	Description   string   `json:"description"`
	Specs         []string `json:"specs"`
	Price         float64  `json:"price"`
	PurchasePrice float64  `json:"purchasePrice"`
	Stock         int      `json:"stock"`
	Image         string   `json:"image"`
}

func (r SaveProductRequest) validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if !r.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalid, r.Category)
	}
	if r.Price < 0 {
		return fmt.Errorf("%w: price must be >= 0", ErrInvalid)
	}
	if r.PurchasePrice < 0 {
		return fmt.Errorf("%w: purchase price must be >= 0", ErrInvalid)
	}
	if r.Stock < 0 {
		return fmt.Errorf("%w: stock must be >= 0", ErrInvalid)
	}
	return nil
}

type service struct{ repo Repository }

// NewService creates a new catalog service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListProducts(ctx context.Context, category Category) ([]Product, error) {
	return s.repo.ListProducts(ctx, category)
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetProductByID(ctx, id)
}

func (s *service) CreateProduct(ctx context.Context, req SaveProductRequest) (*Product, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	p := &Product{
		ID:            uuid.New().String(),
		Name:          req.Name,
		Category:      req.Category,
		Description:   req.Description,
		Specs:         req.Specs,
		Price:         req.Price,
		PurchasePrice: req.PurchasePrice,
		Stock:         req.Stock,
		Image:         req.Image,
	}
	if err := s.repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) UpdateProduct(ctx context.Context, id string, req SaveProductRequest) (*Product, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	p, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Name = req.Name
	p.Category = req.Category
	p.Description = req.Description
	p.Specs = req.Specs
	p.Price = req.Price
	p.PurchasePrice = req.PurchasePrice
	p.Stock = req.Stock
	p.Image = req.Image
	if err := s.repo.UpdateProduct(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) DeleteProduct(ctx context.Context, id string) error {
	return s.repo.DeleteProduct(ctx, id)
}
