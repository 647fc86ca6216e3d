package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	products map[string]*Product
	updated  []*Product
	deleted  []string
}

func newFakeRepo() *fakeRepo { return &fakeRepo{products: map[string]*Product{}} }

func (f *fakeRepo) ListProducts(context.Context, Category) ([]Product, error) { return nil, nil }
func (f *fakeRepo) GetProductByID(_ context.Context, id string) (*Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}
func (f *fakeRepo) CreateProduct(_ context.Context, p *Product) error {
	f.products[p.ID] = p
	return nil
}
func (f *fakeRepo) UpdateProduct(_ context.Context, p *Product) error {
	if _, ok := f.products[p.ID]; !ok {
		return ErrNotFound
	}
	f.products[p.ID] = p
	f.updated = append(f.updated, p)
	return nil
}
func (f *fakeRepo) DeleteProduct(_ context.Context, id string) error {
	if _, ok := f.products[id]; !ok {
		return ErrNotFound
	}
	delete(f.products, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func validRequest() SaveProductRequest {
	return SaveProductRequest{
		Name:          "iPhone 15 Pro Max",
		Category:      CategoryIPhone,
		Description:   "Le titane forge une nouvelle ère.",
		Specs:         []string{"Titane", "USB-C"},
		Price:         15990,
		PurchasePrice: 13000,
		Stock:         45,
	}
}

func TestCreateProductAssignsID(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	p, err := svc.CreateProduct(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, []string{"Titane", "USB-C"}, p.Specs)
	assert.Contains(t, repo.products, p.ID)
}

func TestCreateProductValidation(t *testing.T) {
	svc := NewService(newFakeRepo())

	cases := map[string]func(*SaveProductRequest){
		"missing name":            func(r *SaveProductRequest) { r.Name = "" },
		"unknown category":        func(r *SaveProductRequest) { r.Category = "Vision Pro" },
		"negative price":          func(r *SaveProductRequest) { r.Price = -1 },
		"negative purchase price": func(r *SaveProductRequest) { r.PurchasePrice = -1 },
		"negative stock":          func(r *SaveProductRequest) { r.Stock = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validRequest()
			mutate(&req)
			_, err := svc.CreateProduct(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestUpdateProductReplacesAllFields(t *testing.T) {
	repo := newFakeRepo()
	repo.products["p1"] = &Product{ID: "p1", Name: "Old", Category: CategoryIPhone, Price: 1, Stock: 1}
	svc := NewService(repo)

	p, err := svc.UpdateProduct(context.Background(), "p1", validRequest())
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "iPhone 15 Pro Max", p.Name)
	assert.Equal(t, 15990.0, p.Price)
	assert.Equal(t, 45, p.Stock)
}

func TestUpdateProductUnknownID(t *testing.T) {
	svc := NewService(newFakeRepo())
	_, err := svc.UpdateProduct(context.Background(), "ghost", validRequest())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteProduct(t *testing.T) {
	repo := newFakeRepo()
	repo.products["p1"] = &Product{ID: "p1"}
	svc := NewService(repo)

	require.NoError(t, svc.DeleteProduct(context.Background(), "p1"))
	assert.ErrorIs(t, svc.DeleteProduct(context.Background(), "p1"), ErrNotFound)
}

func TestCategoryValid(t *testing.T) {
	t.Parallel()
	for _, c := range []Category{CategoryIPhone, CategoryMacBook, CategoryIPad, CategoryWatch, CategoryAirPods} {
		assert.True(t, c.Valid())
	}
	assert.False(t, Category("HomePod").Valid())
	assert.False(t, Category("").Valid())
}
