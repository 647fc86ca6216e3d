package store

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hbenomar/macstore-backend/internal/modules/catalog"
	"github.com/hbenomar/macstore-backend/internal/modules/order"
	"github.com/hbenomar/macstore-backend/internal/modules/site"
	"github.com/hbenomar/macstore-backend/internal/modules/user"
)

// Store implements the repository interfaces of the catalog, user, order and
// site modules over the shared snapshot.
var (
	_ catalog.Repository = (*Store)(nil)
	_ user.Repository    = (*Store)(nil)
	_ order.Repository   = (*Store)(nil)
	_ site.Repository    = (*Store)(nil)
)

// ── catalog ──────────────────────────────────────────────────────────────────

func (s *Store) ListProducts(ctx context.Context, category catalog.Category) ([]catalog.Product, error) {
	var out []catalog.Product
	s.view(func(snap *Snapshot) {
		for _, p := range snap.Products {
			if category != "" && p.Category != category {
				continue
			}
			p.Specs = append([]string(nil), p.Specs...)
			out = append(out, p)
		}
	})
	if out == nil {
		out = []catalog.Product{}
	}
	return out, nil
}

func (s *Store) GetProductByID(ctx context.Context, id string) (*catalog.Product, error) {
	var found *catalog.Product
	s.view(func(snap *Snapshot) {
		for _, p := range snap.Products {
			if p.ID == id {
				p.Specs = append([]string(nil), p.Specs...)
				found = &p
				return
			}
		}
	})
	if found == nil {
		return nil, catalog.ErrNotFound
	}
	return found, nil
}

func (s *Store) CreateProduct(ctx context.Context, p *catalog.Product) error {
	return s.update(func(snap *Snapshot) error {
		snap.Products = append(snap.Products, *p)
		return nil
	})
}

func (s *Store) UpdateProduct(ctx context.Context, p *catalog.Product) error {
	return s.update(func(snap *Snapshot) error {
		for i := range snap.Products {
			if snap.Products[i].ID == p.ID {
				snap.Products[i] = *p
				return nil
			}
		}
		return catalog.ErrNotFound
	})
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	return s.update(func(snap *Snapshot) error {
		for i := range snap.Products {
			if snap.Products[i].ID == id {
				snap.Products = append(snap.Products[:i], snap.Products[i+1:]...)
				return nil
			}
		}
		return catalog.ErrNotFound
	})
}

// ── user ─────────────────────────────────────────────────────────────────────

func (s *Store) ListUsers(ctx context.Context) ([]user.Account, error) {
	var out []user.Account
	s.view(func(snap *Snapshot) {
		out = append(out, snap.Users...)
	})
	if out == nil {
		out = []user.Account{}
	}
	return out, nil
}

func (s *Store) GetUserByID(ctx context.Context, id string) (*user.Account, error) {
	var found *user.Account
	s.view(func(snap *Snapshot) {
		for _, a := range snap.Users {
			if a.ID == id {
				found = &a
				return
			}
		}
	})
	if found == nil {
		return nil, user.ErrNotFound
	}
	return found, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*user.Account, error) {
	var found *user.Account
	s.view(func(snap *Snapshot) {
		for _, a := range snap.Users {
			if strings.EqualFold(a.Email, email) {
				found = &a
				return
			}
		}
	})
	if found == nil {
		return nil, user.ErrNotFound
	}
	return found, nil
}

func (s *Store) CreateUser(ctx context.Context, a *user.Account) error {
	return s.update(func(snap *Snapshot) error {
		for _, existing := range snap.Users {
			if strings.EqualFold(existing.Email, a.Email) {
				return fmt.Errorf("%w: email %s already in use", user.ErrInvalid, a.Email)
			}
		}
		snap.Users = append(snap.Users, *a)
		return nil
	})
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	return s.update(func(snap *Snapshot) error {
		for i := range snap.Users {
			if snap.Users[i].ID == id {
				snap.Users = append(snap.Users[:i], snap.Users[i+1:]...)
				return nil
			}
		}
		return user.ErrNotFound
	})
}

func (s *Store) ToggleUserActive(ctx context.Context, id string) (*user.Account, error) {
	var toggled user.Account
	err := s.update(func(snap *Snapshot) error {
		for i := range snap.Users {
			if snap.Users[i].ID == id {
				snap.Users[i].IsActive = !snap.Users[i].IsActive
				toggled = snap.Users[i]
				return nil
			}
		}
		return user.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &toggled, nil
}

// ── order ────────────────────────────────────────────────────────────────────

func (s *Store) ProductForSale(ctx context.Context, productID string) (string, float64, error) {
	p, err := s.GetProductByID(ctx, productID)
	if err != nil {
		return "", 0, err
	}
	return p.Name, p.Price, nil
}

func (s *Store) CommitOrder(ctx context.Context, o *order.Order, decrements map[string]int, resellerID string, amount float64) error {
	return s.update(func(snap *Snapshot) error {
		index := make(map[string]int, len(snap.Products))
		for i, p := range snap.Products {
			index[p.ID] = i
		}
		for id := range decrements {
			if _, ok := index[id]; !ok {
				return fmt.Errorf("product %s: %w", id, catalog.ErrNotFound)
			}
		}

		// Stock floor is zero: oversell is recorded on the order but never
		// drives stock negative.
		for id, qty := range decrements {
			p := &snap.Products[index[id]]
			p.Stock -= qty
			if p.Stock < 0 {
				p.Stock = 0
			}
		}

		placed := *o
		placed.Items = append([]order.Item(nil), o.Items...)
		snap.Orders = append([]order.Order{placed}, snap.Orders...)

		if resellerID != "" {
			for i := range snap.Users {
				if snap.Users[i].ID == resellerID {
					snap.Users[i].TotalPurchases += amount
					break
				}
			}
		}
		return nil
	})
}

func (s *Store) GetOrderByID(ctx context.Context, id string) (*order.Order, error) {
	var found *order.Order
	s.view(func(snap *Snapshot) {
		for _, o := range snap.Orders {
			if o.ID == id {
				o.Items = append([]order.Item(nil), o.Items...)
				found = &o
				return
			}
		}
	})
	if found == nil {
		return nil, order.ErrNotFound
	}
	return found, nil
}

func (s *Store) ListOrders(ctx context.Context) ([]order.Order, error) {
	var out []order.Order
	s.view(func(snap *Snapshot) {
		for _, o := range snap.Orders {
			o.Items = append([]order.Item(nil), o.Items...)
			out = append(out, o)
		}
	})
	if out == nil {
		out = []order.Order{}
	}
	// New orders are prepended, but an uploaded snapshot may arrive in any
	// order; most-recent-first is the canonical view.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (s *Store) UpdateOrderStatus(ctx context.Context, id string, status order.Status) error {
	return s.update(func(snap *Snapshot) error {
		for i := range snap.Orders {
			if snap.Orders[i].ID == id {
				snap.Orders[i].Status = status
				return nil
			}
		}
		return order.ErrNotFound
	})
}

// ── site ─────────────────────────────────────────────────────────────────────

func (s *Store) Hero(ctx context.Context) (site.HeroContent, error) {
	var hero site.HeroContent
	s.view(func(snap *Snapshot) { hero = snap.HeroContent })
	return hero, nil
}

func (s *Store) UpdateHero(ctx context.Context, h site.HeroContent) error {
	return s.update(func(snap *Snapshot) error {
		snap.HeroContent = h
		return nil
	})
}
