package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hbenomar/macstore-backend/internal/modules/pricing"
	"github.com/hbenomar/macstore-backend/internal/modules/user"
)

// Service defines the order management business logic.
type Service interface {
	// PlaceOrder prices the cart for the acting role, decrements stock, and
	// commits the order atomically.
	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*Order, error)

	// GetOrder retrieves a full order by id.
	GetOrder(ctx context.Context, id string) (*Order, error)

	// ListOrders returns the ledger, most recent first.
	ListOrders(ctx context.Context) ([]Order, error)

	// UpdateStatus overwrites an order's status. No transition graph is
	// enforced; any status may follow any other.
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Order, error)
}

// CartItem describes one requested line of a placement.
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"qty"`
}

// PlaceOrderRequest carries the acting identity and the requested cart.
// ActingID is the guest sentinel for anonymous shoppers.
type PlaceOrderRequest struct {
	ActingID   string
	ActingName string
	ActingRole user.Role
	Items      []CartItem
}

// UpdateStatusRequest is the payload for moving an order to a new status.
type UpdateStatusRequest struct {
	Status Status `json:"status"`
}

type service struct {
	repo   Repository
	pricer pricing.Resolver
}

// NewService creates a new order service.
func NewService(repo Repository, pricer pricing.Resolver) Service {
	return &service{repo: repo, pricer: pricer}
}

func (s *service) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*Order, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", ErrInvalid)
	}

	// Resolve and price every line before touching any state; an unknown
	// product aborts the whole placement.
	items := make([]Item, 0, len(req.Items))
	decrements := make(map[string]int, len(req.Items))
	var total float64

	for _, ci := range req.Items {
		if ci.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be > 0 for product %s", ErrInvalid, ci.ProductID)
		}
		name, listPrice, err := s.repo.ProductForSale(ctx, ci.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", ci.ProductID, err)
		}
		unitPrice := s.pricer.UnitPrice(listPrice, req.ActingRole)
		lineTotal := unitPrice * float64(ci.Quantity)
		total += lineTotal
		decrements[ci.ProductID] += ci.Quantity

		items = append(items, Item{
			ProductID:   ci.ProductID,
			ProductName: name,
			Quantity:    ci.Quantity,
			UnitPrice:   unitPrice,
			Total:       lineTotal,
		})
	}

	actingID := req.ActingID
	if actingID == "" {
		actingID = GuestUserID
	}

	o := &Order{
		ID:          newOrderID(),
		UserID:      actingID,
		UserName:    req.ActingName,
		Items:       items,
		TotalAmount: total,
		Status:      StatusPending,
		Date:        time.Now().UTC(),
	}

	// Guests never accumulate purchase totals.
	resellerID := ""
	if req.ActingRole.IsReseller() && actingID != GuestUserID {
		resellerID = actingID
	}

	if err := s.repo.CommitOrder(ctx, o, decrements, resellerID, total); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) GetOrder(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetOrderByID(ctx, id)
}

func (s *service) ListOrders(ctx context.Context) ([]Order, error) {
	return s.repo.ListOrders(ctx)
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Order, error) {
	if !req.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalid, req.Status)
	}
	o, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateOrderStatus(ctx, id, req.Status); err != nil {
		return nil, err
	}
	o.Status = req.Status
	return o, nil
}

// newOrderID creates a time-derived order id: ord-<unix millis>-<suffix>.
func newOrderID() string {
	suffix := strings.ToUpper(uuid.New().String()[:4])
	return fmt.Sprintf("ord-%d-%s", time.Now().UnixMilli(), suffix)
}
