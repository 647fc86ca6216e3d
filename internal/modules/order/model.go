package order

import (
	"errors"
	"time"
)

// Status represents the lifecycle state of an order. Any status may follow
// any other; admins move orders freely.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusDelivered  Status = "DELIVERED"
	StatusCancelled  Status = "CANCELLED"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Label returns the French storefront label for the status.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "En Attente"
	case StatusProcessing:
		return "En Cours"
	case StatusDelivered:
		return "Livrée"
	case StatusCancelled:
		return "Annulée"
	}
	return string(s)
}

// GuestUserID marks orders placed without an account.
const GuestUserID = "guest"

// Item is a single line of an order. ProductName and UnitPrice are snapshots
// taken at placement time; later product edits do not alter them.
type Item struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

// Order is one placed order in the ledger.
type Order struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	UserName    string    `json:"userName"`
	Items       []Item    `json:"items"`
	TotalAmount float64   `json:"totalAmount"`
	Status      Status    `json:"status"`
	Date        time.Time `json:"date"`
}

var (
	// ErrNotFound is returned when an order id does not resolve.
	ErrNotFound = errors.New("order not found")
	// ErrInvalid is returned for malformed order input.
	ErrInvalid = errors.New("invalid order")
)
