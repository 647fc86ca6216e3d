package user

import "context"

// Service defines the interface for account management business logic.
type Service interface {
	ListAccounts(ctx context.Context) ([]Account, error)
	CreateAccount(ctx context.Context, req CreateAccountRequest) (*Account, error)
	DeleteAccount(ctx context.Context, id string) error
	ToggleActive(ctx context.Context, id string) (*Account, error)
}

// CreateAccountRequest holds the data for creating an account.
type CreateAccountRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}
