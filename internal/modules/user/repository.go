package user

import "context"

// Repository defines the interface for account data storage.
type Repository interface {
	ListUsers(ctx context.Context) ([]Account, error)
	GetUserByID(ctx context.Context, id string) (*Account, error)
	// GetUserByEmail matches case-insensitively.
	GetUserByEmail(ctx context.Context, email string) (*Account, error)
	// CreateUser rejects duplicate emails.
	CreateUser(ctx context.Context, a *Account) error
	DeleteUser(ctx context.Context, id string) error
	// ToggleUserActive flips the active flag and returns the updated account.
	ToggleUserActive(ctx context.Context, id string) (*Account, error)
}
