package auth

import (
	"context"

	"github.com/hbenomar/macstore-backend/internal/modules/user"
)

// Service defines the interface for authentication business logic.
type Service interface {
	// Authenticate matches email (case-insensitive, trimmed) and password
	// against an active account. It returns (nil, nil) on any mismatch;
	// callers must not learn which check failed.
	Authenticate(ctx context.Context, email, password string) (*user.Account, error)

	// Login authenticates and issues a signed session token. The account is
	// nil when the credentials are rejected.
	Login(ctx context.Context, email, password string) (*user.Account, string, error)
}
