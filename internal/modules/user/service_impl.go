package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type service struct {
	repo             Repository
	resellerDiscount float64
}

// NewService creates a new account service. resellerDiscount is the rate
// stamped onto newly created reseller accounts.
func NewService(repo Repository, resellerDiscount float64) Service {
	return &service{repo: repo, resellerDiscount: resellerDiscount}
}

func (s *service) ListAccounts(ctx context.Context) ([]Account, error) {
	return s.repo.ListUsers(ctx)
}

func (s *service) CreateAccount(ctx context.Context, req CreateAccountRequest) (*Account, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", ErrInvalid)
	}
	if !req.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalid, req.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	a := &Account{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         req.Role,
		IsActive:     true,
	}
	if a.Role.IsReseller() {
		a.DiscountRate = s.resellerDiscount
	}
	if err := s.repo.CreateUser(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) DeleteAccount(ctx context.Context, id string) error {
	return s.repo.DeleteUser(ctx, id)
}

func (s *service) ToggleActive(ctx context.Context, id string) (*Account, error) {
	return s.repo.ToggleUserActive(ctx, id)
}
