package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/hbenomar/macstore-backend/internal/modules/user"
)

const tokenTTL = 24 * time.Hour

type service struct {
	users  user.Repository
	secret []byte
}

// NewService creates a new auth service.
func NewService(users user.Repository, secret string) Service {
	return &service{users: users, secret: []byte(secret)}
}

func (s *service) Authenticate(ctx context.Context, email, password string) (*user.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	acct, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !acct.IsActive {
		return nil, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)) != nil {
		return nil, nil
	}
	return acct, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*user.Account, string, error) {
	acct, err := s.Authenticate(ctx, email, password)
	if err != nil || acct == nil {
		return nil, "", err
	}

	claims := jwt.MapClaims{
		"sub":  acct.ID,
		"name": acct.Name,
		"role": string(acct.Role),
		"exp":  time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, "", err
	}
	return acct, signed, nil
}
