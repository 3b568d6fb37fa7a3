package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/taskhub/apiserver/internal/store"
	"github.com/taskhub/apiserver/types"
)

// UserRepository defines the credential-store operations the service needs.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (types.User, error)
	GetByUsername(ctx context.Context, username string) (types.User, error)
	// Insert must be an atomic check-and-insert: it returns store.ErrConflict
	// when the username is already taken, even under concurrent registration.
	Insert(ctx context.Context, username, passwordHash string) (types.User, error)
}

// Service composes the password hasher, token issuer/verifier, and credential
// store into the register, login, and authenticate operations.
type Service struct {
	users  UserRepository
	hasher PasswordHasher
	tokens Tokens
}

func NewService(users UserRepository, hasher PasswordHasher, tokens Tokens) *Service {
	return &Service{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register creates a new account and returns a token for it together with the
// public view of the user. The password hash never leaves this boundary.
// A taken username yields store.ErrConflict.
func (s *Service) Register(ctx context.Context, username, password string) (string, types.PublicUser, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", types.PublicUser{}, fmt.Errorf("hashing password: %w", err)
	}

	user, err := s.users.Insert(ctx, username, hash)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return "", types.PublicUser{}, err
		}
		return "", types.PublicUser{}, fmt.Errorf("creating user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", types.PublicUser{}, fmt.Errorf("issuing token: %w", err)
	}
	return token, user.Public(), nil
}

// Login verifies the credentials and issues a fresh token. An unknown
// username and a wrong password both yield ErrInvalidCredentials so callers
// cannot enumerate accounts. It has no side effect; prior tokens stay valid.
func (s *Service) Login(ctx context.Context, username, password string) (string, types.PublicUser, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", types.PublicUser{}, ErrInvalidCredentials
		}
		return "", types.PublicUser{}, fmt.Errorf("looking up user: %w", err)
	}

	if !s.hasher.Check(password, user.PasswordHash) {
		return "", types.PublicUser{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", types.PublicUser{}, fmt.Errorf("issuing token: %w", err)
	}
	return token, user.Public(), nil
}

// Authenticate gates a request: it parses the raw Authorization header value,
// verifies the bearer token, and resolves its subject to an existing user.
// Rejections are ErrNoToken, ErrInvalidToken, ErrTokenExpired, or ErrStaleUser;
// any other error is an unexpected condition, not a normal auth failure.
func (s *Service) Authenticate(ctx context.Context, rawHeader string) (types.User, error) {
	tokenString, err := bearerToken(rawHeader)
	if err != nil {
		return types.User{}, err
	}

	subject, err := s.tokens.Verify(tokenString)
	if err != nil {
		return types.User{}, err
	}

	user, err := s.users.GetByID(ctx, subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.User{}, ErrStaleUser
		}
		return types.User{}, fmt.Errorf("resolving token subject: %w", err)
	}
	return user, nil
}

// bearerToken extracts the token from an Authorization header value shaped
// like "Bearer <token>".
func bearerToken(rawHeader string) (string, error) {
	header := strings.TrimSpace(rawHeader)
	if header == "" {
		return "", ErrNoToken
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrNoToken
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}
