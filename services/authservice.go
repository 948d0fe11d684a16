package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/mustafagenc/planly/dto"
	"github.com/mustafagenc/planly/model"
	"github.com/mustafagenc/planly/store"
)

type AuthOptions struct {
	// AllowRegistration gates sign-up once the first account exists.
	AllowRegistration bool
	BcryptCost        int
}

type AuthService struct {
	users  store.UserStore
	tokens *TokenIssuer
	opts   AuthOptions
}

func NewAuthService(users store.UserStore, tokens *TokenIssuer, opts AuthOptions) *AuthService {
	return &AuthService{users: users, tokens: tokens, opts: opts}
}

func (s *AuthService) HasAnyUser(ctx context.Context) (bool, error) {
	n, err := s.users.CountUsers(ctx)
	return n > 0, err
}

// Register signs up a new account. The first account becomes ADMIN.
func (s *AuthService) Register(ctx context.Context, req dto.SignupRequest) (model.User, error) {
	if err := validateStruct(req); err != nil {
		return model.User{}, err
	}
	n, err := s.users.CountUsers(ctx)
	if err != nil {
		return model.User{}, err
	}
	role := model.RoleUser
	if n == 0 {
		role = model.RoleAdmin
	} else if !s.opts.AllowRegistration {
		return model.User{}, ErrRegistrationClosed
	}
	return s.CreateUser(ctx, req.Name, req.Email, req.Password, role)
}

// CreateUser adds an account directly, bypassing the registration gate.
func (s *AuthService) CreateUser(ctx context.Context, name, email, password, role string) (model.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.User{}, invalid("name", "is required")
	}
	if err := validate.Var(email, "required,email"); err != nil {
		return model.User{}, invalid("email", "must be a valid email address")
	}
	if len(password) < 8 {
		return model.User{}, invalid("password", "must be at least 8 characters")
	}
	if role != model.RoleAdmin && role != model.RoleUser {
		return model.User{}, invalid("role", "must be ADMIN or USER")
	}
	hash, err := HashPassword(password, s.opts.BcryptCost)
	if err != nil {
		return model.User{}, err
	}
	user := model.User{
		UserID:   uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     role,
	}
	if err := s.users.CreateUser(ctx, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// Login checks credentials and returns a fresh token pair. Only the hash of
// the refresh token is kept.
func (s *AuthService) Login(ctx context.Context, req dto.SigninRequest) (dto.TokenResponse, error) {
	if err := validateStruct(req); err != nil {
		return dto.TokenResponse{}, err
	}
	user, err := s.users.GetUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNotFound) {
		return dto.TokenResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		return dto.TokenResponse{}, err
	}
	if !CheckPassword(user.Password, req.Password) {
		return dto.TokenResponse{}, ErrInvalidCredentials
	}

	access, err := s.tokens.CreateAccessToken(user.UserID, user.Role)
	if err != nil {
		return dto.TokenResponse{}, err
	}
	refresh, err := s.tokens.CreateRefreshToken(user.UserID)
	if err != nil {
		return dto.TokenResponse{}, err
	}
	hashed, err := HashRefreshToken(refresh, s.opts.BcryptCost)
	if err != nil {
		return dto.TokenResponse{}, err
	}
	if err := s.users.SetRefreshToken(ctx, user.UserID, hashed); err != nil {
		return dto.TokenResponse{}, err
	}
	return dto.TokenResponse{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh trades a valid refresh token for a new access token. The token
// must match the one stored at the last login.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (dto.TokenResponse, error) {
	claims, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return dto.TokenResponse{}, err
	}
	user, err := s.users.GetUserByID(ctx, claims.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return dto.TokenResponse{}, ErrInvalidToken
	}
	if err != nil {
		return dto.TokenResponse{}, err
	}
	if !CompareRefreshToken(user.RefreshToken, refreshToken) {
		return dto.TokenResponse{}, ErrInvalidToken
	}
	access, err := s.tokens.CreateAccessToken(user.UserID, user.Role)
	if err != nil {
		return dto.TokenResponse{}, err
	}
	return dto.TokenResponse{AccessToken: access}, nil
}

func (s *AuthService) Logout(ctx context.Context, userID string) error {
	return s.users.SetRefreshToken(ctx, userID, "")
}
