package auth

import (
	"context"
	"errors"
	"time"

	"venuehub/internal/shared/config"
	"venuehub/internal/users"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidToken       = errors.New("invalid token")
)

type Service interface {
	Register(ctx context.Context, req *RegisterRequest) (*TokenResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error)
	GetMe(ctx context.Context, userID string) (*UserResponse, error)
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
}

type service struct {
	repo   Repository
	tokens *TokenStore
	config *config.Config
}

func NewService(repo Repository, tokens *TokenStore, cfg *config.Config) Service {
	return &service{
		repo:   repo,
		tokens: tokens,
		config: cfg,
	}
}

func (s *service) Register(ctx context.Context, req *RegisterRequest) (*TokenResponse, error) {
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &users.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

func (s *service) Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(user)
}

func (s *service) GetMe(ctx context.Context, userID string) (*UserResponse, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, nil
}

// Logout denylists the presented token until it would expire anyway.
func (s *service) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if jti == "" {
		return ErrInvalidToken
	}

	return s.tokens.Deny(ctx, jti, time.Until(expiresAt))
}

// issueToken signs a fresh access token for the user.
func (s *service) issueToken(user *users.User) (*TokenResponse, error) {
	now := time.Now()
	claims := JWTClaims{
		UserID: user.ID.String(),
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.JWT.ExpiresIn)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWT.Secret))
	if err != nil {
		return nil, err
	}

	return &TokenResponse{
		AccessToken: signed,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.config.JWT.ExpiresIn.Seconds()),
	}, nil
}
