package service

import (
	"context"
	"strings"

	"gowheels/internal/entity"
	"gowheels/internal/repository"
	"gowheels/internal/utils"

	"github.com/google/uuid"
)

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type LoginInput struct {
	Username string
	Password string
}

type TokenPair struct {
	AccessToken      string
	ExpiresIn        int64
	RefreshToken     string
	RefreshExpiresIn int64
}

type AuthService struct {
	users        repository.UserRepository
	passwordHash PasswordHasher
	tokens       *utils.JWTManager
}

func NewAuthService(users repository.UserRepository, passwordHash PasswordHasher, tokens *utils.JWTManager) *AuthService {
	return &AuthService{
		users:        users,
		passwordHash: passwordHash,
		tokens:       tokens,
	}
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	if strings.TrimSpace(input.Username) == "" || strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Password) == "" {
		return nil, ErrInvalidInput
	}

	existing, err := s.users.FindByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	email := utils.NormalizeEmail(input.Email)
	existing, err = s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := s.passwordHash.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username:     input.Username,
		Email:        email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         entity.UserRoleUser,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*TokenPair, error) {
	if strings.TrimSpace(input.Username) == "" || strings.TrimSpace(input.Password) == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.users.FindByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !s.passwordHash.Verify(user.PasswordHash, input.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, ErrInvalidInput
	}

	userID, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return s.issueTokens(user)
}

func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) issueTokens(user *entity.User) (*TokenPair, error) {
	access, accessTTL, err := s.tokens.IssueAccessToken(user.ID.String(), string(user.Role))
	if err != nil {
		return nil, err
	}
	refresh, refreshTTL, err := s.tokens.IssueRefreshToken(user.ID.String())
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:      access,
		ExpiresIn:        int64(accessTTL.Seconds()),
		RefreshToken:     refresh,
		RefreshExpiresIn: int64(refreshTTL.Seconds()),
	}, nil
}
