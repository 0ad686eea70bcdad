package service

import (
	"context"
	"errors"

	"internship-board-backend/internal/domain"
	"internship-board-backend/internal/logger"
	"internship-board-backend/internal/repository"
	"internship-board-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

type authService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	tokens      security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, profileRepo repository.ProfileRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		tokens:      tokens,
	}
}

func (s *authService) Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, string, string, error) {
	if !role.Valid() {
		return nil, "", "", domain.NewValidationError("role", "role must be STUDENT or FACULTY")
	}
	if len(password) < 8 {
		return nil, "", "", domain.NewValidationError("password", "password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, "", "", ErrEmailTaken
		}
		return nil, "", "", err
	}

	// The role record is created alongside the account and never changes
	// through this path afterwards.
	profile := &domain.Profile{
		UserID:      user.ID,
		Role:        role,
		DisplayName: name,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, "", "", err
	}

	logger.Info("User registered", "user_id", user.ID, "role", role)

	access, refresh, err := s.generateTokens(user, role)
	return user, access, refresh, err
}

func (s *authService) Login(ctx context.Context, email, password string) (string, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}

	role := domain.RoleStudent
	if profile, perr := s.profileRepo.GetByUserID(ctx, user.ID); perr == nil {
		role = profile.Role
	}

	return s.generateTokens(user, role)
}

func (s *authService) RefreshToken(ctx context.Context, refresh string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refresh)
	if err != nil {
		return "", "", err
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", security.ErrWrongTokenType
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", "", security.ErrInvalidToken
	}

	role := domain.RoleStudent
	if profile, perr := s.profileRepo.GetByUserID(ctx, user.ID); perr == nil {
		role = profile.Role
	}

	return s.generateTokens(user, role)
}

func (s *authService) Logout(ctx context.Context, refresh string) error {
	// Tokens are short-lived; a server-side blacklist is not maintained.
	return nil
}

func (s *authService) generateTokens(user *domain.User, role domain.Role) (string, string, error) {
	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email, string(role))
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
