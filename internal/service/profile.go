package service

import (
	"context"
	"errors"

	"internship-board-backend/internal/domain"
	"internship-board-backend/internal/logger"
	"internship-board-backend/internal/repository"
)

type profileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID int32) (*domain.Profile, error) {
	return getOrProvisionProfile(ctx, s.profileRepo, s.userRepo, userID)
}

func (s *profileService) UpdateProfile(ctx context.Context, userID int32, update ProfileUpdate) (*domain.Profile, error) {
	if err := validateStruct(update); err != nil {
		return nil, err
	}
	profile, err := getOrProvisionProfile(ctx, s.profileRepo, s.userRepo, userID)
	if err != nil {
		return nil, err
	}
	profile.DisplayName = update.DisplayName
	profile.Department = update.Department
	profile.Major = update.Major
	profile.GraduationYear = update.GraduationYear
	profile.Bio = update.Bio
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileService) AssignRole(ctx context.Context, userID int32, role domain.Role, displayName string) error {
	if !role.Valid() {
		return domain.NewValidationError("role", "role must be STUDENT or FACULTY")
	}
	profile := &domain.Profile{
		UserID:      userID,
		Role:        role,
		DisplayName: displayName,
	}
	// The unique constraint on profiles.user_id turns a second assignment
	// into ErrConflict: role changes are an administrative operation, not
	// self-service.
	return s.profileRepo.Create(ctx, profile)
}

func (s *profileService) GetRole(ctx context.Context, userID int32) (domain.Role, error) {
	profile, err := getOrProvisionProfile(ctx, s.profileRepo, s.userRepo, userID)
	if err != nil {
		return "", err
	}
	return profile.Role, nil
}

// getOrProvisionProfile recovers from a missing profile row by creating a
// default student profile. Accounts provisioned out-of-band (e.g. by an
// administrator) therefore never crash role checks.
func getOrProvisionProfile(ctx context.Context, profiles repository.ProfileRepository, users repository.UserRepository, userID int32) (*domain.Profile, error) {
	profile, err := profiles.GetByUserID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, domain.ErrProfileMissing) {
		return nil, err
	}

	logger.Warn("No profile for user, provisioning default student profile", "user_id", userID)
	displayName := ""
	if user, uerr := users.GetByID(ctx, userID); uerr == nil {
		displayName = user.Name
	}
	profile = &domain.Profile{
		UserID:      userID,
		Role:        domain.RoleStudent,
		DisplayName: displayName,
	}
	if cerr := profiles.Create(ctx, profile); cerr != nil {
		if errors.Is(cerr, domain.ErrConflict) {
			// Lost a provisioning race; the winner's row is the truth.
			return profiles.GetByUserID(ctx, userID)
		}
		return nil, cerr
	}
	return profile, nil
}
