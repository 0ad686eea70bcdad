package service

import (
	"context"
	"fmt"
	"io"

	"internship-board-backend/internal/domain"
	"internship-board-backend/internal/logger"
	"internship-board-backend/internal/repository"
	"internship-board-backend/internal/storage"

	"github.com/google/uuid"
)

type resumeService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	store       storage.StorageInterface
}

func NewResumeService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository, store storage.StorageInterface) ResumeService {
	return &resumeService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		store:       store,
	}
}

func (s *resumeService) Upload(ctx context.Context, userID int32, filename, contentType string, r io.Reader) (string, error) {
	if contentType != "application/pdf" {
		return "", domain.NewValidationError("resume", "resume must be a PDF")
	}

	profile, err := getOrProvisionProfile(ctx, s.profileRepo, s.userRepo, userID)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("resumes/%d/%s.pdf", userID, uuid.New().String())
	written, err := s.store.SaveFile(ctx, key, r)
	if err != nil {
		return "", err
	}
	logger.Info("Resume stored", "user_id", userID, "key", key, "bytes", written)

	// Replace the previous upload, if any, after the new one is safely
	// written.
	oldKey := profile.ResumeKey
	profile.ResumeKey = key
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		_ = s.store.DeleteFile(ctx, key)
		return "", err
	}
	if oldKey != "" {
		if err := s.store.DeleteFile(ctx, oldKey); err != nil {
			logger.Warn("Failed to remove previous resume", "user_id", userID, "key", oldKey, "error", err)
		}
	}

	return key, nil
}

func (s *resumeService) Download(ctx context.Context, userID int32) (io.ReadCloser, string, error) {
	profile, err := getOrProvisionProfile(ctx, s.profileRepo, s.userRepo, userID)
	if err != nil {
		return nil, "", err
	}
	if profile.ResumeKey == "" {
		return nil, "", domain.ErrNotFound
	}
	reader, err := s.store.ReadFile(ctx, profile.ResumeKey)
	if err != nil {
		return nil, "", domain.ErrNotFound
	}
	return reader, profile.ResumeKey, nil
}

func (s *resumeService) Delete(ctx context.Context, userID int32) error {
	profile, err := getOrProvisionProfile(ctx, s.profileRepo, s.userRepo, userID)
	if err != nil {
		return err
	}
	if profile.ResumeKey == "" {
		return domain.ErrNotFound
	}
	key := profile.ResumeKey
	profile.ResumeKey = ""
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return err
	}
	return s.store.DeleteFile(ctx, key)
}
