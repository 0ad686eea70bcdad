package service

import (
	"context"
	"time"

	"internship-board-backend/internal/domain"
	"internship-board-backend/internal/repository"
)

type listingService struct {
	listingRepo repository.ListingRepository
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

func NewListingService(listingRepo repository.ListingRepository, profileRepo repository.ProfileRepository, userRepo repository.UserRepository) ListingService {
	return &listingService{
		listingRepo: listingRepo,
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

func (s *listingService) CreateListing(ctx context.Context, facultyID int32, input ListingInput) (*domain.Listing, error) {
	profile, err := getOrProvisionProfile(ctx, s.profileRepo, s.userRepo, facultyID)
	if err != nil {
		return nil, err
	}
	if profile.Role != domain.RoleFaculty {
		return nil, domain.ErrForbidden
	}

	if err := validateStruct(input); err != nil {
		return nil, err
	}

	var deadline *time.Time
	if input.Deadline != "" {
		d, err := time.Parse("2006-01-02", input.Deadline)
		if err != nil {
			return nil, domain.NewValidationError("deadline", "deadline must be a valid date (YYYY-MM-DD)")
		}
		deadline = &d
	}

	listing := &domain.Listing{
		FacultyID:         facultyID,
		Title:             input.Title,
		CompanyName:       input.CompanyName,
		Location:          input.Location,
		Stipend:           input.Stipend,
		Deadline:          deadline,
		RequiredSkills:    input.RequiredSkills,
		Description:       input.Description,
		ExternalApplyLink: input.ExternalApplyLink,
	}
	if err := s.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *listingService) GetListing(ctx context.Context, id int32) (*domain.Listing, error) {
	listing, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if poster, perr := s.userRepo.GetByID(ctx, listing.FacultyID); perr == nil {
		listing.Faculty = poster
	}
	return listing, nil
}

func (s *listingService) ListListings(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	return s.listingRepo.List(ctx, filter)
}

func (s *listingService) ListMyListings(ctx context.Context, facultyID int32) ([]domain.Listing, error) {
	profile, err := getOrProvisionProfile(ctx, s.profileRepo, s.userRepo, facultyID)
	if err != nil {
		return nil, err
	}
	if profile.Role != domain.RoleFaculty {
		return nil, domain.ErrForbidden
	}
	return s.listingRepo.ListByFaculty(ctx, facultyID)
}
