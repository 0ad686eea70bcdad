package service

import (
	"context"
	"testing"

	"internship-board-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newListingSvc() (*MockListingRepo, *MockProfileRepo, *MockUserRepo, ListingService) {
	listingRepo := new(MockListingRepo)
	profileRepo := new(MockProfileRepo)
	userRepo := new(MockUserRepo)
	return listingRepo, profileRepo, userRepo, NewListingService(listingRepo, profileRepo, userRepo)
}

func validListingInput() ListingInput {
	return ListingInput{
		Title:          "Summer Research Internship",
		CompanyName:    "Robotics Lab",
		Location:       "Building 7",
		Stipend:        "1200/month",
		Deadline:       "2026-10-01",
		RequiredSkills: "Go, SQL",
		Description:    "Assist with data pipeline work.",
	}
}

func TestListingService_CreateListing(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		listingRepo, profileRepo, _, svc := newListingSvc()
		profileRepo.On("GetByUserID", ctx, int32(20)).Return(&domain.Profile{UserID: 20, Role: domain.RoleFaculty}, nil)
		listingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Listing")).Return(nil)

		listing, err := svc.CreateListing(ctx, 20, validListingInput())
		assert.NoError(t, err)
		assert.Equal(t, int32(20), listing.FacultyID)
		assert.NotNil(t, listing.Deadline)
		assert.Equal(t, "2026-10-01", listing.Deadline.Format("2006-01-02"))
	})

	t.Run("StudentForbidden", func(t *testing.T) {
		listingRepo, profileRepo, _, svc := newListingSvc()
		profileRepo.On("GetByUserID", ctx, int32(10)).Return(&domain.Profile{UserID: 10, Role: domain.RoleStudent}, nil)

		_, err := svc.CreateListing(ctx, 10, validListingInput())
		assert.ErrorIs(t, err, domain.ErrForbidden)
		listingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("MissingTitle", func(t *testing.T) {
		_, profileRepo, _, svc := newListingSvc()
		profileRepo.On("GetByUserID", ctx, int32(20)).Return(&domain.Profile{UserID: 20, Role: domain.RoleFaculty}, nil)

		input := validListingInput()
		input.Title = ""
		_, err := svc.CreateListing(ctx, 20, input)
		var vErr *domain.ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "title")
	})

	t.Run("BadDeadline", func(t *testing.T) {
		_, profileRepo, _, svc := newListingSvc()
		profileRepo.On("GetByUserID", ctx, int32(20)).Return(&domain.Profile{UserID: 20, Role: domain.RoleFaculty}, nil)

		input := validListingInput()
		input.Deadline = "next friday"
		_, err := svc.CreateListing(ctx, 20, input)
		var vErr *domain.ValidationError
		assert.ErrorAs(t, err, &vErr)
	})

	t.Run("NoDeadlineIsAllowed", func(t *testing.T) {
		listingRepo, profileRepo, _, svc := newListingSvc()
		profileRepo.On("GetByUserID", ctx, int32(20)).Return(&domain.Profile{UserID: 20, Role: domain.RoleFaculty}, nil)
		listingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Listing")).Return(nil)

		input := validListingInput()
		input.Deadline = ""
		listing, err := svc.CreateListing(ctx, 20, input)
		assert.NoError(t, err)
		assert.Nil(t, listing.Deadline)
	})
}

func TestListingService_GetListing(t *testing.T) {
	ctx := context.Background()

	t.Run("PopulatesPoster", func(t *testing.T) {
		listingRepo, _, userRepo, svc := newListingSvc()
		listingRepo.On("GetByID", ctx, int32(5)).Return(&domain.Listing{ID: 5, FacultyID: 20}, nil)
		userRepo.On("GetByID", ctx, int32(20)).Return(&domain.User{ID: 20, Name: "Prof"}, nil)

		listing, err := svc.GetListing(ctx, 5)
		assert.NoError(t, err)
		assert.NotNil(t, listing.Faculty)
		assert.Equal(t, "Prof", listing.Faculty.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		listingRepo, _, _, svc := newListingSvc()
		listingRepo.On("GetByID", ctx, int32(404)).Return(nil, domain.ErrNotFound)

		_, err := svc.GetListing(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestListingService_ListMyListings(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		listingRepo, profileRepo, _, svc := newListingSvc()
		profileRepo.On("GetByUserID", ctx, int32(20)).Return(&domain.Profile{UserID: 20, Role: domain.RoleFaculty}, nil)
		listingRepo.On("ListByFaculty", ctx, int32(20)).Return([]domain.Listing{{ID: 1}, {ID: 2}}, nil)

		listings, err := svc.ListMyListings(ctx, 20)
		assert.NoError(t, err)
		assert.Len(t, listings, 2)
	})

	t.Run("StudentForbidden", func(t *testing.T) {
		_, profileRepo, _, svc := newListingSvc()
		profileRepo.On("GetByUserID", ctx, int32(10)).Return(&domain.Profile{UserID: 10, Role: domain.RoleStudent}, nil)

		_, err := svc.ListMyListings(ctx, 10)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
