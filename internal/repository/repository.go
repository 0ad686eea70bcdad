package repository

import (
	"context"
	"time"

	"internship-board-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	// GetByUserID returns domain.ErrProfileMissing when no profile row
	// exists for the user.
	GetByUserID(ctx context.Context, userID int32) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
}

type ListingRepository interface {
	Create(ctx context.Context, listing *domain.Listing) error
	GetByID(ctx context.Context, id int32) (*domain.Listing, error)
	List(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error)
	ListByFaculty(ctx context.Context, facultyID int32) ([]domain.Listing, error)
}

type ApplicationRepository interface {
	// Create inserts a new PENDING application. A violation of the
	// (student_id, listing_id) unique constraint surfaces as
	// domain.ErrConflict so callers can fall back to the existing row.
	Create(ctx context.Context, app *domain.Application) error
	GetByStudentAndListing(ctx context.Context, studentID, listingID int32) (*domain.Application, error)
	// GetByIDForFaculty resolves an application only when its listing is
	// owned by facultyID; otherwise domain.ErrNotFound, whether the row
	// exists or not.
	GetByIDForFaculty(ctx context.Context, id, facultyID int32) (*domain.Application, error)
	UpdateStatus(ctx context.Context, id int32, status domain.ApplicationStatus) error
	ListByStudent(ctx context.Context, studentID int32) ([]domain.Application, error)
	ListPendingByFaculty(ctx context.Context, facultyID int32) ([]domain.Application, error)
	// ListPendingByDeadline returns PENDING applications whose listing
	// deadline falls inside [from, to], with student and listing populated.
	ListPendingByDeadline(ctx context.Context, from, to time.Time) ([]domain.Application, error)
	// CountPendingByFaculty returns pending-application counts keyed by
	// listing owner.
	CountPendingByFaculty(ctx context.Context) (map[int32]int32, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}
