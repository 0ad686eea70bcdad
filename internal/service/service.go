package service

import (
	"context"
	"io"

	"internship-board-backend/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, string, string, error)
	Login(ctx context.Context, email, password string) (string, string, error)
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
	Logout(ctx context.Context, refresh string) error
}

type ProfileService interface {
	// GetProfile provisions a default student profile when none exists,
	// so accounts created out-of-band still resolve to a role.
	GetProfile(ctx context.Context, userID int32) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, userID int32, update ProfileUpdate) (*domain.Profile, error)
	// AssignRole sets the role for an account that has none. It fails with
	// domain.ErrConflict when a role is already assigned.
	AssignRole(ctx context.Context, userID int32, role domain.Role, displayName string) error
	GetRole(ctx context.Context, userID int32) (domain.Role, error)
}

type ListingService interface {
	CreateListing(ctx context.Context, facultyID int32, input ListingInput) (*domain.Listing, error)
	GetListing(ctx context.Context, id int32) (*domain.Listing, error)
	ListListings(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error)
	ListMyListings(ctx context.Context, facultyID int32) ([]domain.Listing, error)
}

type ApplicationService interface {
	// Apply is idempotent per (student, listing): a repeat call returns the
	// existing application unchanged.
	Apply(ctx context.Context, studentID, listingID int32) (*domain.Application, error)
	Decide(ctx context.Context, facultyID, applicationID int32, target domain.ApplicationStatus) (*domain.Application, error)
	ListForStudent(ctx context.Context, studentID int32) ([]domain.Application, error)
	ListPendingForFaculty(ctx context.Context, facultyID int32) ([]domain.Application, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

type ResumeService interface {
	Upload(ctx context.Context, userID int32, filename string, contentType string, r io.Reader) (string, error)
	Download(ctx context.Context, userID int32) (io.ReadCloser, string, error)
	Delete(ctx context.Context, userID int32) error
}

type EmailService interface {
	SendApplicationReceived(ctx context.Context, facultyEmail, facultyName, studentName, listingTitle string) error
	SendDecisionNotification(ctx context.Context, studentEmail, studentName, listingTitle string, status domain.ApplicationStatus) error
	SendDeadlineReminder(ctx context.Context, studentEmail, studentName, listingTitle string, daysLeft int32) error
	SendPendingDigest(ctx context.Context, facultyEmail, facultyName string, pendingCount int32) error
}

// ProfileUpdate carries the caller-mutable profile attributes.
type ProfileUpdate struct {
	DisplayName    string `json:"display_name" validate:"required,max=120"`
	Department     string `json:"department" validate:"max=120"`
	Major          string `json:"major" validate:"max=120"`
	GraduationYear int32  `json:"graduation_year" validate:"omitempty,gte=1950,lte=2100"`
	Bio            string `json:"bio" validate:"max=2000"`
}

// ListingInput carries the attributes of a new listing. Deadline is an
// optional ISO date; everything else is free text with presence/length
// constraints only.
type ListingInput struct {
	Title             string `json:"title" validate:"required,max=200"`
	CompanyName       string `json:"company_name" validate:"required,max=200"`
	Location          string `json:"location" validate:"required,max=200"`
	Stipend           string `json:"stipend" validate:"max=100"`
	Deadline          string `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
	RequiredSkills    string `json:"required_skills" validate:"required"`
	Description       string `json:"description" validate:"required"`
	ExternalApplyLink string `json:"external_apply_link" validate:"omitempty,url"`
}
