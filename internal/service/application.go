package service

import (
	"context"
	"errors"
	"fmt"

	"internship-board-backend/internal/domain"
	"internship-board-backend/internal/logger"
	"internship-board-backend/internal/repository"
)

type applicationService struct {
	appRepo     repository.ApplicationRepository
	listingRepo repository.ListingRepository
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	noteRepo    repository.NotificationRepository
	emailSvc    EmailService
}

func NewApplicationService(
	appRepo repository.ApplicationRepository,
	listingRepo repository.ListingRepository,
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
) ApplicationService {
	return &applicationService{
		appRepo:     appRepo,
		listingRepo: listingRepo,
		profileRepo: profileRepo,
		userRepo:    userRepo,
		noteRepo:    noteRepo,
		emailSvc:    emailSvc,
	}
}

func (s *applicationService) Apply(ctx context.Context, studentID, listingID int32) (*domain.Application, error) {
	profile, err := getOrProvisionProfile(ctx, s.profileRepo, s.userRepo, studentID)
	if err != nil {
		return nil, err
	}
	if profile.Role != domain.RoleStudent {
		return nil, domain.ErrForbidden
	}

	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	// Applying twice returns the existing record unchanged.
	existing, err := s.appRepo.GetByStudentAndListing(ctx, studentID, listingID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	app := &domain.Application{
		StudentID: studentID,
		ListingID: listingID,
		Status:    domain.ApplicationStatusPending,
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			// A concurrent request won the insert race; the unique
			// constraint guarantees exactly one row exists.
			return s.appRepo.GetByStudentAndListing(ctx, studentID, listingID)
		}
		return nil, err
	}

	s.notifyFacultyOfApplication(ctx, listing, app)

	return app, nil
}

func (s *applicationService) Decide(ctx context.Context, facultyID, applicationID int32, target domain.ApplicationStatus) (*domain.Application, error) {
	if !target.Decided() {
		return nil, domain.NewValidationError("status", "status must be APPROVED or REJECTED")
	}

	profile, err := getOrProvisionProfile(ctx, s.profileRepo, s.userRepo, facultyID)
	if err != nil {
		return nil, err
	}
	if profile.Role != domain.RoleFaculty {
		return nil, domain.ErrForbidden
	}

	app, err := s.appRepo.GetByIDForFaculty(ctx, applicationID, facultyID)
	if err != nil {
		return nil, err
	}

	if app.Status == target {
		// Re-deciding with the same status is a harmless retry.
		return app, nil
	}
	if app.Status.Decided() {
		return nil, domain.ErrConflict
	}

	if err := s.appRepo.UpdateStatus(ctx, app.ID, target); err != nil {
		return nil, err
	}
	app.Status = target

	s.notifyStudentOfDecision(ctx, app)

	return app, nil
}

func (s *applicationService) ListForStudent(ctx context.Context, studentID int32) ([]domain.Application, error) {
	profile, err := getOrProvisionProfile(ctx, s.profileRepo, s.userRepo, studentID)
	if err != nil {
		return nil, err
	}
	if profile.Role != domain.RoleStudent {
		return nil, domain.ErrForbidden
	}
	return s.appRepo.ListByStudent(ctx, studentID)
}

func (s *applicationService) ListPendingForFaculty(ctx context.Context, facultyID int32) ([]domain.Application, error) {
	profile, err := getOrProvisionProfile(ctx, s.profileRepo, s.userRepo, facultyID)
	if err != nil {
		return nil, err
	}
	if profile.Role != domain.RoleFaculty {
		return nil, domain.ErrForbidden
	}
	return s.appRepo.ListPendingByFaculty(ctx, facultyID)
}

// Notification side effects are best-effort: a delivery failure never fails
// the operation that triggered it.

func (s *applicationService) notifyFacultyOfApplication(ctx context.Context, listing *domain.Listing, app *domain.Application) {
	faculty, err := s.userRepo.GetByID(ctx, listing.FacultyID)
	if err != nil {
		logger.Warn("Could not load listing owner for notification", "listing_id", listing.ID, "error", err)
		return
	}
	student, err := s.userRepo.GetByID(ctx, app.StudentID)
	if err != nil {
		logger.Warn("Could not load applicant for notification", "application_id", app.ID, "error", err)
		return
	}

	note := &domain.Notification{
		UserID:  faculty.ID,
		Title:   "New Application",
		Message: fmt.Sprintf("%s applied to %s", student.Name, listing.Title),
		Attributes: map[string]string{
			"type":           "APPLICATION_RECEIVED",
			"application_id": fmt.Sprintf("%d", app.ID),
			"listing_id":     fmt.Sprintf("%d", listing.ID),
		},
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.Warn("Failed to create notification", "user_id", faculty.ID, "error", err)
	}
	if err := s.emailSvc.SendApplicationReceived(ctx, faculty.Email, faculty.Name, student.Name, listing.Title); err != nil {
		logger.Warn("Failed to send application email", "user_id", faculty.ID, "error", err)
	}
}

func (s *applicationService) notifyStudentOfDecision(ctx context.Context, app *domain.Application) {
	student, err := s.userRepo.GetByID(ctx, app.StudentID)
	if err != nil {
		logger.Warn("Could not load student for decision notification", "application_id", app.ID, "error", err)
		return
	}
	listing, err := s.listingRepo.GetByID(ctx, app.ListingID)
	if err != nil {
		logger.Warn("Could not load listing for decision notification", "application_id", app.ID, "error", err)
		return
	}

	note := &domain.Notification{
		UserID:  student.ID,
		Title:   "Application " + string(app.Status),
		Message: fmt.Sprintf("Your application for %s was %s", listing.Title, app.Status),
		Attributes: map[string]string{
			"type":           "APPLICATION_DECIDED",
			"application_id": fmt.Sprintf("%d", app.ID),
			"status":         string(app.Status),
		},
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.Warn("Failed to create notification", "user_id", student.ID, "error", err)
	}
	if err := s.emailSvc.SendDecisionNotification(ctx, student.Email, student.Name, listing.Title, app.Status); err != nil {
		logger.Warn("Failed to send decision email", "user_id", student.ID, "error", err)
	}
}
