package jobs

import (
	"context"
	"fmt"
	"time"

	"internship-board-backend/internal/domain"
	"internship-board-backend/internal/logger"
)

// SendDeadlineReminders notifies students whose pending applications sit on
// listings closing within the configured window.
func (jr *JobRunner) SendDeadlineReminders() {
	jr.runWithRecovery("SendDeadlineReminders", func() {
		ctx := context.Background()
		now := time.Now()
		window := time.Duration(jr.config.Scheduler.ReminderWindowDays) * 24 * time.Hour

		apps, err := jr.store.ListPendingByDeadline(ctx, now, now.Add(window))
		if err != nil {
			logger.Error("Failed to list applications for deadline reminders", "error", err)
			return
		}

		for _, app := range apps {
			if app.Student == nil || app.Listing == nil {
				continue
			}
			daysLeft, ok := app.Listing.DaysRemaining(now)
			if !ok {
				continue
			}

			note := &domain.Notification{
				UserID:  app.StudentID,
				Title:   "Deadline Approaching",
				Message: fmt.Sprintf("The deadline for %s is in %d day(s)", app.Listing.Title, daysLeft),
				Attributes: map[string]string{
					"type":       "DEADLINE_REMINDER",
					"listing_id": fmt.Sprintf("%d", app.ListingID),
				},
			}
			if err := jr.store.NotificationRepository.Create(ctx, note); err != nil {
				logger.Warn("Failed to create reminder notification", "user_id", app.StudentID, "error", err)
			}
			if err := jr.emailSvc.SendDeadlineReminder(ctx, app.Student.Email, app.Student.Name, app.Listing.Title, daysLeft); err != nil {
				logger.Warn("Failed to send reminder email", "user_id", app.StudentID, "error", err)
			}
		}

		logger.Info("Deadline reminders processed", "count", len(apps))
	})
}

// SendPendingDigest mails each faculty member a count of applications still
// awaiting a decision.
func (jr *JobRunner) SendPendingDigest() {
	jr.runWithRecovery("SendPendingDigest", func() {
		ctx := context.Background()

		counts, err := jr.store.CountPendingByFaculty(ctx)
		if err != nil {
			logger.Error("Failed to count pending applications", "error", err)
			return
		}

		for facultyID, count := range counts {
			faculty, err := jr.store.UserRepository.GetByID(ctx, facultyID)
			if err != nil {
				logger.Warn("Failed to load faculty for digest", "faculty_id", facultyID, "error", err)
				continue
			}

			note := &domain.Notification{
				UserID:  facultyID,
				Title:   "Pending Applications",
				Message: fmt.Sprintf("You have %d pending application(s) awaiting review", count),
				Attributes: map[string]string{
					"type": "PENDING_DIGEST",
				},
			}
			if err := jr.store.NotificationRepository.Create(ctx, note); err != nil {
				logger.Warn("Failed to create digest notification", "faculty_id", facultyID, "error", err)
			}
			if err := jr.emailSvc.SendPendingDigest(ctx, faculty.Email, faculty.Name, count); err != nil {
				logger.Warn("Failed to send digest email", "faculty_id", facultyID, "error", err)
			}
		}

		logger.Info("Pending digest processed", "faculty_count", len(counts))
	})
}
