package service

import (
	"context"
	"fmt"

	"internship-board-backend/internal/domain"
	"internship-board-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(ctx context.Context, to, toName, subject, plainText string) error {
	logger.ExternalServiceCall("sendgrid", "send", "to", to, "subject", subject)

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "send", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "send", err)
		return err
	}

	logger.ExternalServiceResult("sendgrid", "send", nil)
	return nil
}

func (s *emailService) SendApplicationReceived(ctx context.Context, facultyEmail, facultyName, studentName, listingTitle string) error {
	subject := fmt.Sprintf("New application for %s", listingTitle)
	body := fmt.Sprintf("Hello %s,\n\n%s has applied to your internship listing \"%s\".\n\nLog in to review the application.\n\nBest regards,\nThe Internship Board Team", facultyName, studentName, listingTitle)
	return s.send(ctx, facultyEmail, facultyName, subject, body)
}

func (s *emailService) SendDecisionNotification(ctx context.Context, studentEmail, studentName, listingTitle string, status domain.ApplicationStatus) error {
	subject := fmt.Sprintf("Your application for %s was %s", listingTitle, status)
	body := fmt.Sprintf("Hello %s,\n\nYour application for \"%s\" has been %s.\n\nBest regards,\nThe Internship Board Team", studentName, listingTitle, status)
	return s.send(ctx, studentEmail, studentName, subject, body)
}

func (s *emailService) SendDeadlineReminder(ctx context.Context, studentEmail, studentName, listingTitle string, daysLeft int32) error {
	subject := fmt.Sprintf("Deadline approaching for %s", listingTitle)
	body := fmt.Sprintf("Hello %s,\n\nThe application deadline for \"%s\" is in %d day(s) and your application is still pending.\n\nBest regards,\nThe Internship Board Team", studentName, listingTitle, daysLeft)
	return s.send(ctx, studentEmail, studentName, subject, body)
}

func (s *emailService) SendPendingDigest(ctx context.Context, facultyEmail, facultyName string, pendingCount int32) error {
	subject := "Pending applications awaiting review"
	body := fmt.Sprintf("Hello %s,\n\nYou have %d pending application(s) awaiting a decision.\n\nBest regards,\nThe Internship Board Team", facultyName, pendingCount)
	return s.send(ctx, facultyEmail, facultyName, subject, body)
}
