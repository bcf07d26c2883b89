package service

import (
	"context"
	"fmt"

	"clubhub-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendGridEmailService mirrors selected notifications to email. An empty API
// key turns every send into a logged no-op so local setups need no account.
type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendGridEmailService{apiKey: apiKey, fromEmail: fromEmail, fromName: fromName}
}

func (s *sendGridEmailService) SendManagerWelcome(ctx context.Context, toEmail, clubName string) error {
	subject := fmt.Sprintf("Welcome to the club platform: %s", clubName)
	body := fmt.Sprintf("The club %q has been approved. A manager account was created for this address; the initial password was delivered to the applicant on the platform.", clubName)
	return s.send(toEmail, subject, body)
}

func (s *sendGridEmailService) SendFounderInvite(ctx context.Context, toEmail, clubName, inviterName string) error {
	subject := fmt.Sprintf("Founder invitation: %s", clubName)
	body := fmt.Sprintf("%s invited you as a founder of %q. Log in to respond to the invitation.", inviterName, clubName)
	return s.send(toEmail, subject, body)
}

func (s *sendGridEmailService) send(to, subject, plainText string) error {
	if s.apiKey == "" {
		logger.Debug("email disabled, skipping send", "to", to, "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
