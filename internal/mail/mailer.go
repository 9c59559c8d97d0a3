package mail

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	gomail "github.com/wneessen/go-mail"

	"github.com/piyussh25/misinformation-checker/internal/logger"
	"github.com/piyussh25/misinformation-checker/internal/model"
)

var _ model.Mailer = (*SMTP)(nil)

// SMTP sends transactional mail through a single reusable SMTP client.
// Delivery failures are returned to the caller; there are no retries.
type SMTP struct {
	client          *gomail.Client
	from            string
	frontendBaseURL string
	logger          *logger.Logger
}

// Config contains SMTP connection parameters and the frontend base URL
// that password-reset links are built against.
type Config struct {
	Host            string
	Port            int
	Username        string
	Password        string
	From            string
	FrontendBaseURL string
}

// NewSMTP creates an SMTP mailer.
func NewSMTP(conf Config, logger *logger.Logger) (*SMTP, error) {
	opts := []gomail.Option{
		gomail.WithPort(conf.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if conf.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(conf.Username),
			gomail.WithPassword(conf.Password),
		)
	}

	client, err := gomail.NewClient(conf.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return &SMTP{
		client:          client,
		from:            conf.From,
		frontendBaseURL: conf.FrontendBaseURL,
		logger:          logger,
	}, nil
}

// SendUsernameReminder mails the user their registered username.
func (s *SMTP) SendUsernameReminder(ctx context.Context, email, username string) error {
	body := fmt.Sprintf("Hi,\n\nYour username is: %s\n\nIf you did not request this, you can ignore this message.\n", username)

	return s.send(ctx, email, "Your username", body)
}

// SendPasswordResetLink mails a reset link embedding the reset token as a
// query parameter against the configured frontend base URL.
func (s *SMTP) SendPasswordResetLink(ctx context.Context, email, resetToken string) error {
	link := resetLink(s.frontendBaseURL, resetToken)
	body := fmt.Sprintf("Hi,\n\nUse the link below to reset your password. The link expires in one hour.\n\n%s\n\nIf you did not request this, you can ignore this message.\n", link)

	return s.send(ctx, email, "Password reset", body)
}

func (s *SMTP) send(ctx context.Context, to, subject, body string) error {
	m := gomail.NewMsg()
	if err := m.From(s.from); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := m.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	m.Subject(subject)
	m.SetBodyString(gomail.TypeTextPlain, body)

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	s.logger.Info("Mailer: message sent", "subject", subject)

	return nil
}

func resetLink(baseURL, token string) string {
	return fmt.Sprintf("%s/reset-password?token=%s",
		strings.TrimRight(baseURL, "/"), url.QueryEscape(token))
}
