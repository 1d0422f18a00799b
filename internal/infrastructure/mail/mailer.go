package mail

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	gomail "github.com/wneessen/go-mail"

	"github.com/bookline/gateway/internal/infrastructure/config"
)

const confirmationSubject = "Confirm Your Subscription to Our Mailing List"

type Mailer struct {
	cfg config.SMTPConfig
}

func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendConfirmation delivers the double-opt-in confirmation mail.
func (m *Mailer) SendConfirmation(ctx context.Context, to, token string) error {
	if !m.cfg.Configured() {
		return fmt.Errorf("smtp credentials not configured")
	}

	link := fmt.Sprintf("%s/confirm-subscription?token=%s",
		strings.TrimRight(m.cfg.AppBaseURL, "/"), url.QueryEscape(token))

	from := m.cfg.From
	if from == "" {
		from = m.cfg.Username
	}

	msg := gomail.NewMsg()
	if err := msg.From(from); err != nil {
		return fmt.Errorf("setting from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("setting recipient: %w", err)
	}
	msg.Subject(confirmationSubject)
	msg.SetBodyString(gomail.TypeTextPlain, confirmationText(link))
	msg.AddAlternativeString(gomail.TypeTextHTML, confirmationHTML(link))

	opts := []gomail.Option{
		gomail.WithPort(m.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.Username),
		gomail.WithPassword(m.cfg.Password),
	}
	if m.cfg.Port == 465 {
		opts = append(opts, gomail.WithSSL())
	}

	client, err := gomail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("creating smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending confirmation email: %w", err)
	}
	return nil
}

func confirmationText(link string) string {
	return "Hello,\n\n" +
		"Thank you for subscribing to our mailing list!\n\n" +
		"Please click the link below to confirm your subscription:\n\n" +
		link + "\n\n" +
		"If you did not subscribe to this mailing list, you can ignore this email.\n\n" +
		"Thank you,\nThe Bookline Team"
}

func confirmationHTML(link string) string {
	return "<p>Hello,</p>" +
		"<p>Thank you for subscribing to our mailing list!</p>" +
		"<p>Please click the link below to confirm your subscription:</p>" +
		fmt.Sprintf(`<p><a href="%s">Confirm My Subscription</a></p>`, link) +
		"<p>If you did not subscribe to this mailing list, you can ignore this email.</p>" +
		"<p>Thank you,<br>The Bookline Team</p>"
}
