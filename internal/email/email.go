package email

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"aplyease_backend/internal/config"
)

// Provider sends the transactional emails the platform produces.
type Provider interface {
	Send(to, subject, htmlBody string) error
	SendWelcome(to, name string) error
	SendPriorityAlert(to string, highPriorityCount int) error
}

// SMTPProvider delivers mail through the configured SMTP relay.
type SMTPProvider struct {
	dialer *gomail.Dialer
	from   string
	name   string
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{
		dialer: gomail.NewDialer(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.SMTPUsername, cfg.Email.SMTPPassword),
		from:   cfg.Email.FromEmail,
		name:   cfg.Email.FromName,
	}
}

func (p *SMTPProvider) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.from, p.name)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

func (p *SMTPProvider) SendWelcome(to, name string) error {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Welcome to AplyEase. Your application specialist will start logging applications for you shortly.</p>",
		name,
	)
	return p.Send(to, "Welcome to AplyEase", body)
}

// SendPriorityAlert notifies an admin that clients currently need attention.
func (p *SMTPProvider) SendPriorityAlert(to string, highPriorityCount int) error {
	body := fmt.Sprintf(
		"<p>%d client(s) are currently flagged as high priority (low quota or no recent activity).</p><p>Check the performance dashboard.</p>",
		highPriorityCount,
	)
	return p.Send(to, "AplyEase: high-priority clients need attention", body)
}

// MockProvider records sent mail instead of delivering it. Used in tests and
// when SMTP is not configured.
type MockProvider struct {
	Sent []MockMessage
}

type MockMessage struct {
	To      string
	Subject string
	Body    string
}

func (p *MockProvider) Send(to, subject, htmlBody string) error {
	p.Sent = append(p.Sent, MockMessage{To: to, Subject: subject, Body: htmlBody})
	return nil
}

func (p *MockProvider) SendWelcome(to, name string) error {
	return p.Send(to, "Welcome to AplyEase", name)
}

func (p *MockProvider) SendPriorityAlert(to string, highPriorityCount int) error {
	return p.Send(to, "AplyEase: high-priority clients need attention", fmt.Sprintf("%d", highPriorityCount))
}
