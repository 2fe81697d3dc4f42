package notification

import (
	"gopkg.in/gomail.v2"
)

// EmailClient sends alert mail over SMTP. A missing host disables sending.
type EmailClient struct {
	host     string
	port     int
	user     string
	password string
}

// NewEmailClient creates an EmailClient.
func NewEmailClient(host string, port int, user, password string) *EmailClient {
	return &EmailClient{host: host, port: port, user: user, password: password}
}

// Enabled reports whether SMTP is configured.
func (c *EmailClient) Enabled() bool {
	return c.host != ""
}

// Send delivers one plain-text message to the recipients.
func (c *EmailClient) Send(recipients []string, subject, body string) error {
	if !c.Enabled() || len(recipients) == 0 {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", c.user)
	m.SetHeader("To", recipients...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(c.host, c.port, c.user, c.password)
	return d.DialAndSend(m)
}
