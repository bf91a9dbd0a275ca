package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"gopkg.in/gomail.v2"
)

// VoucherNotification carries everything the admin alert needs. UserID is
// "Unknown" when the voucher's email does not resolve to a registered user.
type VoucherNotification struct {
	UserEmail   string
	VoucherCode string
	UserID      string
	CreatedAt   time.Time
}

// Mailer delivers a voucher notification. Implementations must be safe for
// use from the dispatcher goroutine.
type Mailer interface {
	Send(n VoucherNotification) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	// To is the admin mailbox that receives every alert.
	To string
}

// SMTPMailer sends the alert over SMTP with implicit TLS (port 465 style).
type SMTPMailer struct {
	cfg    SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.SSL = cfg.Port == 465
	return &SMTPMailer{cfg: cfg, dialer: d}
}

var bodyTemplate = template.Must(template.New("voucher").Parse(`
<html>
  <body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h1 style="font-size: 24px;">New voucher registered</h1>
    <div style="background: #f8f9fa; padding: 20px; border-radius: 10px;">
      <p><strong>Voucher code:</strong> <code>{{.VoucherCode}}</code></p>
      <p><strong>User email:</strong> {{.UserEmail}}</p>
      <p><strong>User ID:</strong> {{.UserID}}</p>
      <p><strong>Registered at:</strong> {{.CreatedAt.Format "02/01/2006 15:04:05"}}</p>
    </div>
    <p>Review the admin panel to approve or reject this voucher.</p>
  </body>
</html>
`))

func (m *SMTPMailer) Send(n VoucherNotification) error {
	var body bytes.Buffer
	if err := bodyTemplate.Execute(&body, n); err != nil {
		return fmt.Errorf("render notification body: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.Username)
	msg.SetHeader("To", m.cfg.To)
	msg.SetHeader("Subject", fmt.Sprintf("NEW VOUCHER REGISTERED - %s", n.VoucherCode))
	msg.SetBody("text/html", body.String())

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send notification for voucher %s: %w", n.VoucherCode, err)
	}
	return nil
}
