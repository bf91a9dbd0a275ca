package notify

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBodyTemplate(t *testing.T) {
	n := VoucherNotification{
		UserEmail:   "a@x.com",
		VoucherCode: "CV-123",
		UserID:      "Unknown",
		CreatedAt:   time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC),
	}

	var body bytes.Buffer
	err := bodyTemplate.Execute(&body, n)
	assert.NoError(t, err)

	html := body.String()
	assert.Contains(t, html, "CV-123")
	assert.Contains(t, html, "a@x.com")
	assert.Contains(t, html, "Unknown")
	assert.Contains(t, html, "17/05/2024 09:30:00")
}

func TestNewSMTPMailerSSL(t *testing.T) {
	m := NewSMTPMailer(SMTPConfig{Host: "smtp.gmail.com", Port: 465})
	assert.True(t, m.dialer.SSL)

	m = NewSMTPMailer(SMTPConfig{Host: "localhost", Port: 587})
	assert.False(t, m.dialer.SSL)
}
