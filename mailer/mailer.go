package mailer

import (
	"fmt"
	"net/smtp"
	"os"
)

// Send delivers a plain-text email through the configured SMTP account.
func Send(toEmail, subject, body string) error {
	from := os.Getenv("EMAIL_USER")
	pass := os.Getenv("EMAIL_PASS")
	if from == "" || pass == "" {
		return fmt.Errorf("EMAIL_USER and EMAIL_PASS must be set")
	}

	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	msg := []byte("Subject: " + subject + "\n\n" + body)

	auth := smtp.PlainAuth("", from, pass, smtpHost)
	return smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{toEmail}, msg)
}
