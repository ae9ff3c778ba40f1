package services

import (
	"fmt"
	"html"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	"personal-website-api/config"
)

// Mailer delivers best-effort contact notifications. The boolean result is
// advisory: callers log it but never fail the triggering request on it.
type Mailer interface {
	SendContactEmail(name, email, subject, message string) bool
}

type smtpMailer struct {
	cfg *config.Config
}

func NewMailer(cfg *config.Config) Mailer {
	return &smtpMailer{cfg: cfg}
}

const contactEmailHTML = `<!DOCTYPE html>
<html>
<head>
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
.container { max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f9f9f9; }
.header { background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); color: white; padding: 20px; text-align: center; border-radius: 5px 5px 0 0; }
.content { background-color: white; padding: 30px; border-radius: 0 0 5px 5px; }
.field { margin-bottom: 20px; }
.field-label { font-weight: bold; color: #667eea; margin-bottom: 5px; }
.field-value { padding: 10px; background-color: #f5f5f5; border-left: 3px solid #667eea; border-radius: 3px; white-space: pre-wrap; word-wrap: break-word; }
.footer { margin-top: 20px; padding-top: 20px; border-top: 1px solid #eee; font-size: 12px; color: #999; text-align: center; }
</style>
</head>
<body>
<div class="container">
<div class="header"><h1>New Contact Form Submission</h1></div>
<div class="content">
<div class="field"><div class="field-label">Name:</div><div class="field-value">%s</div></div>
<div class="field"><div class="field-label">Email:</div><div class="field-value"><a href="mailto:%s">%s</a></div></div>
<div class="field"><div class="field-label">Subject:</div><div class="field-value">%s</div></div>
<div class="field"><div class="field-label">Message:</div><div class="field-value">%s</div></div>
<div class="footer">Sent from your personal website contact form</div>
</div>
</div>
</body>
</html>`

const contactEmailText = `New Contact Form Submission
============================

Name: %s
Email: %s
Subject: %s

Message:
%s

---
Sent from your personal website contact form`

func (m *smtpMailer) SendContactEmail(name, email, subject, message string) bool {
	if !m.cfg.EnableEmail || m.cfg.SMTPUser == "" || m.cfg.SMTPPassword == "" {
		logrus.Warn("Email is not enabled or not configured properly")
		return false
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.EmailFrom)
	msg.SetHeader("To", m.cfg.EmailTo)
	msg.SetHeader("Reply-To", email)
	msg.SetHeader("Subject", "Contact Form: "+subject)
	msg.SetBody("text/plain", fmt.Sprintf(contactEmailText, name, email, subject, message))
	msg.AddAlternative("text/html", fmt.Sprintf(contactEmailHTML,
		html.EscapeString(name),
		html.EscapeString(email), html.EscapeString(email),
		html.EscapeString(subject),
		html.EscapeString(message),
	))

	dialer := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.SMTPUser, m.cfg.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		logrus.WithError(err).Error("Failed to send contact email")
		return false
	}

	logrus.WithField("to", m.cfg.EmailTo).Info("Contact email sent")
	return true
}
