package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"

	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

// Mailer delivers one-time codes. Delivery failures are reported to the
// caller; they never roll back an already-stored code.
type Mailer interface {
	SendOTP(ctx context.Context, to, code string) error
}

type smtpMailer struct {
	config utils.EmailConfig
	log    *zap.Logger
}

func NewSMTPMailer(config utils.EmailConfig, log *zap.Logger) Mailer {
	return &smtpMailer{
		config: config,
		log:    log.With(zap.String("component", "mailer")),
	}
}

func (m *smtpMailer) SendOTP(ctx context.Context, to, code string) error {
	from := m.config.From
	if from == "" {
		from = m.config.User
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: Verification OTP\r\n\r\nYour OTP for email verification is: %s\r\n",
		from, to, code)

	if err := m.send(from, to, msg); err != nil {
		m.log.Error("Failed to send OTP email",
			zap.Error(err),
			zap.String("to", to),
		)
		return fmt.Errorf("send OTP email to %s: %w", to, err)
	}

	m.log.Info("OTP email sent", zap.String("to", to))
	return nil
}

func (m *smtpMailer) send(from, to, msg string) error {
	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)
	auth := smtp.PlainAuth("", m.config.User, m.config.Password, m.config.Host)

	if m.config.Port == 465 {
		return m.sendTLS(addr, auth, from, to, msg)
	}

	c, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsConfig := &tls.Config{ServerName: m.config.Host}
		if err := c.StartTLS(tlsConfig); err != nil {
			return err
		}
	}
	if err := c.Auth(auth); err != nil {
		return err
	}
	if err := c.Mail(from); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	wc, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := wc.Write([]byte(msg)); err != nil {
		return err
	}
	if err := wc.Close(); err != nil {
		return err
	}
	return c.Quit()
}

// sendTLS handles implicit-TLS servers (port 465), where the TLS handshake
// happens before any SMTP command.
func (m *smtpMailer) sendTLS(addr string, auth smtp.Auth, from, to, msg string) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: m.config.Host})
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, m.config.Host)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.Auth(auth); err != nil {
		return err
	}
	if err := c.Mail(from); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	wc, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := wc.Write([]byte(msg)); err != nil {
		return err
	}
	if err := wc.Close(); err != nil {
		return err
	}
	return c.Quit()
}
