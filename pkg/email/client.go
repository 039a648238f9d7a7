// Package email sends transactional mail over SMTP via gomail.
package email

import (
	"context"
	"crypto/tls"
	"strings"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/healhub/healhub_backend/config"
	"github.com/healhub/healhub_backend/pkg/apperr"
)

type Message struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Client wraps a gomail SMTP dialer built from central config.
type Client struct {
	cfg config.EmailConfig
}

func New(cfg config.EmailConfig) (*Client, error) {
	if strings.TrimSpace(cfg.SMTP.Host) == "" {
		return nil, apperr.MissingConfig("email.smtp.host")
	}
	if strings.TrimSpace(cfg.From) == "" {
		return nil, apperr.MissingConfig("email.from")
	}
	return &Client{cfg: cfg}, nil
}

// Send delivers the message, respecting the earlier of the context
// deadline and the configured SMTP timeout. DialAndSend has no context
// support, so the dial runs in a goroutine we may abandon.
func (c *Client) Send(ctx context.Context, m Message) error {
	msg, err := buildMessage(c.cfg.From, m)
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- c.newDialer().DialAndSend(msg)
	}()

	wait := c.timeout()
	if dl, ok := ctx.Deadline(); ok {
		if d := time.Until(dl); d > 0 && d < wait {
			wait = d
		}
	}

	select {
	case err := <-done:
		if err != nil {
			return ErrSend{Provider: "gomail/smtp", Err: err}
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return context.DeadlineExceeded
	}
}

func (c *Client) newDialer() *gomail.Dialer {
	d := gomail.NewDialer(c.cfg.SMTP.Host, c.cfg.SMTP.Port, c.cfg.SMTP.Username, c.cfg.SMTP.Password)
	d.SSL = c.cfg.SMTP.UseTLS
	if c.cfg.SMTP.UseTLS {
		d.TLSConfig = &tls.Config{InsecureSkipVerify: true}
	}
	return d
}

func (c *Client) timeout() time.Duration {
	if c.cfg.SMTP.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.cfg.SMTP.TimeoutSeconds) * time.Second
}

func buildMessage(from string, m Message) (*gomail.Message, error) {
	msg := gomail.NewMessage()

	msg.SetHeader("From", strings.TrimSpace(from))

	to := strings.TrimSpace(m.To)
	if to == "" {
		return nil, ErrInvalidMessage{Reason: "recipient is required"}
	}
	msg.SetHeader("To", to)

	subj := strings.TrimSpace(m.Subject)
	if subj == "" {
		return nil, ErrInvalidMessage{Reason: "subject is required"}
	}
	msg.SetHeader("Subject", subj)

	hasText := strings.TrimSpace(m.TextBody) != ""
	hasHTML := strings.TrimSpace(m.HTMLBody) != ""
	switch {
	case hasText && hasHTML:
		msg.SetBody("text/plain", m.TextBody)
		msg.AddAlternative("text/html", m.HTMLBody)
	case hasHTML:
		msg.SetBody("text/html", m.HTMLBody)
	case hasText:
		msg.SetBody("text/plain", m.TextBody)
	default:
		return nil, ErrInvalidMessage{Reason: "either TextBody or HTMLBody is required"}
	}

	return msg, nil
}
