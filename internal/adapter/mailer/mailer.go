// Package mailer delivers transactional email.
package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/bud-backend/internal/config"
)

// Message is a plain-text email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender delivers a message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// New returns the sender selected by cfg.Driver.
func New(cfg config.EmailConfig, logger *slog.Logger) (Sender, error) {
	switch cfg.Driver {
	case "log", "":
		return NewLogSender(logger), nil
	case "smtp":
		return NewSMTPSender(cfg, logger), nil
	default:
		return nil, fmt.Errorf("unknown email driver %q", cfg.Driver)
	}
}

// LogSender writes messages to the application log instead of delivering them.
type LogSender struct {
	log *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{log: logger.With("adapter", "mailer_log")}
}

func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.log.InfoContext(ctx, "email",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("body", msg.Body),
	)
	return nil
}

// SMTPSender delivers messages through an SMTP relay using PLAIN auth.
type SMTPSender struct {
	addr string
	host string
	from string
	auth smtp.Auth
	log  *slog.Logger

	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
	now  func() time.Time
}

func NewSMTPSender(cfg config.EmailConfig, logger *slog.Logger) *SMTPSender {
	var a smtp.Auth
	if cfg.SMTPUsername != "" {
		a = smtp.PlainAuth("", cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPHost)
	}
	return &SMTPSender{
		addr: net.JoinHostPort(cfg.SMTPHost, strconv.Itoa(cfg.SMTPPort)),
		host: cfg.SMTPHost,
		from: cfg.From,
		auth: a,
		log:  logger.With("adapter", "mailer_smtp"),
		send: smtp.SendMail,
		now:  time.Now,
	}
}

// Send delivers msg. net/smtp does not accept a context, so cancellation is
// only checked before dialing.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	envelopeFrom := addressOnly(s.from)
	if err := s.send(s.addr, s.auth, envelopeFrom, []string{msg.To}, s.build(msg)); err != nil {
		s.log.ErrorContext(ctx, "smtp send failed", slog.String("to", msg.To), slog.String("error", err.Error()))
		return fmt.Errorf("smtp send: %w", err)
	}

	s.log.InfoContext(ctx, "email sent", slog.String("to", msg.To), slog.String("subject", msg.Subject))
	return nil
}

func (s *SMTPSender) build(msg Message) []byte {
	var b strings.Builder
	b.WriteString("From: " + s.from + "\r\n")
	b.WriteString("To: " + msg.To + "\r\n")
	b.WriteString("Subject: " + msg.Subject + "\r\n")
	b.WriteString("Date: " + s.now().UTC().Format(time.RFC1123Z) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(msg.Body, "\n", "\r\n"))
	return []byte(b.String())
}

// addressOnly extracts "a@b" from "Name <a@b>".
func addressOnly(from string) string {
	if i := strings.LastIndex(from, "<"); i >= 0 {
		if j := strings.LastIndex(from, ">"); j > i {
			return from[i+1 : j]
		}
	}
	return strings.TrimSpace(from)
}
