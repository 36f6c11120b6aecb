package notification

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"portfolio_backend/internal/domain/entities"
	"portfolio_backend/internal/infrastructure/config"
	"portfolio_backend/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrEmailNotConfigured = errors.New("email service not properly configured")

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// EmailNotifier mails the admin when a visitor writes in the chat.
type EmailNotifier struct {
	cfg      config.EmailConfig
	logger   *zap.Logger
	sendMail sendMailFunc
}

var _ interfaces.INotifier = (*EmailNotifier)(nil)

func NewEmailNotifier(cfg config.EmailConfig, logger *zap.Logger) *EmailNotifier {
	return &EmailNotifier{cfg: cfg, logger: logger.Named("notification"), sendMail: smtp.SendMail}
}

func (n *EmailNotifier) NotifyChatMessage(ctx context.Context, m entities.ChatMessage) error {
	subject := "New chat message from session " + shortSessionID(m.SessionID)
	body := fmt.Sprintf("Session: %s\r\nSent: %s\r\n\r\n%s\r\n", m.SessionID, m.CreatedAt.UTC().Format("2006-01-02 15:04:05 MST"), m.Message)

	if !n.cfg.Enabled {
		n.logger.Info("[chat][notifier] email disabled, chat message not mailed",
			zap.String("session_id", m.SessionID),
			zap.String("subject", subject),
		)
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return n.send(n.cfg.AdminEmail, subject, body)
}

func (n *EmailNotifier) send(to, subject, textBody string) error {
	if n.cfg.SMTPHost == "" || n.cfg.Username == "" || n.cfg.Password == "" || to == "" {
		return ErrEmailNotConfigured
	}

	auth := smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.SMTPHost)

	from := n.cfg.FromEmail
	if n.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", n.cfg.FromName, n.cfg.FromEmail)
	}

	message := fmt.Sprintf("From: %s\r\n", from) +
		fmt.Sprintf("To: %s\r\n", to) +
		fmt.Sprintf("Subject: %s\r\n", sanitizeHeader(subject)) +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		textBody

	addr := fmt.Sprintf("%s:%d", n.cfg.SMTPHost, n.cfg.SMTPPort)
	if err := n.sendMail(addr, auth, n.cfg.FromEmail, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

func shortSessionID(id string) string {
	if len(id) > 8 {
		return id[len(id)-8:]
	}
	return id
}

func sanitizeHeader(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}
