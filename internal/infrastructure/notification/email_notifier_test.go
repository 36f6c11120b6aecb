package notification

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"portfolio_backend/internal/domain/entities"
	"portfolio_backend/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func chatMessage() entities.ChatMessage {
	return entities.ChatMessage{
		ID:        "m1",
		SessionID: "session-1234567890",
		Message:   "Is the logo package still available?",
		Sender:    entities.ChatSenderUser,
		CreatedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestEmailNotifier_NotifyChatMessage(t *testing.T) {
	cfg := config.EmailConfig{
		Enabled:    true,
		SMTPHost:   "smtp.example.com",
		SMTPPort:   587,
		Username:   "user",
		Password:   "pass",
		FromEmail:  "site@example.com",
		FromName:   "Portfolio",
		AdminEmail: "owner@example.com",
	}

	t.Run("sends mail", func(t *testing.T) {
		n := NewEmailNotifier(cfg, zap.NewNop())
		var gotAddr string
		var gotTo []string
		var gotMsg string
		n.sendMail = func(addr string, _ smtp.Auth, _ string, to []string, msg []byte) error {
			gotAddr, gotTo, gotMsg = addr, to, string(msg)
			return nil
		}

		require.NoError(t, n.NotifyChatMessage(context.Background(), chatMessage()))
		assert.Equal(t, "smtp.example.com:587", gotAddr)
		assert.Equal(t, []string{"owner@example.com"}, gotTo)
		assert.True(t, strings.Contains(gotMsg, "Subject: New chat message from session 34567890"))
		assert.Contains(t, gotMsg, "Is the logo package still available?")
		assert.Contains(t, gotMsg, "From: Portfolio <site@example.com>")
	})

	t.Run("smtp failure is returned", func(t *testing.T) {
		n := NewEmailNotifier(cfg, zap.NewNop())
		n.sendMail = func(string, smtp.Auth, string, []string, []byte) error { return errors.New("421 busy") }
		err := n.NotifyChatMessage(context.Background(), chatMessage())
		assert.ErrorContains(t, err, "421 busy")
	})

	t.Run("disabled only logs", func(t *testing.T) {
		disabled := cfg
		disabled.Enabled = false
		n := NewEmailNotifier(disabled, zap.NewNop())
		n.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
			t.Fatalf("mail must not be sent when disabled")
			return nil
		}
		assert.NoError(t, n.NotifyChatMessage(context.Background(), chatMessage()))
	})

	t.Run("missing smtp settings", func(t *testing.T) {
		partial := cfg
		partial.Password = ""
		n := NewEmailNotifier(partial, zap.NewNop())
		assert.ErrorIs(t, n.NotifyChatMessage(context.Background(), chatMessage()), ErrEmailNotConfigured)
	})
}
