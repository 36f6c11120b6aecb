package entities

import "time"

type ChatSender string

const (
	ChatSenderUser  ChatSender = "user"
	ChatSenderAdmin ChatSender = "admin"
)

const (
	ChatSessionStatusActive   = "active"
	ChatSessionStatusResolved = "resolved"
)

// ChatMessage belongs to exactly one visitor session.
//
// Status is only ever written by a session-wide bulk update and is empty for
// messages that were never part of one.
type ChatMessage struct {
	ID        string     `json:"id"`
	SessionID string     `json:"sessionId"`
	Message   string     `json:"message"`
	Sender    ChatSender `json:"sender"`
	Status    string     `json:"status,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// ChatSession is derived from chat messages and never stored.
type ChatSession struct {
	SessionID    string    `json:"sessionId"`
	MessageCount int       `json:"messageCount"`
	LastMessage  time.Time `json:"lastMessage"`
	Status       string    `json:"status"`
}

// ChatSessionState is the persisted status of one session.
type ChatSessionState struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}
