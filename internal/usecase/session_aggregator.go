package usecase

import (
	"context"
	"sort"

	"portfolio_backend/internal/domain/entities"
	"portfolio_backend/internal/usecase/interfaces"
)

// ISessionAggregator summarizes chat messages per session, most recent first.
type ISessionAggregator interface {
	Sessions(ctx context.Context) ([]entities.ChatSession, error)
}

// ScanSessionAggregator folds the whole chatMessages collection on every call,
// so its cost grows with the number of stored messages.
type ScanSessionAggregator struct {
	messages interfaces.IChatMessageRepository
	states   interfaces.IChatSessionStateRepository
}

var _ ISessionAggregator = (*ScanSessionAggregator)(nil)

func NewScanSessionAggregator(messages interfaces.IChatMessageRepository, states interfaces.IChatSessionStateRepository) *ScanSessionAggregator {
	return &ScanSessionAggregator{messages: messages, states: states}
}

func (a *ScanSessionAggregator) Sessions(ctx context.Context) ([]entities.ChatSession, error) {
	msgs, err := a.messages.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	states, err := a.states.List(ctx)
	if err != nil {
		return nil, err
	}
	return AggregateSessions(msgs, states), nil
}

// AggregateSessions groups messages by session id.
//
// A session's status is its explicit state when one exists, else the marker
// on its most recent marked message, else "active".
func AggregateSessions(msgs []entities.ChatMessage, states []entities.ChatSessionState) []entities.ChatSession {
	type fold struct {
		session    entities.ChatSession
		markerTime int64
		hasMarker  bool
	}

	bySession := make(map[string]*fold)
	for _, m := range msgs {
		f, ok := bySession[m.SessionID]
		if !ok {
			f = &fold{session: entities.ChatSession{SessionID: m.SessionID}}
			bySession[m.SessionID] = f
		}
		f.session.MessageCount++
		if m.CreatedAt.After(f.session.LastMessage) {
			f.session.LastMessage = m.CreatedAt
		}
		if m.Status != "" && (!f.hasMarker || m.CreatedAt.UnixNano() >= f.markerTime) {
			f.session.Status = m.Status
			f.markerTime = m.CreatedAt.UnixNano()
			f.hasMarker = true
		}
	}

	explicit := make(map[string]entities.ChatSessionState, len(states))
	for _, s := range states {
		if current, ok := explicit[s.SessionID]; !ok || s.UpdatedAt.After(current.UpdatedAt) {
			explicit[s.SessionID] = s
		}
	}

	sessions := make([]entities.ChatSession, 0, len(bySession))
	for id, f := range bySession {
		if s, ok := explicit[id]; ok && s.Status != "" {
			f.session.Status = s.Status
		}
		if f.session.Status == "" {
			f.session.Status = entities.ChatSessionStatusActive
		}
		sessions = append(sessions, f.session)
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		if sessions[i].LastMessage.Equal(sessions[j].LastMessage) {
			return sessions[i].SessionID < sessions[j].SessionID
		}
		return sessions[i].LastMessage.After(sessions[j].LastMessage)
	})
	return sessions
}
