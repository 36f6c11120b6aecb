package usecase

import (
	"context"

	"portfolio_backend/internal/domain/entities"
	"portfolio_backend/internal/usecase/interfaces"
)

// DashboardSummary feeds the admin landing page counters.
type DashboardSummary struct {
	TotalReceiptRequests   int `json:"totalReceiptRequests"`
	PendingReceiptRequests int `json:"pendingReceiptRequests"`
	TotalContacts          int `json:"totalContacts"`
	NewContacts            int `json:"newContacts"`
	ChatSessions           int `json:"chatSessions"`
	ActiveChatSessions     int `json:"activeChatSessions"`
}

type IDashboardUseCase interface {
	Summary(ctx context.Context) (DashboardSummary, error)
}

type DashboardUseCase struct {
	contacts   interfaces.IContactInquiryRepository
	receipts   interfaces.IReceiptRequestRepository
	aggregator ISessionAggregator
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(contacts interfaces.IContactInquiryRepository, receipts interfaces.IReceiptRequestRepository, aggregator ISessionAggregator) *DashboardUseCase {
	return &DashboardUseCase{contacts: contacts, receipts: receipts, aggregator: aggregator}
}

// Summary counts receipts not yet completed as pending, whatever their
// stored status string.
func (u *DashboardUseCase) Summary(ctx context.Context) (DashboardSummary, error) {
	var s DashboardSummary

	receipts, err := u.receipts.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	s.TotalReceiptRequests = len(receipts)
	for _, r := range receipts {
		if !r.IsCompleted() {
			s.PendingReceiptRequests++
		}
	}

	contacts, err := u.contacts.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	s.TotalContacts = len(contacts)
	for _, c := range contacts {
		if c.Status == entities.ContactStatusNew {
			s.NewContacts++
		}
	}

	sessions, err := u.aggregator.Sessions(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	s.ChatSessions = len(sessions)
	for _, cs := range sessions {
		if cs.Status == entities.ChatSessionStatusActive {
			s.ActiveChatSessions++
		}
	}
	return s, nil
}
