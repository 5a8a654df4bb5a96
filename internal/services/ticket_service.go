package services

import (
	"calipollo/internal/domain"
	"calipollo/internal/repos"

	"github.com/google/uuid"
)

// TicketService submits and reads support tickets. Status transitions
// belong to the support desk (admin surface), never to the customer.
type TicketService struct {
	Tickets *repos.TicketRepo
}

func NewTicketService(t *repos.TicketRepo) *TicketService { return &TicketService{Tickets: t} }

func (s *TicketService) Create(sessionID string, u *domain.User, subject, description, category, priority string) (domain.SupportTicket, error) {
	t := domain.SupportTicket{
		ID:          uuid.NewString(),
		SessionID:   sessionID,
		Subject:     subject,
		Description: description,
		Category:    category,
		Priority:    priority,
		Status:      "open",
	}
	if u != nil {
		t.UserID = u.ID
	}
	if err := s.Tickets.Create(t); err != nil {
		return domain.SupportTicket{}, err
	}
	return t, nil
}

func (s *TicketService) ListMine(sessionID string, u *domain.User) ([]domain.SupportTicket, error) {
	uid := ""
	if u != nil {
		uid = u.ID
	}
	return s.Tickets.ListForSession(sessionID, uid)
}

// Get enforces ownership: the ticket's session or user must match,
// unless the caller is an admin.
func (s *TicketService) Get(id, sessionID string, u *domain.User) (domain.SupportTicket, []domain.TicketMessage, bool, error) {
	t, err := s.Tickets.Get(id)
	if err != nil {
		return domain.SupportTicket{}, nil, false, err
	}
	owner := t.SessionID == sessionID
	if !owner && u != nil && (t.UserID == u.ID || u.Role == "ADMIN") {
		owner = true
	}
	if !owner {
		return domain.SupportTicket{}, nil, false, nil
	}
	msgs, err := s.Tickets.Messages(id)
	if err != nil {
		return domain.SupportTicket{}, nil, false, err
	}
	return t, msgs, true, nil
}

func (s *TicketService) Respond(ticketID, author string, fromStaff bool, body string) (domain.TicketMessage, error) {
	m := domain.TicketMessage{
		ID:        uuid.NewString(),
		TicketID:  ticketID,
		Author:    author,
		FromStaff: fromStaff,
		Body:      body,
	}
	if err := s.Tickets.AddMessage(m); err != nil {
		return domain.TicketMessage{}, err
	}
	return m, nil
}
