package repos

import (
	"calipollo/internal/domain"

	"github.com/jmoiron/sqlx"
)

type TicketRepo struct{ db *sqlx.DB }

func NewTicketRepo(db *sqlx.DB) *TicketRepo { return &TicketRepo{db: db} }

func (r *TicketRepo) Create(t domain.SupportTicket) error {
	_, err := r.db.Exec(`
	  INSERT INTO tickets(id, user_id, session_id, subject, description, category, priority, status, created_at)
	  VALUES(?, ?, ?, ?, ?, ?, ?, 'open', CURRENT_TIMESTAMP)
	`, t.ID, t.UserID, t.SessionID, t.Subject, t.Description, t.Category, t.Priority)
	return err
}

func (r *TicketRepo) Get(id string) (domain.SupportTicket, error) {
	var t domain.SupportTicket
	err := r.db.Get(&t, `
	  SELECT id, COALESCE(user_id,'') AS user_id, COALESCE(session_id,'') AS session_id,
	         subject, description, category, priority, status,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM tickets WHERE id = ?
	`, id)
	return t, err
}

// ListForSession shows a visitor their own tickets; user linkage wins
// over session when both exist.
func (r *TicketRepo) ListForSession(sessionID, userID string) ([]domain.SupportTicket, error) {
	var out []domain.SupportTicket
	err := r.db.Select(&out, `
	  SELECT id, COALESCE(user_id,'') AS user_id, COALESCE(session_id,'') AS session_id,
	         subject, description, category, priority, status,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM tickets
	  WHERE session_id = ? OR (user_id != '' AND user_id = ?)
	  ORDER BY datetime(created_at) DESC
	`, sessionID, userID)
	return out, err
}

func (r *TicketRepo) ListLatest(limit int) ([]domain.SupportTicket, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []domain.SupportTicket
	err := r.db.Select(&out, `
	  SELECT id, COALESCE(user_id,'') AS user_id, COALESCE(session_id,'') AS session_id,
	         subject, description, category, priority, status,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM tickets
	  ORDER BY datetime(created_at) DESC
	  LIMIT ?
	`, limit)
	return out, err
}

func (r *TicketRepo) UpdateStatus(id, status string) error {
	_, err := r.db.Exec(`
	  UPDATE tickets SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
	`, status, id)
	return err
}

func (r *TicketRepo) AddMessage(m domain.TicketMessage) error {
	_, err := r.db.Exec(`
	  INSERT INTO ticket_messages(id, ticket_id, author, from_staff, body, created_at)
	  VALUES(?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, m.ID, m.TicketID, m.Author, m.FromStaff, m.Body)
	return err
}

func (r *TicketRepo) Messages(ticketID string) ([]domain.TicketMessage, error) {
	var out []domain.TicketMessage
	err := r.db.Select(&out, `
	  SELECT id, ticket_id, author, from_staff, body, created_at
	  FROM ticket_messages
	  WHERE ticket_id = ?
	  ORDER BY datetime(created_at) ASC
	`, ticketID)
	return out, err
}
