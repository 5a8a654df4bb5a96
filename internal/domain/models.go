package domain

type Category struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	CreatedAt string `db:"created_at" json:"created_at"`
	UpdatedAt string `db:"updated_at" json:"updated_at,omitempty"`
}

// Product prices are whole Colombian pesos; COP carries no minor unit.
type Product struct {
	ID          string  `db:"id" json:"id"`
	CategoryID  string  `db:"category_id" json:"category_id"`
	Name        string  `db:"name" json:"name"`
	Description string  `db:"description" json:"description"`
	Price       int64   `db:"price" json:"price"`
	Available   bool    `db:"available" json:"available"`
	Rating      float64 `db:"rating" json:"rating"`
	ReviewCount int     `db:"review_count" json:"review_count"`
	PrepMinutes int     `db:"prep_minutes" json:"prep_minutes"`
	Ingredients string  `db:"ingredients" json:"ingredients,omitempty"`
	ImagePath   string  `db:"image_path" json:"image_path,omitempty"`
	CreatedAt   string  `db:"created_at" json:"created_at"`
	UpdatedAt   string  `db:"updated_at" json:"updated_at,omitempty"`
}

// Payment methods accepted at checkout.
const (
	PayCash      = "cash"
	PayCard      = "card"
	PayTransfer  = "transfer"
	PayNequi     = "nequi"
	PayDaviplata = "daviplata"
)

// OrderDraft is the in-progress checkout payload. It only becomes an
// order row once the confirmation step submits.
type OrderDraft struct {
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	PaymentMethod string `json:"payment_method"`
	Notes         string `json:"notes,omitempty"`
}

type Review struct {
	ID        string `db:"id" json:"id"`
	ProductID string `db:"product_id" json:"product_id"`
	OrderID   string `db:"order_id" json:"order_id,omitempty"`
	UserID    string `db:"user_id" json:"user_id"`
	Author    string `db:"author" json:"author"`
	Rating    int    `db:"rating" json:"rating"`
	Comment   string `db:"comment" json:"comment"`
	Status    string `db:"status" json:"status"` // APPROVED | PENDING | HIDDEN
	CreatedAt string `db:"created_at" json:"created_at"`
	UpdatedAt string `db:"updated_at" json:"updated_at,omitempty"`
}

type SupportTicket struct {
	ID          string `db:"id" json:"id"`
	UserID      string `db:"user_id" json:"user_id,omitempty"`
	SessionID   string `db:"session_id" json:"-"`
	Subject     string `db:"subject" json:"subject"`
	Description string `db:"description" json:"description"`
	Category    string `db:"category" json:"category"` // technical|order|payment|general
	Priority    string `db:"priority" json:"priority"` // low|medium|high
	Status      string `db:"status" json:"status"`     // open|in_progress|resolved|closed
	CreatedAt   string `db:"created_at" json:"created_at"`
	UpdatedAt   string `db:"updated_at" json:"updated_at,omitempty"`
}

type TicketMessage struct {
	ID        string `db:"id" json:"id"`
	TicketID  string `db:"ticket_id" json:"ticket_id"`
	Author    string `db:"author" json:"author"`
	FromStaff bool   `db:"from_staff" json:"from_staff"`
	Body      string `db:"body" json:"body"`
	CreatedAt string `db:"created_at" json:"created_at"`
}
