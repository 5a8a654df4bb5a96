package repos

import (
	"calipollo/internal/domain"
	"calipollo/internal/pricing"

	"github.com/jmoiron/sqlx"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// ---------- Rows ----------

type OrderRow struct {
	ID            string `db:"id" json:"id"`
	SessionID     string `db:"session_id" json:"-"`
	UserID        string `db:"user_id" json:"user_id,omitempty"`
	Address       string `db:"address" json:"address"`
	Phone         string `db:"phone" json:"phone"`
	PaymentMethod string `db:"payment_method" json:"payment_method"`
	Notes         string `db:"notes" json:"notes,omitempty"`
	Subtotal      int64  `db:"subtotal" json:"subtotal"`
	DeliveryFee   int64  `db:"delivery_fee" json:"delivery_fee"`
	Tax           int64  `db:"tax" json:"tax"`
	Total         int64  `db:"total" json:"total"`
	Status        string `db:"status" json:"status"`
	CreatedAt     string `db:"created_at" json:"created_at"`
}

type OrderItemRow struct {
	ProductID string `db:"product_id" json:"product_id"`
	Name      string `db:"name" json:"name"`
	Qty       int    `db:"qty" json:"qty"`
	Price     int64  `db:"price" json:"price"`
	Subtotal  int64  `db:"subtotal" json:"subtotal"`
}

// ---------- Writes ----------

// Create inserts the order header with its computed quote.
func (r *OrderRepo) Create(orderID, sessionID string, draft domain.OrderDraft, q pricing.Quote) error {
	_, err := r.db.Exec(`
	  INSERT INTO orders
	    (id, session_id, address, phone, payment_method, notes, subtotal, delivery_fee, tax, total, status, created_at)
	  VALUES
	    (?,  ?,          ?,       ?,     ?,              ?,     ?,        ?,            ?,   ?,     'PLACED', CURRENT_TIMESTAMP)
	`, orderID, sessionID, draft.Address, draft.Phone, draft.PaymentMethod, draft.Notes,
		q.Subtotal, q.DeliveryFee, q.Tax, q.Total)
	return err
}

func (r *OrderRepo) InsertItem(orderID, productID string, qty int, price int64) error {
	_, err := r.db.Exec(`
	  INSERT INTO order_items(order_id, product_id, qty, price)
	  VALUES(?, ?, ?, ?)
	`, orderID, productID, qty, price)
	return err
}

// ---------- Reads ----------

func (r *OrderRepo) Get(orderID string) (OrderRow, []OrderItemRow, error) {
	var o OrderRow
	if err := r.db.Get(&o, `
		SELECT o.id, o.session_id, COALESCE(s.user_id,'') AS user_id, o.address, o.phone,
		       o.payment_method, COALESCE(o.notes,'') AS notes,
		       o.subtotal, o.delivery_fee, o.tax, o.total, o.status, o.created_at
		FROM orders o
		LEFT JOIN sessions s ON s.id = o.session_id
		WHERE o.id = ?
	`, orderID); err != nil {
		return OrderRow{}, nil, err
	}

	var items []OrderItemRow
	if err := r.db.Select(&items, `
		SELECT oi.product_id, p.name, oi.qty, oi.price, (oi.qty * oi.price) AS subtotal
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ?
		ORDER BY p.name
	`, orderID); err != nil {
		return OrderRow{}, nil, err
	}

	return o, items, nil
}

func (r *OrderRepo) ListLatest(limit int) ([]OrderRow, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []OrderRow
	err := r.db.Select(&out, `
		SELECT id, session_id, '' AS user_id, address, phone, payment_method,
		       COALESCE(notes,'') AS notes, subtotal, delivery_fee, tax, total, status, created_at
		FROM orders
		ORDER BY datetime(created_at) DESC
		LIMIT ?
	`, limit)
	return out, err
}

// ListByUser returns orders for a given user via session linkage.
func (r *OrderRepo) ListByUser(userID string) ([]OrderRow, error) {
	var out []OrderRow
	err := r.db.Select(&out, `
		SELECT o.id, o.session_id, s.user_id AS user_id, o.address, o.phone, o.payment_method,
		       COALESCE(o.notes,'') AS notes, o.subtotal, o.delivery_fee, o.tax, o.total, o.status, o.created_at
		FROM orders o
		JOIN sessions s ON s.id = o.session_id
		WHERE s.user_id = ?
		ORDER BY datetime(o.created_at) DESC
	`, userID)
	return out, err
}

// ListBySession covers anonymous or pre-login orders.
func (r *OrderRepo) ListBySession(sessionID string) ([]OrderRow, error) {
	var out []OrderRow
	err := r.db.Select(&out, `
		SELECT id, session_id, '' AS user_id, address, phone, payment_method,
		       COALESCE(notes,'') AS notes, subtotal, delivery_fee, tax, total, status, created_at
		FROM orders
		WHERE session_id = ?
		ORDER BY datetime(created_at) DESC
	`, sessionID)
	return out, err
}

func (r *OrderRepo) UpdateStatus(id, status string) error {
	_, err := r.db.Exec(`UPDATE orders SET status = ? WHERE id = ?`, status, id)
	return err
}
