package repos

import (
	"calipollo/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ReviewRepo struct{ db *sqlx.DB }

func NewReviewRepo(db *sqlx.DB) *ReviewRepo { return &ReviewRepo{db: db} }

func (r *ReviewRepo) Create(rev domain.Review) error {
	_, err := r.db.Exec(`
	  INSERT INTO reviews(id, product_id, order_id, user_id, author, rating, comment, status, created_at)
	  VALUES(?, ?, ?, ?, ?, ?, ?, 'APPROVED', CURRENT_TIMESTAMP)
	`, rev.ID, rev.ProductID, rev.OrderID, rev.UserID, rev.Author, rev.Rating, rev.Comment)
	return err
}

// ListByProduct returns approved reviews, newest first.
func (r *ReviewRepo) ListByProduct(productID string) ([]domain.Review, error) {
	var out []domain.Review
	err := r.db.Select(&out, `
	  SELECT id, product_id, COALESCE(order_id,'') AS order_id, user_id, author,
	         rating, comment, status, created_at, COALESCE(updated_at,'') AS updated_at
	  FROM reviews
	  WHERE product_id = ? AND status = 'APPROVED'
	  ORDER BY datetime(created_at) DESC
	`, productID)
	return out, err
}

// Ratings fetches just the approved rating values for aggregation.
func (r *ReviewRepo) Ratings(productID string) ([]int, error) {
	var out []int
	err := r.db.Select(&out, `
	  SELECT rating FROM reviews
	  WHERE product_id = ? AND status = 'APPROVED'
	`, productID)
	return out, err
}

// SetStatus is the moderation hook (admin surface).
func (r *ReviewRepo) SetStatus(id, status string) error {
	_, err := r.db.Exec(`
	  UPDATE reviews SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
	`, status, id)
	return err
}
