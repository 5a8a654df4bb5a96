package repos

import (
	"calipollo/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `
  id, category_id, name, description, price, available, rating, review_count,
  prep_minutes, COALESCE(ingredients,'') AS ingredients,
  COALESCE(image_path,'') AS image_path,
  created_at, COALESCE(updated_at,'') AS updated_at`

// ListAvailable returns every available product; the filter/sort
// pipeline runs over this in memory.
func (r *ProductRepo) ListAvailable() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `SELECT`+productCols+`
	  FROM products
	  WHERE available = 1
	  ORDER BY created_at DESC`)
	return out, err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT`+productCols+`
	  FROM products
	  WHERE id = ?`, id)
	return p, err
}

// SetAvailable toggles the availability flag (admin surface).
func (r *ProductRepo) SetAvailable(id string, available bool) error {
	_, err := r.db.Exec(`
	  UPDATE products SET available = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
	`, available, id)
	return err
}

// UpdateRating rewrites the denormalized rating/review_count pair after
// a review lands.
func (r *ProductRepo) UpdateRating(id string, rating float64, count int) error {
	_, err := r.db.Exec(`
	  UPDATE products SET rating = ?, review_count = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
	`, rating, count, id)
	return err
}
