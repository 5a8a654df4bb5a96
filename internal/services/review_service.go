package services

import (
	"errors"

	"calipollo/internal/domain"
	"calipollo/internal/repos"
	"calipollo/internal/reviews"

	"github.com/google/uuid"
)

var ErrAlreadyReviewed = errors.New("product already reviewed by this user")

type ReviewService struct {
	Reviews *repos.ReviewRepo
	Prods   *repos.ProductRepo
}

func NewReviewService(revs *repos.ReviewRepo, prods *repos.ProductRepo) *ReviewService {
	return &ReviewService{Reviews: revs, Prods: prods}
}

// Submit stores an approved review and refreshes the product's
// denormalized rating. Inputs are validated at the handler boundary.
func (s *ReviewService) Submit(productID, orderID string, u *domain.User, rating int, comment string) (domain.Review, error) {
	if _, err := s.Prods.Get(productID); err != nil {
		return domain.Review{}, err
	}
	rev := domain.Review{
		ID:        uuid.NewString(),
		ProductID: productID,
		OrderID:   orderID,
		UserID:    u.ID,
		Author:    u.Name,
		Rating:    rating,
		Comment:   comment,
	}
	if err := s.Reviews.Create(rev); err != nil {
		// unique (user_id, product_id) index: one review per user per product
		return domain.Review{}, ErrAlreadyReviewed
	}

	if stats, err := s.Stats(productID); err == nil {
		_ = s.Prods.UpdateRating(productID, stats.Average, stats.Total)
	}
	return rev, nil
}

func (s *ReviewService) ListByProduct(productID string) ([]domain.Review, error) {
	return s.Reviews.ListByProduct(productID)
}

// Stats aggregates the approved ratings for a product.
func (s *ReviewService) Stats(productID string) (reviews.Stats, error) {
	ratings, err := s.Reviews.Ratings(productID)
	if err != nil {
		return reviews.Stats{}, err
	}
	return reviews.Aggregate(ratings), nil
}
