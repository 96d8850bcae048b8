package reviewrepo

import (
	"context"
	"fmt"

	"github.com/aibaljacob/prodigi/internal/domain"
	"github.com/aibaljacob/prodigi/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Create relies on the unique index on (user_id, product_id); a second review
// for the same product surfaces as pg.ErrUniqueViolation.
func (r *Repository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	query := `
        INSERT INTO reviews (product_id, user_id, transaction_id, rating, review_title, review_text, is_approved)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		review.ProductID, review.UserID, review.TransactionID,
		review.Rating, review.ReviewTitle, review.ReviewText, review.IsApproved,
	).Scan(&review.ID)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, fmt.Errorf("review (%d, %d): %w", review.UserID, review.ProductID, pg.ErrUniqueViolation)
		}
		zap.L().Error("can't create review", zap.Error(err))
		return nil, err
	}
	return review, nil
}

// AggregateForProduct computes the approved-review average and count used for
// the denormalized writeback onto the product row.
func (r *Repository) AggregateForProduct(ctx context.Context, productID int) (float64, int, error) {
	var average float64
	var total int
	query := `
        SELECT COALESCE(AVG(rating), 0), COUNT(*)
        FROM reviews
        WHERE product_id = $1 AND is_approved = TRUE
    `
	err := r.db.QueryRow(ctx, query, productID).Scan(&average, &total)
	if err != nil {
		zap.L().Error("can't aggregate reviews", zap.Error(err))
		return 0, 0, err
	}
	return average, total, nil
}

func (r *Repository) ListApprovedByProduct(ctx context.Context, productID int) ([]domain.Review, error) {
	query := `
        SELECT id, product_id, user_id, transaction_id, rating, review_title, review_text, created_at
        FROM reviews
        WHERE product_id = $1 AND is_approved = TRUE
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		zap.L().Error("can't list reviews", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var review domain.Review
		err := rows.Scan(&review.ID, &review.ProductID, &review.UserID, &review.TransactionID,
			&review.Rating, &review.ReviewTitle, &review.ReviewText, &review.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan review row", zap.Error(err))
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, nil
}
