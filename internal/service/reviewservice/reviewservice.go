package reviewservice

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/aibaljacob/prodigi/internal/domain"
	"github.com/aibaljacob/prodigi/internal/pg"
	"go.uber.org/zap"
)

type ReviewRepo interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	AggregateForProduct(ctx context.Context, productID int) (float64, int, error)
}

type TransactionRepo interface {
	FindCompletedForProduct(ctx context.Context, buyerID, productID int) (*domain.Transaction, error)
}

type CatalogRepo interface {
	UpdateRating(ctx context.Context, productID int, average float64, total int) error
}

type TXManager interface {
	Begin(ctx context.Context, fn func(ctx context.Context) error) error
}

type Service struct {
	reviewRepo      ReviewRepo
	transactionRepo TransactionRepo
	catalogRepo     CatalogRepo
	txManager       TXManager
}

func New(reviewRepo ReviewRepo, transactionRepo TransactionRepo, catalogRepo CatalogRepo, txManager TXManager) *Service {
	return &Service{
		reviewRepo:      reviewRepo,
		transactionRepo: transactionRepo,
		catalogRepo:     catalogRepo,
		txManager:       txManager,
	}
}

var (
	ErrInvalidReview   = errors.New("invalid review input")
	ErrNotPurchased    = errors.New("you must purchase this product to review it")
	ErrAlreadyReviewed = errors.New("you have already reviewed this product")
)

// AddReview inserts a verified-purchase review and refreshes the product's
// denormalized rating fields. One review per (user, product); the unique
// index is the authoritative duplicate check.
func (s *Service) AddReview(ctx context.Context, userID, productID, rating int, title, text string) (*domain.Review, error) {
	if rating < 1 || rating > 5 || strings.TrimSpace(title) == "" || strings.TrimSpace(text) == "" {
		return nil, ErrInvalidReview
	}

	purchase, err := s.transactionRepo.FindCompletedForProduct(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, ErrNotPurchased
	}

	review := &domain.Review{
		ProductID:     productID,
		UserID:        userID,
		TransactionID: purchase.ID,
		Rating:        rating,
		ReviewTitle:   strings.TrimSpace(title),
		ReviewText:    strings.TrimSpace(text),
		// Single-vendor mode auto-approves reviews.
		IsApproved: true,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.reviewRepo.Create(ctx, review); err != nil {
			return err
		}

		average, total, err := s.reviewRepo.AggregateForProduct(ctx, productID)
		if err != nil {
			return err
		}
		rounded := math.Round(average*10) / 10
		return s.catalogRepo.UpdateRating(ctx, productID, rounded, total)
	})
	if err != nil {
		if errors.Is(err, pg.ErrUniqueViolation) {
			return nil, ErrAlreadyReviewed
		}
		zap.L().Error("can't add review", zap.Error(err))
		return nil, err
	}

	zap.L().Info("review added", zap.Int("userID", userID), zap.Int("productID", productID))
	return review, nil
}
