package reviewservice

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aibaljacob/prodigi/internal/domain"
	"github.com/aibaljacob/prodigi/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockReviewRepo, *MockTransactionRepo, *MockCatalogRepo, *MockTXManager) {
	ctrl := gomock.NewController(t)
	reviewRepo := NewMockReviewRepo(ctrl)
	transactionRepo := NewMockTransactionRepo(ctrl)
	catalogRepo := NewMockCatalogRepo(ctrl)
	txManager := NewMockTXManager(ctrl)
	service := New(reviewRepo, transactionRepo, catalogRepo, txManager)
	defer ctrl.Finish()
	return service, reviewRepo, transactionRepo, catalogRepo, txManager
}

func passthroughBegin(txManager *MockTXManager) {
	txManager.EXPECT().
		Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestAddReview(t *testing.T) {
	purchase := &domain.Transaction{ID: 15, BuyerID: 1, ProductID: 42}

	t.Run("Review created and rating refreshed with rounding", func(t *testing.T) {
		service, reviewRepo, transactionRepo, catalogRepo, txManager := NewMock(t)

		transactionRepo.EXPECT().FindCompletedForProduct(gomock.Any(), 1, 42).Return(purchase, nil)
		passthroughBegin(txManager)
		reviewRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, review *domain.Review) (*domain.Review, error) {
				assert.Equal(t, 42, review.ProductID)
				assert.Equal(t, 1, review.UserID)
				assert.Equal(t, 15, review.TransactionID)
				assert.Equal(t, 5, review.Rating)
				assert.Equal(t, "Excellent", review.ReviewTitle)
				assert.True(t, review.IsApproved)
				return review, nil
			})
		// 4.333... rounds to one decimal.
		reviewRepo.EXPECT().AggregateForProduct(gomock.Any(), 42).Return(4.333333, 3, nil)
		catalogRepo.EXPECT().UpdateRating(gomock.Any(), 42, 4.3, 3).Return(nil)

		review, err := service.AddReview(context.Background(), 1, 42, 5, "Excellent", "Worth every rupee.")
		assert.NoError(t, err)
		assert.NotNil(t, review)
	})

	t.Run("Input is trimmed", func(t *testing.T) {
		service, reviewRepo, transactionRepo, catalogRepo, txManager := NewMock(t)

		transactionRepo.EXPECT().FindCompletedForProduct(gomock.Any(), 1, 42).Return(purchase, nil)
		passthroughBegin(txManager)
		reviewRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, review *domain.Review) (*domain.Review, error) {
				assert.Equal(t, "Great", review.ReviewTitle)
				assert.Equal(t, "Nice book", review.ReviewText)
				return review, nil
			})
		reviewRepo.EXPECT().AggregateForProduct(gomock.Any(), 42).Return(4.0, 1, nil)
		catalogRepo.EXPECT().UpdateRating(gomock.Any(), 42, 4.0, 1).Return(nil)

		_, err := service.AddReview(context.Background(), 1, 42, 4, "  Great  ", "  Nice book  ")
		assert.NoError(t, err)
	})

	t.Run("Invalid inputs rejected without any lookup", func(t *testing.T) {
		service, _, _, _, _ := NewMock(t)

		cases := []struct {
			rating int
			title  string
			text   string
		}{
			{0, "Title", "Text"},
			{6, "Title", "Text"},
			{5, "   ", "Text"},
			{5, "Title", ""},
		}
		for _, c := range cases {
			review, err := service.AddReview(context.Background(), 1, 42, c.rating, c.title, c.text)
			assert.ErrorIs(t, err, ErrInvalidReview)
			assert.Nil(t, review)
		}
	})

	t.Run("Review without purchase is rejected", func(t *testing.T) {
		service, _, transactionRepo, _, _ := NewMock(t)
		transactionRepo.EXPECT().FindCompletedForProduct(gomock.Any(), 2, 42).Return(nil, nil)

		review, err := service.AddReview(context.Background(), 2, 42, 5, "Title", "Text")
		assert.ErrorIs(t, err, ErrNotPurchased)
		assert.Nil(t, review)
	})

	t.Run("Duplicate review maps unique violation", func(t *testing.T) {
		service, reviewRepo, transactionRepo, _, txManager := NewMock(t)

		transactionRepo.EXPECT().FindCompletedForProduct(gomock.Any(), 1, 42).Return(purchase, nil)
		passthroughBegin(txManager)
		reviewRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("review (1, 42): %w", pg.ErrUniqueViolation))

		review, err := service.AddReview(context.Background(), 1, 42, 5, "Title", "Text")
		assert.ErrorIs(t, err, ErrAlreadyReviewed)
		assert.Nil(t, review)
	})

	t.Run("Rating refresh failure aborts the transaction", func(t *testing.T) {
		service, reviewRepo, transactionRepo, catalogRepo, txManager := NewMock(t)

		transactionRepo.EXPECT().FindCompletedForProduct(gomock.Any(), 1, 42).Return(purchase, nil)
		passthroughBegin(txManager)
		reviewRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, review *domain.Review) (*domain.Review, error) { return review, nil })
		reviewRepo.EXPECT().AggregateForProduct(gomock.Any(), 42).Return(5.0, 1, nil)
		catalogRepo.EXPECT().UpdateRating(gomock.Any(), 42, 5.0, 1).Return(errors.New("database error"))

		review, err := service.AddReview(context.Background(), 1, 42, 5, "Title", "Text")
		assert.Error(t, err)
		assert.Nil(t, review)
	})
}
