package reviewrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/aibaljacob/prodigi/internal/domain"
	"github.com/aibaljacob/prodigi/internal/pg"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	review := &domain.Review{
		ProductID: 42, UserID: 1, TransactionID: 7,
		Rating: 5, ReviewTitle: "Great", ReviewText: "Worth every rupee", IsApproved: true,
	}

	tests := []struct {
		name        string
		mockSetup   func()
		expectedErr error
	}{
		{
			name: "Review created",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reviews (product_id, user_id, transaction_id, rating, review_title, review_text, is_approved)")).
					WithArgs(42, 1, 7, 5, "Great", "Worth every rupee", true).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(3))
			},
			expectedErr: nil,
		},
		{
			name: "Second review maps to unique violation",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reviews (product_id, user_id, transaction_id, rating, review_title, review_text, is_approved)")).
					WithArgs(42, 1, 7, 5, "Great", "Worth every rupee", true).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectedErr: pg.ErrUniqueViolation,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reviews (product_id, user_id, transaction_id, rating, review_title, review_text, is_approved)")).
					WithArgs(42, 1, 7, 5, "Great", "Worth every rupee", true).
					WillReturnError(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			created, err := repo.Create(context.Background(), review)
			if tt.expectedErr != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedErr, pg.ErrUniqueViolation) {
					assert.ErrorIs(t, err, pg.ErrUniqueViolation)
				}
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 3, created.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_AggregateForProduct(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Average and count", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(AVG(rating), 0), COUNT(*)")).
			WithArgs(42).
			WillReturnRows(pgxmock.NewRows([]string{"avg", "count"}).AddRow(4.333333, 3))

		average, total, err := repo.AggregateForProduct(context.Background(), 42)
		assert.NoError(t, err)
		assert.InDelta(t, 4.333333, average, 0.000001)
		assert.Equal(t, 3, total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No reviews yet", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(AVG(rating), 0), COUNT(*)")).
			WithArgs(43).
			WillReturnRows(pgxmock.NewRows([]string{"avg", "count"}).AddRow(0.0, 0))

		average, total, err := repo.AggregateForProduct(context.Background(), 43)
		assert.NoError(t, err)
		assert.Zero(t, average)
		assert.Zero(t, total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_ListApprovedByProduct(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

	t.Run("Approved reviews newest first", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, product_id, user_id, transaction_id, rating, review_title, review_text, created_at")).
			WithArgs(42).
			WillReturnRows(pgxmock.NewRows([]string{"id", "product_id", "user_id", "transaction_id", "rating", "review_title", "review_text", "created_at"}).
				AddRow(4, 42, 2, 8, 4, "Solid", "Good value", createdAt).
				AddRow(3, 42, 1, 7, 5, "Great", "Worth every rupee", createdAt.Add(-time.Hour)))

		reviews, err := repo.ListApprovedByProduct(context.Background(), 42)
		assert.NoError(t, err)
		assert.Len(t, reviews, 2)
		assert.Equal(t, 4, reviews[0].ID)
		assert.Equal(t, 5, reviews[1].Rating)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, product_id, user_id, transaction_id, rating, review_title, review_text, created_at")).
			WithArgs(42).
			WillReturnError(errors.New("database error"))

		reviews, err := repo.ListApprovedByProduct(context.Background(), 42)
		assert.Error(t, err)
		assert.Nil(t, reviews)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
