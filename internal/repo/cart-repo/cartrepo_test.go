package cartrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

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

func TestRepository_Add(t *testing.T) {
	repo, mock := NewMock(t)
	tests := []struct {
		name        string
		userID      int
		productID   int
		mockSetup   func()
		expectedErr error
	}{
		{
			name:      "Item added",
			userID:    1,
			productID: 42,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO shopping_cart (user_id, product_id)")).
					WithArgs(1, 42).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectedErr: nil,
		},
		{
			name:      "Duplicate add maps to unique violation",
			userID:    1,
			productID: 42,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO shopping_cart (user_id, product_id)")).
					WithArgs(1, 42).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectedErr: pg.ErrUniqueViolation,
		},
		{
			name:      "Database error",
			userID:    1,
			productID: 42,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO shopping_cart (user_id, product_id)")).
					WithArgs(1, 42).
					WillReturnError(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Add(context.Background(), tt.userID, tt.productID)
			if tt.expectedErr != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedErr, pg.ErrUniqueViolation) {
					assert.ErrorIs(t, err, pg.ErrUniqueViolation)
				}
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Remove(t *testing.T) {
	repo, mock := NewMock(t)
	tests := []struct {
		name         string
		cartID       int
		userID       int
		mockSetup    func()
		expectedRows int64
		expectErr    bool
	}{
		{
			name:   "Own line removed",
			cartID: 7,
			userID: 1,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM shopping_cart")).
					WithArgs(7, 1).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
			expectedRows: 1,
		},
		{
			name:   "Someone else's line matches nothing",
			cartID: 7,
			userID: 2,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM shopping_cart")).
					WithArgs(7, 2).
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
			expectedRows: 0,
		},
		{
			name:   "Database error",
			cartID: 7,
			userID: 1,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM shopping_cart")).
					WithArgs(7, 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			rows, err := repo.Remove(context.Background(), tt.cartID, tt.userID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRows, rows)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Items(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	discount := 400.0

	t.Run("Cart lines with product fields", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{
			"id", "user_id", "product_id", "added_at",
			"product_name", "slug", "price", "discount_price", "thumbnail_path",
			"file_path", "is_active", "is_approved",
		}).AddRow(7, 1, 42, now, "Go in Practice", "go-in-practice", 500.0, &discount, "thumbs/42.png",
			"files/42.zip", true, true)
		mock.ExpectQuery(regexp.QuoteMeta("FROM shopping_cart c")).
			WithArgs(1).
			WillReturnRows(rows)

		items, err := repo.Items(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, 42, items[0].Product.ID)
		assert.Equal(t, "Go in Practice", items[0].Product.ProductName)
		assert.Equal(t, 400.0, items[0].Product.EffectivePrice())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty cart", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM shopping_cart c")).
			WithArgs(2).
			WillReturnRows(pgxmock.NewRows([]string{
				"id", "user_id", "product_id", "added_at",
				"product_name", "slug", "price", "discount_price", "thumbnail_path",
				"file_path", "is_active", "is_approved",
			}))

		items, err := repo.Items(context.Background(), 2)
		assert.NoError(t, err)
		assert.Empty(t, items)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM shopping_cart c")).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		items, err := repo.Items(context.Background(), 1)
		assert.Error(t, err)
		assert.Nil(t, items)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Clear(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Cart cleared", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM shopping_cart WHERE user_id = $1")).
			WithArgs(1).
			WillReturnResult(pgxmock.NewResult("DELETE", 3))

		assert.NoError(t, repo.Clear(context.Background(), 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM shopping_cart WHERE user_id = $1")).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		assert.Error(t, repo.Clear(context.Background(), 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Count(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM shopping_cart WHERE user_id = $1")).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.Count(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
