package catalogrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/aibaljacob/prodigi/internal/domain"
	"github.com/aibaljacob/prodigi/internal/pg"
	"github.com/jackc/pgx/v5"
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

func productRow(id int, slug string, createdAt time.Time) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "store_id", "category_id", "product_name", "slug", "description", "price", "discount_price",
		"file_path", "file_original_name", "thumbnail_path", "download_limit", "download_expiry_hours",
		"is_active", "is_approved", "rating_average", "total_reviews", "total_sales", "total_downloads", "created_at",
	}).AddRow(
		id, 5, 1, "Go in Practice", slug, "A practical guide", 500.0, (*float64)(nil),
		"products/go-in-practice.pdf", "Go in Practice.pdf", "", 5, 72,
		true, true, 4.3, 3, 120, 240, createdAt,
	)
}

func TestRepository_ListCategories(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC)

	t.Run("Only active", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE is_active = TRUE")).
			WillReturnRows(pgxmock.NewRows([]string{"id", "category_name", "slug", "is_active", "created_at"}).
				AddRow(1, "E-Books", "e-books", true, createdAt))

		categories, err := repo.ListCategories(context.Background(), true)
		assert.NoError(t, err)
		assert.Len(t, categories, 1)
		assert.Equal(t, "e-books", categories[0].Slug)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM categories")).
			WillReturnError(errors.New("database error"))

		categories, err := repo.ListCategories(context.Background(), false)
		assert.Error(t, err)
		assert.Nil(t, categories)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_CreateCategory(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Category created", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO categories (category_name, slug)")).
			WithArgs("E-Books", "e-books").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))

		category, err := repo.CreateCategory(context.Background(), &domain.Category{CategoryName: "E-Books", Slug: "e-books"})
		assert.NoError(t, err)
		assert.Equal(t, 1, category.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate slug maps to unique violation", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO categories (category_name, slug)")).
			WithArgs("E-Books", "e-books").
			WillReturnError(&pgconn.PgError{Code: "23505"})

		category, err := repo.CreateCategory(context.Background(), &domain.Category{CategoryName: "E-Books", Slug: "e-books"})
		assert.ErrorIs(t, err, pg.ErrUniqueViolation)
		assert.Nil(t, category)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_UpdateCategory(t *testing.T) {
	repo, mock := NewMock(t)
	category := &domain.Category{ID: 1, CategoryName: "Books", Slug: "books", IsActive: true}

	t.Run("Category updated", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE categories")).
			WithArgs("Books", "books", true, 1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.UpdateCategory(context.Background(), category))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown category", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE categories")).
			WithArgs("Books", "books", true, 1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		assert.ErrorIs(t, repo.UpdateCategory(context.Background(), category), pgx.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_ListProducts(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

	t.Run("Visible products with filters", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM products WHERE 1=1 AND is_active = TRUE AND is_approved = TRUE AND category_id = $1 AND product_name ILIKE $2")).
			WithArgs(1, "%go%").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(57))
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC LIMIT $3 OFFSET $4")).
			WithArgs(1, "%go%", 12, 12).
			WillReturnRows(productRow(42, "go-in-practice", createdAt))

		products, total, err := repo.ListProducts(context.Background(), ProductFilter{
			CategoryID:  1,
			Search:      "go",
			Page:        2,
			PerPage:     12,
			OnlyVisible: true,
		})
		assert.NoError(t, err)
		assert.Equal(t, 57, total)
		assert.Len(t, products, 1)
		assert.Equal(t, "go-in-practice", products[0].Slug)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Count failure", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM products")).
			WillReturnError(errors.New("database error"))

		_, _, err := repo.ListProducts(context.Background(), ProductFilter{})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FindProductBySlug(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

	t.Run("Product found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM products WHERE slug = $1")).
			WithArgs("go-in-practice").
			WillReturnRows(productRow(42, "go-in-practice", createdAt))

		product, err := repo.FindProductBySlug(context.Background(), "go-in-practice")
		assert.NoError(t, err)
		assert.Equal(t, 42, product.ID)
		assert.Equal(t, 5, product.StoreID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown slug returns nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM products WHERE slug = $1")).
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		product, err := repo.FindProductBySlug(context.Background(), "missing")
		assert.NoError(t, err)
		assert.Nil(t, product)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_CreateProduct(t *testing.T) {
	repo, mock := NewMock(t)
	product := &domain.Product{
		StoreID: 5, CategoryID: 1, ProductName: "Go in Practice", Slug: "go-in-practice",
		Description: "A practical guide", Price: 500.0,
		FilePath: "products/go-in-practice.pdf", FileOriginalName: "Go in Practice.pdf",
		DownloadLimit: 5, DownloadExpiryHours: 72,
	}

	t.Run("Product created", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO products")).
			WithArgs(5, 1, "Go in Practice", "go-in-practice", "A practical guide", 500.0, (*float64)(nil),
				"products/go-in-practice.pdf", "Go in Practice.pdf", "", 5, 72).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(42))

		created, err := repo.CreateProduct(context.Background(), product)
		assert.NoError(t, err)
		assert.Equal(t, 42, created.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate slug maps to unique violation", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO products")).
			WithArgs(5, 1, "Go in Practice", "go-in-practice", "A practical guide", 500.0, (*float64)(nil),
				"products/go-in-practice.pdf", "Go in Practice.pdf", "", 5, 72).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		created, err := repo.CreateProduct(context.Background(), product)
		assert.ErrorIs(t, err, pg.ErrUniqueViolation)
		assert.Nil(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Flags(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("SetProductActive", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE products SET is_active = $1 WHERE id = $2")).
			WithArgs(false, 42).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.SetProductActive(context.Background(), 42, false))

		mock.ExpectExec(regexp.QuoteMeta("UPDATE products SET is_active = $1 WHERE id = $2")).
			WithArgs(false, 99).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.SetProductActive(context.Background(), 99, false), pgx.ErrNoRows)
	})

	t.Run("SetProductApproved", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE products SET is_approved = $1 WHERE id = $2")).
			WithArgs(true, 42).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.SetProductApproved(context.Background(), 42, true))
	})

	t.Run("SetCategoryActive", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE categories SET is_active = $1 WHERE id = $2")).
			WithArgs(false, 1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.SetCategoryActive(context.Background(), 1, false))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Counters(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("IncrementSales", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE products SET total_sales = total_sales + 1 WHERE id = $1")).
			WithArgs(42).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.IncrementSales(context.Background(), 42))
	})

	t.Run("IncrementDownloads", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE products SET total_downloads = total_downloads + 1 WHERE id = $1")).
			WithArgs(42).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.IncrementDownloads(context.Background(), 42))
	})

	t.Run("UpdateRating", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("SET rating_average = $1, total_reviews = $2")).
			WithArgs(4.3, 3, 42).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.UpdateRating(context.Background(), 42, 4.3, 3))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Store(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, store_name, store_slug FROM stores")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "store_name", "store_slug"}).
			AddRow(5, 10, "Prodigi Store", "prodigi-store"))

	store, err := repo.Store(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 5, store.ID)
	assert.Equal(t, 10, store.UserID)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id FROM stores")).
		WillReturnRows(pgxmock.NewRows([]string{"user_id"}).AddRow(10))

	ownerID, err := repo.StoreOwnerID(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 10, ownerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountProducts(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*), COUNT(*) FILTER (WHERE is_approved = FALSE AND is_active = TRUE)")).
		WillReturnRows(pgxmock.NewRows([]string{"count", "pending"}).AddRow(34, 3))

	total, pending, err := repo.CountProducts(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 34, total)
	assert.Equal(t, 3, pending)
	assert.NoError(t, mock.ExpectationsWereMet())
}
