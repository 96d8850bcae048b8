package catalogrepo

import (
	"context"
	"fmt"

	"github.com/aibaljacob/prodigi/internal/domain"
	"github.com/aibaljacob/prodigi/internal/pg"
	"github.com/jackc/pgx/v5"
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

// ProductFilter narrows the product listing. Zero values mean "no filter";
// OnlyVisible restricts to active approved products for storefront reads.
type ProductFilter struct {
	CategoryID  int
	Search      string
	Page        int
	PerPage     int
	OnlyVisible bool
}

func (r *Repository) ListCategories(ctx context.Context, onlyActive bool) ([]domain.Category, error) {
	query := `
        SELECT id, category_name, slug, is_active, created_at
        FROM categories
    `
	if onlyActive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY category_name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list categories", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.CategoryName, &c.Slug, &c.IsActive, &c.CreatedAt); err != nil {
			zap.L().Error("can't scan category row", zap.Error(err))
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, nil
}

func (r *Repository) CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	query := `
        INSERT INTO categories (category_name, slug)
        VALUES ($1, $2)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, c.CategoryName, c.Slug).Scan(&c.ID)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, fmt.Errorf("category slug %q: %w", c.Slug, pg.ErrUniqueViolation)
		}
		zap.L().Error("can't create category", zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *Repository) UpdateCategory(ctx context.Context, c *domain.Category) error {
	query := `
        UPDATE categories
        SET category_name = $1, slug = $2, is_active = $3
        WHERE id = $4
    `
	tag, err := r.db.Exec(ctx, query, c.CategoryName, c.Slug, c.IsActive, c.ID)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return fmt.Errorf("category slug %q: %w", c.Slug, pg.ErrUniqueViolation)
		}
		zap.L().Error("can't update category", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

const productColumns = `
    id, store_id, category_id, product_name, slug, description, price, discount_price,
    file_path, file_original_name, thumbnail_path, download_limit, download_expiry_hours,
    is_active, is_approved, rating_average, total_reviews, total_sales, total_downloads, created_at`

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.StoreID, &p.CategoryID, &p.ProductName, &p.Slug, &p.Description,
		&p.Price, &p.DiscountPrice, &p.FilePath, &p.FileOriginalName, &p.ThumbnailPath,
		&p.DownloadLimit, &p.DownloadExpiryHours, &p.IsActive, &p.IsApproved,
		&p.RatingAverage, &p.TotalReviews, &p.TotalSales, &p.TotalDownloads, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) ListProducts(ctx context.Context, filter ProductFilter) ([]domain.Product, int, error) {
	where := ` WHERE 1=1`
	args := []interface{}{}
	argn := 0

	if filter.OnlyVisible {
		where += ` AND is_active = TRUE AND is_approved = TRUE`
	}
	if filter.CategoryID > 0 {
		argn++
		where += fmt.Sprintf(` AND category_id = $%d`, argn)
		args = append(args, filter.CategoryID)
	}
	if filter.Search != "" {
		argn++
		where += fmt.Sprintf(` AND product_name ILIKE $%d`, argn)
		args = append(args, "%"+filter.Search+"%")
	}

	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`+where, args...).Scan(&total)
	if err != nil {
		zap.L().Error("can't count products", zap.Error(err))
		return nil, 0, err
	}

	if filter.PerPage <= 0 {
		filter.PerPage = 12
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	query := `SELECT` + productColumns + ` FROM products` + where +
		fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, argn+1, argn+2)
	args = append(args, filter.PerPage, (filter.Page-1)*filter.PerPage)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list products", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			zap.L().Error("can't scan product row", zap.Error(err))
			return nil, 0, err
		}
		products = append(products, *p)
	}
	return products, total, nil
}

func (r *Repository) FindProductByID(ctx context.Context, id int) (*domain.Product, error) {
	row := r.db.QueryRow(ctx, `SELECT`+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find product", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) FindProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	row := r.db.QueryRow(ctx, `SELECT`+productColumns+` FROM products WHERE slug = $1`, slug)
	p, err := scanProduct(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find product by slug", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	query := `
        INSERT INTO products (
            store_id, category_id, product_name, slug, description, price, discount_price,
            file_path, file_original_name, thumbnail_path, download_limit, download_expiry_hours
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		p.StoreID, p.CategoryID, p.ProductName, p.Slug, p.Description, p.Price, p.DiscountPrice,
		p.FilePath, p.FileOriginalName, p.ThumbnailPath, p.DownloadLimit, p.DownloadExpiryHours,
	).Scan(&p.ID)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, fmt.Errorf("product slug %q: %w", p.Slug, pg.ErrUniqueViolation)
		}
		zap.L().Error("can't create product", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) UpdateProduct(ctx context.Context, p *domain.Product) error {
	query := `
        UPDATE products
        SET category_id = $1, product_name = $2, slug = $3, description = $4,
            price = $5, discount_price = $6, file_path = $7, file_original_name = $8,
            thumbnail_path = $9, download_limit = $10, download_expiry_hours = $11,
            is_active = $12
        WHERE id = $13
    `
	tag, err := r.db.Exec(ctx, query,
		p.CategoryID, p.ProductName, p.Slug, p.Description, p.Price, p.DiscountPrice,
		p.FilePath, p.FileOriginalName, p.ThumbnailPath, p.DownloadLimit, p.DownloadExpiryHours,
		p.IsActive, p.ID,
	)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return fmt.Errorf("product slug %q: %w", p.Slug, pg.ErrUniqueViolation)
		}
		zap.L().Error("can't update product", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) SetProductActive(ctx context.Context, productID int, isActive bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE products SET is_active = $1 WHERE id = $2`, isActive, productID)
	if err != nil {
		zap.L().Error("can't update product active flag", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) SetProductApproved(ctx context.Context, productID int, isApproved bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE products SET is_approved = $1 WHERE id = $2`, isApproved, productID)
	if err != nil {
		zap.L().Error("can't update product approval flag", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) IncrementSales(ctx context.Context, productID int) error {
	_, err := r.db.Exec(ctx, `UPDATE products SET total_sales = total_sales + 1 WHERE id = $1`, productID)
	if err != nil {
		zap.L().Error("can't increment product sales", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) IncrementDownloads(ctx context.Context, productID int) error {
	_, err := r.db.Exec(ctx, `UPDATE products SET total_downloads = total_downloads + 1 WHERE id = $1`, productID)
	if err != nil {
		zap.L().Error("can't increment product downloads", zap.Error(err))
		return err
	}
	return nil
}

// UpdateRating writes back the denormalized review aggregate so listings read
// it without joining reviews.
func (r *Repository) UpdateRating(ctx context.Context, productID int, average float64, total int) error {
	query := `
        UPDATE products
        SET rating_average = $1, total_reviews = $2
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, average, total, productID)
	if err != nil {
		zap.L().Error("can't update product rating", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetCategoryActive(ctx context.Context, categoryID int, isActive bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE categories SET is_active = $1 WHERE id = $2`, isActive, categoryID)
	if err != nil {
		zap.L().Error("can't update category active flag", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Store returns the single store of single-vendor mode.
func (r *Repository) Store(ctx context.Context) (*domain.Store, error) {
	var s domain.Store
	err := r.db.QueryRow(ctx, `SELECT id, user_id, store_name, store_slug FROM stores ORDER BY id ASC LIMIT 1`).
		Scan(&s.ID, &s.UserID, &s.StoreName, &s.StoreSlug)
	if err != nil {
		zap.L().Error("can't load store", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

// StoreOwnerID resolves the single vendor's user id.
func (r *Repository) StoreOwnerID(ctx context.Context) (int, error) {
	var ownerID int
	err := r.db.QueryRow(ctx, `SELECT user_id FROM stores ORDER BY id ASC LIMIT 1`).Scan(&ownerID)
	if err != nil {
		zap.L().Error("can't resolve store owner", zap.Error(err))
		return 0, err
	}
	return ownerID, nil
}

func (r *Repository) CountProducts(ctx context.Context) (total int, pendingApproval int, err error) {
	err = r.db.QueryRow(ctx, `
        SELECT COUNT(*), COUNT(*) FILTER (WHERE is_approved = FALSE AND is_active = TRUE)
        FROM products
    `).Scan(&total, &pendingApproval)
	if err != nil {
		zap.L().Error("can't count products", zap.Error(err))
		return 0, 0, err
	}
	return total, pendingApproval, nil
}
