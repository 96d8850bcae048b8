package cartrepo

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

// Add relies on the unique index on (user_id, product_id); a duplicate add
// surfaces as pg.ErrUniqueViolation rather than a racy pre-check.
func (r *Repository) Add(ctx context.Context, userID, productID int) error {
	query := `
        INSERT INTO shopping_cart (user_id, product_id)
        VALUES ($1, $2)
    `
	_, err := r.db.Exec(ctx, query, userID, productID)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return fmt.Errorf("cart line (%d, %d): %w", userID, productID, pg.ErrUniqueViolation)
		}
		zap.L().Error("can't add cart item", zap.Error(err))
		return err
	}
	return nil
}

// Remove folds the ownership check into the delete predicate.
func (r *Repository) Remove(ctx context.Context, cartID, userID int) (int64, error) {
	query := `
        DELETE FROM shopping_cart
        WHERE id = $1 AND user_id = $2
    `
	tag, err := r.db.Exec(ctx, query, cartID, userID)
	if err != nil {
		zap.L().Error("can't remove cart item", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Items returns the user's cart lines joined with their products. Inactive and
// unapproved products are excluded.
func (r *Repository) Items(ctx context.Context, userID int) ([]domain.CartItem, error) {
	query := `
        SELECT c.id, c.user_id, c.product_id, c.added_at,
               p.product_name, p.slug, p.price, p.discount_price, p.thumbnail_path,
               p.file_path, p.is_active, p.is_approved
        FROM shopping_cart c
        JOIN products p ON c.product_id = p.id
        WHERE c.user_id = $1 AND p.is_active = TRUE AND p.is_approved = TRUE
        ORDER BY c.added_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get cart items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		err := rows.Scan(
			&item.ID, &item.UserID, &item.ProductID, &item.AddedAt,
			&item.Product.ProductName, &item.Product.Slug, &item.Product.Price,
			&item.Product.DiscountPrice, &item.Product.ThumbnailPath,
			&item.Product.FilePath, &item.Product.IsActive, &item.Product.IsApproved,
		)
		if err != nil {
			zap.L().Error("can't scan cart row", zap.Error(err))
			return nil, err
		}
		item.Product.ID = item.ProductID
		items = append(items, item)
	}
	return items, nil
}

func (r *Repository) Count(ctx context.Context, userID int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM shopping_cart WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		zap.L().Error("can't count cart items", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) Clear(ctx context.Context, userID int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM shopping_cart WHERE user_id = $1`, userID)
	if err != nil {
		zap.L().Error("can't clear cart", zap.Error(err))
		return err
	}
	return nil
}
