package transactionrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/aibaljacob/prodigi/internal/domain"
	"github.com/aibaljacob/prodigi/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// SaveAll inserts one pending row per cart line of a checkout attempt. The
// inserts run in a single transaction so an abandoned checkout never leaves a
// partial set behind.
func (r *Repository) SaveAll(ctx context.Context, transactions []domain.Transaction) error {
	query := `
        INSERT INTO transactions (
            transaction_uuid, buyer_id, seller_id, product_id, amount,
            commission_percentage, commission_amount, seller_earnings,
            payment_gateway, razorpay_order_id, payment_status
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, t := range transactions {
			_, err := r.db.Exec(ctx, query,
				t.TransactionUUID, t.BuyerID, t.SellerID, t.ProductID, t.Amount,
				t.CommissionPercentage, t.CommissionAmount, t.SellerEarnings,
				t.PaymentGateway, t.RazorpayOrderID, t.PaymentStatus,
			)
			if err != nil {
				zap.L().Error("can't save transaction", zap.Error(err))
				return err
			}
		}
		return nil
	})
}

// MarkCompleted flips the buyer's pending rows for the given remote order to
// completed and returns the affected product ids. Rows already completed are
// not matched, which makes a replayed callback a no-op.
func (r *Repository) MarkCompleted(ctx context.Context, orderID string, buyerID int, paymentID, signature string) ([]int, error) {
	query := `
        UPDATE transactions
        SET payment_status = 'completed',
            razorpay_payment_id = $1,
            razorpay_signature = $2,
            paid_at = now()
        WHERE razorpay_order_id = $3
          AND buyer_id = $4
          AND payment_status = 'pending'
        RETURNING product_id
    `
	rows, err := r.db.Query(ctx, query, paymentID, signature, orderID, buyerID)
	if err != nil {
		zap.L().Error("can't mark transactions completed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var productIDs []int
	for rows.Next() {
		var productID int
		if err := rows.Scan(&productID); err != nil {
			zap.L().Error("can't scan completed transaction row", zap.Error(err))
			return nil, err
		}
		productIDs = append(productIDs, productID)
	}
	return productIDs, nil
}

func (r *Repository) HasCompletedForProduct(ctx context.Context, buyerID, productID int) (bool, error) {
	var exists bool
	query := `
        SELECT EXISTS (
            SELECT 1 FROM transactions
            WHERE buyer_id = $1 AND product_id = $2 AND payment_status = 'completed'
        )
    `
	err := r.db.QueryRow(ctx, query, buyerID, productID).Scan(&exists)
	if err != nil {
		zap.L().Error("can't check completed transaction", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) FindCompletedForProduct(ctx context.Context, buyerID, productID int) (*domain.Transaction, error) {
	var t domain.Transaction
	query := `
        SELECT id, transaction_uuid, buyer_id, product_id, amount, payment_status
        FROM transactions
        WHERE buyer_id = $1 AND product_id = $2 AND payment_status = 'completed'
        ORDER BY id ASC
        LIMIT 1
    `
	err := r.db.QueryRow(ctx, query, buyerID, productID).
		Scan(&t.ID, &t.TransactionUUID, &t.BuyerID, &t.ProductID, &t.Amount, &t.PaymentStatus)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find completed transaction", zap.Error(err))
		return nil, err
	}
	return &t, nil
}

// FindForDownload loads a buyer's transaction joined with the purchased
// product's delivery fields. Only completed transactions match.
func (r *Repository) FindForDownload(ctx context.Context, transactionID, buyerID int) (*domain.Transaction, *domain.Product, error) {
	query := `
        SELECT t.id, t.buyer_id, t.product_id, t.payment_status, t.download_count, t.paid_at,
               p.product_name, p.file_path, p.file_original_name,
               p.download_limit, p.download_expiry_hours
        FROM transactions t
        JOIN products p ON t.product_id = p.id
        WHERE t.id = $1 AND t.buyer_id = $2 AND t.payment_status = 'completed'
    `
	var t domain.Transaction
	var p domain.Product
	err := r.db.QueryRow(ctx, query, transactionID, buyerID).Scan(
		&t.ID, &t.BuyerID, &t.ProductID, &t.PaymentStatus, &t.DownloadCount, &t.PaidAt,
		&p.ProductName, &p.FilePath, &p.FileOriginalName,
		&p.DownloadLimit, &p.DownloadExpiryHours,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil, nil
		}
		zap.L().Error("can't find transaction for download", zap.Error(err))
		return nil, nil, err
	}
	p.ID = t.ProductID
	return &t, &p, nil
}

func (r *Repository) IncrementDownloadCount(ctx context.Context, transactionID int) error {
	_, err := r.db.Exec(ctx, `UPDATE transactions SET download_count = download_count + 1 WHERE id = $1`, transactionID)
	if err != nil {
		zap.L().Error("can't increment download count", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) AddDownloadLog(ctx context.Context, log *domain.DownloadLog) error {
	query := `
        INSERT INTO download_logs (transaction_id, product_id, user_id, ip_address, user_agent)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.db.Exec(ctx, query, log.TransactionID, log.ProductID, log.UserID, log.IPAddress, log.UserAgent)
	if err != nil {
		zap.L().Error("can't write download log", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByBuyer(ctx context.Context, buyerID int) ([]domain.Purchase, error) {
	query := `
        SELECT t.id, t.transaction_uuid, t.product_id, t.amount, t.payment_status,
               t.download_count, t.paid_at, p.product_name
        FROM transactions t
        JOIN products p ON t.product_id = p.id
        WHERE t.buyer_id = $1
        ORDER BY t.created_at DESC
    `
	rows, err := r.db.Query(ctx, query, buyerID)
	if err != nil {
		zap.L().Error("can't list purchases", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		var p domain.Purchase
		err := rows.Scan(&p.ID, &p.TransactionUUID, &p.ProductID, &p.Amount, &p.PaymentStatus,
			&p.DownloadCount, &p.PaidAt, &p.ProductName)
		if err != nil {
			zap.L().Error("can't scan purchase row", zap.Error(err))
			return nil, err
		}
		purchases = append(purchases, p)
	}
	return purchases, nil
}

func (r *Repository) ListAll(ctx context.Context, status string, limit int) ([]domain.Transaction, error) {
	query := `
        SELECT id, transaction_uuid, buyer_id, seller_id, product_id, amount,
               commission_percentage, commission_amount, seller_earnings,
               razorpay_order_id, payment_status, created_at
        FROM transactions
    `
	args := []interface{}{}
	if status != "" {
		query += ` WHERE payment_status = $1`
		args = append(args, status)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		err := rows.Scan(&t.ID, &t.TransactionUUID, &t.BuyerID, &t.SellerID, &t.ProductID, &t.Amount,
			&t.CommissionPercentage, &t.CommissionAmount, &t.SellerEarnings,
			&t.RazorpayOrderID, &t.PaymentStatus, &t.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, nil
}

// FindStalePending returns ids of pending transactions older than the cutoff,
// feeding the background sweep.
func (r *Repository) FindStalePending(ctx context.Context, olderThan time.Time, limit uint32) ([]int, error) {
	query := `
        SELECT id
        FROM transactions
        WHERE payment_status = 'pending' AND created_at < $1
        ORDER BY created_at ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, olderThan, int(limit))
	if err != nil {
		zap.L().Error("can't get stale pending transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan stale pending row", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *Repository) MarkFailed(ctx context.Context, transactionID int) error {
	query := `
        UPDATE transactions
        SET payment_status = 'failed'
        WHERE id = $1 AND payment_status = 'pending'
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, transactionID)
		if err != nil {
			zap.L().Error("can't mark transaction failed", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) DashboardTotals(ctx context.Context) (completed int, revenue, commission float64, err error) {
	query := `
        SELECT COUNT(*), COALESCE(SUM(amount), 0), COALESCE(SUM(commission_amount), 0)
        FROM transactions
        WHERE payment_status = 'completed'
    `
	err = r.db.QueryRow(ctx, query).Scan(&completed, &revenue, &commission)
	if err != nil {
		zap.L().Error("can't compute dashboard totals", zap.Error(err))
		return 0, 0, 0, err
	}
	return completed, revenue, commission, nil
}
