package deliveryservice

import (
	"context"
	"errors"
	"time"

	"github.com/aibaljacob/prodigi/internal/domain"
	"go.uber.org/zap"
)

type TransactionRepo interface {
	FindForDownload(ctx context.Context, transactionID, buyerID int) (*domain.Transaction, *domain.Product, error)
	IncrementDownloadCount(ctx context.Context, transactionID int) error
	AddDownloadLog(ctx context.Context, log *domain.DownloadLog) error
}

type CatalogRepo interface {
	IncrementDownloads(ctx context.Context, productID int) error
}

type TXManager interface {
	Begin(ctx context.Context, fn func(ctx context.Context) error) error
}

type Service struct {
	transactionRepo TransactionRepo
	catalogRepo     CatalogRepo
	txManager       TXManager
}

func New(transactionRepo TransactionRepo, catalogRepo CatalogRepo, txManager TXManager) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		catalogRepo:     catalogRepo,
		txManager:       txManager,
	}
}

var (
	ErrNotAuthorized = errors.New("download not authorized or payment not completed")
	ErrFileMissing   = errors.New("file not available for this product")
	ErrLimitExceeded = errors.New("download limit exceeded")
	ErrExpired       = errors.New("download link expired")
)

// Authorize runs the download gate for a buyer's transaction and, when every
// precondition holds, records the download before any byte is served: audit
// log row, transaction download_count, product total_downloads, all in one
// database transaction. A download_limit of 0 means unlimited.
func (s *Service) Authorize(ctx context.Context, userID, transactionID int, ip, userAgent string) (*domain.Product, error) {
	transaction, product, err := s.transactionRepo.FindForDownload(ctx, transactionID, userID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, ErrNotAuthorized
	}

	if product.FilePath == "" {
		return nil, ErrFileMissing
	}

	if product.DownloadLimit > 0 && transaction.DownloadCount >= product.DownloadLimit {
		zap.L().Info("download limit reached",
			zap.Int("transactionID", transactionID), zap.Int("count", transaction.DownloadCount))
		return nil, ErrLimitExceeded
	}

	if product.DownloadExpiryHours > 0 && transaction.PaidAt != nil {
		expiry := transaction.PaidAt.Add(time.Duration(product.DownloadExpiryHours) * time.Hour)
		if time.Now().After(expiry) {
			zap.L().Info("download link expired",
				zap.Int("transactionID", transactionID), zap.Time("expiry", expiry))
			return nil, ErrExpired
		}
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.transactionRepo.AddDownloadLog(ctx, &domain.DownloadLog{
			TransactionID: transactionID,
			ProductID:     transaction.ProductID,
			UserID:        userID,
			IPAddress:     ip,
			UserAgent:     userAgent,
		}); err != nil {
			return err
		}
		if err := s.transactionRepo.IncrementDownloadCount(ctx, transactionID); err != nil {
			return err
		}
		return s.catalogRepo.IncrementDownloads(ctx, transaction.ProductID)
	})
	if err != nil {
		zap.L().Error("can't record download", zap.Error(err))
		return nil, err
	}

	return product, nil
}
