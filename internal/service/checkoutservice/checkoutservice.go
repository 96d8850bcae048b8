package checkoutservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/aibaljacob/prodigi/internal/domain"
	"github.com/aibaljacob/prodigi/internal/gateway/razorpay"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CartRepo interface {
	Items(ctx context.Context, userID int) ([]domain.CartItem, error)
	Clear(ctx context.Context, userID int) error
}

type TransactionRepo interface {
	SaveAll(ctx context.Context, transactions []domain.Transaction) error
	MarkCompleted(ctx context.Context, orderID string, buyerID int, paymentID, signature string) ([]int, error)
	ListByBuyer(ctx context.Context, buyerID int) ([]domain.Purchase, error)
}

type CatalogRepo interface {
	StoreOwnerID(ctx context.Context) (int, error)
	IncrementSales(ctx context.Context, productID int) error
}

type Gateway interface {
	CreateOrder(ctx context.Context, amountMinor int64, receipt string, notes map[string]interface{}) (*razorpay.Order, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

type TXManager interface {
	Begin(ctx context.Context, fn func(ctx context.Context) error) error
}

type Service struct {
	cartRepo        CartRepo
	transactionRepo TransactionRepo
	catalogRepo     CatalogRepo
	gateway         Gateway
	txManager       TXManager
	commissionPct   float64
}

func New(cartRepo CartRepo, transactionRepo TransactionRepo, catalogRepo CatalogRepo, gateway Gateway, txManager TXManager, commissionPct float64) *Service {
	return &Service{
		cartRepo:        cartRepo,
		transactionRepo: transactionRepo,
		catalogRepo:     catalogRepo,
		gateway:         gateway,
		txManager:       txManager,
		commissionPct:   commissionPct,
	}
}

var (
	ErrCartEmpty         = errors.New("cart is empty")
	ErrGateway           = errors.New("payment gateway error")
	ErrSignatureMismatch = errors.New("payment signature verification failed")
)

// CreateOrder turns the user's cart into a remote gateway order plus one
// pending transaction row per cart line. The cart itself is left untouched;
// it is cleared only after verified payment.
func (s *Service) CreateOrder(ctx context.Context, userID int) (*razorpay.Order, error) {
	items, err := s.cartRepo.Items(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	var cartTotal float64
	for _, item := range items {
		cartTotal += item.Product.EffectivePrice()
	}
	amountMinor := int64(math.Round(cartTotal * 100))

	receipt := fmt.Sprintf("order_%d_%d", time.Now().Unix(), userID)
	order, err := s.gateway.CreateOrder(ctx, amountMinor, receipt, map[string]interface{}{
		"user_id":     userID,
		"items_count": len(items),
	})
	if err != nil {
		zap.L().Error("can't create gateway order", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	sellerID, err := s.catalogRepo.StoreOwnerID(ctx)
	if err != nil {
		return nil, err
	}

	// Sibling rows of one checkout attempt share a uuid prefix but stay
	// independently trackable per product.
	prefix := "TXN_" + uuid.NewString()
	transactions := make([]domain.Transaction, 0, len(items))
	for _, item := range items {
		amount := item.Product.EffectivePrice()
		commission := math.Round(amount*s.commissionPct) / 100
		transactions = append(transactions, domain.Transaction{
			TransactionUUID:      fmt.Sprintf("%s_%d", prefix, item.ProductID),
			BuyerID:              userID,
			SellerID:             sellerID,
			ProductID:            item.ProductID,
			Amount:               amount,
			CommissionPercentage: s.commissionPct,
			CommissionAmount:     commission,
			SellerEarnings:       amount - commission,
			PaymentGateway:       "razorpay",
			RazorpayOrderID:      order.ID,
			PaymentStatus:        domain.PaymentStatusPending,
		})
	}

	if err := s.transactionRepo.SaveAll(ctx, transactions); err != nil {
		zap.L().Error("can't save pending transactions", zap.Error(err))
		return nil, err
	}

	zap.L().Info("checkout order created",
		zap.String("orderID", order.ID), zap.Int("userID", userID), zap.Int("items", len(items)))
	return order, nil
}

// VerifyPayment checks the callback signature and, on match, atomically flips
// the pending rows to completed, bumps sale counters and clears the cart.
// A replayed valid callback matches zero pending rows and changes nothing.
func (s *Service) VerifyPayment(ctx context.Context, userID int, orderID, paymentID, signature string) error {
	if !s.gateway.VerifySignature(orderID, paymentID, signature) {
		zap.L().Warn("payment signature mismatch", zap.String("orderID", orderID), zap.Int("userID", userID))
		return ErrSignatureMismatch
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		productIDs, err := s.transactionRepo.MarkCompleted(ctx, orderID, userID, paymentID, signature)
		if err != nil {
			return err
		}

		for _, productID := range productIDs {
			if err := s.catalogRepo.IncrementSales(ctx, productID); err != nil {
				return err
			}
		}

		if err := s.cartRepo.Clear(ctx, userID); err != nil {
			return err
		}

		zap.L().Info("payment verified",
			zap.String("orderID", orderID), zap.Int("userID", userID), zap.Int("completed", len(productIDs)))
		return nil
	})
}

func (s *Service) GetPurchases(ctx context.Context, userID int) ([]domain.Purchase, error) {
	purchases, err := s.transactionRepo.ListByBuyer(ctx, userID)
	if err != nil {
		zap.L().Error("can't list purchases", zap.Error(err))
		return nil, err
	}
	return purchases, nil
}
