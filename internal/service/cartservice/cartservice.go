package cartservice

import (
	"context"
	"errors"

	"github.com/aibaljacob/prodigi/internal/domain"
	"github.com/aibaljacob/prodigi/internal/pg"
	"go.uber.org/zap"
)

type CartRepo interface {
	Add(ctx context.Context, userID, productID int) error
	Remove(ctx context.Context, cartID, userID int) (int64, error)
	Items(ctx context.Context, userID int) ([]domain.CartItem, error)
	Clear(ctx context.Context, userID int) error
}

type TransactionRepo interface {
	HasCompletedForProduct(ctx context.Context, buyerID, productID int) (bool, error)
}

type CatalogRepo interface {
	FindProductByID(ctx context.Context, id int) (*domain.Product, error)
}

type Service struct {
	cartRepo        CartRepo
	transactionRepo TransactionRepo
	catalogRepo     CatalogRepo
}

func New(cartRepo CartRepo, transactionRepo TransactionRepo, catalogRepo CatalogRepo) *Service {
	return &Service{
		cartRepo:        cartRepo,
		transactionRepo: transactionRepo,
		catalogRepo:     catalogRepo,
	}
}

var (
	ErrAlreadyInCart    = errors.New("product already in cart")
	ErrAlreadyOwned     = errors.New("you already own this product")
	ErrProductNotFound  = errors.New("product not found")
	ErrCartItemNotFound = errors.New("cart item not found")
)

// AddItem puts a product into the user's cart. A product is either in the
// cart or not; there is no quantity.
func (s *Service) AddItem(ctx context.Context, userID, productID int) error {
	product, err := s.catalogRepo.FindProductByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil || !product.IsActive || !product.IsApproved {
		return ErrProductNotFound
	}

	owned, err := s.transactionRepo.HasCompletedForProduct(ctx, userID, productID)
	if err != nil {
		return err
	}
	if owned {
		zap.L().Info("product already owned", zap.Int("userID", userID), zap.Int("productID", productID))
		return ErrAlreadyOwned
	}

	if err := s.cartRepo.Add(ctx, userID, productID); err != nil {
		if errors.Is(err, pg.ErrUniqueViolation) {
			return ErrAlreadyInCart
		}
		zap.L().Error("can't add cart item", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) RemoveItem(ctx context.Context, cartID, userID int) error {
	affected, err := s.cartRepo.Remove(ctx, cartID, userID)
	if err != nil {
		zap.L().Error("can't remove cart item", zap.Error(err))
		return err
	}
	if affected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

func (s *Service) GetCart(ctx context.Context, userID int) ([]domain.CartItem, float64, error) {
	items, err := s.cartRepo.Items(ctx, userID)
	if err != nil {
		zap.L().Error("can't get cart", zap.Error(err))
		return nil, 0, err
	}

	var total float64
	for _, item := range items {
		total += item.Product.EffectivePrice()
	}
	return items, total, nil
}

func (s *Service) ClearCart(ctx context.Context, userID int) error {
	if err := s.cartRepo.Clear(ctx, userID); err != nil {
		zap.L().Error("can't clear cart", zap.Error(err))
		return err
	}
	return nil
}
