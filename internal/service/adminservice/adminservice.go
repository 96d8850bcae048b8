package adminservice

import (
	"context"
	"errors"

	"github.com/aibaljacob/prodigi/internal/domain"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepo interface {
	List(ctx context.Context) ([]domain.User, error)
	SetActive(ctx context.Context, userID int, isActive bool) error
	Count(ctx context.Context) (int, error)
}

type CatalogRepo interface {
	CountProducts(ctx context.Context) (int, int, error)
}

type TransactionRepo interface {
	ListAll(ctx context.Context, status string, limit int) ([]domain.Transaction, error)
	DashboardTotals(ctx context.Context) (int, float64, float64, error)
}

type Service struct {
	userRepo        UserRepo
	catalogRepo     CatalogRepo
	transactionRepo TransactionRepo
}

func New(userRepo UserRepo, catalogRepo CatalogRepo, transactionRepo TransactionRepo) *Service {
	return &Service{
		userRepo:        userRepo,
		catalogRepo:     catalogRepo,
		transactionRepo: transactionRepo,
	}
}

var ErrUserNotFound = errors.New("user not found")

const transactionsPageLimit = 100

type Dashboard struct {
	TotalUsers       int
	TotalProducts    int
	PendingApprovals int
	CompletedOrders  int
	TotalRevenue     float64
	TotalCommission  float64
}

func (s *Service) GetDashboard(ctx context.Context) (*Dashboard, error) {
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	products, pending, err := s.catalogRepo.CountProducts(ctx)
	if err != nil {
		return nil, err
	}
	completed, revenue, commission, err := s.transactionRepo.DashboardTotals(ctx)
	if err != nil {
		return nil, err
	}
	return &Dashboard{
		TotalUsers:       users,
		TotalProducts:    products,
		PendingApprovals: pending,
		CompletedOrders:  completed,
		TotalRevenue:     revenue,
		TotalCommission:  commission,
	}, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (s *Service) SetUserActive(ctx context.Context, userID int, isActive bool) error {
	err := s.userRepo.SetActive(ctx, userID, isActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		zap.L().Error("can't update user", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) ListTransactions(ctx context.Context, status string) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.ListAll(ctx, status, transactionsPageLimit)
	if err != nil {
		zap.L().Error("can't list transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}
