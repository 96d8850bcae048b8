package service

import (
	"github.com/aibaljacob/prodigi/internal/config"
	"github.com/aibaljacob/prodigi/internal/gateway/razorpay"
	"github.com/aibaljacob/prodigi/internal/pg"
	"github.com/aibaljacob/prodigi/internal/repo"
	"github.com/aibaljacob/prodigi/internal/service/adminservice"
	"github.com/aibaljacob/prodigi/internal/service/authservice"
	"github.com/aibaljacob/prodigi/internal/service/cartservice"
	"github.com/aibaljacob/prodigi/internal/service/catalogservice"
	"github.com/aibaljacob/prodigi/internal/service/checkoutservice"
	"github.com/aibaljacob/prodigi/internal/service/deliveryservice"
	"github.com/aibaljacob/prodigi/internal/service/reviewservice"
	pkgauth "github.com/aibaljacob/prodigi/pkg/auth"
)

type Services struct {
	AuthService     *authservice.Service
	CatalogService  *catalogservice.Service
	CartService     *cartservice.Service
	CheckoutService *checkoutservice.Service
	DeliveryService *deliveryservice.Service
	ReviewService   *reviewservice.Service
	AdminService    *adminservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, gateway *razorpay.Client, cfg *config.Config) *Services {
	return &Services{
		AuthService:    authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{}),
		CatalogService: catalogservice.New(repo.CatalogRepo, repo.ReviewRepo, cfg.DownloadLimit, cfg.DownloadExpiryHours),
		CartService:    cartservice.New(repo.CartRepo, repo.TransactionRepo, repo.CatalogRepo),
		CheckoutService: checkoutservice.New(
			repo.CartRepo, repo.TransactionRepo, repo.CatalogRepo,
			gateway, txManager, cfg.CommissionPercentage,
		),
		DeliveryService: deliveryservice.New(repo.TransactionRepo, repo.CatalogRepo, txManager),
		ReviewService:   reviewservice.New(repo.ReviewRepo, repo.TransactionRepo, repo.CatalogRepo, txManager),
		AdminService:    adminservice.New(repo.UserRepo, repo.CatalogRepo, repo.TransactionRepo),
	}
}
