package repo

import (
	"github.com/aibaljacob/prodigi/internal/pg"
	cartrepo "github.com/aibaljacob/prodigi/internal/repo/cart-repo"
	catalogrepo "github.com/aibaljacob/prodigi/internal/repo/catalog-repo"
	reviewrepo "github.com/aibaljacob/prodigi/internal/repo/review-repo"
	transactionrepo "github.com/aibaljacob/prodigi/internal/repo/transaction-repo"
	userrepo "github.com/aibaljacob/prodigi/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo        *userrepo.Repository
	CatalogRepo     *catalogrepo.Repository
	CartRepo        *cartrepo.Repository
	TransactionRepo *transactionrepo.Repository
	ReviewRepo      *reviewrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		CatalogRepo:     catalogrepo.New(conn),
		CartRepo:        cartrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn, txManager),
		ReviewRepo:      reviewrepo.New(conn),
	}
}
