package repo

import (
	"testing"

	"github.com/aibaljacob/prodigi/internal/pg"
	cartrepo "github.com/aibaljacob/prodigi/internal/repo/cart-repo"
	catalogrepo "github.com/aibaljacob/prodigi/internal/repo/catalog-repo"
	reviewrepo "github.com/aibaljacob/prodigi/internal/repo/review-repo"
	transactionrepo "github.com/aibaljacob/prodigi/internal/repo/transaction-repo"
	userrepo "github.com/aibaljacob/prodigi/internal/repo/user-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.CatalogRepo)
	assert.NotNil(t, repo.CartRepo)
	assert.NotNil(t, repo.TransactionRepo)
	assert.NotNil(t, repo.ReviewRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &catalogrepo.Repository{}, repo.CatalogRepo)
	assert.IsType(t, &cartrepo.Repository{}, repo.CartRepo)
	assert.IsType(t, &transactionrepo.Repository{}, repo.TransactionRepo)
	assert.IsType(t, &reviewrepo.Repository{}, repo.ReviewRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
