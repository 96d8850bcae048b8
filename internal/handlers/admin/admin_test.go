package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aibaljacob/prodigi/internal/domain"
	"github.com/aibaljacob/prodigi/internal/dto"
	adminservice "github.com/aibaljacob/prodigi/internal/service/adminservice"
	catalogservice "github.com/aibaljacob/prodigi/internal/service/catalogservice"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AdminHandler, *MockService, *MockCatalogService) {
	ctrl := gomock.NewController(t)
	adminService := NewMockService(ctrl)
	catalogService := NewMockCatalogService(ctrl)
	handler := New(adminService, catalogService)
	defer ctrl.Finish()
	return handler, adminService, catalogService
}

func requestWithID(method, target, id string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestDashboardHandler(t *testing.T) {
	handler, adminService, _ := NewMock(t)

	t.Run("Dashboard totals", func(t *testing.T) {
		adminService.EXPECT().GetDashboard(gomock.Any()).Return(&adminservice.Dashboard{
			TotalUsers:       120,
			TotalProducts:    34,
			CompletedOrders:  215,
			TotalRevenue:     86500.0,
			TotalCommission:  8650.0,
			PendingApprovals: 3,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
		rr := httptest.NewRecorder()
		handler.Dashboard(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var response dto.DashboardDTO
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Equal(t, 120, response.TotalUsers)
		assert.Equal(t, 86500.0, response.TotalRevenue)
		assert.Equal(t, 3, response.PendingApprovals)
	})

	t.Run("Service failure", func(t *testing.T) {
		adminService.EXPECT().GetDashboard(gomock.Any()).Return(nil, errors.New("database error"))

		req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
		rr := httptest.NewRecorder()
		handler.Dashboard(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestUsersHandler(t *testing.T) {
	handler, adminService, _ := NewMock(t)
	createdAt := time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC)

	adminService.EXPECT().ListUsers(gomock.Any()).Return([]domain.User{
		{ID: 1, Login: "gopher", Email: "gopher@example.com", Role: "buyer", IsActive: true, CreatedAt: createdAt},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	rr := httptest.NewRecorder()
	handler.Users(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var response []dto.UserDTO
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Len(t, response, 1)
	assert.Equal(t, "gopher", response[0].Login)
	assert.Equal(t, "2025-01-02T15:04:05Z", response[0].CreatedAt)
}

func TestBanUserHandler(t *testing.T) {
	tests := []struct {
		name         string
		id           string
		body         string
		prepareMock  func(adminService *MockService)
		expectedCode int
	}{
		{
			name: "User banned",
			id:   "7",
			body: `{"is_active":false}`,
			prepareMock: func(adminService *MockService) {
				adminService.EXPECT().SetUserActive(gomock.Any(), 7, false).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid id",
			id:           "abc",
			body:         `{"is_active":false}`,
			prepareMock:  func(*MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid body",
			id:           "7",
			body:         `{invalid`,
			prepareMock:  func(*MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "User not found",
			id:   "99",
			body: `{"is_active":false}`,
			prepareMock: func(adminService *MockService) {
				adminService.EXPECT().SetUserActive(gomock.Any(), 99, false).Return(adminservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, adminService, _ := NewMock(t)
			tt.prepareMock(adminService)

			rr := httptest.NewRecorder()
			handler.BanUser(rr, requestWithID(http.MethodPost, "/api/admin/users/"+tt.id+"/ban", tt.id, []byte(tt.body)))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestTransactionsHandler(t *testing.T) {
	handler, adminService, _ := NewMock(t)
	createdAt := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

	adminService.EXPECT().ListTransactions(gomock.Any(), "completed").Return([]domain.Transaction{
		{
			ID: 7, TransactionUUID: "TXN_a1b2c3d4_42", BuyerID: 1, ProductID: 42,
			Amount: 400.0, CommissionAmount: 40.0, SellerEarnings: 360.0,
			PaymentStatus: "completed", RazorpayOrderID: "order_R5", CreatedAt: createdAt,
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/transactions?status=completed", nil)
	rr := httptest.NewRecorder()
	handler.Transactions(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var response []dto.TransactionDTO
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Len(t, response, 1)
	assert.Equal(t, 40.0, response[0].CommissionAmount)
	assert.Equal(t, "order_R5", response[0].RazorpayOrderID)
}

func TestCreateCategoryHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(catalogService *MockCatalogService)
		expectedCode int
	}{
		{
			name: "Category created",
			body: `{"category_name":"E-Books","slug":"e-books"}`,
			prepareMock: func(catalogService *MockCatalogService) {
				catalogService.EXPECT().CreateCategory(gomock.Any(), "E-Books", "e-books").
					Return(&domain.Category{ID: 1, CategoryName: "E-Books", Slug: "e-books", IsActive: true}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing fields",
			body:         `{"category_name":"E-Books"}`,
			prepareMock:  func(*MockCatalogService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Slug taken",
			body: `{"category_name":"E-Books","slug":"e-books"}`,
			prepareMock: func(catalogService *MockCatalogService) {
				catalogService.EXPECT().CreateCategory(gomock.Any(), "E-Books", "e-books").
					Return(nil, catalogservice.ErrSlugTaken)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _, catalogService := NewMock(t)
			tt.prepareMock(catalogService)

			req := httptest.NewRequest(http.MethodPost, "/api/admin/categories", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler.CreateCategory(rr, req)
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestUpdateCategoryHandler(t *testing.T) {
	t.Run("Category updated active", func(t *testing.T) {
		handler, _, catalogService := NewMock(t)
		catalogService.EXPECT().
			UpdateCategory(gomock.Any(), &domain.Category{ID: 1, CategoryName: "Books", Slug: "books", IsActive: true}).
			Return(nil)

		rr := httptest.NewRecorder()
		handler.UpdateCategory(rr, requestWithID(http.MethodPut, "/api/admin/categories/1", "1", []byte(`{"category_name":"Books","slug":"books"}`)))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Category not found", func(t *testing.T) {
		handler, _, catalogService := NewMock(t)
		catalogService.EXPECT().UpdateCategory(gomock.Any(), gomock.Any()).Return(catalogservice.ErrNotFound)

		rr := httptest.NewRecorder()
		handler.UpdateCategory(rr, requestWithID(http.MethodPut, "/api/admin/categories/99", "99", []byte(`{"category_name":"Books","slug":"books"}`)))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestDeleteCategoryHandler(t *testing.T) {
	handler, _, catalogService := NewMock(t)

	catalogService.EXPECT().DeleteCategory(gomock.Any(), 1).Return(nil)
	rr := httptest.NewRecorder()
	handler.DeleteCategory(rr, requestWithID(http.MethodDelete, "/api/admin/categories/1", "1", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	catalogService.EXPECT().DeleteCategory(gomock.Any(), 99).Return(catalogservice.ErrNotFound)
	rr = httptest.NewRecorder()
	handler.DeleteCategory(rr, requestWithID(http.MethodDelete, "/api/admin/categories/99", "99", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCreateProductHandler(t *testing.T) {
	validBody := `{"category_id":1,"product_name":"Go in Practice","slug":"go-in-practice","price":500,"file_path":"products/go-in-practice.pdf"}`

	t.Run("Product created pending approval", func(t *testing.T) {
		handler, _, catalogService := NewMock(t)
		catalogService.EXPECT().
			CreateProduct(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *domain.Product) (*domain.Product, error) {
				assert.Equal(t, "go-in-practice", p.Slug)
				assert.True(t, p.IsActive)
				assert.False(t, p.IsApproved)
				p.ID = 42
				return p, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/api/admin/products", bytes.NewBufferString(validBody))
		rr := httptest.NewRecorder()
		handler.CreateProduct(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var response dto.ProductListItemDTO
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Equal(t, 42, response.ID)
	})

	t.Run("Price must be positive", func(t *testing.T) {
		handler, _, _ := NewMock(t)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/products", bytes.NewBufferString(`{"category_id":1,"product_name":"Free","slug":"free","price":0}`))
		rr := httptest.NewRecorder()
		handler.CreateProduct(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Slug taken", func(t *testing.T) {
		handler, _, catalogService := NewMock(t)
		catalogService.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Return(nil, catalogservice.ErrSlugTaken)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/products", bytes.NewBufferString(validBody))
		rr := httptest.NewRecorder()
		handler.CreateProduct(rr, req)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestUpdateProductHandler(t *testing.T) {
	handler, _, catalogService := NewMock(t)

	catalogService.EXPECT().
		UpdateProduct(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.Product) error {
			assert.Equal(t, 42, p.ID)
			assert.Equal(t, 750.0, p.Price)
			return nil
		})

	body := `{"category_id":1,"product_name":"Go in Practice","slug":"go-in-practice","price":750}`
	rr := httptest.NewRecorder()
	handler.UpdateProduct(rr, requestWithID(http.MethodPut, "/api/admin/products/42", "42", []byte(body)))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestDeleteProductHandler(t *testing.T) {
	handler, _, catalogService := NewMock(t)

	catalogService.EXPECT().DeleteProduct(gomock.Any(), 42).Return(nil)
	rr := httptest.NewRecorder()
	handler.DeleteProduct(rr, requestWithID(http.MethodDelete, "/api/admin/products/42", "42", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	catalogService.EXPECT().DeleteProduct(gomock.Any(), 99).Return(catalogservice.ErrNotFound)
	rr = httptest.NewRecorder()
	handler.DeleteProduct(rr, requestWithID(http.MethodDelete, "/api/admin/products/99", "99", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestApproveProductHandler(t *testing.T) {
	tests := []struct {
		name         string
		id           string
		body         string
		prepareMock  func(catalogService *MockCatalogService)
		expectedCode int
	}{
		{
			name: "Product approved",
			id:   "42",
			body: `{"is_approved":true}`,
			prepareMock: func(catalogService *MockCatalogService) {
				catalogService.EXPECT().ApproveProduct(gomock.Any(), 42, true).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Product rejected",
			id:   "42",
			body: `{"is_approved":false}`,
			prepareMock: func(catalogService *MockCatalogService) {
				catalogService.EXPECT().ApproveProduct(gomock.Any(), 42, false).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid id",
			id:           "0",
			body:         `{"is_approved":true}`,
			prepareMock:  func(*MockCatalogService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Product not found",
			id:   "99",
			body: `{"is_approved":true}`,
			prepareMock: func(catalogService *MockCatalogService) {
				catalogService.EXPECT().ApproveProduct(gomock.Any(), 99, true).Return(catalogservice.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _, catalogService := NewMock(t)
			tt.prepareMock(catalogService)

			rr := httptest.NewRecorder()
			handler.ApproveProduct(rr, requestWithID(http.MethodPost, "/api/admin/products/"+tt.id+"/approve", tt.id, []byte(tt.body)))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
