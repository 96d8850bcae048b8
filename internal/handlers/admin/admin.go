package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/aibaljacob/prodigi/internal/domain"
	"github.com/aibaljacob/prodigi/internal/dto"
	adminservice "github.com/aibaljacob/prodigi/internal/service/adminservice"
	catalogservice "github.com/aibaljacob/prodigi/internal/service/catalogservice"
	"github.com/aibaljacob/prodigi/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	GetDashboard(ctx context.Context) (*adminservice.Dashboard, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	SetUserActive(ctx context.Context, userID int, isActive bool) error
	ListTransactions(ctx context.Context, status string) ([]domain.Transaction, error)
}

type CatalogService interface {
	CreateCategory(ctx context.Context, name, slug string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, category *domain.Category) error
	DeleteCategory(ctx context.Context, categoryID int) error
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, productID int) error
	ApproveProduct(ctx context.Context, productID int, isApproved bool) error
}

type AdminHandler struct {
	adminService   Service
	catalogService CatalogService
}

func New(adminService Service, catalogService CatalogService) *AdminHandler {
	return &AdminHandler{
		adminService:   adminService,
		catalogService: catalogService,
	}
}

// Dashboard godoc
//
//	@Summary		Back-office dashboard
//	@Description	Aggregate store counters: users, products, pending approvals, orders, revenue
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DashboardDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/dashboard [get]
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.adminService.GetDashboard(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DashboardDTO{
		TotalUsers:       dashboard.TotalUsers,
		TotalProducts:    dashboard.TotalProducts,
		CompletedOrders:  dashboard.CompletedOrders,
		TotalRevenue:     dashboard.TotalRevenue,
		TotalCommission:  dashboard.TotalCommission,
		PendingApprovals: dashboard.PendingApprovals,
	})
}

// Users godoc
//
//	@Summary		List users
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.UserDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users [get]
func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminService.ListUsers(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		response = append(response, dto.UserDTO{
			ID:        u.ID,
			Login:     u.Login,
			Email:     u.Email,
			Role:      u.Role,
			IsActive:  u.IsActive,
			CreatedAt: u.CreatedAt.Format(time.RFC3339),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// BanUser godoc
//
//	@Summary		Ban or unban a user
//	@Description	Flip the is_active flag of a user account
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int						true	"User id"
//	@Param			request	body	dto.BanUserRequestDTO	true	"Target state"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid request"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users/{id}/ban [post]
func (h *AdminHandler) BanUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || userID < 1 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	var req dto.BanUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.adminService.SetUserActive(r.Context(), userID, req.IsActive); err != nil {
		if errors.Is(err, adminservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithSuccess(w, http.StatusOK, "User updated")
}

// Transactions godoc
//
//	@Summary		List transactions
//	@Description	List store transactions, optionally filtered by payment status
//	@Tags			Admin
//	@Produce		json
//	@Param			status	query	string	false	"Payment status filter"	Enums(pending, completed, failed)
//	@Security		BearerAuth
//	@Success		200	{array}		dto.TransactionDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/transactions [get]
func (h *AdminHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.adminService.ListTransactions(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.TransactionDTO, 0, len(transactions))
	for _, t := range transactions {
		response = append(response, dto.TransactionDTO{
			ID:               t.ID,
			TransactionUUID:  t.TransactionUUID,
			BuyerID:          t.BuyerID,
			ProductID:        t.ProductID,
			Amount:           t.Amount,
			CommissionAmount: t.CommissionAmount,
			SellerEarnings:   t.SellerEarnings,
			PaymentStatus:    t.PaymentStatus,
			RazorpayOrderID:  t.RazorpayOrderID,
			CreatedAt:        t.CreatedAt.Format(time.RFC3339),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateCategory godoc
//
//	@Summary		Create a category
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CategoryRequestDTO	true	"Category body"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.CategoryDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		409	{object}	utils.Response	"Slug already taken"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/categories [post]
func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.CategoryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CategoryName == "" || req.Slug == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Category name and slug are required")
		return
	}

	category, err := h.catalogService.CreateCategory(r.Context(), req.CategoryName, req.Slug)
	if err != nil {
		if errors.Is(err, catalogservice.ErrSlugTaken) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CategoryDTO{
		ID:           category.ID,
		CategoryName: category.CategoryName,
		Slug:         category.Slug,
	})
}

// UpdateCategory godoc
//
//	@Summary		Update a category
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int						true	"Category id"
//	@Param			request	body	dto.CategoryRequestDTO	true	"Category body"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid request"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		404	{object}	utils.Response	"Category not found"
//	@Failure		409	{object}	utils.Response	"Slug already taken"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/categories/{id} [put]
func (h *AdminHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || categoryID < 1 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid category id")
		return
	}
	var req dto.CategoryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CategoryName == "" || req.Slug == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Category name and slug are required")
		return
	}

	err = h.catalogService.UpdateCategory(r.Context(), &domain.Category{
		ID:           categoryID,
		CategoryName: req.CategoryName,
		Slug:         req.Slug,
		IsActive:     true,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalogservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Category not found")
		case errors.Is(err, catalogservice.ErrSlugTaken):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithSuccess(w, http.StatusOK, "Category updated")
}

// DeleteCategory godoc
//
//	@Summary		Deactivate a category
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path	int	true	"Category id"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid category id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		404	{object}	utils.Response	"Category not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/categories/{id} [delete]
func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || categoryID < 1 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid category id")
		return
	}
	if err := h.catalogService.DeleteCategory(r.Context(), categoryID); err != nil {
		if errors.Is(err, catalogservice.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Category not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithSuccess(w, http.StatusOK, "Category deleted")
}

// CreateProduct godoc
//
//	@Summary		Create a product
//	@Description	Create a product in the store catalog; it still needs approval to become visible
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.ProductRequestDTO	true	"Product body"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ProductListItemDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		409	{object}	utils.Response	"Slug already taken"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/products [post]
func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.ProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ProductName == "" || req.Slug == "" || req.CategoryID < 1 || req.Price <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Product name, slug, category and a positive price are required")
		return
	}

	product, err := h.catalogService.CreateProduct(r.Context(), productFromRequest(&req))
	if err != nil {
		if errors.Is(err, catalogservice.ErrSlugTaken) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProductListItemDTO{
		ID:            product.ID,
		ProductName:   product.ProductName,
		Slug:          product.Slug,
		Price:         product.Price,
		DiscountPrice: product.DiscountPrice,
		ThumbnailPath: product.ThumbnailPath,
	})
}

// UpdateProduct godoc
//
//	@Summary		Update a product
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int						true	"Product id"
//	@Param			request	body	dto.ProductRequestDTO	true	"Product body"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid request"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		404	{object}	utils.Response	"Product not found"
//	@Failure		409	{object}	utils.Response	"Slug already taken"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/products/{id} [put]
func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || productID < 1 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}
	var req dto.ProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ProductName == "" || req.Slug == "" || req.CategoryID < 1 || req.Price <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Product name, slug, category and a positive price are required")
		return
	}

	product := productFromRequest(&req)
	product.ID = productID
	err = h.catalogService.UpdateProduct(r.Context(), product)
	if err != nil {
		switch {
		case errors.Is(err, catalogservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		case errors.Is(err, catalogservice.ErrSlugTaken):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithSuccess(w, http.StatusOK, "Product updated")
}

// DeleteProduct godoc
//
//	@Summary		Deactivate a product
//	@Description	Soft-delete via is_active; completed transactions keep their download rights
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path	int	true	"Product id"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid product id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		404	{object}	utils.Response	"Product not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/products/{id} [delete]
func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || productID < 1 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}
	if err := h.catalogService.DeleteProduct(r.Context(), productID); err != nil {
		if errors.Is(err, catalogservice.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Product not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithSuccess(w, http.StatusOK, "Product deleted")
}

// ApproveProduct godoc
//
//	@Summary		Approve or reject a product
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int							true	"Product id"
//	@Param			request	body	dto.ApproveProductRequestDTO	true	"Target state"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid request"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		404	{object}	utils.Response	"Product not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/products/{id}/approve [post]
func (h *AdminHandler) ApproveProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || productID < 1 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}
	var req dto.ApproveProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.catalogService.ApproveProduct(r.Context(), productID, req.IsApproved); err != nil {
		if errors.Is(err, catalogservice.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Product not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithSuccess(w, http.StatusOK, "Product approval updated")
}

func productFromRequest(req *dto.ProductRequestDTO) *domain.Product {
	return &domain.Product{
		CategoryID:          req.CategoryID,
		ProductName:         req.ProductName,
		Slug:                req.Slug,
		Description:         req.Description,
		Price:               req.Price,
		DiscountPrice:       req.DiscountPrice,
		FilePath:            req.FilePath,
		FileOriginalName:    req.FileOriginalName,
		ThumbnailPath:       req.ThumbnailPath,
		DownloadLimit:       req.DownloadLimit,
		DownloadExpiryHours: req.DownloadExpiryHours,
		IsActive:            true,
	}
}
