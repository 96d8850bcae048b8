package catalog

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/aibaljacob/prodigi/internal/domain"
	"github.com/aibaljacob/prodigi/internal/dto"
	catalogservice "github.com/aibaljacob/prodigi/internal/service/catalogservice"
	"github.com/aibaljacob/prodigi/pkg/utils"
	"github.com/go-chi/chi/v5"
)

const (
	defaultPage    = 1
	defaultPerPage = 12
	maxPerPage     = 100
)

type Service interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListProducts(ctx context.Context, categoryID int, search string, page, perPage int) ([]domain.Product, int, error)
	GetProduct(ctx context.Context, slug string) (*domain.Product, []domain.Review, error)
}

type CatalogHandler struct {
	catalogService Service
}

func New(catalogService Service) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// Categories godoc
//
//	@Summary		List categories
//	@Description	List the active storefront categories
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{array}		dto.CategoryDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/categories [get]
func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogService.ListCategories(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.CategoryDTO, 0, len(categories))
	for _, c := range categories {
		response = append(response, dto.CategoryDTO{
			ID:           c.ID,
			CategoryName: c.CategoryName,
			Slug:         c.Slug,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Products godoc
//
//	@Summary		List products
//	@Description	List visible products with optional category filter, search and pagination
//	@Tags			Catalog
//	@Produce		json
//	@Param			category	query		int		false	"Category id"
//	@Param			search		query		string	false	"Search in product name"
//	@Param			page		query		int		false	"Page number"		default(1)
//	@Param			per_page	query		int		false	"Items per page"	default(12)
//	@Success		200			{object}	dto.ProductListResponseDTO
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/products [get]
func (h *CatalogHandler) Products(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	categoryID, _ := strconv.Atoi(query.Get("category"))
	page, _ := strconv.Atoi(query.Get("page"))
	perPage, _ := strconv.Atoi(query.Get("per_page"))
	if page < 1 {
		page = defaultPage
	}
	if perPage < 1 || perPage > maxPerPage {
		perPage = defaultPerPage
	}

	products, total, err := h.catalogService.ListProducts(r.Context(), categoryID, query.Get("search"), page, perPage)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.ProductListResponseDTO{
		Products: make([]dto.ProductListItemDTO, 0, len(products)),
		Page:     page,
		PerPage:  perPage,
		Total:    total,
	}
	for _, p := range products {
		response.Products = append(response.Products, toListItemDTO(&p))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Product godoc
//
//	@Summary		Get a product
//	@Description	Get one visible product by slug, with its approved reviews
//	@Tags			Catalog
//	@Produce		json
//	@Param			slug	path		string	true	"Product slug"
//	@Success		200		{object}	dto.ProductDetailDTO
//	@Failure		404		{object}	utils.Response	"Product not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/products/{slug} [get]
func (h *CatalogHandler) Product(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	product, reviews, err := h.catalogService.GetProduct(r.Context(), slug)
	if err != nil {
		if errors.Is(err, catalogservice.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Product not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.ProductDetailDTO{
		ProductListItemDTO: toListItemDTO(product),
		Description:        product.Description,
		CategoryID:         product.CategoryID,
		Reviews:            make([]dto.ReviewDTO, 0, len(reviews)),
	}
	if categories, err := h.catalogService.ListCategories(r.Context()); err == nil {
		for _, c := range categories {
			if c.ID == product.CategoryID {
				response.CategoryName = c.CategoryName
				break
			}
		}
	}
	for _, review := range reviews {
		response.Reviews = append(response.Reviews, dto.ReviewDTO{
			ID:          review.ID,
			UserID:      review.UserID,
			Rating:      review.Rating,
			ReviewTitle: review.ReviewTitle,
			ReviewText:  review.ReviewText,
			CreatedAt:   review.CreatedAt.Format(time.RFC3339),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toListItemDTO(p *domain.Product) dto.ProductListItemDTO {
	return dto.ProductListItemDTO{
		ID:            p.ID,
		ProductName:   p.ProductName,
		Slug:          p.Slug,
		Price:         p.Price,
		DiscountPrice: p.DiscountPrice,
		ThumbnailPath: p.ThumbnailPath,
		RatingAverage: p.RatingAverage,
		TotalReviews:  p.TotalReviews,
		TotalSales:    p.TotalSales,
	}
}
