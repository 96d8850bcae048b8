package cart

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aibaljacob/prodigi/internal/domain"
	"github.com/aibaljacob/prodigi/internal/dto"
	cartservice "github.com/aibaljacob/prodigi/internal/service/cartservice"
	"github.com/aibaljacob/prodigi/pkg/auth"
	"github.com/aibaljacob/prodigi/pkg/utils"
)

type Service interface {
	AddItem(ctx context.Context, userID, productID int) error
	RemoveItem(ctx context.Context, cartID, userID int) error
	GetCart(ctx context.Context, userID int) ([]domain.CartItem, float64, error)
	ClearCart(ctx context.Context, userID int) error
}

type CartHandler struct {
	cartService Service
}

func New(cartService Service) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// Add godoc
//
//	@Summary		Add a product to the cart
//	@Description	Put a product into the authenticated user's cart
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CartAddRequestDTO	true	"Product to add"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Product not found"
//	@Failure		409	{object}	utils.Response	"Already in cart or already owned"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cart/add [post]
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CartAddRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ProductID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Product id is required")
		return
	}

	err := h.cartService.AddItem(r.Context(), userID, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, cartservice.ErrProductNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, cartservice.ErrAlreadyInCart), errors.Is(err, cartservice.ErrAlreadyOwned):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithSuccess(w, http.StatusOK, "Added to cart")
}

// Remove godoc
//
//	@Summary		Remove a cart line
//	@Description	Delete a cart line owned by the authenticated user
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CartRemoveRequestDTO	true	"Cart line to remove"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Cart line not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cart/remove [post]
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CartRemoveRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CartID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Cart id is required")
		return
	}

	err := h.cartService.RemoveItem(r.Context(), req.CartID, userID)
	if err != nil {
		if errors.Is(err, cartservice.ErrCartItemNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithSuccess(w, http.StatusOK, "Removed from cart")
}

// Get godoc
//
//	@Summary		Get the cart
//	@Description	List the authenticated user's cart with its total
//	@Tags			Cart
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.CartResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cart [get]
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	items, total, err := h.cartService.GetCart(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.CartResponseDTO{
		Items: make([]dto.CartItemDTO, 0, len(items)),
		Total: total,
		Count: len(items),
	}
	for _, item := range items {
		response.Items = append(response.Items, dto.CartItemDTO{
			CartID:        item.ID,
			ProductID:     item.ProductID,
			ProductName:   item.Product.ProductName,
			Slug:          item.Product.Slug,
			Price:         item.Product.Price,
			DiscountPrice: item.Product.DiscountPrice,
			ThumbnailPath: item.Product.ThumbnailPath,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Clear godoc
//
//	@Summary		Clear the cart
//	@Description	Delete every cart line of the authenticated user
//	@Tags			Cart
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cart/clear [post]
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	if err := h.cartService.ClearCart(r.Context(), userID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithSuccess(w, http.StatusOK, "Cart cleared")
}
