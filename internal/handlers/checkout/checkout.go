package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aibaljacob/prodigi/internal/domain"
	"github.com/aibaljacob/prodigi/internal/dto"
	"github.com/aibaljacob/prodigi/internal/gateway/razorpay"
	checkoutservice "github.com/aibaljacob/prodigi/internal/service/checkoutservice"
	"github.com/aibaljacob/prodigi/pkg/auth"
	"github.com/aibaljacob/prodigi/pkg/utils"
)

type Service interface {
	CreateOrder(ctx context.Context, userID int) (*razorpay.Order, error)
	VerifyPayment(ctx context.Context, userID int, orderID, paymentID, signature string) error
	GetPurchases(ctx context.Context, userID int) ([]domain.Purchase, error)
}

type CheckoutHandler struct {
	checkoutService Service
}

func New(checkoutService Service) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// CreateOrder godoc
//
//	@Summary		Create a payment order
//	@Description	Create a gateway order for the authenticated user's cart and record pending transactions
//	@Tags			Checkout
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.CreateOrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Cart is empty"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		502	{object}	utils.Response	"Payment gateway error"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/checkout/create-order [post]
func (h *CheckoutHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	order, err := h.checkoutService.CreateOrder(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, checkoutservice.ErrCartEmpty):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, checkoutservice.ErrGateway):
			utils.RespondWithError(w, http.StatusBadGateway, "Payment gateway error")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CreateOrderResponseDTO{
		Success:  true,
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
	})
}

// VerifyPayment godoc
//
//	@Summary		Verify a payment
//	@Description	Check the gateway callback signature and complete the matching pending transactions
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.VerifyPaymentRequestDTO	true	"Gateway callback fields"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid request body or signature mismatch"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/checkout/verify [post]
func (h *CheckoutHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.VerifyPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.RazorpayOrderID == "" || req.RazorpayPaymentID == "" || req.RazorpaySignature == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing payment verification fields")
		return
	}

	err := h.checkoutService.VerifyPayment(r.Context(), userID, req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
	if err != nil {
		if errors.Is(err, checkoutservice.ErrSignatureMismatch) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithSuccess(w, http.StatusOK, "Payment verified")
}

// Purchases godoc
//
//	@Summary		List purchases
//	@Description	List the authenticated user's transactions, newest first
//	@Tags			Checkout
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.PurchaseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/purchases [get]
func (h *CheckoutHandler) Purchases(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	purchases, err := h.checkoutService.GetPurchases(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.PurchaseDTO, 0, len(purchases))
	for _, p := range purchases {
		item := dto.PurchaseDTO{
			TransactionID:   p.ID,
			TransactionUUID: p.TransactionUUID,
			ProductID:       p.ProductID,
			ProductName:     p.ProductName,
			Amount:          p.Amount,
			PaymentStatus:   p.PaymentStatus,
			DownloadCount:   p.DownloadCount,
		}
		if p.PaidAt != nil {
			item.PaidAt = p.PaidAt.Format(time.RFC3339)
		}
		response = append(response, item)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
