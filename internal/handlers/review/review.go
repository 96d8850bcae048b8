package review

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aibaljacob/prodigi/internal/domain"
	"github.com/aibaljacob/prodigi/internal/dto"
	reviewservice "github.com/aibaljacob/prodigi/internal/service/reviewservice"
	"github.com/aibaljacob/prodigi/pkg/auth"
	"github.com/aibaljacob/prodigi/pkg/utils"
)

type Service interface {
	AddReview(ctx context.Context, userID, productID, rating int, title, text string) (*domain.Review, error)
}

type ReviewHandler struct {
	reviewService Service
}

func New(reviewService Service) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// Add godoc
//
//	@Summary		Add a review
//	@Description	Post a verified-purchase review; one review per user and product
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.AddReviewRequestDTO	true	"Review body"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ReviewDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body or review fields"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Product not purchased"
//	@Failure		409	{object}	utils.Response	"Already reviewed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/reviews [post]
func (h *ReviewHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.AddReviewRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ProductID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Product id is required")
		return
	}

	review, err := h.reviewService.AddReview(r.Context(), userID, req.ProductID, req.Rating, req.ReviewTitle, req.ReviewText)
	if err != nil {
		switch {
		case errors.Is(err, reviewservice.ErrInvalidReview):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, reviewservice.ErrNotPurchased):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, reviewservice.ErrAlreadyReviewed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ReviewDTO{
		ID:          review.ID,
		UserID:      review.UserID,
		Rating:      review.Rating,
		ReviewTitle: review.ReviewTitle,
		ReviewText:  review.ReviewText,
		CreatedAt:   review.CreatedAt.Format(time.RFC3339),
	})
}
