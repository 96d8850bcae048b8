package review

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
	reviewservice "github.com/aibaljacob/prodigi/internal/service/reviewservice"
	"github.com/aibaljacob/prodigi/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*ReviewHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(method, target string, body []byte, userID int) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	ctx := context.WithValue(req.Context(), auth.UserIDKey, userID)
	return req.WithContext(ctx)
}

func TestAddHandler(t *testing.T) {
	handler, service := NewMock(t)
	createdAt := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Review added",
			body: `{"product_id":42,"rating":5,"review_title":"Great","review_text":"Worth every rupee"}`,
			prepareMock: func() {
				service.EXPECT().
					AddReview(gomock.Any(), 1, 42, 5, "Great", "Worth every rupee").
					Return(&domain.Review{ID: 3, UserID: 1, ProductID: 42, Rating: 5, ReviewTitle: "Great", ReviewText: "Worth every rupee", CreatedAt: createdAt}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid body",
			body:         `{invalid`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing product id",
			body:         `{"rating":5}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Rating out of range",
			body: `{"product_id":42,"rating":6}`,
			prepareMock: func() {
				service.EXPECT().
					AddReview(gomock.Any(), 1, 42, 6, "", "").
					Return(nil, reviewservice.ErrInvalidReview)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Product not purchased",
			body: `{"product_id":42,"rating":5}`,
			prepareMock: func() {
				service.EXPECT().
					AddReview(gomock.Any(), 1, 42, 5, "", "").
					Return(nil, reviewservice.ErrNotPurchased)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Already reviewed",
			body: `{"product_id":42,"rating":5}`,
			prepareMock: func() {
				service.EXPECT().
					AddReview(gomock.Any(), 1, 42, 5, "", "").
					Return(nil, reviewservice.ErrAlreadyReviewed)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Internal error",
			body: `{"product_id":42,"rating":5}`,
			prepareMock: func() {
				service.EXPECT().
					AddReview(gomock.Any(), 1, 42, 5, "", "").
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := authedRequest(http.MethodPost, "/api/reviews", []byte(tt.body), 1)
			rr := httptest.NewRecorder()

			handler.Add(rr, req)
			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var response dto.ReviewDTO
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
				assert.Equal(t, 3, response.ID)
				assert.Equal(t, "2025-03-14T10:30:00Z", response.CreatedAt)
			}
		})
	}
}
