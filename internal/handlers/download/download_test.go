package download

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/aibaljacob/prodigi/internal/domain"
	deliveryservice "github.com/aibaljacob/prodigi/internal/service/deliveryservice"
	"github.com/aibaljacob/prodigi/internal/storage"
	"github.com/aibaljacob/prodigi/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*DownloadHandler, *MockService, string) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	baseDir := t.TempDir()
	handler := New(service, storage.NewLocalStore(baseDir))
	defer ctrl.Finish()
	return handler, service, baseDir
}

func authedRequest(target string, userID int) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	ctx := context.WithValue(req.Context(), auth.UserIDKey, userID)
	return req.WithContext(ctx)
}

func TestDownloadHandler(t *testing.T) {
	t.Run("Streams the file", func(t *testing.T) {
		handler, service, baseDir := NewMock(t)
		require.NoError(t, os.WriteFile(filepath.Join(baseDir, "go-in-practice.pdf"), []byte("pdf bytes"), 0o644))

		service.EXPECT().
			Authorize(gomock.Any(), 1, 7, gomock.Any(), gomock.Any()).
			Return(&domain.Product{ID: 42, Slug: "go-in-practice", FilePath: "go-in-practice.pdf", FileOriginalName: "Go in Practice.pdf"}, nil)

		rr := httptest.NewRecorder()
		handler.Download(rr, authedRequest("/download?transaction_id=7", 1))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/octet-stream", rr.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="Go in Practice.pdf"`, rr.Header().Get("Content-Disposition"))
		assert.Equal(t, "9", rr.Header().Get("Content-Length"))
		assert.Equal(t, "pdf bytes", rr.Body.String())
	})

	t.Run("Falls back to slug for filename", func(t *testing.T) {
		handler, service, baseDir := NewMock(t)
		require.NoError(t, os.WriteFile(filepath.Join(baseDir, "go-in-practice.pdf"), []byte("pdf bytes"), 0o644))

		service.EXPECT().
			Authorize(gomock.Any(), 1, 7, gomock.Any(), gomock.Any()).
			Return(&domain.Product{ID: 42, Slug: "go-in-practice", FilePath: "go-in-practice.pdf"}, nil)

		rr := httptest.NewRecorder()
		handler.Download(rr, authedRequest("/download?transaction_id=7", 1))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, `attachment; filename="go-in-practice"`, rr.Header().Get("Content-Disposition"))
	})

	t.Run("Invalid transaction id", func(t *testing.T) {
		handler, _, _ := NewMock(t)

		for _, target := range []string{"/download", "/download?transaction_id=abc", "/download?transaction_id=0"} {
			rr := httptest.NewRecorder()
			handler.Download(rr, authedRequest(target, 1))
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		}
	})

	t.Run("Authorization failures", func(t *testing.T) {
		tests := []struct {
			name         string
			err          error
			expectedCode int
		}{
			{"Not the buyer", deliveryservice.ErrNotAuthorized, http.StatusForbidden},
			{"Limit exceeded", deliveryservice.ErrLimitExceeded, http.StatusForbidden},
			{"Link expired", deliveryservice.ErrExpired, http.StatusForbidden},
			{"File missing on product", deliveryservice.ErrFileMissing, http.StatusNotFound},
			{"Internal error", assert.AnError, http.StatusInternalServerError},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				handler, service, _ := NewMock(t)
				service.EXPECT().
					Authorize(gomock.Any(), 1, 7, gomock.Any(), gomock.Any()).
					Return(nil, tt.err)

				rr := httptest.NewRecorder()
				handler.Download(rr, authedRequest("/download?transaction_id=7", 1))
				assert.Equal(t, tt.expectedCode, rr.Code)
			})
		}
	})

	t.Run("File vanished from storage", func(t *testing.T) {
		handler, service, _ := NewMock(t)

		service.EXPECT().
			Authorize(gomock.Any(), 1, 7, gomock.Any(), gomock.Any()).
			Return(&domain.Product{ID: 42, Slug: "go-in-practice", FilePath: "gone.pdf"}, nil)

		rr := httptest.NewRecorder()
		handler.Download(rr, authedRequest("/download?transaction_id=7", 1))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
