package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/aibaljacob/prodigi/internal/domain"
	deliveryservice "github.com/aibaljacob/prodigi/internal/service/deliveryservice"
	"github.com/aibaljacob/prodigi/internal/storage"
	"github.com/aibaljacob/prodigi/pkg/auth"
	"go.uber.org/zap"
)

type Service interface {
	Authorize(ctx context.Context, userID, transactionID int, ip, userAgent string) (*domain.Product, error)
}

type DownloadHandler struct {
	deliveryService Service
	fileStore       storage.FileStore
}

func New(deliveryService Service, fileStore storage.FileStore) *DownloadHandler {
	return &DownloadHandler{
		deliveryService: deliveryService,
		fileStore:       fileStore,
	}
}

// Download godoc
//
//	@Summary		Download a purchased file
//	@Description	Stream the file for a completed transaction; failures come back as plain text
//	@Tags			Download
//	@Produce		application/octet-stream
//	@Param			transaction_id	query	int	true	"Transaction id"
//	@Security		BearerAuth
//	@Success		200	{file}		file
//	@Failure		400	{string}	string	"Invalid transaction id"
//	@Failure		401	{string}	string	"User not authorized"
//	@Failure		403	{string}	string	"Download not authorized, limit exceeded or link expired"
//	@Failure		404	{string}	string	"File not available"
//	@Failure		500	{string}	string	"Internal server error"
//	@Router			/download [get]
func (h *DownloadHandler) Download(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	transactionID, err := strconv.Atoi(r.URL.Query().Get("transaction_id"))
	if err != nil || transactionID < 1 {
		http.Error(w, "Invalid transaction id", http.StatusBadRequest)
		return
	}

	product, err := h.deliveryService.Authorize(r.Context(), userID, transactionID, r.RemoteAddr, r.UserAgent())
	if err != nil {
		switch {
		case errors.Is(err, deliveryservice.ErrNotAuthorized),
			errors.Is(err, deliveryservice.ErrLimitExceeded),
			errors.Is(err, deliveryservice.ErrExpired):
			http.Error(w, err.Error(), http.StatusForbidden)
		case errors.Is(err, deliveryservice.ErrFileMissing):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	reader, size, err := h.fileStore.Open(r.Context(), product.FilePath)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			http.Error(w, "File not available", http.StatusNotFound)
			return
		}
		zap.L().Error("can't open product file",
			zap.Int("productID", product.ID), zap.String("path", product.FilePath), zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	defer reader.Close()

	filename := product.FileOriginalName
	if filename == "" {
		filename = product.Slug
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(size, 10))
	}

	if _, err := io.Copy(w, reader); err != nil {
		// Headers are already on the wire; all we can do is log.
		zap.L().Warn("download stream interrupted",
			zap.Int("transactionID", transactionID), zap.Error(err))
	}
}
