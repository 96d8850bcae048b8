package razorpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aibaljacob/prodigi/internal/config"
	"github.com/aibaljacob/prodigi/pkg/clients"
	"go.uber.org/zap"
)

const (
	maxAttempts   = 2
	retryInterval = time.Second * 1
	ordersPath    = "/v1/orders"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status from payment gateway")
	ErrInvalidResponse  = errors.New("invalid response from payment gateway")
)

// Order is the remote order created by the gateway; its ID is the correlation
// key stamped on every transaction row of the checkout attempt.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type createOrderRequest struct {
	Amount   int64                  `json:"amount"`
	Currency string                 `json:"currency"`
	Receipt  string                 `json:"receipt"`
	Notes    map[string]interface{} `json:"notes"`
}

type Client struct {
	url       string
	keyID     string
	keySecret string
	currency  string
	client    clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:       cfg.RazorpayAddress,
		keyID:     cfg.RazorpayKeyID,
		keySecret: cfg.RazorpayKeySecret,
		currency:  cfg.Currency,
		client:    client,
	}
}

// CreateOrder creates a remote order for the given amount in the currency's
// minor unit. One bounded retry on transport failure; any non-200 status or a
// response without an order id is an error.
func (c *Client) CreateOrder(ctx context.Context, amountMinor int64, receipt string, notes map[string]interface{}) (*Order, error) {
	body, err := json.Marshal(createOrderRequest{
		Amount:   amountMinor,
		Currency: c.currency,
		Receipt:  receipt,
		Notes:    notes,
	})
	if err != nil {
		return nil, fmt.Errorf("can't marshal order request: %w", err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Authorization", "Basic "+basicAuth(c.keyID, c.keySecret))

	var statusCode int
	var respBody []byte

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			statusCode, respBody, _, err = c.client.Post(c.url+ordersPath, headers, body)
			if err != nil {
				if attempt < maxAttempts {
					zap.L().Warn("gateway request failed, retrying", zap.Int("attempt", attempt), zap.Error(err))
					time.Sleep(retryInterval)
					continue
				}
				return nil, fmt.Errorf("gateway unreachable after %d attempts: %w", maxAttempts, err)
			}

			if statusCode != http.StatusOK {
				zap.L().Error("gateway returned non-success",
					zap.Int("status", statusCode), zap.ByteString("body", respBody))
				return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, statusCode)
			}

			var order Order
			if err := json.Unmarshal(respBody, &order); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
			}
			if order.ID == "" {
				return nil, fmt.Errorf("%w: missing order id", ErrInvalidResponse)
			}
			return &order, nil
		}
	}
	return nil, fmt.Errorf("gateway unreachable after %d attempts", maxAttempts)
}

// VerifySignature recomputes HMAC-SHA256(orderID + "|" + paymentID) with the
// key secret and compares it to the supplied signature in constant time.
func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func basicAuth(user, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(user + ":" + password))
}
