package dto

type CreateOrderResponseDTO struct {
	Success  bool   `json:"success" example:"true"`
	OrderID  string `json:"order_id" example:"order_NXhT2fGhjk91Lm"`
	Amount   int64  `json:"amount" example:"40000"`
	Currency string `json:"currency" example:"INR"`
}

type VerifyPaymentRequestDTO struct {
	RazorpayOrderID   string `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
}

type PurchaseDTO struct {
	TransactionID   int     `json:"transaction_id" example:"15"`
	TransactionUUID string  `json:"transaction_uuid" example:"TXN_9f1c2d_42"`
	ProductID       int     `json:"product_id" example:"42"`
	ProductName     string  `json:"product_name" example:"Go in Practice"`
	Amount          float64 `json:"amount" example:"400"`
	PaymentStatus   string  `json:"payment_status" example:"completed"`
	DownloadCount   int     `json:"download_count" example:"1"`
	PaidAt          string  `json:"paid_at,omitempty" example:"2025-10-19T16:09:57+05:30"`
}
