package dto

type CategoryRequestDTO struct {
	CategoryName string `json:"category_name" validate:"required,max=100"`
	Slug         string `json:"slug" validate:"required,max=100"`
}

type ProductRequestDTO struct {
	CategoryID          int      `json:"category_id" validate:"required"`
	ProductName         string   `json:"product_name" validate:"required,max=255"`
	Slug                string   `json:"slug" validate:"required,max=255"`
	Description         string   `json:"description"`
	Price               float64  `json:"price" validate:"required,gt=0"`
	DiscountPrice       *float64 `json:"discount_price,omitempty"`
	FilePath            string   `json:"file_path"`
	FileOriginalName    string   `json:"file_original_name"`
	ThumbnailPath       string   `json:"thumbnail_path"`
	DownloadLimit       int      `json:"download_limit"`
	DownloadExpiryHours int      `json:"download_expiry_hours"`
}

type ApproveProductRequestDTO struct {
	IsApproved bool `json:"is_approved"`
}

type BanUserRequestDTO struct {
	IsActive bool `json:"is_active"`
}

type UserDTO struct {
	ID        int    `json:"id" example:"12"`
	Login     string `json:"login" example:"buyer1"`
	Email     string `json:"email" example:"buyer1@example.com"`
	Role      string `json:"role" example:"buyer"`
	IsActive  bool   `json:"is_active" example:"true"`
	CreatedAt string `json:"created_at" example:"2025-10-19T16:09:57+05:30"`
}

type TransactionDTO struct {
	ID               int     `json:"id" example:"15"`
	TransactionUUID  string  `json:"transaction_uuid" example:"TXN_9f1c2d_42"`
	BuyerID          int     `json:"buyer_id" example:"12"`
	ProductID        int     `json:"product_id" example:"42"`
	Amount           float64 `json:"amount" example:"400"`
	CommissionAmount float64 `json:"commission_amount" example:"40"`
	SellerEarnings   float64 `json:"seller_earnings" example:"360"`
	PaymentStatus    string  `json:"payment_status" example:"completed"`
	RazorpayOrderID  string  `json:"razorpay_order_id" example:"order_NXhT2fGhjk91Lm"`
	CreatedAt        string  `json:"created_at" example:"2025-10-19T16:09:57+05:30"`
}

type DashboardDTO struct {
	TotalUsers       int     `json:"total_users" example:"120"`
	TotalProducts    int     `json:"total_products" example:"34"`
	CompletedOrders  int     `json:"completed_orders" example:"210"`
	TotalRevenue     float64 `json:"total_revenue" example:"84000"`
	TotalCommission  float64 `json:"total_commission" example:"8400"`
	PendingApprovals int     `json:"pending_approvals" example:"2"`
}
