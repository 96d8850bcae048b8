package domain

import "time"

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	IsActive     bool      `db:"is_active"`
	IsVerified   bool      `db:"is_verified"`
	CreatedAt    time.Time `db:"created_at"`
}

type Store struct {
	ID        int    `db:"id"`
	UserID    int    `db:"user_id"`
	StoreName string `db:"store_name"`
	StoreSlug string `db:"store_slug"`
}

type Category struct {
	ID           int       `db:"id"`
	CategoryName string    `db:"category_name"`
	Slug         string    `db:"slug"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
}

type Product struct {
	ID               int       `db:"id"`
	StoreID          int       `db:"store_id"`
	CategoryID       int       `db:"category_id"`
	ProductName      string    `db:"product_name"`
	Slug             string    `db:"slug"`
	Description      string    `db:"description"`
	Price            float64   `db:"price"`
	DiscountPrice    *float64  `db:"discount_price"`
	FilePath         string    `db:"file_path"`
	FileOriginalName string    `db:"file_original_name"`
	ThumbnailPath    string    `db:"thumbnail_path"`
	// DownloadLimit 0 means unlimited downloads.
	DownloadLimit       int       `db:"download_limit"`
	DownloadExpiryHours int       `db:"download_expiry_hours"`
	IsActive            bool      `db:"is_active"`
	IsApproved          bool      `db:"is_approved"`
	RatingAverage       float64   `db:"rating_average"`
	TotalReviews        int       `db:"total_reviews"`
	TotalSales          int       `db:"total_sales"`
	TotalDownloads      int       `db:"total_downloads"`
	CreatedAt           time.Time `db:"created_at"`
}

// EffectivePrice is the discount price when set, the list price otherwise.
func (p *Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

type CartItem struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	ProductID int       `db:"product_id"`
	AddedAt   time.Time `db:"added_at"`
	Product   Product
}

type Transaction struct {
	ID                   int        `db:"id"`
	TransactionUUID      string     `db:"transaction_uuid"`
	BuyerID              int        `db:"buyer_id"`
	SellerID             int        `db:"seller_id"`
	ProductID            int        `db:"product_id"`
	Amount               float64    `db:"amount"`
	CommissionPercentage float64    `db:"commission_percentage"`
	CommissionAmount     float64    `db:"commission_amount"`
	SellerEarnings       float64    `db:"seller_earnings"`
	PaymentGateway       string     `db:"payment_gateway"`
	RazorpayOrderID      string     `db:"razorpay_order_id"`
	RazorpayPaymentID    string     `db:"razorpay_payment_id"`
	RazorpaySignature    string     `db:"razorpay_signature"`
	PaymentStatus        string     `db:"payment_status"`
	DownloadCount        int        `db:"download_count"`
	CreatedAt            time.Time  `db:"created_at"`
	PaidAt               *time.Time `db:"paid_at"`
}

// Purchase is a transaction joined with the purchased product's name,
// as shown on the buyer's purchases page.
type Purchase struct {
	Transaction
	ProductName string `db:"product_name"`
}

type DownloadLog struct {
	ID            int       `db:"id"`
	TransactionID int       `db:"transaction_id"`
	ProductID     int       `db:"product_id"`
	UserID        int       `db:"user_id"`
	IPAddress     string    `db:"ip_address"`
	UserAgent     string    `db:"user_agent"`
	DownloadedAt  time.Time `db:"downloaded_at"`
}

type Review struct {
	ID            int       `db:"id"`
	ProductID     int       `db:"product_id"`
	UserID        int       `db:"user_id"`
	TransactionID int       `db:"transaction_id"`
	Rating        int       `db:"rating"`
	ReviewTitle   string    `db:"review_title"`
	ReviewText    string    `db:"review_text"`
	IsApproved    bool      `db:"is_approved"`
	CreatedAt     time.Time `db:"created_at"`
}
