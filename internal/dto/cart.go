package dto

type CartAddRequestDTO struct {
	ProductID int `json:"product_id" validate:"required"`
}

type CartRemoveRequestDTO struct {
	CartID int `json:"cart_id" validate:"required"`
}

type CartItemDTO struct {
	CartID        int      `json:"cart_id" example:"7"`
	ProductID     int      `json:"product_id" example:"42"`
	ProductName   string   `json:"product_name" example:"Go in Practice"`
	Slug          string   `json:"slug" example:"go-in-practice"`
	Price         float64  `json:"price" example:"500"`
	DiscountPrice *float64 `json:"discount_price,omitempty" example:"400"`
	ThumbnailPath string   `json:"thumbnail_path,omitempty"`
}

type CartResponseDTO struct {
	Items []CartItemDTO `json:"items"`
	Total float64       `json:"total" example:"400"`
	Count int           `json:"count" example:"1"`
}
