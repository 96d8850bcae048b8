package dto

type CategoryDTO struct {
	ID           int    `json:"id" example:"1"`
	CategoryName string `json:"category_name" example:"E-Books"`
	Slug         string `json:"slug" example:"e-books"`
}

type ProductListItemDTO struct {
	ID            int      `json:"id" example:"42"`
	ProductName   string   `json:"product_name" example:"Go in Practice"`
	Slug          string   `json:"slug" example:"go-in-practice"`
	Price         float64  `json:"price" example:"500"`
	DiscountPrice *float64 `json:"discount_price,omitempty" example:"400"`
	ThumbnailPath string   `json:"thumbnail_path,omitempty"`
	RatingAverage float64  `json:"rating_average" example:"4.5"`
	TotalReviews  int      `json:"total_reviews" example:"12"`
	TotalSales    int      `json:"total_sales" example:"120"`
}

type ProductListResponseDTO struct {
	Products []ProductListItemDTO `json:"products"`
	Page     int                  `json:"page" example:"1"`
	PerPage  int                  `json:"per_page" example:"12"`
	Total    int                  `json:"total" example:"57"`
}

type ProductDetailDTO struct {
	ProductListItemDTO
	Description  string      `json:"description"`
	CategoryID   int         `json:"category_id" example:"1"`
	CategoryName string      `json:"category_name" example:"E-Books"`
	Reviews      []ReviewDTO `json:"reviews"`
}
