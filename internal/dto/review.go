package dto

type AddReviewRequestDTO struct {
	ProductID   int    `json:"product_id" validate:"required"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	ReviewTitle string `json:"review_title" validate:"required,max=255"`
	ReviewText  string `json:"review_text" validate:"required"`
}

type ReviewDTO struct {
	ID          int    `json:"id" example:"3"`
	UserID      int    `json:"user_id" example:"12"`
	Rating      int    `json:"rating" example:"5"`
	ReviewTitle string `json:"review_title" example:"Excellent"`
	ReviewText  string `json:"review_text" example:"Worth every rupee."`
	CreatedAt   string `json:"created_at" example:"2025-10-19T16:09:57+05:30"`
}
