package helpers

// Request/Response DTOs
type AddCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdatePictureRequest patches a picture; absent fields stay untouched
type UpdatePictureRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Type        *string  `json:"type"`
	CategoryID  *string  `json:"category_id"`
}
