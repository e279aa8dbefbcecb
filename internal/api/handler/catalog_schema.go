package handler

// --- Product requests ---

type createProductRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Stock       int     `json:"stock"       validate:"gte=0"`
	MostWanted  bool    `json:"mostwanted"`
	Description string  `json:"description" validate:"required"`
	CategoryID  int64   `json:"category_id" validate:"required,gt=0"`
}

type updateProductRequest struct {
	Title       *string  `json:"title"       validate:"omitempty,min=1"`
	Price       *float64 `json:"price"       validate:"omitempty,gt=0"`
	Stock       *int     `json:"stock"       validate:"omitempty,gte=0"`
	MostWanted  *bool    `json:"mostwanted"`
	Description *string  `json:"description" validate:"omitempty,min=1"`
	CategoryID  *int64   `json:"category_id" validate:"omitempty,gt=0"`
}

// --- Category requests ---

type categoryRequest struct {
	Name string `json:"category_name" validate:"required"`
}

// --- Picture requests ---

type createPictureRequest struct {
	URL       string `json:"picture_url" validate:"required,url"`
	ProductID int64  `json:"product_id"  validate:"required,gt=0"`
}

type updatePictureRequest struct {
	URL string `json:"picture_url" validate:"required,url"`
}
