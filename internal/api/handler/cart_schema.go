package handler

// cartItemRequest is one product/quantity pair in a cart replacement.
type cartItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity"   validate:"required,gt=0"`
}

type updateCartRequest struct {
	Items []cartItemRequest `json:"items" validate:"required,dive"`
}
