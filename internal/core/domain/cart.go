package domain

import "errors"

var (
	ErrCartNotFound      = errors.New("cart does not exist")
	ErrInsufficientStock = errors.New("not enough stock for product")
)

// Cart is the one-to-one companion of a user, created empty at registration.
type Cart struct {
	CartID int64      `json:"cart_id" bson:"cart_id"`
	UserID int64      `json:"user_id" bson:"user_id"`
	Items  []CartItem `json:"items" bson:"items"`
}

// CartItem holds a product reference with the desired quantity.
type CartItem struct {
	ProductID int64 `json:"product_id" bson:"product_id"`
	Quantity  int   `json:"quantity" bson:"quantity"`
}

// CartLine is a cart item joined with the product fields clients render.
type CartLine struct {
	ProductID int64   `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}
