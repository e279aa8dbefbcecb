package domain

import "errors"

var (
	ErrProductNotFound   = errors.New("product does not exist")
	ErrCategoryNotFound  = errors.New("category does not exist")
	ErrCategoryInUse     = errors.New("category has products assigned")
	ErrCategoryNameTaken = errors.New("category name already registered")
	ErrPictureNotFound   = errors.New("picture does not exist")
)

// Category groups products under a unique name.
type Category struct {
	CategoryID int64  `json:"category_id" bson:"category_id"`
	Name       string `json:"category_name" bson:"category_name"`
}

// Product is a sellable catalog entry. Stock is decremented by checkout flows
// that live outside this service; here it only bounds cart quantities.
type Product struct {
	ProductID   int64   `json:"product_id" bson:"product_id"`
	Title       string  `json:"title" bson:"title"`
	Price       float64 `json:"price" bson:"price"`
	Stock       int     `json:"stock" bson:"stock"`
	MostWanted  bool    `json:"mostwanted" bson:"mostwanted"`
	Description string  `json:"description" bson:"description"`
	CategoryID  int64   `json:"category_id" bson:"category_id"`
}

// Picture is an image attached to a product.
type Picture struct {
	PictureID int64  `json:"picture_id" bson:"picture_id"`
	URL       string `json:"picture_url" bson:"picture_url"`
	ProductID int64  `json:"product_id" bson:"product_id"`
}
