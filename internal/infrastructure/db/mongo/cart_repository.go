package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mi-ecommerce/marketplace-api/internal/core/domain"
)

const collectionCarts = "carts"

// CartRepository implements ports.CartRepository using MongoDB.
type CartRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{db: db, col: db.Collection(collectionCarts)}
}

// Create inserts an empty cart owned by the given user.
func (r *CartRepository) Create(ctx context.Context, userID int64) (*domain.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, collectionCarts)
	if err != nil {
		return nil, err
	}

	cart := &domain.Cart{
		CartID: id,
		UserID: userID,
		Items:  []domain.CartItem{},
	}
	if _, err := r.col.InsertOne(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (r *CartRepository) FindByUserID(ctx context.Context, userID int64) (*domain.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Cart
	err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCartNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) ReplaceItems(ctx context.Context, userID int64, items []domain.CartItem) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"user_id": userID}, bson.M{"$set": bson.M{"items": items}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// EnsureIndexes creates the one-cart-per-user uniqueness index.
func (r *CartRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "cart_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
