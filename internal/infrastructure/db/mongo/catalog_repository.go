package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mi-ecommerce/marketplace-api/internal/core/domain"
	"github.com/mi-ecommerce/marketplace-api/internal/core/ports"
)

const (
	collectionProducts   = "products"
	collectionCategories = "categories"
	collectionPictures   = "pictures"
)

// ProductRepository implements ports.ProductRepository using MongoDB.
type ProductRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{db: db, col: db.Collection(collectionProducts)}
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	return r.find(ctx, bson.M{})
}

func (r *ProductRepository) FindMostWanted(ctx context.Context) ([]domain.Product, error) {
	return r.find(ctx, bson.M{"mostwanted": true})
}

func (r *ProductRepository) find(ctx context.Context, filter bson.M) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	products := []domain.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Product
	err := r.col.FindOne(ctx, bson.M{"product_id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Insert(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, collectionProducts)
	if err != nil {
		return nil, err
	}
	p.ProductID = id

	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) UpdateByID(ctx context.Context, id int64, fields ports.ProductUpdate) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{}
	if fields.Title != nil {
		set["title"] = *fields.Title
	}
	if fields.Price != nil {
		set["price"] = *fields.Price
	}
	if fields.Stock != nil {
		set["stock"] = *fields.Stock
	}
	if fields.MostWanted != nil {
		set["mostwanted"] = *fields.MostWanted
	}
	if fields.Description != nil {
		set["description"] = *fields.Description
	}
	if fields.CategoryID != nil {
		set["category_id"] = *fields.CategoryID
	}
	if len(set) == 0 {
		n, err := r.col.CountDocuments(ctx, bson.M{"product_id": id})
		return n, err
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"product_id": id}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *ProductRepository) DeleteByID(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteOne(ctx, bson.M{"product_id": id})
	return err
}

func (r *ProductRepository) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{"category_id": categoryID})
}

// EnsureIndexes creates the lookup indexes catalog queries rely on.
func (r *ProductRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "product_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category_id", Value: 1}}},
		{Keys: bson.D{{Key: "mostwanted", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// CategoryRepository implements ports.CategoryRepository using MongoDB.
type CategoryRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{db: db, col: db.Collection(collectionCategories)}
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	categories := []domain.Category{}
	if err := cur.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Category
	err := r.col.FindOne(ctx, bson.M{"category_id": id}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Insert stores a new category. The unique index on category_name turns a
// duplicate into ErrCategoryNameTaken.
func (r *CategoryRepository) Insert(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, collectionCategories)
	if err != nil {
		return nil, err
	}
	c.CategoryID = id

	if _, err := r.col.InsertOne(ctx, c); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrCategoryNameTaken
		}
		return nil, err
	}
	return c, nil
}

func (r *CategoryRepository) UpdateByID(ctx context.Context, id int64, name string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"category_id": id}, bson.M{"$set": bson.M{"category_name": name}})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return 0, domain.ErrCategoryNameTaken
		}
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *CategoryRepository) DeleteByID(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteOne(ctx, bson.M{"category_id": id})
	return err
}

// EnsureIndexes creates the identifier and name uniqueness indexes.
func (r *CategoryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "category_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category_name", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// PictureRepository implements ports.PictureRepository using MongoDB.
type PictureRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewPictureRepository(db *mongo.Database) *PictureRepository {
	return &PictureRepository{db: db, col: db.Collection(collectionPictures)}
}

func (r *PictureRepository) FindByProduct(ctx context.Context, productID int64) ([]domain.Picture, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"product_id": productID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	pictures := []domain.Picture{}
	if err := cur.All(ctx, &pictures); err != nil {
		return nil, err
	}
	return pictures, nil
}

func (r *PictureRepository) FindByID(ctx context.Context, id int64) (*domain.Picture, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Picture
	err := r.col.FindOne(ctx, bson.M{"picture_id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPictureNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PictureRepository) Insert(ctx context.Context, p *domain.Picture) (*domain.Picture, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, collectionPictures)
	if err != nil {
		return nil, err
	}
	p.PictureID = id

	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PictureRepository) UpdateByID(ctx context.Context, id int64, url string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"picture_id": id}, bson.M{"$set": bson.M{"picture_url": url}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *PictureRepository) DeleteByID(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteOne(ctx, bson.M{"picture_id": id})
	return err
}

func (r *PictureRepository) DeleteByProduct(ctx context.Context, productID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteMany(ctx, bson.M{"product_id": productID})
	return err
}

// EnsureIndexes creates the identifier and per-product lookup indexes.
func (r *PictureRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "picture_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "product_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
