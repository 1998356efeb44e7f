package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/webshop-io/shop-api/internal/core/domain"
)

const collectionCarts = "carts"

type CartRepository struct {
	col      *mongo.Collection
	counters *Counters
}

func NewCartRepository(db *mongo.Database, counters *Counters) *CartRepository {
	return &CartRepository{col: db.Collection(collectionCarts), counters: counters}
}

func (r *CartRepository) Create(ctx context.Context, cart *domain.Cart) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.counters.Next(ctx, collectionCarts)
	if err != nil {
		return err
	}
	cart.ID = id
	cart.CreatedAt = time.Now().UTC()
	if cart.Articles == nil {
		cart.Articles = []domain.CartArticle{}
	}

	if _, err := r.col.InsertOne(ctx, cart); err != nil {
		return fmt.Errorf("insert cart: %w", err)
	}
	return nil
}

func (r *CartRepository) FindByID(ctx context.Context, id int64) (*domain.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var cart domain.Cart
	err := r.col.FindOne(ctx, bson.M{"cart_id": id}).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCartNotFound
		}
		return nil, fmt.Errorf("find cart: %w", err)
	}
	return &cart, nil
}

// FindNewestByUserID returns the user's most recently created cart.
func (r *CartRepository) FindNewestByUserID(ctx context.Context, userID int64) (*domain.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var cart domain.Cart
	err := r.col.FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCartNotFound
		}
		return nil, fmt.Errorf("find newest cart: %w", err)
	}
	return &cart, nil
}

func (r *CartRepository) ListByUserID(ctx context.Context, userID int64) ([]*domain.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list carts: %w", err)
	}
	defer cur.Close(ctx)

	var carts []*domain.Cart
	for cur.Next(ctx) {
		var cart domain.Cart
		if err := cur.Decode(&cart); err != nil {
			return nil, fmt.Errorf("decode cart: %w", err)
		}
		carts = append(carts, &cart)
	}
	return carts, cur.Err()
}

// UpdateArticles replaces the cart's article lines.
func (r *CartRepository) UpdateArticles(ctx context.Context, cartID int64, articles []domain.CartArticle) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if articles == nil {
		articles = []domain.CartArticle{}
	}

	res, err := r.col.UpdateOne(ctx,
		bson.M{"cart_id": cartID},
		bson.M{"$set": bson.M{"articles": articles}},
	)
	if err != nil {
		return fmt.Errorf("update cart articles: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCartNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the carts collection.
func (r *CartRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "cart_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
