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
	"github.com/webshop-io/shop-api/internal/core/ports"
)

const collectionArticles = "articles"

type ArticleRepository struct {
	col      *mongo.Collection
	counters *Counters
}

func NewArticleRepository(db *mongo.Database, counters *Counters) *ArticleRepository {
	return &ArticleRepository{col: db.Collection(collectionArticles), counters: counters}
}

func (r *ArticleRepository) Create(ctx context.Context, a *domain.Article) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.counters.Next(ctx, collectionArticles)
	if err != nil {
		return err
	}
	a.ID = id
	a.CreatedAt = time.Now().UTC()

	if _, err := r.col.InsertOne(ctx, a); err != nil {
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

func (r *ArticleRepository) Update(ctx context.Context, a *domain.Article) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"article_id": a.ID}, a)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

func (r *ArticleRepository) FindByID(ctx context.Context, id int64) (*domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Article
	err := r.col.FindOne(ctx, bson.M{"article_id": id}).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, fmt.Errorf("find article: %w", err)
	}
	return &a, nil
}

// Search returns a page of articles matching filter and the total match count.
func (r *ArticleRepository) Search(ctx context.Context, filter ports.ArticleSearchFilter) ([]*domain.Article, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.CategoryID != 0 {
		query["category_id"] = filter.CategoryID
	}
	if filter.Keywords != "" {
		query["name"] = bson.M{"$regex": filter.Keywords, "$options": "i"}
	}
	price := bson.M{}
	if filter.PriceMin > 0 {
		price["$gte"] = filter.PriceMin
	}
	if filter.PriceMax > 0 {
		price["$lte"] = filter.PriceMax
	}
	if len(price) > 0 {
		query["price"] = price
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	opts := options.Find().
		SetSort(sortSpec(filter.OrderBy, filter.OrderDirection)).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("search articles: %w", err)
	}
	defer cur.Close(ctx)

	var articles []*domain.Article
	for cur.Next(ctx) {
		var a domain.Article
		if err := cur.Decode(&a); err != nil {
			return nil, 0, fmt.Errorf("decode article: %w", err)
		}
		articles = append(articles, &a)
	}
	return articles, total, cur.Err()
}

// sortSpec maps the public order_by/order_direction pair to a Mongo sort.
// Unknown fields fall back to article_id ascending.
func sortSpec(orderBy, direction string) bson.D {
	dir := 1
	if direction == "desc" {
		dir = -1
	}
	switch orderBy {
	case "name", "price", "created_at":
		return bson.D{{Key: orderBy, Value: dir}}
	default:
		return bson.D{{Key: "article_id", Value: dir}}
	}
}

// EnsureIndexes creates necessary indexes on the articles collection.
func (r *ArticleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "article_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category_id", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
