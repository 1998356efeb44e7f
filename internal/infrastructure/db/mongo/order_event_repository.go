package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/webshop-io/shop-api/internal/core/domain"
	"github.com/webshop-io/shop-api/internal/core/ports"
)

// OrderEventRepository implements ports.OrderEventRepository using MongoDB.
type OrderEventRepository struct {
	col *mongo.Collection
}

// NewOrderEventRepository creates a new OrderEventRepository.
func NewOrderEventRepository(db *mongo.Database) ports.OrderEventRepository {
	return &OrderEventRepository{col: db.Collection(collectionOrderEvents)}
}

// InsertEvent persists a processed order event to the audit collection.
func (r *OrderEventRepository) InsertEvent(ctx context.Context, event *domain.OrderEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"order_id":     event.OrderID,
		"status":       string(event.Status),
		"timestamp":    event.Timestamp.UTC(),
		"source":       event.Source,
		"processed_at": time.Now().UTC(),
	}

	_, err := r.col.InsertOne(ctx, doc)
	return err
}
