package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the indexes every collection relies on. Called once
// at startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	counters := NewCounters(db)

	type indexer interface {
		EnsureIndexes(ctx context.Context) error
	}

	repos := map[string]indexer{
		collectionAdministrators: NewAdministratorRepository(db, counters),
		collectionUsers:          NewUserRepository(db, counters),
		collectionArticles:       NewArticleRepository(db, counters),
		collectionCategories:     NewCategoryRepository(db, counters),
		collectionCarts:          NewCartRepository(db, counters),
		collectionOrders:         NewOrderRepository(db, counters),
	}

	for name, repo := range repos {
		if err := repo.EnsureIndexes(ctx); err != nil {
			return fmt.Errorf("ensure indexes for %s: %w", name, err)
		}
	}
	return nil
}
