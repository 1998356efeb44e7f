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

const collectionAdministrators = "administrators"

type AdministratorRepository struct {
	col      *mongo.Collection
	counters *Counters
}

func NewAdministratorRepository(db *mongo.Database, counters *Counters) *AdministratorRepository {
	return &AdministratorRepository{col: db.Collection(collectionAdministrators), counters: counters}
}

type administratorDoc struct {
	ID           int64  `bson:"administrator_id"`
	Username     string `bson:"username"`
	PasswordHash string `bson:"password_hash"`
}

func (d administratorDoc) toDomain() *domain.Administrator {
	return &domain.Administrator{
		ID:           d.ID,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
	}
}

func (r *AdministratorRepository) FindByUsername(ctx context.Context, username string) (*domain.Administrator, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc administratorDoc
	err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAdministratorNotFound
		}
		return nil, fmt.Errorf("find administrator: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AdministratorRepository) FindByID(ctx context.Context, id int64) (*domain.Administrator, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc administratorDoc
	err := r.col.FindOne(ctx, bson.M{"administrator_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAdministratorNotFound
		}
		return nil, fmt.Errorf("find administrator: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AdministratorRepository) List(ctx context.Context) ([]*domain.Administrator, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "administrator_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list administrators: %w", err)
	}
	defer cur.Close(ctx)

	var admins []*domain.Administrator
	for cur.Next(ctx) {
		var doc administratorDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode administrator: %w", err)
		}
		admins = append(admins, doc.toDomain())
	}
	return admins, cur.Err()
}

func (r *AdministratorRepository) Create(ctx context.Context, a *domain.Administrator) (*domain.Administrator, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.counters.Next(ctx, collectionAdministrators)
	if err != nil {
		return nil, err
	}

	doc := administratorDoc{
		ID:           id,
		Username:     a.Username,
		PasswordHash: a.PasswordHash,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert administrator: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AdministratorRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"administrator_id": id},
		bson.M{"$set": bson.M{"password_hash": passwordHash}},
	)
	if err != nil {
		return fmt.Errorf("update administrator password: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAdministratorNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the administrators collection.
func (r *AdministratorRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "administrator_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
