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

const collectionUsers = "users"

type UserRepository struct {
	col      *mongo.Collection
	counters *Counters
}

func NewUserRepository(db *mongo.Database, counters *Counters) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers), counters: counters}
}

type userDoc struct {
	ID            int64     `bson:"user_id"`
	Email         string    `bson:"email"`
	PasswordHash  string    `bson:"password_hash"`
	Forename      string    `bson:"forename"`
	Surname       string    `bson:"surname"`
	PhoneNumber   string    `bson:"phone_number"`
	PostalAddress string    `bson:"postal_address"`
	CreatedAt     time.Time `bson:"created_at"`
}

func (d userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:            d.ID,
		Email:         d.Email,
		PasswordHash:  d.PasswordHash,
		Forename:      d.Forename,
		Surname:       d.Surname,
		PhoneNumber:   d.PhoneNumber,
		PostalAddress: d.PostalAddress,
		CreatedAt:     d.CreatedAt,
	}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	err := r.col.FindOne(ctx, bson.M{"user_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.counters.Next(ctx, collectionUsers)
	if err != nil {
		return nil, err
	}

	doc := userDoc{
		ID:            id,
		Email:         u.Email,
		PasswordHash:  u.PasswordHash,
		Forename:      u.Forename,
		Surname:       u.Surname,
		PhoneNumber:   u.PhoneNumber,
		PostalAddress: u.PostalAddress,
		CreatedAt:     time.Now().UTC(),
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return doc.toDomain(), nil
}

// EnsureIndexes creates necessary indexes on the users collection. The unique
// email index backs duplicate-registration detection.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
