// Package adapters provides the repository implementations for the users feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"jobboard_backend/internal/feature/users/domain/entity"
	"jobboard_backend/internal/feature/users/usecase"
	"jobboard_backend/internal/platform/mongodb"
)

// userMongo is the MongoDB implementation of the UserRepository interface.
type userMongo struct {
	coll *mongo.Collection
}

// Compile-time check that userMongo implements UserRepository.
var _ usecase.UserRepository = (*userMongo)(nil)

// NewUserMongo creates a user repository backed by the given store.
func NewUserMongo(store *mongodb.Store) *userMongo {
	return &userMongo{coll: store.Collection(mongodb.CollUsers)}
}

// Create inserts the user. The email unique index maps duplicates to
// usecase.ErrEmailTaken.
func (r *userMongo) Create(ctx context.Context, u *entity.User) error {
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, u)
	if err != nil {
		if mongodb.IsDup(err) {
			return usecase.ErrEmailTaken
		}
		return err
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		u.ID = id
	}
	return nil
}

// FindByEmail retrieves a user by email.
func (r *userMongo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID retrieves a user by id.
func (r *userMongo) FindByID(ctx context.Context, id bson.ObjectID) (*entity.User, error) {
	var u entity.User
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Update replaces the full user document, triggering the email unique index.
func (r *userMongo) Update(ctx context.Context, u *entity.User) error {
	u.UpdatedAt = time.Now()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": u.ID}, u)
	if err != nil {
		if mongodb.IsDup(err) {
			return usecase.ErrEmailTaken
		}
		return err
	}
	if res.MatchedCount == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}
