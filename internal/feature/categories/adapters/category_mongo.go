// Package adapters provides the repository implementations for the categories feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"jobboard_backend/internal/feature/categories/domain/entity"
	"jobboard_backend/internal/feature/categories/usecase"
	"jobboard_backend/internal/platform/mongodb"
)

// categoryMongo is the MongoDB implementation of the CategoryRepository
// interface. It also carries the job back-reference operations consumed by
// the jobs and companies features.
type categoryMongo struct {
	coll *mongo.Collection
}

var _ usecase.CategoryRepository = (*categoryMongo)(nil)

// NewCategoryMongo creates a category repository backed by the given store.
func NewCategoryMongo(store *mongodb.Store) *categoryMongo {
	return &categoryMongo{coll: store.Collection(mongodb.CollCategories)}
}

// Create inserts the category. The name unique index maps duplicates to
// usecase.ErrNameTaken.
func (r *categoryMongo) Create(ctx context.Context, c *entity.JobCategory) error {
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, c)
	if err != nil {
		if mongodb.IsDup(err) {
			return usecase.ErrNameTaken
		}
		return err
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		c.ID = id
	}
	return nil
}

// FindByID retrieves a category by id.
func (r *categoryMongo) FindByID(ctx context.Context, id bson.ObjectID) (*entity.JobCategory, error) {
	var c entity.JobCategory
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, usecase.ErrCategoryNotFound
		}
		return nil, err
	}
	return &c, nil
}

// FindAll lists every category sorted by name.
func (r *categoryMongo) FindAll(ctx context.Context) ([]entity.JobCategory, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	categories := []entity.JobCategory{}
	if err := cur.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// UpdateFields applies a $set patch and returns the updated document.
func (r *categoryMongo) UpdateFields(ctx context.Context, id bson.ObjectID, fields map[string]any) (*entity.JobCategory, error) {
	set := bson.M{"updated_at": time.Now()}
	for k, v := range fields {
		set[k] = v
	}

	var c entity.JobCategory
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, usecase.ErrCategoryNotFound
		}
		if mongodb.IsDup(err) {
			return nil, usecase.ErrNameTaken
		}
		return nil, err
	}
	return &c, nil
}

// Delete removes the category document.
func (r *categoryMongo) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return usecase.ErrCategoryNotFound
	}
	return nil
}

// CountByIDs reports how many of the given ids resolve to stored
// categories. The jobs feature uses the count for its all-or-nothing
// validation of a posting's category list.
func (r *categoryMongo) CountByIDs(ctx context.Context, ids []bson.ObjectID) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

// AddJobRef pushes a job id onto every named category's jobs list.
func (r *categoryMongo) AddJobRef(ctx context.Context, categoryIDs []bson.ObjectID, jobID bson.ObjectID) error {
	_, err := r.coll.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": categoryIDs}},
		bson.M{"$addToSet": bson.M{"jobs": jobID}},
	)
	return err
}

// RemoveJobRef pulls a job id out of every category referencing it.
func (r *categoryMongo) RemoveJobRef(ctx context.Context, jobID bson.ObjectID) error {
	_, err := r.coll.UpdateMany(ctx,
		bson.M{"jobs": jobID},
		bson.M{"$pull": bson.M{"jobs": jobID}},
	)
	return err
}

// RemoveJobRefs pulls a batch of job ids out of every category, as part of
// a company cascade deletion.
func (r *categoryMongo) RemoveJobRefs(ctx context.Context, jobIDs []bson.ObjectID) error {
	_, err := r.coll.UpdateMany(ctx,
		bson.M{"jobs": bson.M{"$in": jobIDs}},
		bson.M{"$pull": bson.M{"jobs": bson.M{"$in": jobIDs}}},
	)
	return err
}
