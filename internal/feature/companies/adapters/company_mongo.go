// Package adapters provides the repository implementations for the companies feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"jobboard_backend/internal/feature/companies/domain/entity"
	"jobboard_backend/internal/feature/companies/usecase"
	"jobboard_backend/internal/platform/mongodb"
)

// companyMongo is the MongoDB implementation of the CompanyRepository
// interface. It also carries the job back-reference operations consumed by
// the jobs feature.
type companyMongo struct {
	coll *mongo.Collection
}

var _ usecase.CompanyRepository = (*companyMongo)(nil)

// NewCompanyMongo creates a company repository backed by the given store.
func NewCompanyMongo(store *mongodb.Store) *companyMongo {
	return &companyMongo{coll: store.Collection(mongodb.CollCompanies)}
}

// Create inserts the company. The name unique index maps duplicates to
// usecase.ErrNameTaken.
func (r *companyMongo) Create(ctx context.Context, c *entity.Company) error {
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

// FindByID retrieves a company by id.
func (r *companyMongo) FindByID(ctx context.Context, id bson.ObjectID) (*entity.Company, error) {
	var c entity.Company
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, usecase.ErrCompanyNotFound
		}
		return nil, err
	}
	return &c, nil
}

// FindByOwner lists every company whose owner list contains ownerID.
func (r *companyMongo) FindByOwner(ctx context.Context, ownerID bson.ObjectID) ([]entity.Company, error) {
	return r.findMany(ctx, bson.M{"owners": ownerID})
}

// FindAll lists every company.
func (r *companyMongo) FindAll(ctx context.Context) ([]entity.Company, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *companyMongo) findMany(ctx context.Context, filter bson.M) ([]entity.Company, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	companies := []entity.Company{}
	if err := cur.All(ctx, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

// UpdateFields applies a $set patch and returns the updated document.
func (r *companyMongo) UpdateFields(ctx context.Context, id bson.ObjectID, fields map[string]any) (*entity.Company, error) {
	set := bson.M{"updated_at": time.Now()}
	for k, v := range fields {
		set[k] = v
	}

	var c entity.Company
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, usecase.ErrCompanyNotFound
		}
		if mongodb.IsDup(err) {
			return nil, usecase.ErrNameTaken
		}
		return nil, err
	}
	return &c, nil
}

// Delete removes the company document.
func (r *companyMongo) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return usecase.ErrCompanyNotFound
	}
	return nil
}

// Exists reports whether a company id resolves. Consumed by the jobs
// feature when validating a posting.
func (r *companyMongo) Exists(ctx context.Context, id bson.ObjectID) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// AddJobRef pushes a job id onto the company's jobs list.
func (r *companyMongo) AddJobRef(ctx context.Context, companyID, jobID bson.ObjectID) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": companyID},
		bson.M{"$addToSet": bson.M{"jobs": jobID}},
	)
	return err
}

// RemoveJobRef pulls a job id out of every company referencing it.
func (r *companyMongo) RemoveJobRef(ctx context.Context, jobID bson.ObjectID) error {
	_, err := r.coll.UpdateMany(ctx,
		bson.M{"jobs": jobID},
		bson.M{"$pull": bson.M{"jobs": jobID}},
	)
	return err
}
