// Package adapters provides the repository implementations for the jobs feature.
package adapters

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"jobboard_backend/internal/feature/jobs/domain/entity"
	"jobboard_backend/internal/feature/jobs/usecase"
	"jobboard_backend/internal/platform/mongodb"
)

// jobMongo is the MongoDB implementation of the JobRepository interface.
// It also carries the operations consumed by the companies feature
// (cascade deletion) and the applications feature (applicant list).
type jobMongo struct {
	coll *mongo.Collection
}

var _ usecase.JobRepository = (*jobMongo)(nil)

// NewJobMongo creates a job repository backed by the given store.
func NewJobMongo(store *mongodb.Store) *jobMongo {
	return &jobMongo{coll: store.Collection(mongodb.CollJobs)}
}

// Insert persists the job.
func (r *jobMongo) Insert(ctx context.Context, j *entity.Job) error {
	now := time.Now()
	j.CreatedAt = now
	j.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, j)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		j.ID = id
	}
	return nil
}

// FindByID retrieves a job by id.
func (r *jobMongo) FindByID(ctx context.Context, id bson.ObjectID) (*entity.Job, error) {
	var j entity.Job
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&j); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, usecase.ErrJobNotFound
		}
		return nil, err
	}
	return &j, nil
}

// Search lists jobs matching the keyword, newest first, with the company
// reference populated by a $lookup stage.
func (r *jobMongo) Search(ctx context.Context, keyword string) ([]entity.JobWithCompany, error) {
	match := bson.M{}
	if keyword != "" {
		quoted := regexp.QuoteMeta(keyword)
		match = bson.M{"$or": bson.A{
			bson.M{"title": bson.M{"$regex": quoted, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": quoted, "$options": "i"}},
		}}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         mongodb.CollCompanies,
			"localField":   "company",
			"foreignField": "_id",
			"as":           "company_doc",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$company_doc",
			"preserveNullAndEmptyArrays": true,
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	jobs := []entity.JobWithCompany{}
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// FindByPoster lists jobs created by the given user, newest first.
func (r *jobMongo) FindByPoster(ctx context.Context, posterID bson.ObjectID) ([]entity.Job, error) {
	cur, err := r.coll.Find(ctx,
		bson.M{"posted_by": posterID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	jobs := []entity.Job{}
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// UpdateFields applies a $set patch and returns the updated document.
func (r *jobMongo) UpdateFields(ctx context.Context, id bson.ObjectID, fields map[string]any) (*entity.Job, error) {
	set := bson.M{"updated_at": time.Now()}
	for k, v := range fields {
		set[k] = v
	}

	var j entity.Job
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&j)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, usecase.ErrJobNotFound
		}
		return nil, err
	}
	return &j, nil
}

// Delete removes the job document.
func (r *jobMongo) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return usecase.ErrJobNotFound
	}
	return nil
}

// DeleteByCompany removes every job posted under the company and returns
// the removed ids. Consumed by the companies feature's cascade deletion.
func (r *jobMongo) DeleteByCompany(ctx context.Context, companyID bson.ObjectID) ([]bson.ObjectID, error) {
	cur, err := r.coll.Find(ctx,
		bson.M{"company": companyID},
		options.Find().SetProjection(bson.M{"_id": 1}),
	)
	if err != nil {
		return nil, err
	}
	var docs []struct {
		ID bson.ObjectID `bson:"_id"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}

	ids := make([]bson.ObjectID, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	if _, err := r.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}}); err != nil {
		return nil, err
	}
	return ids, nil
}

// RemoveCategoryRef pulls a deleted category out of every job's categories
// list. Consumed by the categories feature's cascade deletion.
func (r *jobMongo) RemoveCategoryRef(ctx context.Context, categoryID bson.ObjectID) error {
	_, err := r.coll.UpdateMany(ctx,
		bson.M{"categories": categoryID},
		bson.M{"$pull": bson.M{"categories": categoryID}},
	)
	return err
}

// Exists reports whether a job id resolves. Consumed by the applications
// feature when validating an application.
func (r *jobMongo) Exists(ctx context.Context, id bson.ObjectID) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// AddApplicant pushes an application id onto the job's applicants list.
func (r *jobMongo) AddApplicant(ctx context.Context, jobID, applicationID bson.ObjectID) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": jobID},
		bson.M{"$addToSet": bson.M{"applicants": applicationID}},
	)
	return err
}
