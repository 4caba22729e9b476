// Package adapters provides the repository implementations for the
// applications feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"jobboard_backend/internal/feature/applications/domain/entity"
	"jobboard_backend/internal/feature/applications/usecase"
	"jobboard_backend/internal/platform/mongodb"
)

// applicationMongo is the MongoDB implementation of ApplicationRepository.
type applicationMongo struct {
	coll *mongo.Collection
}

var _ usecase.ApplicationRepository = (*applicationMongo)(nil)

// NewApplicationMongo creates an application repository backed by the
// given store.
func NewApplicationMongo(store *mongodb.Store) *applicationMongo {
	return &applicationMongo{coll: store.Collection(mongodb.CollApplications)}
}

// Insert persists the application. The compound unique index on
// (job, applicant) turns a duplicate apply into ErrAlreadyApplied.
func (r *applicationMongo) Insert(ctx context.Context, a *entity.Application) error {
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, a)
	if err != nil {
		if mongodb.IsDup(err) {
			return usecase.ErrAlreadyApplied
		}
		return err
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		a.ID = id
	}
	return nil
}

// ListForApplicant lists a user's applications, newest first. Each
// application's job is populated, and the job's company inside it.
func (r *applicationMongo) ListForApplicant(ctx context.Context, applicantID bson.ObjectID) ([]entity.ApplicationWithJob, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"applicant": applicantID}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         mongodb.CollJobs,
			"localField":   "job",
			"foreignField": "_id",
			"as":           "job_doc",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$job_doc",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         mongodb.CollCompanies,
			"localField":   "job_doc.company",
			"foreignField": "_id",
			"as":           "job_doc.company_doc",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$job_doc.company_doc",
			"preserveNullAndEmptyArrays": true,
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	apps := []entity.ApplicationWithJob{}
	if err := cur.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// ListForJob lists a job's applications, newest first, with the applicant
// populated. The password hash is projected away at the pipeline level.
func (r *applicationMongo) ListForJob(ctx context.Context, jobID bson.ObjectID) ([]entity.ApplicationWithApplicant, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"job": jobID}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         mongodb.CollUsers,
			"localField":   "applicant",
			"foreignField": "_id",
			"as":           "applicant_doc",
			"pipeline": mongo.Pipeline{
				{{Key: "$project", Value: bson.M{"password": 0}}},
			},
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$applicant_doc",
			"preserveNullAndEmptyArrays": true,
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	apps := []entity.ApplicationWithApplicant{}
	if err := cur.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// UpdateStatus overwrites the status field and returns the new document.
func (r *applicationMongo) UpdateStatus(ctx context.Context, id bson.ObjectID, status entity.Status) (*entity.Application, error) {
	var a entity.Application
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, usecase.ErrApplicationNotFound
		}
		return nil, err
	}
	return &a, nil
}
