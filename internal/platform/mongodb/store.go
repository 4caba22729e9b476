// Package mongodb opens the document store, declares its indexes, and
// exposes the transaction boundary wrapping every multi-document workflow.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection names shared by the repository adapters and their $lookup
// stages.
const (
	CollUsers        = "users"
	CollCompanies    = "companies"
	CollCategories   = "job_categories"
	CollJobs         = "jobs"
	CollApplications = "applications"
)

// Store wraps the connected client and target database.
type Store struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// Connect opens the document store, verifies the connection, and ensures
// the unique indexes that back every Conflict error in the API.
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongodb ping failed: %w", err)
	}

	s := &Store{Client: client, DB: client.Database(dbName)}
	if err := s.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}
	return s, nil
}

// Collection returns a handle on the named collection.
func (s *Store) Collection(name string) *mongo.Collection {
	return s.DB.Collection(name)
}

// Close disconnects from the store.
func (s *Store) Close(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}

// ensureIndexes declares the storage-level uniqueness constraints:
// user email, company name, category name, and one application per
// (job, applicant) pair. Duplicate-key errors from these indexes are the
// Conflict signal; there are no read-then-write pre-checks.
func (s *Store) ensureIndexes(ctx context.Context) error {
	unique := func(coll string, keys bson.D) error {
		_, err := s.DB.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    keys,
			Options: options.Index().SetUnique(true),
		})
		return err
	}

	if err := unique(CollUsers, bson.D{{Key: "email", Value: 1}}); err != nil {
		return err
	}
	if err := unique(CollCompanies, bson.D{{Key: "name", Value: 1}}); err != nil {
		return err
	}
	if err := unique(CollCategories, bson.D{{Key: "name", Value: 1}}); err != nil {
		return err
	}
	return unique(CollApplications, bson.D{{Key: "job", Value: 1}, {Key: "applicant", Value: 1}})
}

// WithTransaction runs fn inside a storage-native transaction. Every
// multi-document workflow (job posting, job deletion, cascade deletes,
// application creation) goes through here so a failure mid-sequence rolls
// the whole workflow back. Requires a replica-set deployment.
func (s *Store) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	sess, err := s.Client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(ctx context.Context) (interface{}, error) {
		return nil, fn(ctx)
	})
	return err
}

// IsDup reports whether err is a unique-index violation.
func IsDup(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
