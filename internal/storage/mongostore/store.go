// Package mongostore is the MongoDB storage backend, used for deployments
// that need durability across restarts.
//
// Primary keys are store-generated ObjectIDs, exposed through the contract
// as their hex form; business numbers use a random base36 suffix instead of
// the in-memory backend's sequential format. Uniqueness is enforced by
// indexes provisioned at connect time, not pre-checked per call.
package mongostore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	"policerecords/internal/common"
	"policerecords/internal/logging"
	"policerecords/internal/models"
)

const (
	connectTimeout = 30 * time.Second
	maxPoolSize    = 10
	minPoolSize    = 1
)

type Store struct {
	client *mongo.Client
	db     *mongo.Database
	dbName string
	log    logging.Logger

	// now is the record timestamp source, replaceable in tests.
	now func() time.Time
}

// New returns an unconnected store. Operations fail with
// common.ErrorNotConnected until Connect succeeds.
func New(dbName string, log logging.Logger) *Store {
	return &Store{dbName: dbName, log: log, now: time.Now}
}

// Connect establishes the pooled connection, verifies liveness with a
// ping, provisions the uniqueness indexes and ensures the default admin
// account exists. On error the caller is expected to fall back to the
// in-memory backend.
func (s *Store) Connect(ctx context.Context, uri string) error {
	opts := options.Client().
		ApplyURI(uri).
		SetRetryWrites(true).
		SetWriteConcern(writeconcern.Majority()).
		SetConnectTimeout(connectTimeout).
		SetSocketTimeout(connectTimeout).
		SetServerSelectionTimeout(connectTimeout).
		SetMaxPoolSize(maxPoolSize).
		SetMinPoolSize(minPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("mongodb connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return fmt.Errorf("mongodb ping: %w", err)
	}

	s.client = client
	s.db = client.Database(s.dbName)

	if err := s.ensureIndexes(ctx); err != nil {
		return fmt.Errorf("mongodb indexes: %w", err)
	}
	if err := s.ensureDefaultAdmin(ctx); err != nil {
		return fmt.Errorf("mongodb default admin: %w", err)
	}

	s.log.Info(ctx, "connected to mongodb", "database", s.dbName)
	return nil
}

// Disconnect releases the connection pool.
func (s *Store) Disconnect(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	err := s.client.Disconnect(ctx)
	s.client = nil
	s.db = nil
	return err
}

func (s *Store) coll(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// connected guards operations issued before a successful Connect.
func (s *Store) connected() error {
	if s.db == nil {
		return common.ErrorNotConnected
	}
	return nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	type indexSet struct {
		coll   string
		models []mongo.IndexModel
	}

	sets := []indexSet{
		{"users", []mongo.IndexModel{
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "badgeNumber", Value: 1}}},
		}},
		{"cases", []mongo.IndexModel{
			{Keys: bson.D{{Key: "caseNumber", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "priority", Value: 1}}},
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		}},
		{"obEntries", []mongo.IndexModel{
			{Keys: bson.D{{Key: "obNumber", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "dateTime", Value: -1}}},
		}},
		{"licensePlates", []mongo.IndexModel{
			{Keys: bson.D{{Key: "plateNumber", Value: 1}}, Options: unique},
		}},
		{"evidence", []mongo.IndexModel{
			{Keys: bson.D{{Key: "evidenceNumber", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "caseId", Value: 1}}},
		}},
		{"policeVehicles", []mongo.IndexModel{
			{Keys: bson.D{{Key: "vehicleId", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "licensePlate", Value: 1}}, Options: unique},
		}},
		{"reports", []mongo.IndexModel{
			{Keys: bson.D{{Key: "reportNumber", Value: 1}}, Options: unique},
		}},
		{"passwordResetTokens", []mongo.IndexModel{
			{Keys: bson.D{{Key: "token", Value: 1}}, Options: unique},
		}},
	}

	for _, set := range sets {
		if _, err := s.coll(set.coll).Indexes().CreateMany(ctx, set.models); err != nil {
			return fmt.Errorf("collection %s: %w", set.coll, err)
		}
	}
	return nil
}

// ensureDefaultAdmin creates the administrator account once; reconnects
// are idempotent.
func (s *Store) ensureDefaultAdmin(ctx context.Context) error {
	err := s.coll("users").FindOne(ctx, bson.M{"username": "admin"}).Err()
	if err == nil {
		return nil
	}
	if err != mongo.ErrNoDocuments {
		return err
	}

	now := s.now()
	admin := models.User{
		Username:    "admin",
		Email:       "admin@police.gov",
		Password:    "admin123", // hashing is handled upstream once auth lands
		FirstName:   "System",
		LastName:    "Administrator",
		Role:        models.RoleAdmin,
		BadgeNumber: "ADMIN001",
		Department:  "IT",
		Position:    "System Administrator",
		Phone:       "+1-555-0000",
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := s.coll("users").InsertOne(ctx, &admin); err != nil && !mongo.IsDuplicateKeyError(err) {
		return err
	}
	s.log.Info(ctx, "default admin user created")
	return nil
}
