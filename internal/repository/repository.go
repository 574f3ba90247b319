package repository

import (
	"context"

	"github.com/AryanAggarwal62/Spurhacks/pkg/logger"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("not found")

const (
	collUsers = "users"
	collGoals = "goals"
	collNFTs  = "nfts"
)

type Repository struct {
	client *mongo.Client
	db     *mongo.Database

	useTransactions bool
}

type Config struct {
	URI             string `json:"uri"`
	Name            string `json:"name"`
	UseTransactions bool   `json:"useTransactions"`
}

func New(cfg Config) (*Repository, error) {
	ctx := context.Background()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	logger.Logger().Info("Connected to database successfully")

	return &Repository{
		client:          client,
		db:              client.Database(cfg.Name),
		useTransactions: cfg.UseTransactions,
	}, nil
}

func (r *Repository) Close() error {
	return r.client.Disconnect(context.Background())
}

// withTransaction runs a multi-document write group. With
// useTransactions set it uses a session transaction, which requires a
// replica set deployment. Otherwise the writes run as a plain sequence
// and a mid-sequence failure leaves the earlier writes committed.
func (r *Repository) withTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if !r.useTransactions {
		return fn(ctx)
	}

	session, err := r.client.StartSession()
	if err != nil {
		return errors.Wrap(err, "failed to start session")
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

// parseID converts the opaque string id used above this package into
// the store-native id. An id that cannot possibly reference a document
// resolves to ErrNotFound.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return oid, nil
}

func parseIDs(ids []string) ([]primitive.ObjectID, error) {
	oids := make([]primitive.ObjectID, len(ids))
	for i, id := range ids {
		oid, err := parseID(id)
		if err != nil {
			return nil, err
		}
		oids[i] = oid
	}
	return oids, nil
}

func idFilter(oid primitive.ObjectID) bson.M {
	return bson.M{"_id": oid}
}
