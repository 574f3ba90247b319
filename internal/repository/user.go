package repository

import (
	"context"
	"time"

	"github.com/AryanAggarwal62/Spurhacks/internal/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type userDoc struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty"`
	WalletAddress string               `bson:"wallet_address"`
	Username      *string              `bson:"username"`
	CreatedAt     time.Time            `bson:"created_at"`
	NFTs          []primitive.ObjectID `bson:"nfts"`
}

func (d *userDoc) toModel() *model.User {
	nfts := make([]string, len(d.NFTs))
	for i, id := range d.NFTs {
		nfts[i] = id.Hex()
	}

	return &model.User{
		ID:            d.ID.Hex(),
		WalletAddress: d.WalletAddress,
		Username:      d.Username,
		CreatedAt:     d.CreatedAt,
		NFTs:          nfts,
	}
}

func (r *Repository) CreateUser(ctx context.Context, user *model.User) error {
	doc := userDoc{
		WalletAddress: user.WalletAddress,
		Username:      user.Username,
		CreatedAt:     user.CreatedAt,
		NFTs:          []primitive.ObjectID{},
	}

	res, err := r.db.Collection(collUsers).InsertOne(ctx, doc)
	if err != nil {
		return errors.Wrap(err, "failed to insert user")
	}

	user.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

func (r *Repository) GetUserByWallet(ctx context.Context, walletAddress string) (*model.User, error) {
	var doc userDoc
	err := r.db.Collection(collUsers).
		FindOne(ctx, bson.M{"wallet_address": walletAddress}).
		Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to get user by wallet")
	}

	return doc.toModel(), nil
}

func (r *Repository) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var doc userDoc
	err = r.db.Collection(collUsers).FindOne(ctx, idFilter(oid)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to get user by id")
	}

	return doc.toModel(), nil
}
