package repository

import (
	"context"
	"time"

	"github.com/AryanAggarwal62/Spurhacks/internal/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type nftDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      primitive.ObjectID `bson:"user_id"`
	GoalID      primitive.ObjectID `bson:"goal_id"`
	MintedAt    time.Time          `bson:"minted_at"`
	Rarity      string             `bson:"rarity"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	ImageURL    string             `bson:"image_url"`
	Listed      bool               `bson:"listed"`
}

type listedNFTDoc struct {
	nftDoc `bson:",inline"`
	Owner  userDoc `bson:"owner"`
}

func (d *nftDoc) toModel() *model.NFT {
	return &model.NFT{
		ID:          d.ID.Hex(),
		UserID:      d.UserID.Hex(),
		GoalID:      d.GoalID.Hex(),
		MintedAt:    d.MintedAt,
		Rarity:      model.Rarity(d.Rarity),
		Name:        d.Name,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		Listed:      d.Listed,
	}
}

// CreateNFT inserts the collectible and appends its id to the owner's
// inventory as one write group.
func (r *Repository) CreateNFT(ctx context.Context, nft *model.NFT) error {
	userID, err := parseID(nft.UserID)
	if err != nil {
		return err
	}
	goalID, err := parseID(nft.GoalID)
	if err != nil {
		return err
	}

	doc := nftDoc{
		UserID:      userID,
		GoalID:      goalID,
		MintedAt:    nft.MintedAt,
		Rarity:      string(nft.Rarity),
		Name:        nft.Name,
		Description: nft.Description,
		ImageURL:    nft.ImageURL,
		Listed:      nft.Listed,
	}

	return r.withTransaction(ctx, func(ctx context.Context) error {
		res, err := r.db.Collection(collNFTs).InsertOne(ctx, doc)
		if err != nil {
			return errors.Wrap(err, "failed to insert nft")
		}
		nftID := res.InsertedID.(primitive.ObjectID)

		_, err = r.db.Collection(collUsers).UpdateOne(ctx,
			idFilter(userID),
			bson.M{"$push": bson.M{"nfts": nftID}},
		)
		if err != nil {
			return errors.Wrap(err, "failed to add nft to user inventory")
		}

		nft.ID = nftID.Hex()
		return nil
	})
}

func (r *Repository) GetNFTsByIDs(ctx context.Context, ids []string) ([]*model.NFT, error) {
	oids, err := parseIDs(ids)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "minted_at", Value: 1}})
	cursor, err := r.db.Collection(collNFTs).Find(ctx, bson.M{"_id": bson.M{"$in": oids}}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get nfts by ids")
	}
	defer cursor.Close(ctx)

	return decodeNFTs(ctx, cursor)
}

func (r *Repository) GetNFTByIDAndOwner(ctx context.Context, nftID, userID string) (*model.NFT, error) {
	oid, err := parseID(nftID)
	if err != nil {
		return nil, err
	}
	owner, err := parseID(userID)
	if err != nil {
		return nil, err
	}

	var doc nftDoc
	err = r.db.Collection(collNFTs).
		FindOne(ctx, bson.M{"_id": oid, "user_id": owner}).
		Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to get nft by id and owner")
	}

	return doc.toModel(), nil
}

func (r *Repository) GetListedNFT(ctx context.Context, nftID string) (*model.NFT, error) {
	oid, err := parseID(nftID)
	if err != nil {
		return nil, err
	}

	var doc nftDoc
	err = r.db.Collection(collNFTs).
		FindOne(ctx, bson.M{"_id": oid, "listed": true}).
		Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to get listed nft")
	}

	return doc.toModel(), nil
}

func (r *Repository) SetNFTListed(ctx context.Context, nftID string, listed bool) error {
	oid, err := parseID(nftID)
	if err != nil {
		return err
	}

	_, err = r.db.Collection(collNFTs).UpdateOne(ctx,
		idFilter(oid),
		bson.M{"$set": bson.M{"listed": listed}},
	)
	if err != nil {
		return errors.Wrap(err, "failed to update nft listing")
	}

	return nil
}

// GetListedNFTs returns every listed collectible not owned by the
// excluded user, joined with its owner. A listing whose owner document
// is missing is dropped by the $unwind.
func (r *Repository) GetListedNFTs(ctx context.Context, excludingUserID string) ([]*model.ListedNFT, error) {
	excluded, err := parseID(excludingUserID)
	if err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"listed":  true,
			"user_id": bson.M{"$ne": excluded},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         collUsers,
			"localField":   "user_id",
			"foreignField": "_id",
			"as":           "owner",
		}}},
		{{Key: "$unwind", Value: "$owner"}},
		{{Key: "$sort", Value: bson.D{{Key: "minted_at", Value: 1}}}},
	}

	cursor, err := r.db.Collection(collNFTs).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate listed nfts")
	}
	defer cursor.Close(ctx)

	listings := make([]*model.ListedNFT, 0)
	for cursor.Next(ctx) {
		var doc listedNFTDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode listed nft")
		}
		listings = append(listings, &model.ListedNFT{
			NFT: *doc.nftDoc.toModel(),
			Owner: model.PublicUser{
				ID:            doc.Owner.ID.Hex(),
				WalletAddress: doc.Owner.WalletAddress,
			},
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate listed nfts")
	}

	return listings, nil
}

// TradeNFTs swaps ownership of two collectibles: both owner fields are
// exchanged, both listed flags cleared, and the four inventory entries
// moved between the two users, as one write group.
func (r *Repository) TradeNFTs(ctx context.Context, proposerUserID, proposerNFTID, targetUserID, targetNFTID string) error {
	proposerUser, err := parseID(proposerUserID)
	if err != nil {
		return err
	}
	proposerNFT, err := parseID(proposerNFTID)
	if err != nil {
		return err
	}
	targetUser, err := parseID(targetUserID)
	if err != nil {
		return err
	}
	targetNFT, err := parseID(targetNFTID)
	if err != nil {
		return err
	}

	return r.withTransaction(ctx, func(ctx context.Context) error {
		nfts := r.db.Collection(collNFTs)
		users := r.db.Collection(collUsers)

		_, err := nfts.UpdateOne(ctx, idFilter(proposerNFT),
			bson.M{"$set": bson.M{"user_id": targetUser, "listed": false}})
		if err != nil {
			return errors.Wrap(err, "failed to reassign proposer nft")
		}

		_, err = nfts.UpdateOne(ctx, idFilter(targetNFT),
			bson.M{"$set": bson.M{"user_id": proposerUser, "listed": false}})
		if err != nil {
			return errors.Wrap(err, "failed to reassign target nft")
		}

		// $pull and $push on the same field conflict within a single
		// update, so each inventory mutation is its own call.
		_, err = users.UpdateOne(ctx, idFilter(proposerUser),
			bson.M{"$pull": bson.M{"nfts": proposerNFT}})
		if err != nil {
			return errors.Wrap(err, "failed to remove nft from proposer inventory")
		}

		_, err = users.UpdateOne(ctx, idFilter(proposerUser),
			bson.M{"$push": bson.M{"nfts": targetNFT}})
		if err != nil {
			return errors.Wrap(err, "failed to add nft to proposer inventory")
		}

		_, err = users.UpdateOne(ctx, idFilter(targetUser),
			bson.M{"$pull": bson.M{"nfts": targetNFT}})
		if err != nil {
			return errors.Wrap(err, "failed to remove nft from target inventory")
		}

		_, err = users.UpdateOne(ctx, idFilter(targetUser),
			bson.M{"$push": bson.M{"nfts": proposerNFT}})
		if err != nil {
			return errors.Wrap(err, "failed to add nft to target inventory")
		}

		return nil
	})
}

func decodeNFTs(ctx context.Context, cursor *mongo.Cursor) ([]*model.NFT, error) {
	nfts := make([]*model.NFT, 0)
	for cursor.Next(ctx) {
		var doc nftDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode nft")
		}
		nfts = append(nfts, doc.toModel())
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate nfts")
	}

	return nfts, nil
}
