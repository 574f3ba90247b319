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

type goalDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      primitive.ObjectID `bson:"user_id"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"created_at"`
	CompletedAt *time.Time         `bson:"completed_at"`
}

func (d *goalDoc) toModel() *model.Goal {
	return &model.Goal{
		ID:          d.ID.Hex(),
		UserID:      d.UserID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Status:      model.GoalStatus(d.Status),
		CreatedAt:   d.CreatedAt,
		CompletedAt: d.CompletedAt,
	}
}

func (r *Repository) CreateGoal(ctx context.Context, goal *model.Goal) error {
	userID, err := parseID(goal.UserID)
	if err != nil {
		return err
	}

	doc := goalDoc{
		UserID:      userID,
		Title:       goal.Title,
		Description: goal.Description,
		Status:      string(goal.Status),
		CreatedAt:   goal.CreatedAt,
		CompletedAt: nil,
	}

	res, err := r.db.Collection(collGoals).InsertOne(ctx, doc)
	if err != nil {
		return errors.Wrap(err, "failed to insert goal")
	}

	goal.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

func (r *Repository) GetGoalByID(ctx context.Context, id string) (*model.Goal, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var doc goalDoc
	err = r.db.Collection(collGoals).FindOne(ctx, idFilter(oid)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to get goal by id")
	}

	return doc.toModel(), nil
}

func (r *Repository) GetGoalsByUserID(ctx context.Context, userID string) ([]*model.Goal, error) {
	oid, err := parseID(userID)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.db.Collection(collGoals).Find(ctx, bson.M{"user_id": oid}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get goals by user id")
	}
	defer cursor.Close(ctx)

	goals := make([]*model.Goal, 0)
	for cursor.Next(ctx) {
		var doc goalDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode goal")
		}
		goals = append(goals, doc.toModel())
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate goals")
	}

	return goals, nil
}

// CompleteGoal marks an active goal as completed. The update is
// conditioned on the current status so that, of any number of
// concurrent completion requests, at most one observes applied=true.
func (r *Repository) CompleteGoal(ctx context.Context, goalID string, completedAt time.Time) (bool, error) {
	oid, err := parseID(goalID)
	if err != nil {
		return false, err
	}

	res, err := r.db.Collection(collGoals).UpdateOne(ctx,
		bson.M{"_id": oid, "status": string(model.GoalStatusActive)},
		bson.M{"$set": bson.M{
			"status":       string(model.GoalStatusCompleted),
			"completed_at": completedAt,
		}},
	)
	if err != nil {
		return false, errors.Wrap(err, "failed to complete goal")
	}

	return res.ModifiedCount > 0, nil
}
