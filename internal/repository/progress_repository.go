package repository

import (
	"context"
	"english_learning_backend/internal/model"
	"english_learning_backend/pkg/database"
	"english_learning_backend/pkg/logger"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type ProgressRepository struct {
	coll database.Collection[model.Progress]
}

func NewProgressRepository(coll database.Collection[model.Progress]) *ProgressRepository {
	return &ProgressRepository{coll: coll}
}

func (r *ProgressRepository) logError(op string, err error, userID string) {
	logger.Log.Error("document store operation failed",
		zap.String("collection", database.ProgressCollection),
		zap.String("op", op),
		zap.String("user_id", userID),
		zap.Error(err))
}

func (r *ProgressRepository) GetByUserID(ctx context.Context, userID string) *model.Progress {
	p, err := r.coll.FindOne(ctx, bson.M{"UserId": userID})
	if err != nil {
		if !errors.Is(err, database.ErrNotFound) {
			r.logError("find_one", err, userID)
		}
		return nil
	}
	return p
}

func (r *ProgressRepository) Create(ctx context.Context, p *model.Progress) bool {
	p.Touch(time.Now())
	id, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		r.logError("insert_one", err, p.UserID)
		return false
	}
	p.ID = id
	return true
}

// UpdateFields writes only the mutable aggregate fields so that anything else
// on the stored document is left as is.
func (r *ProgressRepository) UpdateFields(ctx context.Context, p *model.Progress) bool {
	p.Touch(time.Now())
	update := bson.M{"$set": bson.M{
		"VocabularyProgress": p.VocabularyProgress,
		"GrammarProgress":    p.GrammarProgress,
		"ExerciseProgress":   p.ExerciseProgress,
		"TotalPoints":        p.TotalPoints,
		"Level":              p.Level,
		"LastCompletedItems": p.LastCompletedItems,
		"CompletedTopics":    p.CompletedTopics,
		"UpdatedAt":          p.UpdatedAt,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": p.ID}, update)
	if err != nil {
		r.logError("update_one", err, p.UserID)
		return false
	}
	return res.MatchedCount > 0
}

func (r *ProgressRepository) Delete(ctx context.Context, userID string) bool {
	deleted, err := r.coll.DeleteOne(ctx, bson.M{"UserId": userID})
	if err != nil {
		r.logError("delete_one", err, userID)
		return false
	}
	return deleted > 0
}
