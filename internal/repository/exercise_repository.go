package repository

import (
	"context"
	"english_learning_backend/internal/model"
	"english_learning_backend/pkg/database"
	"english_learning_backend/pkg/logger"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ExerciseRepository reads exercises from the store. When the collection is
// unreachable or empty it answers from the fallback list it was built with.
type ExerciseRepository struct {
	contentRepository[model.Exercise, *model.Exercise]
	fallback []model.Exercise
}

func NewExerciseRepository(coll database.Collection[model.Exercise], fallback []model.Exercise) *ExerciseRepository {
	return &ExerciseRepository{
		contentRepository: newContentRepository[model.Exercise, *model.Exercise](coll, database.ExercisesCollection, "ID_BT"),
		fallback:          fallback,
	}
}

func (r *ExerciseRepository) degraded(ctx context.Context) bool {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		r.logError("count", err)
		return true
	}
	if n == 0 && len(r.fallback) > 0 {
		logger.Log.Debug("exercise collection empty, serving fallback", zap.Int("fallback", len(r.fallback)))
		return true
	}
	return false
}

func (r *ExerciseRepository) filterFallback(keep func(e *model.Exercise) bool) []model.Exercise {
	out := make([]model.Exercise, 0)
	for i := range r.fallback {
		if keep(&r.fallback[i]) {
			out = append(out, r.fallback[i])
		}
	}
	return out
}

func (r *ExerciseRepository) GetAll(ctx context.Context) []model.Exercise {
	if r.degraded(ctx) {
		return r.filterFallback(func(*model.Exercise) bool { return true })
	}
	return r.contentRepository.GetAll(ctx)
}

func (r *ExerciseRepository) GetByID(ctx context.Context, key int) *model.Exercise {
	if item := r.contentRepository.GetByID(ctx, key); item != nil {
		return item
	}
	if !r.degraded(ctx) {
		return nil
	}
	for i := range r.fallback {
		if r.fallback[i].ExerciseID == key {
			item := r.fallback[i]
			return &item
		}
	}
	return nil
}

func (r *ExerciseRepository) GetByTopic(ctx context.Context, topicID int) []model.Exercise {
	if r.degraded(ctx) {
		return r.filterFallback(func(e *model.Exercise) bool { return e.TopicID == topicID })
	}
	return r.find(ctx, bson.M{"ID_CD": topicID})
}

func (r *ExerciseRepository) GetByCategory(ctx context.Context, category string) []model.Exercise {
	if r.degraded(ctx) {
		return r.filterFallback(func(e *model.Exercise) bool { return strings.EqualFold(e.Category, category) })
	}
	return r.find(ctx, bson.M{"Category": equalFold(category)})
}

func (r *ExerciseRepository) GetByLevel(ctx context.Context, level string) []model.Exercise {
	if r.degraded(ctx) {
		return r.filterFallback(func(e *model.Exercise) bool { return e.Level == level })
	}
	return r.find(ctx, bson.M{"Level": level})
}
