package repository

import (
	"context"
	"english_learning_backend/internal/model"
	"english_learning_backend/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
)

type TopicRepository struct {
	favoriteRepository[model.Topic, *model.Topic]
}

func NewTopicRepository(coll database.Collection[model.Topic]) *TopicRepository {
	return &TopicRepository{
		favoriteRepository: newFavoriteRepository[model.Topic, *model.Topic](coll, database.TopicsCollection, "ID_CD"),
	}
}

func (r *TopicRepository) GetByLevel(ctx context.Context, level string) []model.Topic {
	return r.find(ctx, bson.M{"Level": level})
}
