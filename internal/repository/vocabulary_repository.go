package repository

import (
	"context"
	"english_learning_backend/internal/model"
	"english_learning_backend/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
)

type VocabularyRepository struct {
	favoriteRepository[model.Vocabulary, *model.Vocabulary]
}

func NewVocabularyRepository(coll database.Collection[model.Vocabulary]) *VocabularyRepository {
	return &VocabularyRepository{
		favoriteRepository: newFavoriteRepository[model.Vocabulary, *model.Vocabulary](coll, database.VocabularyCollection, "ID_TV"),
	}
}

type VocabularyFilter struct {
	Query   string
	TopicID int
	Level   string
}

func (f VocabularyFilter) toBSON() bson.M {
	filter := bson.M{}
	if f.Query != "" {
		filter["$or"] = bson.A{
			bson.M{"Word": containsFold(f.Query)},
			bson.M{"Meaning": containsFold(f.Query)},
		}
	}
	if f.TopicID > 0 {
		filter["ID_CD"] = f.TopicID
	}
	if f.Level != "" {
		filter["Level"] = f.Level
	}
	return filter
}

func (r *VocabularyRepository) GetByTopic(ctx context.Context, topicID int) []model.Vocabulary {
	return r.find(ctx, bson.M{"ID_CD": topicID})
}

func (r *VocabularyRepository) GetByLevel(ctx context.Context, level string) []model.Vocabulary {
	return r.find(ctx, bson.M{"Level": level})
}

func (r *VocabularyRepository) Search(ctx context.Context, f VocabularyFilter, page, pageSize int) ([]model.Vocabulary, int64) {
	return r.Page(ctx, f.toBSON(), page, pageSize)
}
