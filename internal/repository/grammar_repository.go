package repository

import (
	"context"
	"english_learning_backend/internal/model"
	"english_learning_backend/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
)

type GrammarRepository struct {
	favoriteRepository[model.Grammar, *model.Grammar]
}

func NewGrammarRepository(coll database.Collection[model.Grammar]) *GrammarRepository {
	return &GrammarRepository{
		favoriteRepository: newFavoriteRepository[model.Grammar, *model.Grammar](coll, database.GrammarCollection, "ID_NP"),
	}
}

type GrammarFilter struct {
	Query    string
	Level    string
	Category string
}

func (f GrammarFilter) toBSON() bson.M {
	filter := bson.M{}
	if f.Query != "" {
		filter["$or"] = bson.A{
			bson.M{"Title": containsFold(f.Query)},
			bson.M{"Structure": containsFold(f.Query)},
		}
	}
	if f.Level != "" {
		filter["Level"] = f.Level
	}
	if f.Category != "" {
		filter["Category"] = f.Category
	}
	return filter
}

func (r *GrammarRepository) GetByLevel(ctx context.Context, level string) []model.Grammar {
	return r.find(ctx, bson.M{"Level": level})
}

func (r *GrammarRepository) GetByCategory(ctx context.Context, category string) []model.Grammar {
	return r.find(ctx, bson.M{"Category": category})
}

func (r *GrammarRepository) Search(ctx context.Context, f GrammarFilter, page, pageSize int) ([]model.Grammar, int64) {
	return r.Page(ctx, f.toBSON(), page, pageSize)
}
