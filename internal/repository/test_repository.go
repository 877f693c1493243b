package repository

import (
	"context"
	"english_learning_backend/internal/model"
	"english_learning_backend/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
)

type TestRepository struct {
	contentRepository[model.Test, *model.Test]
}

func NewTestRepository(coll database.Collection[model.Test]) *TestRepository {
	return &TestRepository{
		contentRepository: newContentRepository[model.Test, *model.Test](coll, database.TestsCollection, "ID_BKT"),
	}
}

func (r *TestRepository) GetByLevel(ctx context.Context, level string) []model.Test {
	return r.find(ctx, bson.M{"Level": level})
}
