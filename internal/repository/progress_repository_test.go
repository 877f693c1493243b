package repository

import (
	"context"
	"english_learning_backend/internal/model"
	"english_learning_backend/pkg/database"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestProgressRepository_UpdateFieldsSetsAggregateOnly(t *testing.T) {
	coll := new(mockCollection[model.Progress])
	repo := NewProgressRepository(coll)

	p := model.NewProgress("u1")
	p.ID = primitive.NewObjectID()
	p.TotalPoints = 420
	p.Level = model.LevelA2

	coll.On("UpdateOne", bson.M{"_id": p.ID}, mock.MatchedBy(func(update bson.M) bool {
		set, ok := update["$set"].(bson.M)
		if !ok || len(update) != 1 {
			return false
		}
		_, hasUser := set["UserId"]
		_, hasID := set["_id"]
		return set["TotalPoints"] == 420 && set["Level"] == model.LevelA2 && !hasUser && !hasID
	})).Return(&mongo.UpdateResult{MatchedCount: 1}, nil)

	assert.True(t, repo.UpdateFields(context.Background(), p))
	assert.False(t, p.UpdatedAt.IsZero())
	coll.AssertExpectations(t)
}

func TestProgressRepository_CreateAndLookup(t *testing.T) {
	coll := new(mockCollection[model.Progress])
	repo := NewProgressRepository(coll)
	id := primitive.NewObjectID()

	coll.On("InsertOne", mock.AnythingOfType("*model.Progress")).Return(id, nil)
	coll.On("FindOne", bson.M{"UserId": "ghost"}).Return(nil, database.ErrNotFound)

	p := model.NewProgress("u1")
	require.True(t, repo.Create(context.Background(), p))
	assert.Equal(t, id, p.ID)
	assert.Nil(t, repo.GetByUserID(context.Background(), "ghost"))
}

func TestUserRepository_IncrementCounter(t *testing.T) {
	coll := new(mockCollection[model.User])
	repo := NewUserRepository(coll)

	coll.On("UpdateOne", bson.M{"UserId": "u1"}, mock.MatchedBy(func(update bson.M) bool {
		inc, ok := update["$inc"].(bson.M)
		return ok && inc[CounterGrammar] == 1
	})).Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)
	coll.On("UpdateOne", bson.M{"UserId": "ghost"}, mock.Anything).Return(&mongo.UpdateResult{}, nil)

	assert.True(t, repo.IncrementCounter(context.Background(), "u1", CounterGrammar, 1))
	assert.False(t, repo.IncrementCounter(context.Background(), "ghost", CounterGrammar, 1))
}

func TestUserRepository_AddLearned(t *testing.T) {
	coll := new(mockCollection[model.User])
	repo := NewUserRepository(coll)
	ctx := context.Background()

	notLearned := func(userID string) bson.M {
		return bson.M{"UserId": userID, "LearnedVocabulary": bson.M{"$ne": 4}}
	}
	coll.On("UpdateOne", notLearned("u1"), mock.MatchedBy(func(update bson.M) bool {
		add, ok := update["$addToSet"].(bson.M)
		inc, ok2 := update["$inc"].(bson.M)
		return ok && ok2 && add["LearnedVocabulary"] == 4 && inc[CounterVocabulary] == 1
	})).Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil).Once()

	added, found := repo.AddLearned(ctx, "u1", CounterVocabulary, 4)
	assert.True(t, added)
	assert.True(t, found)

	// already learned: the guard filter no longer matches
	coll.On("UpdateOne", notLearned("u1"), mock.Anything).Return(&mongo.UpdateResult{}, nil).Once()
	coll.On("FindOne", bson.M{"UserId": "u1"}).Return(&model.User{UserID: "u1"}, nil).Once()

	added, found = repo.AddLearned(ctx, "u1", CounterVocabulary, 4)
	assert.False(t, added)
	assert.True(t, found)

	coll.On("UpdateOne", notLearned("ghost"), mock.Anything).Return(&mongo.UpdateResult{}, nil).Once()
	coll.On("FindOne", bson.M{"UserId": "ghost"}).Return(nil, database.ErrNotFound).Once()

	added, found = repo.AddLearned(ctx, "ghost", CounterVocabulary, 4)
	assert.False(t, added)
	assert.False(t, found)

	added, found = repo.AddLearned(ctx, "u1", CounterExercises, 4)
	assert.False(t, added)
	assert.False(t, found)
	coll.AssertExpectations(t)
}

func TestUserRepository_CreateNormalisesEmail(t *testing.T) {
	coll := new(mockCollection[model.User])
	repo := NewUserRepository(coll)

	coll.On("InsertOne", mock.MatchedBy(func(u *model.User) bool {
		return u.Email == "ann@example.com"
	})).Return(primitive.NewObjectID(), nil)

	assert.True(t, repo.Create(context.Background(), &model.User{UserID: "u1", Email: "  Ann@Example.COM "}))
	coll.AssertExpectations(t)
}
