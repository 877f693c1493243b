package repository

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mockCollection[T any] struct {
	mock.Mock
}

func (m *mockCollection[T]) Find(ctx context.Context, filter any, opts ...*options.FindOptions) ([]T, error) {
	args := m.Called(filter)
	items, _ := args.Get(0).([]T)
	return items, args.Error(1)
}

func (m *mockCollection[T]) FindOne(ctx context.Context, filter any) (*T, error) {
	args := m.Called(filter)
	item, _ := args.Get(0).(*T)
	return item, args.Error(1)
}

func (m *mockCollection[T]) InsertOne(ctx context.Context, doc *T) (primitive.ObjectID, error) {
	args := m.Called(doc)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockCollection[T]) InsertMany(ctx context.Context, docs []T) (int, error) {
	args := m.Called(docs)
	return args.Int(0), args.Error(1)
}

func (m *mockCollection[T]) ReplaceOne(ctx context.Context, filter any, doc *T) (*mongo.UpdateResult, error) {
	args := m.Called(filter, doc)
	res, _ := args.Get(0).(*mongo.UpdateResult)
	return res, args.Error(1)
}

func (m *mockCollection[T]) UpdateOne(ctx context.Context, filter any, update any) (*mongo.UpdateResult, error) {
	args := m.Called(filter, update)
	res, _ := args.Get(0).(*mongo.UpdateResult)
	return res, args.Error(1)
}

func (m *mockCollection[T]) DeleteOne(ctx context.Context, filter any) (int64, error) {
	args := m.Called(filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCollection[T]) CountDocuments(ctx context.Context, filter any) (int64, error) {
	args := m.Called(filter)
	return args.Get(0).(int64), args.Error(1)
}
