package database

import (
	"context"
	"english_learning_backend/internal/config"
	"english_learning_backend/pkg/logger"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Collection names
const (
	UsersCollection      = "users"
	VocabularyCollection = "vocabulary"
	GrammarCollection    = "grammar"
	TopicsCollection     = "topics"
	ExercisesCollection  = "exercises"
	TestsCollection      = "tests"
	ProgressCollection   = "progress"
)

var ErrNotFound = errors.New("document not found")

// Store owns the process-wide mongo client. Pooling is left to the driver.
type Store struct {
	Client *mongo.Client
	DB     *mongo.Database
}

func InitMongo(cfg *config.MongoConfig) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	logger.Log.Info("MongoDB connection established", zap.String("database", cfg.Database))

	return &Store{Client: client, DB: client.Database(cfg.Database)}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}

// EnsureIndexes makes natural keys unique so business identity survives replaces.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	unique := map[string][]string{
		UsersCollection:      {"UserId", "Email"},
		VocabularyCollection: {"ID_TV"},
		GrammarCollection:    {"ID_NP"},
		TopicsCollection:     {"ID_CD"},
		ExercisesCollection:  {"ID_BT"},
		TestsCollection:      {"ID_BKT"},
		ProgressCollection:   {"UserId"},
	}

	for name, fields := range unique {
		models := make([]mongo.IndexModel, 0, len(fields))
		for _, f := range fields {
			models = append(models, mongo.IndexModel{
				Keys:    bson.D{{Key: f, Value: 1}},
				Options: options.Index().SetUnique(true),
			})
		}
		if _, err := s.DB.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}

	secondary := map[string]string{
		VocabularyCollection: "ID_CD",
		ExercisesCollection:  "ID_CD",
	}
	for name, field := range secondary {
		_, err := s.DB.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: field, Value: 1}},
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// Collection is the typed view of a named mongo collection that repositories work against.
type Collection[T any] interface {
	Find(ctx context.Context, filter any, opts ...*options.FindOptions) ([]T, error)
	FindOne(ctx context.Context, filter any) (*T, error)
	InsertOne(ctx context.Context, doc *T) (primitive.ObjectID, error)
	InsertMany(ctx context.Context, docs []T) (int, error)
	ReplaceOne(ctx context.Context, filter any, doc *T) (*mongo.UpdateResult, error)
	UpdateOne(ctx context.Context, filter any, update any) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter any) (int64, error)
	CountDocuments(ctx context.Context, filter any) (int64, error)
}

func GetCollection[T any](s *Store, name string) Collection[T] {
	return &mongoCollection[T]{coll: s.DB.Collection(name)}
}

type mongoCollection[T any] struct {
	coll *mongo.Collection
}

func (c *mongoCollection[T]) Find(ctx context.Context, filter any, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := c.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]T, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *mongoCollection[T]) FindOne(ctx context.Context, filter any) (*T, error) {
	var item T
	err := c.coll.FindOne(ctx, filter).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *mongoCollection[T]) InsertOne(ctx context.Context, doc *T) (primitive.ObjectID, error) {
	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (c *mongoCollection[T]) InsertMany(ctx context.Context, docs []T) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}
	batch := make([]interface{}, len(docs))
	for i := range docs {
		batch[i] = docs[i]
	}
	res, err := c.coll.InsertMany(ctx, batch)
	if err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}

func (c *mongoCollection[T]) ReplaceOne(ctx context.Context, filter any, doc *T) (*mongo.UpdateResult, error) {
	return c.coll.ReplaceOne(ctx, filter, doc)
}

func (c *mongoCollection[T]) UpdateOne(ctx context.Context, filter any, update any) (*mongo.UpdateResult, error) {
	return c.coll.UpdateOne(ctx, filter, update)
}

func (c *mongoCollection[T]) DeleteOne(ctx context.Context, filter any) (int64, error) {
	res, err := c.coll.DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (c *mongoCollection[T]) CountDocuments(ctx context.Context, filter any) (int64, error) {
	return c.coll.CountDocuments(ctx, filter)
}
