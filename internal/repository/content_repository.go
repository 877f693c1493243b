package repository

import (
	"context"
	"english_learning_backend/internal/model"
	"english_learning_backend/pkg/database"
	"english_learning_backend/pkg/logger"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// document is the pointer side of every content entity: a surrogate _id plus
// a stable integer natural key.
type document[T any] interface {
	*T
	DocumentID() primitive.ObjectID
	SetDocumentID(id primitive.ObjectID)
	NaturalKey() int
	SetNaturalKey(key int)
	Touch(now time.Time)
	Created() time.Time
	SetCreated(t time.Time)
}

type favoriteDocument[T any] interface {
	document[T]
	Favorites() model.UserSet
	SetFavorites(users model.UserSet)
}

// contentRepository implements the CRUD contract shared by every content
// collection. Store errors are logged and reported as nil, false or empty.
type contentRepository[T any, P document[T]] struct {
	coll     database.Collection[T]
	keyField string
	name     string
}

func newContentRepository[T any, P document[T]](coll database.Collection[T], name, keyField string) contentRepository[T, P] {
	return contentRepository[T, P]{coll: coll, keyField: keyField, name: name}
}

func (r *contentRepository[T, P]) logError(op string, err error, fields ...zap.Field) {
	fields = append(fields, zap.String("collection", r.name), zap.String("op", op), zap.Error(err))
	logger.Log.Error("document store operation failed", fields...)
}

func (r *contentRepository[T, P]) sortByKey() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: r.keyField, Value: 1}})
}

func (r *contentRepository[T, P]) GetAll(ctx context.Context) []T {
	return r.find(ctx, bson.M{})
}

func (r *contentRepository[T, P]) find(ctx context.Context, filter bson.M) []T {
	items, err := r.coll.Find(ctx, filter, r.sortByKey())
	if err != nil {
		r.logError("find", err)
		return []T{}
	}
	return items
}

func (r *contentRepository[T, P]) GetByID(ctx context.Context, key int) *T {
	item, err := r.coll.FindOne(ctx, bson.M{r.keyField: key})
	if err != nil {
		if !errors.Is(err, database.ErrNotFound) {
			r.logError("find_one", err, zap.Int("key", key))
		}
		return nil
	}
	return item
}

func (r *contentRepository[T, P]) nextKey(ctx context.Context) (int, error) {
	opts := options.Find().SetSort(bson.D{{Key: r.keyField, Value: -1}}).SetLimit(1)
	items, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 1, nil
	}
	return P(&items[0]).NaturalKey() + 1, nil
}

// Create inserts item, assigning the next natural key when it has none.
func (r *contentRepository[T, P]) Create(ctx context.Context, item *T) *T {
	doc := P(item)
	if doc.NaturalKey() <= 0 {
		key, err := r.nextKey(ctx)
		if err != nil {
			r.logError("next_key", err)
			return nil
		}
		doc.SetNaturalKey(key)
	}
	doc.SetDocumentID(primitive.NilObjectID)
	doc.Touch(time.Now())

	id, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		r.logError("insert_one", err, zap.Int("key", doc.NaturalKey()))
		return nil
	}
	doc.SetDocumentID(id)
	return item
}

// Update replaces the document holding key. The natural key, surrogate id and
// creation time of the stored document are kept; favorites are carried over.
func (r *contentRepository[T, P]) Update(ctx context.Context, key int, item *T) bool {
	existing := r.GetByID(ctx, key)
	if existing == nil {
		return false
	}

	stored := P(existing)
	doc := P(item)
	doc.SetNaturalKey(key)
	doc.SetDocumentID(stored.DocumentID())
	if from, ok := any(stored).(interface{ Favorites() model.UserSet }); ok {
		if to, ok := any(doc).(interface{ SetFavorites(model.UserSet) }); ok {
			to.SetFavorites(from.Favorites())
		}
	}
	doc.SetCreated(stored.Created())
	doc.Touch(time.Now())

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": stored.DocumentID()}, item)
	if err != nil {
		r.logError("replace_one", err, zap.Int("key", key))
		return false
	}
	return res.MatchedCount > 0
}

func (r *contentRepository[T, P]) Delete(ctx context.Context, key int) bool {
	existing := r.GetByID(ctx, key)
	if existing == nil {
		return false
	}

	deleted, err := r.coll.DeleteOne(ctx, bson.M{"_id": P(existing).DocumentID()})
	if err != nil {
		r.logError("delete_one", err, zap.Int("key", key))
		return false
	}
	return deleted > 0
}

func (r *contentRepository[T, P]) Count(ctx context.Context) int64 {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		r.logError("count", err)
		return 0
	}
	return n
}

// Page returns one page of documents matching filter plus the total match count.
func (r *contentRepository[T, P]) Page(ctx context.Context, filter bson.M, page, pageSize int) ([]T, int64) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		r.logError("count", err)
		return []T{}, 0
	}

	opts := r.sortByKey().SetSkip(int64((page - 1) * pageSize)).SetLimit(int64(pageSize))
	items, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		r.logError("find_page", err)
		return []T{}, 0
	}
	return items, total
}

// favoriteRepository adds favorite membership to a content repository.
type favoriteRepository[T any, P favoriteDocument[T]] struct {
	contentRepository[T, P]
}

func newFavoriteRepository[T any, P favoriteDocument[T]](coll database.Collection[T], name, keyField string) favoriteRepository[T, P] {
	return favoriteRepository[T, P]{contentRepository: newContentRepository[T, P](coll, name, keyField)}
}

// ToggleFavorite flips userID's membership in the item's favorite set with a
// single $pull or $addToSet. It reports whether the store modified the document.
func (r *favoriteRepository[T, P]) ToggleFavorite(ctx context.Context, key int, userID string) bool {
	item := r.GetByID(ctx, key)
	if item == nil {
		return false
	}

	op := "$addToSet"
	if P(item).Favorites().Contains(userID) {
		op = "$pull"
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{r.keyField: key},
		bson.M{op: bson.M{"FavoriteByUsers": userID}},
	)
	if err != nil {
		r.logError("toggle_favorite", err, zap.Int("key", key), zap.String("user_id", userID))
		return false
	}
	return res.ModifiedCount > 0
}

func (r *favoriteRepository[T, P]) GetFavorites(ctx context.Context, userID string) []T {
	return r.find(ctx, bson.M{"FavoriteByUsers": userID})
}

func (r *favoriteRepository[T, P]) IsFavorite(item *T, userID string) bool {
	return P(item).Favorites().Contains(userID)
}

// containsFold builds a case-insensitive substring match on a literal.
func containsFold(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

func equalFold(s string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(s) + "$", Options: "i"}
}
