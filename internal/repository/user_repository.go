package repository

import (
	"context"
	"english_learning_backend/internal/model"
	"english_learning_backend/pkg/database"
	"english_learning_backend/pkg/logger"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Learned counters on the user document.
const (
	CounterVocabulary = "VocabularyLearned"
	CounterGrammar    = "GrammarLearned"
	CounterExercises  = "ExercisesCompleted"
)

type UserRepository struct {
	coll database.Collection[model.User]
}

func NewUserRepository(coll database.Collection[model.User]) *UserRepository {
	return &UserRepository{coll: coll}
}

func (r *UserRepository) logError(op string, err error, userID string) {
	logger.Log.Error("document store operation failed",
		zap.String("collection", database.UsersCollection),
		zap.String("op", op),
		zap.String("user_id", userID),
		zap.Error(err))
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M, key string) *model.User {
	user, err := r.coll.FindOne(ctx, filter)
	if err != nil {
		if !errors.Is(err, database.ErrNotFound) {
			r.logError("find_one", err, key)
		}
		return nil
	}
	return user
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) bool {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.ID = primitive.NilObjectID
	user.Touch(time.Now())

	id, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		r.logError("insert_one", err, user.UserID)
		return false
	}
	user.ID = id
	return true
}

func (r *UserRepository) GetByID(ctx context.Context, id string) *model.User {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	return r.findOne(ctx, bson.M{"_id": oid}, id)
}

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) *model.User {
	return r.findOne(ctx, bson.M{"UserId": userID}, userID)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) *model.User {
	return r.findOne(ctx, bson.M{"Email": strings.ToLower(strings.TrimSpace(email))}, email)
}

// FindByAnyKey resolves a user by UserId, then email, then document id.
func (r *UserRepository) FindByAnyKey(ctx context.Context, key string) *model.User {
	if user := r.GetByUserID(ctx, key); user != nil {
		return user
	}
	if strings.Contains(key, "@") {
		if user := r.GetByEmail(ctx, key); user != nil {
			return user
		}
	}
	return r.GetByID(ctx, key)
}

func (r *UserRepository) List(ctx context.Context, search string, page, pageSize int) ([]model.User, int64) {
	filter := bson.M{}
	if search != "" {
		filter["$or"] = bson.A{
			bson.M{"Email": containsFold(search)},
			bson.M{"FullName": containsFold(search)},
		}
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		r.logError("count", err, "")
		return []model.User{}, 0
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "CreatedAt", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))
	users, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		r.logError("find", err, "")
		return []model.User{}, 0
	}
	return users, total
}

func (r *UserRepository) TopByPoints(ctx context.Context, limit int) []model.User {
	opts := options.Find().SetSort(bson.D{{Key: "Points", Value: -1}}).SetLimit(int64(limit))
	users, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.logError("find", err, "")
		return []model.User{}
	}
	return users
}

func (r *UserRepository) set(ctx context.Context, userID string, fields bson.M) bool {
	fields["UpdatedAt"] = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"UserId": userID}, bson.M{"$set": fields})
	if err != nil {
		r.logError("update_one", err, userID)
		return false
	}
	return res.MatchedCount > 0
}

func (r *UserRepository) UpdateProfile(ctx context.Context, userID, fullName, bio string) bool {
	return r.set(ctx, userID, bson.M{"FullName": fullName, "Bio": bio})
}

func (r *UserRepository) UpdateAvatar(ctx context.Context, userID, path string, version int64) bool {
	return r.set(ctx, userID, bson.M{"Avatar": path, "AvatarVersion": version})
}

func (r *UserRepository) UpdateRole(ctx context.Context, userID string, role model.UserRole) bool {
	return r.set(ctx, userID, bson.M{"Role": role})
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID, hash string) bool {
	return r.set(ctx, userID, bson.M{"PasswordHash": hash})
}

func (r *UserRepository) SetPoints(ctx context.Context, userID string, points int, level string) bool {
	return r.set(ctx, userID, bson.M{"Points": points, "Level": level})
}

// learnedItems maps a counter to the list of item keys it counts.
var learnedItems = map[string]string{
	CounterVocabulary: "LearnedVocabulary",
	CounterGrammar:    "LearnedGrammar",
}

// AddLearned records key as learned and bumps counter in one update, unless
// key is already recorded. added reports whether the counter moved; found
// whether the user exists.
func (r *UserRepository) AddLearned(ctx context.Context, userID, counter string, key int) (added, found bool) {
	field, ok := learnedItems[counter]
	if !ok {
		return false, false
	}
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"UserId": userID, field: bson.M{"$ne": key}},
		bson.M{
			"$addToSet": bson.M{field: key},
			"$inc":      bson.M{counter: 1},
			"$set":      bson.M{"UpdatedAt": time.Now()},
		},
	)
	if err != nil {
		r.logError("add_learned", err, userID)
		return false, false
	}
	if res.MatchedCount > 0 {
		return true, true
	}
	return false, r.GetByUserID(ctx, userID) != nil
}

// IncrementCounter bumps one learned counter atomically.
func (r *UserRepository) IncrementCounter(ctx context.Context, userID, counter string, delta int) bool {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"UserId": userID},
		bson.M{"$inc": bson.M{counter: delta}, "$set": bson.M{"UpdatedAt": time.Now()}},
	)
	if err != nil {
		r.logError("increment", err, userID)
		return false
	}
	return res.MatchedCount > 0
}

func (r *UserRepository) UpdateLastSeen(ctx context.Context, userID string) bool {
	res, err := r.coll.UpdateOne(ctx, bson.M{"UserId": userID}, bson.M{"$set": bson.M{"LastSeen": time.Now()}})
	if err != nil {
		r.logError("last_seen", err, userID)
		return false
	}
	return res.MatchedCount > 0
}

func (r *UserRepository) Delete(ctx context.Context, userID string) bool {
	deleted, err := r.coll.DeleteOne(ctx, bson.M{"UserId": userID})
	if err != nil {
		r.logError("delete_one", err, userID)
		return false
	}
	return deleted > 0
}
