package seed

import (
	"context"
	"english_learning_backend/internal/model"
	"english_learning_backend/internal/util"
	"english_learning_backend/pkg/database"
	"english_learning_backend/pkg/logger"
	"english_learning_backend/pkg/monitoring"
	"english_learning_backend/pkg/tracing"
	"errors"
	"os"
	"path/filepath"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const insertBatchSize = 500

type touchable[T any] interface {
	*T
	Touch(now time.Time)
}

// Seeder fills empty content collections from JSON fixtures.
type Seeder struct {
	Dir        string
	Vocabulary database.Collection[model.Vocabulary]
	Grammar    database.Collection[model.Grammar]
	Topics     database.Collection[model.Topic]
	Exercises  database.Collection[model.Exercise]
	Tests      database.Collection[model.Test]
}

func NewSeeder(store *database.Store, dir string) *Seeder {
	return &Seeder{
		Dir:        dir,
		Vocabulary: database.GetCollection[model.Vocabulary](store, database.VocabularyCollection),
		Grammar:    database.GetCollection[model.Grammar](store, database.GrammarCollection),
		Topics:     database.GetCollection[model.Topic](store, database.TopicsCollection),
		Exercises:  database.GetCollection[model.Exercise](store, database.ExercisesCollection),
		Tests:      database.GetCollection[model.Test](store, database.TestsCollection),
	}
}

// Result is the number of documents inserted per collection.
type Result map[string]int

// Run seeds every collection that is still empty. Failures are logged per
// collection and never abort the run.
func (s *Seeder) Run(ctx context.Context) Result {
	ctx, span := tracing.StartSpan(ctx, "seed")
	defer span.End()

	result := Result{}
	record := func(name string, n int, err error) {
		result[name] = n
		if err != nil {
			logger.Log.Error("Seeding failed", zap.String("collection", name), zap.Int("inserted", n), zap.Error(err))
			return
		}
		if n > 0 {
			monitoring.SeededDocuments.WithLabelValues(name).Add(float64(n))
			logger.Log.Info("Seeded collection", zap.String("collection", name), zap.Int("inserted", n))
		}
	}

	n, err := seedCollection[model.Vocabulary](ctx, s.Vocabulary, s.fixture(database.VocabularyCollection))
	record(database.VocabularyCollection, n, err)
	n, err = seedCollection[model.Grammar](ctx, s.Grammar, s.fixture(database.GrammarCollection))
	record(database.GrammarCollection, n, err)
	n, err = seedCollection[model.Topic](ctx, s.Topics, s.fixture(database.TopicsCollection))
	record(database.TopicsCollection, n, err)
	n, err = seedCollection[model.Exercise](ctx, s.Exercises, s.fixture(database.ExercisesCollection))
	record(database.ExercisesCollection, n, err)
	n, err = seedCollection[model.Test](ctx, s.Tests, s.fixture(database.TestsCollection))
	record(database.TestsCollection, n, err)

	return result
}

func (s *Seeder) fixture(name string) string {
	return filepath.Join(s.Dir, name+".json")
}

// seedCollection inserts the records of path into coll when coll is empty.
// Records are streamed and inserted in batches; invalid ones are skipped.
func seedCollection[T any, P touchable[T]](ctx context.Context, coll database.Collection[T], path string) (int, error) {
	count, err := coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Log.Warn("Fixture file missing, skipping", zap.String("path", path))
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var (
		inserted int
		skipped  int
		batch    = make([]T, 0, insertBatchSize)
		now      = time.Now()
	)
	flush := func() error {
		n, err := coll.InsertMany(ctx, batch)
		inserted += n
		batch = batch[:0]
		return err
	}

	err = DecodeRecords(f, func(item T) error {
		if err := util.Validator().Struct(item); err != nil {
			skipped++
			logger.Log.Debug("Skipping invalid fixture record", zap.String("path", path), zap.Error(err))
			return nil
		}
		P(&item).Touch(now)
		batch = append(batch, item)
		if len(batch) == insertBatchSize {
			return flush()
		}
		return nil
	}, func(err error) {
		skipped++
		logger.Log.Debug("Skipping malformed fixture record", zap.String("path", path), zap.Error(err))
	})
	if err != nil {
		return inserted, err
	}
	if len(batch) > 0 {
		if err := flush(); err != nil {
			return inserted, err
		}
	}

	if skipped > 0 {
		logger.Log.Warn("Skipped invalid fixture records", zap.String("path", path), zap.Int("skipped", skipped))
	}
	return inserted, nil
}

// LoadExerciseFallback reads the exercise fixture into memory for the
// repository's degraded mode. A missing or broken file yields no fallback.
func LoadExerciseFallback(dir string) []model.Exercise {
	f, err := os.Open(filepath.Join(dir, database.ExercisesCollection+".json"))
	if err != nil {
		logger.Log.Warn("No exercise fallback available", zap.Error(err))
		return nil
	}
	defer f.Close()

	var items []model.Exercise
	err = DecodeRecords(f, func(e model.Exercise) error {
		if util.Validator().Struct(e) == nil {
			items = append(items, e)
		}
		return nil
	}, nil)
	if err != nil {
		logger.Log.Warn("Exercise fallback unreadable", zap.Error(err))
		return nil
	}
	return items
}
