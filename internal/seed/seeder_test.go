package seed

import (
	"context"
	"english_learning_backend/internal/model"
	"english_learning_backend/pkg/database"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// fakeCollection records inserts. Only the calls the seeder makes are
// implemented.
type fakeCollection[T any] struct {
	existing int64
	countErr error
	batches  [][]T
}

func (f *fakeCollection[T]) all() []T {
	var out []T
	for _, b := range f.batches {
		out = append(out, b...)
	}
	return out
}

func (f *fakeCollection[T]) CountDocuments(ctx context.Context, filter any) (int64, error) {
	return f.existing, f.countErr
}

func (f *fakeCollection[T]) InsertMany(ctx context.Context, docs []T) (int, error) {
	// the seeder reuses its batch slice
	f.batches = append(f.batches, append([]T(nil), docs...))
	return len(docs), nil
}

func (f *fakeCollection[T]) Find(ctx context.Context, filter any, opts ...*options.FindOptions) ([]T, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCollection[T]) FindOne(ctx context.Context, filter any) (*T, error) {
	return nil, database.ErrNotFound
}

func (f *fakeCollection[T]) InsertOne(ctx context.Context, doc *T) (primitive.ObjectID, error) {
	return primitive.NilObjectID, errors.New("not implemented")
}

func (f *fakeCollection[T]) ReplaceOne(ctx context.Context, filter any, doc *T) (*mongo.UpdateResult, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCollection[T]) UpdateOne(ctx context.Context, filter any, update any) (*mongo.UpdateResult, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCollection[T]) DeleteOne(ctx context.Context, filter any) (int64, error) {
	return 0, errors.New("not implemented")
}

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".json"), []byte(content), 0o644))
}

func newTestSeeder(dir string) (*Seeder, *fakeCollection[model.Vocabulary], *fakeCollection[model.Topic]) {
	vocab := &fakeCollection[model.Vocabulary]{}
	topics := &fakeCollection[model.Topic]{}
	return &Seeder{
		Dir:        dir,
		Vocabulary: vocab,
		Grammar:    &fakeCollection[model.Grammar]{},
		Topics:     topics,
		Exercises:  &fakeCollection[model.Exercise]{},
		Tests:      &fakeCollection[model.Test]{},
	}, vocab, topics
}

func TestSeeder_Run(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, database.VocabularyCollection, `{"vocabulary": [
		{"ID_TV": 1, "Word": "cat", "Meaning": "a small pet"},
		{"ID_TV": 2, "Word": "", "Meaning": "no word"},
		{"ID_TV": 3, "Word": "dog", "Meaning": "a loyal pet", "Level": "A1"}
	]}`)
	writeFixture(t, dir, database.TopicsCollection, `[{"ID_CD": 1, "Name": "Animals"}]`)

	s, vocab, topics := newTestSeeder(dir)
	result := s.Run(context.Background())

	assert.Equal(t, 2, result[database.VocabularyCollection])
	assert.Equal(t, 1, result[database.TopicsCollection])
	assert.Zero(t, result[database.GrammarCollection])

	words := vocab.all()
	require.Len(t, words, 2)
	assert.Equal(t, "cat", words[0].Word)
	assert.Equal(t, "dog", words[1].Word)
	assert.False(t, words[0].CreatedAt.IsZero())
	assert.Len(t, topics.all(), 1)
}

func TestSeeder_SkipsPopulatedCollections(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, database.TopicsCollection, `[{"ID_CD": 1, "Name": "Animals"}]`)

	s, _, topics := newTestSeeder(dir)
	topics.existing = 4

	result := s.Run(context.Background())
	assert.Zero(t, result[database.TopicsCollection])
	assert.Empty(t, topics.batches)
}

func TestSeedCollection_Batches(t *testing.T) {
	dir := t.TempDir()
	var b strings.Builder
	b.WriteString("[")
	total := insertBatchSize + 3
	for i := 1; i <= total; i++ {
		if i > 1 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, `{"ID_CD": %d, "Name": "topic %d"}`, i, i)
	}
	b.WriteString("]")
	writeFixture(t, dir, "topics", b.String())

	coll := &fakeCollection[model.Topic]{}
	n, err := seedCollection[model.Topic](context.Background(), coll, filepath.Join(dir, "topics.json"))
	require.NoError(t, err)
	assert.Equal(t, total, n)
	require.Len(t, coll.batches, 2)
	assert.Len(t, coll.batches[0], insertBatchSize)
	assert.Len(t, coll.batches[1], 3)
	assert.Equal(t, 1, coll.batches[0][0].TopicID)
	assert.Equal(t, total, coll.batches[1][2].TopicID)
}

func TestSeedCollection_WrongFieldTypeSkipsOnlyThatRecord(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "topics", `[
		{"ID_CD": 1, "Name": "Travel"},
		{"ID_CD": "two", "Name": "Food"},
		{"ID_CD": 3, "Name": "Work"}
	]`)

	coll := &fakeCollection[model.Topic]{}
	n, err := seedCollection[model.Topic](context.Background(), coll, filepath.Join(dir, "topics.json"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	stored := coll.all()
	require.Len(t, stored, 2)
	assert.Equal(t, 1, stored[0].TopicID)
	assert.Equal(t, 3, stored[1].TopicID)
}

func TestSeedCollection_MissingFileAndCountError(t *testing.T) {
	coll := &fakeCollection[model.Grammar]{}
	n, err := seedCollection[model.Grammar](context.Background(), coll, filepath.Join(t.TempDir(), "grammar.json"))
	require.NoError(t, err)
	assert.Zero(t, n)

	coll.countErr = errors.New("no connection")
	_, err = seedCollection[model.Grammar](context.Background(), coll, "unused.json")
	assert.Error(t, err)
}

func TestLoadExerciseFallback(t *testing.T) {
	dir := t.TempDir()
	assert.Nil(t, LoadExerciseFallback(dir))

	writeFixture(t, dir, database.ExercisesCollection, `[
		{"ID_BT": 1, "Question": "2+2?", "CorrectAnswer": "4"},
		{"ID_BT": 2, "Question": "missing answer"}
	]`)
	items := LoadExerciseFallback(dir)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].ExerciseID)
}
