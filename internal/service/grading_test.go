package service

import (
	"context"
	"english_learning_backend/internal/model"
	"english_learning_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAnswer(t *testing.T) {
	assert.True(t, CheckAnswer("went", "went"))
	assert.True(t, CheckAnswer("Went", "  went "))
	assert.False(t, CheckAnswer("went", "gone"))
	assert.False(t, CheckAnswer("went", ""))
}

func sampleTest() *model.Test {
	return &model.Test{
		TestID:       1,
		Title:        "Past simple",
		PassingScore: 60,
		Questions: []model.TestQuestion{
			{Question: "go", CorrectAnswer: "went"},
			{Question: "see", CorrectAnswer: "saw"},
			{Question: "eat", CorrectAnswer: "ate"},
		},
	}
}

func TestGrade(t *testing.T) {
	result := Grade(sampleTest(), []string{"went", "SAW"})

	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 2, result.Correct)
	assert.Equal(t, 66, result.Score)
	assert.True(t, result.Passed)
	assert.Equal(t, 4, result.PointsEarned)
	require.Len(t, result.Questions, 3)
	assert.False(t, result.Questions[2].Correct)
	assert.Equal(t, "ate", result.Questions[2].CorrectAnswer)
}

func TestGrade_Failing(t *testing.T) {
	result := Grade(sampleTest(), []string{"goed"})
	assert.Zero(t, result.Correct)
	assert.Zero(t, result.Score)
	assert.False(t, result.Passed)
	assert.Zero(t, result.PointsEarned)
}

// memTests serves a fixed set of tests.
type memTests struct {
	items map[int]model.Test
}

func (m *memTests) GetAll(ctx context.Context) []model.Test {
	out := []model.Test{}
	for _, t := range m.items {
		out = append(out, t)
	}
	return out
}

func (m *memTests) GetByID(ctx context.Context, key int) *model.Test {
	t, ok := m.items[key]
	if !ok {
		return nil
	}
	t.Questions = append([]model.TestQuestion(nil), t.Questions...)
	return &t
}

func (m *memTests) Create(ctx context.Context, item *model.Test) *model.Test { return item }
func (m *memTests) Update(ctx context.Context, key int, item *model.Test) bool { return true }
func (m *memTests) Delete(ctx context.Context, key int) bool { return true }

func (m *memTests) GetByLevel(ctx context.Context, level string) []model.Test {
	out := []model.Test{}
	for _, t := range m.items {
		if t.Level == level {
			out = append(out, t)
		}
	}
	return out
}

func TestTestService_Submit(t *testing.T) {
	tests := &memTests{items: map[int]model.Test{1: *sampleTest(), 2: {TestID: 2, Title: "Empty"}}}
	progress := newMemProgressStore()
	svc := NewTestService(tests, NewProgressService(progress))
	ctx := context.Background()

	result, err := svc.Submit(ctx, "u1", 1, []string{"went", "saw", "ate"})
	require.NoError(t, err)
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, 6, result.PointsEarned)
	require.NotNil(t, result.Progress)
	assert.Equal(t, 6, result.Progress.TotalPoints)
	assert.Equal(t, 30, result.Progress.ExerciseProgress)
	assert.Equal(t, model.ActivityExercise, result.Progress.LastCompletedItems[0].Type)

	_, err = svc.Submit(ctx, "u1", 2, nil)
	assert.ErrorIs(t, err, util.ErrInvalidInput)

	_, err = svc.Submit(ctx, "u1", 3, nil)
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestTestService_PublicViewsHideAnswers(t *testing.T) {
	tests := &memTests{items: map[int]model.Test{1: *sampleTest()}}
	svc := NewTestService(tests, NewProgressService(newMemProgressStore()))

	got, err := svc.GetPublic(context.Background(), 1)
	require.NoError(t, err)
	for _, q := range got.Questions {
		assert.Empty(t, q.CorrectAnswer)
	}
	assert.Equal(t, "went", tests.items[1].Questions[0].CorrectAnswer)
}

// memExercises serves a fixed set of exercises.
type memExercises struct {
	items map[int]model.Exercise
}

func (m *memExercises) list(keep func(model.Exercise) bool) []model.Exercise {
	out := []model.Exercise{}
	for _, e := range m.items {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

func (m *memExercises) GetAll(ctx context.Context) []model.Exercise {
	return m.list(func(model.Exercise) bool { return true })
}

func (m *memExercises) GetByID(ctx context.Context, key int) *model.Exercise {
	e, ok := m.items[key]
	if !ok {
		return nil
	}
	return &e
}

func (m *memExercises) Create(ctx context.Context, item *model.Exercise) *model.Exercise { return item }
func (m *memExercises) Update(ctx context.Context, key int, item *model.Exercise) bool { return true }
func (m *memExercises) Delete(ctx context.Context, key int) bool { return true }

func (m *memExercises) GetByTopic(ctx context.Context, topicID int) []model.Exercise {
	return m.list(func(e model.Exercise) bool { return e.TopicID == topicID })
}

func (m *memExercises) GetByCategory(ctx context.Context, category string) []model.Exercise {
	return m.list(func(e model.Exercise) bool { return e.Category == category })
}

func (m *memExercises) GetByLevel(ctx context.Context, level string) []model.Exercise {
	return m.list(func(e model.Exercise) bool { return e.Level == level })
}

// topicNames resolves topic names for exercise submissions.
type topicNames map[int]string

func (m topicNames) GetAll(ctx context.Context) []model.Topic { return nil }

func (m topicNames) GetByID(ctx context.Context, key int) *model.Topic {
	name, ok := m[key]
	if !ok {
		return nil
	}
	return &model.Topic{TopicID: key, Name: name}
}

func (m topicNames) Create(ctx context.Context, item *model.Topic) *model.Topic { return item }
func (m topicNames) Update(ctx context.Context, key int, item *model.Topic) bool { return true }
func (m topicNames) Delete(ctx context.Context, key int) bool { return true }
func (m topicNames) GetByLevel(ctx context.Context, level string) []model.Topic { return nil }

func TestExerciseService_Submit(t *testing.T) {
	exercises := &memExercises{items: map[int]model.Exercise{
		1: {ExerciseID: 1, Question: "I ___ to school yesterday.", CorrectAnswer: "went", TopicID: 4},
		2: {ExerciseID: 2, Question: "She ___ a cat.", CorrectAnswer: "has", Points: 25},
	}}
	users := newMemUserStore(&model.User{UserID: "u1"})
	progress := newMemProgressStore()
	svc := NewExerciseService(exercises, nil, NewProgressService(progress), NewStatsService(users))
	svc.Topics = topicNames{4: "School"}
	ctx := context.Background()

	result, err := svc.Submit(ctx, "u1", 1, " Went ")
	require.NoError(t, err)
	assert.True(t, result.Correct)
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, defaultExercisePoints, result.PointsEarned)
	require.NotNil(t, result.Progress)
	require.Len(t, result.Progress.CompletedTopics, 1)
	assert.Equal(t, "School", result.Progress.CompletedTopics[0].TopicName)
	assert.Equal(t, 1, users.GetByUserID(ctx, "u1").ExercisesCompleted)

	result, err = svc.Submit(ctx, "u1", 2, "have")
	require.NoError(t, err)
	assert.False(t, result.Correct)
	assert.Zero(t, result.PointsEarned)
	assert.Equal(t, "has", result.CorrectAnswer)
	assert.Equal(t, defaultExercisePoints, result.Progress.TotalPoints)
	assert.Equal(t, 1, users.GetByUserID(ctx, "u1").ExercisesCompleted)

	_, err = svc.Submit(ctx, "u1", 9, "x")
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestExerciseService_ListPublicFilters(t *testing.T) {
	exercises := &memExercises{items: map[int]model.Exercise{
		1: {ExerciseID: 1, TopicID: 1, Category: "tenses", Level: "A1", CorrectAnswer: "a"},
		2: {ExerciseID: 2, TopicID: 2, Category: "tenses", Level: "B1", CorrectAnswer: "b"},
		3: {ExerciseID: 3, TopicID: 2, Category: "articles", Level: "B1", CorrectAnswer: "c"},
	}}
	svc := NewExerciseService(exercises, nil, nil, nil)
	ctx := context.Background()

	assert.Len(t, svc.ListPublic(ctx, ExerciseFilter{}), 3)
	assert.Len(t, svc.ListPublic(ctx, ExerciseFilter{TopicID: 2, Category: "tenses"}), 2)
	assert.Len(t, svc.ListPublic(ctx, ExerciseFilter{Category: "tenses", Level: "A1"}), 2)
	assert.Len(t, svc.ListPublic(ctx, ExerciseFilter{Level: "B1"}), 2)

	for _, e := range svc.ListPublic(ctx, ExerciseFilter{}) {
		assert.Empty(t, e.CorrectAnswer)
	}
}
