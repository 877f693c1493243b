package service

import (
	"context"
	"english_learning_backend/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestSmoothProgress(t *testing.T) {
	tests := []struct {
		name     string
		old, new int
		want     int
	}{
		{"first activity from zero", 0, 100, 30},
		{"drop to zero", 100, 0, 70},
		{"steady", 50, 50, 50},
		{"rounds half up", 1, 0, 1},
		{"mixed", 30, 100, 51},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SmoothProgress(tt.old, tt.new))
		})
	}
}

func TestLevelForTotalPoints(t *testing.T) {
	cases := map[int]string{
		0:    model.LevelA1,
		399:  model.LevelA1,
		400:  model.LevelA2,
		699:  model.LevelA2,
		700:  model.LevelB1,
		1000: model.LevelB2,
		1499: model.LevelB2,
		1500: model.LevelC1,
		1999: model.LevelC1,
		2000: model.LevelC2,
		9000: model.LevelC2,
	}
	for points, want := range cases {
		assert.Equal(t, want, LevelForTotalPoints(points), "points=%d", points)
	}
}

func TestAppendActivity_CapsAtTenNewestFirst(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var items []model.LastCompletedItem
	for i := 0; i < model.MaxRecentActivities; i++ {
		items = appendActivity(items, model.LastCompletedItem{
			Title:       "item",
			CompletedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	require.Len(t, items, model.MaxRecentActivities)
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, 10, items[9].ID)

	items = appendActivity(items, model.LastCompletedItem{
		Title:       "newest",
		CompletedAt: base.Add(time.Hour),
	})

	require.Len(t, items, model.MaxRecentActivities)
	assert.Equal(t, "newest", items[0].Title)
	assert.Equal(t, 11, items[0].ID)
	for i := 1; i < len(items); i++ {
		assert.False(t, items[i].CompletedAt.After(items[i-1].CompletedAt), "not sorted at %d", i)
	}
	for _, it := range items {
		assert.NotEqual(t, 1, it.ID, "oldest entry should have been dropped")
	}
}

func TestUpsertTopic(t *testing.T) {
	first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	topics := upsertTopic(nil, model.TopicCompletion{TopicID: 3, TopicName: "Travel", CompletionPercentage: 40, CompletedAt: first})
	require.Len(t, topics, 1)

	topics = upsertTopic(topics, model.TopicCompletion{TopicID: 3, TopicName: "Renamed", CompletionPercentage: 90, CompletedAt: first.Add(time.Hour)})
	require.Len(t, topics, 1)
	assert.Equal(t, 90, topics[0].CompletionPercentage)
	assert.Equal(t, "Travel", topics[0].TopicName)
	assert.Equal(t, first, topics[0].CompletedAt)

	topics = upsertTopic(topics, model.TopicCompletion{TopicID: 4, TopicName: "Food", CompletionPercentage: 10})
	assert.Len(t, topics, 2)
}

func TestProgressService_GetProgressCreatesRecord(t *testing.T) {
	store := newMemProgressStore()
	svc := NewProgressService(store)

	p := svc.GetProgress(context.Background(), "u1")
	require.NotNil(t, p)
	assert.Equal(t, model.LevelA1, p.Level)
	assert.Empty(t, p.LastCompletedItems)
	assert.Equal(t, 1, store.creates)

	again := svc.GetProgress(context.Background(), "u1")
	require.NotNil(t, again)
	assert.Equal(t, p.ID, again.ID)
	assert.Equal(t, 1, store.creates)
}

func TestProgressService_GetProgressCreateFails(t *testing.T) {
	store := newMemProgressStore()
	store.failCreate = true
	svc := NewProgressService(store)

	assert.Nil(t, svc.GetProgress(context.Background(), "u1"))

	p, ok := svc.RecordActivity(context.Background(), "u1", ActivityRequest{Type: model.ActivityVocabulary})
	assert.False(t, ok)
	assert.Nil(t, p)
}

func TestProgressService_RecordActivity(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store := newMemProgressStore()
	svc := NewProgressService(store)
	svc.Now = fixedClock(now)
	ctx := context.Background()

	topicID := 2
	p, ok := svc.RecordActivity(ctx, "u1", ActivityRequest{
		Type:                 "vocabulary",
		Title:                "Animals",
		Score:                80,
		PointsEarned:         450,
		TopicID:              &topicID,
		TopicName:            "Animals",
		CompletionPercentage: 100,
	})
	require.True(t, ok)
	require.NotNil(t, p)

	assert.Equal(t, 30, p.VocabularyProgress)
	assert.Zero(t, p.GrammarProgress)
	assert.Equal(t, 450, p.TotalPoints)
	assert.Equal(t, model.LevelA2, p.Level)
	require.Len(t, p.LastCompletedItems, 1)
	assert.Equal(t, 1, p.LastCompletedItems[0].ID)
	assert.Equal(t, now, p.LastCompletedItems[0].CompletedAt)
	require.Len(t, p.CompletedTopics, 1)
	assert.Equal(t, 2, p.CompletedTopics[0].TopicID)
	assert.Equal(t, 1, store.updates)

	stored := store.GetByUserID(ctx, "u1")
	require.NotNil(t, stored)
	assert.Equal(t, 450, stored.TotalPoints)

	p, ok = svc.RecordActivity(ctx, "u1", ActivityRequest{
		Type:                 model.ActivityGrammar,
		PointsEarned:         300,
		CompletionPercentage: 50,
	})
	require.True(t, ok)
	assert.Equal(t, 30, p.VocabularyProgress)
	assert.Equal(t, 15, p.GrammarProgress)
	assert.Equal(t, 750, p.TotalPoints)
	assert.Equal(t, model.LevelB1, p.Level)
	assert.Len(t, p.LastCompletedItems, 2)
	assert.Len(t, p.CompletedTopics, 1)
}

func TestProgressService_UnknownTypeStillScores(t *testing.T) {
	store := newMemProgressStore()
	svc := NewProgressService(store)

	p, ok := svc.RecordActivity(context.Background(), "u1", ActivityRequest{
		Type:                 "Listening",
		Title:                "Podcast",
		PointsEarned:         20,
		CompletionPercentage: 100,
	})
	require.True(t, ok)
	assert.Zero(t, p.VocabularyProgress)
	assert.Zero(t, p.GrammarProgress)
	assert.Zero(t, p.ExerciseProgress)
	assert.Equal(t, 20, p.TotalPoints)
	require.Len(t, p.LastCompletedItems, 1)
	assert.Equal(t, "Listening", p.LastCompletedItems[0].Type)
}

func TestProgressService_UpdateFailure(t *testing.T) {
	store := newMemProgressStore()
	svc := NewProgressService(store)
	require.NotNil(t, svc.GetProgress(context.Background(), "u1"))

	store.failUpdate = true
	p, ok := svc.RecordActivity(context.Background(), "u1", ActivityRequest{Type: model.ActivityExercise, PointsEarned: 5})
	assert.False(t, ok)
	assert.Nil(t, p)
	assert.Zero(t, store.GetByUserID(context.Background(), "u1").TotalPoints)
}

func TestProgressService_Reset(t *testing.T) {
	store := newMemProgressStore()
	svc := NewProgressService(store)
	ctx := context.Background()

	assert.False(t, svc.ResetProgress(ctx, "u1"))
	_, ok := svc.RecordActivity(ctx, "u1", ActivityRequest{Type: model.ActivityVocabulary, PointsEarned: 10})
	require.True(t, ok)
	assert.True(t, svc.ResetProgress(ctx, "u1"))

	p := svc.GetProgress(ctx, "u1")
	require.NotNil(t, p)
	assert.Zero(t, p.TotalPoints)
}

func TestProgressService_NewUserFirstActivity(t *testing.T) {
	store := newMemProgressStore()
	svc := NewProgressService(store)

	p, ok := svc.RecordActivity(context.Background(), "u1", ActivityRequest{
		Type:                 model.ActivityVocabulary,
		Title:                "Learned cat",
		Score:                10,
		PointsEarned:         5,
		CompletionPercentage: 20,
	})
	require.True(t, ok)

	assert.Equal(t, 1, store.creates)
	assert.False(t, p.ID.IsZero())
	assert.Equal(t, 6, p.VocabularyProgress)
	assert.Equal(t, 5, p.TotalPoints)
	assert.Equal(t, model.LevelA1, p.Level)
	require.Len(t, p.LastCompletedItems, 1)
	assert.Equal(t, 1, p.LastCompletedItems[0].ID)
	assert.Equal(t, "Learned cat", p.LastCompletedItems[0].Title)
}

func TestProgressService_SameInstantKeepsNewest(t *testing.T) {
	svc := NewProgressService(newMemProgressStore())
	svc.Now = fixedClock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	var p *model.Progress
	for i := 0; i < 12; i++ {
		var ok bool
		p, ok = svc.RecordActivity(ctx, "u1", ActivityRequest{Type: model.ActivityExercise, PointsEarned: 1})
		require.True(t, ok)
	}

	ids := make([]int, 0, len(p.LastCompletedItems))
	for _, it := range p.LastCompletedItems {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []int{12, 11, 10, 9, 8, 7, 6, 5, 4, 3}, ids)
}

func TestProgressService_PointsThresholdsAcrossActivities(t *testing.T) {
	svc := NewProgressService(newMemProgressStore())
	ctx := context.Background()

	steps := []struct {
		points int
		level  string
	}{
		{399, model.LevelA1},
		{1, model.LevelA2},
		{1600, model.LevelC2},
	}
	for _, s := range steps {
		p, ok := svc.RecordActivity(ctx, "u1", ActivityRequest{Type: model.ActivityGrammar, PointsEarned: s.points})
		require.True(t, ok)
		assert.Equal(t, s.level, p.Level, "total=%d", p.TotalPoints)
	}
}
