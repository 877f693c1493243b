package service

import (
	"context"
	"english_learning_backend/internal/model"
	"english_learning_backend/internal/repository"
	"english_learning_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateUserPoints(t *testing.T) {
	assert.Equal(t, 0, CalculateUserPoints(0, 0, 0))
	assert.Equal(t, 5+20+9, CalculateUserPoints(1, 2, 3))
}

func TestLevelForUserPoints(t *testing.T) {
	cases := map[int]string{
		0:    model.LevelA1,
		99:   model.LevelA1,
		100:  model.LevelA2,
		300:  model.LevelB1,
		599:  model.LevelB1,
		600:  model.LevelB2,
		1000: model.LevelC1,
		1500: model.LevelC2,
	}
	for points, want := range cases {
		assert.Equal(t, want, LevelForUserPoints(points), "points=%d", points)
	}
}

func TestStatsService_RecordLearned(t *testing.T) {
	users := newMemUserStore(&model.User{UserID: "u1", Level: model.LevelA1, VocabularyLearned: 19})
	svc := NewStatsService(users)

	stats, err := svc.RecordLearned(context.Background(), "u1", repository.CounterVocabulary)
	require.NoError(t, err)
	assert.Equal(t, 20, stats.VocabularyLearned)
	assert.Equal(t, 100, stats.Points)
	assert.Equal(t, model.LevelA2, stats.Level)

	stored := users.GetByUserID(context.Background(), "u1")
	assert.Equal(t, 100, stored.Points)
	assert.Equal(t, model.LevelA2, stored.Level)
}

func TestStatsService_RecordLearnedItemCountsOnce(t *testing.T) {
	users := newMemUserStore(&model.User{UserID: "u1", Level: model.LevelA1})
	svc := NewStatsService(users)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		stats, err := svc.RecordLearnedItem(ctx, "u1", repository.CounterVocabulary, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.VocabularyLearned)
		assert.Equal(t, 5, stats.Points)
	}

	stats, err := svc.RecordLearnedItem(ctx, "u1", repository.CounterGrammar, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.GrammarLearned)
	assert.Equal(t, 15, stats.Points)

	_, err = svc.RecordLearnedItem(ctx, "ghost", repository.CounterGrammar, 1)
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestStatsService_UnknownUser(t *testing.T) {
	svc := NewStatsService(newMemUserStore())

	_, err := svc.RecordLearned(context.Background(), "ghost", repository.CounterGrammar)
	assert.ErrorIs(t, err, util.ErrUserNotFound)

	_, err = svc.Recalculate(context.Background(), "ghost")
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestStatsService_Leaderboard(t *testing.T) {
	users := newMemUserStore(&model.User{UserID: "u1", FullName: "Ann", Points: 40})
	svc := NewStatsService(users)

	entries := svc.Leaderboard(context.Background(), 0)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "Ann", entries[0].FullName)
}
