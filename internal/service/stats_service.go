package service

import (
	"context"
	"english_learning_backend/internal/model"
	"english_learning_backend/internal/util"
)

// Per-item weights of the account-level points score.
const (
	PointsPerVocabulary = 5
	PointsPerGrammar    = 10
	PointsPerExercise   = 3
)

var userLevels = []struct {
	min   int
	level string
}{
	{1500, model.LevelC2},
	{1000, model.LevelC1},
	{600, model.LevelB2},
	{300, model.LevelB1},
	{100, model.LevelA2},
}

// UserStats is the account-level score, derived from the learned counters on
// the user document. It is independent of Progress.TotalPoints.
// swagger:model UserStats
type UserStats struct {
	UserID             string `json:"userId"`
	Points             int    `json:"points"`
	Level              string `json:"level"`
	VocabularyLearned  int    `json:"vocabularyLearned"`
	GrammarLearned     int    `json:"grammarLearned"`
	ExercisesCompleted int    `json:"exercisesCompleted"`
}

type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	UserID   string `json:"userId"`
	FullName string `json:"fullName"`
	Points   int    `json:"points"`
	Level    string `json:"level"`
}

func CalculateUserPoints(vocabulary, grammar, exercises int) int {
	return vocabulary*PointsPerVocabulary + grammar*PointsPerGrammar + exercises*PointsPerExercise
}

func LevelForUserPoints(points int) string {
	for _, t := range userLevels {
		if points >= t.min {
			return t.level
		}
	}
	return model.LevelA1
}

type StatsService struct {
	UserRepo UserStore
}

func NewStatsService(userRepo UserStore) *StatsService {
	return &StatsService{UserRepo: userRepo}
}

// Recalculate derives points and level from the counters and writes them back
// when they changed.
func (s *StatsService) Recalculate(ctx context.Context, userID string) (*UserStats, error) {
	user := s.UserRepo.GetByUserID(ctx, userID)
	if user == nil {
		return nil, util.ErrUserNotFound
	}

	stats := &UserStats{
		UserID:             user.UserID,
		VocabularyLearned:  user.VocabularyLearned,
		GrammarLearned:     user.GrammarLearned,
		ExercisesCompleted: user.ExercisesCompleted,
	}
	stats.Points = CalculateUserPoints(user.VocabularyLearned, user.GrammarLearned, user.ExercisesCompleted)
	stats.Level = LevelForUserPoints(stats.Points)

	if stats.Points != user.Points || stats.Level != user.Level {
		if !s.UserRepo.SetPoints(ctx, userID, stats.Points, stats.Level) {
			return nil, util.ErrPersistFailed
		}
	}
	return stats, nil
}

// RecordLearned bumps one learned counter and recalculates.
func (s *StatsService) RecordLearned(ctx context.Context, userID, counter string) (*UserStats, error) {
	if !s.UserRepo.IncrementCounter(ctx, userID, counter, 1) {
		return nil, util.ErrUserNotFound
	}
	return s.Recalculate(ctx, userID)
}

// RecordLearnedItem counts key once per user. Marking an item again leaves
// the counters untouched and returns the current stats.
func (s *StatsService) RecordLearnedItem(ctx context.Context, userID, counter string, key int) (*UserStats, error) {
	if _, found := s.UserRepo.AddLearned(ctx, userID, counter, key); !found {
		return nil, util.ErrUserNotFound
	}
	return s.Recalculate(ctx, userID)
}

func (s *StatsService) Leaderboard(ctx context.Context, limit int) []LeaderboardEntry {
	if limit < 1 || limit > util.MaxPageSize {
		limit = 10
	}
	users := s.UserRepo.TopByPoints(ctx, limit)
	entries := make([]LeaderboardEntry, 0, len(users))
	for i, u := range users {
		entries = append(entries, LeaderboardEntry{
			Rank:     i + 1,
			UserID:   u.UserID,
			FullName: u.FullName,
			Points:   u.Points,
			Level:    u.Level,
		})
	}
	return entries
}
