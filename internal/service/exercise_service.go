package service

import (
	"context"
	"english_learning_backend/internal/model"
	"english_learning_backend/internal/repository"
	"english_learning_backend/internal/util"
	"strings"
)

const defaultExercisePoints = 10

type ExerciseStore interface {
	ContentStore[model.Exercise]
	GetByTopic(ctx context.Context, topicID int) []model.Exercise
	GetByCategory(ctx context.Context, category string) []model.Exercise
	GetByLevel(ctx context.Context, level string) []model.Exercise
}

type ExerciseFilter struct {
	TopicID  int
	Category string
	Level    string
}

type SubmitAnswerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// ExerciseResult is what the learner sees after answering one exercise.
// swagger:model ExerciseResult
type ExerciseResult struct {
	ExerciseID    int             `json:"exerciseId"`
	Correct       bool            `json:"correct"`
	Score         int             `json:"score"`
	PointsEarned  int             `json:"pointsEarned"`
	CorrectAnswer string          `json:"correctAnswer"`
	Explanation   string          `json:"explanation"`
	Progress      *model.Progress `json:"progress,omitempty"`
}

type ExerciseService struct {
	contentService[model.Exercise]
	Repo     ExerciseStore
	Topics   TopicStore
	Progress *ProgressService
	Stats    *StatsService
}

func NewExerciseService(repo ExerciseStore, topics TopicStore, progress *ProgressService, stats *StatsService) *ExerciseService {
	return &ExerciseService{
		contentService: contentService[model.Exercise]{store: repo},
		Repo:           repo,
		Topics:         topics,
		Progress:       progress,
		Stats:          stats,
	}
}

func hideExerciseAnswers(items []model.Exercise) []model.Exercise {
	for i := range items {
		items[i].CorrectAnswer = ""
	}
	return items
}

// ListPublic applies at most one filter, topic first, and strips answers.
func (s *ExerciseService) ListPublic(ctx context.Context, f ExerciseFilter) []model.Exercise {
	var items []model.Exercise
	switch {
	case f.TopicID > 0:
		items = s.Repo.GetByTopic(ctx, f.TopicID)
	case f.Category != "":
		items = s.Repo.GetByCategory(ctx, f.Category)
	case f.Level != "":
		items = s.Repo.GetByLevel(ctx, f.Level)
	default:
		items = s.Repo.GetAll(ctx)
	}
	return hideExerciseAnswers(items)
}

func (s *ExerciseService) GetPublic(ctx context.Context, key int) (*model.Exercise, error) {
	item, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	item.CorrectAnswer = ""
	return item, nil
}

func CheckAnswer(expected, given string) bool {
	return strings.EqualFold(strings.TrimSpace(expected), strings.TrimSpace(given))
}

// Submit grades one answer, records it as an exercise activity and, when it
// is correct, counts the exercise towards the account score.
func (s *ExerciseService) Submit(ctx context.Context, userID string, key int, answer string) (*ExerciseResult, error) {
	exercise := s.Repo.GetByID(ctx, key)
	if exercise == nil {
		return nil, util.ErrNotFound
	}

	result := &ExerciseResult{
		ExerciseID:    exercise.ExerciseID,
		Correct:       CheckAnswer(exercise.CorrectAnswer, answer),
		CorrectAnswer: exercise.CorrectAnswer,
		Explanation:   exercise.Explanation,
	}
	if result.Correct {
		result.Score = 100
		result.PointsEarned = exercise.Points
		if result.PointsEarned <= 0 {
			result.PointsEarned = defaultExercisePoints
		}
	}

	title := exercise.Title
	if title == "" {
		title = exercise.Question
	}
	req := ActivityRequest{
		Type:                 model.ActivityExercise,
		Title:                title,
		Score:                result.Score,
		PointsEarned:         result.PointsEarned,
		CompletionPercentage: result.Score,
	}
	if exercise.TopicID > 0 {
		topicID := exercise.TopicID
		req.TopicID = &topicID
		if topic := s.Topics.GetByID(ctx, topicID); topic != nil {
			req.TopicName = topic.Name
		}
	}

	progress, ok := s.Progress.RecordActivity(ctx, userID, req)
	if !ok {
		return nil, util.ErrPersistFailed
	}
	result.Progress = progress

	if result.Correct {
		if _, err := s.Stats.RecordLearned(ctx, userID, repository.CounterExercises); err != nil {
			return nil, err
		}
	}
	return result, nil
}
