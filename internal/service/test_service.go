package service

import (
	"context"
	"english_learning_backend/internal/model"
	"english_learning_backend/internal/util"
)

const pointsPerCorrectTestAnswer = 2

type TestStore interface {
	ContentStore[model.Test]
	GetByLevel(ctx context.Context, level string) []model.Test
}

type SubmitTestRequest struct {
	Answers []string `json:"answers" binding:"required"`
}

type QuestionResult struct {
	Index         int    `json:"index"`
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correctAnswer"`
}

// swagger:model TestResult
type TestResult struct {
	TestID       int              `json:"testId"`
	Total        int              `json:"total"`
	Correct      int              `json:"correct"`
	Score        int              `json:"score"`
	Passed       bool             `json:"passed"`
	PointsEarned int              `json:"pointsEarned"`
	Questions    []QuestionResult `json:"questions"`
	Progress     *model.Progress  `json:"progress,omitempty"`
}

type TestService struct {
	contentService[model.Test]
	Repo     TestStore
	Progress *ProgressService
}

func NewTestService(repo TestStore, progress *ProgressService) *TestService {
	return &TestService{
		contentService: contentService[model.Test]{store: repo},
		Repo:           repo,
		Progress:       progress,
	}
}

func hideTestAnswers(t *model.Test) {
	for i := range t.Questions {
		t.Questions[i].CorrectAnswer = ""
	}
}

func (s *TestService) ListPublic(ctx context.Context, level string) []model.Test {
	var items []model.Test
	if level != "" {
		items = s.Repo.GetByLevel(ctx, level)
	} else {
		items = s.Repo.GetAll(ctx)
	}
	for i := range items {
		hideTestAnswers(&items[i])
	}
	return items
}

func (s *TestService) GetPublic(ctx context.Context, key int) (*model.Test, error) {
	item, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	hideTestAnswers(item)
	return item, nil
}

// Grade scores answers positionally; missing answers count as wrong.
func Grade(t *model.Test, answers []string) *TestResult {
	result := &TestResult{
		TestID:    t.TestID,
		Total:     len(t.Questions),
		Questions: make([]QuestionResult, 0, len(t.Questions)),
	}
	for i, q := range t.Questions {
		correct := i < len(answers) && CheckAnswer(q.CorrectAnswer, answers[i])
		if correct {
			result.Correct++
		}
		result.Questions = append(result.Questions, QuestionResult{
			Index:         i,
			Correct:       correct,
			CorrectAnswer: q.CorrectAnswer,
		})
	}
	if result.Total > 0 {
		result.Score = result.Correct * 100 / result.Total
	}
	result.Passed = result.Score >= t.PassingScore
	result.PointsEarned = result.Correct * pointsPerCorrectTestAnswer
	return result
}

func (s *TestService) Submit(ctx context.Context, userID string, key int, answers []string) (*TestResult, error) {
	test := s.Repo.GetByID(ctx, key)
	if test == nil {
		return nil, util.ErrNotFound
	}
	if len(test.Questions) == 0 {
		return nil, util.ErrInvalidInput
	}

	result := Grade(test, answers)
	progress, ok := s.Progress.RecordActivity(ctx, userID, ActivityRequest{
		Type:                 model.ActivityExercise,
		Title:                test.Title,
		Score:                result.Score,
		PointsEarned:         result.PointsEarned,
		CompletionPercentage: result.Score,
	})
	if !ok {
		return nil, util.ErrPersistFailed
	}
	result.Progress = progress
	return result, nil
}
