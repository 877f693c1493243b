package service

import (
	"context"
	"english_learning_backend/internal/model"
	"english_learning_backend/pkg/monitoring"
	"math"
	"sort"
	"strings"
	"time"
)

// Level thresholds on Progress.TotalPoints, highest first.
var progressLevels = []struct {
	min   int
	level string
}{
	{2000, model.LevelC2},
	{1500, model.LevelC1},
	{1000, model.LevelB2},
	{700, model.LevelB1},
	{400, model.LevelA2},
}

// ActivityRequest describes one completed learning activity.
// swagger:model ActivityRequest
type ActivityRequest struct {
	Type                 string `json:"type" binding:"required"`
	Title                string `json:"title"`
	Score                int    `json:"score"`
	PointsEarned         int    `json:"pointsEarned"`
	TopicID              *int   `json:"topicId"`
	TopicName            string `json:"topicName"`
	CompletionPercentage int    `json:"completionPercentage" binding:"min=0,max=100"`
}

type ProgressService struct {
	ProgressRepo ProgressStore
	Now          func() time.Time
}

func NewProgressService(progressRepo ProgressStore) *ProgressService {
	return &ProgressService{
		ProgressRepo: progressRepo,
		Now:          time.Now,
	}
}

// SmoothProgress is the 0.7/0.3 moving average applied to a percentage counter.
func SmoothProgress(old, incoming int) int {
	return int(math.Round(float64(old)*0.7 + float64(incoming)*0.3))
}

func LevelForTotalPoints(total int) string {
	for _, t := range progressLevels {
		if total >= t.min {
			return t.level
		}
	}
	return model.LevelA1
}

// GetProgress loads the user's progress, creating and persisting a zeroed
// record when there is none. It returns nil when that insert fails.
func (s *ProgressService) GetProgress(ctx context.Context, userID string) *model.Progress {
	if p := s.ProgressRepo.GetByUserID(ctx, userID); p != nil {
		return p
	}

	p := model.NewProgress(userID)
	if !s.ProgressRepo.Create(ctx, p) {
		return nil
	}
	return p
}

// RecordActivity applies one activity to the user's progress and persists it.
// The load and the write are separate store calls; concurrent submissions for
// the same user are last-writer-wins.
func (s *ProgressService) RecordActivity(ctx context.Context, userID string, req ActivityRequest) (*model.Progress, bool) {
	p := s.GetProgress(ctx, userID)
	if p == nil {
		return nil, false
	}

	now := s.Now()
	applyActivity(p, req, now)
	monitoring.ActivitiesRecorded.WithLabelValues(strings.ToLower(req.Type)).Inc()

	var ok bool
	if p.ID.IsZero() {
		ok = s.ProgressRepo.Create(ctx, p)
	} else {
		ok = s.ProgressRepo.UpdateFields(ctx, p)
	}
	if !ok {
		return nil, false
	}
	return p, true
}

func (s *ProgressService) ResetProgress(ctx context.Context, userID string) bool {
	return s.ProgressRepo.Delete(ctx, userID)
}

func applyActivity(p *model.Progress, req ActivityRequest, now time.Time) {
	// unknown types move no counter but are still logged and still score
	switch {
	case strings.EqualFold(req.Type, model.ActivityVocabulary):
		p.VocabularyProgress = SmoothProgress(p.VocabularyProgress, req.CompletionPercentage)
	case strings.EqualFold(req.Type, model.ActivityGrammar):
		p.GrammarProgress = SmoothProgress(p.GrammarProgress, req.CompletionPercentage)
	case strings.EqualFold(req.Type, model.ActivityExercise):
		p.ExerciseProgress = SmoothProgress(p.ExerciseProgress, req.CompletionPercentage)
	}

	p.LastCompletedItems = appendActivity(p.LastCompletedItems, model.LastCompletedItem{
		Type:         req.Type,
		Title:        req.Title,
		Score:        req.Score,
		PointsEarned: req.PointsEarned,
		CompletedAt:  now,
	})

	if req.TopicID != nil {
		p.CompletedTopics = upsertTopic(p.CompletedTopics, model.TopicCompletion{
			TopicID:              *req.TopicID,
			TopicName:            req.TopicName,
			CompletionPercentage: req.CompletionPercentage,
			CompletedAt:          now,
		})
	}

	p.TotalPoints += req.PointsEarned
	p.Level = LevelForTotalPoints(p.TotalPoints)
}

// appendActivity assigns the next id and, past the cap, keeps only the most
// recently completed entries, newest first.
func appendActivity(items []model.LastCompletedItem, item model.LastCompletedItem) []model.LastCompletedItem {
	maxID := 0
	for _, it := range items {
		if it.ID > maxID {
			maxID = it.ID
		}
	}
	item.ID = maxID + 1
	items = append(items, item)

	if len(items) > model.MaxRecentActivities {
		sort.SliceStable(items, func(i, j int) bool {
			if !items[i].CompletedAt.Equal(items[j].CompletedAt) {
				return items[i].CompletedAt.After(items[j].CompletedAt)
			}
			return items[i].ID > items[j].ID
		})
		items = items[:model.MaxRecentActivities]
	}
	return items
}

func upsertTopic(topics []model.TopicCompletion, tc model.TopicCompletion) []model.TopicCompletion {
	for i := range topics {
		if topics[i].TopicID == tc.TopicID {
			topics[i].CompletionPercentage = tc.CompletionPercentage
			return topics
		}
	}
	return append(topics, tc)
}
