package service

import (
	"context"
	"english_learning_backend/internal/model"
	"english_learning_backend/internal/util"
)

type TopicStore interface {
	ContentStore[model.Topic]
	GetByLevel(ctx context.Context, level string) []model.Topic
}

// TopicDetail is a topic with the vocabulary and exercises filed under it.
type TopicDetail struct {
	model.Topic
	Vocabulary []model.Vocabulary `json:"Vocabulary"`
	Exercises  []model.Exercise   `json:"Exercises"`
}

type TopicService struct {
	contentService[model.Topic]
	Repo       TopicStore
	Vocabulary VocabularyStore
	Exercises  ExerciseStore
}

func NewTopicService(repo TopicStore, vocabulary VocabularyStore, exercises ExerciseStore) *TopicService {
	return &TopicService{
		contentService: contentService[model.Topic]{store: repo},
		Repo:           repo,
		Vocabulary:     vocabulary,
		Exercises:      exercises,
	}
}

func (s *TopicService) GetByLevel(ctx context.Context, level string) []model.Topic {
	return s.Repo.GetByLevel(ctx, level)
}

func (s *TopicService) Detail(ctx context.Context, key int) (*TopicDetail, error) {
	topic := s.Repo.GetByID(ctx, key)
	if topic == nil {
		return nil, util.ErrNotFound
	}
	return &TopicDetail{
		Topic:      *topic,
		Vocabulary: s.Vocabulary.GetByTopic(ctx, key),
		Exercises:  hideExerciseAnswers(s.Exercises.GetByTopic(ctx, key)),
	}, nil
}
