package service

import (
	"context"
	"english_learning_backend/internal/model"
	"english_learning_backend/internal/repository"
	"english_learning_backend/internal/util"
)

type VocabularyStore interface {
	ContentStore[model.Vocabulary]
	GetByTopic(ctx context.Context, topicID int) []model.Vocabulary
	GetByLevel(ctx context.Context, level string) []model.Vocabulary
	Search(ctx context.Context, f repository.VocabularyFilter, page, pageSize int) ([]model.Vocabulary, int64)
}

type VocabularyService struct {
	contentService[model.Vocabulary]
	Repo  VocabularyStore
	Stats *StatsService
}

func NewVocabularyService(repo VocabularyStore, stats *StatsService) *VocabularyService {
	return &VocabularyService{
		contentService: contentService[model.Vocabulary]{store: repo},
		Repo:           repo,
		Stats:          stats,
	}
}

func (s *VocabularyService) Search(ctx context.Context, f repository.VocabularyFilter, page, pageSize int) *util.PageResponse {
	page, pageSize = normalizePage(page, pageSize)
	items, total := s.Repo.Search(ctx, f, page, pageSize)
	return &util.PageResponse{List: items, Total: total, Page: page, PageSize: pageSize}
}

func (s *VocabularyService) GetByTopic(ctx context.Context, topicID int) []model.Vocabulary {
	return s.Repo.GetByTopic(ctx, topicID)
}

func (s *VocabularyService) GetByLevel(ctx context.Context, level string) []model.Vocabulary {
	return s.Repo.GetByLevel(ctx, level)
}

func (s *VocabularyService) MarkLearned(ctx context.Context, userID string, key int) (*UserStats, error) {
	if s.Repo.GetByID(ctx, key) == nil {
		return nil, util.ErrNotFound
	}
	return s.Stats.RecordLearnedItem(ctx, userID, repository.CounterVocabulary, key)
}
