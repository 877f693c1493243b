package service

import (
	"context"
	"english_learning_backend/internal/model"
	"english_learning_backend/internal/repository"
	"english_learning_backend/internal/util"
)

type GrammarStore interface {
	ContentStore[model.Grammar]
	GetByLevel(ctx context.Context, level string) []model.Grammar
	GetByCategory(ctx context.Context, category string) []model.Grammar
	Search(ctx context.Context, f repository.GrammarFilter, page, pageSize int) ([]model.Grammar, int64)
}

type GrammarService struct {
	contentService[model.Grammar]
	Repo  GrammarStore
	Stats *StatsService
}

func NewGrammarService(repo GrammarStore, stats *StatsService) *GrammarService {
	return &GrammarService{
		contentService: contentService[model.Grammar]{store: repo},
		Repo:           repo,
		Stats:          stats,
	}
}

func (s *GrammarService) Search(ctx context.Context, f repository.GrammarFilter, page, pageSize int) *util.PageResponse {
	page, pageSize = normalizePage(page, pageSize)
	items, total := s.Repo.Search(ctx, f, page, pageSize)
	return &util.PageResponse{List: items, Total: total, Page: page, PageSize: pageSize}
}

func (s *GrammarService) GetByLevel(ctx context.Context, level string) []model.Grammar {
	return s.Repo.GetByLevel(ctx, level)
}

func (s *GrammarService) GetByCategory(ctx context.Context, category string) []model.Grammar {
	return s.Repo.GetByCategory(ctx, category)
}

func (s *GrammarService) MarkLearned(ctx context.Context, userID string, key int) (*UserStats, error) {
	if s.Repo.GetByID(ctx, key) == nil {
		return nil, util.ErrNotFound
	}
	return s.Stats.RecordLearnedItem(ctx, userID, repository.CounterGrammar, key)
}
