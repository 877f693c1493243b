package service

import (
	"context"
	"english_learning_backend/internal/model"
	"english_learning_backend/internal/util"
	"english_learning_backend/pkg/monitoring"
)

const (
	FavoriteVocabulary = "vocabulary"
	FavoriteGrammar    = "grammar"
	FavoriteTopic      = "topic"
)

// FavoriteList groups a user's favorites by content type.
// swagger:model FavoriteList
type FavoriteList struct {
	Vocabulary []model.Vocabulary `json:"vocabulary"`
	Grammar    []model.Grammar    `json:"grammar"`
	Topics     []model.Topic      `json:"topics"`
}

type FavoriteResult struct {
	Kind       string `json:"kind"`
	ID         int    `json:"id"`
	IsFavorite bool   `json:"isFavorite"`
}

type FavoriteService struct {
	Vocabulary FavoriteStore[model.Vocabulary]
	Grammar    FavoriteStore[model.Grammar]
	Topics     FavoriteStore[model.Topic]
}

func NewFavoriteService(vocabulary FavoriteStore[model.Vocabulary], grammar FavoriteStore[model.Grammar], topics FavoriteStore[model.Topic]) *FavoriteService {
	return &FavoriteService{Vocabulary: vocabulary, Grammar: grammar, Topics: topics}
}

// toggle flips membership and reads the item back to report where it landed.
func toggle[T any](ctx context.Context, store FavoriteStore[T], key int, userID string) (bool, error) {
	if store.ToggleFavorite(ctx, key, userID) {
		item := store.GetByID(ctx, key)
		if item == nil {
			return false, util.ErrNotFound
		}
		return store.IsFavorite(item, userID), nil
	}

	if store.GetByID(ctx, key) == nil {
		return false, util.ErrNotFound
	}
	return false, util.ErrPersistFailed
}

func (s *FavoriteService) Toggle(ctx context.Context, kind string, key int, userID string) (*FavoriteResult, error) {
	var (
		isFavorite bool
		err        error
	)
	switch kind {
	case FavoriteVocabulary:
		isFavorite, err = toggle(ctx, s.Vocabulary, key, userID)
	case FavoriteGrammar:
		isFavorite, err = toggle(ctx, s.Grammar, key, userID)
	case FavoriteTopic:
		isFavorite, err = toggle(ctx, s.Topics, key, userID)
	default:
		return nil, util.ErrInvalidInput
	}

	result := "failed"
	if err == nil {
		result = "removed"
		if isFavorite {
			result = "added"
		}
	}
	monitoring.FavoriteToggles.WithLabelValues(kind, result).Inc()

	if err != nil {
		return nil, err
	}
	return &FavoriteResult{Kind: kind, ID: key, IsFavorite: isFavorite}, nil
}

func (s *FavoriteService) List(ctx context.Context, userID string) *FavoriteList {
	return &FavoriteList{
		Vocabulary: s.Vocabulary.GetFavorites(ctx, userID),
		Grammar:    s.Grammar.GetFavorites(ctx, userID),
		Topics:     s.Topics.GetFavorites(ctx, userID),
	}
}
