package service

import (
	"context"
	"english_learning_backend/internal/model"
	"english_learning_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memFavorites is an in-memory favorite store over vocabulary items.
type memFavorites struct {
	items      map[int]*model.Vocabulary
	failToggle bool
}

func (m *memFavorites) GetByID(ctx context.Context, key int) *model.Vocabulary {
	v, ok := m.items[key]
	if !ok {
		return nil
	}
	cp := *v
	cp.FavoriteByUsers = model.NewUserSet(v.FavoriteByUsers.Slice()...)
	return &cp
}

func (m *memFavorites) ToggleFavorite(ctx context.Context, key int, userID string) bool {
	v, ok := m.items[key]
	if !ok || m.failToggle {
		return false
	}
	if v.FavoriteByUsers.Contains(userID) {
		v.FavoriteByUsers.Remove(userID)
	} else {
		v.FavoriteByUsers.Add(userID)
	}
	return true
}

func (m *memFavorites) GetFavorites(ctx context.Context, userID string) []model.Vocabulary {
	out := []model.Vocabulary{}
	for _, v := range m.items {
		if v.FavoriteByUsers.Contains(userID) {
			out = append(out, *v)
		}
	}
	return out
}

func (m *memFavorites) IsFavorite(item *model.Vocabulary, userID string) bool {
	return item.FavoriteByUsers.Contains(userID)
}

func TestFavoriteService_ToggleTwiceRestores(t *testing.T) {
	store := &memFavorites{items: map[int]*model.Vocabulary{7: {VocabularyID: 7, Word: "apple"}}}
	svc := NewFavoriteService(store, nil, nil)
	ctx := context.Background()

	res, err := svc.Toggle(ctx, FavoriteVocabulary, 7, "u1")
	require.NoError(t, err)
	assert.True(t, res.IsFavorite)
	assert.Equal(t, 7, res.ID)
	assert.Len(t, store.GetFavorites(ctx, "u1"), 1)

	res, err = svc.Toggle(ctx, FavoriteVocabulary, 7, "u1")
	require.NoError(t, err)
	assert.False(t, res.IsFavorite)
	assert.Empty(t, store.GetFavorites(ctx, "u1"))
}

func TestFavoriteService_ToggleIsPerUser(t *testing.T) {
	store := &memFavorites{items: map[int]*model.Vocabulary{7: {VocabularyID: 7, FavoriteByUsers: model.NewUserSet("u2")}}}
	svc := NewFavoriteService(store, nil, nil)

	res, err := svc.Toggle(context.Background(), FavoriteVocabulary, 7, "u1")
	require.NoError(t, err)
	assert.True(t, res.IsFavorite)
	assert.ElementsMatch(t, []string{"u1", "u2"}, store.items[7].FavoriteByUsers.Slice())
}

func TestFavoriteService_ToggleErrors(t *testing.T) {
	store := &memFavorites{items: map[int]*model.Vocabulary{7: {VocabularyID: 7}}}
	svc := NewFavoriteService(store, nil, nil)
	ctx := context.Background()

	_, err := svc.Toggle(ctx, FavoriteVocabulary, 99, "u1")
	assert.ErrorIs(t, err, util.ErrNotFound)

	_, err = svc.Toggle(ctx, "lesson", 7, "u1")
	assert.ErrorIs(t, err, util.ErrInvalidInput)

	store.failToggle = true
	_, err = svc.Toggle(ctx, FavoriteVocabulary, 7, "u1")
	assert.ErrorIs(t, err, util.ErrPersistFailed)
}
