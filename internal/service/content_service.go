package service

import (
	"context"
	"english_learning_backend/internal/util"
)

// contentService is the admin CRUD flow shared by every content type. The
// store reports plain success flags, so failures are re-derived by reading
// the item back.
type contentService[T any] struct {
	store ContentStore[T]
}

func (s *contentService[T]) List(ctx context.Context) []T {
	return s.store.GetAll(ctx)
}

func (s *contentService[T]) Get(ctx context.Context, key int) (*T, error) {
	item := s.store.GetByID(ctx, key)
	if item == nil {
		return nil, util.ErrNotFound
	}
	return item, nil
}

func (s *contentService[T]) Create(ctx context.Context, item *T) (*T, error) {
	created := s.store.Create(ctx, item)
	if created == nil {
		return nil, util.ErrPersistFailed
	}
	return created, nil
}

func (s *contentService[T]) Update(ctx context.Context, key int, item *T) (*T, error) {
	if s.store.GetByID(ctx, key) == nil {
		return nil, util.ErrNotFound
	}
	if !s.store.Update(ctx, key, item) {
		return nil, util.ErrPersistFailed
	}
	return s.store.GetByID(ctx, key), nil
}

func (s *contentService[T]) Delete(ctx context.Context, key int) error {
	if s.store.GetByID(ctx, key) == nil {
		return util.ErrNotFound
	}
	if !s.store.Delete(ctx, key) {
		return util.ErrPersistFailed
	}
	return nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = util.DefaultPage
	}
	if pageSize < 1 {
		pageSize = util.DefaultPageSize
	}
	if pageSize > util.MaxPageSize {
		pageSize = util.MaxPageSize
	}
	return page, pageSize
}
