package service

import (
	"context"
	"english_learning_backend/internal/model"
	"time"
)

// Storage contracts the services depend on. The repository package provides
// the mongo and redis backed implementations.

type ProgressStore interface {
	GetByUserID(ctx context.Context, userID string) *model.Progress
	Create(ctx context.Context, p *model.Progress) bool
	UpdateFields(ctx context.Context, p *model.Progress) bool
	Delete(ctx context.Context, userID string) bool
}

type ContentStore[T any] interface {
	GetAll(ctx context.Context) []T
	GetByID(ctx context.Context, key int) *T
	Create(ctx context.Context, item *T) *T
	Update(ctx context.Context, key int, item *T) bool
	Delete(ctx context.Context, key int) bool
}

type FavoriteStore[T any] interface {
	GetByID(ctx context.Context, key int) *T
	ToggleFavorite(ctx context.Context, key int, userID string) bool
	GetFavorites(ctx context.Context, userID string) []T
	IsFavorite(item *T, userID string) bool
}

type UserStore interface {
	Create(ctx context.Context, user *model.User) bool
	GetByUserID(ctx context.Context, userID string) *model.User
	GetByEmail(ctx context.Context, email string) *model.User
	FindByAnyKey(ctx context.Context, key string) *model.User
	List(ctx context.Context, search string, page, pageSize int) ([]model.User, int64)
	TopByPoints(ctx context.Context, limit int) []model.User
	UpdateProfile(ctx context.Context, userID, fullName, bio string) bool
	UpdateAvatar(ctx context.Context, userID, path string, version int64) bool
	UpdateRole(ctx context.Context, userID string, role model.UserRole) bool
	UpdatePassword(ctx context.Context, userID, hash string) bool
	SetPoints(ctx context.Context, userID string, points int, level string) bool
	IncrementCounter(ctx context.Context, userID, counter string, delta int) bool
	AddLearned(ctx context.Context, userID, counter string, key int) (added, found bool)
	Delete(ctx context.Context, userID string) bool
}

type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
