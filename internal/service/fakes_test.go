package service

import (
	"context"
	"english_learning_backend/internal/model"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memProgressStore keeps progress records in memory, keyed by user.
type memProgressStore struct {
	records    map[string]*model.Progress
	failCreate bool
	failUpdate bool
	creates    int
	updates    int
}

func newMemProgressStore() *memProgressStore {
	return &memProgressStore{records: map[string]*model.Progress{}}
}

func (m *memProgressStore) GetByUserID(ctx context.Context, userID string) *model.Progress {
	p, ok := m.records[userID]
	if !ok {
		return nil
	}
	cp := *p
	cp.LastCompletedItems = append([]model.LastCompletedItem(nil), p.LastCompletedItems...)
	cp.CompletedTopics = append([]model.TopicCompletion(nil), p.CompletedTopics...)
	return &cp
}

func (m *memProgressStore) Create(ctx context.Context, p *model.Progress) bool {
	m.creates++
	if m.failCreate {
		return false
	}
	p.ID = primitive.NewObjectID()
	cp := *p
	m.records[p.UserID] = &cp
	return true
}

func (m *memProgressStore) UpdateFields(ctx context.Context, p *model.Progress) bool {
	m.updates++
	if m.failUpdate {
		return false
	}
	if _, ok := m.records[p.UserID]; !ok {
		return false
	}
	cp := *p
	m.records[p.UserID] = &cp
	return true
}

func (m *memProgressStore) Delete(ctx context.Context, userID string) bool {
	if _, ok := m.records[userID]; !ok {
		return false
	}
	delete(m.records, userID)
	return true
}

// memUserStore is a minimal in-memory user store.
type memUserStore struct {
	users map[string]*model.User
}

func newMemUserStore(users ...*model.User) *memUserStore {
	m := &memUserStore{users: map[string]*model.User{}}
	for _, u := range users {
		m.users[u.UserID] = u
	}
	return m
}

func (m *memUserStore) Create(ctx context.Context, user *model.User) bool {
	for _, u := range m.users {
		if u.Email == user.Email {
			return false
		}
	}
	user.ID = primitive.NewObjectID()
	m.users[user.UserID] = user
	return true
}

func (m *memUserStore) GetByUserID(ctx context.Context, userID string) *model.User {
	u, ok := m.users[userID]
	if !ok {
		return nil
	}
	cp := *u
	return &cp
}

func (m *memUserStore) GetByEmail(ctx context.Context, email string) *model.User {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp
		}
	}
	return nil
}

func (m *memUserStore) FindByAnyKey(ctx context.Context, key string) *model.User {
	if u := m.GetByUserID(ctx, key); u != nil {
		return u
	}
	return m.GetByEmail(ctx, key)
}

func (m *memUserStore) List(ctx context.Context, search string, page, pageSize int) ([]model.User, int64) {
	var out []model.User
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, int64(len(out))
}

func (m *memUserStore) TopByPoints(ctx context.Context, limit int) []model.User {
	out, _ := m.List(ctx, "", 1, limit)
	return out
}

func (m *memUserStore) update(userID string, fn func(u *model.User)) bool {
	u, ok := m.users[userID]
	if !ok {
		return false
	}
	fn(u)
	u.UpdatedAt = time.Now()
	return true
}

func (m *memUserStore) UpdateProfile(ctx context.Context, userID, fullName, bio string) bool {
	return m.update(userID, func(u *model.User) { u.FullName, u.Bio = fullName, bio })
}

func (m *memUserStore) UpdateAvatar(ctx context.Context, userID, path string, version int64) bool {
	return m.update(userID, func(u *model.User) { u.Avatar, u.AvatarVersion = path, version })
}

func (m *memUserStore) UpdateRole(ctx context.Context, userID string, role model.UserRole) bool {
	return m.update(userID, func(u *model.User) { u.Role = role })
}

func (m *memUserStore) UpdatePassword(ctx context.Context, userID, hash string) bool {
	return m.update(userID, func(u *model.User) { u.PasswordHash = hash })
}

func (m *memUserStore) SetPoints(ctx context.Context, userID string, points int, level string) bool {
	return m.update(userID, func(u *model.User) { u.Points, u.Level = points, level })
}

func (m *memUserStore) IncrementCounter(ctx context.Context, userID, counter string, delta int) bool {
	return m.update(userID, func(u *model.User) {
		switch counter {
		case "VocabularyLearned":
			u.VocabularyLearned += delta
		case "GrammarLearned":
			u.GrammarLearned += delta
		case "ExercisesCompleted":
			u.ExercisesCompleted += delta
		}
	})
}

func (m *memUserStore) AddLearned(ctx context.Context, userID, counter string, key int) (bool, bool) {
	u, ok := m.users[userID]
	if !ok {
		return false, false
	}
	list := &u.LearnedVocabulary
	if counter == "GrammarLearned" {
		list = &u.LearnedGrammar
	}
	for _, k := range *list {
		if k == key {
			return false, true
		}
	}
	*list = append(*list, key)
	m.IncrementCounter(ctx, userID, counter, 1)
	return true, true
}

func (m *memUserStore) Delete(ctx context.Context, userID string) bool {
	if _, ok := m.users[userID]; !ok {
		return false
	}
	delete(m.users, userID)
	return true
}
