package controller

import (
	"context"
	"encoding/json"
	"english_learning_backend/internal/model"
	"english_learning_backend/internal/service"
	"english_learning_backend/internal/util"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// asUser stands in for the auth middleware.
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user", &util.Claims{UserID: userID, Role: model.RoleUser})
		c.Next()
	}
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data any) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

type memProgress struct {
	records map[string]*model.Progress
}

func (m *memProgress) GetByUserID(ctx context.Context, userID string) *model.Progress {
	p, ok := m.records[userID]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

func (m *memProgress) Create(ctx context.Context, p *model.Progress) bool {
	p.ID = primitive.NewObjectID()
	cp := *p
	m.records[p.UserID] = &cp
	return true
}

func (m *memProgress) UpdateFields(ctx context.Context, p *model.Progress) bool {
	cp := *p
	m.records[p.UserID] = &cp
	return true
}

func (m *memProgress) Delete(ctx context.Context, userID string) bool {
	_, ok := m.records[userID]
	delete(m.records, userID)
	return ok
}

func TestProgressController_RecordActivity(t *testing.T) {
	store := &memProgress{records: map[string]*model.Progress{}}
	c := NewProgressController(service.NewProgressService(store), nil, nil)

	r := gin.New()
	r.GET("/api/progress", asUser("u1"), c.Get)
	r.POST("/api/progress/activity", asUser("u1"), c.RecordActivity)

	body := `{"type":"Vocabulary","title":"Colours","pointsEarned":25,"completionPercentage":100}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/progress/activity", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, w.Code)

	var p model.Progress
	decode(t, w, &p)
	assert.Equal(t, "u1", p.UserID)
	assert.Equal(t, 30, p.VocabularyProgress)
	assert.Equal(t, 25, p.TotalPoints)
	require.Len(t, p.LastCompletedItems, 1)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/progress", nil))
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &p)
	assert.Equal(t, 25, p.TotalPoints)
}

func TestProgressController_RejectsBadActivity(t *testing.T) {
	store := &memProgress{records: map[string]*model.Progress{}}
	c := NewProgressController(service.NewProgressService(store), nil, nil)

	r := gin.New()
	r.POST("/api/progress/activity", asUser("u1"), c.RecordActivity)

	for _, body := range []string{
		`{"title":"no type"}`,
		`{"type":"Grammar","completionPercentage":150}`,
		`not json`,
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/progress/activity", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
	assert.Empty(t, store.records)
}

type memTopicFavorites struct {
	topics map[int]*model.Topic
}

func (m *memTopicFavorites) GetByID(ctx context.Context, key int) *model.Topic {
	tp, ok := m.topics[key]
	if !ok {
		return nil
	}
	cp := *tp
	cp.FavoriteByUsers = model.NewUserSet(tp.FavoriteByUsers.Slice()...)
	return &cp
}

func (m *memTopicFavorites) ToggleFavorite(ctx context.Context, key int, userID string) bool {
	tp, ok := m.topics[key]
	if !ok {
		return false
	}
	if tp.FavoriteByUsers.Contains(userID) {
		tp.FavoriteByUsers.Remove(userID)
	} else {
		tp.FavoriteByUsers.Add(userID)
	}
	return true
}

func (m *memTopicFavorites) GetFavorites(ctx context.Context, userID string) []model.Topic {
	return nil
}

func (m *memTopicFavorites) IsFavorite(item *model.Topic, userID string) bool {
	return item.FavoriteByUsers.Contains(userID)
}

func TestFavoriteController_Toggle(t *testing.T) {
	topics := &memTopicFavorites{topics: map[int]*model.Topic{1: {TopicID: 1, Name: "Travel"}}}
	c := NewFavoriteController(service.NewFavoriteService(nil, nil, topics))

	r := gin.New()
	r.POST("/api/topics/:id/favorite", asUser("u1"), c.Toggle(service.FavoriteTopic))

	tests := []struct {
		path     string
		code     int
		favorite bool
	}{
		{"/api/topics/1/favorite", http.StatusOK, true},
		{"/api/topics/1/favorite", http.StatusOK, false},
		{"/api/topics/2/favorite", http.StatusNotFound, false},
		{"/api/topics/abc/favorite", http.StatusBadRequest, false},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, tt.path, nil))
		require.Equal(t, tt.code, w.Code, tt.path)
		if tt.code == http.StatusOK {
			var res service.FavoriteResult
			decode(t, w, &res)
			assert.Equal(t, tt.favorite, res.IsFavorite)
			assert.Equal(t, service.FavoriteTopic, res.Kind)
		}
	}
}

func TestFavoriteController_RequiresUser(t *testing.T) {
	c := NewFavoriteController(service.NewFavoriteService(nil, nil, nil))
	r := gin.New()
	r.GET("/api/favorites", c.List)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/favorites", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealthController(t *testing.T) {
	up := PingFunc(func(context.Context) error { return nil })
	down := PingFunc(func(context.Context) error { return errors.New("refused") })

	r := gin.New()
	r.GET("/ok", NewHealthController(map[string]Pinger{"mongo": up, "redis": up}).HealthCheck)
	r.GET("/degraded", NewHealthController(map[string]Pinger{"mongo": up, "redis": down}).HealthCheck)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/degraded", nil))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	var data struct {
		Components map[string]string `json:"components"`
	}
	decode(t, w, &data)
	assert.Equal(t, "down", data.Components["redis"])
	assert.Equal(t, "up", data.Components["mongo"])
}

func TestRespondError(t *testing.T) {
	cases := map[error]int{
		util.ErrNotFound:           http.StatusNotFound,
		util.ErrEmailRegistered:    http.StatusConflict,
		util.ErrInvalidCredentials: http.StatusUnauthorized,
		util.ErrPermissionDenied:   http.StatusForbidden,
		util.ErrInvalidInput:       http.StatusBadRequest,
		util.ErrFileTooLarge:       http.StatusRequestEntityTooLarge,
		errors.New("boom"):         http.StatusInternalServerError,
	}
	for err, code := range cases {
		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		respondError(ctx, err)
		assert.Equal(t, code, w.Code, err.Error())
	}
}
