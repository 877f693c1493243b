package middleware

import (
	"context"
	"english_learning_backend/internal/util"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type LastSeenRecorder interface {
	UpdateLastSeen(ctx context.Context, userID string) bool
}

// ActivityMiddleware stamps the caller's last-seen time, at most once per
// interval per user.
func ActivityMiddleware(users LastSeenRecorder, interval time.Duration) gin.HandlerFunc {
	var (
		mu   sync.Mutex
		seen = make(map[string]time.Time)
	)

	return func(c *gin.Context) {
		c.Next()

		claims := util.GetUserFromContext(c)
		if claims == nil {
			return
		}

		now := time.Now()
		mu.Lock()
		last, ok := seen[claims.UserID]
		due := !ok || now.Sub(last) >= interval
		if due {
			seen[claims.UserID] = now
		}
		mu.Unlock()

		if due {
			users.UpdateLastSeen(c.Request.Context(), claims.UserID)
		}
	}
}
