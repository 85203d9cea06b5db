package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Throttle enforces per-caller request budgets over a sliding window.
// Anonymous callers are keyed by client IP, authenticated callers by user ID,
// each with its own limit. State is in-process only.
type Throttle struct {
	mu        sync.Mutex
	windows   map[string][]time.Time
	window    time.Duration
	anonLimit int
	userLimit int
}

func NewThrottle(anonLimit, userLimit int, window time.Duration) *Throttle {
	return &Throttle{
		windows:   make(map[string][]time.Time),
		window:    window,
		anonLimit: anonLimit,
		userLimit: userLimit,
	}
}

// Anonymous throttles by client IP; use on public routes.
func (t *Throttle) Anonymous() gin.HandlerFunc {
	return func(c *gin.Context) {
		t.check(c, "ip:"+c.ClientIP(), t.anonLimit)
	}
}

// Authenticated throttles by user ID; must run after AuthRequired.
func (t *Throttle) Authenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := GetIdentity(c)
		t.check(c, "user:"+strconv.FormatUint(uint64(ident.UserID), 10), t.userLimit)
	}
}

func (t *Throttle) check(c *gin.Context, key string, limit int) {
	t.mu.Lock()
	now := time.Now()
	cutoff := now.Add(-t.window)

	stamps := t.windows[key]
	kept := stamps[:0]
	for _, ts := range stamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= limit {
		// A zero limit blocks the caller outright; there is no oldest
		// entry to age out, so the whole window applies.
		retryAfter := t.window
		if len(kept) > 0 {
			retryAfter = kept[0].Add(t.window).Sub(now)
		}
		t.windows[key] = kept
		t.mu.Unlock()

		c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Request was throttled."})
		c.Abort()
		return
	}

	t.windows[key] = append(kept, now)
	t.mu.Unlock()
	c.Next()
}
