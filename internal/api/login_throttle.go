package api

import (
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	loginFailureLimit  = 10
	loginFailureWindow = 15 * time.Minute
)

// loginThrottle tracks recent failed login attempts per client so that
// repeated bad credentials back off with 429 instead of hammering bcrypt.
type loginThrottle struct {
	mu       sync.Mutex
	failures map[string][]time.Time
}

func newLoginThrottle() *loginThrottle {
	return &loginThrottle{failures: make(map[string][]time.Time)}
}

func (t *loginThrottle) blocked(key string, now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.recentLocked(key, now)) >= loginFailureLimit
}

func (t *loginThrottle) recordFailure(key string, now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failures[key] = append(t.recentLocked(key, now), now)
}

func (t *loginThrottle) clear(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.failures, key)
}

// recentLocked drops entries older than the window and stores the
// compacted slice back. Callers must hold the mutex.
func (t *loginThrottle) recentLocked(key string, now time.Time) []time.Time {
	cutoff := now.Add(-loginFailureWindow)
	recent := t.failures[key][:0]
	for _, at := range t.failures[key] {
		if at.After(cutoff) {
			recent = append(recent, at)
		}
	}
	if len(recent) == 0 {
		delete(t.failures, key)
		return nil
	}
	t.failures[key] = recent
	return recent
}

func throttleKey(c *fiber.Ctx, email string) string {
	ip := strings.TrimSpace(c.IP())
	if ip == "" {
		ip = "unknown"
	}
	return ip + "|" + email
}
