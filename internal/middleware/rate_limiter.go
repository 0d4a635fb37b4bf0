package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/Fercho12s/Rutas/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const purgeInterval = 5 * time.Minute

// windowEntry tracks request counts per IP within a sliding window.
type windowEntry struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

// ipLimiter is a per-IP sliding-window counter. Each limiter owns its map and
// purges expired IPs periodically so abandoned clients do not leak memory.
type ipLimiter struct {
	limit   int
	window  time.Duration
	message string

	mu      sync.Mutex
	entries map[string]*windowEntry
}

func newIPLimiter(limit int, window time.Duration, message string) *ipLimiter {
	l := &ipLimiter{
		limit:   limit,
		window:  window,
		message: message,
		entries: make(map[string]*windowEntry),
	}
	go l.purgeLoop()
	return l
}

func (l *ipLimiter) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		l.mu.Lock()
		entry, ok := l.entries[ip]
		if !ok {
			entry = &windowEntry{}
			l.entries[ip] = entry
		}
		l.mu.Unlock()

		entry.mu.Lock()
		defer entry.mu.Unlock()

		now := time.Now()
		if now.After(entry.windowEnd) {
			entry.count = 0
			entry.windowEnd = now.Add(l.window)
		}

		entry.count++
		if entry.count > l.limit {
			c.Header("Retry-After", entry.windowEnd.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.message))
			return
		}
		c.Next()
	}
}

func (l *ipLimiter) purgeLoop() {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		purged := 0

		l.mu.Lock()
		for ip, entry := range l.entries {
			entry.mu.Lock()
			if now.After(entry.windowEnd) {
				delete(l.entries, ip)
				purged++
			}
			entry.mu.Unlock()
		}
		remaining := len(l.entries)
		l.mu.Unlock()

		if purged > 0 {
			log.Debug().
				Int("entries_purged", purged).
				Int("entries_remaining", remaining).
				Msg("rate limiter map purged")
		}
	}
}

// RateLimiter returns the general-purpose per-IP limiter for the whole API.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return newIPLimiter(limit, window,
		"Demasiadas solicitudes. Intente nuevamente en un momento.").handler()
}

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return newIPLimiter(20, time.Minute,
		"Demasiados intentos de login. Intente en 1 minuto.").handler()
}

// ContactRateLimiter throttles the public contact form to 5 messages per
// minute per IP.
func ContactRateLimiter() gin.HandlerFunc {
	return newIPLimiter(5, time.Minute,
		"Demasiados mensajes enviados. Intente en unos minutos.").handler()
}
