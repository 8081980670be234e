// Package ratelimiter は認証エンドポイントへのリクエスト頻度を制限します。
package ratelimiter

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Limiter は固定ウィンドウ方式でリクエスト数を制限します。
// 複数のリクエストゴルーチンから共有されるため、ミューテックスで保護します。
type Limiter struct {
	mu        sync.Mutex
	limit     int           // ウィンドウあたりの上限
	interval  time.Duration // ウィンドウの長さ
	count     int
	lastReset time.Time
}

// NewLimiter は新しいLimiterのインスタンスを生成します。
func NewLimiter(limit int, interval time.Duration) *Limiter {
	return &Limiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// Allow は現在のウィンドウに空きがあればカウントを進めてtrueを返します。
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	// interval を過ぎたらカウントリセット
	if now.Sub(l.lastReset) >= l.interval {
		l.count = 0
		l.lastReset = now
	}

	if l.count >= l.limit {
		return false
	}
	l.count++
	return true
}

// Middleware は上限超過時に429を返すGinミドルウェアを返します。
func Middleware(l *Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow() {
			slog.Warn("rate limit exceeded", "path", c.Request.URL.Path, "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
