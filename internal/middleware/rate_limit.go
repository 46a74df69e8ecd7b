package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/db"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/logger"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 3 * time.Minute

type IPRateLimiter struct {
	ips       sync.Map
	mu        sync.Mutex
	r         rate.Limit
	b         int
	lastSweep time.Time
}

type client struct {
	limiter *rate.Limiter
	// lastSeen is unix nanos; written on the lock-free path.
	lastSeen atomic.Int64
}

func (c *client) touch(now time.Time) {
	c.lastSeen.Store(now.UnixNano())
}

func (c *client) idleSince(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, c.lastSeen.Load()))
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{r: r, b: b, lastSweep: time.Now()}
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	now := time.Now()
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.touch(now)
		return c.limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// Double check
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.touch(now)
		return c.limiter
	}

	if now.Sub(i.lastSweep) > time.Minute {
		i.sweep(now)
	}

	c := &client{limiter: rate.NewLimiter(i.r, i.b)}
	c.touch(now)
	i.ips.Store(ip, c)
	return c.limiter
}

// sweep drops idle clients. Called with mu held.
func (i *IPRateLimiter) sweep(now time.Time) {
	i.lastSweep = now
	i.ips.Range(func(key, value any) bool {
		if value.(*client).idleSince(now) > limiterIdleTTL {
			i.ips.Delete(key)
		}
		return true
	})
}

func (i *IPRateLimiter) Allow(ip string) bool {
	return i.getLimiter(ip).Allow()
}

// RateLimiter admits at most limit requests per window for each client IP.
// With redis it counts in a shared fixed window; otherwise (or when redis
// errors) it falls back to an in-process token bucket.
type RateLimiter struct {
	name   string
	limit  int
	window time.Duration
	rdb    *redis.Client
	prefix string
	local  *IPRateLimiter
}

func NewRateLimiter(name string, limit int, window time.Duration, rdb *redis.Client, prefix string) *RateLimiter {
	if limit <= 0 {
		limit = 1
	}
	return &RateLimiter{
		name:   name,
		limit:  limit,
		window: window,
		rdb:    rdb,
		prefix: prefix,
		local:  NewIPRateLimiter(rate.Every(window/time.Duration(limit)), limit),
	}
}

func (l *RateLimiter) Allow(ctx context.Context, ip string) bool {
	if l.rdb != nil {
		allowed, err := l.allowByRedis(ctx, ip)
		if err == nil {
			return allowed
		}
		logger.L.Warn("redis rate limit failed, using local limiter", zap.String("limiter", l.name), zap.Error(err))
	}
	return l.local.Allow(ip)
}

func (l *RateLimiter) allowByRedis(ctx context.Context, ip string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	secs := int64(l.window / time.Second)
	if secs <= 0 {
		secs = 1
	}
	window := time.Now().Unix() / secs
	key := db.RedisKey(l.prefix, "rate_limit", l.name, ip, strconv.FormatInt(window, 10))

	pipe := l.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return incr.Val() <= int64(l.limit), nil
}

// Handler returns the gin middleware. enabled is evaluated per request.
func (l *RateLimiter) Handler(enabled func() bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if enabled != nil && !enabled() {
			c.Next()
			return
		}
		if !l.Allow(c.Request.Context(), c.ClientIP()) {
			httpx.WriteError(c, http.StatusTooManyRequests, "Too many requests")
			c.Abort()
			return
		}
		c.Next()
	}
}
