package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestIPRateLimiter_PerIP(t *testing.T) {
	l := NewIPRateLimiter(rate.Every(time.Minute), 1)
	assert.True(t, l.Allow("1.1.1.1"))
	assert.False(t, l.Allow("1.1.1.1"))
	assert.True(t, l.Allow("2.2.2.2"))
}

func TestIPRateLimiter_SweepDropsIdleClients(t *testing.T) {
	l := NewIPRateLimiter(rate.Every(time.Minute), 1)
	l.Allow("1.1.1.1")

	v, _ := l.ips.Load("1.1.1.1")
	v.(*client).touch(time.Now().Add(-time.Hour))

	l.mu.Lock()
	l.sweep(time.Now())
	l.mu.Unlock()

	_, ok := l.ips.Load("1.1.1.1")
	assert.False(t, ok)
}

func TestIPRateLimiter_ConcurrentAllowDuringSweep(t *testing.T) {
	l := NewIPRateLimiter(rate.Every(time.Millisecond), 1000)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for n := 0; n < 200; n++ {
				l.Allow("1.1.1.1")
				// every new IP takes the slow path; a zero lastSweep forces a sweep there
				l.mu.Lock()
				l.lastSweep = time.Time{}
				l.mu.Unlock()
				l.Allow("10.0." + strconv.Itoa(g) + "." + strconv.Itoa(n))
			}
		}(g)
	}
	wg.Wait()

	_, ok := l.ips.Load("1.1.1.1")
	assert.True(t, ok, "recently seen client survives sweeps")
}

func TestRateLimiter_LocalFallback(t *testing.T) {
	l := NewRateLimiter("test", 2, time.Minute, nil, "")
	ctx := context.Background()
	assert.True(t, l.Allow(ctx, "9.9.9.9"))
	assert.True(t, l.Allow(ctx, "9.9.9.9"))
	assert.False(t, l.Allow(ctx, "9.9.9.9"))
}

func TestRateLimiter_Handler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	enabled := true
	l := NewRateLimiter("handler", 1, time.Minute, nil, "")

	r := gin.New()
	r.GET("/x", l.Handler(func() bool { return enabled }), func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func() int {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do())
	assert.Equal(t, http.StatusTooManyRequests, do())

	enabled = false
	assert.Equal(t, http.StatusOK, do())
}
