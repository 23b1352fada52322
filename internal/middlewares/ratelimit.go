package middlewares

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/people-manager/internal/logger"
)

// RateLimitMiddleware returns a middleware that caps requests per client IP
// using a fixed window counter in Redis. When Redis is unreachable the
// middleware fails open: the request proceeds and the error is logged.
func RateLimitMiddleware(client *redis.Client, limit int64, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := fmt.Sprintf("ratelimit:%s:%s", r.URL.Path, ip)

			count, err := client.Incr(ctx, key).Result()
			if err != nil {
				logger.Log.Errorw("rate limiter unavailable, allowing request", "error", err)
				next.ServeHTTP(w, r)
				return
			}
			// NX keeps the running window on repeat hits and gives a TTL to
			// any counter left without one by an earlier Expire failure.
			if err := client.ExpireNX(ctx, key, window).Err(); err != nil {
				logger.Log.Errorw("failed to set rate limit window", "key", key, "error", err)
			}

			if count > limit {
				logger.Log.Infow("rate limit exceeded", "ip", ip, "path", r.URL.Path, "count", count)
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
