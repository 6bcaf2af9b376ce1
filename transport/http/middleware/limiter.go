package middleware

import (
	"net/http"
	"strconv"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"safar/config"
	"safar/shared/constant"
	"safar/transport/http/response"
)

const rateLimitKeyPrefix = "limiter:"

type Limiter interface {
	RateLimit(next http.Handler) http.Handler
}

type limiterImpl struct {
	config *config.Config
	client *goRedis.Client
}

func NewLimiter(config *config.Config, client *goRedis.Client) Limiter {
	return &limiterImpl{
		config: config,
		client: client,
	}
}

// RateLimit caps requests per client IP over a fixed window, counted in
// Redis. Disabled by default; counter failures fail open.
func (l *limiterImpl) RateLimit(next http.Handler) http.Handler {
	if !l.config.App.RateLimiter.Enable {
		return next
	}

	maxReqs := l.config.App.RateLimiter.MaxRequests
	windowSecs := l.config.App.RateLimiter.WindowSeconds

	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		key := rateLimitKeyPrefix + clientIP(request)

		count, err := l.client.Incr(ctx, key).Result()
		if err != nil {
			log.Warn().Err(err).Msg("rate limit counter unavailable, letting request through")

			next.ServeHTTP(writer, request)

			return
		}

		if count == 1 {
			if err := l.client.Expire(ctx, key, time.Duration(windowSecs)*time.Second).Err(); err != nil {
				log.Warn().Err(err).Msg("failed to set rate limit window expiry")
			}
		}

		if count > int64(maxReqs) {
			response.WithRequestLimitExceeded(writer)

			return
		}

		writer.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
		writer.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-int(count))))
		writer.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

		next.ServeHTTP(writer, request)
	})
}
