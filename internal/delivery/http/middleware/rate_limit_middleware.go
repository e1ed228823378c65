package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"health-scheduling-api/pkg/jwt"
	"health-scheduling-api/pkg/response"

	"github.com/go-redis/redis_rate/v10"
	"github.com/sirupsen/logrus"
)

// Limiter is satisfied by *redis_rate.Limiter.
type Limiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

type RateLimitMiddleware struct {
	limiter     Limiter
	jwtService  *jwt.JWTService
	log         *logrus.Logger
	anonPerHour int
	userPerHour int
}

func NewRateLimitMiddleware(limiter Limiter, jwtService *jwt.JWTService, log *logrus.Logger, anonPerHour, userPerHour int) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter:     limiter,
		jwtService:  jwtService,
		log:         log,
		anonPerHour: anonPerHour,
		userPerHour: userPerHour,
	}
}

// Handle throttles per user when the request carries a valid access token and
// per client IP otherwise. Limiter failures let the request through.
func (m *RateLimitMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key, perHour := m.identify(r)
		if perHour <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		res, err := m.limiter.Allow(r.Context(), key, redis_rate.PerHour(perHour))
		if err != nil {
			m.log.Warnf("Rate limiter unavailable, allowing request: %+v", err)
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(perHour))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		if res.Allowed == 0 {
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(res.RetryAfter.Seconds()))))
			response.TooManyRequests(w, fmt.Sprintf("Request was throttled. Expected available in %d seconds.", int(math.Ceil(res.RetryAfter.Seconds()))))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *RateLimitMiddleware) identify(r *http.Request) (string, int) {
	if token, ok := bearerToken(r); ok {
		if claims, err := m.jwtService.ValidateTokenOfType(token, jwt.AccessToken); err == nil {
			return "rate_limit:user:" + claims.UserID.String(), m.userPerHour
		}
	}
	return "rate_limit:anon:" + ClientIP(r), m.anonPerHour
}
