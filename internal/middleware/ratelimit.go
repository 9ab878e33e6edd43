package middleware

import (
    "net/http"
    "strconv"
    "strings"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"
    "github.com/rs/zerolog"

    "github.com/iliyamo/popcorngo/internal/config"
)

// takeToken refills the bucket in whole intervals, then takes one token.
// KEYS[1] bucket; ARGV now_ms, capacity, refill_tokens, interval_ms, ttl_ms.
// Returns {allowed, tokens_left, retry_after_ms}.
var takeToken = redis.NewScript(`
local now, cap, refill, every, ttl =
    tonumber(ARGV[1]), tonumber(ARGV[2]), tonumber(ARGV[3]), tonumber(ARGV[4]), tonumber(ARGV[5])
local st = redis.call('HMGET', KEYS[1], 'tokens', 'at')
local tokens, at = tonumber(st[1]), tonumber(st[2])
if tokens == nil or at == nil then
    tokens, at = cap, now
end
local n = math.floor(math.max(0, now - at) / every)
if n > 0 then
    tokens = math.min(cap, tokens + n * refill)
    at = at + n * every
end
local allowed, retry = 0, 0
if tokens > 0 then
    allowed, tokens = 1, tokens - 1
else
    retry = math.max(0, every - (now - at))
end
redis.call('HSET', KEYS[1], 'tokens', tokens, 'at', at)
redis.call('PEXPIRE', KEYS[1], ttl)
return {allowed, tokens, retry}
`)

type bucketState struct {
    allowed   bool
    remaining int64
    retry     time.Duration
}

func take(c echo.Context, cfg config.RateLimitConfig, rdb *redis.Client, key string) (bucketState, error) {
    res, err := takeToken.Run(c.Request().Context(), rdb, []string{key},
        time.Now().UnixMilli(), cfg.Capacity, cfg.RefillTokens,
        cfg.RefillInterval.Milliseconds(), cfg.TTL.Milliseconds(),
    ).Int64Slice()
    if err != nil {
        return bucketState{}, err
    }
    if len(res) != 3 {
        return bucketState{}, redis.Nil
    }
    return bucketState{allowed: res[0] == 1, remaining: res[1], retry: time.Duration(res[2]) * time.Millisecond}, nil
}

// NewTokenBucket limits booking mutations with a token bucket kept in
// Redis. Buckets are keyed by client IP, booking session or both,
// according to cfg.KeyStrategy. A Redis failure lets the request through.
func NewTokenBucket(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil {
        return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
    }

    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            key := bucketKey(cfg, c)
            log := zerolog.Ctx(c.Request().Context())
            st, err := take(c, cfg, rdb, key)
            if err != nil {
                log.Warn().Err(err).Str("key", key).Msg("ratelimit: redis error")
                return next(c)
            }

            h := c.Response().Header()
            h.Set("X-RateLimit-Limit", strconv.Itoa(cfg.Capacity))
            h.Set("X-RateLimit-Remaining", strconv.FormatInt(st.remaining, 10))
            if cfg.Debug {
                h.Set("X-RateLimit-Key", key)
            }
            if st.allowed {
                return next(c)
            }

            secs := int((st.retry + time.Second - 1) / time.Second)
            h.Set("Retry-After", strconv.Itoa(secs))
            log.Debug().Str("key", key).Dur("retry", st.retry).Msg("ratelimit: blocked")
            return c.JSON(http.StatusTooManyRequests, echo.Map{
                "error":       "too_many_requests",
                "message":     "rate limit exceeded",
                "retry_after": secs,
            })
        }
    }
}

// bucketKey names the bucket of the request: "ip", "session", or the
// default "ip_session".
func bucketKey(cfg config.RateLimitConfig, c echo.Context) string {
    ip := c.RealIP()
    if ip == "" {
        ip = "unknown"
    }
    switch strings.ToLower(cfg.KeyStrategy) {
    case "ip":
        return cfg.Prefix + ":ip:" + ip
    case "session":
        return cfg.Prefix + ":session:" + sessionID(c)
    }
    return cfg.Prefix + ":ip:" + ip + ":session:" + sessionID(c)
}
