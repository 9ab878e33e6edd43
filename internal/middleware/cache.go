package middleware

import (
    "bytes"
    "context"
    "crypto/sha1"
    "encoding/json"
    "fmt"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"
    "github.com/rs/zerolog"

    "github.com/iliyamo/popcorngo/internal/config"
)

// clock gives the day that scopes date-relative listings.
var clock = time.Now

// cachedResponse is what a catalog hit replays. Catalog handlers only
// answer JSON, so the content type is the one header worth keeping.
type cachedResponse struct {
    Status      int    `json:"s"`
    ContentType string `json:"ct"`
    Body        []byte `json:"b"`
}

// bodyRecorder tees the response body into buf until limit bytes; past
// that the response is still sent but marked as overflowed.
type bodyRecorder struct {
    http.ResponseWriter
    status   int
    buf      bytes.Buffer
    limit    int
    overflow bool
}

func (r *bodyRecorder) WriteHeader(code int) {
    r.status = code
    r.ResponseWriter.WriteHeader(code)
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
    if !r.overflow {
        if r.limit > 0 && r.buf.Len()+len(b) > r.limit {
            r.overflow = true
            r.buf.Reset()
        } else {
            r.buf.Write(b)
        }
    }
    return r.ResponseWriter.Write(b)
}

// catalogKey identifies a listing by route and canonical query, so
// parameter order does not split entries. When one of dayParams is set
// to something other than All the key also carries today's date, because
// "today" or "this weekend" move at midnight.
func catalogKey(cfg config.CacheConfig, c echo.Context) string {
    q := c.Request().URL.Query()
    id := c.Path() + "?" + q.Encode()
    for _, p := range cfg.DayParams {
        if v := q.Get(p); v != "" && !strings.EqualFold(v, "All") {
            id += "@" + clock().Format("2006-01-02")
            break
        }
    }
    return fmt.Sprintf("%s:%x", cfg.Prefix, sha1.Sum([]byte(id)))
}

// NewRedisCache memoizes successful catalog responses in Redis for
// cfg.TTL. X-Cache reports HIT, MISS, or BYPASS when the client sent
// Cache-Control: no-cache. Redis failures degrade to uncached responses.
func NewRedisCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil {
        return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
    }
    ttl := cfg.TTL
    if ttl <= 0 {
        ttl = 5 * time.Minute
    }

    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            req := c.Request()
            if !cfg.Methods[req.Method] {
                return next(c)
            }
            res := c.Response()
            if strings.Contains(strings.ToLower(req.Header.Get("Cache-Control")), "no-cache") {
                res.Header().Set("X-Cache", "BYPASS")
                return next(c)
            }

            ctx := req.Context()
            key := catalogKey(cfg, c)
            if bs, err := rdb.Get(ctx, key).Bytes(); err == nil {
                var hit cachedResponse
                if json.Unmarshal(bs, &hit) == nil {
                    res.Header().Set("X-Cache", "HIT")
                    return c.Blob(hit.Status, hit.ContentType, hit.Body)
                }
            }

            rec := &bodyRecorder{ResponseWriter: res.Writer, status: http.StatusOK, limit: cfg.MaxBodyBytes}
            res.Writer = rec
            res.Header().Set("X-Cache", "MISS")
            if err := next(c); err != nil {
                return err
            }
            if rec.status != http.StatusOK || rec.overflow {
                return nil
            }

            payload, err := json.Marshal(cachedResponse{
                Status:      rec.status,
                ContentType: res.Header().Get(echo.HeaderContentType),
                Body:        rec.buf.Bytes(),
            })
            if err == nil {
                err = rdb.SetEx(context.WithoutCancel(ctx), key, payload, ttl).Err()
            }
            if err != nil {
                zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("cache: store failed")
            }
            return nil
        }
    }
}
