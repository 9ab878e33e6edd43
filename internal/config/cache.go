package config

import (
    "strconv"
    "strings"
    "time"
)

// CacheConfig defines settings for the catalog response cache.  A listing
// is a function of the route, the query string and, for date-relative
// filters such as "today", the current day; DayParams names the query
// parameters of that last kind and their keys are scoped to the day.
// Entries still live at most TTL, so keep it short.  When Enabled is false
// or no Redis client is configured, caching is disabled.  Responses larger
// than MaxBodyBytes are served but not stored.
type CacheConfig struct {
    Enabled      bool
    Methods      map[string]bool
    TTL          time.Duration
    DayParams    []string
    Prefix       string
    MaxBodyBytes int
}

// LoadCacheConfig reads environment variables to build a CacheConfig.  Defaults
// are used when variables are not set.  All methods are upper-cased.
func LoadCacheConfig() CacheConfig {
    return CacheConfig{
        Enabled:      envBool("CACHE_ENABLED", true),
        Methods:      parseMethods(envStr("CACHE_METHODS", "GET")),
        TTL:          parseDur(envStr("CACHE_TTL", "5m")),
        DayParams:    parseList(envStr("CACHE_DAY_PARAMS", "date")),
        Prefix:       envStr("CACHE_PREFIX", "popcorngo:cache"),
        MaxBodyBytes: atoi(envStr("CACHE_MAX_BODY_BYTES", "1048576")),
    }
}

func parseList(s string) []string {
    var out []string
    for _, p := range strings.Split(s, ",") {
        if p = strings.TrimSpace(p); p != "" {
            out = append(out, p)
        }
    }
    return out
}

func parseMethods(s string) map[string]bool {
    m := map[string]bool{}
    for _, p := range strings.Split(s, ",") {
        p = strings.TrimSpace(strings.ToUpper(p))
        if p != "" {
            m[p] = true
        }
    }
    return m
}

func atoi(s string) int {
    i, _ := strconv.Atoi(s)
    return i
}

func parseDur(s string) time.Duration {
    d, err := time.ParseDuration(s)
    if err != nil {
        return time.Second
    }
    return d
}