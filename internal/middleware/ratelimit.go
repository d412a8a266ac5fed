package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimit enforces a per-client-IP request budget using token buckets.
// Limiters for idle clients are dropped after an hour to bound memory.
func RateLimit(limit int, per time.Duration) func(http.Handler) http.Handler {
	if limit <= 0 {
		limit = 1
	}
	var mu sync.Mutex
	type entry struct {
		limiter  *rate.Limiter
		lastSeen time.Time
	}
	limiters := make(map[string]*entry)
	every := rate.Every(per / time.Duration(limit))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIPForRateLimit(r)
			now := time.Now()
			mu.Lock()
			e, ok := limiters[ip]
			if !ok {
				e = &entry{limiter: rate.NewLimiter(every, limit)}
				limiters[ip] = e
			}
			e.lastSeen = now
			if len(limiters) > 1024 {
				for key, stale := range limiters {
					if now.Sub(stale.lastSeen) > time.Hour {
						delete(limiters, key)
					}
				}
			}
			allowed := e.limiter.Allow()
			mu.Unlock()
			if !allowed {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIPForRateLimit(r *http.Request) string {
	if xf := r.Header.Get("X-Forwarded-For"); xf != "" {
		for _, part := range strings.Split(xf, ",") {
			ip := strings.TrimSpace(part)
			if ip == "" {
				continue
			}
			if net.ParseIP(ip) != nil {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		if net.ParseIP(host) != nil {
			return host
		}
	} else if net.ParseIP(r.RemoteAddr) != nil {
		return r.RemoteAddr
	}

	return r.RemoteAddr
}
