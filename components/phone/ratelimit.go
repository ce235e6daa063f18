package phone

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// visitorIdleTTL is how long a client IP may stay silent before its bucket
// is dropped.
const visitorIdleTTL = 3 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitorLimiter keeps one token bucket per client IP. The mask endpoint is
// hit on every keystroke, so limits are per visitor rather than global.
// Idle visitors are swept on access, at most once per idle window.
type visitorLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	limit     rate.Limit
	burst     int
	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func newVisitorLimiter(limit rate.Limit, burst int) *visitorLimiter {
	return &visitorLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		burst:    burst,
		idle:     visitorIdleTTL,
		now:      time.Now,
	}
}

func (v *visitorLimiter) limiter(ip string) *rate.Limiter {
	v.mu.Lock()
	defer v.mu.Unlock()

	now := v.now()
	if now.Sub(v.lastSweep) >= v.idle {
		v.sweep(now)
	}

	entry, ok := v.visitors[ip]
	if !ok {
		entry = &visitor{limiter: rate.NewLimiter(v.limit, v.burst)}
		v.visitors[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

// sweep drops visitors idle for longer than v.idle. Callers hold v.mu.
func (v *visitorLimiter) sweep(now time.Time) {
	for ip, entry := range v.visitors {
		if now.Sub(entry.lastSeen) > v.idle {
			delete(v.visitors, ip)
		}
	}
	v.lastSweep = now
}

func (v *visitorLimiter) size() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.visitors)
}

func (v *visitorLimiter) allow(r *http.Request) bool {
	return v.limiter(clientIP(r)).Allow()
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
