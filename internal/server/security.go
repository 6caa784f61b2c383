package server

import (
	"crypto/subtle"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/argguild/epgpbot/internal/logger"
)

// APIKeyMiddleware rejects requests that do not carry the configured key.
// It is mounted on the API routes only; health and metrics stay public.
func APIKeyMiddleware(apiKey string, trustedProxies []string, detector *ActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			providedKey := r.Header.Get(HeaderAPIKey)

			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := clientIP(r, trustedProxies)
				detector.RecordFailedAuth(r, ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// ActivityDetector counts requests and failed logins per client IP over a
// fixed window. It blocks clients above the request limit.
type ActivityDetector struct {
	mu         sync.Mutex
	limit      int
	window     time.Duration
	now        func() time.Time
	failedAuth map[string]int
	requests   map[string]int
	windowFrom time.Time
}

// NewActivityDetector creates a detector allowing limit requests per window
func NewActivityDetector(limit int, window time.Duration) *ActivityDetector {
	return &ActivityDetector{
		limit:      limit,
		window:     window,
		now:        time.Now,
		failedAuth: make(map[string]int),
		requests:   make(map[string]int),
		windowFrom: time.Now(),
	}
}

// RecordFailedAuth counts a failed authentication and alerts once the
// threshold is crossed
func (d *ActivityDetector) RecordFailedAuth(r *http.Request, ip string) {
	d.mu.Lock()
	d.rollWindow()
	d.failedAuth[ip]++
	count := d.failedAuth[ip]
	d.mu.Unlock()

	if count == failedAuthAlertThreshold {
		logger.FromContext(r.Context()).Warn(SecurityAlertFailedAuth, "ip", ip, "count", count)
	}
}

// Allow counts a request and reports whether the client is under the limit
func (d *ActivityDetector) Allow(ip string) (allowed bool, count int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.rollWindow()
	d.requests[ip]++
	count = d.requests[ip]
	return count <= d.limit, count
}

// rollWindow resets the counters once the window has passed.
// Caller must hold the mutex.
func (d *ActivityDetector) rollWindow() {
	if now := d.now(); now.Sub(d.windowFrom) > d.window {
		d.requests = make(map[string]int)
		d.failedAuth = make(map[string]int)
		d.windowFrom = now
	}
}

// RateLimitMiddleware rejects clients above the detector's request limit
func RateLimitMiddleware(trustedProxies []string, detector *ActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r, trustedProxies)

			allowed, count := detector.Allow(ip)
			if !allowed {
				// one alert per hundred rejected requests
				if (count-detector.limit)%100 == 1 {
					logger.FromContext(r.Context()).Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", count)
				}
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP returns the remote address, or the last X-Forwarded-For hop when
// the request came through a trusted proxy
func clientIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	for _, proxy := range trustedProxies {
		if proxy != remoteIP {
			continue
		}
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			hops := strings.Split(forwarded, ",")
			return strings.TrimSpace(hops[len(hops)-1])
		}
		break
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses. The API only
// serves JSON, so framing and caching are denied outright.
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueDeny)
			h.Set(HeaderReferrerPolicy, HeaderValueReferrerNoReferrer)
			h.Set(HeaderCacheControl, HeaderValueCacheControlNoStore)

			next.ServeHTTP(w, r)
		})
	}
}
