package middleware

import (
	"net"
	"net/http"

	rl "github.com/rogerio-castellano/ecommerce-admin/internal/http/rate_limiter"
)

// RateLimit rejects requests from clients that exceed their per-IP token
// bucket with 429.
func RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !rl.GetVisitor(ip).Allow() {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
