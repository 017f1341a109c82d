package handler

import (
	"net/http"

	"github.com/msomdec/job-portal/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux. A nil limiter
// leaves the registration endpoint unthrottled.
func RegisterRoutes(mux *http.ServeMux, db Pinger, users *service.UsersManager, limiter *service.RateLimiter) {
	usersHandler := NewUsersHandler(users)

	var register http.Handler = http.HandlerFunc(usersHandler.HandleRegister)
	if limiter != nil {
		register = RateLimit(limiter, register)
	}

	mux.Handle("GET /healthz", HandleHealthz(db))
	mux.Handle("POST /api/users/register", register)
}
