package rest

import (
	"net/http"

	"github.com/heartmarshall/bud-backend/internal/config"
	"github.com/heartmarshall/bud-backend/internal/transport/middleware"
)

// Routes bundles the handlers and per-route middleware mounted by NewRouter.
type Routes struct {
	Health  *HealthHandler
	Auth    *AuthHandler
	Books   *BookHandler
	Reading *ReadingHandler

	// Limiter throttles the unauthenticated auth endpoints. Nil disables it.
	Limiter *middleware.RateLimiter
	Limits  config.RateLimitConfig

	// Loaders installs per-request batch loaders on reading routes. Optional.
	Loaders middleware.Middleware
}

// NewRouter mounts every endpoint. Request-wide middleware (recovery,
// logging, CORS, token parsing) is applied by the caller around the result.
func NewRouter(rt Routes) *http.ServeMux {
	mux := http.NewServeMux()

	limit := func(name string, perMinute int) middleware.Middleware {
		if rt.Limiter == nil || !rt.Limits.Enabled {
			return func(h http.Handler) http.Handler { return h }
		}
		return rt.Limiter.Limit(name, perMinute)
	}
	public := func(mw middleware.Middleware, fn http.HandlerFunc) http.Handler {
		return mw(fn)
	}
	private := func(fn http.HandlerFunc) http.Handler {
		return middleware.RequireUser(fn)
	}
	withLoaders := func(fn http.HandlerFunc) http.Handler {
		var h http.Handler = fn
		if rt.Loaders != nil {
			h = rt.Loaders(h)
		}
		return middleware.RequireUser(h)
	}

	mux.HandleFunc("GET /live", rt.Health.Live)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /health", rt.Health.Health)

	registerLimit := limit("register", rt.Limits.Register)
	loginLimit := limit("login", rt.Limits.Login)
	mux.Handle("POST /api/auth/register", public(registerLimit, rt.Auth.Register))
	mux.Handle("POST /api/auth/verify-email", public(registerLimit, rt.Auth.VerifyEmail))
	mux.Handle("POST /api/auth/resend-verification", public(registerLimit, rt.Auth.ResendVerification))
	mux.Handle("POST /api/auth/login", public(loginLimit, rt.Auth.Login))
	mux.Handle("POST /api/auth/google", public(loginLimit, rt.Auth.Google))
	mux.Handle("POST /api/auth/refresh", public(limit("refresh", rt.Limits.Refresh), rt.Auth.Refresh))
	mux.Handle("POST /api/auth/logout", private(rt.Auth.Logout))
	mux.Handle("GET /api/auth/profile", private(rt.Auth.Profile))

	mux.Handle("GET /api/books", private(rt.Books.List))
	mux.Handle("POST /api/books", private(rt.Books.Create))
	mux.Handle("GET /api/books/search-google", private(rt.Books.SearchGoogle))
	mux.Handle("POST /api/books/add-from-google", private(rt.Books.AddFromGoogle))
	mux.Handle("GET /api/books/{id}", private(rt.Books.Get))
	mux.Handle("PUT /api/books/{id}", private(rt.Books.Update))
	mux.Handle("DELETE /api/books/{id}", private(rt.Books.Delete))
	mux.Handle("GET /api/genres", private(rt.Books.Genres))

	mux.Handle("GET /api/reading/progress", withLoaders(rt.Reading.List))
	mux.Handle("GET /api/reading/progress/currently-reading", withLoaders(rt.Reading.CurrentlyReading))
	mux.Handle("GET /api/reading/progress/stats", private(rt.Reading.Stats))
	mux.Handle("GET /api/reading/progress/{id}", withLoaders(rt.Reading.Get))
	mux.Handle("POST /api/reading/progress/start", private(rt.Reading.Start))
	mux.Handle("POST /api/reading/progress/log-session", private(rt.Reading.LogSession))
	mux.Handle("GET /api/reading/sessions", private(rt.Reading.Sessions))

	return mux
}
