package router

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"

	"todo-service/internal/handler"
	"todo-service/pkg/middleware"
)

func SetupRoutes(
	r chi.Router,
	h *handler.APIHandler,
	auth *middleware.AuthMiddleware,
	rdb redis.UniversalClient,
) chi.Router {
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/", h.Ping)

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(middleware.RateLimiter(rdb, 100, time.Minute, time.Minute, "global_todo"))

		// ---------------- Public ----------------
		api.Group(func(pub chi.Router) {
			pub.Get("/health", h.Health)
			pub.Post("/users/sign-up", h.HandleSignUp)
			pub.Post("/users/log-in", h.HandleLogIn)
		})

		// ---------------- Authenticated ----------------
		api.Group(func(g chi.Router) {
			g.Use(auth.Require())

			g.Get("/users/me", h.HandleProfile)
			g.Post("/users/email/otp", h.HandleRequestOTP)
			g.Post("/users/email/otp/verify", h.HandleVerifyOTP)

			g.Route("/todos", func(t chi.Router) {
				t.Get("/", h.HandleListTodos)
				t.Post("/", h.HandleCreateTodo)
				t.Get("/{todoID}", h.HandleGetTodo)
				t.Patch("/{todoID}", h.HandleUpdateTodo)
				t.Delete("/{todoID}", h.HandleDeleteTodo)
			})
		})
	})

	return r
}
