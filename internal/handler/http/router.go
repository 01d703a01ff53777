package http

import (
	"log/slog"
	"os"

	"github.com/fc-hr/worklog-backend-go/internal/handler/http/middleware"
	"github.com/fc-hr/worklog-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	worklogHandler WorklogHandler,
	userHandler UserHandler,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "worklog-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	// Requires authentication
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
		r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

		r.Route("/raw-log", func(r chi.Router) {
			r.Get("/stats", worklogHandler.GetWorkStats)
			r.Get("/{year}/{month}/{day}", worklogHandler.GetByDate)

			// HR only
			r.Group(func(r chi.Router) {
				r.Use(middleware.HROnly)
				r.Post("/edit-clock-in", worklogHandler.EditClockIn)
				r.Post("/edit-clock-out", worklogHandler.EditClockOut)
			})
		})

		// HR only
		r.Route("/user", func(r chi.Router) {
			r.Use(middleware.HROnly)
			r.Get("/", userHandler.List)
			r.Post("/", userHandler.Create)
			r.Get("/employee/{employeeId}", userHandler.GetByEmployeeID)
			r.Get("/{id}", userHandler.Get)
			r.Delete("/{id}", userHandler.Delete)
		})
	})

	return r
}
