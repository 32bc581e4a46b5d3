package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/tracklight/timesheet-backend-go/internal/handler/http/middleware"
	"github.com/tracklight/timesheet-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	timesheetHandler TimesheetHandler,
	approvalHandler ApprovalHandler,
	adminHandler AdminHandler,
	insightHandler InsightHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timesheet-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/timesheets", func(r chi.Router) {
				r.Get("/my", timesheetHandler.MySubmissions)
				r.Post("/my", timesheetHandler.SubmitDay)
			})

			// Manager only
			r.Route("/approvals", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Get("/team", approvalHandler.TeamSubmissions)
				r.Post("/decide", approvalHandler.Decide)
			})

			// Admin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Route("/users", func(r chi.Router) {
					r.Get("/", adminHandler.ListUsers)
					r.Post("/", adminHandler.CreateUser)
					r.Put("/{id}", adminHandler.UpdateUser)
					r.Delete("/{id}", adminHandler.DeleteUser)
					r.Post("/{id}/reset-password", adminHandler.ResetPassword)
				})

				r.Route("/projects", func(r chi.Router) {
					r.Get("/", adminHandler.ListProjects)
					r.Post("/", adminHandler.CreateProject)
					r.Put("/{id}", adminHandler.UpdateProject)
					r.Delete("/{id}", adminHandler.DeleteProject)
				})

				r.Route("/activities", func(r chi.Router) {
					r.Get("/", adminHandler.ListActivities)
					r.Post("/", adminHandler.CreateActivity)
					r.Put("/{id}", adminHandler.UpdateActivity)
					r.Delete("/{id}", adminHandler.DeleteActivity)
				})

				r.Route("/entries", func(r chi.Router) {
					r.Get("/", adminHandler.ListEntries)
					r.Get("/export", adminHandler.ExportEntries)
				})

				r.Route("/insights", func(r chi.Router) {
					r.Post("/summary", insightHandler.Summary)
					r.Post("/cost-estimate", insightHandler.CostEstimate)
					r.Post("/ask", insightHandler.Ask)
				})

				r.Route("/environment", func(r chi.Router) {
					r.Get("/", adminHandler.GetEnvironment)
					r.Put("/", adminHandler.SwitchEnvironment)
					r.Post("/reset", adminHandler.ResetStaging)
				})
			})
		})
	})
	return r
}
