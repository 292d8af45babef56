package http

import (
	"log/slog"
	"os"

	"github.com/crosslog/dispatch-backend-go/internal/handler/http/middleware"
	"github.com/crosslog/dispatch-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	catalogHandler CatalogHandler,
	rosterHandler RosterHandler,
	dutyHandler DutyHandler,
	documentHandler DocumentHandler,
	notificationHandler NotificationHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "dispatch-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
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

	r.Route("/api/v1", func(r chi.Router) {

		// SSE stream authenticates with its own short-lived token because
		// EventSource cannot send an Authorization header.
		r.Get("/notifications/stream", notificationHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", catalogHandler.ListProjects)
				r.Post("/", catalogHandler.CreateProject)
				r.Get("/{id}", catalogHandler.GetProject)
				r.Put("/{id}", catalogHandler.UpdateProject)
				r.Delete("/{id}", catalogHandler.DeleteProject)
			})

			r.Route("/drivers", func(r chi.Router) {
				r.Get("/", catalogHandler.ListDrivers)
				r.Post("/", catalogHandler.CreateDriver)
				r.Get("/{id}", catalogHandler.GetDriver)
			})

			r.Route("/roster/{year}/{month}", func(r chi.Router) {
				r.Get("/", rosterHandler.MonthGrid)
				r.Post("/assignments", rosterHandler.Assign)
				r.Delete("/assignments", rosterHandler.Unassign)
				r.Put("/assignments/status", rosterHandler.SetExceptionStatus)
				r.Put("/required", rosterHandler.SetRequired)
				r.Get("/reconciliation", rosterHandler.Reconciliation)
				r.Get("/hours/{driverID}", rosterHandler.TotalHours)
				r.Post("/confirm-shift", rosterHandler.ConfirmShift)
				r.Post("/confirm-result", rosterHandler.ConfirmResult)
				r.Post("/unconfirm", rosterHandler.Unconfirm)
			})

			r.Route("/duty", func(r chi.Router) {
				r.Get("/status", dutyHandler.CompanyStatus)

				// Driver-token actions
				r.Group(func(r chi.Router) {
					r.Use(middleware.DriverRequired)
					r.Put("/window", dutyHandler.SetWindow)
					r.Post("/clock-in", dutyHandler.ClockIn)
					r.Post("/break/start", dutyHandler.StartBreak)
					r.Post("/break/end", dutyHandler.EndBreak)
					r.Post("/clock-out", dutyHandler.ClockOut)
				})
			})

			r.Get("/documents/{year}/{month}", documentHandler.ListPeriod)

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationHandler.List)
				r.Put("/read", notificationHandler.MarkAsRead)
				r.Get("/sse-token", notificationHandler.GetSSEToken)
			})
		})
	})

	return r
}
