package http

import (
	"log/slog"
	"os"

	"github.com/easycodingbd/hazira-backend-go/internal/handler/http/middleware"
	"github.com/easycodingbd/hazira-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// Handlers bundles the HTTP handlers wired by NewRouter.
type Handlers struct {
	Company      CompanyHandler
	Department   DepartmentHandler
	Employee     EmployeeHandler
	Attendance   AttendanceHandler
	Leave        LeaveHandler
	Holiday      HolidayHandler
	Payroll      PayrollHandler
	Subscription SubscriptionHandler
}

func NewRouter(jwtService jwt.Service, env string, devicePushKey string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hazira"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
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

		r.Get("/plans", h.Subscription.Plans)

		// Terminals authenticate with a shared key, not a user token.
		r.Group(func(r chi.Router) {
			r.Use(middleware.DeviceKeyRequired(devicePushKey))
			r.Post("/device/zkteco/push/{companyID}", h.Attendance.Push)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Post("/companies", h.Company.Create)

			// Requires a company bound to the token
			r.Group(func(r chi.Router) {
				r.Use(middleware.CompanyRequired)

				r.Get("/companies/my", h.Company.Me)

				r.Route("/departments", func(r chi.Router) {
					r.Post("/", h.Department.Create)
					r.Get("/", h.Department.List)
					r.Get("/{id}", h.Department.Get)
					r.Put("/{id}", h.Department.Update)
					r.Delete("/{id}", h.Department.Delete)
				})

				r.Route("/employees", func(r chi.Router) {
					r.Post("/", h.Employee.Create)
					r.Get("/", h.Employee.List)
					r.Get("/{id}", h.Employee.Get)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Deactivate)
				})

				r.Route("/attendance", func(r chi.Router) {
					r.Post("/sync", h.Attendance.Sync)
					r.Post("/punch", h.Attendance.ManualPunch)
					r.Get("/summary", h.Attendance.Summary)
					r.Get("/day", h.Attendance.Day)
					r.Put("/day", h.Attendance.CorrectDay)
					r.Delete("/day", h.Attendance.DeleteDay)
				})

				r.Route("/leaves", func(r chi.Router) {
					r.Post("/", h.Leave.Create)
					r.Get("/", h.Leave.List)
					r.Post("/{id}/approve", h.Leave.Approve)
					r.Post("/{id}/reject", h.Leave.Reject)
				})

				r.Route("/holidays", func(r chi.Router) {
					r.Post("/", h.Holiday.Create)
					r.Get("/", h.Holiday.List)
					r.Delete("/{id}", h.Holiday.Delete)
				})

				r.Route("/payroll", func(r chi.Router) {
					r.Post("/salary", h.Payroll.SetSalary)
					r.Post("/generate", h.Payroll.Generate)
					r.Get("/", h.Payroll.List)
				})

				r.Route("/subscription", func(r chi.Router) {
					r.Post("/subscribe", h.Subscription.Subscribe)
					r.Post("/execute", h.Subscription.Execute)
					r.Get("/active", h.Subscription.Active)
				})
			})
		})
	})
	return r
}
