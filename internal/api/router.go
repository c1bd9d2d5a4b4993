package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/isdelr/staffdesk-be/internal/api/handlers"
	"github.com/isdelr/staffdesk-be/internal/auth"
	"github.com/isdelr/staffdesk-be/internal/services"
	"github.com/isdelr/staffdesk-be/internal/validate"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(gate *auth.Gate, codec *auth.Codec, userService services.UserServiceProvider, employeeService services.EmployeeServiceProvider, corsOrigin string) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService, codec)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	metaHandler := handlers.NewMetaHandler()

	r.With(gate.Optional).Get("/", metaHandler.Index)
	r.With(gate.Optional).Get("/api/health", metaHandler.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.With(validate.Check(validate.UserSignup)).Post("/signup", userHandler.Signup)
			r.With(validate.Check(validate.UserLogin)).Post("/login", userHandler.Login)
		})

		r.Route("/emp", func(r chi.Router) {
			r.Use(gate.Require)

			r.Get("/employees", employeeHandler.GetAll)
			r.Get("/employees/search", employeeHandler.Search)
			r.With(validate.Check(validate.EmployeeCreate)).Post("/employees", employeeHandler.Create)
			r.With(validate.Check(validate.EmployeeIDQuery)).Delete("/employees", employeeHandler.Delete)

			r.Route("/employees/{eid}", func(r chi.Router) {
				r.Use(validate.Check(validate.EmployeeIDParam))
				r.Get("/", employeeHandler.Get)
				r.With(validate.Check(validate.EmployeeUpdate)).Put("/", employeeHandler.Update)
			})
		})
	})

	return r
}
