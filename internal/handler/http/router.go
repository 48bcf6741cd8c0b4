package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/payadjust/payadjust-backend-go/internal/handler/http/middleware"
	"github.com/payadjust/payadjust-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	organizationHandler OrganizationHandler,
	employeeHandler EmployeeHandler,
	payrollHandler PayrollHandler,
	payslipHandler PayslipHandler,
	paymentHandler PaymentHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payadjust"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", authHandler.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", authHandler.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/organizations", func(r chi.Router) {
				r.Get("/", organizationHandler.List)
				r.Post("/", organizationHandler.Create)

				r.Route("/{orgID}", func(r chi.Router) {
					r.Get("/members", organizationHandler.ListMembers)
					r.Post("/members", organizationHandler.AddMember)

					r.Route("/employees", func(r chi.Router) {
						r.Get("/", employeeHandler.List)
						r.Put("/", employeeHandler.Upsert)
						r.Get("/{userID}", employeeHandler.Get)
						r.Post("/{userID}/deactivate", employeeHandler.Deactivate)
						r.Post("/{userID}/reactivate", employeeHandler.Reactivate)
					})

					r.Route("/payroll", func(r chi.Router) {
						r.Route("/periods", func(r chi.Router) {
							r.Get("/", payrollHandler.ListPeriods)
							r.Post("/", payrollHandler.CreatePeriod)

							r.Route("/{periodID}", func(r chi.Router) {
								r.Get("/", payrollHandler.GetPeriod)
								r.Delete("/", payrollHandler.DeletePeriod)
								r.Put("/status", payrollHandler.UpdatePeriodStatus)
								r.Post("/revert", payrollHandler.RevertPeriod)
								r.Post("/payslips", payrollHandler.GeneratePayslips)
								r.Post("/payslips/{payslipID}/delete", payrollHandler.DeletePayslip)
								r.Post("/employees/{employeeID}/regenerate", payrollHandler.RegeneratePayslip)
								r.Post("/bonuses", payrollHandler.AddBonusToAll)
							})
						})

						r.Route("/payslips/{payslipID}/bonuses", func(r chi.Router) {
							r.Post("/", payrollHandler.AddBonus)
						})

						r.Route("/bonuses/{bonusID}", func(r chi.Router) {
							r.Put("/", payrollHandler.UpdateBonus)
							r.Delete("/", payrollHandler.DeleteBonus)
						})
					})

					r.Route("/payments", func(r chi.Router) {
						r.Get("/", paymentHandler.ListPeriods)
						r.Get("/stats", paymentHandler.Stats)

						r.Route("/{periodID}", func(r chi.Router) {
							r.Get("/", paymentHandler.GetDetails)
							r.Get("/export/csv", paymentHandler.ExportCSV)
							r.Get("/export/bacs", paymentHandler.ExportBACS)
							r.Post("/processing", paymentHandler.MarkProcessing)
							r.Post("/processed", paymentHandler.MarkProcessed)
						})
					})

					r.Route("/me", func(r chi.Router) {
						r.Get("/details", employeeHandler.MyDetails)
						r.Route("/payslips", func(r chi.Router) {
							r.Get("/", payslipHandler.ListMyPayslips)
							r.Get("/current", payslipHandler.CurrentPayslip)
							r.Get("/{payslipID}/can-adjust", payslipHandler.CanAdjustPension)
							r.Post("/{payslipID}/adjust-pension", payslipHandler.AdjustPension)
						})
					})
				})
			})
		})
	})
	return r
}
