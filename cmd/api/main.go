package main

import (
	"fmt"
	"net/http"

	"github.com/payadjust/payadjust-backend-go/internal/config"
	appHTTP "github.com/payadjust/payadjust-backend-go/internal/handler/http"
	"github.com/payadjust/payadjust-backend-go/internal/pkg/database"
	"github.com/payadjust/payadjust-backend-go/internal/pkg/jwt"
	"github.com/payadjust/payadjust-backend-go/internal/pkg/oauth"
	"github.com/payadjust/payadjust-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/payadjust/payadjust-backend-go/internal/service/auth"
	employeeService "github.com/payadjust/payadjust-backend-go/internal/service/employee"
	organizationService "github.com/payadjust/payadjust-backend-go/internal/service/organization"
	paymentService "github.com/payadjust/payadjust-backend-go/internal/service/payment"
	payrollService "github.com/payadjust/payadjust-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	orgRepo := postgresql.NewOrganizationRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	calculator := payrollService.NewCalculator(payrollService.UKTaxYear2024())

	authSvc := serviceAuth.NewAuthService(db, userRepo, JWTService, GoogleService)
	orgSvc := organizationService.NewOrganizationService(db, orgRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, orgRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, employeeRepo, orgRepo, calculator)
	payslipSvc := payrollService.NewPayslipService(db, payrollRepo, employeeRepo, orgRepo, calculator)
	paymentSvc := paymentService.NewPaymentService(db, payrollRepo, employeeRepo, orgRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc, GoogleService, cfg.App.FrontendURL)
	organizationHandler := appHTTP.NewOrganizationHandler(orgSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	payslipHandler := appHTTP.NewPayslipHandler(payslipSvc)
	paymentHandler := appHTTP.NewPaymentHandler(paymentSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		organizationHandler,
		employeeHandler,
		payrollHandler,
		payslipHandler,
		paymentHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
