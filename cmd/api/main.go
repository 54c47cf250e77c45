package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/timerecon-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/timerecon-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/repository/postgresql"
	reconService "github.com/cmlabs-hris/timerecon-backend-go/internal/service/recon"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.Database)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "timerecon"),
	)

	employeeRepo := postgresql.NewEmployeeRepository(db)
	rosterRepo := postgresql.NewRosterRepository(db)
	templateRepo := postgresql.NewTemplateRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	sickLeaveRepo := postgresql.NewSickLeaveRepository(db)
	absenceRepo := postgresql.NewAbsenceRepository(db)
	clockEventRepo := postgresql.NewClockEventRepository(db)
	permittedRepo := postgresql.NewPermittedHoursRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	reconSvc := reconService.NewReconciliationService(
		employeeRepo,
		rosterRepo,
		templateRepo,
		holidayRepo,
		sickLeaveRepo,
		absenceRepo,
		clockEventRepo,
		permittedRepo,
		cfg.Recon,
		logger,
	)

	reconHandler := appHTTP.NewReconHandler(reconSvc)

	router := appHTTP.NewRouter(JWTService, reconHandler, cfg.App.Env)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
