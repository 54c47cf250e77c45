package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/cmlabs-hris/timerecon-backend-go/internal/config"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/recon"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/repository/postgresql"
	reconService "github.com/cmlabs-hris/timerecon-backend-go/internal/service/recon"
	"github.com/spf13/cobra"
)

// reconcile runs the reconciliation engine from the command line and
// prints the report as JSON, for batch exports and HR spot checks
// without going through the API.

var employeeCode string

var rootCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Run the time & attendance reconciliation engine",
}

var monthlyCmd = &cobra.Command{
	Use:   "monthly <YYYY-MM>",
	Short: "Reconcile one calendar month",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildService()
		if err != nil {
			return err
		}
		report, err := svc.ReconcileMonth(cmd.Context(), recon.MonthlyRequest{
			PeriodKey:    args[0],
			EmployeeCode: employeeCode,
		})
		if err != nil {
			return err
		}
		return printJSON(report)
	},
}

var annualCmd = &cobra.Command{
	Use:   "annual <YYYY>",
	Short: "Reconcile one calendar year",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildService()
		if err != nil {
			return err
		}
		report, err := svc.ReconcileYear(cmd.Context(), recon.AnnualRequest{
			PeriodKey:    args[0],
			EmployeeCode: employeeCode,
		})
		if err != nil {
			return err
		}
		return printJSON(report)
	},
}

var tokenSubject string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an API access token for a batch consumer",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
		token, expiresAt, err := jwtService.GenerateAccessToken(tokenSubject)
		if err != nil {
			return fmt.Errorf("failed to generate access token: %w", err)
		}

		return printJSON(map[string]any{
			"access_token": token,
			"expires_at":   expiresAt,
		})
	},
}

func buildService() (recon.ReconciliationService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil)).With(
		slog.String("app", "timerecon-cli"),
	)

	return reconService.NewReconciliationService(
		postgresql.NewEmployeeRepository(db),
		postgresql.NewRosterRepository(db),
		postgresql.NewTemplateRepository(db),
		postgresql.NewHolidayRepository(db),
		postgresql.NewSickLeaveRepository(db),
		postgresql.NewAbsenceRepository(db),
		postgresql.NewClockEventRepository(db),
		postgresql.NewPermittedHoursRepository(db),
		cfg.Recon,
		logger,
	), nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	rootCmd.PersistentFlags().StringVar(&employeeCode, "employee", "", "Scope the run to one employee code")
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "batch", "Subject claim for the minted token")
	rootCmd.AddCommand(monthlyCmd)
	rootCmd.AddCommand(annualCmd)
	rootCmd.AddCommand(tokenCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
