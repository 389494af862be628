package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dataprecision/margindesk-sub001/internal/config"
	appHTTP "github.com/dataprecision/margindesk-sub001/internal/handler/http"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/books"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/cron"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/database"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/jwt"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/oauth"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/peoplehub"
	"github.com/dataprecision/margindesk-sub001/internal/repository/postgresql"
	allocationService "github.com/dataprecision/margindesk-sub001/internal/service/allocation"
	authService "github.com/dataprecision/margindesk-sub001/internal/service/auth"
	calendarService "github.com/dataprecision/margindesk-sub001/internal/service/calendar"
	clientService "github.com/dataprecision/margindesk-sub001/internal/service/client"
	financeService "github.com/dataprecision/margindesk-sub001/internal/service/finance"
	"github.com/dataprecision/margindesk-sub001/internal/service/importer"
	integrationService "github.com/dataprecision/margindesk-sub001/internal/service/integration"
	personService "github.com/dataprecision/margindesk-sub001/internal/service/person"
	podService "github.com/dataprecision/margindesk-sub001/internal/service/pod"
	projectService "github.com/dataprecision/margindesk-sub001/internal/service/project"
	reportService "github.com/dataprecision/margindesk-sub001/internal/service/report"
	resellingService "github.com/dataprecision/margindesk-sub001/internal/service/reselling"
	utilizationService "github.com/dataprecision/margindesk-sub001/internal/service/utilization"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	personRepo := postgresql.NewPersonRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	clientRepo := postgresql.NewClientRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	costRepo := postgresql.NewCostRepository(db)
	allocationRepo := postgresql.NewAllocationRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	billRepo := postgresql.NewBillRepository(db)
	expenseRepo := postgresql.NewExpenseRepository(db)
	invoiceRepo := postgresql.NewResellingInvoiceRepository(db)
	resellingAllocRepo := postgresql.NewResellingAllocationRepository(db)
	podRepo := postgresql.NewPodRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	utilizationRepo := postgresql.NewUtilizationRepository(db)
	settingsRepo := postgresql.NewIntegrationSettingsRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	providers := map[string]oauth.ProviderService{
		"books":     oauth.NewProviderService(cfg.Books, []string{"ZohoBooks.bills.READ"}),
		"peoplehub": oauth.NewProviderService(cfg.PeopleHub, []string{"ZOHOPEOPLE.forms.READ", "ZOHOPEOPLE.leave.READ"}),
	}
	tokenManager := integrationService.NewTokenManager(settingsRepo, providers)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	personSvc := personService.NewPersonService(personRepo, salaryRepo)
	clientSvc := clientService.NewClientService(clientRepo)
	projectSvc := projectService.NewProjectService(db, projectRepo, costRepo)
	allocationSvc := allocationService.NewAllocationService(allocationRepo, personRepo, projectRepo)
	financeSvc := financeService.NewFinanceService(billRepo, expenseRepo)
	resellingSvc := resellingService.NewResellingService(db, invoiceRepo, resellingAllocRepo, billRepo, auditRepo)
	podSvc := podService.NewPodService(podRepo, personRepo, salaryRepo, projectRepo, costRepo)
	calendarSvc := calendarService.NewCalendarService(holidayRepo, leaveRepo, personRepo)
	utilizationSvc := utilizationService.NewUtilizationService(utilizationRepo, allocationRepo, personRepo, holidayRepo, leaveRepo, auditRepo)
	reportSvc := reportService.NewReportService(salaryRepo, expenseRepo, billRepo, costRepo, invoiceRepo)
	importSvc := importer.NewImportService(db, timesheetRepo, personRepo, salaryRepo, clientRepo, projectRepo, auditRepo)
	integrationSvc := integrationService.NewIntegrationService(
		settingsRepo,
		billRepo,
		personRepo,
		auditRepo,
		tokenManager,
		providers,
		books.NewClient(),
		peoplehub.NewClient(),
		cfg.Books,
		cfg.PeopleHub,
	)

	scheduler := cron.NewScheduler()
	if cfg.Sync.Enabled {
		integrationService.RegisterJobs(scheduler, integrationSvc, cfg.Sync.Interval)
		scheduler.Start()
		defer scheduler.Stop()
	}

	handlers := appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(jwtService, authSvc),
		Person:      appHTTP.NewPersonHandler(personSvc),
		Client:      appHTTP.NewClientHandler(clientSvc),
		Project:     appHTTP.NewProjectHandler(projectSvc),
		Allocation:  appHTTP.NewAllocationHandler(allocationSvc),
		Finance:     appHTTP.NewFinanceHandler(financeSvc),
		Reselling:   appHTTP.NewResellingHandler(resellingSvc),
		Pod:         appHTTP.NewPodHandler(podSvc),
		Calendar:    appHTTP.NewCalendarHandler(calendarSvc),
		Utilization: appHTTP.NewUtilizationHandler(utilizationSvc),
		Report:      appHTTP.NewReportHandler(reportSvc),
		Import:      appHTTP.NewImportHandler(importSvc),
		Integration: appHTTP.NewIntegrationHandler(integrationSvc),
	}

	router := appHTTP.NewRouter(jwtService, []string{cfg.App.FrontendURL}, handlers)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		slog.Info("Server starting", "port", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
}
