package http

import (
	"log/slog"
	"os"

	"github.com/dataprecision/margindesk-sub001/internal/domain/user"
	"github.com/dataprecision/margindesk-sub001/internal/handler/http/middleware"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth        AuthHandler
	Person      PersonHandler
	Client      ClientHandler
	Project     ProjectHandler
	Allocation  AllocationHandler
	Finance     FinanceHandler
	Reselling   ResellingHandler
	Pod         PodHandler
	Calendar    CalendarHandler
	Utilization UtilizationHandler
	Report      ReportHandler
	Import      ImportHandler
	Integration IntegrationHandler
}

func NewRouter(jwtService jwt.Service, allowedOrigins []string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "margindesk"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// OAuth callbacks arrive unauthenticated from the provider.
		r.Get("/integrations/{name}/callback", h.Integration.Callback)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/auth/register", h.Auth.Register)
			})

			r.Route("/people", func(r chi.Router) {
				r.Get("/", h.Person.List)
				r.Get("/{id}", h.Person.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermManagePeople))
					r.Post("/", h.Person.Create)
					r.Put("/{id}", h.Person.Update)
					r.Post("/{id}/offboard", h.Person.Offboard)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermManageFinance))
					r.Put("/{id}/salaries/{month}", h.Person.SetSalary)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermManageFinance))
				r.Get("/salaries", h.Person.ListSalaries)
			})

			r.Route("/clients", func(r chi.Router) {
				r.Get("/", h.Client.List)
				r.Get("/{id}", h.Client.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermManageProjects))
					r.Post("/", h.Client.Create)
					r.Put("/{id}", h.Client.Update)
					r.Delete("/{id}", h.Client.Delete)
				})
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", h.Project.List)
				r.Get("/{id}", h.Project.Get)
				r.Get("/{id}/costs", h.Project.ListProjectCosts)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermManageProjects))
					r.Post("/", h.Project.Create)
					r.Put("/{id}", h.Project.Update)
					r.Delete("/{id}", h.Project.Delete)
				})
			})

			r.Route("/project-costs", func(r chi.Router) {
				r.Get("/", h.Project.ListCosts)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermManageFinance))
					r.Put("/bulk", h.Project.BulkCostUpdate)
				})
			})

			r.Route("/allocations", func(r chi.Router) {
				r.Get("/", h.Allocation.List)
				r.Get("/{id}", h.Allocation.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermManageProjects))
					r.Post("/", h.Allocation.Create)
					r.Put("/{id}", h.Allocation.Update)
					r.Delete("/{id}", h.Allocation.Delete)
				})
			})

			// Finance surfaces
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermManageFinance))

				r.Route("/bills", func(r chi.Router) {
					r.Get("/", h.Finance.ListBills)
					r.Post("/", h.Finance.CreateBill)
					r.Get("/{id}", h.Finance.GetBill)
					r.Put("/{id}", h.Finance.UpdateBill)
					r.Delete("/{id}", h.Finance.DeleteBill)
				})

				r.Route("/expenses", func(r chi.Router) {
					r.Get("/", h.Finance.ListExpenses)
					r.Post("/", h.Finance.CreateExpense)
					r.Put("/{id}", h.Finance.UpdateExpense)
					r.Delete("/{id}", h.Finance.DeleteExpense)
				})

				r.Route("/reselling-invoices", func(r chi.Router) {
					r.Get("/", h.Reselling.ListInvoices)
					r.Post("/", h.Reselling.CreateInvoice)
					r.Get("/{id}", h.Reselling.GetInvoice)
					r.Put("/{id}", h.Reselling.UpdateInvoice)
					r.Delete("/{id}", h.Reselling.DeleteInvoice)
					r.Post("/{id}/allocations", h.Reselling.AddAllocation)
				})

				r.Route("/reselling-allocations", func(r chi.Router) {
					r.Put("/{allocationID}", h.Reselling.UpdateAllocation)
					r.Delete("/{allocationID}", h.Reselling.DeleteAllocation)
				})
			})

			r.Route("/pods", func(r chi.Router) {
				r.Get("/", h.Pod.List)
				r.Get("/{id}", h.Pod.Get)
				r.Get("/{id}/members", h.Pod.ListMembers)
				r.Get("/{id}/projects", h.Pod.ListProjects)
				r.Get("/{id}/summary", h.Pod.MonthlySummary)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermManagePeople))
					r.Post("/", h.Pod.Create)
					r.Delete("/{id}", h.Pod.Delete)
					r.Post("/{id}/members", h.Pod.AddMember)
					r.Post("/{id}/projects", h.Pod.MapProject)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermManagePeople))
				r.Post("/pod-memberships/{membershipID}/end", h.Pod.RemoveMember)
				r.Post("/pod-mappings/{mappingID}/end", h.Pod.UnmapProject)
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", h.Calendar.ListHolidays)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermManagePeople))
					r.Post("/", h.Calendar.CreateHoliday)
					r.Delete("/{id}", h.Calendar.DeleteHoliday)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/", h.Calendar.ListLeaves)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermManagePeople))
					r.Post("/", h.Calendar.CreateLeave)
					r.Put("/{id}/status", h.Calendar.SetLeaveStatus)
					r.Delete("/{id}", h.Calendar.DeleteLeave)
				})
			})

			r.Route("/utilization", func(r chi.Router) {
				r.Get("/", h.Utilization.ListByMonth)
				r.Get("/people/{personID}", h.Utilization.GetByPersonMonth)
				r.Get("/people/{personID}/history", h.Utilization.ListByPerson)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermManagePeople))
					r.Post("/people/{personID}/recalculate", h.Utilization.Recalculate)
					r.Post("/recalculate", h.Utilization.RecalculateMonth)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermViewReports))
				r.Get("/reports/profit-loss", h.Report.ProfitLoss)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermRunImports))
				r.Post("/imports/timesheet", h.Import.ImportTimesheet)
				r.Post("/imports/salaries", h.Import.ImportSalaries)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermManageIntegration))
				r.Get("/integrations/{name}/connect", h.Integration.Connect)
				r.Get("/integrations/{name}/status", h.Integration.Status)
				r.Delete("/integrations/{name}", h.Integration.Disconnect)
				r.Post("/integrations/books/sync", h.Integration.SyncBooks)
				r.Post("/integrations/peoplehub/sync", h.Integration.SyncPeopleHub)
			})
		})
	})
	return r
}
