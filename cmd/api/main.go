package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/leads-portal/internal/config"
	"github.com/xavierca1/leads-portal/internal/entity"
	"github.com/xavierca1/leads-portal/internal/infra/http/handlers"
	"github.com/xavierca1/leads-portal/internal/infra/http/middleware"
	"github.com/xavierca1/leads-portal/internal/infra/http/session"
	"github.com/xavierca1/leads-portal/internal/infra/mail"
	"github.com/xavierca1/leads-portal/internal/infra/store"
	"github.com/xavierca1/leads-portal/internal/usecase"
)

func main() {
	log := config.GetLogger()
	cfg := config.Load()

	// 1. Stores
	var leadStore store.LeadStore
	switch cfg.LeadStore {
	case "xlsx":
		leadStore = store.NewXLSXLeadStore(cfg.LeadFile, log)
	case "sqlite":
		sqliteStore, err := store.NewSQLiteLeadStore(cfg.SQLiteDSN)
		if err != nil {
			log.Fatal("sqlite lead store: ", err)
		}
		defer sqliteStore.Close()
		leadStore = sqliteStore
	default:
		log.Fatal("LEAD_STORE not supported: ", cfg.LeadStore)
	}
	leads := store.NewLeads(leadStore)
	users := store.NewUserStore(cfg.UserFile, log)

	// 2. Outbound side effects
	var notifier usecase.AgentNotifier
	if cfg.MailHost != "" {
		notifier = mail.NewAssignmentSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailDomain)
	}

	// 3. UseCases
	authenticateUC := usecase.NewAuthenticateUseCase(users)
	onboardUC := usecase.NewOnboardLeadUseCase(leads)
	updateUC := usecase.NewUpdateLeadUseCase(leads)
	deleteUC := usecase.NewDeleteLeadUseCase(leads)
	assignUC := usecase.NewAssignLeadsUseCase(leads, users, notifier, log)
	listUC := usecase.NewListLeadsUseCase(leads)
	manageUsersUC := usecase.NewManageUsersUseCase(users)
	performanceUC := usecase.NewPerformanceUseCase(leads, users)

	// 4. Handlers
	sessions := session.NewManager()
	authHandler := handlers.NewAuthHandler(authenticateUC, sessions)
	leadHandler := handlers.NewLeadHandler(onboardUC, updateUC, deleteUC, assignUC, listUC)
	userHandler := handlers.NewUserHandler(manageUsersUC)
	reportHandler := handlers.NewReportHandler(performanceUC)
	healthHandler := handlers.NewHealthHandler(leads, users)

	// 5. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	r.Post("/login", authHandler.Login)
	r.Post("/logout", authHandler.Logout)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	// Admin and team-leader views.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sessions, entity.RoleAdmin, entity.RoleTeamLeader))
		r.Get("/leads", leadHandler.HandleList)
		r.Get("/leads/unassigned", leadHandler.HandleUnassigned)
		r.Post("/leads", leadHandler.HandleOnboard)
		r.Delete("/leads/{id}", leadHandler.HandleDelete)
		r.Post("/leads/assign", leadHandler.HandleAssign)
		r.Get("/users", userHandler.HandleList)
		r.Post("/users", userHandler.HandleAdd)
		r.Put("/users/{username}", userHandler.HandleUpdate)
		r.Get("/agents", userHandler.HandleAgents)
	})

	// Agents see only their own queue, their updates and their numbers.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sessions, entity.RoleAdmin, entity.RoleTeamLeader, entity.RoleAgent))
		r.Get("/leads/my", leadHandler.HandleMyLeads)
		r.Put("/leads/{id}", leadHandler.HandleUpdate)
		r.Get("/performance", reportHandler.HandlePerformance)
	})

	addr := ":" + cfg.Port
	log.Info("leads portal listening on ", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
