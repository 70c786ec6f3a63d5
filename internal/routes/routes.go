package routes

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/consultorio/internal/config"
	"github.com/BruksfildServices01/consultorio/internal/db"
	"github.com/BruksfildServices01/consultorio/internal/handlers"
	"github.com/BruksfildServices01/consultorio/internal/identity"
	infraRepo "github.com/BruksfildServices01/consultorio/internal/infra/repository"
	"github.com/BruksfildServices01/consultorio/internal/infra/storage"
	"github.com/BruksfildServices01/consultorio/internal/middleware"
	"github.com/BruksfildServices01/consultorio/internal/timezone"
	ucReport "github.com/BruksfildServices01/consultorio/internal/usecase/report"
)

type Deps struct {
	DB      *gorm.DB
	Config  *config.Config
	Log     *zap.Logger
	Revoked identity.RevocationStore

	// nil desabilita o envio de avatar
	Storage storage.ObjectStorage
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	cfg := deps.Config
	log := deps.Log

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	clientRepo := infraRepo.NewClientGormRepository(deps.DB)
	sessionRepo := infraRepo.NewSessionGormRepository(deps.DB)
	transactionRepo := infraRepo.NewTransactionGormRepository(deps.DB)
	profileRepo := infraRepo.NewProfileGormRepository(deps.DB)
	goalRepo := infraRepo.NewGoalGormRepository(deps.DB)
	userRepo := infraRepo.NewUserGormRepository(deps.DB)

	provider := identity.NewLocalProvider(
		userRepo,
		deps.Revoked,
		identity.OptionsFromConfig(cfg),
		log.Named("identity"),
	)

	loc := timezone.Location(cfg.Timezone)

	// ======================================================
	// USE CASES — RELATÓRIOS
	// ======================================================
	reportRepos := ucReport.Repositories{
		Clients:      clientRepo,
		Sessions:     sessionRepo,
		Transactions: transactionRepo,
	}

	loadDashboardUC := ucReport.NewLoadDashboard(reportRepos, loc, log.Named("dashboard"))
	loadReportsUC := ucReport.NewLoadReports(reportRepos, log.Named("reports"))
	loadFinancialUC := ucReport.NewLoadFinancial(transactionRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	healthHandler := handlers.NewHealthHandler(func(ctx context.Context) error {
		sqlDB, err := deps.DB.DB()
		if err != nil {
			return err
		}
		return db.Ping(ctx, sqlDB)
	}, log)

	authHandler := handlers.NewAuthHandler(provider, log)
	meHandler := handlers.NewMeHandler(profileRepo, log)
	profileHandler := handlers.NewProfileHandler(profileRepo, deps.Storage, log)
	clientHandler := handlers.NewClientHandler(clientRepo, log)
	sessionHandler := handlers.NewSessionHandler(sessionRepo, clientRepo, loc, log)
	transactionHandler := handlers.NewTransactionHandler(transactionRepo, sessionRepo, log)
	goalHandler := handlers.NewGoalHandler(goalRepo, log)

	reportHandler := handlers.NewReportHandler(
		loadDashboardUC,
		loadReportsUC,
		loadFinancialUC,
		log,
	)

	r.GET("/health", healthHandler.Health)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/auth/confirm", authHandler.Confirm)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(provider, log))
		{
			secured.POST("/auth/logout", authHandler.Logout)

			secured.GET("/me", meHandler.GetMe)
			secured.PUT("/me/password", authHandler.ChangePassword)

			secured.GET("/me/profile", profileHandler.Get)
			secured.PATCH("/me/profile", profileHandler.Patch)
			secured.PUT("/me/profile/avatar", profileHandler.UploadAvatar)

			// ------------------------------
			// CLIENTES
			// ------------------------------
			secured.GET("/me/clients", clientHandler.List)
			secured.POST("/me/clients", clientHandler.Create)
			secured.PUT("/me/clients/:id", clientHandler.Update)
			secured.DELETE("/me/clients/:id", clientHandler.Delete)

			// ------------------------------
			// SESSÕES
			// ------------------------------
			secured.GET("/me/sessions", sessionHandler.List)
			secured.POST("/me/sessions", sessionHandler.Create)
			secured.PUT("/me/sessions/:id", sessionHandler.Update)
			secured.DELETE("/me/sessions/:id", sessionHandler.Delete)

			// ------------------------------
			// FINANCEIRO
			// ------------------------------
			secured.GET("/me/transactions", transactionHandler.List)
			secured.POST("/me/transactions", transactionHandler.Create)
			secured.POST("/me/transactions/batch", transactionHandler.CreateBatch)
			secured.GET("/me/transactions/categories", transactionHandler.Categories)
			secured.PUT("/me/transactions/:id", transactionHandler.Update)
			secured.DELETE("/me/transactions/:id", transactionHandler.Delete)

			// ------------------------------
			// DASHBOARD / RELATÓRIOS
			// ------------------------------
			secured.GET("/me/dashboard", reportHandler.Dashboard)
			secured.GET("/me/financial", reportHandler.Financial)
			secured.GET("/me/reports", reportHandler.Reports)
			secured.POST("/me/reports/export", reportHandler.Export)

			// ------------------------------
			// METAS
			// ------------------------------
			secured.GET("/me/goals", goalHandler.List)
			secured.POST("/me/goals", goalHandler.Create)
			secured.DELETE("/me/goals/:id", goalHandler.Delete)
		}
	}
}
