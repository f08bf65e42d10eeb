package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hellofixo/fixit-admin/internal/audit"
	"github.com/hellofixo/fixit-admin/internal/authtoken"
	"github.com/hellofixo/fixit-admin/internal/config"
	"github.com/hellofixo/fixit-admin/internal/funcs"
	"github.com/hellofixo/fixit-admin/internal/handlers"
	infraRepo "github.com/hellofixo/fixit-admin/internal/infra/repository"
	"github.com/hellofixo/fixit-admin/internal/middleware"
	"github.com/hellofixo/fixit-admin/internal/storage"
	"github.com/hellofixo/fixit-admin/internal/store"
	ucDashboard "github.com/hellofixo/fixit-admin/internal/usecase/dashboard"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	tokens *authtoken.Manager,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	tabularStore := store.NewGormStore(db)
	dashboardRepo := infraRepo.NewDashboardGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	functions := funcs.NewClient(cfg)
	documents := storage.NewDocumentStore(cfg)

	// ======================================================
	// USE CASES — DASHBOARD AGGREGATION
	// ======================================================
	summaryUC := ucDashboard.NewGetSummary(dashboardRepo)
	listBookingsUC := ucDashboard.NewListBookings(dashboardRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, tokens)
	dashboardHandler := handlers.NewDashboardHandler(summaryUC)

	bookingHandler := handlers.NewBookingHandler(
		tabularStore,
		listBookingsUC,
		functions,
		auditDispatcher,
	)

	technicianHandler := handlers.NewTechnicianHandler(
		tabularStore,
		documents,
		functions,
		auditDispatcher,
	)

	categoryHandler := handlers.NewCategoryHandler(tabularStore, auditDispatcher)
	cityHandler := handlers.NewCityHandler(tabularStore, auditDispatcher)
	profileHandler := handlers.NewProfileHandler(tabularStore, auditDispatcher)
	walletHandler := handlers.NewWalletHandler(tabularStore, auditDispatcher)

	referralHandler := handlers.NewReferralHandler(tabularStore)
	earningHandler := handlers.NewEarningHandler(tabularStore)
	statsHandler := handlers.NewTechnicianStatsHandler(tabularStore)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/magic-link", authHandler.RequestMagicLink)
		api.POST("/auth/magic-link/verify", authHandler.VerifyMagicLink)

		// ------------------------------
		// ADMIN (BEARER REQUIRED)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, tokens))
		{
			secured.POST("/auth/logout", authHandler.Logout)
			secured.GET("/me", authHandler.Me)

			secured.GET("/dashboard", dashboardHandler.Summary)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.GET("/bookings", bookingHandler.List)
			secured.GET("/bookings/:id", bookingHandler.Get)
			secured.POST("/bookings/:id/assign", bookingHandler.AssignTechnician)
			secured.GET("/bookings/technicians", bookingHandler.TechniciansForPincode)

			// ------------------------------
			// TECHNICIANS
			// ------------------------------
			secured.GET("/technicians", technicianHandler.List)
			secured.GET("/technicians/:id", technicianHandler.Get)
			secured.PATCH("/technicians/:id/verify", technicianHandler.Verify)
			secured.POST("/technicians/:id/decision", technicianHandler.Decision)
			secured.GET("/technician-stats", statsHandler.List)

			// ------------------------------
			// CATALOG
			// ------------------------------
			secured.GET("/categories", categoryHandler.ListWithIssues)
			secured.POST("/categories", categoryHandler.CreateCategory)
			secured.PATCH("/categories/:id", categoryHandler.UpdateCategory)
			secured.DELETE("/categories/:id", categoryHandler.DeleteCategory)
			secured.POST("/issues", categoryHandler.CreateIssue)
			secured.PATCH("/issues/:id", categoryHandler.UpdateIssue)
			secured.DELETE("/issues/:id", categoryHandler.DeleteIssue)

			// ------------------------------
			// CITIES
			// ------------------------------
			secured.GET("/cities", cityHandler.List)
			secured.POST("/cities", cityHandler.Create)
			secured.PATCH("/cities/:id/toggle", cityHandler.Toggle)

			// ------------------------------
			// PEOPLE & MONEY
			// ------------------------------
			secured.GET("/profiles", profileHandler.List)
			secured.GET("/profiles/:id", profileHandler.Get)
			secured.PATCH("/profiles/:id", profileHandler.Update)

			secured.GET("/wallets", walletHandler.List)
			secured.POST("/wallets/adjust", walletHandler.Adjust)

			secured.GET("/referrals", referralHandler.List)
			secured.GET("/platform-earnings", earningHandler.List)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
