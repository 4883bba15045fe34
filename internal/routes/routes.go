package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SalesMasterPro/sales-api/internal/assistant"
	"github.com/SalesMasterPro/sales-api/internal/audit"
	"github.com/SalesMasterPro/sales-api/internal/config"
	"github.com/SalesMasterPro/sales-api/internal/handlers"
	"github.com/SalesMasterPro/sales-api/internal/middleware"
	"github.com/SalesMasterPro/sales-api/internal/session"
	"github.com/SalesMasterPro/sales-api/internal/store"
	ucAppointment "github.com/SalesMasterPro/sales-api/internal/usecase/appointment"
	ucClient "github.com/SalesMasterPro/sales-api/internal/usecase/client"
	ucRoute "github.com/SalesMasterPro/sales-api/internal/usecase/route"
	ucSale "github.com/SalesMasterPro/sales-api/internal/usecase/sale"
)

func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	st *store.Store,
	sessions *session.Manager,
	as *assistant.Assistant,
	events *audit.Dispatcher,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// USE CASES
	// ======================================================
	saveClientUC := ucClient.NewSaveClient(st, events)
	toggleVisitUC := ucClient.NewToggleVisit(st, events, cfg.Timezone)

	recordSaleUC := ucSale.NewRecordSale(st, events, cfg.Timezone)

	createAppointmentUC := ucAppointment.NewCreateAppointment(st, events)
	changeStatusUC := ucAppointment.NewChangeStatus(st, events)

	saveRouteUC := ucRoute.NewSaveRoute(st, events, cfg.Timezone)
	optimizeRouteUC := ucRoute.NewOptimizeRoute(st, as)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(sessions, st)
	clientHandler := handlers.NewClientHandler(st, saveClientUC, toggleVisitUC, events)
	appointmentHandler := handlers.NewAppointmentHandler(st, createAppointmentUC, changeStatusUC, events)
	saleHandler := handlers.NewSaleHandler(st, recordSaleUC, events)
	routeHandler := handlers.NewRouteHandler(st, saveRouteUC, optimizeRouteUC, events)
	dashboardHandler := handlers.NewDashboardHandler(st, cfg.Timezone)
	assistantHandler := handlers.NewAssistantHandler(st, as)
	auditLogsHandler := handlers.NewAuditLogsHandler(st.DB())

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(sessions))
		{
			secured.POST("/auth/logout", authHandler.Logout)
			secured.GET("/me", authHandler.GetMe)

			// CLIENTES
			secured.GET("/me/clients", clientHandler.List)
			secured.POST("/me/clients", clientHandler.Create)
			secured.PUT("/me/clients/:id", clientHandler.Update)
			secured.DELETE("/me/clients/:id", clientHandler.Delete)
			secured.PATCH("/me/clients/:id/visit", clientHandler.ToggleVisit)

			// AGENDA
			secured.GET("/me/appointments", appointmentHandler.List)
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.ChangeStatus("complete"))
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.ChangeStatus("cancel"))
			secured.PATCH("/me/appointments/:id/reopen", appointmentHandler.ChangeStatus("reopen"))
			secured.DELETE("/me/appointments/:id", appointmentHandler.Delete)

			// POSITIVAÇÕES
			secured.GET("/me/sales", saleHandler.List)
			secured.POST("/me/sales", saleHandler.Create)
			secured.PUT("/me/sales/:id", saleHandler.Update)
			secured.DELETE("/me/sales/:id", saleHandler.Delete)

			// ROTAS
			secured.GET("/me/routes", routeHandler.List)
			secured.POST("/me/routes", routeHandler.Save)
			secured.PUT("/me/routes/:id", routeHandler.Save)
			secured.DELETE("/me/routes/:id", routeHandler.Delete)
			secured.POST("/me/routes/optimize", routeHandler.Optimize)

			// DASHBOARD
			secured.GET("/me/dashboard", dashboardHandler.Get)
			secured.GET("/me/dashboard/:stat", dashboardHandler.ListStat)

			// ASSISTENTE
			secured.POST("/me/assistant/chat", assistantHandler.Chat)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
