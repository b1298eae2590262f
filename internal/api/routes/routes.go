// server/internal/api/routes/routes.go
package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"a2z-ipm-api-server/config"
	"a2z-ipm-api-server/internal/api/handlers"
	"a2z-ipm-api-server/internal/api/middleware"
	"a2z-ipm-api-server/internal/auth"
	"a2z-ipm-api-server/internal/models"
	"a2z-ipm-api-server/internal/s3"
	"a2z-ipm-api-server/internal/socket"
	"a2z-ipm-api-server/internal/store"
)

// SetupRouter wires every handler into the route tree.
func SetupRouter(
	cfg config.Config,
	st *store.Store,
	authSvc *auth.Service,
	s3Uploader *s3.Uploader,
	wsHub *socket.Hub,
) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	authHandler := &handlers.AuthHandler{Store: st, Auth: authSvc}
	userHandler := &handlers.UserHandler{Store: st}
	projectHandler := &handlers.ProjectHandler{Store: st}
	recordHandler := &handlers.RecordHandler{Store: st}
	customFormHandler := &handlers.CustomFormHandler{Store: st}
	remarkHandler := &handlers.RemarkHandler{Store: st}
	productHandler := &handlers.ProductHandler{Store: st}
	stockLogHandler := &handlers.StockLogHandler{Store: st}
	reportHandler := &handlers.ReportHandler{Store: st}
	exportHandler := &handlers.ExportHandler{Store: st, Cfg: cfg}
	backupHandler := &handlers.BackupHandler{Store: st, Cfg: cfg}
	uploadHandler := &handlers.UploadHandler{Uploader: s3Uploader}
	webSocketHandler := &handlers.WebSocketHandler{Hub: wsHub, Auth: authSvc}

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/ws", webSocketHandler.ServeWs)

		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/login", authHandler.Login)
		}

		// Routes every signed-in role can reach. Project scoping happens in
		// the handlers.
		authenticated := apiV1.Group("/")
		authenticated.Use(middleware.Authenticate(authSvc))
		{
			authenticated.GET("/profile", userHandler.GetMe)
			authenticated.PUT("/profile", userHandler.UpdateMe)

			authenticated.GET("/projects", projectHandler.GetAllProjects)
			authenticated.GET("/projects/:id", projectHandler.GetProjectByID)

			authenticated.GET("/records", recordHandler.GetRecords)
			authenticated.GET("/records/:id", recordHandler.GetRecordByID)

			authenticated.GET("/remarks", remarkHandler.GetRemarks)
			authenticated.POST("/remarks", remarkHandler.CreateRemark)

			authenticated.GET("/forms", customFormHandler.GetAllCustomForms)
			authenticated.GET("/forms/:id", customFormHandler.GetCustomFormByID)

			authenticated.GET("/reports/monthly", reportHandler.GetMonthlyReport)
		}

		// Field operations: staff and admins submit records, log usage and
		// upload signatures.
		fieldRoutes := apiV1.Group("/")
		fieldRoutes.Use(middleware.Authenticate(authSvc))
		fieldRoutes.Use(middleware.Authorize(models.RoleAdmin, models.RoleStaff))
		{
			fieldRoutes.POST("/records", recordHandler.CreateRecord)
			fieldRoutes.POST("/uploads/signature", uploadHandler.UploadSignature)

			inventoryRoutes := fieldRoutes.Group("/inventory")
			{
				inventoryRoutes.GET("/products", productHandler.GetAllProducts)
				inventoryRoutes.GET("/products/:id", productHandler.GetProductByID)
				inventoryRoutes.GET("/low-stock", productHandler.GetLowStockProducts)
				inventoryRoutes.GET("/logs", stockLogHandler.GetStockLogs)
				inventoryRoutes.POST("/logs", stockLogHandler.CreateStockLog)
				inventoryRoutes.GET("/trend", stockLogHandler.GetTrend)
				inventoryRoutes.GET("/usage", stockLogHandler.GetUsageSummary)
			}
		}

		// Administration: account, project and form management, deletions,
		// exports.
		admin := apiV1.Group("/")
		admin.Use(middleware.Authenticate(authSvc))
		admin.Use(middleware.Authorize(models.RoleAdmin))
		{
			userRoutes := admin.Group("/users")
			{
				userRoutes.POST("/staff", userHandler.CreateStaff)
				userRoutes.POST("/clients", userHandler.CreateClient)
				userRoutes.GET("/", userHandler.GetAllUsers)
				userRoutes.GET("/:id", userHandler.GetUserByID)
				userRoutes.PUT("/:id", userHandler.UpdateUser)
				userRoutes.DELETE("/:id", userHandler.DeleteUser)
			}

			admin.POST("/projects", projectHandler.CreateProject)
			admin.PUT("/projects/:id", projectHandler.UpdateProject)
			admin.DELETE("/projects/:id", projectHandler.DeleteProject)

			admin.DELETE("/records/:id", recordHandler.DeleteRecord)
			admin.DELETE("/remarks/:id", remarkHandler.DeleteRemark)

			admin.POST("/forms", customFormHandler.CreateCustomForm)
			admin.PUT("/forms/:id", customFormHandler.UpdateCustomForm)
			admin.DELETE("/forms/:id", customFormHandler.DeleteCustomForm)

			admin.POST("/inventory/products", productHandler.CreateProduct)
			admin.PUT("/inventory/products/:id", productHandler.UpdateProduct)
			admin.DELETE("/inventory/products/:id", productHandler.DeleteProduct)
			admin.DELETE("/inventory/logs/:id", stockLogHandler.DeleteStockLog)

			admin.GET("/exports/inventory", exportHandler.ExportInventory)
			admin.GET("/exports/records", exportHandler.ExportRecords)
			admin.GET("/backup/export", backupHandler.ExportBackup)
		}
	}

	return router
}
