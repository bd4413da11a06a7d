package routes

import (
	"github.com/gin-gonic/gin"

	"resto-api/controllers"
	"resto-api/middlewares"
	"resto-api/realtime"
)

func RegisterRoutes(r *gin.Engine, hub *realtime.Hub) {

	r.POST("/login", controllers.Login)
	r.POST("/password-reset", controllers.RequestPasswordReset)

	// Real-time channel; rooms come from the query string
	r.GET("/ws", realtime.ServeWS(hub))

	// Public endpoints for the menu / ordering app
	r.GET("/api/branches", controllers.GetBranches)
	r.GET("/api/products/:branchId", controllers.GetPublicProducts)
	r.GET("/branches/:id/qr", controllers.GetBranchQR)

	// Orders
	orders := r.Group("/api/orders")
	{
		orders.POST("/", controllers.CreateOrder)
		orders.GET("/mine", controllers.GetMyOrders)
	}

	// Customer self-service
	customer := r.Group("/api/customer")
	{
		customer.GET("/profile", controllers.GetCustomerProfile)
		customer.PUT("/profile", controllers.UpsertCustomerProfile)
	}

	// Integrations webhook (API-key authenticated, not JWT)
	r.POST("/api/integrations/platforms/:name/orders", controllers.PlatformWebhook)

	// Admin / staff panel
	admin := r.Group("/api/admin")
	admin.Use(middlewares.AuthMiddleware())
	{
		admin.GET("/orders", controllers.GetOrders)
		admin.GET("/orders/:id", controllers.GetOrderByID)
		admin.PATCH("/orders/:id/status", controllers.ChangeOrderStatus)

		admin.GET("/dashboard", controllers.GetDashboard)

		admin.GET("/chat", controllers.GetChatMessages)
		admin.POST("/chat", controllers.SendChatMessage)

		admin.GET("/products", controllers.GetProducts)
		admin.POST("/products", middlewares.RoleMiddleware("admin", "staff"), controllers.CreateProduct)
		admin.PUT("/products/:id", middlewares.RoleMiddleware("admin", "staff"), controllers.UpdateProduct)
		admin.DELETE("/products/:id", middlewares.RoleMiddleware("admin"), controllers.DeleteProduct)

		admin.GET("/categories", controllers.GetCategories)
		admin.POST("/categories", middlewares.RoleMiddleware("admin", "staff"), controllers.CreateCategory)
		admin.PUT("/categories/:id", middlewares.RoleMiddleware("admin", "staff"), controllers.UpdateCategory)
		admin.DELETE("/categories/:id", middlewares.RoleMiddleware("admin"), controllers.DeleteCategory)

		admin.GET("/customers", controllers.GetCustomers)

		admin.GET("/branches", middlewares.RoleMiddleware("admin"), controllers.GetAllBranches)
		admin.POST("/branches", middlewares.RoleMiddleware("admin"), controllers.CreateBranch)
		admin.PUT("/branches/:id", middlewares.RoleMiddleware("admin"), controllers.UpdateBranch)

		admin.GET("/users", middlewares.RoleMiddleware("admin"), controllers.GetUsers)
		admin.POST("/users", middlewares.RoleMiddleware("admin"), controllers.CreateUser)
		admin.DELETE("/users/:id", middlewares.RoleMiddleware("admin"), controllers.DeleteUser)

		admin.GET("/integrations/platforms", middlewares.RoleMiddleware("admin"), controllers.GetPlatforms)
		admin.POST("/integrations/platforms", middlewares.RoleMiddleware("admin"), controllers.CreatePlatform)
		admin.PUT("/integrations/platforms/:id", middlewares.RoleMiddleware("admin"), controllers.UpdatePlatform)
	}

	// Backups (admin only)
	backup := r.Group("/api/backup")
	backup.Use(middlewares.AuthMiddleware(), middlewares.RoleMiddleware("admin"))
	{
		backup.POST("/", controllers.CreateBackup)
		backup.GET("/", controllers.ListBackups)
		backup.GET("/:file", controllers.DownloadBackup)
		backup.DELETE("/:file", controllers.DeleteBackup)
	}
}
