package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"truebalance-be-svc/internal/service"
	"truebalance-be-svc/pkg/logger"
)

// Routes sets up all API routes
func SetupRoutes(
	router *gin.Engine,
	billService service.BillService,
	logger *logger.Logger,
) {
	// Initialize handlers
	billHandler := NewBillHandler(billService, logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", HealthCheck)

		// Bill routes
		bills := v1.Group("/bills")
		{
			bills.GET("", billHandler.SearchBills)
			bills.POST("", billHandler.CreateBill)
			bills.GET("/categories", billHandler.ListCategories)
			bills.GET("/:id", billHandler.GetBill)
			bills.DELETE("/:id", billHandler.DeleteBill)
		}
	}
}

// HealthCheck handles GET /api/v1/health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/v1/health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "TrueBalance Bills Service",
	})
}
