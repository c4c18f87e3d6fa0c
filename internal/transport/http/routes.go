package httpt

import (
	"net/http"

	_ "github.com/onexocoder/Escova/docs" // for swagger

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Escova PetBrush API
// @version         1.0
// @description     API de encomendas da Escova 3 em 1 PetBrush
// @contact.name    API Support
// @host            localhost:8080
// @BasePath        /api
// @schemes         http https
func (h *OrderHandler) setupRoutes() {
	h.router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	api := h.router.Group("/api")
	{
		api.POST("/orders", h.createOrderHandler)
		api.GET("/orders", h.listOrdersHandler)
		api.POST("/notify", h.notifyHandler)
	}

	h.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
