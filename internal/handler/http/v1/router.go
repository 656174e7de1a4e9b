package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/sgob/incident_reporting_system/internal/models"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Аутентификация
	auth := api.Group("/auth")
	{
		auth.POST("/login", h.login)
		auth.POST("/register",
			JWTAuthMiddleware(h.authService, h.logger),
			RequireRole(models.RoleAdmin, h.logger),
			h.register)
	}

	// Маршруты для работы с ocorrências; все под JWT
	incidents := api.Group("/ocorrencias", JWTAuthMiddleware(h.authService, h.logger))
	{
		incidents.POST("", h.createIncident)
		incidents.GET("", h.listIncidents)
		// Именованные маршруты раньше параметра :id
		incidents.GET("/filtro", h.filterIncidents)
		incidents.GET("/filtro-avancado", h.filterIncidentsAdvanced)
		incidents.GET("/estatisticas", h.getDashboard)
		incidents.GET("/exportar", h.exportIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.PUT("/:id", h.updateIncident)
		incidents.DELETE("/:id", RequireRole(models.RoleAdmin, h.logger), h.deleteIncident)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
