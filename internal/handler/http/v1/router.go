package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Репорты: подача, просмотр, участие сообщества, админские решения
	reports := api.Group("/reports")
	{
		reports.POST("", h.submitReport)
		reports.GET("", h.listReports)
		reports.GET("/nearby", h.listNearbyReports)
		reports.GET("/:id", h.getReport)
		reports.GET("/:id/verifications", h.listReportVerifications)
		reports.POST("/:id/community-verification", h.communityVerification)
		reports.POST("/:id/verify", h.verifyReport)
		reports.POST("/:id/reject", h.rejectReport)
	}

	// Инциденты: просмотр и закрытие
	incidents := api.Group("/incidents")
	{
		incidents.GET("/active", h.listActiveIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.GET("/:id/reports", h.listIncidentReports)
		incidents.GET("/:id/alerts", h.listIncidentAlerts)
		incidents.POST("/:id/resolve", h.resolveIncident)
	}

	// Оповещения: генерация, доставка, повтор, квитанции о прочтении
	alerts := api.Group("/alerts")
	{
		alerts.POST("", h.createAlert)
		alerts.GET("/recent", h.listRecentAlerts)
		alerts.GET("/:id", h.getAlert)
		alerts.POST("/:id/deliver", h.deliverAlert)
		alerts.POST("/:id/retry", h.retryAlertDelivery)
		alerts.POST("/:id/read", h.markAlertRead)
	}

	// Пользователи ботов
	users := api.Group("/users")
	{
		users.POST("", h.registerUser)
		users.GET("/:id", h.getUser)
		users.GET("/:id/alerts", h.listUserAlerts)
		users.PUT("/:id/location", h.updateUserLocation)
		users.PUT("/:id/subscription", h.updateUserSubscription)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
