package handler

import (
	"backend/internal/app/middleware"
	"backend/internal/app/role"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes регистрирует все REST API маршруты с авторизацией.
// Справочники рейсов и касс читаются публично, продажи и персональные
// данные требуют авторизации, изменение справочников — права администратора
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	api := router.Group("/api")

	// ============ Рейсы (Trips) ============
	trips := api.Group("/trips")
	{
		// Публичные эндпоинты (расписание доступно без авторизации)
		trips.GET("", h.GetTrips)
		trips.GET("/upcoming", h.GetUpcomingTrips)
		trips.GET("/:id", h.GetTrip)

		// Только для администраторов (управление расписанием)
		trips.POST("", authMiddleware.WithAuthCheck(role.Admin), h.CreateTrip)
		trips.PUT("/:id", authMiddleware.WithAuthCheck(role.Admin), h.UpdateTrip)
		trips.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteTrip)
		trips.POST("/:id/image", authMiddleware.WithAuthCheck(role.Admin), h.UploadTripImage)
	}

	// ============ Кассы (Offices) ============
	offices := api.Group("/offices")
	{
		offices.GET("", h.GetOffices)
		offices.GET("/:id", h.GetOffice)

		offices.POST("", authMiddleware.WithAuthCheck(role.Admin), h.CreateOffice)
		offices.PUT("/:id", authMiddleware.WithAuthCheck(role.Admin), h.UpdateOffice)
		offices.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteOffice)
	}

	// ============ Пассажиры (Passengers) — персональные данные ============
	passengers := api.Group("/passengers")
	passengers.Use(authMiddleware.WithAuthCheck(role.Cashier, role.Admin))
	{
		passengers.GET("", h.GetPassengers)
		passengers.GET("/by-passport", h.FindPassengersByPassport)
		passengers.GET("/:id", h.GetPassenger)
		passengers.GET("/:id/tickets", h.GetPassengerTickets)
		passengers.POST("", h.CreatePassenger)
		passengers.PUT("/:id", h.UpdatePassenger)
		passengers.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeletePassenger)
	}

	// ============ Кассиры (Cashiers) ============
	cashiers := api.Group("/cashiers")
	cashiers.Use(authMiddleware.WithAuthCheck(role.Cashier, role.Admin))
	{
		cashiers.GET("", h.GetCashiers)
		cashiers.GET("/:id", h.GetCashier)

		cashiers.POST("", authMiddleware.WithAuthCheck(role.Admin), h.CreateCashier)
		cashiers.PUT("/:id", authMiddleware.WithAuthCheck(role.Admin), h.UpdateCashier)
		cashiers.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteCashier)
	}

	// ============ Билеты (Tickets) — продажи ============
	tickets := api.Group("/tickets")
	tickets.Use(authMiddleware.WithAuthCheck(role.Cashier, role.Admin))
	{
		tickets.GET("", h.GetTickets)
		tickets.GET("/:id", h.GetTicket)
		tickets.POST("", h.SellTicket)
		tickets.PUT("/:id", h.UpdateTicket)
		tickets.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteTicket)
	}

	// ============ Отчеты (Reports) ============
	reports := api.Group("/reports")
	reports.Use(authMiddleware.WithAuthCheck(role.Cashier, role.Admin))
	{
		reports.GET("/revenue-by-trip", h.GetRevenueByTrip)
		reports.GET("/cashier-performance", h.GetCashierPerformance)
		reports.GET("/trip-occupancy", h.GetTripOccupancy)
		reports.GET("/train-type-stats", h.GetTrainTypeStats)
		reports.GET("/sales-by-month", h.GetSalesByMonth)
		reports.GET("/top-passengers", h.GetTopPassengers)
		reports.GET("/dashboard", h.GetDashboard)
	}

	// ============ Аутентификация ============
	auth := api.Group("/auth")
	{
		// Публичные эндпоинты
		auth.POST("/register", h.AuthHandler.RegisterUser)
		auth.POST("/login", h.AuthHandler.LoginUser)

		// Защищенные эндпоинты
		auth.GET("/profile", authMiddleware.WithAuthCheck(role.Cashier, role.Admin), h.AuthHandler.GetUserProfile)
		auth.POST("/logout", authMiddleware.WithAuthCheck(role.Cashier, role.Admin), h.AuthHandler.LogoutUser)
	}

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}
