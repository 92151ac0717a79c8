package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ============ Отчеты (Reports) ============

// GetRevenueByTrip отчет по выручке рейсов
// @Summary Выручка по рейсам
// @Description Сумма и количество проданных билетов по каждому рейсу, включая рейсы без продаж
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} repository.TripRevenueRow
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/reports/revenue-by-trip [get]
func (h *APIHandler) GetRevenueByTrip(c *gin.Context) {
	rows, err := h.Repository.RevenueByTrip()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetCashierPerformance отчет по продажам кассиров
// @Summary KPI кассиров
// @Description Количество и сумма продаж по кассирам, имеющим хотя бы одну продажу
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} repository.CashierPerformanceRow
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/reports/cashier-performance [get]
func (h *APIHandler) GetCashierPerformance(c *gin.Context) {
	rows, err := h.Repository.CashierPerformance()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetTripOccupancy отчет по заполненности рейсов
// @Summary Заполненность рейсов
// @Description Процент занятых мест по каждому рейсу
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} repository.TripOccupancyRow
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/reports/trip-occupancy [get]
func (h *APIHandler) GetTripOccupancy(c *gin.Context) {
	rows, err := h.Repository.TripOccupancy()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetTrainTypeStats отчет по типам поездов
// @Summary Статистика по типам поездов
// @Description Средний возраст пассажиров, максимальная цена билета и количество рейсов по типам поездов
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} repository.TrainTypeStatsRow
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/reports/train-type-stats [get]
func (h *APIHandler) GetTrainTypeStats(c *gin.Context) {
	rows, err := h.Repository.TrainTypeStats()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetSalesByMonth отчет по продажам за месяцы
// @Summary Динамика продаж по месяцам
// @Description Сумма и количество продаж по календарным месяцам; per_year=true учитывает год
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param per_year query bool false "Учитывать год при группировке"
// @Success 200 {array} repository.MonthlySalesRow
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/reports/sales-by-month [get]
func (h *APIHandler) GetSalesByMonth(c *gin.Context) {
	perYear := c.Query("per_year") == "true"

	rows, err := h.Repository.SalesByMonth(perYear)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetTopPassengers отчет по самым активным пассажирам
// @Summary Топ пассажиров
// @Description Десять пассажиров с наибольшей суммой покупок
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} repository.TopPassengerRow
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/reports/top-passengers [get]
func (h *APIHandler) GetTopPassengers(c *gin.Context) {
	rows, err := h.Repository.TopPassengers()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetDashboard сводная страница отчетов
// @Summary Сводка всех отчетов
// @Description Возвращает все шесть отчетов одним ответом
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param per_year query bool false "Учитывать год в отчете по месяцам"
// @Success 200 {object} repository.Dashboard
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/reports/dashboard [get]
func (h *APIHandler) GetDashboard(c *gin.Context) {
	perYear := c.Query("per_year") == "true"

	dashboard, err := h.Repository.GetDashboard(perYear)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
