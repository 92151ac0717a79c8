package handler

import (
	"net/http"

	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/repository"

	"github.com/gin-gonic/gin"
)

// ============ Билеты (Tickets) ============

func (h *APIHandler) toTicketResponse(t *ds.Ticket) dto.TicketResponse {
	resp := dto.TicketResponse{
		ID:           t.ID,
		PurchaseDate: t.PurchaseDate,
		BasePrice:    t.BasePrice,
		PaidAmount:   t.PaidAmount,
	}
	if t.PaymentMethod != nil {
		resp.PaymentMethod = *t.PaymentMethod
	}
	if t.Passenger.ID != 0 {
		passenger := toPassengerResponse(&t.Passenger)
		resp.Passenger = &passenger
	}
	if t.Cashier != nil {
		cashier := toCashierResponse(t.Cashier)
		resp.Cashier = &cashier
	}
	if t.Trip.ID != 0 {
		trip := h.toTripResponse(&t.Trip)
		resp.Trip = &trip
	}
	return resp
}

func (h *APIHandler) toTicketListResponse(tickets []ds.Ticket) dto.TicketListResponse {
	dtoTickets := make([]dto.TicketResponse, len(tickets))
	for i := range tickets {
		dtoTickets[i] = h.toTicketResponse(&tickets[i])
	}
	return dto.TicketListResponse{
		Tickets: dtoTickets,
		Total:   len(dtoTickets),
	}
}

// GetTickets получает список билетов
// @Summary Получение списка билетов
// @Tags Tickets
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TicketListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/tickets [get]
func (h *APIHandler) GetTickets(c *gin.Context) {
	tickets, err := h.Repository.AllTickets()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toTicketListResponse(tickets))
}

// GetTicket получает один билет
// @Summary Получение билета по ID
// @Description Возвращает билет вместе с рейсом, пассажиром и кассиром
// @Tags Tickets
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID билета"
// @Success 200 {object} dto.TicketResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/tickets/{id} [get]
func (h *APIHandler) GetTicket(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID билета")
		return
	}

	ticket, err := h.Repository.GetTicketDetails(id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.toTicketResponse(ticket))
}

// SellTicket продает билет
// @Summary Продажа билета
// @Description Продает билет на рейс: проверяет свободные места и считает цену со скидкой по возрасту и налогом
// @Tags Tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.TicketSaleRequest true "Параметры продажи"
// @Success 201 {object} dto.TicketResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/tickets [post]
func (h *APIHandler) SellTicket(c *gin.Context) {
	var req dto.TicketSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	ticket, err := h.Repository.CreateTicket(repository.TicketSale{
		PassengerID:   req.PassengerID,
		CashierID:     req.CashierID,
		TripID:        req.TripID,
		BasePrice:     req.BasePrice,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	// Перечитываем со связанными записями для полного ответа
	ticket, err = h.Repository.GetTicketDetails(ticket.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.toTicketResponse(ticket))
}

// UpdateTicket обновляет билет
// @Summary Обновление билета
// @Description После продажи можно изменить только способ оплаты и кассира
// @Tags Tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID билета"
// @Param request body dto.UpdateTicketRequest true "Данные для обновления"
// @Success 200 {object} dto.TicketResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/tickets/{id} [put]
func (h *APIHandler) UpdateTicket(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID билета")
		return
	}

	var req dto.UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	fields := map[string]interface{}{}
	if req.CashierID != nil {
		fields["cashier_id"] = *req.CashierID
	}
	if req.PaymentMethod != nil {
		fields["payment_method"] = *req.PaymentMethod
	}

	if _, err := h.Repository.UpdateTicket(id, fields); err != nil {
		h.respondError(c, err)
		return
	}

	ticket, err := h.Repository.GetTicketDetails(id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.toTicketResponse(ticket))
}

// DeleteTicket удаляет билет
// @Summary Удаление билета
// @Description Удаляет билет, освобождая место на рейсе
// @Tags Tickets
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID билета"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/tickets/{id} [delete]
func (h *APIHandler) DeleteTicket(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID билета")
		return
	}

	deleted, err := repository.DeleteByID[ds.Ticket](h.Repository, id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !deleted {
		h.errorResponse(c, http.StatusNotFound, "Билет не найден")
		return
	}

	h.successResponse(c, http.StatusOK, "Билет успешно удален", nil)
}
