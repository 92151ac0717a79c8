package handler

import (
	"net/http"

	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/repository"

	"github.com/gin-gonic/gin"
)

// ============ Пассажиры (Passengers) ============

func toPassengerResponse(p *ds.Passenger) dto.PassengerResponse {
	return dto.PassengerResponse{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		FullName:  p.FullName(),
		Passport:  p.Passport,
		Age:       p.Age,
		AgeGroup:  p.AgeGroup(),
	}
}

func toPassengerListResponse(passengers []ds.Passenger) dto.PassengerListResponse {
	dtoPassengers := make([]dto.PassengerResponse, len(passengers))
	for i := range passengers {
		dtoPassengers[i] = toPassengerResponse(&passengers[i])
	}
	return dto.PassengerListResponse{
		Passengers: dtoPassengers,
		Total:      len(dtoPassengers),
	}
}

// GetPassengers получает список пассажиров
// @Summary Получение списка пассажиров
// @Tags Passengers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.PassengerListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/passengers [get]
func (h *APIHandler) GetPassengers(c *gin.Context) {
	passengers, err := repository.All[ds.Passenger](h.Repository)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPassengerListResponse(passengers))
}

// FindPassengersByPassport ищет пассажиров по номеру паспорта
// @Summary Поиск пассажиров по паспорту
// @Description Возвращает пассажиров с точным совпадением номера паспорта
// @Tags Passengers
// @Produce json
// @Security BearerAuth
// @Param passport query string true "Номер паспорта"
// @Success 200 {object} dto.PassengerListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/passengers/by-passport [get]
func (h *APIHandler) FindPassengersByPassport(c *gin.Context) {
	passport := c.Query("passport")
	if passport == "" {
		h.errorResponse(c, http.StatusBadRequest, "Не указан номер паспорта")
		return
	}

	passengers, err := h.Repository.FindPassengersByPassport(passport)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPassengerListResponse(passengers))
}

// GetPassenger получает одного пассажира
// @Summary Получение пассажира по ID
// @Tags Passengers
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID пассажира"
// @Success 200 {object} dto.PassengerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/passengers/{id} [get]
func (h *APIHandler) GetPassenger(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID пассажира")
		return
	}

	passenger, err := repository.GetByID[ds.Passenger](h.Repository, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPassengerResponse(passenger))
}

// GetPassengerTickets получает билеты пассажира
// @Summary Получение билетов пассажира
// @Tags Passengers
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID пассажира"
// @Success 200 {object} dto.TicketListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/passengers/{id}/tickets [get]
func (h *APIHandler) GetPassengerTickets(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID пассажира")
		return
	}

	// Пассажир должен существовать, иначе 404
	if _, err := repository.GetByID[ds.Passenger](h.Repository, id); err != nil {
		h.respondError(c, err)
		return
	}

	tickets, err := h.Repository.TicketsByPassenger(id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.toTicketListResponse(tickets))
}

// CreatePassenger создает нового пассажира
// @Summary Создание пассажира
// @Tags Passengers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PassengerRequest true "Данные пассажира"
// @Success 201 {object} dto.PassengerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/passengers [post]
func (h *APIHandler) CreatePassenger(c *gin.Context) {
	var req dto.PassengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	passenger := ds.Passenger{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Passport:  req.Passport,
		Age:       req.Age,
	}
	if err := h.Repository.CreatePassenger(&passenger); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toPassengerResponse(&passenger))
}

// UpdatePassenger обновляет пассажира
// @Summary Обновление пассажира
// @Tags Passengers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID пассажира"
// @Param request body dto.UpdatePassengerRequest true "Данные для обновления"
// @Success 200 {object} dto.PassengerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/passengers/{id} [put]
func (h *APIHandler) UpdatePassenger(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID пассажира")
		return
	}

	var req dto.UpdatePassengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	fields := map[string]interface{}{}
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.Passport != nil {
		fields["passport"] = *req.Passport
	}
	if req.Age != nil {
		fields["age"] = *req.Age
	}

	passenger, err := repository.UpdateByID[ds.Passenger](h.Repository, id, fields)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPassengerResponse(passenger))
}

// DeletePassenger удаляет пассажира вместе с его билетами
// @Summary Удаление пассажира
// @Description Удаляет пассажира и каскадно все его билеты
// @Tags Passengers
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID пассажира"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/passengers/{id} [delete]
func (h *APIHandler) DeletePassenger(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID пассажира")
		return
	}

	deleted, err := h.Repository.DeletePassenger(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !deleted {
		h.errorResponse(c, http.StatusNotFound, "Пассажир не найден")
		return
	}

	h.successResponse(c, http.StatusOK, "Пассажир и его билеты удалены", nil)
}
