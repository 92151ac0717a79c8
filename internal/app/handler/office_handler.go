package handler

import (
	"net/http"

	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/repository"

	"github.com/gin-gonic/gin"
)

// ============ Билетные кассы (Ticket Offices) ============

func toOfficeResponse(o *ds.TicketOffice) dto.OfficeResponse {
	return dto.OfficeResponse{
		ID:       o.ID,
		Name:     o.Name,
		Location: o.Location,
		Phone:    o.Phone,
	}
}

// GetOffices получает список касс
// @Summary Получение списка касс
// @Description Возвращает все билетные кассы
// @Tags Offices
// @Produce json
// @Success 200 {object} dto.OfficeListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/offices [get]
func (h *APIHandler) GetOffices(c *gin.Context) {
	offices, err := repository.All[ds.TicketOffice](h.Repository)
	if err != nil {
		h.respondError(c, err)
		return
	}

	dtoOffices := make([]dto.OfficeResponse, len(offices))
	for i := range offices {
		dtoOffices[i] = toOfficeResponse(&offices[i])
	}

	c.JSON(http.StatusOK, dto.OfficeListResponse{
		Offices: dtoOffices,
		Total:   len(dtoOffices),
	})
}

// GetOffice получает одну кассу
// @Summary Получение кассы по ID
// @Tags Offices
// @Produce json
// @Param id path int true "ID кассы"
// @Success 200 {object} dto.OfficeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/offices/{id} [get]
func (h *APIHandler) GetOffice(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID кассы")
		return
	}

	office, err := repository.GetByID[ds.TicketOffice](h.Repository, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOfficeResponse(office))
}

// CreateOffice создает новую кассу
// @Summary Создание кассы
// @Description Создает билетную кассу (только для администраторов)
// @Tags Offices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.OfficeRequest true "Данные кассы"
// @Success 201 {object} dto.OfficeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/offices [post]
func (h *APIHandler) CreateOffice(c *gin.Context) {
	var req dto.OfficeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	office := ds.TicketOffice{
		Name:     req.Name,
		Location: req.Location,
		Phone:    req.Phone,
	}
	if err := repository.Create(h.Repository, &office); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOfficeResponse(&office))
}

// UpdateOffice обновляет кассу
// @Summary Обновление кассы
// @Tags Offices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID кассы"
// @Param request body dto.UpdateOfficeRequest true "Данные для обновления"
// @Success 200 {object} dto.OfficeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/offices/{id} [put]
func (h *APIHandler) UpdateOffice(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID кассы")
		return
	}

	var req dto.UpdateOfficeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}

	office, err := repository.UpdateByID[ds.TicketOffice](h.Repository, id, fields)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOfficeResponse(office))
}

// DeleteOffice удаляет кассу
// @Summary Удаление кассы
// @Tags Offices
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID кассы"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/offices/{id} [delete]
func (h *APIHandler) DeleteOffice(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID кассы")
		return
	}

	deleted, err := repository.DeleteByID[ds.TicketOffice](h.Repository, id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !deleted {
		h.errorResponse(c, http.StatusNotFound, "Касса не найдена")
		return
	}

	h.successResponse(c, http.StatusOK, "Касса успешно удалена", nil)
}
