package handler

import (
	"net/http"

	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/repository"

	"github.com/gin-gonic/gin"
)

// ============ Кассиры (Cashiers) ============

func toCashierResponse(c *ds.Cashier) dto.CashierResponse {
	return dto.CashierResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		FullName:  c.FullName(),
		HireDate:  c.HireDate,
		WorkYears: c.WorkYears(),
	}
}

// GetCashiers получает список кассиров
// @Summary Получение списка кассиров
// @Tags Cashiers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CashierListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/cashiers [get]
func (h *APIHandler) GetCashiers(c *gin.Context) {
	cashiers, err := repository.All[ds.Cashier](h.Repository)
	if err != nil {
		h.respondError(c, err)
		return
	}

	dtoCashiers := make([]dto.CashierResponse, len(cashiers))
	for i := range cashiers {
		dtoCashiers[i] = toCashierResponse(&cashiers[i])
	}

	c.JSON(http.StatusOK, dto.CashierListResponse{
		Cashiers: dtoCashiers,
		Total:    len(dtoCashiers),
	})
}

// GetCashier получает одного кассира
// @Summary Получение кассира по ID
// @Tags Cashiers
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID кассира"
// @Success 200 {object} dto.CashierResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/cashiers/{id} [get]
func (h *APIHandler) GetCashier(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID кассира")
		return
	}

	cashier, err := repository.GetByID[ds.Cashier](h.Repository, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCashierResponse(cashier))
}

// CreateCashier создает нового кассира
// @Summary Создание кассира
// @Tags Cashiers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CashierRequest true "Данные кассира"
// @Success 201 {object} dto.CashierResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/cashiers [post]
func (h *APIHandler) CreateCashier(c *gin.Context) {
	var req dto.CashierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	cashier := ds.Cashier{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		HireDate:  req.HireDate,
	}
	if err := h.Repository.CreateCashier(&cashier); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toCashierResponse(&cashier))
}

// UpdateCashier обновляет кассира
// @Summary Обновление кассира
// @Tags Cashiers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID кассира"
// @Param request body dto.UpdateCashierRequest true "Данные для обновления"
// @Success 200 {object} dto.CashierResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/cashiers/{id} [put]
func (h *APIHandler) UpdateCashier(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID кассира")
		return
	}

	var req dto.UpdateCashierRequest
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
	if req.HireDate != nil {
		fields["hire_date"] = *req.HireDate
	}

	cashier, err := repository.UpdateByID[ds.Cashier](h.Repository, id, fields)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCashierResponse(cashier))
}

// DeleteCashier удаляет кассира
// @Summary Удаление кассира
// @Description Удаляет кассира, история его продаж сохраняется без ссылки на кассира
// @Tags Cashiers
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID кассира"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/cashiers/{id} [delete]
func (h *APIHandler) DeleteCashier(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID кассира")
		return
	}

	deleted, err := h.Repository.DeleteCashier(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !deleted {
		h.errorResponse(c, http.StatusNotFound, "Кассир не найден")
		return
	}

	h.successResponse(c, http.StatusOK, "Кассир успешно удален", nil)
}
