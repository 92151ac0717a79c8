package handler

import (
	"io"
	"net/http"
	"time"

	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ Рейсы (Trips) ============

// toTripResponse собирает DTO рейса: свободные места считаются по
// проданным билетам, вместо имени файла отдается временная ссылка MinIO
func (h *APIHandler) toTripResponse(t *ds.Trip) dto.TripResponse {
	sold, err := h.Repository.SoldSeats(t.ID)
	if err != nil {
		logrus.Warnf("Failed to count sold seats for trip %d: %v", t.ID, err)
	}

	imageURL := ""
	if t.ImageURL != nil && *t.ImageURL != "" && h.MinIOClient != nil {
		url, err := h.MinIOClient.GetFileURL(*t.ImageURL)
		if err != nil {
			logrus.Warnf("Failed to get presigned URL for %s: %v", *t.ImageURL, err)
		} else {
			imageURL = url
		}
	}

	return dto.TripResponse{
		ID:              t.ID,
		StartStation:    t.StartStation,
		EndStation:      t.EndStation,
		DistanceKM:      t.DistanceKM,
		Number:          t.Number,
		TrainType:       t.TrainType,
		Departure:       t.Departure,
		Arrival:         t.Arrival,
		DurationMinutes: t.DurationMinutes(),
		Duration:        t.DurationStr(),
		Price:           t.Price,
		Capacity:        t.Capacity,
		AvailableSeats:  t.AvailableSeats(sold),
		ImageURL:        imageURL,
	}
}

func (h *APIHandler) toTripListResponse(trips []ds.Trip) dto.TripListResponse {
	dtoTrips := make([]dto.TripResponse, len(trips))
	for i := range trips {
		dtoTrips[i] = h.toTripResponse(&trips[i])
	}
	return dto.TripListResponse{
		Trips: dtoTrips,
		Total: len(dtoTrips),
	}
}

// GetTrips получает список рейсов
// @Summary Получение списка рейсов
// @Tags Trips
// @Produce json
// @Success 200 {object} dto.TripListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips [get]
func (h *APIHandler) GetTrips(c *gin.Context) {
	trips, err := repository.All[ds.Trip](h.Repository)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toTripListResponse(trips))
}

// GetUpcomingTrips получает предстоящие рейсы
// @Summary Получение предстоящих рейсов
// @Description Возвращает рейсы с отправлением не раньше заданного момента (по умолчанию — сейчас)
// @Tags Trips
// @Produce json
// @Param from query string false "Момент отсчета (RFC3339)"
// @Success 200 {object} dto.TripListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/trips/upcoming [get]
func (h *APIHandler) GetUpcomingTrips(c *gin.Context) {
	from := time.Now()
	if fromStr := c.Query("from"); fromStr != "" {
		parsed, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			h.errorResponse(c, http.StatusBadRequest, "Неверный формат параметра from, ожидается RFC3339")
			return
		}
		from = parsed
	}

	trips, err := h.Repository.UpcomingTrips(from)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toTripListResponse(trips))
}

// GetTrip получает один рейс
// @Summary Получение рейса по ID
// @Tags Trips
// @Produce json
// @Param id path int true "ID рейса"
// @Success 200 {object} dto.TripResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/trips/{id} [get]
func (h *APIHandler) GetTrip(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID рейса")
		return
	}

	trip, err := repository.GetByID[ds.Trip](h.Repository, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.toTripResponse(trip))
}

// CreateTrip создает новый рейс
// @Summary Создание рейса
// @Description Создает рейс (только для администраторов)
// @Tags Trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.TripRequest true "Данные рейса"
// @Success 201 {object} dto.TripResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips [post]
func (h *APIHandler) CreateTrip(c *gin.Context) {
	var req dto.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	trip := ds.Trip{
		StartStation: req.StartStation,
		EndStation:   req.EndStation,
		DistanceKM:   req.DistanceKM,
		Number:       req.Number,
		TrainType:    req.TrainType,
		Departure:    req.Departure,
		Arrival:      req.Arrival,
		Price:        req.Price,
		Capacity:     req.Capacity,
	}
	if err := h.Repository.CreateTrip(&trip); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.toTripResponse(&trip))
}

// UpdateTrip обновляет рейс
// @Summary Обновление рейса
// @Description Обновляет данные рейса. Цены уже проданных билетов не пересчитываются
// @Tags Trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID рейса"
// @Param request body dto.UpdateTripRequest true "Данные для обновления"
// @Success 200 {object} dto.TripResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/trips/{id} [put]
func (h *APIHandler) UpdateTrip(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID рейса")
		return
	}

	var req dto.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	fields := map[string]interface{}{}
	if req.StartStation != nil {
		fields["start_station"] = *req.StartStation
	}
	if req.EndStation != nil {
		fields["end_station"] = *req.EndStation
	}
	if req.DistanceKM != nil {
		fields["distance_km"] = *req.DistanceKM
	}
	if req.Number != nil {
		fields["number"] = *req.Number
	}
	if req.TrainType != nil {
		fields["train_type"] = *req.TrainType
	}
	if req.Departure != nil {
		fields["departure"] = *req.Departure
	}
	if req.Arrival != nil {
		fields["arrival"] = *req.Arrival
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Capacity != nil {
		fields["capacity"] = *req.Capacity
	}

	trip, err := repository.UpdateByID[ds.Trip](h.Repository, id, fields)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.toTripResponse(trip))
}

// DeleteTrip удаляет рейс
// @Summary Удаление рейса
// @Description Удаляет рейс вместе с изображением в MinIO (только для администраторов)
// @Tags Trips
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID рейса"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/trips/{id} [delete]
func (h *APIHandler) DeleteTrip(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID рейса")
		return
	}

	// Сначала получаем рейс, чтобы удалить изображение
	trip, err := repository.GetByID[ds.Trip](h.Repository, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if trip.ImageURL != nil && *trip.ImageURL != "" && h.MinIOClient != nil {
		if err := h.MinIOClient.DeleteFile(*trip.ImageURL); err != nil {
			logrus.Warnf("Failed to delete image from MinIO: %v", err)
		}
	}

	deleted, err := repository.DeleteByID[ds.Trip](h.Repository, id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !deleted {
		h.errorResponse(c, http.StatusNotFound, "Рейс не найден")
		return
	}

	h.successResponse(c, http.StatusOK, "Рейс успешно удален", nil)
}

// UploadTripImage загружает изображение для рейса
// @Summary Загрузка изображения рейса
// @Description Загружает изображение рейса в MinIO (только для администраторов)
// @Tags Trips
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID рейса"
// @Param image formData file true "Файл изображения"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips/{id}/image [post]
func (h *APIHandler) UploadTripImage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID рейса")
		return
	}

	trip, err := repository.GetByID[ds.Trip](h.Repository, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if h.MinIOClient == nil {
		h.errorResponse(c, http.StatusInternalServerError, "Хранилище изображений не настроено")
		return
	}

	// Получаем файл из запроса
	file, err := c.FormFile("image")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Файл не найден в запросе")
		return
	}

	openedFile, err := file.Open()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка чтения файла")
		return
	}
	defer openedFile.Close()

	fileData, err := io.ReadAll(openedFile)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка чтения файла")
		return
	}

	// Удаляем старое изображение из MinIO (если есть)
	if trip.ImageURL != nil && *trip.ImageURL != "" {
		if err := h.MinIOClient.DeleteFile(*trip.ImageURL); err != nil {
			logrus.Warnf("Failed to delete old image %s: %v", *trip.ImageURL, err)
		}
	}

	filename, err := h.MinIOClient.UploadFile(fileData, file.Filename)
	if err != nil {
		logrus.Error("Error uploading to MinIO: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка загрузки изображения")
		return
	}

	if _, err := repository.UpdateByID[ds.Trip](h.Repository, id, map[string]interface{}{
		"image_url": filename,
	}); err != nil {
		h.respondError(c, err)
		return
	}

	url, err := h.MinIOClient.GetFileURL(filename)
	if err != nil {
		logrus.Warnf("Failed to get presigned URL for %s: %v", filename, err)
	}

	h.successResponse(c, http.StatusOK, "Изображение успешно загружено", gin.H{
		"image_url": url,
	})
}
