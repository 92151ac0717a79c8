package repository

import (
	"fmt"
	"strings"
	"time"

	"backend/internal/app/ds"
)

// Методы для работы с рейсами

func validateTrip(t *ds.Trip) error {
	if strings.TrimSpace(t.StartStation) == "" || strings.TrimSpace(t.EndStation) == "" {
		return fmt.Errorf("%w: станции отправления и прибытия обязательны", ErrValidation)
	}
	if t.Price == 0 {
		return fmt.Errorf("%w: тариф рейса должен быть положительным", ErrValidation)
	}
	if t.Capacity == 0 {
		return fmt.Errorf("%w: количество мест должно быть положительным", ErrValidation)
	}
	if !t.Arrival.After(t.Departure) {
		return fmt.Errorf("%w: прибытие должно быть позже отправления", ErrValidation)
	}
	return nil
}

func (r *Repository) CreateTrip(t *ds.Trip) error {
	if err := validateTrip(t); err != nil {
		return err
	}
	return r.db.Create(t).Error
}

// UpcomingTrips возвращает рейсы с отправлением не раньше заданного момента
func (r *Repository) UpcomingTrips(from time.Time) ([]ds.Trip, error) {
	var trips []ds.Trip
	err := r.db.Where("departure >= ?", from).Order("departure").Find(&trips).Error
	return trips, err
}

// SoldSeats возвращает количество проданных билетов на рейс
func (r *Repository) SoldSeats(tripID uint) (int64, error) {
	var count int64
	err := r.db.Model(&ds.Ticket{}).Where("trip_id = ?", tripID).Count(&count).Error
	return count, err
}
