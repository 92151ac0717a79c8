package repository

import (
	"fmt"
	"strings"

	"backend/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для работы с пассажирами

func validatePassenger(p *ds.Passenger) error {
	if strings.TrimSpace(p.FirstName) == "" || strings.TrimSpace(p.LastName) == "" {
		return fmt.Errorf("%w: имя и фамилия пассажира обязательны", ErrValidation)
	}
	if strings.TrimSpace(p.Passport) == "" {
		return fmt.Errorf("%w: паспорт пассажира обязателен", ErrValidation)
	}
	if p.Age < 0 {
		return fmt.Errorf("%w: возраст не может быть отрицательным", ErrValidation)
	}
	return nil
}

func (r *Repository) CreatePassenger(p *ds.Passenger) error {
	if err := validatePassenger(p); err != nil {
		return err
	}
	return r.db.Create(p).Error
}

func (r *Repository) FindPassengersByPassport(passport string) ([]ds.Passenger, error) {
	var passengers []ds.Passenger
	err := r.db.Where("passport = ?", passport).Order("id").Find(&passengers).Error
	return passengers, err
}

// DeletePassenger удаляет пассажира вместе с его билетами (каскад).
// Проданные билеты без пассажира не имеют смысла
func (r *Repository) DeletePassenger(id uint) (bool, error) {
	var deleted bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("passenger_id = ?", id).Delete(&ds.Ticket{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&ds.Passenger{}, id)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
