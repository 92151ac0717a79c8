package repository

import (
	"fmt"
	"strings"

	"backend/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для работы с кассирами

func validateCashier(c *ds.Cashier) error {
	if strings.TrimSpace(c.FirstName) == "" || strings.TrimSpace(c.LastName) == "" {
		return fmt.Errorf("%w: имя и фамилия кассира обязательны", ErrValidation)
	}
	if c.HireDate.IsZero() {
		return fmt.Errorf("%w: дата найма кассира обязательна", ErrValidation)
	}
	return nil
}

func (r *Repository) CreateCashier(c *ds.Cashier) error {
	if err := validateCashier(c); err != nil {
		return err
	}
	return r.db.Create(c).Error
}

// DeleteCashier удаляет кассира, обнуляя ссылку на него в проданных
// билетах: история продаж переживает увольнение кассира
func (r *Repository) DeleteCashier(id uint) (bool, error) {
	var deleted bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&ds.Ticket{}).Where("cashier_id = ?", id).
			Update("cashier_id", nil).Error; err != nil {
			return err
		}
		result := tx.Delete(&ds.Cashier{}, id)
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
