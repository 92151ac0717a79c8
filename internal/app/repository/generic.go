package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Обобщенные CRUD-операции, единые для всех сущностей.
// Вместо иерархии базовый-репозиторий/наследники каждая операция
// параметризована типом сущности

// All возвращает все записи таблицы в порядке возрастания id
func All[T any](r *Repository) ([]T, error) {
	var items []T
	err := r.db.Order("id").Find(&items).Error
	return items, err
}

// GetByID возвращает запись по id или ErrNotFound
func GetByID[T any](r *Repository, id uint) (*T, error) {
	var item T
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id=%d", ErrNotFound, id)
		}
		return nil, err
	}
	return &item, nil
}

// Create сохраняет новую запись и заполняет ее id
func Create[T any](r *Repository, item *T) error {
	return r.db.Create(item).Error
}

// UpdateByID обновляет перечисленные поля записи и возвращает ее
// новое состояние; ErrNotFound — если записи нет
func UpdateByID[T any](r *Repository, id uint, fields map[string]interface{}) (*T, error) {
	if _, err := GetByID[T](r, id); err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := r.db.Model(new(T)).Where("id = ?", id).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return GetByID[T](r, id)
}

// DeleteByID удаляет запись; false — если записи не было
func DeleteByID[T any](r *Repository, id uint) (bool, error) {
	result := r.db.Delete(new(T), id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
