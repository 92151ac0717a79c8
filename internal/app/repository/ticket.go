package repository

import (
	"errors"
	"fmt"
	"time"

	"backend/internal/app/ds"
	"backend/internal/app/pricing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TicketSale — параметры продажи билета. BasePrice, равная нулю,
// означает "не задана": берется тариф рейса
type TicketSale struct {
	PassengerID   uint
	CashierID     *uint
	TripID        uint
	BasePrice     decimal.Decimal
	PaymentMethod *string
}

// CreateTicket — единственный путь появления билета. Проверка свободных
// мест, расчет цены и запись выполняются в одной транзакции: строка рейса
// блокируется, поэтому две параллельные продажи на последнее место
// не могут пройти обе
func (r *Repository) CreateTicket(sale TicketSale) (*ds.Ticket, error) {
	if sale.BasePrice.IsNegative() {
		return nil, fmt.Errorf("%w: базовая цена не может быть отрицательной", ErrValidation)
	}

	var ticket ds.Ticket
	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Холостое обновление берет блокировку строки рейса на время
		// транзакции: конкурентные продажи того же рейса сериализуются
		lock := tx.Model(&ds.Trip{}).Where("id = ?", sale.TripID).
			Update("capacity", gorm.Expr("capacity"))
		if lock.Error != nil {
			return lock.Error
		}
		if lock.RowsAffected == 0 {
			return fmt.Errorf("%w: рейс id=%d", ErrNotFound, sale.TripID)
		}

		var trip ds.Trip
		if err := tx.First(&trip, sale.TripID).Error; err != nil {
			return err
		}

		var sold int64
		if err := tx.Model(&ds.Ticket{}).Where("trip_id = ?", trip.ID).Count(&sold).Error; err != nil {
			return err
		}
		if trip.AvailableSeats(sold) <= 0 {
			return fmt.Errorf("%w: рейс %s", ErrNoSeats, trip.Route())
		}

		var passenger ds.Passenger
		if err := tx.First(&passenger, sale.PassengerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: пассажир id=%d", ErrNotFound, sale.PassengerID)
			}
			return err
		}

		if sale.CashierID != nil {
			var cashier ds.Cashier
			if err := tx.First(&cashier, *sale.CashierID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: кассир id=%d", ErrNotFound, *sale.CashierID)
				}
				return err
			}
		}

		base := pricing.ResolveBasePrice(sale.BasePrice, trip.Price)
		ticket = ds.Ticket{
			PassengerID:   passenger.ID,
			CashierID:     sale.CashierID,
			TripID:        trip.ID,
			PurchaseDate:  time.Now(),
			BasePrice:     base,
			PaymentMethod: sale.PaymentMethod,
			PaidAmount:    pricing.TicketPrice(base, passenger.Age),
		}
		return tx.Create(&ticket).Error
	})
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// ticketMutableFields — единственные поля билета, которые можно менять
// после продажи. Сумма, базовая цена, дата покупки и ссылки на рейс
// и пассажира зафиксированы в момент продажи
var ticketMutableFields = map[string]bool{
	"payment_method": true,
	"cashier_id":     true,
}

func (r *Repository) UpdateTicket(id uint, fields map[string]interface{}) (*ds.Ticket, error) {
	for name := range fields {
		if !ticketMutableFields[name] {
			return nil, fmt.Errorf("%w: поле %q нельзя изменить после продажи", ErrValidation, name)
		}
	}
	return UpdateByID[ds.Ticket](r, id, fields)
}

// GetTicketDetails возвращает билет вместе с рейсом, пассажиром и кассиром
func (r *Repository) GetTicketDetails(id uint) (*ds.Ticket, error) {
	var ticket ds.Ticket
	err := r.db.Preload("Passenger").Preload("Cashier").Preload("Trip").
		First(&ticket, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: билет id=%d", ErrNotFound, id)
		}
		return nil, err
	}
	return &ticket, nil
}

// AllTickets возвращает билеты со связанными записями для списка
func (r *Repository) AllTickets() ([]ds.Ticket, error) {
	var tickets []ds.Ticket
	err := r.db.Preload("Passenger").Preload("Cashier").Preload("Trip").
		Order("id").Find(&tickets).Error
	return tickets, err
}

// TicketsByPassenger возвращает билеты пассажира
func (r *Repository) TicketsByPassenger(passengerID uint) ([]ds.Ticket, error) {
	var tickets []ds.Ticket
	err := r.db.Preload("Trip").Preload("Cashier").
		Where("passenger_id = ?", passengerID).Order("id").Find(&tickets).Error
	return tickets, err
}
