package ds

import (
	"time"

	"github.com/shopspring/decimal"
)

// Проданный билет. PaidAmount рассчитывается один раз в момент продажи
// (базовая цена * скидка по возрасту * налог) и больше не пересчитывается,
// даже если тариф рейса или возраст пассажира изменятся.
// Денежные поля хранятся как decimal, чтобы не терять точность
type Ticket struct {
	ID            uint            `gorm:"primaryKey"`
	PassengerID   uint            `gorm:"not null;index"`
	CashierID     *uint           `gorm:"index"` // Nullable: билет мог быть продан без кассира
	TripID        uint            `gorm:"not null;index"`
	PurchaseDate  time.Time       `gorm:"not null"`
	BasePrice     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PaymentMethod *string         `gorm:"type:varchar(50)"`
	PaidAmount    decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Passenger Passenger `gorm:"foreignKey:PassengerID;constraint:OnDelete:CASCADE"`
	Cashier   *Cashier  `gorm:"foreignKey:CashierID;constraint:OnDelete:SET NULL"`
	Trip      Trip      `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
}
