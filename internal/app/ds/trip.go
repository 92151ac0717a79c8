package ds

import (
	"fmt"
	"time"
)

// Рейс поезда. Price — базовый тариф (без скидок и налога),
// Capacity — общее количество мест
type Trip struct {
	ID           uint      `gorm:"primaryKey"`
	StartStation string    `gorm:"type:varchar(255);not null"`
	EndStation   string    `gorm:"type:varchar(255);not null"`
	DistanceKM   uint      `gorm:"not null"`
	Number       string    `gorm:"type:varchar(50);not null"`
	TrainType    string    `gorm:"type:varchar(100);not null;index"`
	Departure    time.Time `gorm:"not null"`
	Arrival      time.Time `gorm:"not null"`
	Price        uint      `gorm:"not null;default:100"`
	Capacity     uint      `gorm:"not null;default:100"`
	ImageURL     *string   `gorm:"type:varchar(255)"` // Nullable, имя файла в MinIO
}

// AvailableSeats возвращает число свободных мест при известном
// количестве проданных билетов. Может быть нулем, но не отрицательным
// при соблюдении гарантии продажи (см. repository.CreateTicket)
func (t *Trip) AvailableSeats(sold int64) int64 {
	return int64(t.Capacity) - sold
}

// DurationMinutes — длительность рейса в целых минутах (с усечением)
func (t *Trip) DurationMinutes() int {
	return int(t.Arrival.Sub(t.Departure) / time.Minute)
}

// DurationStr — длительность в виде "5 ч 30 мин"
func (t *Trip) DurationStr() string {
	mins := t.DurationMinutes()
	return fmt.Sprintf("%d ч %d мин", mins/60, mins%60)
}

func (t *Trip) Route() string {
	return fmt.Sprintf("%s — %s (%d км)", t.StartStation, t.EndStation, t.DistanceKM)
}
