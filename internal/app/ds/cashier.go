package ds

import (
	"fmt"
	"time"
)

// Кассир. Билеты хранят ссылку на продавшего кассира,
// при удалении кассира ссылка обнуляется (история продаж сохраняется)
type Cashier struct {
	ID        uint      `gorm:"primaryKey"`
	FirstName string    `gorm:"type:varchar(100);not null"`
	LastName  string    `gorm:"type:varchar(100);not null"`
	HireDate  time.Time `gorm:"type:date;not null"`
}

func (c *Cashier) FullName() string {
	return fmt.Sprintf("%s %s", c.FirstName, c.LastName)
}

// WorkYears считает стаж в годах от даты найма
func (c *Cashier) WorkYears() int {
	return time.Now().Year() - c.HireDate.Year()
}
