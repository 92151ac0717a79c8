package ds

import "fmt"

// Пассажир. Возраст определяет скидочную категорию при расчете цены билета
type Passenger struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"type:varchar(100);not null"`
	LastName  string `gorm:"type:varchar(100);not null"`
	Passport  string `gorm:"type:varchar(50);not null;index"`
	Age       int    `gorm:"not null"`
}

func (p *Passenger) FullName() string {
	return fmt.Sprintf("%s %s", p.FirstName, p.LastName)
}

func (p *Passenger) Initials() string {
	if p.FirstName == "" || p.LastName == "" {
		return ""
	}
	return fmt.Sprintf("%c.%c.", []rune(p.FirstName)[0], []rune(p.LastName)[0])
}

// AgeGroup возвращает название возрастной категории.
// Границы совпадают со скидочными: до 18 и после 60 лет
func (p *Passenger) AgeGroup() string {
	if p.Age < 18 {
		return "несовершеннолетний"
	}
	if p.Age > 60 {
		return "пенсионер"
	}
	return "взрослый"
}
