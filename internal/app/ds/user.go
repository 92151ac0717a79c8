package ds

// Учетная запись для входа в API
type User struct {
	ID       uint   `gorm:"primaryKey"`
	Login    string `gorm:"type:varchar(50);unique;not null"`
	Password string `gorm:"type:varchar(255);not null"` // SHA-1 хеш
	FullName string `gorm:"type:varchar(100)"`
	Role     int    `gorm:"not null;default:0"` // 0 - кассир, 1 - администратор
}
