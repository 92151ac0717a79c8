package ds

// Справочник билетных касс
type TicketOffice struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"type:varchar(255);not null;default:'Железнодорожная касса'"`
	Location string `gorm:"type:varchar(255);not null"`
	Phone    string `gorm:"type:varchar(32)"`
}
