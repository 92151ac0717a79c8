package role

// Роли пользователей системы
type Role int

const (
	Cashier Role = iota // кассир — продажа билетов и работа с пассажирами
	Admin               // администратор — управление рейсами и справочниками
)

func (r Role) String() string {
	switch r {
	case Cashier:
		return "cashier"
	case Admin:
		return "admin"
	}
	return "unknown"
}
