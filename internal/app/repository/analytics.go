package repository

import (
	"sort"

	"backend/internal/app/ds"

	"github.com/shopspring/decimal"
)

// Шесть аналитических отчетов. Все отчеты только читают данные
// и возвращают упорядоченные строки; у каждой сортировки есть
// детерминированный вторичный ключ (id по возрастанию).
// SQL намеренно держится в рамках ANSI: те же запросы работают
// и на postgres, и на sqlite в тестах

// Рейтинг прибыльности рейсов: сумма и количество проданных билетов.
// Рейсы без билетов присутствуют с нулевой выручкой и идут последними
type TripRevenueRow struct {
	TripID       uint            `json:"trip_id"`
	StartStation string          `json:"start_station"`
	EndStation   string          `json:"end_station"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TicketsSold  int64           `json:"tickets_sold"`
}

func (r *Repository) RevenueByTrip() ([]TripRevenueRow, error) {
	var rows []TripRevenueRow
	err := r.db.Table("trips").
		Select("trips.id AS trip_id, trips.start_station, trips.end_station, " +
			"COALESCE(SUM(tickets.paid_amount), 0) AS total_revenue, " +
			"COUNT(tickets.id) AS tickets_sold").
		Joins("LEFT JOIN tickets ON tickets.trip_id = trips.id").
		Group("trips.id, trips.start_station, trips.end_station").
		Order("total_revenue DESC, trip_id ASC").
		Scan(&rows).Error
	return rows, err
}

// KPI кассиров: количество и сумма продаж. Кассиры без продаж
// не попадают в отчет (внутреннее соединение)
type CashierPerformanceRow struct {
	CashierID    uint            `json:"cashier_id"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	TicketsCount int64           `json:"tickets_count"`
	TotalSales   decimal.Decimal `json:"total_sales"`
}

func (r *Repository) CashierPerformance() ([]CashierPerformanceRow, error) {
	var rows []CashierPerformanceRow
	err := r.db.Table("cashiers").
		Select("cashiers.id AS cashier_id, cashiers.first_name, cashiers.last_name, " +
			"COUNT(tickets.id) AS tickets_count, " +
			"COALESCE(SUM(tickets.paid_amount), 0) AS total_sales").
		Joins("JOIN tickets ON tickets.cashier_id = cashiers.id").
		Group("cashiers.id, cashiers.first_name, cashiers.last_name").
		Order("total_sales DESC, cashier_id ASC").
		Scan(&rows).Error
	return rows, err
}

// Заполненность рейсов в процентах от вместимости.
// Вместимость валидируется как положительная, но деление на ноль
// все равно закрыто явным CASE, а не надеждой на ошибку базы
type TripOccupancyRow struct {
	TripID        uint    `json:"trip_id"`
	StartStation  string  `json:"start_station"`
	EndStation    string  `json:"end_station"`
	Capacity      uint    `json:"capacity"`
	SoldCount     int64   `json:"sold_count"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

func (r *Repository) TripOccupancy() ([]TripOccupancyRow, error) {
	var rows []TripOccupancyRow
	err := r.db.Table("trips").
		Select("trips.id AS trip_id, trips.start_station, trips.end_station, trips.capacity, " +
			"COUNT(tickets.id) AS sold_count, " +
			"CASE WHEN trips.capacity > 0 " +
			"THEN COUNT(tickets.id) * 100.0 / trips.capacity ELSE 0 END AS occupancy_rate").
		Joins("LEFT JOIN tickets ON tickets.trip_id = trips.id").
		Group("trips.id, trips.start_station, trips.end_station, trips.capacity").
		Order("occupancy_rate DESC, trip_id ASC").
		Scan(&rows).Error
	return rows, err
}

// Статистика по типам поездов: средний возраст пассажиров по билетам
// рейсов группы, максимальная цена билета и количество рейсов
type TrainTypeStatsRow struct {
	TrainType       string          `json:"train_type"`
	AvgPassengerAge float64         `json:"avg_passenger_age"`
	MaxTicketPrice  decimal.Decimal `json:"max_ticket_price"`
	TripsCount      int64           `json:"trips_count"`
}

func (r *Repository) TrainTypeStats() ([]TrainTypeStatsRow, error) {
	var rows []TrainTypeStatsRow
	err := r.db.Table("trips").
		Select("trips.train_type, " +
			"COALESCE(AVG(passengers.age), 0) AS avg_passenger_age, " +
			"COALESCE(MAX(tickets.paid_amount), 0) AS max_ticket_price, " +
			"COUNT(DISTINCT trips.id) AS trips_count").
		Joins("LEFT JOIN tickets ON tickets.trip_id = trips.id").
		Joins("LEFT JOIN passengers ON passengers.id = tickets.passenger_id").
		Group("trips.train_type").
		Order("trips.train_type ASC").
		Scan(&rows).Error
	return rows, err
}

// Динамика продаж по месяцам. По умолчанию месяцы схлопываются между
// годами (январь 2024 и январь 2025 — одна строка), как в исходной
// системе; perYear=true дает вариант с учетом года.
// Группировка выполняется в Go поверх тонкой проекции: извлечение
// месяца — единственный кусок SQL, различающийся между postgres
// и тестовым sqlite
type MonthlySalesRow struct {
	Year        int             `json:"year,omitempty"` // 0 при схлопывании годов
	Month       int             `json:"month"`
	Revenue     decimal.Decimal `json:"monthly_revenue"`
	TicketsSold int64           `json:"tickets_sold"`
}

func (r *Repository) SalesByMonth(perYear bool) ([]MonthlySalesRow, error) {
	var tickets []ds.Ticket
	err := r.db.Model(&ds.Ticket{}).Select("purchase_date", "paid_amount").Find(&tickets).Error
	if err != nil {
		return nil, err
	}

	type bucket struct{ year, month int }
	groups := make(map[bucket]*MonthlySalesRow)
	for _, t := range tickets {
		key := bucket{month: int(t.PurchaseDate.Month())}
		if perYear {
			key.year = t.PurchaseDate.Year()
		}
		row, ok := groups[key]
		if !ok {
			row = &MonthlySalesRow{Year: key.year, Month: key.month, Revenue: decimal.Zero}
			groups[key] = row
		}
		row.Revenue = row.Revenue.Add(t.PaidAmount)
		row.TicketsSold++
	}

	rows := make([]MonthlySalesRow, 0, len(groups))
	for _, row := range groups {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Year != rows[j].Year {
			return rows[i].Year < rows[j].Year
		}
		return rows[i].Month < rows[j].Month
	})
	return rows, nil
}

// "VIP" пассажиры: топ-10 по потраченной сумме. Пассажиры без билетов
// исключаются; при равных суммах раньше идет меньший id
type TopPassengerRow struct {
	PassengerID  uint            `json:"passenger_id"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	Passport     string          `json:"passport"`
	TotalSpent   decimal.Decimal `json:"total_spent"`
	TicketsCount int64           `json:"tickets_count"`
}

const topPassengersLimit = 10

func (r *Repository) TopPassengers() ([]TopPassengerRow, error) {
	var rows []TopPassengerRow
	err := r.db.Table("passengers").
		Select("passengers.id AS passenger_id, passengers.first_name, passengers.last_name, passengers.passport, "+
			"COALESCE(SUM(tickets.paid_amount), 0) AS total_spent, "+
			"COUNT(tickets.id) AS tickets_count").
		Joins("JOIN tickets ON tickets.passenger_id = passengers.id").
		Group("passengers.id, passengers.first_name, passengers.last_name, passengers.passport").
		Order("total_spent DESC, passenger_id ASC").
		Limit(topPassengersLimit).
		Scan(&rows).Error
	return rows, err
}

// Dashboard собирает все шесть отчетов для сводной страницы.
// Отчеты читаются независимо, согласованность между ними не требуется
type Dashboard struct {
	RevenueByTrip      []TripRevenueRow        `json:"revenue_by_trip"`
	CashierPerformance []CashierPerformanceRow `json:"cashier_performance"`
	TripOccupancy      []TripOccupancyRow      `json:"trip_occupancy"`
	TrainTypeStats     []TrainTypeStatsRow     `json:"train_type_stats"`
	SalesByMonth       []MonthlySalesRow       `json:"sales_by_month"`
	TopPassengers      []TopPassengerRow       `json:"top_passengers"`
}

func (r *Repository) GetDashboard(salesPerYear bool) (*Dashboard, error) {
	dashboard := &Dashboard{}
	var err error

	if dashboard.RevenueByTrip, err = r.RevenueByTrip(); err != nil {
		return nil, err
	}
	if dashboard.CashierPerformance, err = r.CashierPerformance(); err != nil {
		return nil, err
	}
	if dashboard.TripOccupancy, err = r.TripOccupancy(); err != nil {
		return nil, err
	}
	if dashboard.TrainTypeStats, err = r.TrainTypeStats(); err != nil {
		return nil, err
	}
	if dashboard.SalesByMonth, err = r.SalesByMonth(salesPerYear); err != nil {
		return nil, err
	}
	if dashboard.TopPassengers, err = r.TopPassengers(); err != nil {
		return nil, err
	}

	return dashboard, nil
}
