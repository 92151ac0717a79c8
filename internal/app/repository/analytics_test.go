package repository

import (
	"fmt"
	"testing"
	"time"

	"backend/internal/app/ds"

	"github.com/shopspring/decimal"
)

// analyticsFixture наполняет базу небольшим набором продаж:
//
//	T1 Киев-Львов (Интерсити, тариф 100, 10 мест):  P1(10 лет)=60, P2(30 лет)=120, кассир C1
//	T2 Киев-Одесса (Пассажирский, тариф 50, 4 места): P3(70 лет)=42 (C2), P2=60 (без кассира)
//	T3 Львов-Харьков (Интерсити, тариф 80, 5 мест):  без продаж
type analyticsFixture struct {
	t1, t2, t3 *ds.Trip
	p1, p2, p3 *ds.Passenger
	c1, c2     *ds.Cashier
	tickets    []*ds.Ticket
}

func setupAnalyticsFixture(t *testing.T, r *Repository) *analyticsFixture {
	t.Helper()
	f := &analyticsFixture{}

	f.c1 = mustCreateCashier(t, r, "Анна", "Петрова")
	f.c2 = mustCreateCashier(t, r, "Мария", "Сидорова")

	f.t1 = mustCreateTrip(t, r, "Киев", "Львов", "Интерсити", 100, 10)
	f.t2 = mustCreateTrip(t, r, "Киев", "Одесса", "Пассажирский", 50, 4)
	f.t3 = mustCreateTrip(t, r, "Львов", "Харьков", "Интерсити", 80, 5)

	f.p1 = mustCreatePassenger(t, r, "Иван", "Иванов", "4500 111111", 10)
	f.p2 = mustCreatePassenger(t, r, "Петр", "Петров", "4500 222222", 30)
	f.p3 = mustCreatePassenger(t, r, "Ольга", "Смирнова", "4500 333333", 70)

	sales := []TicketSale{
		{PassengerID: f.p1.ID, CashierID: &f.c1.ID, TripID: f.t1.ID}, // 60
		{PassengerID: f.p2.ID, CashierID: &f.c1.ID, TripID: f.t1.ID}, // 120
		{PassengerID: f.p3.ID, CashierID: &f.c2.ID, TripID: f.t2.ID}, // 42
		{PassengerID: f.p2.ID, TripID: f.t2.ID},                      // 60
	}
	for i, sale := range sales {
		ticket, err := r.CreateTicket(sale)
		if err != nil {
			t.Fatalf("fixture sale %d: %v", i, err)
		}
		f.tickets = append(f.tickets, ticket)
	}

	// Раскидываем даты покупок по месяцам и годам
	dates := []time.Time{
		time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 20, 11, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 20, 12, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 5, 13, 0, 0, 0, time.UTC),
	}
	for i, ticket := range f.tickets {
		err := r.db.Model(&ds.Ticket{}).Where("id = ?", ticket.ID).
			Update("purchase_date", dates[i]).Error
		if err != nil {
			t.Fatalf("backdate ticket %d: %v", i, err)
		}
	}

	return f
}

func TestRevenueByTrip(t *testing.T) {
	r := newTestRepo(t)
	f := setupAnalyticsFixture(t, r)

	rows, err := r.RevenueByTrip()
	if err != nil {
		t.Fatalf("revenue: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	want := []struct {
		tripID  uint
		revenue string
		sold    int64
	}{
		{f.t1.ID, "180", 2},
		{f.t2.ID, "102", 2},
		{f.t3.ID, "0", 0},
	}
	for i, w := range want {
		if rows[i].TripID != w.tripID {
			t.Errorf("row %d: trip = %d, want %d", i, rows[i].TripID, w.tripID)
		}
		if !rows[i].TotalRevenue.Equal(decimal.RequireFromString(w.revenue)) {
			t.Errorf("row %d: revenue = %s, want %s", i, rows[i].TotalRevenue, w.revenue)
		}
		if rows[i].TicketsSold != w.sold {
			t.Errorf("row %d: sold = %d, want %d", i, rows[i].TicketsSold, w.sold)
		}
	}
	if rows[2].StartStation != "Львов" {
		t.Errorf("zero-revenue trip stations not filled: %+v", rows[2])
	}
}

func TestCashierPerformance(t *testing.T) {
	r := newTestRepo(t)
	f := setupAnalyticsFixture(t, r)
	// Кассир без продаж не должен попасть в отчет
	mustCreateCashier(t, r, "Нина", "Козлова")

	rows, err := r.CashierPerformance()
	if err != nil {
		t.Fatalf("performance: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	if rows[0].CashierID != f.c1.ID || rows[0].TicketsCount != 2 ||
		!rows[0].TotalSales.Equal(decimal.RequireFromString("180")) {
		t.Errorf("row 0 = %+v, want cashier %d with 2 sales for 180", rows[0], f.c1.ID)
	}
	if rows[1].CashierID != f.c2.ID || rows[1].TicketsCount != 1 ||
		!rows[1].TotalSales.Equal(decimal.RequireFromString("42")) {
		t.Errorf("row 1 = %+v, want cashier %d with 1 sale for 42", rows[1], f.c2.ID)
	}
	if rows[0].FirstName != "Анна" {
		t.Errorf("row 0 name = %s %s", rows[0].FirstName, rows[0].LastName)
	}
}

func TestTripOccupancy(t *testing.T) {
	r := newTestRepo(t)
	f := setupAnalyticsFixture(t, r)

	rows, err := r.TripOccupancy()
	if err != nil {
		t.Fatalf("occupancy: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	want := []struct {
		tripID uint
		rate   float64
		sold   int64
	}{
		{f.t2.ID, 50, 2}, // 2 из 4
		{f.t1.ID, 20, 2}, // 2 из 10
		{f.t3.ID, 0, 0},
	}
	for i, w := range want {
		if rows[i].TripID != w.tripID {
			t.Errorf("row %d: trip = %d, want %d", i, rows[i].TripID, w.tripID)
		}
		if rows[i].OccupancyRate != w.rate {
			t.Errorf("row %d: rate = %v, want %v", i, rows[i].OccupancyRate, w.rate)
		}
		if rows[i].SoldCount != w.sold {
			t.Errorf("row %d: sold = %d, want %d", i, rows[i].SoldCount, w.sold)
		}
	}
}

func TestTrainTypeStats(t *testing.T) {
	r := newTestRepo(t)
	setupAnalyticsFixture(t, r)

	rows, err := r.TrainTypeStats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	// Интерсити раньше по алфавиту; T3 без билетов входит в число рейсов
	ic := rows[0]
	if ic.TrainType != "Интерсити" {
		t.Fatalf("row 0 type = %q", ic.TrainType)
	}
	if ic.AvgPassengerAge != 20 { // (10 + 30) / 2
		t.Errorf("Интерсити avg age = %v, want 20", ic.AvgPassengerAge)
	}
	if !ic.MaxTicketPrice.Equal(decimal.RequireFromString("120")) {
		t.Errorf("Интерсити max price = %s, want 120", ic.MaxTicketPrice)
	}
	if ic.TripsCount != 2 {
		t.Errorf("Интерсити trips = %d, want 2", ic.TripsCount)
	}

	ps := rows[1]
	if ps.TrainType != "Пассажирский" {
		t.Fatalf("row 1 type = %q", ps.TrainType)
	}
	if ps.AvgPassengerAge != 50 { // (70 + 30) / 2
		t.Errorf("Пассажирский avg age = %v, want 50", ps.AvgPassengerAge)
	}
	if !ps.MaxTicketPrice.Equal(decimal.RequireFromString("60")) {
		t.Errorf("Пассажирский max price = %s, want 60", ps.MaxTicketPrice)
	}
	if ps.TripsCount != 1 {
		t.Errorf("Пассажирский trips = %d, want 1", ps.TripsCount)
	}
}

func TestSalesByMonthCollapsesYears(t *testing.T) {
	r := newTestRepo(t)
	setupAnalyticsFixture(t, r)

	rows, err := r.SalesByMonth(false)
	if err != nil {
		t.Fatalf("sales: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	// Январь 2024 и январь 2025 схлопнулись в одну строку
	if rows[0].Month != 1 || rows[0].Year != 0 {
		t.Errorf("row 0 = %+v, want month 1 without year", rows[0])
	}
	if !rows[0].Revenue.Equal(decimal.RequireFromString("222")) || rows[0].TicketsSold != 3 {
		t.Errorf("january = %s (%d tickets), want 222 (3)", rows[0].Revenue, rows[0].TicketsSold)
	}
	if rows[1].Month != 3 || !rows[1].Revenue.Equal(decimal.RequireFromString("60")) || rows[1].TicketsSold != 1 {
		t.Errorf("march = %+v, want 60 (1)", rows[1])
	}
}

func TestSalesByMonthPerYear(t *testing.T) {
	r := newTestRepo(t)
	setupAnalyticsFixture(t, r)

	rows, err := r.SalesByMonth(true)
	if err != nil {
		t.Fatalf("sales: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	want := []struct {
		year, month int
		revenue     string
		sold        int64
	}{
		{2024, 1, "180", 2},
		{2025, 1, "42", 1},
		{2025, 3, "60", 1},
	}
	for i, w := range want {
		row := rows[i]
		if row.Year != w.year || row.Month != w.month {
			t.Errorf("row %d: %d-%02d, want %d-%02d", i, row.Year, row.Month, w.year, w.month)
		}
		if !row.Revenue.Equal(decimal.RequireFromString(w.revenue)) || row.TicketsSold != w.sold {
			t.Errorf("row %d: %s (%d), want %s (%d)", i, row.Revenue, row.TicketsSold, w.revenue, w.sold)
		}
	}
}

func TestTopPassengers(t *testing.T) {
	r := newTestRepo(t)
	f := setupAnalyticsFixture(t, r)
	// Пассажир без билетов не должен попасть в отчет
	mustCreatePassenger(t, r, "Нина", "Козлова", "4500 444444", 25)

	rows, err := r.TopPassengers()
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	want := []struct {
		passengerID uint
		spent       string
		count       int64
	}{
		{f.p2.ID, "180", 2},
		{f.p1.ID, "60", 1},
		{f.p3.ID, "42", 1},
	}
	for i, w := range want {
		if rows[i].PassengerID != w.passengerID {
			t.Errorf("row %d: passenger = %d, want %d", i, rows[i].PassengerID, w.passengerID)
		}
		if !rows[i].TotalSpent.Equal(decimal.RequireFromString(w.spent)) {
			t.Errorf("row %d: spent = %s, want %s", i, rows[i].TotalSpent, w.spent)
		}
		if rows[i].TicketsCount != w.count {
			t.Errorf("row %d: count = %d, want %d", i, rows[i].TicketsCount, w.count)
		}
	}
	if rows[0].Passport != f.p2.Passport {
		t.Errorf("row 0 passport = %q", rows[0].Passport)
	}
}

func TestTopPassengersLimitAndTieBreak(t *testing.T) {
	r := newTestRepo(t)
	trip := mustCreateTrip(t, r, "Киев", "Львов", "Интерсити", 100, 20)

	// 12 пассажиров с одинаковыми тратами: в отчет входят первые 10 по id
	var ids []uint
	for i := 0; i < 12; i++ {
		p := mustCreatePassenger(t, r, "Иван", fmt.Sprintf("Иванов-%02d", i),
			fmt.Sprintf("4500 %06d", i), 30)
		if _, err := r.CreateTicket(TicketSale{PassengerID: p.ID, TripID: trip.ID}); err != nil {
			t.Fatalf("sell %d: %v", i, err)
		}
		ids = append(ids, p.ID)
	}

	rows, err := r.TopPassengers()
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(rows) != 10 {
		t.Fatalf("got %d rows, want 10", len(rows))
	}
	for i, row := range rows {
		if row.PassengerID != ids[i] {
			t.Errorf("row %d: passenger = %d, want %d", i, row.PassengerID, ids[i])
		}
	}
}

func TestGetDashboard(t *testing.T) {
	r := newTestRepo(t)
	setupAnalyticsFixture(t, r)

	dashboard, err := r.GetDashboard(false)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if len(dashboard.RevenueByTrip) != 3 {
		t.Errorf("revenue rows = %d", len(dashboard.RevenueByTrip))
	}
	if len(dashboard.CashierPerformance) != 2 {
		t.Errorf("cashier rows = %d", len(dashboard.CashierPerformance))
	}
	if len(dashboard.TripOccupancy) != 3 {
		t.Errorf("occupancy rows = %d", len(dashboard.TripOccupancy))
	}
	if len(dashboard.TrainTypeStats) != 2 {
		t.Errorf("train type rows = %d", len(dashboard.TrainTypeStats))
	}
	if len(dashboard.SalesByMonth) != 2 {
		t.Errorf("monthly rows = %d", len(dashboard.SalesByMonth))
	}
	if len(dashboard.TopPassengers) != 3 {
		t.Errorf("top rows = %d", len(dashboard.TopPassengers))
	}
}
