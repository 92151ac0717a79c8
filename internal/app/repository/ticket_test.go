package repository

import (
	"errors"
	"testing"

	"backend/internal/app/ds"

	"github.com/shopspring/decimal"
)

func TestCreateTicketPricesByAge(t *testing.T) {
	r := newTestRepo(t)
	trip := mustCreateTrip(t, r, "Киев", "Львов", "Интерсити", 100, 100)

	// тариф 100: ребенок 50% скидки, пенсионер 30%, взрослый без скидки;
	// поверх скидки налог 20%
	cases := []struct {
		age  int
		paid string
	}{
		{10, "60"},
		{70, "84"},
		{30, "120"},
		{18, "120"},
		{60, "120"},
	}

	for _, tc := range cases {
		passenger := mustCreatePassenger(t, r, "Иван", "Иванов", "4500 123456", tc.age)
		ticket, err := r.CreateTicket(TicketSale{PassengerID: passenger.ID, TripID: trip.ID})
		if err != nil {
			t.Fatalf("age %d: sell: %v", tc.age, err)
		}
		want := decimal.RequireFromString(tc.paid)
		if !ticket.PaidAmount.Equal(want) {
			t.Errorf("age %d: paid = %s, want %s", tc.age, ticket.PaidAmount, want)
		}
		if !ticket.BasePrice.Equal(decimal.NewFromInt(100)) {
			t.Errorf("age %d: base = %s, want 100", tc.age, ticket.BasePrice)
		}
		if ticket.PurchaseDate.IsZero() {
			t.Errorf("age %d: purchase date is zero", tc.age)
		}
	}
}

func TestCreateTicketExplicitBasePrice(t *testing.T) {
	r := newTestRepo(t)
	trip := mustCreateTrip(t, r, "Киев", "Львов", "Интерсити", 100, 100)
	passenger := mustCreatePassenger(t, r, "Иван", "Иванов", "4500 123456", 30)

	ticket, err := r.CreateTicket(TicketSale{
		PassengerID: passenger.ID,
		TripID:      trip.ID,
		BasePrice:   decimal.NewFromInt(50),
	})
	if err != nil {
		t.Fatalf("sell: %v", err)
	}
	if !ticket.BasePrice.Equal(decimal.NewFromInt(50)) {
		t.Errorf("base = %s, want 50", ticket.BasePrice)
	}
	if !ticket.PaidAmount.Equal(decimal.NewFromInt(60)) {
		t.Errorf("paid = %s, want 60", ticket.PaidAmount)
	}
}

func TestCreateTicketZeroBaseFallsBackToFare(t *testing.T) {
	r := newTestRepo(t)
	trip := mustCreateTrip(t, r, "Киев", "Одесса", "Пассажирский", 80, 100)
	passenger := mustCreatePassenger(t, r, "Иван", "Иванов", "4500 123456", 30)

	ticket, err := r.CreateTicket(TicketSale{
		PassengerID: passenger.ID,
		TripID:      trip.ID,
		BasePrice:   decimal.Zero,
	})
	if err != nil {
		t.Fatalf("sell: %v", err)
	}
	if !ticket.BasePrice.Equal(decimal.NewFromInt(80)) {
		t.Errorf("base = %s, want trip fare 80", ticket.BasePrice)
	}
	if !ticket.PaidAmount.Equal(decimal.NewFromInt(96)) {
		t.Errorf("paid = %s, want 96", ticket.PaidAmount)
	}
}

func TestCreateTicketNegativeBase(t *testing.T) {
	r := newTestRepo(t)
	trip := mustCreateTrip(t, r, "Киев", "Львов", "Интерсити", 100, 100)
	passenger := mustCreatePassenger(t, r, "Иван", "Иванов", "4500 123456", 30)

	_, err := r.CreateTicket(TicketSale{
		PassengerID: passenger.ID,
		TripID:      trip.ID,
		BasePrice:   decimal.NewFromInt(-1),
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestCreateTicketNoSeats(t *testing.T) {
	r := newTestRepo(t)
	trip := mustCreateTrip(t, r, "Киев", "Львов", "Интерсити", 100, 1)
	first := mustCreatePassenger(t, r, "Иван", "Иванов", "4500 123456", 30)
	second := mustCreatePassenger(t, r, "Петр", "Петров", "4500 654321", 40)

	if _, err := r.CreateTicket(TicketSale{PassengerID: first.ID, TripID: trip.ID}); err != nil {
		t.Fatalf("first sale: %v", err)
	}

	_, err := r.CreateTicket(TicketSale{PassengerID: second.ID, TripID: trip.ID})
	if !errors.Is(err, ErrNoSeats) {
		t.Fatalf("err = %v, want ErrNoSeats", err)
	}

	// Отказ не должен оставить билет в базе
	sold, err := r.SoldSeats(trip.ID)
	if err != nil {
		t.Fatalf("sold seats: %v", err)
	}
	if sold != 1 {
		t.Errorf("sold = %d, want 1", sold)
	}
}

func TestCreateTicketUnknownReferences(t *testing.T) {
	r := newTestRepo(t)
	trip := mustCreateTrip(t, r, "Киев", "Львов", "Интерсити", 100, 100)
	passenger := mustCreatePassenger(t, r, "Иван", "Иванов", "4500 123456", 30)
	missingCashier := uint(999)

	_, err := r.CreateTicket(TicketSale{PassengerID: passenger.ID, TripID: 999})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown trip: err = %v, want ErrNotFound", err)
	}

	_, err = r.CreateTicket(TicketSale{PassengerID: 999, TripID: trip.ID})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown passenger: err = %v, want ErrNotFound", err)
	}

	_, err = r.CreateTicket(TicketSale{PassengerID: passenger.ID, TripID: trip.ID, CashierID: &missingCashier})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown cashier: err = %v, want ErrNotFound", err)
	}
}

func TestPaidAmountFrozenAfterFareChange(t *testing.T) {
	r := newTestRepo(t)
	trip := mustCreateTrip(t, r, "Киев", "Львов", "Интерсити", 100, 100)
	passenger := mustCreatePassenger(t, r, "Иван", "Иванов", "4500 123456", 30)

	ticket, err := r.CreateTicket(TicketSale{PassengerID: passenger.ID, TripID: trip.ID})
	if err != nil {
		t.Fatalf("sell: %v", err)
	}

	if _, err := UpdateByID[ds.Trip](r, trip.ID, map[string]interface{}{"price": 200}); err != nil {
		t.Fatalf("update fare: %v", err)
	}

	got, err := r.GetTicketDetails(ticket.ID)
	if err != nil {
		t.Fatalf("reload ticket: %v", err)
	}
	if !got.PaidAmount.Equal(decimal.NewFromInt(120)) {
		t.Errorf("paid after fare change = %s, want 120", got.PaidAmount)
	}
	if got.Trip.Price != 200 {
		t.Errorf("trip fare = %d, want 200", got.Trip.Price)
	}
}

func TestUpdateTicketWhitelist(t *testing.T) {
	r := newTestRepo(t)
	trip := mustCreateTrip(t, r, "Киев", "Львов", "Интерсити", 100, 100)
	passenger := mustCreatePassenger(t, r, "Иван", "Иванов", "4500 123456", 30)
	cashier := mustCreateCashier(t, r, "Анна", "Петрова")

	ticket, err := r.CreateTicket(TicketSale{PassengerID: passenger.ID, TripID: trip.ID})
	if err != nil {
		t.Fatalf("sell: %v", err)
	}

	// Разрешенные поля
	updated, err := r.UpdateTicket(ticket.ID, map[string]interface{}{
		"payment_method": "карта",
		"cashier_id":     cashier.ID,
	})
	if err != nil {
		t.Fatalf("update allowed fields: %v", err)
	}
	if updated.PaymentMethod == nil || *updated.PaymentMethod != "карта" {
		t.Errorf("payment method = %v", updated.PaymentMethod)
	}
	if updated.CashierID == nil || *updated.CashierID != cashier.ID {
		t.Errorf("cashier_id = %v", updated.CashierID)
	}

	// Запрещенные поля
	for _, field := range []string{"paid_amount", "base_price", "purchase_date", "trip_id", "passenger_id"} {
		_, err := r.UpdateTicket(ticket.ID, map[string]interface{}{field: 1})
		if !errors.Is(err, ErrValidation) {
			t.Errorf("field %q: err = %v, want ErrValidation", field, err)
		}
	}

	got, err := r.GetTicketDetails(ticket.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !got.PaidAmount.Equal(ticket.PaidAmount) {
		t.Errorf("paid changed: %s -> %s", ticket.PaidAmount, got.PaidAmount)
	}
}

func TestGetTicketDetailsPreloads(t *testing.T) {
	r := newTestRepo(t)
	trip := mustCreateTrip(t, r, "Киев", "Львов", "Интерсити", 100, 100)
	passenger := mustCreatePassenger(t, r, "Иван", "Иванов", "4500 123456", 30)
	cashier := mustCreateCashier(t, r, "Анна", "Петрова")

	ticket, err := r.CreateTicket(TicketSale{
		PassengerID: passenger.ID,
		CashierID:   &cashier.ID,
		TripID:      trip.ID,
	})
	if err != nil {
		t.Fatalf("sell: %v", err)
	}

	got, err := r.GetTicketDetails(ticket.ID)
	if err != nil {
		t.Fatalf("details: %v", err)
	}
	if got.Passenger.FullName() != "Иван Иванов" {
		t.Errorf("passenger = %q", got.Passenger.FullName())
	}
	if got.Cashier == nil || got.Cashier.FullName() != "Анна Петрова" {
		t.Errorf("cashier = %+v", got.Cashier)
	}
	if got.Trip.StartStation != "Киев" {
		t.Errorf("trip = %+v", got.Trip)
	}

	_, err = r.GetTicketDetails(999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("missing ticket: err = %v, want ErrNotFound", err)
	}
}

func TestTicketsByPassenger(t *testing.T) {
	r := newTestRepo(t)
	trip := mustCreateTrip(t, r, "Киев", "Львов", "Интерсити", 100, 100)
	first := mustCreatePassenger(t, r, "Иван", "Иванов", "4500 123456", 30)
	second := mustCreatePassenger(t, r, "Петр", "Петров", "4500 654321", 40)

	for i := 0; i < 2; i++ {
		if _, err := r.CreateTicket(TicketSale{PassengerID: first.ID, TripID: trip.ID}); err != nil {
			t.Fatalf("sell: %v", err)
		}
	}
	if _, err := r.CreateTicket(TicketSale{PassengerID: second.ID, TripID: trip.ID}); err != nil {
		t.Fatalf("sell: %v", err)
	}

	tickets, err := r.TicketsByPassenger(first.ID)
	if err != nil {
		t.Fatalf("tickets by passenger: %v", err)
	}
	if len(tickets) != 2 {
		t.Fatalf("got %d tickets, want 2", len(tickets))
	}
	for _, ticket := range tickets {
		if ticket.Trip.ID != trip.ID {
			t.Errorf("trip not preloaded: %+v", ticket.Trip)
		}
	}
}
