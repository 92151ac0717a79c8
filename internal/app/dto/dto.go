package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Кассы (Ticket Offices) ============

type OfficeRequest struct {
	Name     string `json:"name"`
	Location string `json:"location" binding:"required"`
	Phone    string `json:"phone"`
}

type UpdateOfficeRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Phone    *string `json:"phone"`
}

type OfficeResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
}

type OfficeListResponse struct {
	Offices []OfficeResponse `json:"offices"`
	Total   int              `json:"total"`
}

// ============ Пассажиры (Passengers) ============

type PassengerRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Passport  string `json:"passport" binding:"required"`
	Age       int    `json:"age" binding:"gte=0"`
}

type UpdatePassengerRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Passport  *string `json:"passport"`
	Age       *int    `json:"age" binding:"omitempty,gte=0"`
}

type PassengerResponse struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Passport  string `json:"passport"`
	Age       int    `json:"age"`
	AgeGroup  string `json:"age_group"`
}

type PassengerListResponse struct {
	Passengers []PassengerResponse `json:"passengers"`
	Total      int                 `json:"total"`
}

// ============ Кассиры (Cashiers) ============

type CashierRequest struct {
	FirstName string    `json:"first_name" binding:"required"`
	LastName  string    `json:"last_name" binding:"required"`
	HireDate  time.Time `json:"hire_date" binding:"required"`
}

type UpdateCashierRequest struct {
	FirstName *string    `json:"first_name"`
	LastName  *string    `json:"last_name"`
	HireDate  *time.Time `json:"hire_date"`
}

type CashierResponse struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	FullName  string    `json:"full_name"`
	HireDate  time.Time `json:"hire_date"`
	WorkYears int       `json:"work_years"`
}

type CashierListResponse struct {
	Cashiers []CashierResponse `json:"cashiers"`
	Total    int               `json:"total"`
}

// ============ Рейсы (Trips) ============

type TripRequest struct {
	StartStation string    `json:"start_station" binding:"required"`
	EndStation   string    `json:"end_station" binding:"required"`
	DistanceKM   uint      `json:"distance_km"`
	Number       string    `json:"number" binding:"required"`
	TrainType    string    `json:"train_type" binding:"required"`
	Departure    time.Time `json:"departure" binding:"required"`
	Arrival      time.Time `json:"arrival" binding:"required"`
	Price        uint      `json:"price" binding:"required,gt=0"`
	Capacity     uint      `json:"capacity" binding:"required,gt=0"`
}

type UpdateTripRequest struct {
	StartStation *string    `json:"start_station"`
	EndStation   *string    `json:"end_station"`
	DistanceKM   *uint      `json:"distance_km"`
	Number       *string    `json:"number"`
	TrainType    *string    `json:"train_type"`
	Departure    *time.Time `json:"departure"`
	Arrival      *time.Time `json:"arrival"`
	Price        *uint      `json:"price" binding:"omitempty,gt=0"`
	Capacity     *uint      `json:"capacity" binding:"omitempty,gt=0"`
}

type TripResponse struct {
	ID              uint      `json:"id"`
	StartStation    string    `json:"start_station"`
	EndStation      string    `json:"end_station"`
	DistanceKM      uint      `json:"distance_km"`
	Number          string    `json:"number"`
	TrainType       string    `json:"train_type"`
	Departure       time.Time `json:"departure"`
	Arrival         time.Time `json:"arrival"`
	DurationMinutes int       `json:"duration_minutes"`
	Duration        string    `json:"duration"`
	Price           uint      `json:"price"`
	Capacity        uint      `json:"capacity"`
	AvailableSeats  int64     `json:"available_seats"`
	ImageURL        string    `json:"image_url,omitempty"`
}

type TripListResponse struct {
	Trips []TripResponse `json:"trips"`
	Total int            `json:"total"`
}

// ============ Билеты (Tickets) ============

// TicketSaleRequest — запрос на продажу билета. base_price можно
// не указывать: будет взят тариф рейса
type TicketSaleRequest struct {
	PassengerID   uint            `json:"passenger_id" binding:"required"`
	CashierID     *uint           `json:"cashier_id"`
	TripID        uint            `json:"trip_id" binding:"required"`
	BasePrice     decimal.Decimal `json:"base_price"`
	PaymentMethod *string         `json:"payment_method"`
}

// UpdateTicketRequest — после продажи можно сменить только способ
// оплаты и кассира
type UpdateTicketRequest struct {
	CashierID     *uint   `json:"cashier_id"`
	PaymentMethod *string `json:"payment_method"`
}

type TicketResponse struct {
	ID            uint               `json:"id"`
	Passenger     *PassengerResponse `json:"passenger,omitempty"`
	Cashier       *CashierResponse   `json:"cashier,omitempty"`
	Trip          *TripResponse      `json:"trip,omitempty"`
	PurchaseDate  time.Time          `json:"purchase_date"`
	BasePrice     decimal.Decimal    `json:"base_price"`
	PaymentMethod string             `json:"payment_method,omitempty"`
	PaidAmount    decimal.Decimal    `json:"paid_amount"`
}

type TicketListResponse struct {
	Tickets []TicketResponse `json:"tickets"`
	Total   int              `json:"total"`
}

// ============ Аутентификация ============

type RegisterRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name"`
	Role     int    `json:"role"`
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Login    string `json:"login"`
	FullName string `json:"full_name"`
	Role     int    `json:"role"`
}
