// Пакет pricing содержит чистые функции расчета стоимости билета.
// Вся арифметика ведется в decimal, чтобы исключить дрейф округления
// двоичной плавающей точки на денежных значениях.
package pricing

import "github.com/shopspring/decimal"

// TAX — фиксированный налог, включаемый в стоимость каждого билета (20%)
var TAX = decimal.RequireFromString("0.2")

var (
	discountMinor  = decimal.RequireFromString("0.5") // до 18 лет
	discountSenior = decimal.RequireFromString("0.7") // после 60 лет
	discountNone   = decimal.RequireFromString("1.0")

	one = decimal.NewFromInt(1)
)

// Discount возвращает коэффициент скидки по возрасту пассажира.
// Сравнения строгие: ровно 18 и ровно 60 лет — без скидки
func Discount(age int) decimal.Decimal {
	if age < 18 {
		return discountMinor
	}
	if age > 60 {
		return discountSenior
	}
	return discountNone
}

// ResolveBasePrice определяет базовую цену билета: явно заданная цена,
// а при нулевой (то есть не заданной) — тариф рейса. Ноль трактуется
// как "не задано": продать бесплатный билет через это API нельзя
func ResolveBasePrice(explicit decimal.Decimal, tripFare uint) decimal.Decimal {
	if explicit.IsZero() {
		return decimal.NewFromInt(int64(tripFare))
	}
	return explicit
}

// TicketPrice считает итоговую стоимость: base * скидка * (1 + TAX),
// округление банковское (к ближайшему четному) до 2 знаков — так же,
// как округляет Decimal в исходной системе учета
func TicketPrice(base decimal.Decimal, age int) decimal.Decimal {
	raw := base.Mul(Discount(age)).Mul(one.Add(TAX))
	return raw.RoundBank(2)
}
