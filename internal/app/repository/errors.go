// Ошибки-маркеры, общие для всех репозиториев. Обработчики различают
// их через errors.Is и переводят в HTTP статусы: ErrNotFound -> 404,
// ErrNoSeats -> 409, ErrValidation -> 400. Все ошибки восстановимые,
// ни одна не фатальна для процесса
package repository

import "errors"

// ErrNotFound возвращается при обращении по несуществующему id.
// Вызывающий код ветвится по ней, а не падает
var ErrNotFound = errors.New("запись не найдена")

// ErrNoSeats возвращается при попытке продать билет на рейс
// без свободных мест; билет при этом не сохраняется
var ErrNoSeats = errors.New("нет свободных мест")

// ErrValidation возвращается при некорректных входных данных
// до обращения к базе
var ErrValidation = errors.New("некорректные данные")
