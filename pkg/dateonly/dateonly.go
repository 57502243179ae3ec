package dateonly

import (
	"fmt"
	"time"
)

// Layout формат календарной даты, принятый на всех границах сервиса
const Layout = "2006-01-02"

// Date календарная дата без компонента времени.
// Хранит момент локальной полуночи соответствующего дня.
//
// Все преобразования строк в даты в сервисе проходят через Parse.
// Прямой разбор ISO-строк через time.Parse запрещён: time.Parse
// интерпретирует строку как UTC-полночь, и в зонах западнее UTC дата
// "съезжает" на день назад при любом преобразовании к локальному времени.
type Date struct {
	t time.Time
}

// Parse разбирает строку формата YYYY-MM-DD в дату с привязкой к локальной полуночи
func Parse(value string) (Date, error) {
	t, err := time.ParseInLocation(Layout, value, time.Local)
	if err != nil {
		return Date{}, fmt.Errorf("dateonly: invalid date %q: %w", value, err)
	}
	return Date{t: t}, nil
}

// New создает дату из компонентов календарного дня
func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

// FromTime обрезает время до календарного дня в локации переданного значения
func FromTime(t time.Time) Date {
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())}
}

// Today возвращает сегодняшнюю локальную календарную дату
func Today() Date {
	return FromTime(time.Now())
}

// IsZero сообщает, что дата не была установлена
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Time возвращает локальную полночь дня (для записи в БД)
func (d Date) Time() time.Time {
	return d.t
}

// String возвращает дату в формате YYYY-MM-DD
func (d Date) String() string {
	return d.t.Format(Layout)
}

// AddDays возвращает дату, смещенную на days календарных дней (days может быть отрицательным)
func (d Date) AddDays(days int) Date {
	return Date{t: d.t.AddDate(0, 0, days)}
}

// canonical приводит дату к UTC-полуночи того же календарного дня.
// Разность таких значений всегда кратна 24 часам независимо от переходов
// на летнее время в локальной зоне.
func (d Date) canonical() time.Time {
	y, m, day := d.t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// DaysUntil возвращает количество дней от d до other (отрицательное, если other раньше)
func (d Date) DaysUntil(other Date) int {
	return int(other.canonical().Sub(d.canonical()).Hours() / 24)
}

// Equal сравнивает календарные дни независимо от локации, в которой даты были созданы
func (d Date) Equal(other Date) bool {
	return d.canonical().Equal(other.canonical())
}

// Before сообщает, что d раньше other
func (d Date) Before(other Date) bool {
	return d.canonical().Before(other.canonical())
}

// After сообщает, что d позже other
func (d Date) After(other Date) bool {
	return d.canonical().After(other.canonical())
}

// Min возвращает более раннюю из двух дат
func Min(a, b Date) Date {
	if b.Before(a) {
		return b
	}
	return a
}

// Max возвращает более позднюю из двух дат
func Max(a, b Date) Date {
	if b.After(a) {
		return b
	}
	return a
}
