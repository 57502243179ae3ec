package domain

import (
	"time"

	"github.com/m04kA/SMC-SalePlannerService/pkg/dateonly"
)

// SaleKind represents the kind of a sale event
type SaleKind string

const (
	KindCustom   SaleKind = "custom"   // скидка, заведенная вручную
	KindSeasonal SaleKind = "seasonal" // сезонная распродажа площадки
	KindFestival SaleKind = "festival" // фестивальная распродажа площадки
	KindSpecial  SaleKind = "special"  // спецпредложение
)

// AllKinds список всех допустимых видов распродаж
var AllKinds = []SaleKind{KindCustom, KindSeasonal, KindFestival, KindSpecial}

// IsValid проверяет, что вид распродажи допустим
func (k SaleKind) IsValid() bool {
	for _, kind := range AllKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Sale represents one scheduled discount event on a product/platform lane.
//
// Все инварианты планирования действуют внутри одной "полосы" (lane) —
// пары product+platform. Распродажи разных товаров или разных площадок
// никогда не конфликтуют между собой.
type Sale struct {
	ID         int64
	ProductID  int64
	PlatformID int64
	StartDate  dateonly.Date // включительно
	EndDate    dateonly.Date // включительно
	Kind       SaleKind

	// Данные для отображения в календаре, движок планирования их не читает
	Title           string
	DiscountPercent float64
	Notes           *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Occupied возвращает занимаемый распродажей интервал дат
func (s *Sale) Occupied() DateRange {
	return DateRange{Start: s.StartDate, End: s.EndDate}
}

// DurationDays возвращает длительность распродажи в днях (включительно, минимум 1)
func (s *Sale) DurationDays() int {
	return s.Occupied().Days()
}

// SameLane проверяет, что обе распродажи находятся на одной полосе product+platform
func (s *Sale) SameLane(other *Sale) bool {
	return s.ProductID == other.ProductID && s.PlatformID == other.PlatformID
}

// WithDates возвращает копию распродажи с новыми датами.
// Движок никогда не меняет входные значения на месте.
func (s *Sale) WithDates(start, end dateonly.Date) *Sale {
	moved := *s
	moved.StartDate = start
	moved.EndDate = end
	return &moved
}

// ProductSalesFilter фильтр для выборки распродаж товара
type ProductSalesFilter struct {
	ProductID  int64          // Обязательный параметр
	PlatformID *int64         // Фильтр по площадке (опционально, nil - все площадки)
	From       *dateonly.Date // Начало периода (опционально)
	To         *dateonly.Date // Конец периода (опционально)
}
