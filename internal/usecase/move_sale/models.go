package move_sale

import (
	"github.com/m04kA/SMC-SalePlannerService/internal/domain"
	"github.com/m04kA/SMC-SalePlannerService/pkg/dateonly"
)

// Request модель запроса на перемещение распродажи
type Request struct {
	SaleID   int64         // ID перемещаемой распродажи
	NewStart dateonly.Date // Новый первый день (включительно)
	NewEnd   dateonly.Date // Новый последний день (включительно)

	// HorizonStart первый день видимого горизонта планирования:
	// каскад никогда не предлагает даты раньше него.
	// Если не задан, используется сегодняшняя локальная дата.
	HorizonStart *dateonly.Date

	// DryRun вернуть план каскада, ничего не сохраняя.
	// Используется для предпросмотра во время перетаскивания.
	DryRun bool
}

// SaleShift примененный (или запланированный при DryRun) сдвиг соседней распродажи
type SaleShift struct {
	SaleID   int64
	OldStart dateonly.Date
	OldEnd   dateonly.Date
	NewStart dateonly.Date
	NewEnd   dateonly.Date
}

// Response модель ответа на перемещение
type Response struct {
	SaleID   int64
	OldStart dateonly.Date
	OldEnd   dateonly.Date
	NewStart dateonly.Date
	NewEnd   dateonly.Date
	Kind     domain.SaleKind

	// Shifts каскадные сдвиги соседей, в порядке применения
	Shifts []SaleShift

	// Applied false при DryRun: план рассчитан, но ничего не сохранено
	Applied bool

	// Warning рекомендательное предупреждение (превышение maxSaleDays)
	Warning *string
}
