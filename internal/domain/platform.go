package domain

// PlatformRule represents the scheduling rules of a distribution platform.
// Справочник правил принадлежит внешнему сервису площадок; здесь он только
// читается и никогда не изменяется.
type PlatformRule struct {
	PlatformID int64
	Name       string

	// CooldownDays длительность "тихого периода" после окончания распродажи,
	// в течение которого новая распродажа того же товара начинаться не может
	CooldownDays int

	// MaxSaleDays рекомендательный потолок длительности одной распродажи.
	// Превышение не блокирует размещение, вызывающая сторона только предупреждает.
	MaxSaleDays int

	// WaivedKinds виды распродаж, на которые cooldown площадки не действует
	// (например, сезонные акции самой площадки)
	WaivedKinds []SaleKind
}

// WaivesCooldownFor проверяет, освобожден ли вид распродажи от cooldown на площадке
func (r *PlatformRule) WaivesCooldownFor(kind SaleKind) bool {
	for _, waived := range r.WaivedKinds {
		if waived == kind {
			return true
		}
	}
	return false
}

// CooldownWindow возвращает производный интервал cooldown распродажи:
// [endDate + 1, endDate + cooldownDays].
// Возвращает nil, если cooldown нулевой или вид распродажи освобожден от него.
func (r *PlatformRule) CooldownWindow(sale *Sale) *DateRange {
	return r.CooldownWindowFor(sale.Kind, sale.Occupied())
}

// CooldownWindowFor то же, что CooldownWindow, но для произвольной позиции —
// используется планировщиком каскада для распродаж в предлагаемых позициях
func (r *PlatformRule) CooldownWindowFor(kind SaleKind, occupied DateRange) *DateRange {
	if r.CooldownDays <= 0 || r.WaivesCooldownFor(kind) {
		return nil
	}
	return &DateRange{
		Start: occupied.End.AddDays(1),
		End:   occupied.End.AddDays(r.CooldownDays),
	}
}

// ExceedsMaxDuration проверяет превышение рекомендательного потолка длительности
func (r *PlatformRule) ExceedsMaxDuration(sale *Sale) bool {
	return r.MaxSaleDays > 0 && sale.DurationDays() > r.MaxSaleDays
}
