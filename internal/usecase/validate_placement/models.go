package validate_placement

import (
	"github.com/m04kA/SMC-SalePlannerService/internal/domain"
	"github.com/m04kA/SMC-SalePlannerService/pkg/dateonly"
)

// Request модель запроса на проверку размещения.
// Проверка чистая и не имеет побочных эффектов: UI может вызывать её
// спекулятивно много раз в секунду во время перетаскивания.
type Request struct {
	ProductID  int64           // ID товара
	PlatformID int64           // ID площадки
	StartDate  dateonly.Date   // Первый день размещения (включительно)
	EndDate    dateonly.Date   // Последний день размещения (включительно)
	Kind       domain.SaleKind // Вид распродажи

	// ExcludeSaleID ID перемещаемой распродажи, чтобы она не конфликтовала
	// со своей прежней позицией (nil при размещении новой)
	ExcludeSaleID *int64
}

// Response результат проверки размещения
type Response struct {
	Valid bool

	// Conflict вид конфликта: "direct_overlap" или "cooldown" (пусто при Valid)
	Conflict string

	// ConflictingSaleID распродажа, с которой найден конфликт (0 при Valid)
	ConflictingSaleID int64

	// Reason человекочитаемая причина отказа, дословно от движка проверки
	Reason string

	// Warning рекомендательное предупреждение (превышение maxSaleDays),
	// возможно и при Valid
	Warning *string
}
