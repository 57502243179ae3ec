package create_sale

import (
	"time"

	"github.com/m04kA/SMC-SalePlannerService/internal/domain"
	"github.com/m04kA/SMC-SalePlannerService/pkg/dateonly"
)

// Request модель запроса на размещение распродажи
type Request struct {
	ProductID       int64           // ID товара
	PlatformID      int64           // ID площадки
	StartDate       dateonly.Date   // Первый день распродажи (включительно)
	EndDate         dateonly.Date   // Последний день распродажи (включительно)
	Kind            domain.SaleKind // Вид распродажи
	Title           string          // Название для календаря
	DiscountPercent float64         // Размер скидки
	Notes           *string         // Заметки (опционально)
}

// Response модель ответа с размещенной распродажей
type Response struct {
	ID              int64
	ProductID       int64
	PlatformID      int64
	StartDate       dateonly.Date
	EndDate         dateonly.Date
	Kind            domain.SaleKind
	Title           string
	DiscountPercent float64
	Notes           *string

	// Warning рекомендательное предупреждение (например, превышение
	// maxSaleDays площадки); размещение при этом выполнено
	Warning *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
