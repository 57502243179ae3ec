package platformservice

import "github.com/m04kA/SMC-SalePlannerService/internal/domain"

// platformRuleResponse ответ сервиса площадок
type platformRuleResponse struct {
	PlatformID   int64    `json:"platformId"`
	Name         string   `json:"name"`
	CooldownDays int      `json:"cooldownDays"`
	MaxSaleDays  int      `json:"maxSaleDays"`
	WaivedKinds  []string `json:"waivesCooldownForKinds"`
}

// toDomain конвертирует ответ сервиса в доменную модель
func (r *platformRuleResponse) toDomain() *domain.PlatformRule {
	waived := make([]domain.SaleKind, 0, len(r.WaivedKinds))
	for _, kind := range r.WaivedKinds {
		waived = append(waived, domain.SaleKind(kind))
	}

	return &domain.PlatformRule{
		PlatformID:   r.PlatformID,
		Name:         r.Name,
		CooldownDays: r.CooldownDays,
		MaxSaleDays:  r.MaxSaleDays,
		WaivedKinds:  waived,
	}
}
