package models

import "github.com/m04kA/SMC-SalePlannerService/internal/domain"

// PlatformRuleResponse ответ с правилами площадки
type PlatformRuleResponse struct {
	PlatformID   int64  `json:"platformId"`
	Name         string `json:"name"`
	CooldownDays int    `json:"cooldownDays"`
	MaxSaleDays  int    `json:"maxSaleDays"`

	// WaivedKinds виды распродаж, на которые не действует cooldown площадки
	WaivedKinds []string `json:"waivedKinds"`
}

// FromDomainPlatformRule конвертирует domain модель в DTO
func FromDomainPlatformRule(r *domain.PlatformRule) *PlatformRuleResponse {
	if r == nil {
		return nil
	}

	waived := make([]string, len(r.WaivedKinds))
	for i, kind := range r.WaivedKinds {
		waived[i] = string(kind)
	}

	return &PlatformRuleResponse{
		PlatformID:   r.PlatformID,
		Name:         r.Name,
		CooldownDays: r.CooldownDays,
		MaxSaleDays:  r.MaxSaleDays,
		WaivedKinds:  waived,
	}
}
