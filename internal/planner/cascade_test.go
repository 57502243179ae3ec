package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalePlannerService/internal/domain"
)

func cascadeRequest(t *testing.T, movedID int64, start, end string, r *domain.PlatformRule, siblings []*domain.Sale) CascadeRequest {
	t.Helper()
	return CascadeRequest{
		MovedSaleID:   movedID,
		ProposedStart: date(t, start),
		ProposedEnd:   date(t, end),
		Rule:          r,
		Siblings:      siblings,
		HorizonStart:  date(t, "2024-01-01"),
	}
}

// applyShifts возвращает набор распродаж с примененными сдвигами и перемещением
func applyShifts(t *testing.T, siblings []*domain.Sale, movedID int64, start, end string, shifts []Shift) []*domain.Sale {
	t.Helper()

	byID := make(map[int64]Shift, len(shifts))
	for _, shift := range shifts {
		byID[shift.SaleID] = shift
	}

	updated := make([]*domain.Sale, 0, len(siblings))
	for _, s := range siblings {
		switch {
		case s.ID == movedID:
			updated = append(updated, s.WithDates(date(t, start), date(t, end)))
		default:
			if shift, ok := byID[s.ID]; ok {
				updated = append(updated, s.WithDates(shift.NewStart, shift.NewEnd))
			} else {
				updated = append(updated, s)
			}
		}
	}
	return updated
}

func TestPlanCascade_NoConflicts_NoShifts(t *testing.T) {
	a := sale(t, 1, "2024-01-01", "2024-01-10", domain.KindCustom)
	b := sale(t, 2, "2024-06-01", "2024-06-10", domain.KindCustom)

	shifts, err := PlanCascade(cascadeRequest(t, 1, "2024-02-01", "2024-02-10", rule(30), []*domain.Sale{a, b}))

	require.NoError(t, err)
	assert.Empty(t, shifts)
}

func TestPlanCascade_MovedSaleNotFound(t *testing.T) {
	_, err := PlanCascade(cascadeRequest(t, 42, "2024-02-01", "2024-02-10", rule(30), nil))

	assert.ErrorIs(t, err, ErrMovedSaleNotFound)
}

func TestPlanCascade_SpecScenario_SingleForwardShift(t *testing.T) {
	// A: 01.01–10.01, B: 15.02–20.02, cooldown 30 дней.
	// Перемещение A на 20.01–29.01 растягивает его cooldown по 28.02,
	// что конфликтует с B. Ожидается один минимальный сдвиг B на первый
	// день после cooldown — 29.02 (2024 високосный), с сохранением
	// 6-дневной длительности.
	a := sale(t, 1, "2024-01-01", "2024-01-10", domain.KindCustom)
	b := sale(t, 2, "2024-02-15", "2024-02-20", domain.KindCustom)
	siblings := []*domain.Sale{a, b}

	shifts, err := PlanCascade(cascadeRequest(t, 1, "2024-01-20", "2024-01-29", rule(30), siblings))

	require.NoError(t, err)
	require.Len(t, shifts, 1)
	assert.Equal(t, int64(2), shifts[0].SaleID)
	assert.Equal(t, "2024-02-29", shifts[0].NewStart.String())
	assert.Equal(t, "2024-03-05", shifts[0].NewEnd.String())
}

func TestPlanCascade_PreservesDuration(t *testing.T) {
	a := sale(t, 1, "2024-01-01", "2024-01-10", domain.KindCustom)
	b := sale(t, 2, "2024-02-15", "2024-02-20", domain.KindCustom)
	c := sale(t, 3, "2024-04-01", "2024-04-14", domain.KindCustom)
	siblings := []*domain.Sale{a, b, c}

	shifts, err := PlanCascade(cascadeRequest(t, 1, "2024-01-20", "2024-01-29", rule(30), siblings))
	require.NoError(t, err)

	byID := map[int64]*domain.Sale{1: a, 2: b, 3: c}
	for _, shift := range shifts {
		original := byID[shift.SaleID]
		shiftedRange := domain.DateRange{Start: shift.NewStart, End: shift.NewEnd}
		assert.Equal(t, original.DurationDays(), shiftedRange.Days(), "sale id=%d", shift.SaleID)
	}
}

func TestPlanCascade_ChainPropagation(t *testing.T) {
	// B сдвигается из-за перемещения A, C сдвигается из-за нового cooldown B:
	// цепочка, а не одиночный прыжок
	a := sale(t, 1, "2024-01-01", "2024-01-10", domain.KindCustom)
	b := sale(t, 2, "2024-02-15", "2024-02-20", domain.KindCustom)
	c := sale(t, 3, "2024-03-10", "2024-03-15", domain.KindCustom)
	siblings := []*domain.Sale{a, b, c}

	shifts, err := PlanCascade(cascadeRequest(t, 1, "2024-01-20", "2024-01-29", rule(30), siblings))

	require.NoError(t, err)
	require.Len(t, shifts, 2)

	// B: за cooldown A (28.02) → 29.02–05.03, его cooldown по 04.04
	assert.Equal(t, int64(2), shifts[0].SaleID)
	assert.Equal(t, "2024-02-29", shifts[0].NewStart.String())

	// C: за новый cooldown B → 05.04–10.04
	assert.Equal(t, int64(3), shifts[1].SaleID)
	assert.Equal(t, "2024-04-05", shifts[1].NewStart.String())
	assert.Equal(t, "2024-04-10", shifts[1].NewEnd.String())
}

func TestPlanCascade_FrontierAdvancesPastUnshiftedSibling(t *testing.T) {
	// B стоит далеко и не сдвигается, но его собственный cooldown
	// двигает рубеж: C конфликтует уже с B, а не с перемещаемой A
	a := sale(t, 1, "2024-01-01", "2024-01-05", domain.KindCustom)
	b := sale(t, 2, "2024-03-15", "2024-03-20", domain.KindCustom) // cooldown по 19.04
	c := sale(t, 3, "2024-04-10", "2024-04-12", domain.KindCustom) // внутри cooldown B
	siblings := []*domain.Sale{a, b, c}

	// Перемещение A недалеко: его cooldown (по 10.03) не дотягивается до B
	shifts, err := PlanCascade(cascadeRequest(t, 1, "2024-02-05", "2024-02-09", rule(30), siblings))

	require.NoError(t, err)
	require.Len(t, shifts, 1)
	assert.Equal(t, int64(3), shifts[0].SaleID)
	assert.Equal(t, "2024-04-20", shifts[0].NewStart.String())
}

func TestPlanCascade_BackwardShift(t *testing.T) {
	// A заканчивается 10.02, cooldown по 11.03. Перемещение B на 01.03
	// требует отодвинуть A назад так, чтобы его cooldown закончился 29.02.
	a := sale(t, 1, "2024-02-01", "2024-02-10", domain.KindCustom)
	b := sale(t, 2, "2024-05-01", "2024-05-10", domain.KindCustom)
	siblings := []*domain.Sale{a, b}

	shifts, err := PlanCascade(cascadeRequest(t, 2, "2024-03-01", "2024-03-10", rule(30), siblings))

	require.NoError(t, err)
	require.Len(t, shifts, 1)
	assert.Equal(t, int64(1), shifts[0].SaleID)

	// Сдвиг минимален: новый cooldown A заканчивается за день до начала B
	newEnd := shifts[0].NewEnd
	cooldownEnd := newEnd.AddDays(30)
	assert.Equal(t, "2024-02-29", cooldownEnd.String())

	// Длительность сохранена
	shiftedRange := domain.DateRange{Start: shifts[0].NewStart, End: shifts[0].NewEnd}
	assert.Equal(t, 10, shiftedRange.Days())
}

func TestPlanCascade_BackwardBeyondHorizonFails(t *testing.T) {
	a := sale(t, 1, "2024-01-05", "2024-01-14", domain.KindCustom)
	b := sale(t, 2, "2024-05-01", "2024-05-10", domain.KindCustom)
	siblings := []*domain.Sale{a, b}

	// Перемещение B на 01.02 требует сдвинуть A назад за горизонт 01.01
	_, err := PlanCascade(cascadeRequest(t, 2, "2024-02-01", "2024-02-10", rule(30), siblings))

	require.ErrorIs(t, err, ErrCascadeInfeasible)
	assert.Contains(t, err.Error(), "id=1")
}

func TestPlanCascade_DirectOverlapRejected(t *testing.T) {
	a := sale(t, 1, "2024-01-01", "2024-01-10", domain.KindCustom)
	b := sale(t, 2, "2024-03-01", "2024-03-10", domain.KindCustom)
	siblings := []*domain.Sale{a, b}

	// Новая позиция B наезжает на занятый интервал A — каскад не применяется
	_, err := PlanCascade(cascadeRequest(t, 2, "2024-01-05", "2024-01-14", rule(30), siblings))

	assert.ErrorIs(t, err, ErrDirectOverlap)
}

func TestPlanCascade_WaivedMovedSale_NoShifts(t *testing.T) {
	// Сезонная распродажа освобождена от cooldown: она не создает
	// собственного рубежа и может стоять в cooldown соседа
	platformRule := rule(30, domain.KindSeasonal)

	a := sale(t, 1, "2024-01-01", "2024-01-10", domain.KindCustom)
	b := sale(t, 2, "2024-05-01", "2024-05-10", domain.KindSeasonal)
	siblings := []*domain.Sale{a, b}

	shifts, err := PlanCascade(cascadeRequest(t, 2, "2024-01-15", "2024-01-24", platformRule, siblings))

	require.NoError(t, err)
	assert.Empty(t, shifts)
}

func TestPlanCascade_WaivedForwardSiblingNotPushed(t *testing.T) {
	platformRule := rule(30, domain.KindSeasonal)

	a := sale(t, 1, "2024-01-01", "2024-01-10", domain.KindCustom)
	seasonal := sale(t, 2, "2024-02-15", "2024-02-20", domain.KindSeasonal)
	siblings := []*domain.Sale{a, seasonal}

	// Cooldown перемещенной A дотягивается до сезонной распродажи,
	// но её вид освобожден — сдвиг не нужен
	shifts, err := PlanCascade(cascadeRequest(t, 1, "2024-01-20", "2024-01-29", platformRule, siblings))

	require.NoError(t, err)
	assert.Empty(t, shifts)
}

func TestPlanCascade_IgnoresOtherLanes(t *testing.T) {
	a := sale(t, 1, "2024-01-01", "2024-01-10", domain.KindCustom)
	other := sale(t, 2, "2024-02-15", "2024-02-20", domain.KindCustom)
	other.ProductID = 99
	siblings := []*domain.Sale{a, other}

	shifts, err := PlanCascade(cascadeRequest(t, 1, "2024-01-20", "2024-01-29", rule(30), siblings))

	require.NoError(t, err)
	assert.Empty(t, shifts)
}

func TestPlanCascade_ResolvedPlanValidates(t *testing.T) {
	// После применения каскада каждая сдвинутая распродажа и перемещенная
	// проходят проверку против полного обновленного набора
	a := sale(t, 1, "2024-01-01", "2024-01-10", domain.KindCustom)
	b := sale(t, 2, "2024-02-15", "2024-02-20", domain.KindCustom)
	c := sale(t, 3, "2024-03-10", "2024-03-15", domain.KindCustom)
	siblings := []*domain.Sale{a, b, c}
	platformRule := rule(30)

	shifts, err := PlanCascade(cascadeRequest(t, 1, "2024-01-20", "2024-01-29", platformRule, siblings))
	require.NoError(t, err)

	updated := applyShifts(t, siblings, 1, "2024-01-20", "2024-01-29", shifts)

	for _, s := range updated {
		result := Validate(s, updated, platformRule, s.ID)
		assert.True(t, result.Valid, "sale id=%d: %s", s.ID, result.Reason)
	}
}

func TestPlanCascade_ForwardPrecedenceOverBackward(t *testing.T) {
	// Сосед, затронутый прямым проходом, не трогается обратным
	platformRule := rule(10)

	a := sale(t, 1, "2024-03-01", "2024-03-05", domain.KindCustom)
	b := sale(t, 2, "2024-02-01", "2024-02-05", domain.KindCustom)
	siblings := []*domain.Sale{a, b}

	// A двигается влево, его новая позиция 20.02–24.02:
	// cooldown B (по 15.02) не дотягивается, прямой проход пуст
	shifts, err := PlanCascade(cascadeRequest(t, 1, "2024-02-20", "2024-02-24", platformRule, siblings))

	require.NoError(t, err)
	assert.Empty(t, shifts)

	// А при позиции 10.02–14.02 cooldown B (по 15.02) пересекает занятый
	// интервал A — обратный проход сдвигает B назад ровно один раз
	shifts, err = PlanCascade(cascadeRequest(t, 1, "2024-02-10", "2024-02-14", platformRule, siblings))

	require.NoError(t, err)
	require.Len(t, shifts, 1)
	assert.Equal(t, int64(2), shifts[0].SaleID)

	newCooldownEnd := shifts[0].NewEnd.AddDays(10)
	assert.Equal(t, "2024-02-09", newCooldownEnd.String())
}

func TestPlanCascade_ZeroCooldownNeverShifts(t *testing.T) {
	a := sale(t, 1, "2024-01-01", "2024-01-10", domain.KindCustom)
	b := sale(t, 2, "2024-01-21", "2024-01-25", domain.KindCustom)
	siblings := []*domain.Sale{a, b}

	shifts, err := PlanCascade(cascadeRequest(t, 1, "2024-01-11", "2024-01-20", rule(0), siblings))

	require.NoError(t, err)
	assert.Empty(t, shifts)
}

func TestShift_DatesAreCalendarStable(t *testing.T) {
	// Сдвиг на 30 дней через границу месяцев не теряет день
	start := date(t, "2024-01-31")
	assert.Equal(t, "2024-03-01", start.AddDays(30).String())
}
