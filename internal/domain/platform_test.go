package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalePlannerService/pkg/dateonly"
)

func date(t *testing.T, value string) dateonly.Date {
	t.Helper()
	d, err := dateonly.Parse(value)
	require.NoError(t, err)
	return d
}

func TestCooldownWindowFor(t *testing.T) {
	rule := &PlatformRule{PlatformID: 1, Name: "Ozon", CooldownDays: 30}
	occupied := DateRange{Start: date(t, "2024-01-01"), End: date(t, "2024-01-10")}

	window := rule.CooldownWindowFor(KindCustom, occupied)
	require.NotNil(t, window)
	assert.Equal(t, "2024-01-11", window.Start.String())
	assert.Equal(t, "2024-02-09", window.End.String())
}

func TestCooldownWindowFor_ZeroCooldown(t *testing.T) {
	rule := &PlatformRule{PlatformID: 1, Name: "Ozon", CooldownDays: 0}
	occupied := DateRange{Start: date(t, "2024-01-01"), End: date(t, "2024-01-10")}

	assert.Nil(t, rule.CooldownWindowFor(KindCustom, occupied))
}

func TestCooldownWindowFor_WaivedKind(t *testing.T) {
	rule := &PlatformRule{
		PlatformID:   1,
		Name:         "Ozon",
		CooldownDays: 30,
		WaivedKinds:  []SaleKind{KindFestival},
	}
	occupied := DateRange{Start: date(t, "2024-01-01"), End: date(t, "2024-01-10")}

	assert.Nil(t, rule.CooldownWindowFor(KindFestival, occupied))
	assert.NotNil(t, rule.CooldownWindowFor(KindCustom, occupied))
}

func TestExceedsMaxDuration(t *testing.T) {
	rule := &PlatformRule{PlatformID: 1, Name: "Ozon", CooldownDays: 30, MaxSaleDays: 14}

	within := &Sale{StartDate: date(t, "2024-01-01"), EndDate: date(t, "2024-01-14")}
	over := &Sale{StartDate: date(t, "2024-01-01"), EndDate: date(t, "2024-01-15")}

	assert.False(t, rule.ExceedsMaxDuration(within))
	assert.True(t, rule.ExceedsMaxDuration(over))
}

func TestExceedsMaxDuration_NoLimit(t *testing.T) {
	rule := &PlatformRule{PlatformID: 1, Name: "Ozon", CooldownDays: 30}

	long := &Sale{StartDate: date(t, "2024-01-01"), EndDate: date(t, "2024-12-31")}
	assert.False(t, rule.ExceedsMaxDuration(long))
}

func TestSaleOccupiedAndDuration(t *testing.T) {
	sale := &Sale{StartDate: date(t, "2024-01-01"), EndDate: date(t, "2024-01-10")}

	occupied := sale.Occupied()
	assert.Equal(t, "2024-01-01", occupied.Start.String())
	assert.Equal(t, "2024-01-10", occupied.End.String())
	assert.Equal(t, 10, sale.DurationDays())
}

func TestWithDatesDoesNotMutate(t *testing.T) {
	sale := &Sale{ID: 1, StartDate: date(t, "2024-01-01"), EndDate: date(t, "2024-01-10")}

	moved := sale.WithDates(date(t, "2024-02-01"), date(t, "2024-02-10"))

	assert.Equal(t, "2024-01-01", sale.StartDate.String())
	assert.Equal(t, "2024-02-01", moved.StartDate.String())
	assert.Equal(t, sale.ID, moved.ID)
}
