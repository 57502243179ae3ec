package dateonly

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withLocal временно подменяет локальную зону процесса.
// Нормализация дат обязана давать одинаковый результат в зонах
// по обе стороны от UTC.
func withLocal(t *testing.T, name string, fn func()) {
	t.Helper()

	loc, err := time.LoadLocation(name)
	require.NoError(t, err)

	old := time.Local
	time.Local = loc
	defer func() { time.Local = old }()

	fn()
}

func TestParse_SameDayRegardlessOfZone(t *testing.T) {
	zones := []string{"America/Los_Angeles", "Asia/Tokyo", "UTC"}

	for _, zone := range zones {
		withLocal(t, zone, func() {
			d, err := Parse("2024-03-10")
			require.NoError(t, err)

			assert.Equal(t, "2024-03-10", d.String(), "zone %s", zone)
			assert.True(t, d.Equal(New(2024, time.March, 10)), "zone %s", zone)
		})
	}
}

func TestParse_Idempotent(t *testing.T) {
	withLocal(t, "America/Los_Angeles", func() {
		a, err := Parse("2024-07-01")
		require.NoError(t, err)
		b, err := Parse("2024-07-01")
		require.NoError(t, err)

		assert.True(t, a.Equal(b))
		assert.False(t, a.Before(b))
		assert.False(t, a.After(b))
	})
}

func TestParse_Invalid(t *testing.T) {
	for _, value := range []string{"", "2024-13-01", "01.10.2024", "2024-10-01T00:00:00Z"} {
		_, err := Parse(value)
		assert.Error(t, err, "value %q", value)
	}
}

func TestAddDays(t *testing.T) {
	d := New(2024, time.January, 31)

	assert.Equal(t, "2024-02-01", d.AddDays(1).String())
	assert.Equal(t, "2024-01-30", d.AddDays(-1).String())
	assert.Equal(t, "2024-03-01", d.AddDays(30).String()) // 2024 високосный
}

func TestDaysUntil_AcrossDSTTransition(t *testing.T) {
	// В ночь на 10 марта 2024 в США переход на летнее время:
	// локальные сутки длятся 23 часа. Подсчет дней не должен это замечать.
	withLocal(t, "America/Los_Angeles", func() {
		a, err := Parse("2024-03-09")
		require.NoError(t, err)
		b, err := Parse("2024-03-11")
		require.NoError(t, err)

		assert.Equal(t, 2, a.DaysUntil(b))
		assert.Equal(t, -2, b.DaysUntil(a))
	})
}

func TestOrdering(t *testing.T) {
	a := New(2024, time.May, 1)
	b := New(2024, time.May, 2)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Equal(b))
	assert.True(t, Min(a, b).Equal(a))
	assert.True(t, Max(a, b).Equal(b))
}

func TestFromTime_TruncatesClock(t *testing.T) {
	moment := time.Date(2024, time.April, 5, 23, 59, 59, 0, time.Local)
	assert.Equal(t, "2024-04-05", FromTime(moment).String())
}
