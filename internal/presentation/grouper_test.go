package presentation

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myweather/internal/models"
)

// 2024-11-16 is a Saturday.
var saturdayAfternoon = time.Date(2024, 11, 16, 15, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func entry(dtTxt string) models.ForecastEntry {
	return models.ForecastEntry{DtTxt: dtTxt}
}

func labels(groups []DayGroup) []string {
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.Label)
	}
	return out
}

func newTestGrouper(now time.Time, opts ...GrouperOption) *ForecastGrouper {
	opts = append([]GrouperOption{WithClock(fixedClock(now)), WithLocation(time.UTC)}, opts...)
	return NewForecastGrouper(opts...)
}

func TestGroupByDay_AllToday(t *testing.T) {
	g := newTestGrouper(saturdayAfternoon)
	entries := []models.ForecastEntry{
		entry("2024-11-16 09:00:00"),
		entry("2024-11-16 12:00:00"),
		entry("2024-11-16 15:00:00"),
	}

	groups, err := g.GroupByDay(entries)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, TodayLabel, groups[0].Label)
	assert.Equal(t, entries, groups[0].Entries)
}

func TestGroupByDay_TodayAndOneWeekday(t *testing.T) {
	g := newTestGrouper(saturdayAfternoon)

	groups, err := g.GroupByDay([]models.ForecastEntry{
		entry("2024-11-16 18:00:00"),
		entry("2024-11-16 21:00:00"),
		entry("2024-11-17 00:00:00"),
		entry("2024-11-17 03:00:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Today", "Sunday"}, labels(groups))
	assert.Len(t, groups[0].Entries, 2)
	assert.Len(t, groups[1].Entries, 2)
}

func TestGroupByDay_FirstSeenOrder(t *testing.T) {
	g := newTestGrouper(saturdayAfternoon)
	entries := []models.ForecastEntry{
		entry("2024-11-17 06:00:00"),
		entry("2024-11-16 21:00:00"),
		entry("2024-11-17 03:00:00"),
	}

	groups, err := g.GroupByDay(entries)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sunday", "Today"}, labels(groups))
	// stable within a label, no sorting
	assert.Equal(t, []models.ForecastEntry{entries[0], entries[2]}, groups[0].Entries)
}

func TestGroupByDay_FiveDays(t *testing.T) {
	g := newTestGrouper(saturdayAfternoon)

	groups, err := g.GroupByDay([]models.ForecastEntry{
		entry("2024-11-16 18:00:00"),
		entry("2024-11-17 12:00:00"),
		entry("2024-11-18 12:00:00"),
		entry("2024-11-19 12:00:00"),
		entry("2024-11-20 12:00:00"),
		entry("2024-11-21 12:00:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Today", "Sunday", "Monday", "Tuesday", "Wednesday", "Thursday"}, labels(groups))
}

func TestGroupByDay_Idempotent(t *testing.T) {
	g := newTestGrouper(saturdayAfternoon)
	entries := []models.ForecastEntry{
		entry("2024-11-16 18:00:00"),
		entry("2024-11-17 00:00:00"),
	}

	first, err := g.GroupByDay(entries)
	require.NoError(t, err)
	second, err := g.GroupByDay(entries)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGroupByDay_ClockReadAtCallTime(t *testing.T) {
	var mu sync.Mutex
	now := saturdayAfternoon
	g := NewForecastGrouper(WithLocation(time.UTC), WithClock(func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}))

	entries := []models.ForecastEntry{
		entry("2024-11-16 21:00:00"),
		entry("2024-11-17 09:00:00"),
	}

	groups, err := g.GroupByDay(entries)
	require.NoError(t, err)
	assert.Equal(t, []string{"Today", "Sunday"}, labels(groups))

	mu.Lock()
	now = now.Add(24 * time.Hour)
	mu.Unlock()

	groups, err = g.GroupByDay(entries)
	require.NoError(t, err)
	assert.Equal(t, []string{"Saturday", "Today"}, labels(groups))
}

func TestGroupByDay_Location(t *testing.T) {
	// 20:00 UTC on Saturday is already Sunday morning in UTC+10
	g := newTestGrouper(time.Date(2024, 11, 16, 20, 0, 0, 0, time.UTC), WithLocation(time.FixedZone("AEST", 10*60*60)))

	groups, err := g.GroupByDay([]models.ForecastEntry{
		entry("2024-11-16 21:00:00"),
		entry("2024-11-17 09:00:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Saturday", "Today"}, labels(groups))
}

func TestGroupByDay_Empty(t *testing.T) {
	g := newTestGrouper(saturdayAfternoon)

	groups, err := g.GroupByDay(nil)
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestGroupByDay_MalformedTimestamp(t *testing.T) {
	g := newTestGrouper(saturdayAfternoon)

	_, err := g.GroupByDay([]models.ForecastEntry{
		entry("2024-11-16 09:00:00"),
		entry("16/11/2024 09:00"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"16/11/2024 09:00"`)
}

func TestFormatTime(t *testing.T) {
	g := newTestGrouper(saturdayAfternoon)

	tests := []struct {
		in   string
		want string
	}{
		{"2024-11-16 09:00:00", "9:00 AM"},
		{"2024-11-16 15:30:00", "3:30 PM"},
		{"2024-11-16 00:00:00", "12:00 AM"},
		{"2024-11-16 12:00:00", "12:00 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := g.FormatTime(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatTime_Malformed(t *testing.T) {
	g := newTestGrouper(saturdayAfternoon)

	for _, in := range []string{"", "2024-11-16", "2024-11-16T09:00:00Z", "2024-13-01 09:00:00"} {
		_, err := g.FormatTime(in)
		assert.Error(t, err, in)
	}
}

type stubFormatter struct{}

func (stubFormatter) Weekday(t time.Time) string  { return "day-" + t.Format("02") }
func (stubFormatter) Clock(t time.Time) string    { return t.Format("15h04") }
func (stubFormatter) Capitalize(s string) string { return s }

func TestForecastGrouper_InjectedFormatter(t *testing.T) {
	g := newTestGrouper(saturdayAfternoon, WithFormatter(stubFormatter{}))

	groups, err := g.GroupByDay([]models.ForecastEntry{
		entry("2024-11-16 18:00:00"),
		entry("2024-11-18 09:00:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Today", "day-18"}, labels(groups))

	got, err := g.FormatTime("2024-11-16 09:00:00")
	require.NoError(t, err)
	assert.Equal(t, "09h00", got)
}

func TestForecastGrouper_GermanWeekdays(t *testing.T) {
	f, err := NewMondayFormatter("de-DE")
	require.NoError(t, err)
	g := newTestGrouper(saturdayAfternoon, WithFormatter(f))

	groups, err := g.GroupByDay([]models.ForecastEntry{
		entry("2024-11-16 18:00:00"),
		entry("2024-11-17 09:00:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Today", "Sonntag"}, labels(groups))
}
