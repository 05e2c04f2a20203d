package presentation

import (
	"fmt"
	"time"

	"myweather/internal/models"
)

const (
	// TimestampLayout is the layout of the provider's dt_txt field.
	TimestampLayout = "2006-01-02 15:04:05"
	TodayLabel      = "Today"
)

type Clock func() time.Time

type DayGroup struct {
	Label   string                 `json:"label"`
	Entries []models.ForecastEntry `json:"entries"`
}

// ForecastGrouper labels forecast entries by calendar day. It holds no state
// between calls; "today" is read from the clock on every call.
type ForecastGrouper struct {
	now       Clock
	loc       *time.Location
	formatter Formatter
}

type GrouperOption func(*ForecastGrouper)

func WithClock(now Clock) GrouperOption {
	return func(g *ForecastGrouper) {
		if now != nil {
			g.now = now
		}
	}
}

// WithLocation sets the zone timestamps are interpreted in and "today" is computed in.
func WithLocation(loc *time.Location) GrouperOption {
	return func(g *ForecastGrouper) {
		if loc != nil {
			g.loc = loc
		}
	}
}

func WithFormatter(f Formatter) GrouperOption {
	return func(g *ForecastGrouper) {
		if f != nil {
			g.formatter = f
		}
	}
}

func NewForecastGrouper(opts ...GrouperOption) *ForecastGrouper {
	g := &ForecastGrouper{
		now: time.Now,
		loc: time.Local,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.formatter == nil {
		// the default locale is always supported
		g.formatter, _ = NewMondayFormatter(DefaultLocale)
	}

	return g
}

// GroupByDay buckets entries under "Today" or their weekday name. Labels keep
// the order in which they are first seen and entries keep their input order
// within a label. A malformed timestamp fails the whole call.
func (g *ForecastGrouper) GroupByDay(entries []models.ForecastEntry) ([]DayGroup, error) {
	today := dateOf(g.now().In(g.loc))

	groups := make([]DayGroup, 0)
	index := make(map[string]int)

	for _, entry := range entries {
		t, err := g.parse(entry.DtTxt)
		if err != nil {
			return nil, err
		}

		label := TodayLabel
		if dateOf(t) != today {
			label = g.formatter.Weekday(t)
		}

		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, DayGroup{Label: label})
		}
		groups[i].Entries = append(groups[i].Entries, entry)
	}

	return groups, nil
}

// FormatTime renders a dt_txt timestamp as a 12-hour clock time, e.g. "9:00 AM".
func (g *ForecastGrouper) FormatTime(dtTxt string) (string, error) {
	t, err := g.parse(dtTxt)
	if err != nil {
		return "", err
	}
	return g.formatter.Clock(t), nil
}

func (g *ForecastGrouper) parse(dtTxt string) (time.Time, error) {
	t, err := time.ParseInLocation(TimestampLayout, dtTxt, g.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid forecast timestamp %q: %w", dtTxt, err)
	}
	return t, nil
}

type date struct {
	year  int
	month time.Month
	day   int
}

func dateOf(t time.Time) date {
	y, m, d := t.Date()
	return date{y, m, d}
}
