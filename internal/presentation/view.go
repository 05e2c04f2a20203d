package presentation

import (
	"strconv"
	"strings"

	"myweather/internal/models"
)

type Status string

const (
	StatusIdle     Status = "idle"
	StatusLoading  Status = "loading"
	StatusForecast Status = "forecast"
	StatusEmpty    Status = "empty"
)

const noDataNotice = "No data available for "

// ForecastView is everything the rendering side needs for one frame.
type ForecastView struct {
	Status  Status    `json:"status" example:"forecast"`
	City    string    `json:"city" example:"London"`
	Failed  bool      `json:"failed" example:"false"`
	Notice  string    `json:"notice,omitempty" example:"No data available for London"`
	Days    []DayView `json:"days"`
	Version uint64    `json:"version" example:"3"`
}

type DayView struct {
	Label string     `json:"label" example:"Today"`
	Items []ItemView `json:"items"`
}

type ItemView struct {
	Time        string `json:"time" example:"9:00 AM"`
	Temperature string `json:"temperature" example:"10.5°C"`
	Description string `json:"description" example:"Overcast clouds"`
	IconURL     string `json:"icon_url,omitempty" example:"https://openweathermap.org/img/wn/04d@2x.png"`
	Timestamp   string `json:"timestamp" example:"2024-11-16 09:00:00"`
}

// Presenter turns store snapshots into views.
type Presenter struct {
	grouper *ForecastGrouper
	units   models.Units
}

func NewPresenter(grouper *ForecastGrouper, units models.Units) *Presenter {
	if units == "" {
		units = models.UnitsMetric
	}
	return &Presenter{
		grouper: grouper,
		units:   units,
	}
}

// Present groups against the grouper's clock at the time of the call, so a
// snapshot held across midnight is relabelled on the next render.
func (p *Presenter) Present(state models.ForecastViewState) (ForecastView, error) {
	view := ForecastView{
		City:    state.City,
		Failed:  state.Failed,
		Days:    []DayView{},
		Version: state.Generation,
	}

	switch {
	case state.Loading:
		view.Status = StatusLoading
		return view, nil
	case len(state.Entries) > 0:
		view.Status = StatusForecast
	case state.City != "":
		view.Status = StatusEmpty
		view.Notice = noDataNotice + state.City
		return view, nil
	default:
		view.Status = StatusIdle
		return view, nil
	}

	groups, err := p.grouper.GroupByDay(state.Entries)
	if err != nil {
		return ForecastView{}, err
	}

	for _, group := range groups {
		day := DayView{Label: group.Label, Items: make([]ItemView, 0, len(group.Entries))}
		for _, entry := range group.Entries {
			item, err := p.item(entry)
			if err != nil {
				return ForecastView{}, err
			}
			day.Items = append(day.Items, item)
		}
		view.Days = append(view.Days, day)
	}

	return view, nil
}

func (p *Presenter) item(entry models.ForecastEntry) (ItemView, error) {
	clock, err := p.grouper.FormatTime(entry.DtTxt)
	if err != nil {
		return ItemView{}, err
	}

	item := ItemView{
		Time:        clock,
		Temperature: formatTemperature(entry.Main.Temp) + p.units.TemperatureSymbol(),
		Timestamp:   entry.DtTxt,
	}
	if cond, ok := entry.Primary(); ok {
		item.Description = p.grouper.formatter.Capitalize(cond.Description)
		item.IconURL = cond.IconURL()
	}

	return item, nil
}

// formatTemperature keeps every digit the provider sent; whole numbers get a
// trailing ".0".
func formatTemperature(temp float64) string {
	s := strconv.FormatFloat(temp, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
