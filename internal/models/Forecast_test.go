package models_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myweather/internal/models"
)

func loadFixture(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/forecast_london.json")
	require.NoError(t, err)
	return data
}

func TestForecastResponse_Decode(t *testing.T) {
	var resp models.ForecastResponse
	require.NoError(t, json.Unmarshal(loadFixture(t), &resp))

	assert.Equal(t, models.StatusCode("200"), resp.Cod)
	assert.Equal(t, 200, resp.Cod.Int())
	assert.Equal(t, 3, resp.Cnt)
	require.Len(t, resp.List, 3)

	first := resp.List[0]
	assert.Equal(t, int64(1731747600), first.Dt)
	assert.Equal(t, "2024-11-16 09:00:00", first.DtTxt)
	assert.Equal(t, 8.5, first.Main.Temp)
	assert.Equal(t, 81, first.Main.Humidity)
	assert.Equal(t, 100, first.Clouds.All)
	require.NotNil(t, first.Wind.Gust)
	assert.Equal(t, 6.1, *first.Wind.Gust)

	// gust is omitted by the provider when not applicable
	assert.Nil(t, resp.List[1].Wind.Gust)

	primary, ok := resp.List[1].Primary()
	require.True(t, ok)
	assert.Equal(t, "light rain", primary.Description)
	assert.Len(t, resp.List[1].Weather, 2)

	assert.Equal(t, "London", resp.City.Name)
	assert.Equal(t, "GB", resp.City.Country)
	assert.Equal(t, 51.5085, resp.City.Coord.Lat)
	assert.False(t, resp.IsEmpty())
}

func TestForecastResponse_RoundTrip(t *testing.T) {
	raw := loadFixture(t)

	var resp models.ForecastResponse
	require.NoError(t, json.Unmarshal(raw, &resp))

	encoded, err := json.Marshal(resp)
	require.NoError(t, err)

	assert.JSONEq(t, string(raw), string(encoded))
}

func TestForecastResponse_TrustsListLengthOverCnt(t *testing.T) {
	body := `{"cod":"200","message":0,"cnt":40,"list":[{"dt":1,"dt_txt":"2024-11-16 09:00:00","weather":[{"id":800}]}],"city":{"id":1,"name":"X"}}`

	var resp models.ForecastResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	assert.Equal(t, 40, resp.Cnt)
	assert.Len(t, resp.List, 1)
}

func TestStatusCode_AcceptsNumber(t *testing.T) {
	var resp models.ForecastResponse
	require.NoError(t, json.Unmarshal([]byte(`{"cod":404,"message":0}`), &resp))

	assert.Equal(t, models.StatusCode("404"), resp.Cod)
	assert.Equal(t, 404, resp.Cod.Int())
}

func TestStatusCode_RejectsObject(t *testing.T) {
	var resp models.ForecastResponse
	err := json.Unmarshal([]byte(`{"cod":{"value":1}}`), &resp)
	assert.Error(t, err)
}

func TestForecastResponse_IsEmpty(t *testing.T) {
	var nilResp *models.ForecastResponse
	assert.True(t, nilResp.IsEmpty())
	assert.True(t, (&models.ForecastResponse{}).IsEmpty())

	withEmptyList := &models.ForecastResponse{List: []models.ForecastEntry{}}
	assert.False(t, withEmptyList.IsEmpty())

	withCity := &models.ForecastResponse{City: models.CityInfo{Name: "London"}}
	assert.False(t, withCity.IsEmpty())
}

func TestParseUnits(t *testing.T) {
	u, err := models.ParseUnits("")
	require.NoError(t, err)
	assert.Equal(t, models.UnitsMetric, u)

	u, err = models.ParseUnits("imperial")
	require.NoError(t, err)
	assert.Equal(t, "°F", u.TemperatureSymbol())

	assert.Equal(t, "K", models.UnitsStandard.TemperatureSymbol())
	assert.Equal(t, "°C", models.UnitsMetric.TemperatureSymbol())

	_, err = models.ParseUnits("kelvin")
	assert.Error(t, err)
}

func TestWeatherCondition_IconURL(t *testing.T) {
	w := models.WeatherCondition{Icon: "10d"}
	assert.Equal(t, "https://openweathermap.org/img/wn/10d@2x.png", w.IconURL())
	assert.Empty(t, models.WeatherCondition{}.IconURL())
}

func TestForecastEntry_Clone(t *testing.T) {
	gust := 4.1
	entry := models.ForecastEntry{
		DtTxt:   "2024-11-16 09:00:00",
		Weather: []models.WeatherCondition{{Description: "clear sky"}},
		Wind:    models.WindInfo{Gust: &gust},
	}

	clone := entry.Clone()
	clone.Weather[0].Description = "mutated"
	*clone.Wind.Gust = 9

	assert.Equal(t, "clear sky", entry.Weather[0].Description)
	assert.Equal(t, 4.1, *entry.Wind.Gust)
	assert.Equal(t, entry.DtTxt, clone.DtTxt)
}

func TestForecastViewState_CloneIsDeep(t *testing.T) {
	state := models.ForecastViewState{
		City:    "London",
		Entries: []models.ForecastEntry{{Weather: []models.WeatherCondition{{Description: "light rain"}}}},
	}

	clone := state.Clone()
	clone.Entries[0].Weather[0].Description = "mutated"

	assert.Equal(t, "light rain", state.Entries[0].Weather[0].Description)
}

func TestForecastResponse_Summary(t *testing.T) {
	var forecast models.ForecastResponse
	require.NoError(t, json.Unmarshal(loadFixture(t), &forecast))

	assert.Equal(t, "city: London country: GB entries: 3", forecast.Summary())
}
