package presentation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMondayFormatter_Locales(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "en_US"},
		{"en-US", "en_US"},
		{"en_US", "en_US"},
		{"de_DE", "de_DE"},
		{"de-DE", "de_DE"},
		{" en-US ", "en_US"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			f, err := NewMondayFormatter(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Locale())
		})
	}
}

func TestNewMondayFormatter_BareLanguage(t *testing.T) {
	f, err := NewMondayFormatter("fr")
	require.NoError(t, err)
	assert.Regexp(t, `^fr_`, f.Locale())
}

func TestNewMondayFormatter_Invalid(t *testing.T) {
	_, err := NewMondayFormatter("not a locale")
	assert.Error(t, err)
}

func TestMondayFormatter_Weekday(t *testing.T) {
	saturday := time.Date(2024, 11, 16, 9, 0, 0, 0, time.UTC)

	en, err := NewMondayFormatter("en_US")
	require.NoError(t, err)
	assert.Equal(t, "Saturday", en.Weekday(saturday))

	de, err := NewMondayFormatter("de_DE")
	require.NoError(t, err)
	assert.Equal(t, "Samstag", de.Weekday(saturday))
}

func TestMondayFormatter_Clock(t *testing.T) {
	f, err := NewMondayFormatter("en-US")
	require.NoError(t, err)

	assert.Equal(t, "9:00 AM", f.Clock(time.Date(2024, 11, 16, 9, 0, 0, 0, time.UTC)))
	assert.Equal(t, "9:00 PM", f.Clock(time.Date(2024, 11, 16, 21, 0, 0, 0, time.UTC)))
}

func TestMondayFormatter_Capitalize(t *testing.T) {
	f, err := NewMondayFormatter("en_US")
	require.NoError(t, err)

	assert.Equal(t, "Overcast clouds", f.Capitalize("overcast clouds"))
	assert.Equal(t, "Already", f.Capitalize("Already"))
	assert.Equal(t, "É", f.Capitalize("é"))
	assert.Equal(t, "Éclaircies", f.Capitalize("éclaircies"))
	assert.Equal(t, "", f.Capitalize(""))
}
