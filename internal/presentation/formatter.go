package presentation

import (
	"fmt"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	DefaultLocale = "en_US"

	weekdayLayout = "Monday"
	clockLayout   = "3:04 PM"
)

// Formatter names dates for display in a fixed locale.
type Formatter interface {
	// Weekday returns the full weekday name, e.g. "Monday".
	Weekday(t time.Time) string
	// Clock returns the 12-hour time with the AM/PM marker, e.g. "9:00 AM".
	Clock(t time.Time) string
	// Capitalize upper-cases the first letter of s.
	Capitalize(s string) string
}

type MondayFormatter struct {
	locale monday.Locale
	tag    language.Tag
}

// NewMondayFormatter accepts BCP 47 ("en-US") and POSIX ("de_DE") style
// locale names as well as a bare language ("fr"), which resolves to the
// closest supported regional locale.
func NewMondayFormatter(locale string) (*MondayFormatter, error) {
	resolved, tag, err := resolveLocale(locale)
	if err != nil {
		return nil, err
	}

	return &MondayFormatter{
		locale: resolved,
		tag:    tag,
	}, nil
}

func (f *MondayFormatter) Locale() string {
	return string(f.locale)
}

func (f *MondayFormatter) Weekday(t time.Time) string {
	return monday.Format(t, weekdayLayout, f.locale)
}

func (f *MondayFormatter) Clock(t time.Time) string {
	return monday.Format(t, clockLayout, f.locale)
}

func (f *MondayFormatter) Capitalize(s string) string {
	// a Caser holds state and cannot be shared between goroutines
	upper := cases.Upper(f.tag)
	for i := range s {
		if i == 0 {
			continue
		}
		return upper.String(s[:i]) + s[i:]
	}
	return upper.String(s)
}

func resolveLocale(locale string) (monday.Locale, language.Tag, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		locale = DefaultLocale
	}

	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return "", language.Und, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	supported, tags := supportedLocales()
	_, index, confidence := language.NewMatcher(tags).Match(tag)
	if confidence < language.High {
		return "", language.Und, fmt.Errorf("unsupported locale %q", locale)
	}

	return supported[index], tags[index], nil
}

// supportedLocales lists monday's locales with the default first, since the
// matcher falls back to the first entry.
func supportedLocales() ([]monday.Locale, []language.Tag) {
	locales := []monday.Locale{DefaultLocale}
	tags := []language.Tag{language.MustParse("en-US")}

	for _, l := range monday.ListLocales() {
		if l == DefaultLocale {
			continue
		}
		tag, err := language.Parse(strings.ReplaceAll(string(l), "_", "-"))
		if err != nil {
			continue
		}
		locales = append(locales, l)
		tags = append(tags, tag)
	}

	return locales, tags
}
