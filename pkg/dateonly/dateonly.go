// Package dateonly converts calendar dates and wall-clock times between the
// canonical YYYY-MM-DD / HH:mm forms, backend timestamps and display strings.
//
// A date-only value is never handed to a UTC-interpreting parser: it is built
// from its numeric components in an explicit location, so the calendar day a
// user picked is the day that gets displayed and stored. Display helpers are
// lenient and never fail; Parse is the strict variant used where values enter
// the system.
package dateonly

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

const (
	DefaultTimezone = "America/Lima"
	DefaultLocale   = "es-PE"

	// Layout is the canonical date-only representation.
	Layout = "2006-01-02"

	noonUTCSuffix = "T12:00:00.000Z"
)

var (
	ErrEmptyDate       = errors.New("empty date")
	ErrInvalidDateOnly = errors.New("invalid date-only value")
	ErrInvalidTimezone = errors.New("invalid timezone")
)

var datePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// timestampLayouts are tried in order when a backend value carries a time part.
// Layouts without an offset are interpreted in the normalizer's location.
var timestampLayouts = []struct {
	layout string
	zoned  bool
}{
	{time.RFC3339Nano, true},
	{"2006-01-02T15:04:05.999999999-07", true},
	{"2006-01-02T15:04:05.999999999", false},
	{"2006-01-02T15:04", false},
}

var localeLayouts = map[string]string{
	"es-pe": "02/01/2006",
	"es":    "02/01/2006",
	"en-gb": "02/01/2006",
	"pt-br": "02/01/2006",
	"en-us": "1/2/2006",
	"en":    "1/2/2006",
}

// Normalizer applies the conversions for one timezone and display locale.
// It holds no mutable state and is safe for concurrent use.
type Normalizer struct {
	location *time.Location
	locale   string
	now      func() time.Time
}

type Option func(*Normalizer)

func WithLocale(locale string) Option {
	return func(n *Normalizer) {
		if strings.TrimSpace(locale) != "" {
			n.locale = locale
		}
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) {
		if now != nil {
			n.now = now
		}
	}
}

// New builds a Normalizer for loc. A nil location means the default timezone.
func New(loc *time.Location, opts ...Option) *Normalizer {
	if loc == nil {
		loc = defaultLocation()
	}
	n := &Normalizer{location: loc, locale: DefaultLocale, now: time.Now}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// NewForZone resolves an IANA zone name ("America/Lima") and builds a Normalizer.
func NewForZone(zone string, opts ...Option) (*Normalizer, error) {
	zone = strings.TrimSpace(zone)
	if zone == "" {
		zone = DefaultTimezone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTimezone, zone, err)
	}
	return New(loc, opts...), nil
}

func (n *Normalizer) Location() *time.Location { return n.location }

func (n *Normalizer) Locale() string { return n.locale }

// FormatDateOnly renders the date part of value with the locale's short date
// layout. An empty locale uses the normalizer's locale. Values that do not
// start with a valid YYYY-MM-DD are returned unchanged.
func (n *Normalizer) FormatDateOnly(value, locale string) string {
	if value == "" {
		return ""
	}
	y, m, d, ok := splitDate(datePrefix(value))
	if !ok {
		return value
	}
	if locale == "" {
		locale = n.locale
	}
	return time.Date(y, m, d, 0, 0, 0, 0, n.location).Format(layoutForLocale(locale))
}

// ParseDateOnlyAsLocal returns the date anchored at noon in the normalizer's
// location. Noon leaves twelve hours of slack before a later zone conversion
// can move the instant to a neighbouring day.
func (n *Normalizer) ParseDateOnlyAsLocal(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, ErrEmptyDate
	}
	y, m, d, ok := splitDate(datePrefix(strings.TrimSpace(value)))
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateOnly, value)
	}
	return time.Date(y, m, d, 12, 0, 0, 0, n.location), nil
}

// ToLocalDateString converts a backend value back to YYYY-MM-DD. Values
// without a time part are cut to their first ten characters; timestamps are
// parsed and re-rendered in the normalizer's location. Unparseable timestamps
// also fall back to the first ten characters.
func (n *Normalizer) ToLocalDateString(value string) string {
	if value == "" {
		return ""
	}
	if !strings.Contains(value, "T") {
		return firstTen(value)
	}
	t, err := n.parseTimestamp(value)
	if err != nil {
		return firstTen(value)
	}
	return t.Format(Layout)
}

// TodayLocal returns the current calendar date in the normalizer's location.
func (n *Normalizer) TodayLocal() string {
	return n.now().In(n.location).Format(Layout)
}

// Parse is the strict ingestion form: it accepts YYYY-MM-DD or a full
// timestamp and returns the canonical local date, or an error describing why
// the value was rejected. Calendar-impossible dates such as 2024-02-30 fail.
func (n *Normalizer) Parse(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", ErrEmptyDate
	}
	if strings.Contains(value, "T") {
		t, err := n.parseTimestamp(value)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidDateOnly, value)
		}
		return t.Format(Layout), nil
	}
	if _, _, _, ok := splitDate(value); !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateOnly, value)
	}
	return value, nil
}

func (n *Normalizer) parseTimestamp(value string) (time.Time, error) {
	for _, l := range timestampLayouts {
		if l.zoned {
			if t, err := time.Parse(l.layout, value); err == nil {
				return t.In(n.location), nil
			}
			continue
		}
		if t, err := time.ParseInLocation(l.layout, value, n.location); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported timestamp %q", value)
}

// FormatDateOnlyDdMmYyyy renders DD/MM/YYYY by splitting the string, without
// building a time value. Non-matching input yields its date part unchanged.
func FormatDateOnlyDdMmYyyy(value string) string {
	if value == "" {
		return ""
	}
	prefix := datePrefix(value)
	m := datePattern.FindStringSubmatch(prefix)
	if m == nil {
		return prefix
	}
	return m[3] + "/" + m[2] + "/" + m[1]
}

// ToNoonUTC turns YYYY-MM-DD into a timestamp at 12:00 UTC, which stays on the
// same calendar day in every zone within ±12h of UTC. Values that already
// carry a time part are returned as is.
func ToNoonUTC(dateOnly string) string {
	if dateOnly == "" || strings.Contains(dateOnly, "T") {
		return dateOnly
	}
	return dateOnly + noonUTCSuffix
}

func datePrefix(value string) string {
	if i := strings.IndexByte(value, 'T'); i >= 0 {
		return value[:i]
	}
	return value
}

func firstTen(value string) string {
	if len(value) <= len(Layout) {
		return value
	}
	return value[:len(Layout)]
}

func splitDate(s string) (int, time.Month, int, bool) {
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, 0, false
	}
	y, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[2])
	d, _ := strconv.Atoi(m[3])
	t := time.Date(y, time.Month(mo), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || t.Month() != time.Month(mo) || t.Day() != d {
		return 0, 0, 0, false
	}
	return y, time.Month(mo), d, true
}

func layoutForLocale(locale string) string {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
	if l, ok := localeLayouts[key]; ok {
		return l
	}
	if i := strings.IndexByte(key, '-'); i > 0 {
		if l, ok := localeLayouts[key[:i]]; ok {
			return l
		}
	}
	return localeLayouts["es-pe"]
}

func defaultLocation() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		// Peru has no DST.
		return time.FixedZone("PET", -5*60*60)
	}
	return loc
}
