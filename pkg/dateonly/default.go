package dateonly

import (
	"sync/atomic"
	"time"
)

var defaultNormalizer atomic.Pointer[Normalizer]

func init() {
	defaultNormalizer.Store(New(nil))
}

// Default returns the process-wide normalizer used by the package-level helpers.
func Default() *Normalizer {
	return defaultNormalizer.Load()
}

// SetDefault replaces the process-wide normalizer, typically once at startup
// from configuration.
func SetDefault(n *Normalizer) {
	if n != nil {
		defaultNormalizer.Store(n)
	}
}

func FormatDateOnly(value, locale string) string {
	return Default().FormatDateOnly(value, locale)
}

func ParseDateOnlyAsLocal(value string) (time.Time, error) {
	return Default().ParseDateOnlyAsLocal(value)
}

func ToLocalDateString(value string) string {
	return Default().ToLocalDateString(value)
}

func GetTodayLocal() string {
	return Default().TodayLocal()
}

func Parse(value string) (string, error) {
	return Default().Parse(value)
}
