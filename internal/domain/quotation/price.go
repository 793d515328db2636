package quotation

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyPrice     = errors.New("empty price")
	ErrMalformedPrice = errors.New("malformed price")
	ErrNegativePrice  = errors.New("negative price")
)

var (
	currencyMarker = regexp.MustCompile(`(?i)^s/(?:\.\s+|\s*)`)
	amountPattern  = regexp.MustCompile(`^(\d+(\.\d*)?|\.\d+)$`)
)

const currencySymbol = "S/ "

// ParsePriceStrict reads a catalog price such as "S/ 150.00", "S/1,200.50" or
// "80". The currency marker and thousands commas are optional.
func ParsePriceStrict(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, ErrEmptyPrice
	}
	s = currencyMarker.ReplaceAllString(s, "")
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))

	if strings.HasPrefix(s, "-") && amountPattern.MatchString(s[1:]) {
		return decimal.Zero, ErrNegativePrice
	}
	if !amountPattern.MatchString(s) {
		return decimal.Zero, ErrMalformedPrice
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrMalformedPrice
	}
	return d, nil
}

// ParsePrice is the lenient form used by the quotation engine: a price that
// cannot be read contributes zero instead of failing the quote.
func ParsePrice(raw string) decimal.Decimal {
	d, err := ParsePriceStrict(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatPrice renders an amount as "S/ 1,200.50".
func FormatPrice(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	parts := strings.SplitN(amount.StringFixed(2), ".", 2)
	return sign + currencySymbol + groupThousands(parts[0]) + "." + parts[1]
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
