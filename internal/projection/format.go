package projection

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	DefaultLocale   = "en-KE"
	DefaultCurrency = "Ksh"
)

// Formatter renders amounts with locale-aware digit grouping, for example
// "Ksh 1,000". Digits come straight from the decimal, so large amounts keep
// every digit.
type Formatter struct {
	currency string
	group    string
	point    string
}

func NewFormatter(locale, currency string) Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Make(DefaultLocale)
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	p := message.NewPrinter(tag)
	return Formatter{
		currency: currency,
		group:    separator(p.Sprintf("%v", number.Decimal(1000000)), "1", "0", ","),
		point:    separator(p.Sprintf("%v", number.Decimal(1.5)), "1", "5", "."),
	}
}

// separator extracts what the locale prints between lead and next in sample.
func separator(sample, lead, next, fallback string) string {
	rest, ok := strings.CutPrefix(sample, lead)
	if !ok {
		return fallback
	}
	sep, _, ok := strings.Cut(rest, next)
	if !ok {
		return fallback
	}
	return sep
}

func (f Formatter) Amount(d decimal.Decimal) string {
	digits := d.Round(2).String()

	var b strings.Builder
	if rest, ok := strings.CutPrefix(digits, "-"); ok {
		b.WriteByte('-')
		digits = rest
	}
	whole, frac, _ := strings.Cut(digits, ".")
	for i := range len(whole) {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(f.group)
		}
		b.WriteByte(whole[i])
	}
	if frac != "" {
		b.WriteString(f.point)
		b.WriteString(frac)
	}
	return b.String()
}

func (f Formatter) Money(d decimal.Decimal) string {
	return f.currency + " " + f.Amount(d)
}

func (f Formatter) Currency() string {
	return f.currency
}
