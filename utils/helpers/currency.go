package helpers

import (
	"math"
	"strconv"

	"brickscapital/utils/i18n"

	"golang.org/x/text/message"
)

const (
	currencySymbol = "€"
	// Spanish only groups thousands from five digits on: "5000 €", "25.000 €".
	spanishGroupingFrom = 10000
)

// FormatCurrency renders an amount in euros without decimals using the
// separators of the display language: "25.000 €" for es, "€25,000" for en.
func FormatCurrency(lang i18n.Language, value float64) string {
	rounded := int64(math.Round(math.Abs(value)))
	var digits string
	if lang == i18n.Spanish && rounded < spanishGroupingFrom {
		digits = strconv.FormatInt(rounded, 10)
	} else {
		digits = message.NewPrinter(lang.Tag()).Sprintf("%d", rounded)
	}

	sign := ""
	if value < 0 && rounded != 0 {
		sign = "-"
	}
	if lang == i18n.English {
		return sign + currencySymbol + digits
	}
	return sign + digits + " " + currencySymbol
}

// FormatSignedCurrency prefixes positive amounts with "+".
func FormatSignedCurrency(lang i18n.Language, value float64) string {
	if value > 0 {
		return "+" + FormatCurrency(lang, value)
	}
	return FormatCurrency(lang, value)
}

// FormatPercent renders a percentage with one decimal, e.g. "9.8%" / "9,8 %".
func FormatPercent(lang i18n.Language, value float64) string {
	p := message.NewPrinter(lang.Tag())
	if lang == i18n.English {
		return p.Sprintf("%.1f%%", value)
	}
	return p.Sprintf("%.1f", value) + " %"
}

// FormatRate renders a fractional rate as a whole percentage: 0.15 -> "15%".
func FormatRate(rate float64) string {
	return message.NewPrinter(i18n.English.Tag()).Sprintf("%d%%", int64(math.Round(rate*100)))
}
