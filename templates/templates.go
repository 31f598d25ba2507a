package templates

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"brickscapital/types"
	"brickscapital/utils/helpers"
	"brickscapital/utils/i18n"
)

//go:embed *.html
var pages embed.FS

//go:embed static
var static embed.FS

// Funcs are the helpers available to every template. Display strings and
// numbers are always rendered for the language passed in.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"t":           i18n.T,
		"money":       helpers.FormatCurrency,
		"signedMoney": helpers.FormatSignedCurrency,
		"percent":     helpers.FormatPercent,
		"rate":        helpers.FormatRate,
		"barHeight":   barHeight,
		"fundKey":     fundKey,
	}
}

// Parse loads the embedded page templates. The entry point is "layout".
func Parse() (*template.Template, error) {
	return template.New("site").Funcs(Funcs()).ParseFS(pages, "*.html")
}

// Static serves the embedded stylesheet and images under /static.
func Static() http.FileSystem {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// fundKey is the dictionary key of a fund's selector label.
func fundKey(id types.FundID) string {
	return "calculator.bricks" + helpers.Capitalize(string(id))
}

// barHeight scales a point of series to a 0-100 bar height relative to the
// largest value.
func barHeight(series []types.SeriesPoint, value float64) int {
	max := 0.0
	for _, p := range series {
		if p.Value > max {
			max = p.Value
		}
	}
	if max <= 0 {
		return 0
	}
	return int(value / max * 100)
}
