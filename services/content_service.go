package services

import (
	"brickscapital/types"
)

const (
	PageHome    = "home"
	PageAbout   = "about"
	PageFunds   = "funds"
	PageContact = "contact"
	PagePortal  = "portal"
)

// NavPages are the pages linked from the header, in order.
var NavPages = []string{PageHome, PageAbout, PageFunds, PageContact}

var pages = map[string]bool{
	PageHome:    true,
	PageAbout:   true,
	PageFunds:   true,
	PageContact: true,
	PagePortal:  true,
}

// ResolvePage maps a requested page name to a known page. Unknown names fall
// back to home.
func ResolvePage(name string) string {
	if pages[name] {
		return name
	}
	return PageHome
}

var fundHistories = []types.FundHistory{
	{
		Fund: types.FundOne,
		Returns: []types.SeriesPoint{
			{Year: "2016", Value: 8.5},
			{Year: "2017", Value: 11.2},
			{Year: "2018", Value: 9.8},
			{Year: "2019", Value: 13.4},
			{Year: "2020", Value: 7.9},
			{Year: "2021", Value: 14.2},
			{Year: "2022", Value: 10.1},
			{Year: "2023", Value: 12.8},
			{Year: "2024", Value: 13.5},
		},
	},
	{
		Fund: types.FundSeven,
		Returns: []types.SeriesPoint{
			{Year: "2021", Value: 7.8},
			{Year: "2022", Value: 8.9},
			{Year: "2023", Value: 9.2},
			{Year: "2024", Value: 9.5},
		},
	},
}

// FundHistory returns the yearly historical returns of a fund.
func FundHistory(id types.FundID) types.FundHistory {
	for _, h := range fundHistories {
		if h.Fund == id {
			return h
		}
	}
	return types.FundHistory{Fund: id}
}

// AverageReturn is the mean of the yearly returns, 0 for an empty history.
func AverageReturn(h types.FundHistory) float64 {
	if len(h.Returns) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range h.Returns {
		sum += p.Value
	}
	return sum / float64(len(h.Returns))
}
