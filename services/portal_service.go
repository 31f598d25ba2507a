package services

import (
	"errors"
	"strings"

	"brickscapital/types"
	"brickscapital/utils/helpers"
)

var ErrInvalidCredentials = errors.New("email and password are required")

// Login is a demo: any non-empty email and password is accepted and the
// display name is derived from the email's local part.
func Login(email, password string) (types.Investor, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return types.Investor{}, ErrInvalidCredentials
	}
	return types.Investor{Name: DisplayName(email)}, nil
}

// DisplayName turns "maria.lopez@x.com" into "Maria.lopez".
func DisplayName(email string) string {
	local, _, _ := strings.Cut(strings.TrimSpace(email), "@")
	return helpers.Capitalize(local)
}

// Dashboard returns the fixed demo portfolio shown to every investor.
func Dashboard(investor types.Investor) types.Dashboard {
	return types.Dashboard{
		Investor:      investor,
		TotalInvested: 150000,
		CurrentValue:  167250,
		TotalReturns:  17250,
		GrowthPct:     11.5,
		AnnualizedPct: 9.8,
		Holdings: []types.Holding{
			{Fund: types.FundOne, Name: "Bricks One", TermYears: 10, RateBand: "7-15%", Invested: 100000, CurrentValue: 114500},
			{Fund: types.FundSeven, Name: "Bricks Seven", TermYears: 7, RateBand: "7-10%", Invested: 50000, CurrentValue: 52750},
		},
		Performance: []types.SeriesPoint{
			{Year: "2020", Value: 25000},
			{Year: "2021", Value: 27500},
			{Year: "2022", Value: 30250},
			{Year: "2023", Value: 33500},
			{Year: "2024", Value: 37800},
			{Year: "2025", Value: 40600},
		},
		Activity: []types.Activity{
			{DateKey: "portal.dashboard.activity1Date", DescriptionKey: "portal.dashboard.activity1Desc", AmountKey: "portal.dashboard.activity1Amount", Positive: true},
			{DateKey: "portal.dashboard.activity2Date", DescriptionKey: "portal.dashboard.activity2Desc", AmountKey: "portal.dashboard.activity2Amount"},
			{DateKey: "portal.dashboard.activity3Date", DescriptionKey: "portal.dashboard.activity3Desc", AmountKey: "portal.dashboard.activity3Amount", Positive: true},
			{DateKey: "portal.dashboard.activity4Date", DescriptionKey: "portal.dashboard.activity4Desc", AmountKey: "portal.dashboard.activity4Amount"},
		},
		Documents: []string{
			"portal.dashboard.downloadReport",
			"portal.dashboard.downloadCertificate",
			"portal.dashboard.downloadContract",
			"portal.dashboard.downloadProspectus",
		},
	}
}
