package services

import (
	"errors"
	"fmt"

	"brickscapital/types"
	"brickscapital/utils/helpers"
)

var (
	ErrUnknownFund     = errors.New("unknown fund")
	ErrYearsNotAllowed = errors.New("holding period not allowed for fund")
)

// YearChoices are the discrete holding periods offered by the calculator.
var YearChoices = []int{5, 7, 10}

var fundProfiles = []types.FundProfile{
	{ID: types.FundOne, Name: "Bricks One", MinRate: 0.07, MaxRate: 0.15, MaxYears: 10},
	{ID: types.FundSeven, Name: "Bricks Seven", MinRate: 0.07, MaxRate: 0.10, MaxYears: 7},
}

// Funds returns a copy of the static fund profiles.
func Funds() []types.FundProfile {
	out := make([]types.FundProfile, len(fundProfiles))
	copy(out, fundProfiles)
	return out
}

func LookupFund(id types.FundID) (types.FundProfile, error) {
	for _, f := range fundProfiles {
		if f.ID == id {
			return f, nil
		}
	}
	return types.FundProfile{}, fmt.Errorf("%w: %q", ErrUnknownFund, id)
}

// YearOptions lists every holding period choice, disabling those above the
// fund's maximum term.
func YearOptions(fund types.FundProfile) []types.YearOption {
	options := make([]types.YearOption, 0, len(YearChoices))
	for _, y := range YearChoices {
		options = append(options, types.YearOption{Years: y, Disabled: y > fund.MaxYears})
	}
	return options
}

// AllowedYears reports whether years is one of the choices enabled for fund.
func AllowedYears(fund types.FundProfile, years int) bool {
	if years > fund.MaxYears {
		return false
	}
	for _, y := range YearChoices {
		if y == years {
			return true
		}
	}
	return false
}

// ClampYears lowers years to the fund's maximum term when it exceeds it.
func ClampYears(fund types.FundProfile, years int) int {
	if years > fund.MaxYears {
		return fund.MaxYears
	}
	return years
}

// ParseAmount reads the principal typed by the visitor; unparseable text is 0.
func ParseAmount(text string) float64 {
	return helpers.ToFloat(text)
}

// Calculate projects simple (non-compounding) interest at the fund's minimum
// and maximum rates. Earnings are paid out every year, so the annual amount
// is constant over the holding period. ok is false when principal <= 0.
func Calculate(fund types.FundProfile, principal float64, years int) (result types.CalculationResult, ok bool) {
	if principal <= 0 {
		return types.CalculationResult{}, false
	}

	guaranteedAnnual := principal * fund.MinRate
	guaranteedEarnings := guaranteedAnnual * float64(years)

	potentialAnnual := principal * fund.MaxRate
	potentialEarnings := potentialAnnual * float64(years)

	return types.CalculationResult{
		InitialInvestment:  principal,
		GuaranteedTotal:    principal + guaranteedEarnings,
		GuaranteedEarnings: guaranteedEarnings,
		GuaranteedAnnual:   guaranteedAnnual,
		PotentialTotal:     principal + potentialEarnings,
		PotentialEarnings:  potentialEarnings,
		PotentialAnnual:    potentialAnnual,
	}, true
}
