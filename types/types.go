package types

// FundID identifies one of the two fund products.
type FundID string

const (
	FundOne   FundID = "one"
	FundSeven FundID = "seven"
)

// FundProfile holds the fixed return band and maximum holding period of a fund
type FundProfile struct {
	ID       FundID  `json:"id"`
	Name     string  `json:"name"`
	MinRate  float64 `json:"minRate"`
	MaxRate  float64 `json:"maxRate"`
	MaxYears int     `json:"maxYears"`
}

// YearOption is one entry of the holding period selector
type YearOption struct {
	Years    int  `json:"years"`
	Disabled bool `json:"disabled"`
}

type CalculationInput struct {
	Fund   FundID     `json:"fund"`
	Amount AmountText `json:"amount"`
	Years  int        `json:"years"`
}

// CalculationResult is a simple-interest projection at the fund's minimum
// (guaranteed) and maximum (potential) annual rates.
type CalculationResult struct {
	InitialInvestment  float64 `json:"initialInvestment"`
	GuaranteedTotal    float64 `json:"guaranteedTotal"`
	GuaranteedEarnings float64 `json:"guaranteedEarnings"`
	GuaranteedAnnual   float64 `json:"guaranteedAnnual"`
	PotentialTotal     float64 `json:"potentialTotal"`
	PotentialEarnings  float64 `json:"potentialEarnings"`
	PotentialAnnual    float64 `json:"potentialAnnual"`
}

// CalculatorState is the per-visitor view state of the calculator widget.
type CalculatorState struct {
	Fund   FundID             `json:"fund"`
	Amount string             `json:"amount"`
	Years  int                `json:"years"`
	Result *CalculationResult `json:"result,omitempty"`
}

// HasResult reports whether a projection has been computed.
func (s CalculatorState) HasResult() bool {
	return s.Result != nil
}
