package types

// Investor is the mock signed-in investor. Only a display name is kept.
type Investor struct {
	Name string `json:"name"`
}

type Holding struct {
	Fund         FundID  `json:"fund"`
	Name         string  `json:"name"`
	TermYears    int     `json:"termYears"`
	RateBand     string  `json:"rateBand"`
	Invested     float64 `json:"invested"`
	CurrentValue float64 `json:"currentValue"`
}

// Returns is the gain over the invested amount.
func (h Holding) Returns() float64 {
	return h.CurrentValue - h.Invested
}

// ReturnPct is the gain as a percentage of the invested amount.
func (h Holding) ReturnPct() float64 {
	if h.Invested == 0 {
		return 0
	}
	return h.Returns() / h.Invested * 100
}

type SeriesPoint struct {
	Year  string  `json:"year"`
	Value float64 `json:"value"`
}

type Activity struct {
	DateKey        string `json:"dateKey"`
	DescriptionKey string `json:"descriptionKey"`
	AmountKey      string `json:"amountKey"`
	Positive       bool   `json:"positive"`
}

type Dashboard struct {
	Investor      Investor      `json:"investor"`
	TotalInvested float64       `json:"totalInvested"`
	CurrentValue  float64       `json:"currentValue"`
	TotalReturns  float64       `json:"totalReturns"`
	GrowthPct     float64       `json:"growthPct"`
	AnnualizedPct float64       `json:"annualizedPct"`
	Holdings      []Holding     `json:"holdings"`
	Performance   []SeriesPoint `json:"performance"`
	Activity      []Activity    `json:"activity"`
	Documents     []string      `json:"documents"`
}

// FundHistory is the yearly historical return series shown on the funds page.
type FundHistory struct {
	Fund    FundID        `json:"fund"`
	Returns []SeriesPoint `json:"returns"`
}
