package controllers

import (
	"strings"
	"time"

	"brickscapital/middleware"
	"brickscapital/services"
	"brickscapital/types"
	"brickscapital/utils/i18n"

	"github.com/gin-gonic/gin"
)

var (
	homeStats      = []string{"aum", "investors", "years", "return"}
	numberedBlocks = []int{1, 2, 3}
	fundFeatures   = []string{"duration", "minReturn", "maxReturn", "minInvestment", "liquidity", "risk", "idealFor"}
	enquiryRanges  = []string{"range1", "range2", "range3", "range4", "range5"}
)

type calculatorView struct {
	State types.CalculatorState
	Fund  types.FundProfile
	Funds []types.FundProfile
	Years []types.YearOption
	Error string
}

type fundView struct {
	Profile types.FundProfile
	History types.FundHistory
	Average float64
}

// PageView is what the "layout" template renders. Flash holds a dictionary
// key.
type PageView struct {
	Lang       i18n.Language
	Page       string
	Nav        []string
	Hero       string
	Year       int
	Flash      string
	FlashError bool

	Stats    []string
	Reasons  []int
	Features []string
	Ranges   []string

	Calculator *calculatorView
	Funds      []fundView
	Form       types.EnquiryForm
	Dashboard  *types.Dashboard
}

// Views builds and renders page views.
type Views struct {
	assets     services.AssetServiceI
	calculator services.CalculatorServiceI
	now        func() time.Time
}

func NewViews(assets services.AssetServiceI, calculator services.CalculatorServiceI) *Views {
	return &Views{assets: assets, calculator: calculator, now: time.Now}
}

// Page returns the view of page for the current visitor, with the
// calculator widget state loaded on the pages that embed it.
func (v *Views) Page(ctx *gin.Context, page string) *PageView {
	page = services.ResolvePage(page)
	view := &PageView{
		Lang:    middleware.Language(ctx),
		Page:    page,
		Nav:     services.NavPages,
		Hero:    v.assets.Image(page),
		Year:    v.now().Year(),
		Reasons: numberedBlocks,
	}

	switch page {
	case services.PageHome:
		view.Stats = homeStats
		view.Calculator = v.calculatorView(ctx, "")
	case services.PageFunds:
		view.Features = fundFeatures
		view.Funds = fundViews()
		view.Calculator = v.calculatorView(ctx, "")
	case services.PageContact:
		view.Ranges = enquiryRanges
	}
	return view
}

func (v *Views) calculatorView(ctx *gin.Context, errKey string) *calculatorView {
	state := v.calculator.State(ctx.Request.Context(), middleware.VisitorID(ctx))
	return newCalculatorView(state, errKey)
}

func newCalculatorView(state types.CalculatorState, errKey string) *calculatorView {
	fund, err := services.LookupFund(state.Fund)
	if err != nil {
		fund, _ = services.LookupFund(types.FundOne)
	}
	return &calculatorView{
		State: state,
		Fund:  fund,
		Funds: services.Funds(),
		Years: services.YearOptions(fund),
		Error: errKey,
	}
}

func fundViews() []fundView {
	funds := services.Funds()
	views := make([]fundView, 0, len(funds))
	for _, fund := range funds {
		history := services.FundHistory(fund.ID)
		views = append(views, fundView{
			Profile: fund,
			History: history,
			Average: services.AverageReturn(history),
		})
	}
	return views
}

func (v *Views) Render(ctx *gin.Context, status int, view *PageView) {
	ctx.HTML(status, "layout", view)
}

// pagePath is the URL of a page.
func pagePath(page string) string {
	if page == services.PageHome {
		return "/"
	}
	return "/" + page
}

func isAPI(ctx *gin.Context) bool {
	return strings.HasPrefix(ctx.Request.URL.Path, "/api/")
}
