package controllers

import (
	"errors"
	"net/http"

	"brickscapital/middleware"
	"brickscapital/services"
	"brickscapital/types"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CalculatorControllerI interface {
	Submit(ctx *gin.Context)
	Project(ctx *gin.Context)
	Funds(ctx *gin.Context)
}

type calculatorController struct {
	calculator services.CalculatorServiceI
	views      *Views
}

func NewCalculatorController(calculator services.CalculatorServiceI, views *Views) CalculatorControllerI {
	return &calculatorController{calculator: calculator, views: views}
}

type fundResponse struct {
	types.FundProfile
	YearOptions []types.YearOption  `json:"yearOptions"`
	History     []types.SeriesPoint `json:"history"`
}

// Submit handles the calculator widget form and redirects back to the page
// that embeds it.
func (c *calculatorController) Submit(ctx *gin.Context) {
	defer sentry.Recover()
	span := sentry.StartSpan(ctx.Request.Context(), "[GIN] SubmitCalculator", sentry.WithTransactionName("SubmitCalculator"))
	defer span.Finish()

	page := ctx.PostForm("page")
	if page != services.PageFunds {
		page = services.PageHome
	}

	var form services.CalculatorForm
	if err := ctx.ShouldBind(&form); err != nil {
		span.Status = sentry.SpanStatusInvalidArgument
		view := c.views.Page(ctx, page)
		view.Calculator.Error = "calculator.error.fund"
		c.views.Render(ctx, http.StatusBadRequest, view)
		return
	}
	if selected := ctx.PostForm("selectFund"); selected != "" {
		form.Fund = selected
		form.Action = services.ActionSelectFund
	}

	lang := middleware.Language(ctx)
	state, err := c.calculator.Apply(span.Context(), middleware.VisitorID(ctx), lang.String(), form)
	if err != nil {
		span.Status = sentry.SpanStatusInvalidArgument
		zap.L().Info("Calculator input rejected", zap.String("fund", form.Fund), zap.String("years", form.Years), zap.Error(err))
		view := c.views.Page(ctx, page)
		view.Calculator = newCalculatorView(state, calculatorErrorKey(err))
		c.views.Render(ctx, http.StatusBadRequest, view)
		return
	}

	ctx.Redirect(http.StatusSeeOther, pagePath(page)+"#calculator")
}

// Project is the JSON variant: it keeps no state and answers {"result": null}
// when the amount is not positive.
func (c *calculatorController) Project(ctx *gin.Context) {
	defer sentry.Recover()
	span := sentry.StartSpan(ctx.Request.Context(), "[GIN] ProjectReturns", sentry.WithTransactionName("ProjectReturns"))
	defer span.Finish()

	var input types.CalculationInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		span.Status = sentry.SpanStatusInvalidArgument
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := c.calculator.Project(span.Context(), middleware.VisitorID(ctx), middleware.Language(ctx).String(), input)
	if err != nil {
		span.Status = sentry.SpanStatusInvalidArgument
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"result": result})
}

func (c *calculatorController) Funds(ctx *gin.Context) {
	funds := services.Funds()
	response := make([]fundResponse, 0, len(funds))
	for _, fund := range funds {
		response = append(response, fundResponse{
			FundProfile: fund,
			YearOptions: services.YearOptions(fund),
			History:     services.FundHistory(fund.ID).Returns,
		})
	}
	ctx.JSON(http.StatusOK, gin.H{"funds": response})
}

func calculatorErrorKey(err error) string {
	if errors.Is(err, services.ErrUnknownFund) {
		return "calculator.error.fund"
	}
	return "calculator.error.years"
}
