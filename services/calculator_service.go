package services

import (
	"context"

	"brickscapital/types"
	"brickscapital/utils/helpers"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
)

const (
	ActionSelectFund = "fund"
	ActionCalculate  = "calculate"
)

// CalculatorForm is the calculator widget as posted by the browser. Action
// tells which control triggered the submit.
type CalculatorForm struct {
	Fund   string `form:"fund"`
	Amount string `form:"amount"`
	Years  string `form:"years"`
	Action string `form:"action"`
}

type CalculatorServiceI interface {
	State(ctx context.Context, visitorID string) types.CalculatorState
	Apply(ctx context.Context, visitorID, lang string, form CalculatorForm) (types.CalculatorState, error)
	Project(ctx context.Context, visitorID, lang string, input types.CalculationInput) (*types.CalculationResult, error)
}

type calculatorService struct {
	store     CalculatorStore
	publisher EventPublisher
}

func NewCalculatorService(store CalculatorStore, publisher EventPublisher) CalculatorServiceI {
	return &calculatorService{store: store, publisher: publisher}
}

func (s *calculatorService) load(ctx context.Context, visitorID string) *Calculator {
	span := sentry.StartSpan(ctx, "[DB] Load calculator state")
	defer span.Finish()

	state, ok, err := s.store.Load(span.Context(), visitorID)
	if err != nil {
		span.Status = sentry.SpanStatusInternalError
		sentry.CaptureException(err)
		zap.L().Error("Error loading calculator state", zap.String("visitor", visitorID), zap.Error(err))
		return NewCalculator()
	}
	if !ok {
		return NewCalculator()
	}
	return RestoreCalculator(state)
}

func (s *calculatorService) save(ctx context.Context, visitorID string, c *Calculator) {
	span := sentry.StartSpan(ctx, "[DB] Save calculator state")
	defer span.Finish()

	if err := s.store.Save(span.Context(), visitorID, c.State()); err != nil {
		span.Status = sentry.SpanStatusInternalError
		sentry.CaptureException(err)
		zap.L().Error("Error saving calculator state", zap.String("visitor", visitorID), zap.Error(err))
	}
}

// State returns the visitor's widget state, or the initial one.
func (s *calculatorService) State(ctx context.Context, visitorID string) types.CalculatorState {
	return s.load(ctx, visitorID).State()
}

// Apply runs one widget interaction. Changing fund never recomputes; it
// clamps the period to the new fund. Calculate rejects periods the fund does
// not offer and keeps the previous result when the amount is not positive.
func (s *calculatorService) Apply(ctx context.Context, visitorID, lang string, form CalculatorForm) (types.CalculatorState, error) {
	c := s.load(ctx, visitorID)
	years := helpers.ToInt(form.Years)
	c.SetAmount(form.Amount)

	switch form.Action {
	case ActionSelectFund:
		// the posted period was chosen under the previous fund
		if form.Years != "" {
			if err := c.SelectYears(years); err != nil {
				zap.L().Debug("Ignoring posted period on fund change", zap.String("visitor", visitorID), zap.Error(err))
			}
		}
		if err := c.SelectFund(types.FundID(form.Fund)); err != nil {
			return c.State(), err
		}
	case ActionCalculate, "":
		if err := c.SelectFund(types.FundID(form.Fund)); err != nil {
			return c.State(), err
		}
		if err := c.SelectYears(years); err != nil {
			return c.State(), err
		}
		if result, ok := c.Calculate(); ok {
			s.publishProjection(ctx, visitorID, lang, c.Fund(), c.State().Years, result)
		}
	}

	s.save(ctx, visitorID, c)
	return c.State(), nil
}

// Project is the stateless variant used by the JSON API. A nil result means
// the amount was not positive.
func (s *calculatorService) Project(ctx context.Context, visitorID, lang string, input types.CalculationInput) (*types.CalculationResult, error) {
	fund, err := LookupFund(input.Fund)
	if err != nil {
		return nil, err
	}
	if !AllowedYears(fund, input.Years) {
		return nil, ErrYearsNotAllowed
	}

	result, ok := Calculate(fund, ParseAmount(string(input.Amount)), input.Years)
	if !ok {
		return nil, nil
	}
	s.publishProjection(ctx, visitorID, lang, fund, input.Years, result)
	return &result, nil
}

func (s *calculatorService) publishProjection(ctx context.Context, visitorID, lang string, fund types.FundProfile, years int, result types.CalculationResult) {
	publishEvent(ctx, s.publisher, NewEvent(types.EventProjectionCalculated, visitorID, lang, map[string]any{
		"fund":      string(fund.ID),
		"years":     years,
		"principal": result.InitialInvestment,
	}))
}
