package services

import (
	"context"
	"testing"
	"time"

	"brickscapital/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestCalculatorService() (CalculatorServiceI, *recordingPublisher) {
	publisher := &recordingPublisher{}
	return NewCalculatorService(NewMemoryCalculatorStore(time.Hour), publisher), publisher
}

func TestCalculatorServiceInitialState(t *testing.T) {
	svc, _ := newTestCalculatorService()
	state := svc.State(context.Background(), "v1")

	assert.Equal(t, types.FundOne, state.Fund)
	assert.False(t, state.HasResult())
}

func TestCalculatorServiceCalculate(t *testing.T) {
	svc, publisher := newTestCalculatorService()
	ctx := context.Background()

	state, err := svc.Apply(ctx, "v1", "en", CalculatorForm{Fund: "one", Amount: "25000", Years: "5", Action: ActionCalculate})
	require.NoError(t, err)
	require.True(t, state.HasResult())
	assert.InDelta(t, 33750, state.Result.GuaranteedTotal, moneyDelta)
	assert.InDelta(t, 43750, state.Result.PotentialTotal, moneyDelta)

	assert.Equal(t, state, svc.State(ctx, "v1"))
	assert.False(t, svc.State(ctx, "v2").HasResult())

	events := publisher.Events()
	require.Len(t, events, 1)
	assert.Equal(t, types.EventProjectionCalculated, events[0].Type)
	assert.Equal(t, "v1", events[0].VisitorID)
	assert.Equal(t, "one", events[0].Payload["fund"])
}

func TestCalculatorServiceFundChangeClampsAndKeepsResult(t *testing.T) {
	svc, publisher := newTestCalculatorService()
	ctx := context.Background()

	first, err := svc.Apply(ctx, "v1", "es", CalculatorForm{Fund: "one", Amount: "25000", Years: "10", Action: ActionCalculate})
	require.NoError(t, err)

	state, err := svc.Apply(ctx, "v1", "es", CalculatorForm{Fund: "seven", Amount: "25000", Years: "10", Action: ActionSelectFund})
	require.NoError(t, err)

	assert.Equal(t, types.FundSeven, state.Fund)
	assert.Equal(t, 7, state.Years)
	assert.Equal(t, first.Result, state.Result)
	assert.Len(t, publisher.Events(), 1)
}

func TestCalculatorServiceFundChangeIgnoresStalePeriod(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	defer zap.ReplaceGlobals(zap.New(core))()

	svc, _ := newTestCalculatorService()
	ctx := context.Background()

	_, err := svc.Apply(ctx, "v1", "es", CalculatorForm{Fund: "seven", Amount: "25000", Years: "7", Action: ActionSelectFund})
	require.NoError(t, err)

	state, err := svc.Apply(ctx, "v1", "es", CalculatorForm{Fund: "one", Amount: "25000", Years: "10", Action: ActionSelectFund})
	require.NoError(t, err)
	assert.Equal(t, types.FundOne, state.Fund)
	assert.Equal(t, 7, state.Years)
	assert.False(t, state.HasResult())

	ignored := logs.FilterMessage("Ignoring posted period on fund change").All()
	require.Len(t, ignored, 1)
	assert.Equal(t, "v1", ignored[0].ContextMap()["visitor"])
}

func TestCalculatorServiceRejectsDisabledYears(t *testing.T) {
	svc, _ := newTestCalculatorService()
	ctx := context.Background()

	_, err := svc.Apply(ctx, "v1", "es", CalculatorForm{Fund: "seven", Amount: "25000", Years: "10", Action: ActionCalculate})
	assert.ErrorIs(t, err, ErrYearsNotAllowed)
	assert.False(t, svc.State(ctx, "v1").HasResult())
}

func TestCalculatorServiceRejectsUnknownFund(t *testing.T) {
	svc, _ := newTestCalculatorService()
	_, err := svc.Apply(context.Background(), "v1", "es", CalculatorForm{Fund: "x", Amount: "1", Years: "5", Action: ActionCalculate})
	assert.ErrorIs(t, err, ErrUnknownFund)
}

func TestCalculatorServiceGuardKeepsResult(t *testing.T) {
	svc, publisher := newTestCalculatorService()
	ctx := context.Background()

	first, err := svc.Apply(ctx, "v1", "es", CalculatorForm{Fund: "one", Amount: "25000", Years: "5", Action: ActionCalculate})
	require.NoError(t, err)

	state, err := svc.Apply(ctx, "v1", "es", CalculatorForm{Fund: "one", Amount: "abc", Years: "5", Action: ActionCalculate})
	require.NoError(t, err)
	assert.Equal(t, first.Result, state.Result)
	assert.Equal(t, "abc", state.Amount)
	assert.Len(t, publisher.Events(), 1)
}

func TestCalculatorServiceStoreFailureFallsBack(t *testing.T) {
	svc := NewCalculatorService(failingCalculatorStore{}, &recordingPublisher{})

	state, err := svc.Apply(context.Background(), "v1", "es", CalculatorForm{Fund: "seven", Amount: "10000", Years: "7", Action: ActionCalculate})
	require.NoError(t, err)
	require.True(t, state.HasResult())
	assert.InDelta(t, 17000, state.Result.PotentialTotal, moneyDelta)
}

func TestCalculatorServiceProject(t *testing.T) {
	svc, publisher := newTestCalculatorService()
	ctx := context.Background()

	result, err := svc.Project(ctx, "", "en", types.CalculationInput{Fund: types.FundSeven, Amount: "10000", Years: 7})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.InDelta(t, 14900, result.GuaranteedTotal, moneyDelta)

	result, err = svc.Project(ctx, "", "en", types.CalculationInput{Fund: types.FundSeven, Amount: "0", Years: 7})
	require.NoError(t, err)
	assert.Nil(t, result)

	_, err = svc.Project(ctx, "", "en", types.CalculationInput{Fund: types.FundSeven, Amount: "10000", Years: 10})
	assert.ErrorIs(t, err, ErrYearsNotAllowed)

	_, err = svc.Project(ctx, "", "en", types.CalculationInput{Fund: "x", Amount: "10000", Years: 5})
	assert.ErrorIs(t, err, ErrUnknownFund)

	assert.Len(t, publisher.Events(), 1)
}
