package services

import (
	"testing"

	"brickscapital/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCalculatorStartsWithoutResult(t *testing.T) {
	c := NewCalculator()
	state := c.State()

	assert.False(t, state.HasResult())
	assert.Equal(t, types.FundOne, state.Fund)
	assert.Equal(t, DefaultCalculatorAmount, state.Amount)
	assert.Equal(t, DefaultCalculatorYears, state.Years)
}

func TestCalculatorSelectFundClampsYears(t *testing.T) {
	c := NewCalculator()
	require.NoError(t, c.SelectYears(10))

	require.NoError(t, c.SelectFund(types.FundSeven))
	assert.Equal(t, 7, c.State().Years)

	require.NoError(t, c.SelectFund(types.FundOne))
	assert.Equal(t, 7, c.State().Years, "switching back does not raise the period")
}

func TestCalculatorSelectFundUnknown(t *testing.T) {
	c := NewCalculator()
	err := c.SelectFund("nine")
	assert.ErrorIs(t, err, ErrUnknownFund)
	assert.Equal(t, types.FundOne, c.State().Fund)
}

func TestCalculatorSelectYearsRejectsDisabledOption(t *testing.T) {
	c := NewCalculator()
	require.NoError(t, c.SelectFund(types.FundSeven))

	err := c.SelectYears(10)
	assert.ErrorIs(t, err, ErrYearsNotAllowed)
	assert.Equal(t, 5, c.State().Years)

	assert.ErrorIs(t, c.SelectYears(6), ErrYearsNotAllowed)
}

func TestCalculatorSelectionDoesNotRecompute(t *testing.T) {
	c := NewCalculator()
	first, ok := c.Calculate()
	require.True(t, ok)

	require.NoError(t, c.SelectYears(10))
	c.SetAmount("50000")
	require.NoError(t, c.SelectFund(types.FundSeven))

	state := c.State()
	require.True(t, state.HasResult())
	assert.Equal(t, first, *state.Result)
	assert.Equal(t, 7, state.Years)
}

func TestCalculatorGuardKeepsPriorResult(t *testing.T) {
	c := NewCalculator()
	first, ok := c.Calculate()
	require.True(t, ok)

	for _, amount := range []string{"0", "-5", "abc", ""} {
		c.SetAmount(amount)
		_, ok := c.Calculate()
		assert.False(t, ok, amount)
		assert.Equal(t, first, *c.State().Result, amount)
	}
}

func TestCalculatorGuardWithoutPriorResult(t *testing.T) {
	c := NewCalculator()
	c.SetAmount("0")
	_, ok := c.Calculate()
	assert.False(t, ok)
	assert.False(t, c.State().HasResult())
}

func TestCalculatorIdempotent(t *testing.T) {
	c := NewCalculator()
	require.NoError(t, c.SelectFund(types.FundSeven))
	require.NoError(t, c.SelectYears(7))
	c.SetAmount("10000")

	first, ok := c.Calculate()
	require.True(t, ok)
	second, ok := c.Calculate()
	require.True(t, ok)

	assert.Equal(t, first, second)
	assert.InDelta(t, 14900, second.GuaranteedTotal, moneyDelta)
	assert.InDelta(t, 17000, second.PotentialTotal, moneyDelta)
}

func TestCalculatorStateIsACopy(t *testing.T) {
	c := NewCalculator()
	_, ok := c.Calculate()
	require.True(t, ok)

	state := c.State()
	state.Result.GuaranteedTotal = 1
	assert.NotEqual(t, 1.0, c.State().Result.GuaranteedTotal)
}

func TestRestoreCalculator(t *testing.T) {
	result := types.CalculationResult{InitialInvestment: 1}
	c := RestoreCalculator(types.CalculatorState{Fund: types.FundSeven, Amount: "100", Years: 7, Result: &result})
	state := c.State()
	assert.Equal(t, types.FundSeven, state.Fund)
	assert.Equal(t, "100", state.Amount)
	assert.Equal(t, 7, state.Years)
	assert.Equal(t, result, *state.Result)

	c = RestoreCalculator(types.CalculatorState{Fund: types.FundSeven, Years: 10})
	assert.Equal(t, 5, c.State().Years)

	c = RestoreCalculator(types.CalculatorState{Fund: "bogus"})
	assert.Equal(t, types.FundOne, c.State().Fund)
	assert.False(t, c.State().HasResult())
}
