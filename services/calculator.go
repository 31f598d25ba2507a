package services

import (
	"fmt"

	"brickscapital/types"
)

const (
	DefaultCalculatorAmount = "25000"
	DefaultCalculatorYears  = 5
)

// Calculator holds the inputs and last projection of one visitor's widget.
// Only Calculate changes the result; selecting a fund may lower the period.
type Calculator struct {
	state types.CalculatorState
}

func NewCalculator() *Calculator {
	return &Calculator{state: types.CalculatorState{
		Fund:   types.FundOne,
		Amount: DefaultCalculatorAmount,
		Years:  DefaultCalculatorYears,
	}}
}

// RestoreCalculator rebuilds a calculator from a stored state. Invalid stored
// inputs are reset to the defaults.
func RestoreCalculator(state types.CalculatorState) *Calculator {
	c := NewCalculator()
	fund, err := LookupFund(state.Fund)
	if err != nil {
		return c
	}
	c.state.Fund = fund.ID
	c.state.Amount = state.Amount
	if AllowedYears(fund, state.Years) {
		c.state.Years = state.Years
	} else {
		c.state.Years = ClampYears(fund, c.state.Years)
	}
	if state.Result != nil {
		r := *state.Result
		c.state.Result = &r
	}
	return c
}

// State returns a copy of the current state.
func (c *Calculator) State() types.CalculatorState {
	s := c.state
	if s.Result != nil {
		r := *s.Result
		s.Result = &r
	}
	return s
}

func (c *Calculator) Fund() types.FundProfile {
	fund, _ := LookupFund(c.state.Fund)
	return fund
}

// SelectFund switches fund, clamping the period down to the new maximum term.
func (c *Calculator) SelectFund(id types.FundID) error {
	fund, err := LookupFund(id)
	if err != nil {
		return err
	}
	c.state.Fund = fund.ID
	c.state.Years = ClampYears(fund, c.state.Years)
	return nil
}

// SelectYears only accepts periods enabled for the current fund.
func (c *Calculator) SelectYears(years int) error {
	fund := c.Fund()
	if !AllowedYears(fund, years) {
		return fmt.Errorf("%w: %d years for %s", ErrYearsNotAllowed, years, fund.Name)
	}
	c.state.Years = years
	return nil
}

func (c *Calculator) SetAmount(text string) {
	c.state.Amount = text
}

// Calculate recomputes the projection from the current inputs. When the
// amount is not positive nothing changes and false is returned.
func (c *Calculator) Calculate() (types.CalculationResult, bool) {
	result, ok := Calculate(c.Fund(), ParseAmount(c.state.Amount), c.state.Years)
	if !ok {
		return types.CalculationResult{}, false
	}
	c.state.Result = &result
	return result, true
}
