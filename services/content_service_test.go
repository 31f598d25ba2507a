package services

import (
	"testing"

	"brickscapital/types"

	"github.com/stretchr/testify/assert"
)

func TestResolvePage(t *testing.T) {
	assert.Equal(t, PageFunds, ResolvePage("funds"))
	assert.Equal(t, PagePortal, ResolvePage("portal"))
	assert.Equal(t, PageHome, ResolvePage("pricing"))
	assert.Equal(t, PageHome, ResolvePage(""))
}

func TestFundHistory(t *testing.T) {
	one := FundHistory(types.FundOne)
	assert.Len(t, one.Returns, 9)
	assert.Equal(t, "2016", one.Returns[0].Year)

	seven := FundHistory(types.FundSeven)
	assert.Len(t, seven.Returns, 4)
	assert.InDelta(t, 8.85, AverageReturn(seven), 1e-9)

	assert.Empty(t, FundHistory("x").Returns)
	assert.Equal(t, 0.0, AverageReturn(FundHistory("x")))
}
