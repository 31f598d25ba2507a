package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculationInputAmount(t *testing.T) {
	tests := []struct {
		name string
		body string
		want AmountText
	}{
		{"string", `{"amount":"25,000"}`, "25,000"},
		{"integer", `{"amount":25000}`, "25000"},
		{"decimal", `{"amount":1500.5}`, "1500.5"},
		{"negative", `{"amount":-5}`, "-5"},
		{"null", `{"amount":null}`, ""},
		{"missing", `{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var input CalculationInput
			require.NoError(t, json.Unmarshal([]byte(tt.body), &input))
			assert.Equal(t, tt.want, input.Amount)
		})
	}
}

func TestCalculationInputAmountRejectsOtherTypes(t *testing.T) {
	for _, body := range []string{`{"amount":true}`, `{"amount":[1]}`, `{"amount":{}}`} {
		var input CalculationInput
		assert.Error(t, json.Unmarshal([]byte(body), &input), body)
	}
}
