package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"brickscapital/services"

	"github.com/stretchr/testify/assert"
)

func TestBackTo(t *testing.T) {
	tests := []struct {
		referer string
		want    string
	}{
		{"", "/"},
		{"http://brickscapital.es/funds", "/funds"},
		{"http://brickscapital.es/contact?lang=en", "/contact"},
		{"http://brickscapital.es/?lang=en&utm=x", "/?utm=x"},
		{"https://other.example/funds", "/"},
		{"/about", "/about"},
		{"://bad", "/"},
		{"http://brickscapital.es//evil.example/x", "/"},
		{"http://brickscapital.es/\\evil.example", "/"},
		{"http://brickscapital.es/%2F%2Fevil.example", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.referer, func(t *testing.T) {
			assert.Equal(t, tt.want, backTo(tt.referer, "brickscapital.es"))
		})
	}
}

func TestEnquiryError(t *testing.T) {
	status, key := enquiryError(services.ErrConsentRequired)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "contact.form.error.consent", key)

	status, key = enquiryError(fmt.Errorf("%w: name is required", services.ErrInvalidEnquiry))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "contact.form.error.invalid", key)

	status, key = enquiryError(errors.New("store unavailable"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "contact.form.error.internal", key)
}

func TestCalculatorErrorKey(t *testing.T) {
	assert.Equal(t, "calculator.error.fund", calculatorErrorKey(services.ErrUnknownFund))
	assert.Equal(t, "calculator.error.years", calculatorErrorKey(services.ErrYearsNotAllowed))
}

func TestPagePath(t *testing.T) {
	assert.Equal(t, "/", pagePath(services.PageHome))
	assert.Equal(t, "/funds", pagePath(services.PageFunds))
}

func TestNewCalculatorView(t *testing.T) {
	view := newCalculatorView(services.NewCalculator().State(), "")
	assert.Equal(t, "one", string(view.Fund.ID))
	assert.Len(t, view.Years, 3)
	assert.Len(t, view.Funds, 2)
}
