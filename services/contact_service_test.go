package services

import (
	"context"
	"testing"

	"brickscapital/types"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() types.EnquiryForm {
	return types.EnquiryForm{
		Name:            "  Lucía Martín ",
		Email:           "lucia@example.com",
		Phone:           "+34 600 000 000",
		Fund:            "bricks-one",
		InvestmentRange: "range2",
		Subject:         "Información",
		Message:         "Quiero saber más sobre Bricks One.",
		Consent:         true,
	}
}

func TestValidateEnquiry(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.EnquiryForm)
		want   error
	}{
		{"valid", func(f *types.EnquiryForm) {}, nil},
		{"no consent", func(f *types.EnquiryForm) { f.Consent = false; f.Name = "" }, ErrConsentRequired},
		{"no name", func(f *types.EnquiryForm) { f.Name = " " }, ErrInvalidEnquiry},
		{"bad email", func(f *types.EnquiryForm) { f.Email = "lucia" }, ErrInvalidEnquiry},
		{"no message", func(f *types.EnquiryForm) { f.Message = "" }, ErrInvalidEnquiry},
		{"unknown fund", func(f *types.EnquiryForm) { f.Fund = "bricks-nine" }, ErrInvalidEnquiry},
		{"unknown range", func(f *types.EnquiryForm) { f.InvestmentRange = "range9" }, ErrInvalidEnquiry},
		{"optional fields empty", func(f *types.EnquiryForm) { f.Fund = ""; f.InvestmentRange = ""; f.Phone = "" }, nil},
		{"fund and range in other case", func(f *types.EnquiryForm) { f.Fund = " Bricks-Seven "; f.InvestmentRange = "RANGE3" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)
			err := ValidateEnquiry(form)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestContactServiceSubmit(t *testing.T) {
	store := NewMemoryEnquiryStore()
	publisher := &recordingPublisher{}
	svc := NewContactService(store, publisher)
	ctx := context.Background()

	enquiry, err := svc.Submit(ctx, validForm(), "es")
	require.NoError(t, err)

	_, err = uuid.Parse(enquiry.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Lucía Martín", enquiry.Name)
	assert.Equal(t, "es", enquiry.Language)
	assert.False(t, enquiry.CreatedAt.IsZero())

	stored, err := svc.Enquiries(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, enquiry, stored[0])

	events := publisher.Events()
	require.Len(t, events, 1)
	assert.Equal(t, types.EventEnquiryReceived, events[0].Type)
	assert.Equal(t, enquiry.ID, events[0].Payload["id"])
}

func TestContactServiceSubmitNormalisesChoices(t *testing.T) {
	svc := NewContactService(NewMemoryEnquiryStore(), &recordingPublisher{})
	form := validForm()
	form.Fund, form.InvestmentRange = " Both", "Range5 "

	enquiry, err := svc.Submit(context.Background(), form, "en")
	require.NoError(t, err)
	assert.Equal(t, "both", enquiry.Fund)
	assert.Equal(t, "range5", enquiry.InvestmentRange)
}

func TestContactServiceSubmitInvalidStoresNothing(t *testing.T) {
	store := NewMemoryEnquiryStore()
	publisher := &recordingPublisher{}
	svc := NewContactService(store, publisher)

	form := validForm()
	form.Consent = false
	_, err := svc.Submit(context.Background(), form, "en")
	assert.ErrorIs(t, err, ErrConsentRequired)

	stored, _ := store.List(context.Background())
	assert.Empty(t, stored)
	assert.Empty(t, publisher.Events())
}

func TestContactServiceStoreFailure(t *testing.T) {
	publisher := &recordingPublisher{}
	svc := NewContactService(failingEnquiryStore{}, publisher)

	_, err := svc.Submit(context.Background(), validForm(), "en")
	assert.Error(t, err)
	assert.Empty(t, publisher.Events())
}

func TestContactServicePublisherFailureStillAccepts(t *testing.T) {
	publisher := &recordingPublisher{err: assert.AnError}
	svc := NewContactService(NewMemoryEnquiryStore(), publisher)

	_, err := svc.Submit(context.Background(), validForm(), "en")
	assert.NoError(t, err)
}
