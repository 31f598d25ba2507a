package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"brickscapital/types"
	"brickscapital/utils/helpers"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrConsentRequired = errors.New("privacy policy consent is required")
	ErrInvalidEnquiry  = errors.New("invalid enquiry")
)

var (
	enquiryFunds  = map[string]bool{"": true, "bricks-one": true, "bricks-seven": true, "both": true}
	enquiryRanges = map[string]bool{"": true, "range1": true, "range2": true, "range3": true, "range4": true, "range5": true}
)

const maxMessageLength = 5000

type ContactServiceI interface {
	Submit(ctx context.Context, form types.EnquiryForm, lang string) (types.Enquiry, error)
	Enquiries(ctx context.Context) ([]types.Enquiry, error)
}

type contactService struct {
	store     EnquiryStore
	publisher EventPublisher
	now       func() time.Time
}

func NewContactService(store EnquiryStore, publisher EventPublisher) ContactServiceI {
	return &contactService{store: store, publisher: publisher, now: time.Now}
}

// ValidateEnquiry checks a contact form. Consent is checked first so the
// visitor gets the privacy policy message before any field error.
func ValidateEnquiry(form types.EnquiryForm) error {
	if !form.Consent {
		return ErrConsentRequired
	}
	if strings.TrimSpace(form.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidEnquiry)
	}
	if !helpers.IsEmail(form.Email) {
		return fmt.Errorf("%w: email is not valid", ErrInvalidEnquiry)
	}
	if strings.TrimSpace(form.Message) == "" {
		return fmt.Errorf("%w: message is required", ErrInvalidEnquiry)
	}
	if len(form.Message) > maxMessageLength {
		return fmt.Errorf("%w: message is too long", ErrInvalidEnquiry)
	}
	if !enquiryFunds[helpers.NormalizeString(form.Fund)] {
		return fmt.Errorf("%w: unknown fund %q", ErrInvalidEnquiry, form.Fund)
	}
	if !enquiryRanges[helpers.NormalizeString(form.InvestmentRange)] {
		return fmt.Errorf("%w: unknown investment range %q", ErrInvalidEnquiry, form.InvestmentRange)
	}
	return nil
}

func (s *contactService) Submit(ctx context.Context, form types.EnquiryForm, lang string) (types.Enquiry, error) {
	if err := ValidateEnquiry(form); err != nil {
		return types.Enquiry{}, err
	}

	enquiry := types.Enquiry{
		ID:              uuid.New().String(),
		Name:            strings.TrimSpace(form.Name),
		Email:           strings.TrimSpace(form.Email),
		Phone:           strings.TrimSpace(form.Phone),
		Fund:            helpers.NormalizeString(form.Fund),
		InvestmentRange: helpers.NormalizeString(form.InvestmentRange),
		Subject:         strings.TrimSpace(form.Subject),
		Message:         strings.TrimSpace(form.Message),
		Consent:         form.Consent,
		Language:        lang,
		CreatedAt:       s.now().UTC(),
	}

	span := sentry.StartSpan(ctx, "[DB] Save enquiry")
	err := s.store.Save(span.Context(), enquiry)
	span.Finish()
	if err != nil {
		sentry.CaptureException(err)
		zap.L().Error("Error saving enquiry", zap.String("id", enquiry.ID), zap.Error(err))
		return types.Enquiry{}, fmt.Errorf("saving enquiry: %w", err)
	}

	zap.L().Info("Enquiry received", zap.String("id", enquiry.ID), zap.String("fund", enquiry.Fund))
	publishEvent(ctx, s.publisher, NewEvent(types.EventEnquiryReceived, "", lang, map[string]any{
		"id":              enquiry.ID,
		"fund":            enquiry.Fund,
		"investmentRange": enquiry.InvestmentRange,
		"subject":         enquiry.Subject,
	}))

	return enquiry, nil
}

func (s *contactService) Enquiries(ctx context.Context) ([]types.Enquiry, error) {
	span := sentry.StartSpan(ctx, "[DB] List enquiries")
	defer span.Finish()
	return s.store.List(span.Context())
}
