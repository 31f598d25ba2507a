package types

import "time"

type Enquiry struct {
	ID              string    `json:"id" bson:"_id"`
	Name            string    `json:"name" bson:"name"`
	Email           string    `json:"email" bson:"email"`
	Phone           string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Fund            string    `json:"fund,omitempty" bson:"fund,omitempty"`
	InvestmentRange string    `json:"investmentRange,omitempty" bson:"investmentRange,omitempty"`
	Subject         string    `json:"subject,omitempty" bson:"subject,omitempty"`
	Message         string    `json:"message" bson:"message"`
	Consent         bool      `json:"consent" bson:"consent"`
	Language        string    `json:"language" bson:"language"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
}

// EnquiryForm is the raw contact form as posted by the browser or the API.
type EnquiryForm struct {
	Name            string `form:"name" json:"name"`
	Email           string `form:"email" json:"email"`
	Phone           string `form:"phone" json:"phone"`
	Fund            string `form:"fund" json:"fund"`
	InvestmentRange string `form:"investmentAmount" json:"investmentAmount"`
	Subject         string `form:"subject" json:"subject"`
	Message         string `form:"message" json:"message"`
	Consent         bool   `form:"consent" json:"consent"`
}
