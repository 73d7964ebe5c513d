package models

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Amount accepts a JSON number or string and keeps its textual form.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	if f == 0 {
		*a = ""
		return nil
	}
	*a = Amount(strconv.FormatFloat(f, 'f', 2, 64))
	return nil
}

// SendDocumentsRequest is the body of POST /api/send-documents.
type SendDocumentsRequest struct {
	PatientEmail    string `json:"patientEmail" validate:"required"`
	PatientName     string `json:"patientName"`
	DoctorName      string `json:"doctorName"`
	BTMPDFBase64    string `json:"btmPdfBase64" validate:"required"`
	AttestPDFBase64 string `json:"attestPdfBase64" validate:"required"`
	TravelStartDate string `json:"travelStartDate"`
	TravelEndDate   string `json:"travelEndDate"`
	Destination     string `json:"destination"`
	PaymentAmount   Amount `json:"paymentAmount"`
	PaymentMethod   string `json:"paymentMethod"`
	StripeSessionID string `json:"stripeSessionId"`
	PayPalOrderID   string `json:"paypalOrderId"`
	IsAdminMode     bool   `json:"isAdminMode"`
}

func (r *SendDocumentsRequest) Validate() error {
	v := validator.New()
	return v.Struct(r)
}

type SendDocumentsResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId"`
	Message   string `json:"message"`
}
