package models

import (
	"github.com/go-playground/validator/v10"
)

// CreateOrderRequest is shared by the PayPal order and the Stripe checkout
// session endpoints. Amount is only a hint; the charged amount is resolved
// on the server.
type CreateOrderRequest struct {
	Amount       *float64 `json:"amount"`
	Product      string   `json:"product" validate:"max=64"`
	Description  string   `json:"description"`
	PatientName  string   `json:"patientName"`
	DoctorName   string   `json:"doctorName"`
	PatientEmail string   `json:"patientEmail"`
}

func (r *CreateOrderRequest) Validate() error {
	v := validator.New()
	return v.Struct(r)
}

type CaptureOrderRequest struct {
	OrderID string `json:"orderId" validate:"required"`
}

func (r *CaptureOrderRequest) Validate() error {
	v := validator.New()
	return v.Struct(r)
}

type VerifySessionRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
}

func (r *VerifySessionRequest) Validate() error {
	v := validator.New()
	return v.Struct(r)
}

type CreateOrderResponse struct {
	OrderID string `json:"orderId"`
	Success bool   `json:"success"`
}

type CaptureOrderResponse struct {
	Success           bool   `json:"success"`
	Verified          bool   `json:"verified"`
	TransactionID     string `json:"transactionId"`
	Amount            string `json:"amount"`
	PayerEmail        string `json:"payerEmail,omitempty"`
	PayerName         string `json:"payerName,omitempty"`
	VerificationToken string `json:"verificationToken"`
}

type CheckoutSessionResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

type VerifySessionResponse struct {
	Verified          bool              `json:"verified"`
	Success           bool              `json:"success"`
	TransactionID     string            `json:"transactionId"`
	Amount            string            `json:"amount"`
	Currency          string            `json:"currency"`
	CustomerEmail     string            `json:"customerEmail,omitempty"`
	CustomerName      string            `json:"customerName,omitempty"`
	Metadata          map[string]string `json:"metadata,omitempty"`
	VerificationToken string            `json:"verificationToken"`
}

type UnpaidSessionResponse struct {
	Verified bool   `json:"verified"`
	Error    string `json:"error"`
	Status   string `json:"status"`
}
