package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/ManuelReschke/BTMReise/app/models"
	"github.com/ManuelReschke/BTMReise/internal/pkg/billing"
	"github.com/ManuelReschke/BTMReise/internal/pkg/usercontext"
)

// PaymentController exposes order creation and verification for the
// PayPal and Stripe checkouts.
type PaymentController struct {
	manager *billing.Manager
}

func NewPaymentController(manager *billing.Manager) *PaymentController {
	return &PaymentController{manager: manager}
}

func orderRequest(req models.CreateOrderRequest) billing.OrderRequest {
	return billing.OrderRequest{
		Product:      req.Product,
		AmountHint:   req.Amount,
		PatientName:  req.PatientName,
		DoctorName:   req.DoctorName,
		PatientEmail: req.PatientEmail,
		Description:  req.Description,
	}
}

func isBadAmount(err error) bool {
	return errors.Is(err, billing.ErrInvalidAmount) || errors.Is(err, billing.ErrUnknownProduct)
}

func (ctl *PaymentController) HandlePayPalCreateOrder(c *fiber.Ctx) error {
	var req models.CreateOrderRequest
	if decodeErr, validateErr := parseBody(c, &req); decodeErr != nil || validateErr != nil {
		return jsonError(c, fiber.StatusBadRequest, "Ungültige Anfrage")
	}

	order, err := ctl.manager.CreateOrder(c.UserContext(), billing.ProviderPayPal, orderRequest(req))
	if err != nil {
		if isBadAmount(err) {
			return jsonError(c, fiber.StatusBadRequest, "Ungültiger Betrag")
		}
		log.WithError(err).WithField("request_id", usercontext.RequestID(c)).Error("paypal order could not be created")
		return jsonError(c, fiber.StatusInternalServerError, "Order konnte nicht erstellt werden")
	}

	return c.JSON(models.CreateOrderResponse{OrderID: order.ID, Success: true})
}

func (ctl *PaymentController) HandlePayPalCaptureOrder(c *fiber.Ctx) error {
	var req models.CaptureOrderRequest
	decodeErr, validateErr := parseBody(c, &req)
	if decodeErr != nil {
		return jsonError(c, fiber.StatusBadRequest, "Ungültige Anfrage")
	}
	if validateErr != nil {
		return jsonError(c, fiber.StatusBadRequest, "Keine Order-ID angegeben")
	}

	record, err := ctl.manager.Verify(c.UserContext(), billing.ProviderPayPal, req.OrderID)
	if err != nil {
		var notPaid *billing.NotPaidError
		switch {
		case errors.Is(err, billing.ErrInvalidOrderID):
			return jsonError(c, fiber.StatusBadRequest, "Ungültige Order-ID")
		case errors.As(err, &notPaid):
			msg := "Zahlung fehlgeschlagen"
			if notPaid.Reason != "" {
				msg = notPaid.Reason
			}
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":  msg,
				"status": notPaid.Status,
			})
		case errors.Is(err, billing.ErrAmountMismatch):
			return jsonError(c, fiber.StatusBadRequest, "Betrag stimmt nicht überein")
		}
		log.WithError(err).WithField("request_id", usercontext.RequestID(c)).Error("paypal capture failed")
		return jsonError(c, fiber.StatusInternalServerError, "Zahlungsverifizierung fehlgeschlagen")
	}

	return c.JSON(models.CaptureOrderResponse{
		Success:           true,
		Verified:          true,
		TransactionID:     record.TransactionID,
		Amount:            record.Amount.StringFixed(2),
		PayerEmail:        record.PayerEmail,
		PayerName:         record.PayerName,
		VerificationToken: record.Token,
	})
}

func (ctl *PaymentController) HandleStripeCreateCheckoutSession(c *fiber.Ctx) error {
	var req models.CreateOrderRequest
	if decodeErr, validateErr := parseBody(c, &req); decodeErr != nil || validateErr != nil {
		return jsonError(c, fiber.StatusBadRequest, "Ungültige Anfrage")
	}

	order, err := ctl.manager.CreateOrder(c.UserContext(), billing.ProviderStripe, orderRequest(req))
	if err != nil {
		if isBadAmount(err) {
			return jsonError(c, fiber.StatusBadRequest, "Ungültiger Betrag")
		}
		log.WithError(err).WithField("request_id", usercontext.RequestID(c)).Error("stripe checkout session could not be created")
		return jsonError(c, fiber.StatusInternalServerError, "Checkout-Session konnte nicht erstellt werden")
	}

	return c.JSON(models.CheckoutSessionResponse{SessionID: order.ID, URL: order.CheckoutURL})
}

func (ctl *PaymentController) HandleStripeVerifySession(c *fiber.Ctx) error {
	var req models.VerifySessionRequest
	decodeErr, validateErr := parseBody(c, &req)
	if decodeErr != nil {
		return jsonError(c, fiber.StatusBadRequest, "Ungültige Anfrage")
	}
	if validateErr != nil {
		return jsonError(c, fiber.StatusBadRequest, "Session ID fehlt")
	}

	record, err := ctl.manager.Verify(c.UserContext(), billing.ProviderStripe, req.SessionID)
	if err != nil {
		var notPaid *billing.NotPaidError
		switch {
		case errors.Is(err, billing.ErrInvalidOrderID):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":    "Ungültige Session ID",
				"verified": false,
			})
		case errors.As(err, &notPaid):
			return c.JSON(models.UnpaidSessionResponse{
				Verified: false,
				Error:    "Zahlung nicht abgeschlossen",
				Status:   notPaid.Status,
			})
		case errors.Is(err, billing.ErrAmountMismatch):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":    "Betrag stimmt nicht überein",
				"verified": false,
			})
		}
		log.WithError(err).WithField("request_id", usercontext.RequestID(c)).Error("stripe verification failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":    "Verifizierung fehlgeschlagen",
			"verified": false,
		})
	}

	return c.JSON(models.VerifySessionResponse{
		Verified:          true,
		Success:           true,
		TransactionID:     record.TransactionID,
		Amount:            record.Amount.StringFixed(2),
		Currency:          record.Currency,
		CustomerEmail:     record.PayerEmail,
		CustomerName:      record.PayerName,
		Metadata:          record.Metadata,
		VerificationToken: record.Token,
	})
}
