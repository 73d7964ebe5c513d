package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/ManuelReschke/BTMReise/app/models"
	"github.com/ManuelReschke/BTMReise/internal/pkg/apperr"
	"github.com/ManuelReschke/BTMReise/internal/pkg/billing"
	"github.com/ManuelReschke/BTMReise/internal/pkg/logging"
	"github.com/ManuelReschke/BTMReise/internal/pkg/notification"
	"github.com/ManuelReschke/BTMReise/internal/pkg/usercontext"
)

// DocumentDispatcher sends the generated documents to the patient and the
// internal recipients.
type DocumentDispatcher interface {
	Dispatch(ctx context.Context, del notification.Delivery) (*notification.Result, error)
}

var errAdminRequired = apperr.Authentication("Nicht autorisiert")

type DocumentController struct {
	dispatcher DocumentDispatcher
}

func NewDocumentController(dispatcher DocumentDispatcher) *DocumentController {
	return &DocumentController{dispatcher: dispatcher}
}

func (ctl *DocumentController) HandleSendDocuments(c *fiber.Ctx) error {
	var req models.SendDocumentsRequest
	decodeErr, validateErr := parseBody(c, &req)
	if decodeErr != nil {
		return jsonError(c, fiber.StatusBadRequest, "Ungültige Anfrage")
	}
	if validateErr != nil {
		return jsonError(c, fiber.StatusBadRequest, "Fehlende Daten: Email und PDFs sind erforderlich")
	}

	email := billing.SanitizeEmail(req.PatientEmail)
	if !billing.ValidEmail(email) {
		return jsonError(c, fiber.StatusBadRequest, "Ungültige Email-Adresse")
	}

	if req.IsAdminMode && !usercontext.IsAdmin(c) {
		return writeError(c, errAdminRequired, "")
	}

	reference := req.StripeSessionID
	if reference == "" {
		reference = req.PayPalOrderID
	}

	del := notification.Delivery{
		PatientEmail:      email,
		PatientName:       billing.SanitizeText(req.PatientName),
		DoctorName:        billing.SanitizeText(req.DoctorName),
		BTMPDFBase64:      req.BTMPDFBase64,
		AttestPDFBase64:   req.AttestPDFBase64,
		TravelStart:       billing.SanitizeText(req.TravelStartDate),
		TravelEnd:         billing.SanitizeText(req.TravelEndDate),
		Destination:       billing.SanitizeText(req.Destination),
		PaymentAmount:     billing.SanitizeText(string(req.PaymentAmount)),
		PaymentMethod:     billing.SanitizeText(req.PaymentMethod),
		ProviderReference: billing.SanitizeText(reference),
		FeeExempt:         req.IsAdminMode,
	}

	result, err := ctl.dispatcher.Dispatch(c.UserContext(), del)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"request_id": usercontext.RequestID(c),
			"recipient":  logging.MaskEmail(email),
		}).Error("documents could not be sent")
		return writeError(c, err, "Fehler beim Email-Versand")
	}

	return c.JSON(models.SendDocumentsResponse{
		Success:   true,
		MessageID: result.MessageID,
		Message:   "Dokumente wurden an " + email + " gesendet",
	})
}
