package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/ManuelReschke/BTMReise/app/models"
	"github.com/ManuelReschke/BTMReise/internal/pkg/apperr"
	"github.com/ManuelReschke/BTMReise/internal/pkg/session"
	"github.com/ManuelReschke/BTMReise/internal/pkg/usercontext"
)

// AdminSessionController serves login, verify and logout for the admin
// token used by the document tool.
type AdminSessionController struct {
	sessions     *session.Manager
	password     *session.PasswordChecker
	failureDelay time.Duration
	sleep        func(ctx context.Context, d time.Duration)
}

var errInvalidAction = apperr.Validation("Ungültige Aktion")

func NewAdminSessionController(sessions *session.Manager, password *session.PasswordChecker, failureDelay time.Duration) *AdminSessionController {
	if !password.Configured() {
		log.Warn("ADMIN_PASSWORD is not set, admin login is disabled")
	}
	return &AdminSessionController{
		sessions:     sessions,
		password:     password,
		failureDelay: failureDelay,
		sleep:        sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

func adminError(c *fiber.Ctx, err *apperr.Error) error {
	return c.Status(apperr.HTTPStatus(err)).JSON(models.AdminSessionResponse{Success: false, Error: err.Message})
}

func (ctl *AdminSessionController) HandleAdminSession(c *fiber.Ctx) error {
	var req models.AdminSessionRequest
	if decodeErr, validateErr := parseBody(c, &req); decodeErr != nil || validateErr != nil {
		return adminError(c, errInvalidAction)
	}

	action, err := session.ParseAction(req.Action)
	if err != nil {
		return adminError(c, errInvalidAction)
	}

	switch action {
	case session.ActionLogin:
		return ctl.login(c, req.Password)
	case session.ActionVerify:
		return ctl.verify(c, req.Token)
	case session.ActionLogout:
		return ctl.logout(c, req.Token)
	}
	return adminError(c, errInvalidAction)
}

func (ctl *AdminSessionController) login(c *fiber.Ctx, password string) error {
	if password == "" {
		return adminError(c, apperr.Validation("Passwort erforderlich"))
	}
	if !ctl.password.Configured() {
		log.Error("admin login attempted but no admin password is configured")
		return adminError(c, apperr.Internal("Server-Fehler", nil))
	}

	if !ctl.password.Check(password) {
		log.WithField("ip", usercontext.ClientIP(c)).Warn("admin login failed")
		ctl.sleep(c.UserContext(), ctl.failureDelay)
		return adminError(c, apperr.Authentication("Falsches Passwort"))
	}

	tok, err := ctl.sessions.Issue(c.UserContext())
	if err != nil {
		log.WithError(err).Error("admin token could not be issued")
		return adminError(c, apperr.Internal("Server-Fehler", err))
	}

	log.WithField("ip", usercontext.ClientIP(c)).Info("admin login")
	return c.JSON(models.AdminSessionResponse{
		Success: true,
		Token:   tok.Value,
		Message: "Login erfolgreich",
	})
}

func (ctl *AdminSessionController) verify(c *fiber.Ctx, token string) error {
	valid := false
	if token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.AdminSessionResponse{Success: false, Valid: &valid})
	}

	valid, err := ctl.sessions.Verify(c.UserContext(), token)
	if err != nil {
		log.WithError(err).Error("admin token verification failed")
		return adminError(c, apperr.Internal("Server-Fehler", err))
	}
	return c.JSON(models.AdminSessionResponse{Success: true, Valid: &valid})
}

func (ctl *AdminSessionController) logout(c *fiber.Ctx, token string) error {
	if err := ctl.sessions.Revoke(c.UserContext(), token); err != nil {
		log.WithError(err).Error("admin token revoke failed")
		return adminError(c, apperr.Internal("Server-Fehler", err))
	}
	return c.JSON(models.AdminSessionResponse{Success: true, Message: "Logout erfolgreich"})
}
