package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	svix "github.com/svix/svix-webhooks/go"

	"github.com/draftdeck/draftdeck-backend/internal/domain"
	"github.com/draftdeck/draftdeck-backend/internal/service"
)

// WebhookHandler receives identity events from Clerk. The raw body is
// verified against the webhook signing secret before anything is parsed.
type WebhookHandler struct {
	webhook           *svix.Webhook
	onboardingService *service.OnboardingService
	responder         *Responder
}

// NewWebhookHandler creates a new WebhookHandler
func NewWebhookHandler(webhookSecret string, onboardingService *service.OnboardingService, responder *Responder) (*WebhookHandler, error) {
	wh, err := svix.NewWebhook(webhookSecret)
	if err != nil {
		return nil, err
	}
	return &WebhookHandler{
		webhook:           wh,
		onboardingService: onboardingService,
		responder:         responder,
	}, nil
}

// clerkEvent is the envelope Clerk posts; data is parsed per event type
type clerkEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// clerkUserData is the payload of a user.created event
type clerkUserData struct {
	ID                    string  `json:"id"`
	FirstName             *string `json:"first_name"`
	LastName              *string `json:"last_name"`
	ImageURL              *string `json:"image_url"`
	PrimaryEmailAddressID string  `json:"primary_email_address_id"`
	EmailAddresses        []struct {
		ID           string `json:"id"`
		EmailAddress string `json:"email_address"`
	} `json:"email_addresses"`
}

// HandleClerkWebhook handles POST /webhooks/clerk
func (h *WebhookHandler) HandleClerkWebhook(c echo.Context) error {
	headers := c.Request().Header
	if headers.Get("svix-id") == "" || headers.Get("svix-timestamp") == "" || headers.Get("svix-signature") == "" {
		return domain.NotFound("SVIX_HEADERS_MISSING", "Invalid request svix headers")
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return domain.BadRequest("INVALID_BODY", "Could not read request body")
	}

	if err := h.webhook.Verify(body, headers); err != nil {
		log.Error().Err(err).Msg("Webhook verification failed")
		return domain.Internal("WEBHOOK_VERIFICATION_FAILED", "Webhook verification failed", err)
	}

	var event clerkEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return domain.BadRequest("INVALID_BODY", "Could not parse event payload")
	}

	if event.Type != "user.created" {
		// Update/delete events are not ingested
		return h.responder.OK(c, http.StatusOK, "Event ignored", nil)
	}

	var data clerkUserData
	if err := json.Unmarshal(event.Data, &data); err != nil {
		return domain.BadRequest("INVALID_BODY", "Could not parse event payload")
	}

	input := service.OnboardUserInput{
		ID:                    data.ID,
		FirstName:             data.FirstName,
		LastName:              data.LastName,
		AvatarURL:             data.ImageURL,
		PrimaryEmailAddressID: data.PrimaryEmailAddressID,
	}
	for _, addr := range data.EmailAddresses {
		input.EmailAddresses = append(input.EmailAddresses, service.EmailAddress{
			ID:           addr.ID,
			EmailAddress: addr.EmailAddress,
		})
	}

	user, err := h.onboardingService.OnboardUser(input)
	if err != nil {
		return err
	}

	return h.responder.OK(c, http.StatusOK, "User onboarded successfully", user)
}
