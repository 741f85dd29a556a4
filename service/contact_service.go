package service

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"sanchez-brick/models"
)

// ContactService acknowledges contact and quote requests. Nothing is transmitted.
type ContactService struct{}

// NewContactService creates a new ContactService
func NewContactService() *ContactService {
	return &ContactService{}
}

// Submit returns the static acknowledgment with a reference id for the request
func (s *ContactService) Submit(req models.ContactRequest) models.ContactResponse {
	reference := uuid.NewString()
	log.Info().
		Str("reference", reference).
		Str("product", strings.TrimSpace(req.Product)).
		Bool("has_email", strings.TrimSpace(req.Email) != "").
		Msg("📨 Contact request acknowledged")

	return models.ContactResponse{
		Reference: reference,
		Message:   models.ContactAck,
	}
}
