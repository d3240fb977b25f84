package service

import (
	"github.com/rs/zerolog/log"

	"github.com/draftdeck/draftdeck-backend/internal/domain"
)

// OnboardingService translates verified "user created" identity events into
// local user rows. Users are only ever created through this path.
type OnboardingService struct {
	userRepo domain.UserRepository
	tierRepo domain.TierRepository
}

// NewOnboardingService creates a new OnboardingService
func NewOnboardingService(userRepo domain.UserRepository, tierRepo domain.TierRepository) *OnboardingService {
	return &OnboardingService{
		userRepo: userRepo,
		tierRepo: tierRepo,
	}
}

// EmailAddress is one entry of the event's email address list
type EmailAddress struct {
	ID           string
	EmailAddress string
}

// OnboardUserInput carries the fields extracted from a "user created" event
type OnboardUserInput struct {
	ID                    string
	FirstName             *string
	LastName              *string
	AvatarURL             *string
	PrimaryEmailAddressID string
	EmailAddresses        []EmailAddress
}

// OnboardUser resolves the primary email by matching the email-id reference
// and inserts the user on the FREE tier. The user ID is the identity
// provider's subject and is stored as-is.
func (s *OnboardingService) OnboardUser(input OnboardUserInput) (*domain.User, error) {
	var primaryEmail string
	for _, addr := range input.EmailAddresses {
		if addr.ID == input.PrimaryEmailAddressID {
			primaryEmail = addr.EmailAddress
			break
		}
	}
	if primaryEmail == "" {
		return nil, domain.NotFound("PRIMARY_EMAIL_NOT_FOUND", "Primary email not found")
	}

	freeTier, err := s.tierRepo.GetByName(domain.TierFree)
	if err != nil {
		log.Error().Err(err).Msg("Failed to look up FREE tier")
		return nil, err
	}

	user, err := s.userRepo.Create(&domain.User{
		ID:        input.ID,
		Email:     primaryEmail,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		AvatarURL: input.AvatarURL,
		TierID:    freeTier.ID,
	})
	if err != nil {
		log.Error().Err(err).Str("user_id", input.ID).Msg("Failed to create user")
		return nil, err
	}

	log.Info().Str("user_id", user.ID).Msg("User onboarded")
	return user, nil
}
