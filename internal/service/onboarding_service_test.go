package service

import (
	"testing"

	"github.com/google/uuid"

	"github.com/draftdeck/draftdeck-backend/internal/domain"
	"github.com/draftdeck/draftdeck-backend/internal/testutil"
)

func newOnboardingFixture() (*OnboardingService, *testutil.MockUserRepository, *testutil.MockTierRepository) {
	userRepo := testutil.NewMockUserRepository()
	tierRepo := testutil.NewMockTierRepository()
	tierRepo.AddTier(&domain.Tier{ID: uuid.New(), Name: domain.TierFree})
	return NewOnboardingService(userRepo, tierRepo), userRepo, tierRepo
}

func TestOnboardUser_Success(t *testing.T) {
	svc, userRepo, tierRepo := newOnboardingFixture()
	first := "Ada"
	last := "Lovelace"

	user, err := svc.OnboardUser(OnboardUserInput{
		ID:                    "user_abc",
		FirstName:             &first,
		LastName:              &last,
		PrimaryEmailAddressID: "email_2",
		EmailAddresses: []EmailAddress{
			{ID: "email_1", EmailAddress: "old@example.com"},
			{ID: "email_2", EmailAddress: "ada@example.com"},
		},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.Email != "ada@example.com" {
		t.Errorf("Expected primary email 'ada@example.com', got %q", user.Email)
	}
	if user.TierID != tierRepo.ByName[domain.TierFree].ID {
		t.Errorf("Expected FREE tier id, got %s", user.TierID)
	}
	if _, err := userRepo.GetByID("user_abc"); err != nil {
		t.Errorf("Expected user to be persisted, got %v", err)
	}
}

func TestOnboardUser_PrimaryEmailMissing(t *testing.T) {
	svc, _, _ := newOnboardingFixture()

	_, err := svc.OnboardUser(OnboardUserInput{
		ID:                    "user_abc",
		PrimaryEmailAddressID: "email_missing",
		EmailAddresses: []EmailAddress{
			{ID: "email_1", EmailAddress: "only@example.com"},
		},
	})
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if domain.CodeOf(err) != "PRIMARY_EMAIL_NOT_FOUND" {
		t.Errorf("Expected code PRIMARY_EMAIL_NOT_FOUND, got %q", domain.CodeOf(err))
	}
}

func TestOnboardUser_DuplicateEmail(t *testing.T) {
	svc, userRepo, tierRepo := newOnboardingFixture()
	userRepo.AddUser(&domain.User{ID: "user_prior", Email: "ada@example.com", TierID: tierRepo.ByName[domain.TierFree].ID})

	_, err := svc.OnboardUser(OnboardUserInput{
		ID:                    "user_abc",
		PrimaryEmailAddressID: "email_1",
		EmailAddresses: []EmailAddress{
			{ID: "email_1", EmailAddress: "ada@example.com"},
		},
	})
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if domain.CodeOf(err) != domain.CodeEmailTaken {
		t.Errorf("Expected code %s, got %q", domain.CodeEmailTaken, domain.CodeOf(err))
	}
}
