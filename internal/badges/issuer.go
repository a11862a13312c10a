// Package badges awards simulation completion badges.
package badges

import (
	"context"
	"fmt"
	"time"

	"github.com/Rakshit-11/CareerFinder/internal/catalog"
	"github.com/Rakshit-11/CareerFinder/internal/store"
)

// Award is one badge granted to a user.
type Award struct {
	Badge        string
	SimulationID string
	Reason       string
	AwardedAt    time.Time
}

// Issuer awards badges and tracks the ones granted during the current run.
type Issuer struct {
	profileRepo store.ProfileRepo
	eventRepo   store.EventRepo

	// SessionAwards accumulates badges newly awarded during the current run.
	SessionAwards []Award
}

// NewIssuer creates a badge issuer backed by the profile store.
func NewIssuer(profileRepo store.ProfileRepo, eventRepo store.EventRepo) *Issuer {
	return &Issuer{
		profileRepo: profileRepo,
		eventRepo:   eventRepo,
	}
}

// AwardIfNew grants the badge for a completed simulation unless the user
// already holds it. Returns the award when the badge is new, nil otherwise.
func (s *Issuer) AwardIfNew(ctx context.Context, userID, simulationID string) (*Award, error) {
	badge := catalog.BadgeFor(simulationID)
	if badge == "" {
		// Simulations without a badge finish without one.
		return nil, nil
	}

	granted, err := s.profileRepo.AwardBadge(ctx, userID, badge, simulationID)
	if err != nil {
		return nil, fmt.Errorf("award badge: %w", err)
	}
	if !granted {
		return nil, nil
	}

	sim := catalog.ByID(simulationID)
	reason := fmt.Sprintf("Completed %s", simulationID)
	if sim != nil {
		reason = fmt.Sprintf("Completed %s", sim.Title)
	}

	award := &Award{
		Badge:        badge,
		SimulationID: simulationID,
		Reason:       reason,
		AwardedAt:    time.Now(),
	}
	s.persist(ctx, userID, award)
	s.SessionAwards = append(s.SessionAwards, *award)
	return award, nil
}

// ResetSession clears the session award accumulator. Called when a new
// simulation run starts.
func (s *Issuer) ResetSession() {
	s.SessionAwards = nil
}

func (s *Issuer) persist(ctx context.Context, userID string, award *Award) {
	if s.eventRepo == nil {
		return
	}
	_ = s.eventRepo.AppendBadge(ctx, store.BadgeEventData{
		UserID:       userID,
		SimulationID: award.SimulationID,
		Badge:        award.Badge,
	})
}
