package badges

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Rakshit-11/CareerFinder/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func ensureUser(t *testing.T, s *store.Store, userID string) {
	t.Helper()
	if err := s.ProfileRepo().EnsureUser(context.Background(), userID, "Tester"); err != nil {
		t.Fatalf("ensure user: %v", err)
	}
}

func TestAwardIfNew(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	ensureUser(t, s, "user-1")
	issuer := NewIssuer(s.ProfileRepo(), s.EventRepo())

	award, err := issuer.AwardIfNew(ctx, "user-1", "se-debugging-1")
	if err != nil {
		t.Fatalf("award: %v", err)
	}
	if award == nil {
		t.Fatal("expected an award on first completion")
	}
	if award.Badge != "Debugging Specialist" {
		t.Errorf("badge = %q", award.Badge)
	}
	if len(issuer.SessionAwards) != 1 {
		t.Errorf("session awards = %d", len(issuer.SessionAwards))
	}

	profile, err := s.ProfileRepo().Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if !profile.HasBadge("Debugging Specialist") {
		t.Error("badge not persisted")
	}
}

func TestAwardIfNewIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	ensureUser(t, s, "user-1")
	issuer := NewIssuer(s.ProfileRepo(), s.EventRepo())

	if _, err := issuer.AwardIfNew(ctx, "user-1", "se-debugging-1"); err != nil {
		t.Fatalf("first award: %v", err)
	}

	again, err := issuer.AwardIfNew(ctx, "user-1", "se-debugging-1")
	if err != nil {
		t.Fatalf("second award: %v", err)
	}
	if again != nil {
		t.Error("repeat completion must not re-award the badge")
	}
	if len(issuer.SessionAwards) != 1 {
		t.Errorf("session awards = %d", len(issuer.SessionAwards))
	}
}

func TestAwardIfNewWithoutBadgeIsNoOp(t *testing.T) {
	s := openTestStore(t)
	ensureUser(t, s, "user-1")
	issuer := NewIssuer(s.ProfileRepo(), s.EventRepo())

	award, err := issuer.AwardIfNew(context.Background(), "user-1", "nope-1")
	if err != nil {
		t.Fatalf("award: %v", err)
	}
	if award != nil {
		t.Errorf("simulation without a badge awarded %+v", award)
	}
	if len(issuer.SessionAwards) != 0 {
		t.Errorf("session awards = %d", len(issuer.SessionAwards))
	}
}

func TestResetSession(t *testing.T) {
	s := openTestStore(t)
	ensureUser(t, s, "user-1")
	issuer := NewIssuer(s.ProfileRepo(), s.EventRepo())

	if _, err := issuer.AwardIfNew(context.Background(), "user-1", "cyber-password-1"); err != nil {
		t.Fatalf("award: %v", err)
	}
	issuer.ResetSession()
	if issuer.SessionAwards != nil {
		t.Error("expected cleared session awards")
	}
}
