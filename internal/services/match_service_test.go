package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/pitchlab/matchdb/internal/models"
	"github.com/pitchlab/matchdb/internal/services"
	"github.com/pitchlab/matchdb/internal/types"
	"github.com/pitchlab/matchdb/tests/helpers"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Match{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	stored, err := types.ToStored(helpers.NewTestMatch("m1", "Derby"), "u1")
	if err != nil {
		t.Fatalf("ToStored failed: %v", err)
	}

	created, err := services.CreateMatch(db, stored)
	if err != nil {
		t.Fatalf("CreateMatch failed: %v", err)
	}
	if created.UserID != "u1" || created.MatchID != "m1" {
		t.Errorf("Created row lost identity: %+v", created)
	}
	if created.CreatedAt.IsZero() {
		t.Error("Expected refreshed row to carry store timestamps")
	}

	got, err := services.GetMatch(db, "u1", "m1")
	if err != nil {
		t.Fatalf("GetMatch failed: %v", err)
	}
	if got.MatchName != "Derby" || got.HomeTeam != "Home FC" || got.AwayTeam != "Away FC" {
		t.Errorf("Round-trip lost fields: %+v", got)
	}
	if string(got.Periods.JSON) != string(stored.Periods.JSON) {
		t.Errorf("Periods payload changed through storage:\nin:  %s\nout: %s",
			stored.Periods.JSON, got.Periods.JSON)
	}
}

func TestOwnerIsolation(t *testing.T) {
	db := setupTestDB(t)

	helpers.CreateTestMatch(t, db, "userA", helpers.NewTestMatch("m1", "A's match"))

	// Same identifier, different owner: invisible to get, update, delete
	if _, err := services.GetMatch(db, "userB", "m1"); !errors.Is(err, services.ErrMatchNotFound) {
		t.Errorf("Expected ErrMatchNotFound for foreign owner get, got %v", err)
	}

	replacement, _ := types.ToStored(helpers.NewTestMatch("m1", "B's takeover"), "userB")
	if _, err := services.UpdateMatch(db, "userB", "m1", replacement); !errors.Is(err, services.ErrMatchNotFound) {
		t.Errorf("Expected ErrMatchNotFound for foreign owner update, got %v", err)
	}

	if err := services.DeleteMatch(db, "userB", "m1"); !errors.Is(err, services.ErrMatchNotFound) {
		t.Errorf("Expected ErrMatchNotFound for foreign owner delete, got %v", err)
	}

	// The owner's record is untouched by the failed foreign operations
	got, err := services.GetMatch(db, "userA", "m1")
	if err != nil {
		t.Fatalf("Owner lost access to own record: %v", err)
	}
	if got.MatchName != "A's match" {
		t.Errorf("Record mutated by foreign operations: %+v", got)
	}
}

func TestPerOwnerIdentifierNamespace(t *testing.T) {
	db := setupTestDB(t)

	helpers.CreateTestMatch(t, db, "userA", helpers.NewTestMatch("m1", "A's m1"))

	// A second owner can reuse the identifier
	storedB, _ := types.ToStored(helpers.NewTestMatch("m1", "B's m1"), "userB")
	if _, err := services.CreateMatch(db, storedB); err != nil {
		t.Fatalf("Expected per-owner namespace to allow reuse, got %v", err)
	}

	gotA, _ := services.GetMatch(db, "userA", "m1")
	gotB, _ := services.GetMatch(db, "userB", "m1")
	if gotA.MatchName != "A's m1" || gotB.MatchName != "B's m1" {
		t.Errorf("Owners' records crossed: A=%+v B=%+v", gotA, gotB)
	}
}

func TestCreateDuplicateConflicts(t *testing.T) {
	db := setupTestDB(t)

	helpers.CreateTestMatch(t, db, "u1", helpers.NewTestMatch("m1", "First"))

	dup, _ := types.ToStored(helpers.NewTestMatch("m1", "Second"), "u1")
	if _, err := services.CreateMatch(db, dup); !errors.Is(err, services.ErrMatchExists) {
		t.Errorf("Expected ErrMatchExists, got %v", err)
	}

	// The original row is intact
	got, err := services.GetMatch(db, "u1", "m1")
	if err != nil {
		t.Fatalf("GetMatch failed: %v", err)
	}
	if got.MatchName != "First" {
		t.Errorf("Duplicate create mutated the row: %+v", got)
	}
}

func TestListScopedToOwner(t *testing.T) {
	db := setupTestDB(t)

	helpers.CreateTestMatch(t, db, "u1", helpers.NewTestMatch("m1", "One"))
	helpers.CreateTestMatch(t, db, "u1", helpers.NewTestMatch("m2", "Two"))
	helpers.CreateTestMatch(t, db, "u2", helpers.NewTestMatch("m3", "Other"))

	matches, err := services.ListMatches(db, "u1")
	if err != nil {
		t.Fatalf("ListMatches failed: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(matches))
	}
	// Insertion order
	if matches[0].MatchID != "m1" || matches[1].MatchID != "m2" {
		t.Errorf("List out of order: %s, %s", matches[0].MatchID, matches[1].MatchID)
	}
}

func TestListEmptyForUnknownOwner(t *testing.T) {
	db := setupTestDB(t)

	matches, err := services.ListMatches(db, "nobody")
	if err != nil {
		t.Fatalf("Expected empty list success, got %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("Expected empty list, got %d matches", len(matches))
	}
}

func TestUpdateReplacesNotMerges(t *testing.T) {
	db := setupTestDB(t)

	helpers.CreateTestMatch(t, db, "u1", helpers.NewTestMatch("m1", "A"))

	replacementPublic := &types.Match{
		MatchID:   "m1",
		MatchName: "B",
		Date:      time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC),
		Periods:   []types.Period{},
	}
	replacement, err := types.ToStored(replacementPublic, "u1")
	if err != nil {
		t.Fatalf("ToStored failed: %v", err)
	}

	updated, err := services.UpdateMatch(db, "u1", "m1", replacement)
	if err != nil {
		t.Fatalf("UpdateMatch failed: %v", err)
	}

	if updated.MatchName != "B" {
		t.Errorf("Expected name B, got %q", updated.MatchName)
	}
	// Team labels were cleared, not preserved from the old record
	if updated.HomeTeam != "" || updated.AwayTeam != "" {
		t.Errorf("Update merged instead of replaced: home=%q away=%q", updated.HomeTeam, updated.AwayTeam)
	}
	if string(updated.Periods.JSON) != "[]" {
		t.Errorf("Expected periods to become [], got %s", updated.Periods.JSON)
	}
	// Identity is immutable
	if updated.UserID != "u1" || updated.MatchID != "m1" {
		t.Errorf("Update changed identity: %+v", updated)
	}
}

func TestUpdateMissingFailsWithoutWrite(t *testing.T) {
	db := setupTestDB(t)

	helpers.CreateTestMatch(t, db, "u1", helpers.NewTestMatch("existing", "Existing"))

	replacement, _ := types.ToStored(helpers.NewTestMatch("nonexistent", "Ghost"), "u1")
	if _, err := services.UpdateMatch(db, "u1", "nonexistent", replacement); !errors.Is(err, services.ErrMatchNotFound) {
		t.Errorf("Expected ErrMatchNotFound, got %v", err)
	}

	// Strict update never creates
	matches, err := services.ListMatches(db, "u1")
	if err != nil {
		t.Fatalf("ListMatches failed: %v", err)
	}
	if len(matches) != 1 {
		t.Errorf("Update on missing row created a record: %d matches", len(matches))
	}
}

func TestDeleteIsTerminal(t *testing.T) {
	db := setupTestDB(t)

	helpers.CreateTestMatch(t, db, "u1", helpers.NewTestMatch("m1", "Doomed"))

	if err := services.DeleteMatch(db, "u1", "m1"); err != nil {
		t.Fatalf("DeleteMatch failed: %v", err)
	}

	if _, err := services.GetMatch(db, "u1", "m1"); !errors.Is(err, services.ErrMatchNotFound) {
		t.Errorf("Expected ErrMatchNotFound after delete, got %v", err)
	}

	matches, _ := services.ListMatches(db, "u1")
	for _, m := range matches {
		if m.MatchID == "m1" {
			t.Error("Deleted match still listed")
		}
	}

	if err := services.DeleteMatch(db, "u1", "m1"); !errors.Is(err, services.ErrMatchNotFound) {
		t.Errorf("Expected second delete to fail, got %v", err)
	}
}

func TestOperationHookObservesAccess(t *testing.T) {
	db := setupTestDB(t)

	type access struct {
		op, userID, matchID string
	}
	var seen []access
	services.SetOperationHook(func(op, userID, matchID string) {
		seen = append(seen, access{op, userID, matchID})
	})
	defer services.SetOperationHook(nil)

	stored, _ := types.ToStored(helpers.NewTestMatch("m1", "Observed"), "u1")
	if _, err := services.CreateMatch(db, stored); err != nil {
		t.Fatalf("CreateMatch failed: %v", err)
	}
	if _, err := services.GetMatch(db, "u1", "m1"); err != nil {
		t.Fatalf("GetMatch failed: %v", err)
	}

	// A failed operation is not observed
	_ = services.DeleteMatch(db, "u2", "m1")

	want := []access{
		{"create", "u1", "m1"},
		{"get", "u1", "m1"},
	}
	if len(seen) != len(want) {
		t.Fatalf("Expected %d observations, got %d: %+v", len(want), len(seen), seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("Observation %d: expected %+v, got %+v", i, want[i], seen[i])
		}
	}
}
