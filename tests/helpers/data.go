package helpers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/pitchlab/matchdb/internal/models"
	"github.com/pitchlab/matchdb/internal/types"
	"gorm.io/gorm"
)

// NewTestMatch builds a valid public match payload with one period and one
// shot, the smallest shape that exercises the whole nested structure.
func NewTestMatch(matchID, name string) *types.Match {
	return &types.Match{
		MatchID:   matchID,
		MatchName: name,
		HomeTeam:  "Home FC",
		AwayTeam:  "Away FC",
		Date:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Periods: []types.Period{
			{
				Type: types.PeriodFullMatch,
				Actions: []types.Action{
					{
						Type:     types.ActionShot,
						X:        34.5,
						Y:        12.0,
						ShotType: types.ShotOnTarget,
						IsHeader: false,
						Team:     "home",
						Assist: &types.AssistAction{
							X:    20.0,
							Y:    30.0,
							Type: types.AssistAssist,
						},
					},
				},
			},
		},
	}
}

// CreateTestMatch seeds a stored match for an owner directly through GORM
func CreateTestMatch(t *testing.T, db *gorm.DB, userID string, match *types.Match) *models.Match {
	t.Helper()

	stored, err := types.ToStored(match, userID)
	if err != nil {
		t.Fatalf("Failed to build stored match: %v", err)
	}
	if err := db.Create(stored).Error; err != nil {
		t.Fatalf("Failed to create match: %v", err)
	}

	return stored
}

// MarshalBody encodes a request payload
func MarshalBody(t *testing.T, v interface{}) []byte {
	t.Helper()

	body, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal body: %v", err)
	}

	return body
}
