package types

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pitchlab/matchdb/internal/models"
)

// Period type discriminants
const (
	PeriodFullMatch  = "Full Match"
	PeriodFirstHalf  = "First Half"
	PeriodSecondHalf = "Second Half"
	PeriodExtra      = "Extra"
)

// Action and assist discriminants
const (
	ActionShot    = "shot"
	AssistAssist  = "assist"
	AssistDribble = "dribble"

	ShotOnTarget  = "on-target"
	ShotBlocked   = "blocked"
	ShotOffTarget = "off-target"
)

// AssistAction is the optional pass or dribble leading to a shot.
type AssistAction struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Type string  `json:"type"`
}

// Action is a single timed event inside a period. Currently the only
// recognized kind is a shot.
type Action struct {
	Type     string        `json:"type"`
	X        float64       `json:"x"`
	Y        float64       `json:"y"`
	ShotType string        `json:"shot_type"`
	IsHeader bool          `json:"is_header"`
	Team     string        `json:"team"`
	Assist   *AssistAction `json:"assist,omitempty"`
}

// Period is a labeled segment of a match. Action order is chronological and
// preserved exactly through storage round-trips.
type Period struct {
	Type    string   `json:"type"`
	Actions []Action `json:"actions"`
}

// Match is the caller-facing shape of a match record. It carries no owner
// information; the owner is attached server-side from the authenticated
// identity. MatchID is supplied by the caller and immutable after creation.
type Match struct {
	MatchID   string    `json:"match_id"`
	MatchName string    `json:"match_name"`
	HomeTeam  string    `json:"home_team,omitempty"`
	AwayTeam  string    `json:"away_team,omitempty"`
	Date      time.Time `json:"date"`
	Periods   []Period  `json:"periods"`
}

// Validate checks the record shape, rejecting unknown discriminant values and
// missing required fields before anything reaches the persistence layer.
func (m *Match) Validate() error {
	if m.MatchID == "" {
		return &ValidationError{Field: "match_id", Reason: "required"}
	}
	if m.MatchName == "" {
		return &ValidationError{Field: "match_name", Reason: "required"}
	}
	if m.Date.IsZero() {
		return &ValidationError{Field: "date", Reason: "required"}
	}
	if m.Periods == nil {
		return &ValidationError{Field: "periods", Reason: "required"}
	}

	for i, p := range m.Periods {
		switch p.Type {
		case PeriodFullMatch, PeriodFirstHalf, PeriodSecondHalf, PeriodExtra:
		default:
			return &ValidationError{
				Field:  fmt.Sprintf("periods[%d].type", i),
				Reason: fmt.Sprintf("unknown period type %q", p.Type),
			}
		}

		for j, a := range p.Actions {
			field := fmt.Sprintf("periods[%d].actions[%d]", i, j)
			if a.Type != ActionShot {
				return &ValidationError{
					Field:  field + ".type",
					Reason: fmt.Sprintf("unknown action type %q", a.Type),
				}
			}
			switch a.ShotType {
			case ShotOnTarget, ShotBlocked, ShotOffTarget:
			default:
				return &ValidationError{
					Field:  field + ".shot_type",
					Reason: fmt.Sprintf("unknown shot type %q", a.ShotType),
				}
			}
			if a.Team == "" {
				return &ValidationError{Field: field + ".team", Reason: "required"}
			}
			if a.Assist != nil {
				switch a.Assist.Type {
				case AssistAssist, AssistDribble:
				default:
					return &ValidationError{
						Field:  field + ".assist.type",
						Reason: fmt.Sprintf("unknown assist type %q", a.Assist.Type),
					}
				}
			}
		}
	}

	return nil
}

// ToStored merges a public match with the authenticated owner identity into
// the stored shape. The userID argument must come from the auth layer, never
// from the request body; requiring it here keeps the owner assignment
// structurally server-side.
func ToStored(m *Match, userID string) (*models.Match, error) {
	if userID == "" {
		return nil, &ValidationError{Field: "user_id", Reason: "required"}
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	periods, err := json.Marshal(m.Periods)
	if err != nil {
		return nil, &ValidationError{Field: "periods", Reason: err.Error()}
	}

	stored := &models.Match{
		UserID:    userID,
		MatchID:   m.MatchID,
		MatchName: m.MatchName,
		HomeTeam:  m.HomeTeam,
		AwayTeam:  m.AwayTeam,
		MatchDate: m.Date,
	}
	stored.Periods.JSON = periods

	return stored, nil
}

// ToPublic projects a stored match back to the public shape, dropping the
// owner. Fails only on a corrupt period blob, which indicates a storage
// problem rather than caller error.
func ToPublic(stored *models.Match) (*Match, error) {
	periods := []Period{}
	if len(stored.Periods.JSON) > 0 {
		if err := json.Unmarshal(stored.Periods.JSON, &periods); err != nil {
			return nil, fmt.Errorf("corrupt periods payload for match %q: %w", stored.MatchID, err)
		}
	}

	return &Match{
		MatchID:   stored.MatchID,
		MatchName: stored.MatchName,
		HomeTeam:  stored.HomeTeam,
		AwayTeam:  stored.AwayTeam,
		Date:      stored.MatchDate,
		Periods:   periods,
	}, nil
}
