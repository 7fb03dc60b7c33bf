package services

import (
	"errors"

	"github.com/pitchlab/matchdb/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sentinel errors surfaced to handlers. Anything else coming out of this
// package is a store failure.
var (
	// ErrMatchNotFound means no row matched the (userID, matchID) pair.
	ErrMatchNotFound = errors.New("match not found")
	// ErrMatchExists means the owner already has a match under that identifier.
	ErrMatchExists = errors.New("match already exists")
)

// OperationHook observes persistence operations (who accessed what). It is
// invoked after each successful call; the zero value disables observation so
// the operations stay testable without a logging dependency.
type OperationHook func(op, userID, matchID string)

var opHook OperationHook

// SetOperationHook installs the operation observer. Call before serving
// traffic; not safe to swap concurrently with operations.
func SetOperationHook(h OperationHook) {
	opHook = h
}

func observe(op, userID, matchID string) {
	if opHook != nil {
		opHook(op, userID, matchID)
	}
}

// lockForUpdate adds a row lock where the dialect supports one. SQLite has no
// SELECT ... FOR UPDATE; its write transaction already serializes.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// GetMatch retrieves a single match by its per-owner identifier. The lookup
// filters jointly on owner and identifier; a row under the same identifier
// but a different owner is invisible.
func GetMatch(db *gorm.DB, userID, matchID string) (*models.Match, error) {
	var match models.Match
	err := db.Where("user_id = ? AND match_id = ?", userID, matchID).
		First(&match).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	observe("get", userID, matchID)
	return &match, nil
}

// ListMatches retrieves all matches for an owner in insertion order. An owner
// with no matches gets an empty slice, not an error.
func ListMatches(db *gorm.DB, userID string) ([]models.Match, error) {
	matches := []models.Match{}
	err := db.Where("user_id = ?", userID).
		Order("id").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}

	observe("list", userID, "")
	return matches, nil
}

// CreateMatch inserts a fully-formed stored match (owner already injected by
// the shape layer). A duplicate (userID, matchID) pair surfaces as
// ErrMatchExists. Returns the persisted row refreshed from the store.
func CreateMatch(db *gorm.DB, match *models.Match) (*models.Match, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(match).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrMatchExists
		}
		return nil, err
	}

	// Refresh to reflect store-assigned defaults (timestamps, surrogate id).
	var created models.Match
	if err := db.First(&created, match.ID).Error; err != nil {
		return nil, err
	}

	observe("create", match.UserID, match.MatchID)
	return &created, nil
}

// UpdateMatch replaces the mutable fields of an existing match in one
// read-modify-write transaction. The update is strict: a missing row fails
// with ErrMatchNotFound and writes nothing — create is the only insertion
// path. Owner and identifier never change.
func UpdateMatch(db *gorm.DB, userID, matchID string, replacement *models.Match) (*models.Match, error) {
	var updated models.Match

	err := db.Transaction(func(tx *gorm.DB) error {
		var existing models.Match
		if err := lockForUpdate(tx).
			Where("user_id = ? AND match_id = ?", userID, matchID).
			First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMatchNotFound
			}
			return err
		}

		// Full replacement, zero values included. Select forces empty team
		// labels and empty period lists through instead of being skipped.
		if err := tx.Model(&existing).
			Select("match_name", "home_team", "away_team", "match_date", "periods").
			Updates(map[string]interface{}{
				"match_name": replacement.MatchName,
				"home_team":  replacement.HomeTeam,
				"away_team":  replacement.AwayTeam,
				"match_date": replacement.MatchDate,
				"periods":    replacement.Periods,
			}).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ? AND match_id = ?", userID, matchID).
			First(&updated).Error
	})
	if err != nil {
		return nil, err
	}

	observe("update", userID, matchID)
	return &updated, nil
}

// DeleteMatch removes a match permanently. The existence check and the delete
// run in one transaction so a miss leaves no partial write.
func DeleteMatch(db *gorm.DB, userID, matchID string) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		var existing models.Match
		if err := lockForUpdate(tx).
			Where("user_id = ? AND match_id = ?", userID, matchID).
			First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMatchNotFound
			}
			return err
		}

		return tx.Delete(&existing).Error
	})
	if err != nil {
		return err
	}

	observe("delete", userID, matchID)
	return nil
}
