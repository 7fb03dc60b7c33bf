package models

import (
	"time"
)

// Match is the stored representation of a match record. The owner (UserID)
// is injected server-side from the authenticated identity; it never comes
// from a request body. Match identifiers are unique per owner, so two users
// may both hold a match named "derby-2024".
type Match struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    string    `gorm:"type:char(36);not null;index:idx_user_match,unique"`
	MatchID   string    `gorm:"size:255;not null;index:idx_user_match,unique"`
	MatchName string    `gorm:"size:255;not null"`
	HomeTeam  string    `gorm:"size:255"`
	AwayTeam  string    `gorm:"size:255"`
	MatchDate time.Time `gorm:"not null"`
	Periods   JSON      `gorm:"type:json"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the table name for Match
func (Match) TableName() string {
	return "matches"
}
