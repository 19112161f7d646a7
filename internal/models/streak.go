package models

// Streak tracks consecutive days a user stayed at or under the safe daily
// spend. One row per user; LastEvaluated gates advancement to once per
// calendar day. Last writer wins, there is no cross-device merge.
type Streak struct {
	Base
	UserID        string `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Current       int    `gorm:"not null;default:0" json:"current"`
	Best          int    `gorm:"not null;default:0" json:"best"`
	LastEvaluated Date   `json:"last_evaluated"`
}
