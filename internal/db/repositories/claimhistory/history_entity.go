package claimhistory

import (
	"time"
)

type ClaimHistory struct {
	ID            string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID        string    `gorm:"column:user_id;type:uuid;not null;index" json:"userId"`
	PointsClaimed int       `gorm:"column:points_claimed;type:int;not null" json:"pointsClaimed"`
	ClaimedAt     time.Time `gorm:"column:claimed_at" json:"claimedAt"`
}

// set table name
func (ClaimHistory) TableName() string {
	return "claim_history"
}

// HistoryEntry is a claim joined with the owning user's display name.
type HistoryEntry struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	UserName      string    `json:"userName"`
	PointsClaimed int       `json:"pointsClaimed"`
	ClaimedAt     time.Time `json:"claimedAt"`
}
