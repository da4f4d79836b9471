package user

import (
	"time"
)

type User struct {
	ID          string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"column:name;type:text;not null;uniqueIndex:idx_users_name" json:"name"`
	Avatar      string    `gorm:"column:avatar;type:text;not null" json:"avatar"`
	TotalPoints int64     `gorm:"column:total_points;type:bigint;not null;default:0" json:"totalPoints"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
}

// set table name
func (User) TableName() string {
	return "users"
}
