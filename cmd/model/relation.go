package model

import "time"

// Follow is the follower->followed edge; at most one row per ordered pair.
type Follow struct {
	FollowId   int64     `gorm:"column:follow_id;primaryKey;autoIncrement" json:"follow_id"`
	FollowerId int64     `gorm:"column:follower_id;not null;uniqueIndex:uk_follower_followed" json:"follower_id"`
	FollowedId int64     `gorm:"column:followed_id;not null;uniqueIndex:uk_follower_followed;index" json:"followed_id"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Follow) TableName() string {
	return "follows"
}
