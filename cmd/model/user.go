package model

import "time"

type User struct {
	UserId         int64     `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	UserName       string    `gorm:"column:user_name;size:255;uniqueIndex" json:"user_name"`
	Email          string    `gorm:"column:email;size:255;uniqueIndex" json:"email"`
	Password       string    `gorm:"column:password;size:255" json:"-"`
	Bio            string    `gorm:"column:bio;size:500" json:"bio"`
	ProfileImage   string    `gorm:"column:profile_image;size:512" json:"profile_image"`
	FollowersCount int64     `gorm:"column:followers_count;default:0" json:"followers_count"`
	FollowingCount int64     `gorm:"column:following_count;default:0" json:"following_count"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
