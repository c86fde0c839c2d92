package model

import "time"

// VideoLike holds at most one row per (video, user) pair.
type VideoLike struct {
	VideoLikeId int64     `gorm:"column:video_like_id;primaryKey;autoIncrement" json:"video_like_id"`
	VideoId     int64     `gorm:"column:video_id;not null;uniqueIndex:uk_video_user" json:"video_id"`
	UserId      int64     `gorm:"column:user_id;not null;uniqueIndex:uk_video_user" json:"user_id"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (VideoLike) TableName() string {
	return "video_likes"
}

// Comment nests exactly one level: a reply's parent is always top-level.
// ParentId 0 marks a top-level comment.
type Comment struct {
	CommentId   int64     `gorm:"column:comment_id;primaryKey;autoIncrement" json:"comment_id"`
	VideoId     int64     `gorm:"column:video_id;not null;index" json:"video_id"`
	UserId      int64     `gorm:"column:user_id;not null" json:"user_id"`
	ParentId    int64     `gorm:"column:parent_id;default:0;index" json:"parent_id"`
	CommentText string    `gorm:"column:comment_text;size:500;not null" json:"comment_text"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Replies []*Comment `gorm:"-" json:"replies,omitempty"`
}

func (Comment) TableName() string {
	return "comments"
}
