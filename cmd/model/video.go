package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type Video struct {
	VideoId       int64      `gorm:"column:video_id;primaryKey;autoIncrement" json:"video_id"`
	UserId        int64      `gorm:"column:user_id;not null;index" json:"user_id"`
	CategoryId    int64      `gorm:"column:category_id;not null;index" json:"category_id"`
	Title         string     `gorm:"column:title;size:255;not null" json:"title"`
	Description   string     `gorm:"column:description;size:1000" json:"description"`
	VideoUrl      string     `gorm:"column:video_url;size:512;not null" json:"video_url"`
	ThumbnailUrl  string     `gorm:"column:thumbnail_url;size:512" json:"thumbnail_url"`
	Duration      int64      `gorm:"column:duration;default:0" json:"duration"`
	Hashtags      StringList `gorm:"column:hashtags;type:json" json:"hashtags"`
	IsPublic      bool       `gorm:"column:is_public;default:true" json:"is_public"`
	LikesCount    int64      `gorm:"column:likes_count;default:0" json:"likes_count"`
	CommentsCount int64      `gorm:"column:comments_count;default:0" json:"comments_count"`
	SharesCount   int64      `gorm:"column:shares_count;default:0" json:"shares_count"`
	ViewsCount    int64      `gorm:"column:views_count;default:0" json:"views_count"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Video) TableName() string {
	return "videos"
}

// StringList is stored as a JSON array column.
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = StringList{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("cannot scan into StringList")
	}
	if len(bytes) == 0 {
		*s = StringList{}
		return nil
	}
	return json.Unmarshal(bytes, (*[]string)(s))
}
