package db

import (
	"context"
	"time"

	"ClipFlow.com/cmd/model"
	"ClipFlow.com/pkg/constants"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const engagementScore = "(likes_count + comments_count + shares_count + views_count)"

func InsertVideo(ctx context.Context, video *model.Video) error {
	if err := DB.WithContext(ctx).Create(video).Error; err != nil {
		return errors.WithMessage(err, "InsertVideo failed")
	}
	return nil
}

func GetVideo(ctx context.Context, videoId int64) (*model.Video, error) {
	var video model.Video
	err := DB.WithContext(ctx).Where("video_id = ?", videoId).First(&video).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.WithMessage(err, "GetVideo failed")
	}
	return &video, nil
}

// ListPublicVideos pages public videos newest first, optionally filtered
// by category id.
func ListPublicVideos(ctx context.Context, categoryId, pageNum, pageSize int64) ([]*model.Video, int64, error) {
	query := DB.WithContext(ctx).Model(&model.Video{}).Where("is_public = ?", true)
	if categoryId > 0 {
		query = query.Where("category_id = ?", categoryId)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, errors.WithMessage(err, "ListPublicVideos count failed")
	}

	var videos []*model.Video
	if err := query.Order("created_at DESC").
		Offset(int((pageNum - 1) * pageSize)).Limit(int(pageSize)).
		Find(&videos).Error; err != nil {
		return nil, 0, errors.WithMessage(err, "ListPublicVideos failed")
	}
	return videos, count, nil
}

func ListUserVideos(ctx context.Context, userId, pageNum, pageSize int64) ([]*model.Video, int64, error) {
	query := DB.WithContext(ctx).Model(&model.Video{}).
		Where("user_id = ? AND is_public = ?", userId, true)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, errors.WithMessage(err, "ListUserVideos count failed")
	}

	var videos []*model.Video
	if err := query.Order("created_at DESC").
		Offset(int((pageNum - 1) * pageSize)).Limit(int(pageSize)).
		Find(&videos).Error; err != nil {
		return nil, 0, errors.WithMessage(err, "ListUserVideos failed")
	}
	return videos, count, nil
}

// SearchVideos matches public videos whose title or description contains
// keyword, or whose hashtag list has an exact entry equal to keyword.
// The hashtag column is a JSON array, so an entry match is a quoted
// substring match.
func SearchVideos(ctx context.Context, keyword string, pageNum, pageSize int64) ([]*model.Video, int64, error) {
	like := "%" + keyword + "%"
	tagLike := `%"` + keyword + `"%`
	query := DB.WithContext(ctx).Model(&model.Video{}).
		Where("is_public = ?", true).
		Where("title LIKE ? OR description LIKE ? OR hashtags LIKE ?", like, like, tagLike)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, errors.WithMessage(err, "SearchVideos count failed")
	}

	var videos []*model.Video
	if err := query.Order("created_at DESC").
		Offset(int((pageNum - 1) * pageSize)).Limit(int(pageSize)).
		Find(&videos).Error; err != nil {
		return nil, 0, errors.WithMessage(err, "SearchVideos failed")
	}
	return videos, count, nil
}

// TrendingVideos ranks public videos of the trailing window by raw
// engagement score, ties broken newest first.
func TrendingVideos(ctx context.Context, since time.Time, limit int) ([]*model.Video, error) {
	var videos []*model.Video
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("is_public = ? AND created_at >= ?", true, since).
		Order(engagementScore + " DESC").
		Order("created_at DESC").Order("video_id DESC").
		Limit(limit).
		Find(&videos).Error; err != nil {
		return nil, errors.WithMessage(err, "TrendingVideos failed")
	}
	return videos, nil
}

// IncrementViews bumps views_count and returns the stored video.
func IncrementViews(ctx context.Context, videoId int64) (*model.Video, error) {
	result := DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ?", videoId).
		UpdateColumn("views_count", gorm.Expr("views_count + ?", 1))
	if result.Error != nil {
		return nil, errors.WithMessage(result.Error, "IncrementViews failed")
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return GetVideo(ctx, videoId)
}

// IncrementShares bumps shares_count and returns the new value.
func IncrementShares(ctx context.Context, videoId int64) (int64, error) {
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ?", videoId).
		UpdateColumn("shares_count", gorm.Expr("shares_count + ?", 1)).Error; err != nil {
		return 0, errors.WithMessage(err, "IncrementShares failed")
	}
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ?", videoId).
		Select("shares_count").Scan(&count).Error; err != nil {
		return 0, errors.WithMessage(err, "IncrementShares read back failed")
	}
	return count, nil
}

func DeleteVideo(ctx context.Context, videoId int64) error {
	if err := DB.WithContext(ctx).Where("video_id = ?", videoId).
		Delete(&model.Video{}).Error; err != nil {
		return errors.WithMessage(err, "DeleteVideo failed")
	}
	return nil
}

func GetCategoryBySlug(ctx context.Context, slug string) (*model.Category, error) {
	var category model.Category
	err := DB.WithContext(ctx).Where("slug = ?", slug).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.WithMessage(err, "GetCategoryBySlug failed")
	}
	return &category, nil
}

func CategoryExists(ctx context.Context, categoryId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Category{}).
		Where("category_id = ?", categoryId).Count(&count).Error; err != nil {
		return false, errors.WithMessage(err, "CategoryExists failed")
	}
	return count > 0, nil
}

func ListCategories(ctx context.Context) ([]*model.Category, error) {
	var categories []*model.Category
	if err := DB.WithContext(ctx).Order("category_id").Find(&categories).Error; err != nil {
		return nil, errors.WithMessage(err, "ListCategories failed")
	}
	return categories, nil
}

// RecentPublicVideos returns up to limit newest public videos of a user,
// for the profile page.
func RecentPublicVideos(ctx context.Context, userId int64) ([]*model.Video, error) {
	var videos []*model.Video
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("user_id = ? AND is_public = ?", userId, true).
		Order("created_at DESC").Limit(constants.ProfileVideosLimit).
		Find(&videos).Error; err != nil {
		return nil, errors.WithMessage(err, "RecentPublicVideos failed")
	}
	return videos, nil
}
