package db

import (
	"context"

	"ClipFlow.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ToggleVideoLike flips the like state for one (user, video) pair. The
// row mutation and the counter update run in one transaction so
// likes_count never drifts from the like rows. The unique index on the
// pair rejects a concurrent duplicate insert.
func ToggleVideoLike(ctx context.Context, userId, videoId int64) (liked bool, likesCount int64, err error) {
	err = DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("video_id = ? AND user_id = ?", videoId, userId).
			Delete(&model.VideoLike{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			liked = false
			if err := tx.Model(&model.Video{}).Where("video_id = ?", videoId).
				UpdateColumn("likes_count", gorm.Expr("likes_count - ?", 1)).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Create(&model.VideoLike{VideoId: videoId, UserId: userId}).Error; err != nil {
				return err
			}
			liked = true
			if err := tx.Model(&model.Video{}).Where("video_id = ?", videoId).
				UpdateColumn("likes_count", gorm.Expr("likes_count + ?", 1)).Error; err != nil {
				return err
			}
		}
		return tx.Model(&model.Video{}).Where("video_id = ?", videoId).
			Select("likes_count").Scan(&likesCount).Error
	})
	if err != nil {
		return false, 0, errors.WithMessage(err, "ToggleVideoLike failed")
	}
	return liked, likesCount, nil
}

// CreateComment inserts the comment and bumps the video's comments_count
// in one transaction.
func CreateComment(ctx context.Context, comment *model.Comment) error {
	err := DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return tx.Model(&model.Video{}).Where("video_id = ?", comment.VideoId).
			UpdateColumn("comments_count", gorm.Expr("comments_count + ?", 1)).Error
	})
	if err != nil {
		return errors.WithMessage(err, "CreateComment failed")
	}
	return nil
}

func GetComment(ctx context.Context, commentId int64) (*model.Comment, error) {
	var comment model.Comment
	err := DB.WithContext(ctx).Where("comment_id = ?", commentId).First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.WithMessage(err, "GetComment failed")
	}
	return &comment, nil
}

// ListTopLevelComments pages a video's top-level comments newest first.
func ListTopLevelComments(ctx context.Context, videoId, pageNum, pageSize int64) ([]*model.Comment, int64, error) {
	query := DB.WithContext(ctx).Model(&model.Comment{}).
		Where("video_id = ? AND parent_id = ?", videoId, 0)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, errors.WithMessage(err, "ListTopLevelComments count failed")
	}

	var comments []*model.Comment
	if err := query.Order("created_at DESC").Order("comment_id DESC").
		Offset(int((pageNum - 1) * pageSize)).Limit(int(pageSize)).
		Find(&comments).Error; err != nil {
		return nil, 0, errors.WithMessage(err, "ListTopLevelComments failed")
	}
	return comments, count, nil
}

// ListReplies fetches the direct replies of the given parents, oldest
// first.
func ListReplies(ctx context.Context, parentIds []int64) ([]*model.Comment, error) {
	if len(parentIds) == 0 {
		return nil, nil
	}
	var replies []*model.Comment
	if err := DB.WithContext(ctx).Model(&model.Comment{}).
		Where("parent_id IN (?)", parentIds).
		Order("created_at ASC").Order("comment_id ASC").
		Find(&replies).Error; err != nil {
		return nil, errors.WithMessage(err, "ListReplies failed")
	}
	return replies, nil
}

func GetVideoLikeCount(ctx context.Context, videoId int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.VideoLike{}).
		Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return 0, errors.WithMessage(err, "GetVideoLikeCount failed")
	}
	return count, nil
}

func IsVideoLikedByUser(ctx context.Context, userId, videoId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.VideoLike{}).
		Where("video_id = ? AND user_id = ?", videoId, userId).
		Count(&count).Error; err != nil {
		return false, errors.WithMessage(err, "IsVideoLikedByUser failed")
	}
	return count > 0, nil
}
