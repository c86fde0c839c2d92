package db

import (
	"context"

	"ClipFlow.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ToggleFollow flips the follow edge from follower to followed, moving
// both users' counters symmetrically in the same transaction.
func ToggleFollow(ctx context.Context, followerId, followedId int64) (following bool, followersCount int64, err error) {
	err = DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("follower_id = ? AND followed_id = ?", followerId, followedId).
			Delete(&model.Follow{})
		if result.Error != nil {
			return result.Error
		}
		delta := int64(1)
		if result.RowsAffected > 0 {
			following = false
			delta = -1
		} else {
			if err := tx.Create(&model.Follow{FollowerId: followerId, FollowedId: followedId}).Error; err != nil {
				return err
			}
			following = true
		}
		if err := tx.Model(&model.User{}).Where("user_id = ?", followerId).
			UpdateColumn("following_count", gorm.Expr("following_count + ?", delta)).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.User{}).Where("user_id = ?", followedId).
			UpdateColumn("followers_count", gorm.Expr("followers_count + ?", delta)).Error; err != nil {
			return err
		}
		return tx.Model(&model.User{}).Where("user_id = ?", followedId).
			Select("followers_count").Scan(&followersCount).Error
	})
	if err != nil {
		return false, 0, errors.WithMessage(err, "ToggleFollow failed")
	}
	return following, followersCount, nil
}

func IsFollowing(ctx context.Context, followerId, followedId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerId, followedId).
		Count(&count).Error; err != nil {
		return false, errors.WithMessage(err, "IsFollowing failed")
	}
	return count > 0, nil
}
