package db

import (
	"context"

	"ClipFlow.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateUser(ctx context.Context, user *model.User) error {
	if err := DB.WithContext(ctx).Create(user).Error; err != nil {
		return errors.WithMessage(err, "CreateUser failed")
	}
	return nil
}

func GetUser(ctx context.Context, userId int64) (*model.User, error) {
	var user model.User
	err := DB.WithContext(ctx).Where("user_id = ?", userId).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.WithMessage(err, "GetUser failed")
	}
	return &user, nil
}

func GetUserByName(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := DB.WithContext(ctx).Where("user_name = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.WithMessage(err, "GetUserByName failed")
	}
	return &user, nil
}

// UserNameTaken reports whether another user already holds username.
// excludeId skips the caller's own row on profile updates.
func UserNameTaken(ctx context.Context, username string, excludeId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.User{}).
		Where("user_name = ? AND user_id <> ?", username, excludeId).
		Count(&count).Error; err != nil {
		return false, errors.WithMessage(err, "UserNameTaken failed")
	}
	return count > 0, nil
}

func EmailTaken(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.User{}).
		Where("email = ?", email).Count(&count).Error; err != nil {
		return false, errors.WithMessage(err, "EmailTaken failed")
	}
	return count > 0, nil
}

func UpdateUser(ctx context.Context, userId int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	if err := DB.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ?", userId).Updates(fields).Error; err != nil {
		return errors.WithMessage(err, "UpdateUser failed")
	}
	return nil
}
