package service

import (
	"context"
	"strings"

	"ClipFlow.com/cmd/model"
	"ClipFlow.com/cmd/user/dal/db"
	"ClipFlow.com/pkg/constants"
	"ClipFlow.com/pkg/errno"
	"ClipFlow.com/pkg/oss"
	"ClipFlow.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type UpdateProfileService struct {
	ctx     context.Context
	Storage oss.Storage
}

func NewUpdateProfileService(ctx context.Context) *UpdateProfileService {
	return &UpdateProfileService{ctx: ctx, Storage: oss.Default()}
}

type UpdateProfileParams struct {
	UserName *string
	Bio      *string
	// staged profile image, empty path when no new image was sent
	ImagePath        string
	ImageFileName    string
	ImageContentType string
	ImageSize        int64
}

// UpdateProfile mutates username/bio and replaces the profile image:
// the old blob is deleted before the new one is stored.
func (s *UpdateProfileService) UpdateProfile(userId int64, req *UpdateProfileParams) (*model.User, error) {
	user, err := db.GetUser(s.ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errno.NotFoundErr.WithMessage("user not found")
	}

	fields := map[string]string{}
	updates := map[string]interface{}{}

	if req.UserName != nil {
		name := strings.TrimSpace(*req.UserName)
		if name == "" {
			fields["username"] = "username cannot be empty"
		} else if len(name) > constants.MaxUsernameLen {
			fields["username"] = "username is too long"
		} else if taken, err := db.UserNameTaken(s.ctx, name, userId); err != nil {
			return nil, err
		} else if taken {
			fields["username"] = "username is already taken"
		} else {
			updates["user_name"] = name
		}
	}
	if req.Bio != nil {
		if len(*req.Bio) > constants.MaxBioLen {
			fields["bio"] = "bio must not exceed 500 characters"
		} else {
			updates["bio"] = *req.Bio
		}
	}
	if req.ImagePath != "" {
		ext := utils.FileExt(req.ImageFileName)
		if _, ok := constants.ProfileImageExtensions[ext]; !ok {
			fields["profile_image"] = "profile image must be jpeg, jpg or png"
		} else if req.ImageSize > constants.MaxThumbnailSize {
			fields["profile_image"] = "profile image must not exceed 2MB"
		}
	}
	if len(fields) > 0 {
		return nil, errno.ValidationErr.WithFields(fields)
	}

	if req.ImagePath != "" {
		if user.ProfileImage != "" {
			if object := s.Storage.ObjectFromURL(user.ProfileImage); object != "" {
				if err := s.Storage.Remove(s.ctx, object); err != nil {
					hlog.Warnf("failed to remove old profile image %s: %v", object, err)
				}
			}
		}
		objectName := utils.NewObjectName(constants.ProfileObjectPrefix, req.ImageFileName)
		url, err := s.Storage.StoreFile(s.ctx, objectName, req.ImagePath, req.ImageContentType)
		if err != nil {
			return nil, err
		}
		updates["profile_image"] = url
	}

	if err := db.UpdateUser(s.ctx, userId, updates); err != nil {
		return nil, err
	}
	return db.GetUser(s.ctx, userId)
}
