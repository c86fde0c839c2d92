package handlers

import (
	"context"
	"os"
	"path/filepath"
	"strconv"

	"ClipFlow.com/cmd/user/service"
	videoservice "ClipFlow.com/cmd/video/service"
	"ClipFlow.com/pkg/errno"
	"ClipFlow.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

// GetProfile returns a user together with their recent public videos.
func GetProfile(ctx context.Context, c *app.RequestContext) {
	userId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		SendResponse(c, errno.NotFoundErr.WithMessage("user not found"), nil)
		return
	}
	user, err := service.NewGetUserInfoService(ctx).GetUserInfo(userId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	videos, err := videoservice.NewVideoListService(ctx).RecentUserVideos(userId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, map[string]interface{}{
		"user":   user,
		"videos": videos,
	})
}

// UpdateProfile mutates username/bio and optionally replaces the
// profile image (multipart).
func UpdateProfile(ctx context.Context, c *app.RequestContext) {
	var req UpdateProfileParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ValidationErr.WithMessage(err.Error()), nil)
		return
	}

	params := &service.UpdateProfileParams{
		UserName: req.UserName,
		Bio:      req.Bio,
	}
	if image, err := c.FormFile("profile_image"); err == nil {
		tempDir, err := os.MkdirTemp("", "profile-upload-")
		if err != nil {
			SendResponse(c, err, nil)
			return
		}
		defer os.RemoveAll(tempDir)
		imagePath := filepath.Join(tempDir, filepath.Base(image.Filename))
		if err := c.SaveUploadedFile(image, imagePath); err != nil {
			SendResponse(c, err, nil)
			return
		}
		params.ImagePath = imagePath
		params.ImageFileName = image.Filename
		params.ImageContentType = image.Header.Get("Content-Type")
		params.ImageSize = image.Size
	}

	user, err := service.NewUpdateProfileService(ctx).UpdateProfile(jwt.CurrentUserId(c), params)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, user)
}
