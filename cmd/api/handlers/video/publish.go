package handlers

import (
	"context"
	"os"
	"path/filepath"
	"strconv"

	"ClipFlow.com/cmd/video/service"
	"ClipFlow.com/pkg/errno"
	"ClipFlow.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

// Publish handles the multipart upload: the files are staged on local
// disk for the duration of the request, then handed to the intake
// workflow.
func Publish(ctx context.Context, c *app.RequestContext) {
	videoFile, err := c.FormFile("video")
	if err != nil {
		SendResponse(c, errno.ValidationErr.WithFields(map[string]string{
			"video": "video file is required",
		}), nil)
		return
	}

	tempDir, err := os.MkdirTemp("", "video-upload-")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	defer os.RemoveAll(tempDir)

	videoPath := filepath.Join(tempDir, filepath.Base(videoFile.Filename))
	if err := c.SaveUploadedFile(videoFile, videoPath); err != nil {
		SendResponse(c, err, nil)
		return
	}

	categoryId, _ := strconv.ParseInt(c.PostForm("category_id"), 10, 64)
	params := &service.PublishParams{
		UserId:        jwt.CurrentUserId(c),
		Title:         c.PostForm("title"),
		Description:   c.PostForm("description"),
		CategoryId:    categoryId,
		HashtagsRaw:   c.PostForm("hashtags"),
		VideoPath:     videoPath,
		VideoFileName: videoFile.Filename,
		VideoSize:     videoFile.Size,
	}

	if thumbnail, err := c.FormFile("thumbnail"); err == nil {
		thumbnailPath := filepath.Join(tempDir, "thumb_"+filepath.Base(thumbnail.Filename))
		if err := c.SaveUploadedFile(thumbnail, thumbnailPath); err != nil {
			SendResponse(c, err, nil)
			return
		}
		params.ThumbnailPath = thumbnailPath
		params.ThumbnailName = thumbnail.Filename
		params.ThumbnailSize = thumbnail.Size
	}

	video, err := service.NewVideoPublishService(ctx).Publish(params)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, video)
}
