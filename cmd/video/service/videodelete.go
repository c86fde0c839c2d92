package service

import (
	"context"

	"ClipFlow.com/cmd/video/dal/db"
	"ClipFlow.com/pkg/errno"
	"ClipFlow.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type VideoDeleteService struct {
	ctx     context.Context
	Storage oss.Storage
}

func NewVideoDeleteService(ctx context.Context) *VideoDeleteService {
	return &VideoDeleteService{ctx: ctx, Storage: oss.Default()}
}

// Delete removes an owned video: blobs first (best effort, absent blobs
// tolerated), then the record. A blob failure never blocks the record
// deletion.
func (s *VideoDeleteService) Delete(requesterId, videoId int64) error {
	video, err := db.GetVideo(s.ctx, videoId)
	if err != nil {
		return err
	}
	if video == nil {
		return errno.NotFoundErr.WithMessage("video not found")
	}
	if video.UserId != requesterId {
		return errno.ForbiddenErr.WithMessage("only the owner can delete this video")
	}

	for _, url := range []string{video.VideoUrl, video.ThumbnailUrl} {
		if url == "" {
			continue
		}
		object := s.Storage.ObjectFromURL(url)
		if object == "" {
			continue
		}
		if err := s.Storage.Remove(s.ctx, object); err != nil {
			hlog.Warnf("failed to remove blob %s for video %d: %v", object, videoId, err)
		}
	}
	return db.DeleteVideo(s.ctx, videoId)
}
