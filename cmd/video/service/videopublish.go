package service

import (
	"context"
	"strings"

	"ClipFlow.com/cmd/model"
	"ClipFlow.com/cmd/video/dal/db"
	"ClipFlow.com/pkg/constants"
	"ClipFlow.com/pkg/errno"
	"ClipFlow.com/pkg/oss"
	"ClipFlow.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type VideoPublishService struct {
	ctx     context.Context
	Storage oss.Storage
	Prober  utils.DurationProber
}

func NewVideoPublishService(ctx context.Context) *VideoPublishService {
	return &VideoPublishService{
		ctx:     ctx,
		Storage: oss.Default(),
		Prober:  utils.NewFFProbe(),
	}
}

type PublishParams struct {
	UserId      int64
	Title       string
	Description string
	CategoryId  int64
	HashtagsRaw string

	// staged upload files on local disk
	VideoPath        string
	VideoFileName    string
	VideoSize        int64
	ThumbnailPath    string
	ThumbnailName    string
	ThumbnailSize    int64
}

// Publish runs the upload intake: validate, store blobs, probe duration,
// persist the record. If the record insert fails after blobs were
// written, the blobs are removed again so no orphan survives the
// failure path.
func (s *VideoPublishService) Publish(req *PublishParams) (*model.Video, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	videoObject := utils.NewObjectName(constants.VideoObjectPrefix, req.VideoFileName)
	videoUrl, err := s.Storage.StoreFile(s.ctx, videoObject, req.VideoPath,
		constants.VideoExtensions[utils.FileExt(req.VideoFileName)])
	if err != nil {
		return nil, err
	}

	thumbnailObject := ""
	thumbnailUrl := ""
	if req.ThumbnailPath != "" {
		thumbnailObject = utils.NewObjectName(constants.ThumbnailObjectPrefix, req.ThumbnailName)
		thumbnailUrl, err = s.Storage.StoreFile(s.ctx, thumbnailObject, req.ThumbnailPath,
			constants.ImageExtensions[utils.FileExt(req.ThumbnailName)])
		if err != nil {
			s.cleanup(videoObject, "")
			return nil, err
		}
	}

	// best effort: a missing or broken ffprobe never fails the upload
	duration := s.Prober.Probe(req.VideoPath)

	video := &model.Video{
		UserId:       req.UserId,
		CategoryId:   req.CategoryId,
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		VideoUrl:     videoUrl,
		ThumbnailUrl: thumbnailUrl,
		Duration:     duration,
		Hashtags:     utils.ParseHashtags(req.HashtagsRaw),
		IsPublic:     true,
	}
	if err := db.InsertVideo(s.ctx, video); err != nil {
		s.cleanup(videoObject, thumbnailObject)
		return nil, err
	}
	return video, nil
}

func (s *VideoPublishService) validate(req *PublishParams) error {
	fields := map[string]string{}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		fields["title"] = "title is required"
	} else if len(title) > constants.MaxTitleLen {
		fields["title"] = "title must not exceed 255 characters"
	}
	if len(req.Description) > constants.MaxDescriptionLen {
		fields["description"] = "description must not exceed 1000 characters"
	}
	if req.VideoPath == "" {
		fields["video"] = "video file is required"
	} else {
		if _, ok := constants.VideoExtensions[utils.FileExt(req.VideoFileName)]; !ok {
			fields["video"] = "video must be mp4, mov, avi or mkv"
		} else if req.VideoSize > constants.MaxVideoSize {
			fields["video"] = "video must not exceed 50MB"
		}
	}
	if req.ThumbnailPath != "" {
		if _, ok := constants.ImageExtensions[utils.FileExt(req.ThumbnailName)]; !ok {
			fields["thumbnail"] = "thumbnail must be jpeg, png or webp"
		} else if req.ThumbnailSize > constants.MaxThumbnailSize {
			fields["thumbnail"] = "thumbnail must not exceed 2MB"
		}
	}
	if req.CategoryId <= 0 {
		fields["category_id"] = "category_id is required"
	} else if exists, err := db.CategoryExists(s.ctx, req.CategoryId); err != nil {
		return err
	} else if !exists {
		fields["category_id"] = "selected category does not exist"
	}
	if len(fields) > 0 {
		return errno.ValidationErr.WithFields(fields)
	}
	return nil
}

// cleanup removes just-written blobs after a failed publish. Failures
// are swallowed: compensation is best effort.
func (s *VideoPublishService) cleanup(videoObject, thumbnailObject string) {
	if videoObject != "" {
		if err := s.Storage.Remove(s.ctx, videoObject); err != nil {
			hlog.Warnf("failed to clean up video blob %s: %v", videoObject, err)
		}
	}
	if thumbnailObject != "" {
		if err := s.Storage.Remove(s.ctx, thumbnailObject); err != nil {
			hlog.Warnf("failed to clean up thumbnail blob %s: %v", thumbnailObject, err)
		}
	}
}
