package service

import (
	"context"
	"strings"

	videodb "ClipFlow.com/cmd/video/dal/db"

	"ClipFlow.com/cmd/interaction/dal/db"
	"ClipFlow.com/cmd/model"
	"ClipFlow.com/pkg/constants"
	"ClipFlow.com/pkg/errno"
)

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

// AddComment creates a top-level comment or a single-level reply and
// bumps the video's comments_count. A reply's parent must exist, belong
// to the same video and be top-level itself.
func (s *CommentService) AddComment(userId, videoId int64, text string, parentId int64) (*model.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errno.ValidationErr.WithFields(map[string]string{"comment_text": "comment text is required"})
	}
	if len(text) > constants.MaxCommentLen {
		return nil, errno.ValidationErr.WithFields(map[string]string{"comment_text": "comment must not exceed 500 characters"})
	}

	video, err := videodb.GetVideo(s.ctx, videoId)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, errno.NotFoundErr.WithMessage("video not found")
	}

	if parentId != 0 {
		parent, err := db.GetComment(s.ctx, parentId)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, errno.ValidationErr.WithFields(map[string]string{"parent_id": "parent comment does not exist"})
		}
		if parent.VideoId != videoId {
			return nil, errno.ValidationErr.WithFields(map[string]string{"parent_id": "parent comment belongs to another video"})
		}
		if parent.ParentId != 0 {
			return nil, errno.ValidationErr.WithFields(map[string]string{"parent_id": "replies can only be added to top-level comments"})
		}
	}

	comment := &model.Comment{
		VideoId:     videoId,
		UserId:      userId,
		ParentId:    parentId,
		CommentText: text,
	}
	if err := db.CreateComment(s.ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments pages top-level comments newest first, each with its
// direct replies attached oldest first.
func (s *CommentService) ListComments(videoId, pageNum, pageSize int64) ([]*model.Comment, int64, error) {
	video, err := videodb.GetVideo(s.ctx, videoId)
	if err != nil {
		return nil, 0, err
	}
	if video == nil {
		return nil, 0, errno.NotFoundErr.WithMessage("video not found")
	}

	comments, count, err := db.ListTopLevelComments(s.ctx, videoId, pageNum, pageSize)
	if err != nil {
		return nil, 0, err
	}

	parentIds := make([]int64, 0, len(comments))
	byId := make(map[int64]*model.Comment, len(comments))
	for _, comment := range comments {
		comment.Replies = []*model.Comment{}
		parentIds = append(parentIds, comment.CommentId)
		byId[comment.CommentId] = comment
	}
	replies, err := db.ListReplies(s.ctx, parentIds)
	if err != nil {
		return nil, 0, err
	}
	for _, reply := range replies {
		if parent, ok := byId[reply.ParentId]; ok {
			parent.Replies = append(parent.Replies, reply)
		}
	}
	return comments, count, nil
}
