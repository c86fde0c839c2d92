package service

import (
	"context"

	"ClipFlow.com/cmd/model"
	"ClipFlow.com/cmd/video/dal/db"
	"ClipFlow.com/pkg/constants"
)

type VideoListService struct {
	ctx context.Context
}

func NewVideoListService(ctx context.Context) *VideoListService {
	return &VideoListService{ctx: ctx}
}

// List pages public videos newest first. categorySlug "all" or "" means
// no filter; an unknown slug matches nothing.
func (s *VideoListService) List(categorySlug string, pageNum, pageSize int64) ([]*model.Video, int64, error) {
	var categoryId int64
	if categorySlug != "" && categorySlug != constants.CategoryAll {
		category, err := db.GetCategoryBySlug(s.ctx, categorySlug)
		if err != nil {
			return nil, 0, err
		}
		if category == nil {
			return []*model.Video{}, 0, nil
		}
		categoryId = category.CategoryId
	}
	return db.ListPublicVideos(s.ctx, categoryId, pageNum, pageSize)
}

// UserVideos pages one owner's public videos newest first.
func (s *VideoListService) UserVideos(userId, pageNum, pageSize int64) ([]*model.Video, int64, error) {
	return db.ListUserVideos(s.ctx, userId, pageNum, pageSize)
}

// RecentUserVideos returns the newest public videos shown on a profile.
func (s *VideoListService) RecentUserVideos(userId int64) ([]*model.Video, error) {
	return db.RecentPublicVideos(s.ctx, userId)
}

func (s *VideoListService) Categories() ([]*model.Category, error) {
	return db.ListCategories(s.ctx)
}
