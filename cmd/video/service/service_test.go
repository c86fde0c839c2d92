package service

import (
	"context"
	"testing"
	"time"

	"ClipFlow.com/cmd/model"
	"ClipFlow.com/cmd/video/dal/db"
	"ClipFlow.com/pkg/constants"
	"ClipFlow.com/pkg/database"
	"ClipFlow.com/pkg/errno"
	"ClipFlow.com/pkg/oss"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	db.Init(conn)
	return conn
}

func mustInsertVideo(t *testing.T, conn *gorm.DB, video *model.Video) *model.Video {
	t.Helper()
	if video.Title == "" {
		video.Title = "untitled"
	}
	if video.CategoryId == 0 {
		video.CategoryId = 1
	}
	if video.VideoUrl == "" {
		video.VideoUrl = "memory://blobs/videos/seed.mp4"
	}
	video.IsPublic = true
	if err := conn.Create(video).Error; err != nil {
		t.Fatalf("insert video: %v", err)
	}
	return video
}

func errCode(err error) int64 {
	return errno.ConvertErr(err).ErrCode
}

type fixedProber struct {
	seconds int64
}

func (p fixedProber) Probe(string) int64 { return p.seconds }

func TestPublish(t *testing.T) {
	ctx := context.Background()

	newService := func(storage *oss.MemoryStorage, prober fixedProber) *VideoPublishService {
		return &VideoPublishService{ctx: ctx, Storage: storage, Prober: prober}
	}
	params := func() *PublishParams {
		return &PublishParams{
			UserId:        1,
			Title:         "my first clip",
			CategoryId:    1,
			HashtagsRaw:   "funny, dance",
			VideoPath:     "/tmp/upload.mp4",
			VideoFileName: "upload.mp4",
			VideoSize:     1 << 20,
		}
	}

	t.Run("stores blob and record", func(t *testing.T) {
		conn := setupDB(t)
		storage := oss.NewMemoryStorage()
		video, err := newService(storage, fixedProber{seconds: 42}).Publish(params())
		if err != nil {
			t.Fatalf("publish: %v", err)
		}
		if video.VideoId == 0 {
			t.Fatal("expected persisted video id")
		}
		if video.Duration != 42 {
			t.Errorf("duration = %d, want 42", video.Duration)
		}
		if len(video.Hashtags) != 2 || video.Hashtags[0] != "funny" {
			t.Errorf("hashtags = %v", video.Hashtags)
		}
		if !video.IsPublic {
			t.Error("published video must be public")
		}
		if storage.Len() != 1 {
			t.Errorf("stored objects = %d, want 1", storage.Len())
		}
		var count int64
		conn.Model(&model.Video{}).Count(&count)
		if count != 1 {
			t.Errorf("video rows = %d, want 1", count)
		}
	})

	t.Run("rejects bad input before touching storage", func(t *testing.T) {
		setupDB(t)
		storage := oss.NewMemoryStorage()
		svc := newService(storage, fixedProber{})

		req := params()
		req.Title = ""
		req.VideoFileName = "upload.exe"
		req.CategoryId = 999
		_, err := svc.Publish(req)
		if errCode(err) != errno.ValidationCode {
			t.Fatalf("err = %v, want validation error", err)
		}
		fields := errno.ConvertErr(err).Fields
		for _, field := range []string{"title", "video", "category_id"} {
			if fields[field] == "" {
				t.Errorf("missing field error for %q", field)
			}
		}
		if storage.Len() != 0 {
			t.Errorf("stored objects = %d, want 0", storage.Len())
		}
	})

	t.Run("rejects oversized video", func(t *testing.T) {
		setupDB(t)
		svc := newService(oss.NewMemoryStorage(), fixedProber{})
		req := params()
		req.VideoSize = constants.MaxVideoSize + 1
		_, err := svc.Publish(req)
		if errCode(err) != errno.ValidationCode {
			t.Fatalf("err = %v, want validation error", err)
		}
	})

	t.Run("removes blobs when the insert fails", func(t *testing.T) {
		conn := setupDB(t)
		if err := conn.Migrator().DropTable(&model.Video{}); err != nil {
			t.Fatalf("drop table: %v", err)
		}
		storage := oss.NewMemoryStorage()
		req := params()
		req.ThumbnailPath = "/tmp/thumb.png"
		req.ThumbnailName = "thumb.png"
		req.ThumbnailSize = 1 << 10
		if _, err := newService(storage, fixedProber{}).Publish(req); err == nil {
			t.Fatal("expected insert failure")
		}
		if storage.Len() != 0 {
			t.Errorf("stored objects = %d, want 0 after cleanup", storage.Len())
		}
	})

	t.Run("removes the video blob when the thumbnail store fails", func(t *testing.T) {
		setupDB(t)
		storage := oss.NewMemoryStorage()
		svc := newService(storage, fixedProber{})
		req := params()
		req.ThumbnailPath = "/tmp/thumb.png"
		req.ThumbnailName = "thumb.png"
		req.ThumbnailSize = 1 << 10
		// first store (video) succeeds, second (thumbnail) fails
		storage.SkipStores = 1
		storage.FailStore = 1
		if _, err := svc.Publish(req); err == nil {
			t.Fatal("expected thumbnail store failure")
		}
		if storage.Len() != 0 {
			t.Errorf("stored objects = %d, want 0 after cleanup", storage.Len())
		}
	})

	t.Run("probe failure yields zero duration", func(t *testing.T) {
		setupDB(t)
		video, err := newService(oss.NewMemoryStorage(), fixedProber{seconds: 0}).Publish(params())
		if err != nil {
			t.Fatalf("publish: %v", err)
		}
		if video.Duration != 0 {
			t.Errorf("duration = %d, want 0", video.Duration)
		}
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	conn := setupDB(t)
	svc := NewVideoListService(ctx)

	comedy, _ := db.GetCategoryBySlug(ctx, "comedy")
	music, _ := db.GetCategoryBySlug(ctx, "music")
	mustInsertVideo(t, conn, &model.Video{UserId: 1, CategoryId: comedy.CategoryId, Title: "a"})
	mustInsertVideo(t, conn, &model.Video{UserId: 1, CategoryId: music.CategoryId, Title: "b"})
	mustInsertVideo(t, conn, &model.Video{UserId: 2, CategoryId: comedy.CategoryId, Title: "c"})

	t.Run("all categories", func(t *testing.T) {
		videos, total, err := svc.List(constants.CategoryAll, 1, 10)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if total != 3 || len(videos) != 3 {
			t.Errorf("got %d/%d videos, want 3/3", len(videos), total)
		}
	})

	t.Run("category filter", func(t *testing.T) {
		videos, total, err := svc.List("comedy", 1, 10)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if total != 2 {
			t.Errorf("total = %d, want 2", total)
		}
		for _, v := range videos {
			if v.CategoryId != comedy.CategoryId {
				t.Errorf("video %d in category %d", v.VideoId, v.CategoryId)
			}
		}
	})

	t.Run("unknown slug matches nothing", func(t *testing.T) {
		videos, total, err := svc.List("no-such-category", 1, 10)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if total != 0 || len(videos) != 0 {
			t.Errorf("got %d/%d videos, want empty", len(videos), total)
		}
	})

	t.Run("user videos", func(t *testing.T) {
		videos, total, err := svc.UserVideos(1, 1, 10)
		if err != nil {
			t.Fatalf("user videos: %v", err)
		}
		if total != 2 || len(videos) != 2 {
			t.Errorf("got %d/%d videos, want 2/2", len(videos), total)
		}
	})

	t.Run("categories are seeded", func(t *testing.T) {
		categories, err := svc.Categories()
		if err != nil {
			t.Fatalf("categories: %v", err)
		}
		if len(categories) != 7 {
			t.Errorf("got %d categories, want 7", len(categories))
		}
	})
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	conn := setupDB(t)
	svc := NewVideoSearchService(ctx)

	mustInsertVideo(t, conn, &model.Video{UserId: 1, Title: "cooking pasta"})
	mustInsertVideo(t, conn, &model.Video{UserId: 1, Title: "workout", Description: "pasta for gains"})
	mustInsertVideo(t, conn, &model.Video{UserId: 1, Title: "plain", Hashtags: model.StringList{"komedi"}})

	t.Run("empty keyword yields empty result", func(t *testing.T) {
		videos, total, err := svc.Search("   ", 1, 10)
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		if total != 0 || len(videos) != 0 {
			t.Errorf("got %d/%d results, want empty", len(videos), total)
		}
	})

	t.Run("matches title and description", func(t *testing.T) {
		_, total, err := svc.Search("pasta", 1, 10)
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		if total != 2 {
			t.Errorf("total = %d, want 2", total)
		}
	})

	t.Run("matches exact hashtag entry", func(t *testing.T) {
		videos, total, err := svc.Search("komedi", 1, 10)
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		if total != 1 || len(videos) != 1 || videos[0].Title != "plain" {
			t.Errorf("got %d/%d results, want the hashtag-only video", len(videos), total)
		}
	})
}

func TestTrending(t *testing.T) {
	ctx := context.Background()
	conn := setupDB(t)
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	svc := NewTrendingService(ctx)
	svc.Now = func() time.Time { return now }

	// inside the window, score 9
	fresh := mustInsertVideo(t, conn, &model.Video{
		UserId: 1, Title: "fresh",
		LikesCount: 4, CommentsCount: 2, SharesCount: 1, ViewsCount: 2,
		CreatedAt: now.Add(-24 * time.Hour),
	})
	// higher score but outside the trailing week
	mustInsertVideo(t, conn, &model.Video{
		UserId: 1, Title: "stale",
		LikesCount: 500, ViewsCount: 10000,
		CreatedAt: now.Add(-10 * 24 * time.Hour),
	})
	mustInsertVideo(t, conn, &model.Video{
		UserId: 2, Title: "mild",
		LikesCount: 1, ViewsCount: 2,
		CreatedAt: now.Add(-48 * time.Hour),
	})

	t.Run("window excludes old videos", func(t *testing.T) {
		videos, err := svc.Trending()
		if err != nil {
			t.Fatalf("trending: %v", err)
		}
		if len(videos) != 2 {
			t.Fatalf("got %d videos, want 2", len(videos))
		}
		if videos[0].VideoId != fresh.VideoId {
			t.Errorf("top video = %q, want %q", videos[0].Title, fresh.Title)
		}
		for _, v := range videos {
			if v.Title == "stale" {
				t.Error("video outside the window must not rank")
			}
		}
	})

	t.Run("score order is non-increasing", func(t *testing.T) {
		videos, err := svc.Trending()
		if err != nil {
			t.Fatalf("trending: %v", err)
		}
		score := func(v *model.Video) int64 {
			return v.LikesCount + v.CommentsCount + v.SharesCount + v.ViewsCount
		}
		for i := 1; i < len(videos); i++ {
			if score(videos[i]) > score(videos[i-1]) {
				t.Errorf("videos[%d] outranks videos[%d]", i, i-1)
			}
		}
	})

	t.Run("caps the result", func(t *testing.T) {
		for i := 0; i < constants.TrendingLimit+5; i++ {
			mustInsertVideo(t, conn, &model.Video{
				UserId: 3, Title: "filler",
				CreatedAt: now.Add(-time.Hour),
			})
		}
		videos, err := svc.Trending()
		if err != nil {
			t.Fatalf("trending: %v", err)
		}
		if len(videos) != constants.TrendingLimit {
			t.Errorf("got %d videos, want %d", len(videos), constants.TrendingLimit)
		}
	})
}

func TestDetailAndShare(t *testing.T) {
	ctx := context.Background()
	conn := setupDB(t)
	video := mustInsertVideo(t, conn, &model.Video{UserId: 1, Title: "watch me"})
	svc := NewVideoDetailService(ctx)

	t.Run("detail counts a view each time", func(t *testing.T) {
		for i := int64(1); i <= 3; i++ {
			got, err := svc.Detail(video.VideoId)
			if err != nil {
				t.Fatalf("detail: %v", err)
			}
			if got.ViewsCount != i {
				t.Errorf("views = %d, want %d", got.ViewsCount, i)
			}
		}
	})

	t.Run("detail of missing video", func(t *testing.T) {
		_, err := svc.Detail(9999)
		if errCode(err) != errno.NotFoundCode {
			t.Errorf("err = %v, want not found", err)
		}
	})

	t.Run("share bumps the counter", func(t *testing.T) {
		count, err := svc.Share(video.VideoId)
		if err != nil {
			t.Fatalf("share: %v", err)
		}
		if count != 1 {
			t.Errorf("shares = %d, want 1", count)
		}
		if _, err := svc.Share(9999); errCode(err) != errno.NotFoundCode {
			t.Errorf("err = %v, want not found", err)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	conn := setupDB(t)
	storage := oss.NewMemoryStorage()

	videoUrl, _ := storage.StoreFile(ctx, "videos/clip.mp4", "/tmp/clip.mp4", "video/mp4")
	thumbUrl, _ := storage.StoreFile(ctx, "thumbnails/clip.png", "/tmp/clip.png", "image/png")
	video := mustInsertVideo(t, conn, &model.Video{
		UserId: 1, Title: "mine", VideoUrl: videoUrl, ThumbnailUrl: thumbUrl,
	})
	svc := &VideoDeleteService{ctx: ctx, Storage: storage}

	t.Run("non-owner is rejected", func(t *testing.T) {
		if err := svc.Delete(2, video.VideoId); errCode(err) != errno.ForbiddenCode {
			t.Fatalf("err = %v, want forbidden", err)
		}
		if got, _ := db.GetVideo(ctx, video.VideoId); got == nil {
			t.Error("video must survive a rejected delete")
		}
		if storage.Len() != 2 {
			t.Errorf("stored objects = %d, want 2", storage.Len())
		}
	})

	t.Run("missing video", func(t *testing.T) {
		if err := svc.Delete(1, 9999); errCode(err) != errno.NotFoundCode {
			t.Errorf("err = %v, want not found", err)
		}
	})

	t.Run("owner delete removes record and blobs", func(t *testing.T) {
		if err := svc.Delete(1, video.VideoId); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if got, _ := db.GetVideo(ctx, video.VideoId); got != nil {
			t.Error("video record must be gone")
		}
		if storage.Len() != 0 {
			t.Errorf("stored objects = %d, want 0", storage.Len())
		}
	})
}
