package service

import (
	"context"
	"testing"
	"time"

	"ClipFlow.com/cmd/interaction/dal/db"
	"ClipFlow.com/cmd/model"
	videodb "ClipFlow.com/cmd/video/dal/db"
	"ClipFlow.com/pkg/database"
	"ClipFlow.com/pkg/errno"
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
	videodb.Init(conn)
	return conn
}

func mustInsertVideo(t *testing.T, conn *gorm.DB) *model.Video {
	t.Helper()
	video := &model.Video{
		UserId: 1, CategoryId: 1, Title: "clip",
		VideoUrl: "memory://blobs/videos/clip.mp4", IsPublic: true,
	}
	if err := conn.Create(video).Error; err != nil {
		t.Fatalf("insert video: %v", err)
	}
	return video
}

func errCode(err error) int64 {
	return errno.ConvertErr(err).ErrCode
}

func TestToggleLike(t *testing.T) {
	ctx := context.Background()
	conn := setupDB(t)
	video := mustInsertVideo(t, conn)
	svc := NewLikeActionService(ctx)

	t.Run("missing video", func(t *testing.T) {
		if _, err := svc.ToggleLike(7, 9999); errCode(err) != errno.NotFoundCode {
			t.Errorf("err = %v, want not found", err)
		}
	})

	t.Run("toggle on then off restores state", func(t *testing.T) {
		result, err := svc.ToggleLike(7, video.VideoId)
		if err != nil {
			t.Fatalf("like: %v", err)
		}
		if !result.Liked || result.LikesCount != 1 {
			t.Errorf("after like: liked=%v count=%d, want true/1", result.Liked, result.LikesCount)
		}

		result, err = svc.ToggleLike(7, video.VideoId)
		if err != nil {
			t.Fatalf("unlike: %v", err)
		}
		if result.Liked || result.LikesCount != 0 {
			t.Errorf("after unlike: liked=%v count=%d, want false/0", result.Liked, result.LikesCount)
		}

		liked, err := db.IsVideoLikedByUser(ctx, 7, video.VideoId)
		if err != nil {
			t.Fatalf("IsVideoLikedByUser: %v", err)
		}
		if liked {
			t.Error("like row must be gone after the second toggle")
		}
	})

	t.Run("counter matches the like rows", func(t *testing.T) {
		for _, userId := range []int64{10, 11, 12} {
			if _, err := svc.ToggleLike(userId, video.VideoId); err != nil {
				t.Fatalf("like by %d: %v", userId, err)
			}
		}
		rows, err := db.GetVideoLikeCount(ctx, video.VideoId)
		if err != nil {
			t.Fatalf("GetVideoLikeCount: %v", err)
		}
		stored, err := videodb.GetVideo(ctx, video.VideoId)
		if err != nil {
			t.Fatalf("GetVideo: %v", err)
		}
		if rows != 3 || stored.LikesCount != 3 {
			t.Errorf("rows=%d counter=%d, want 3/3", rows, stored.LikesCount)
		}
	})
}

func TestAddComment(t *testing.T) {
	ctx := context.Background()
	conn := setupDB(t)
	video := mustInsertVideo(t, conn)
	other := mustInsertVideo(t, conn)
	svc := NewCommentService(ctx)

	t.Run("validates the text", func(t *testing.T) {
		if _, err := svc.AddComment(1, video.VideoId, "   ", 0); errCode(err) != errno.ValidationCode {
			t.Errorf("empty text: err = %v, want validation error", err)
		}
		long := make([]byte, 501)
		for i := range long {
			long[i] = 'x'
		}
		if _, err := svc.AddComment(1, video.VideoId, string(long), 0); errCode(err) != errno.ValidationCode {
			t.Errorf("long text: err = %v, want validation error", err)
		}
	})

	t.Run("missing video", func(t *testing.T) {
		if _, err := svc.AddComment(1, 9999, "hi", 0); errCode(err) != errno.NotFoundCode {
			t.Errorf("err = %v, want not found", err)
		}
	})

	t.Run("top-level comment bumps the counter", func(t *testing.T) {
		comment, err := svc.AddComment(1, video.VideoId, "  first!  ", 0)
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		if comment.CommentText != "first!" {
			t.Errorf("text = %q, want trimmed", comment.CommentText)
		}
		if comment.ParentId != 0 {
			t.Errorf("parent = %d, want 0", comment.ParentId)
		}
		stored, _ := videodb.GetVideo(ctx, video.VideoId)
		if stored.CommentsCount != 1 {
			t.Errorf("comments_count = %d, want 1", stored.CommentsCount)
		}
	})

	t.Run("reply constraints", func(t *testing.T) {
		parent, err := svc.AddComment(1, video.VideoId, "parent", 0)
		if err != nil {
			t.Fatalf("add parent: %v", err)
		}

		if _, err := svc.AddComment(2, video.VideoId, "reply", 9999); errCode(err) != errno.ValidationCode {
			t.Errorf("missing parent: err = %v, want validation error", err)
		}
		if _, err := svc.AddComment(2, other.VideoId, "reply", parent.CommentId); errCode(err) != errno.ValidationCode {
			t.Errorf("cross-video parent: err = %v, want validation error", err)
		}

		reply, err := svc.AddComment(2, video.VideoId, "reply", parent.CommentId)
		if err != nil {
			t.Fatalf("add reply: %v", err)
		}
		// one level only: no replies to replies
		if _, err := svc.AddComment(3, video.VideoId, "nested", reply.CommentId); errCode(err) != errno.ValidationCode {
			t.Errorf("nested reply: err = %v, want validation error", err)
		}
	})
}

func TestListComments(t *testing.T) {
	ctx := context.Background()
	conn := setupDB(t)
	video := mustInsertVideo(t, conn)
	svc := NewCommentService(ctx)

	t.Run("missing video", func(t *testing.T) {
		if _, _, err := svc.ListComments(9999, 1, 20); errCode(err) != errno.NotFoundCode {
			t.Errorf("err = %v, want not found", err)
		}
	})

	first, err := svc.AddComment(1, video.VideoId, "first", 0)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	second, err := svc.AddComment(2, video.VideoId, "second", 0)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	replyA, err := svc.AddComment(3, video.VideoId, "reply a", first.CommentId)
	if err != nil {
		t.Fatalf("add reply: %v", err)
	}
	replyB, err := svc.AddComment(4, video.VideoId, "reply b", first.CommentId)
	if err != nil {
		t.Fatalf("add reply: %v", err)
	}

	t.Run("newest first with replies attached oldest first", func(t *testing.T) {
		comments, total, err := svc.ListComments(video.VideoId, 1, 20)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		// replies are not top-level entries
		if total != 2 || len(comments) != 2 {
			t.Fatalf("got %d/%d top-level comments, want 2/2", len(comments), total)
		}
		if comments[0].CommentId != second.CommentId {
			t.Errorf("top comment = %q, want the newest", comments[0].CommentText)
		}
		if len(comments[0].Replies) != 0 {
			t.Errorf("newest comment has %d replies, want 0", len(comments[0].Replies))
		}
		replies := comments[1].Replies
		if len(replies) != 2 {
			t.Fatalf("got %d replies, want 2", len(replies))
		}
		if replies[0].CommentId != replyA.CommentId || replies[1].CommentId != replyB.CommentId {
			t.Error("replies must come back oldest first")
		}
	})

	t.Run("counter includes replies", func(t *testing.T) {
		stored, _ := videodb.GetVideo(ctx, video.VideoId)
		if stored.CommentsCount != 4 {
			t.Errorf("comments_count = %d, want 4", stored.CommentsCount)
		}
	})
}
