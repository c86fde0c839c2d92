package service

import (
	"context"
	"testing"

	"ClipFlow.com/cmd/model"
	"ClipFlow.com/cmd/relation/dal/db"
	userdb "ClipFlow.com/cmd/user/dal/db"
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
	userdb.Init(conn)
	return conn
}

func mustInsertUser(t *testing.T, conn *gorm.DB, name string) *model.User {
	t.Helper()
	user := &model.User{UserName: name, Email: name + "@example.com", Password: "x"}
	if err := conn.Create(user).Error; err != nil {
		t.Fatalf("insert user %s: %v", name, err)
	}
	return user
}

func errCode(err error) int64 {
	return errno.ConvertErr(err).ErrCode
}

func TestToggleFollow(t *testing.T) {
	ctx := context.Background()
	conn := setupDB(t)
	alice := mustInsertUser(t, conn, "alice")
	bob := mustInsertUser(t, conn, "bob")
	svc := NewRelationService(ctx)

	t.Run("self follow is always rejected", func(t *testing.T) {
		if _, err := svc.ToggleFollow(alice.UserId, alice.UserId); errCode(err) != errno.ValidationCode {
			t.Errorf("err = %v, want validation error", err)
		}
	})

	t.Run("missing target", func(t *testing.T) {
		if _, err := svc.ToggleFollow(alice.UserId, 9999); errCode(err) != errno.NotFoundCode {
			t.Errorf("err = %v, want not found", err)
		}
	})

	t.Run("toggle moves both counters symmetrically", func(t *testing.T) {
		result, err := svc.ToggleFollow(alice.UserId, bob.UserId)
		if err != nil {
			t.Fatalf("follow: %v", err)
		}
		if !result.Following || result.FollowersCount != 1 {
			t.Errorf("after follow: following=%v count=%d, want true/1", result.Following, result.FollowersCount)
		}
		follower, _ := userdb.GetUser(ctx, alice.UserId)
		followed, _ := userdb.GetUser(ctx, bob.UserId)
		if follower.FollowingCount != 1 || followed.FollowersCount != 1 {
			t.Errorf("counters = %d/%d, want 1/1", follower.FollowingCount, followed.FollowersCount)
		}

		result, err = svc.ToggleFollow(alice.UserId, bob.UserId)
		if err != nil {
			t.Fatalf("unfollow: %v", err)
		}
		if result.Following || result.FollowersCount != 0 {
			t.Errorf("after unfollow: following=%v count=%d, want false/0", result.Following, result.FollowersCount)
		}
		follower, _ = userdb.GetUser(ctx, alice.UserId)
		followed, _ = userdb.GetUser(ctx, bob.UserId)
		if follower.FollowingCount != 0 || followed.FollowersCount != 0 {
			t.Errorf("counters = %d/%d, want 0/0", follower.FollowingCount, followed.FollowersCount)
		}

		following, err := db.IsFollowing(ctx, alice.UserId, bob.UserId)
		if err != nil {
			t.Fatalf("IsFollowing: %v", err)
		}
		if following {
			t.Error("edge must be gone after the second toggle")
		}
	})

	t.Run("edge is directional", func(t *testing.T) {
		if _, err := svc.ToggleFollow(alice.UserId, bob.UserId); err != nil {
			t.Fatalf("follow: %v", err)
		}
		reverse, err := db.IsFollowing(ctx, bob.UserId, alice.UserId)
		if err != nil {
			t.Fatalf("IsFollowing: %v", err)
		}
		if reverse {
			t.Error("a follow must not imply the reverse edge")
		}
	})
}
