package service

import (
	"Circle/dao"
	"Circle/types"
	"testing"

	"gorm.io/gorm"
)

func newLikeService(db *gorm.DB) *LikeService {
	return &LikeService{
		DB:       db,
		Redis:    newTestRedis(),
		LikeDAO:  dao.NewPostLikeDAO(db),
		StatsDAO: dao.NewPostStatsDAO(db),
		PostDAO:  dao.NewPostDAO(db),
	}
}

func TestLikeToggle(t *testing.T) {
	db := newTestDB(t)
	likeSvc := newLikeService(db)
	postSvc := newPostService(db)
	ctx := t.Context()

	alice := createTestUser(t, db, "alice", false)
	bob := createTestUser(t, db, "bob", false)

	post, err := postSvc.CreatePost(ctx, alice.ID, &types.CreatePostRequest{Content: "hello"})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	if err := likeSvc.Like(ctx, bob.ID, post.ID); err != nil {
		t.Fatalf("like: %v", err)
	}
	if liked, _ := likeSvc.IsLiked(ctx, bob.ID, post.ID); !liked {
		t.Fatal("expected liked state")
	}
	if n, _ := likeSvc.GetLikeCount(ctx, post.ID); n != 1 {
		t.Errorf("like count = %d, want 1", n)
	}

	// 重复点赞为空操作
	if err := likeSvc.Like(ctx, bob.ID, post.ID); err != nil {
		t.Fatalf("repeat like: %v", err)
	}
	if n, _ := likeSvc.GetLikeCount(ctx, post.ID); n != 1 {
		t.Errorf("like count after repeat = %d, want 1", n)
	}

	if err := likeSvc.Unlike(ctx, bob.ID, post.ID); err != nil {
		t.Fatalf("unlike: %v", err)
	}
	if n, _ := likeSvc.GetLikeCount(ctx, post.ID); n != 0 {
		t.Errorf("like count after unlike = %d, want 0", n)
	}

	// 未点赞时取消也是空操作，计数不为负
	if err := likeSvc.Unlike(ctx, bob.ID, post.ID); err != nil {
		t.Fatalf("repeat unlike: %v", err)
	}
	if n, _ := likeSvc.GetLikeCount(ctx, post.ID); n != 0 {
		t.Errorf("like count after repeat unlike = %d, want 0", n)
	}
}

// 插入失败必须上抛，不能把存储故障当成重复点赞吞掉
func TestLikeStorageErrorSurfaces(t *testing.T) {
	db := newTestDB(t)
	likeSvc := newLikeService(db)
	postSvc := newPostService(db)
	ctx := t.Context()

	alice := createTestUser(t, db, "alice", false)
	bob := createTestUser(t, db, "bob", false)

	post, err := postSvc.CreatePost(ctx, alice.ID, &types.CreatePostRequest{Content: "hello"})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	// 用触发器模拟底层写失败
	err = db.Exec(`CREATE TRIGGER like_write_fails BEFORE INSERT ON post_likes
		BEGIN SELECT RAISE(ABORT, 'disk I/O error'); END`).Error
	if err != nil {
		t.Fatalf("create trigger: %v", err)
	}

	if err := likeSvc.Like(ctx, bob.ID, post.ID); err == nil {
		t.Fatal("expected storage error to surface")
	}
	if liked, _ := likeSvc.IsLiked(ctx, bob.ID, post.ID); liked {
		t.Fatal("failed like should not be persisted")
	}
	if n, _ := likeSvc.GetLikeCount(ctx, post.ID); n != 0 {
		t.Errorf("like count = %d, want 0", n)
	}
}

func TestLikeMissingPost(t *testing.T) {
	db := newTestDB(t)
	likeSvc := newLikeService(db)

	alice := createTestUser(t, db, "alice", false)
	if err := likeSvc.Like(t.Context(), alice.ID, 404404); err == nil {
		t.Fatal("like on missing post should fail")
	}
}
