package service

import (
	"Circle/types"
	"testing"
)

func TestFollowPublicAccount(t *testing.T) {
	db := newTestDB(t)
	svc := newFollowService(db)
	ctx := t.Context()

	alice := createTestUser(t, db, "alice", false)
	bob := createTestUser(t, db, "bob", false)

	status, err := svc.Follow(ctx, alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("follow: %v", err)
	}
	if status != types.FollowResultFollowing {
		t.Fatalf("status = %q, want %q", status, types.FollowResultFollowing)
	}

	following, err := svc.IsFollowing(ctx, alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("is following: %v", err)
	}
	if !following {
		t.Fatal("expected accepted follow edge")
	}

	if n, _ := svc.GetFollowerCount(ctx, bob.ID); n != 1 {
		t.Errorf("bob follower count = %d, want 1", n)
	}
	if n, _ := svc.GetFollowingCount(ctx, alice.ID); n != 1 {
		t.Errorf("alice following count = %d, want 1", n)
	}
}

func TestFollowPrivateAccountPending(t *testing.T) {
	db := newTestDB(t)
	svc := newFollowService(db)
	ctx := t.Context()

	alice := createTestUser(t, db, "alice", false)
	carol := createTestUser(t, db, "carol", true)

	status, err := svc.Follow(ctx, alice.ID, carol.ID)
	if err != nil {
		t.Fatalf("follow: %v", err)
	}
	if status != types.FollowResultPending {
		t.Fatalf("status = %q, want %q", status, types.FollowResultPending)
	}

	// 待确认阶段不计数、不生效
	if following, _ := svc.IsFollowing(ctx, alice.ID, carol.ID); following {
		t.Fatal("pending edge must not count as following")
	}
	if n, _ := svc.GetFollowerCount(ctx, carol.ID); n != 0 {
		t.Errorf("carol follower count = %d, want 0", n)
	}

	// 同意后边生效，双方计数 +1
	if err := svc.Accept(ctx, carol.ID, alice.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if following, _ := svc.IsFollowing(ctx, alice.ID, carol.ID); !following {
		t.Fatal("expected accepted edge after approval")
	}
	if n, _ := svc.GetFollowerCount(ctx, carol.ID); n != 1 {
		t.Errorf("carol follower count = %d, want 1", n)
	}
	if n, _ := svc.GetFollowingCount(ctx, alice.ID); n != 1 {
		t.Errorf("alice following count = %d, want 1", n)
	}

	// 重复 Accept 不能再加计数
	if err := svc.Accept(ctx, carol.ID, alice.ID); err == nil {
		t.Fatal("second accept should fail")
	}
	if n, _ := svc.GetFollowerCount(ctx, carol.ID); n != 1 {
		t.Errorf("follower count after duplicate accept = %d, want 1", n)
	}
}

func TestFollowDecline(t *testing.T) {
	db := newTestDB(t)
	svc := newFollowService(db)
	ctx := t.Context()

	alice := createTestUser(t, db, "alice", false)
	carol := createTestUser(t, db, "carol", true)

	if _, err := svc.Follow(ctx, alice.ID, carol.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if err := svc.Decline(ctx, carol.ID, alice.ID); err != nil {
		t.Fatalf("decline: %v", err)
	}

	// 拒绝后可以重新发起请求
	status, err := svc.Follow(ctx, alice.ID, carol.ID)
	if err != nil {
		t.Fatalf("re-follow after decline: %v", err)
	}
	if status != types.FollowResultPending {
		t.Fatalf("status = %q, want pending", status)
	}
}

func TestUnfollowRestoresCounts(t *testing.T) {
	db := newTestDB(t)
	svc := newFollowService(db)
	ctx := t.Context()

	alice := createTestUser(t, db, "alice", false)
	bob := createTestUser(t, db, "bob", false)

	if _, err := svc.Follow(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if err := svc.Unfollow(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("unfollow: %v", err)
	}

	if n, _ := svc.GetFollowerCount(ctx, bob.ID); n != 0 {
		t.Errorf("bob follower count = %d, want 0", n)
	}
	if n, _ := svc.GetFollowingCount(ctx, alice.ID); n != 0 {
		t.Errorf("alice following count = %d, want 0", n)
	}

	// 再次取关是 404，计数不能变成负数
	if err := svc.Unfollow(ctx, alice.ID, bob.ID); err == nil {
		t.Fatal("unfollow without edge should fail")
	}
	if n, _ := svc.GetFollowerCount(ctx, bob.ID); n != 0 {
		t.Errorf("follower count after double unfollow = %d, want 0", n)
	}
}

func TestUnfollowPendingKeepsCounts(t *testing.T) {
	db := newTestDB(t)
	svc := newFollowService(db)
	ctx := t.Context()

	alice := createTestUser(t, db, "alice", false)
	carol := createTestUser(t, db, "carol", true)

	if _, err := svc.Follow(ctx, alice.ID, carol.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}
	// 撤回待确认请求，计数自始至终为 0
	if err := svc.Unfollow(ctx, alice.ID, carol.ID); err != nil {
		t.Fatalf("withdraw pending: %v", err)
	}
	if n, _ := svc.GetFollowerCount(ctx, carol.ID); n != 0 {
		t.Errorf("carol follower count = %d, want 0", n)
	}
}

func TestFollowRejectsSelfAndDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := newFollowService(db)
	ctx := t.Context()

	alice := createTestUser(t, db, "alice", false)
	bob := createTestUser(t, db, "bob", false)

	if _, err := svc.Follow(ctx, alice.ID, alice.ID); err == nil {
		t.Fatal("self follow should fail")
	}
	if _, err := svc.Follow(ctx, alice.ID, 99999); err == nil {
		t.Fatal("follow missing user should fail")
	}

	if _, err := svc.Follow(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if _, err := svc.Follow(ctx, alice.ID, bob.ID); err == nil {
		t.Fatal("duplicate follow should fail")
	}
	if n, _ := svc.GetFollowerCount(ctx, bob.ID); n != 1 {
		t.Errorf("follower count after duplicate follow = %d, want 1", n)
	}
}
