package service

import (
	"Circle/config"
	"Circle/types"
	"net/http"
	"net/http/httptest"
	"testing"
)

func moderationStub(t *testing.T, flagged bool) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if flagged {
			w.Write([]byte(`{"id":"modr-1","model":"omni-moderation-latest","results":[{"flagged":true,"categories":{},"category_scores":{}}]}`))
			return
		}
		w.Write([]byte(`{"id":"modr-1","model":"omni-moderation-latest","results":[{"flagged":false,"categories":{},"category_scores":{}}]}`))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestModerationDisabledAllowsAll(t *testing.T) {
	svc := NewModerationService(&config.Moderation{Enabled: false})
	if !svc.Classify(t.Context(), "anything at all") {
		t.Fatal("disabled moderation must allow")
	}
}

func TestModerationFlagsUnsafeContent(t *testing.T) {
	ts := moderationStub(t, true)
	svc := NewModerationService(&config.Moderation{
		Enabled: true,
		ApiKey:  "test",
		BaseURL: ts.URL,
	})
	if svc.Classify(t.Context(), "bad stuff") {
		t.Fatal("flagged content must be rejected")
	}
}

func TestModerationPassesSafeContent(t *testing.T) {
	ts := moderationStub(t, false)
	svc := NewModerationService(&config.Moderation{
		Enabled: true,
		ApiKey:  "test",
		BaseURL: ts.URL,
	})
	if !svc.Classify(t.Context(), "hello") {
		t.Fatal("safe content must pass")
	}
}

func TestModerationFailOpen(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(ts.Close)

	svc := NewModerationService(&config.Moderation{
		Enabled: true,
		ApiKey:  "test",
		BaseURL: ts.URL,
		Timeout: 1,
	})
	// 审核接口故障时放行，不能阻塞业务写入
	if !svc.Classify(t.Context(), "hello") {
		t.Fatal("moderation outage must fail open")
	}
}

// 评论被标记时整条写入取消：不落库、不动计数
func TestModerationBlocksFlaggedComment(t *testing.T) {
	db := newTestDB(t)
	postSvc := newPostService(db)
	commentSvc := newCommentService(db, postSvc)
	ctx := t.Context()

	ts := moderationStub(t, true)
	commentSvc.Moderation = NewModerationService(&config.Moderation{
		Enabled: true,
		ApiKey:  "test",
		BaseURL: ts.URL,
	})

	alice := createTestUser(t, db, "alice", false)
	post, err := postSvc.CreatePost(ctx, alice.ID, &types.CreatePostRequest{Content: "hi"})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	if _, err := commentSvc.CreateComment(ctx, alice.ID, &types.CreateCommentRequest{PostID: post.ID, Content: "bad stuff"}); err == nil {
		t.Fatal("flagged comment must be rejected")
	}

	list, err := commentSvc.ListComments(ctx, alice.ID, post.ID, 10, 0)
	if err != nil {
		t.Fatalf("list comments: %v", err)
	}
	if len(list.Comments) != 0 {
		t.Errorf("flagged comment persisted: %d rows", len(list.Comments))
	}

	got, err := postSvc.GetPost(ctx, alice.ID, post.ID)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if got.CommentCount != 0 {
		t.Errorf("comment count = %d, want 0", got.CommentCount)
	}
}
