package service

import (
	"Circle/dao"
	"Circle/dao/cache"
	"Circle/socket"
	"Circle/types"
	"testing"

	"gorm.io/gorm"
)

func newMessageService(db *gorm.DB) *MessageService {
	return &MessageService{
		DB:           db,
		Hub:          socket.NewHub(),
		GroupDAO:     dao.NewGroupDAO(db),
		MemberDAO:    dao.NewGroupMemberDAO(db),
		GroupMsgDAO:  dao.NewGroupMessageDAO(db),
		DirectMsgDAO: dao.NewDirectMessageDAO(db),
		PermService: &PermService{
			UserDAO:   dao.NewUsers(db),
			FollowDAO: dao.NewUserFollowDAO(db),
		},
		Moderation:    allowModeration(),
		UnreadStorage: cache.NewUnreadStorage(newTestRedis()),
	}
}

func TestGroupMessageRoundTrip(t *testing.T) {
	db := newTestDB(t)
	groupSvc, memberSvc := newGroupServices(db)
	msgSvc := newMessageService(db)
	ctx := t.Context()

	owner := createTestUser(t, db, "owner", false)
	member := createTestUser(t, db, "member", false)
	outsider := createTestUser(t, db, "outsider", false)

	group, err := groupSvc.CreateGroup(ctx, owner.ID, &types.CreateGroupRequest{Name: "g"})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	if _, err := memberSvc.Join(ctx, member.ID, group.ID); err != nil {
		t.Fatalf("join: %v", err)
	}
	if err := memberSvc.Accept(ctx, owner.ID, group.ID, member.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	// 非成员不能发言
	if _, err := msgSvc.SendGroupMessage(ctx, outsider.ID, &types.SendGroupMessageRequest{GroupID: group.ID, Content: "x"}); err == nil {
		t.Fatal("outsider send should fail")
	}

	first, err := msgSvc.SendGroupMessage(ctx, owner.ID, &types.SendGroupMessageRequest{GroupID: group.ID, Content: "first"})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	second, err := msgSvc.SendGroupMessage(ctx, member.ID, &types.SendGroupMessageRequest{GroupID: group.ID, Content: "second"})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if first.ConvKey != socket.GroupKey(group.ID) {
		t.Errorf("conv key = %q, want %q", first.ConvKey, socket.GroupKey(group.ID))
	}

	// 历史按时间正序
	history, err := msgSvc.GroupHistory(ctx, member.ID, group.ID, 20, 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history.Messages) != 2 {
		t.Fatalf("history size = %d, want 2", len(history.Messages))
	}
	if history.Messages[0].ID != first.ID || history.Messages[1].ID != second.ID {
		t.Error("history should be in ascending send order")
	}

	// 非成员不能拉历史
	if _, err := msgSvc.GroupHistory(ctx, outsider.ID, group.ID, 20, 0); err == nil {
		t.Fatal("outsider history should fail")
	}

	// 普通成员不能删别人的消息，群主可以
	if err := msgSvc.DeleteGroupMessage(ctx, member.ID, first.ID, false); err == nil {
		t.Fatal("member deleting owner message should fail")
	}
	if err := msgSvc.DeleteGroupMessage(ctx, owner.ID, second.ID, false); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	history, err = msgSvc.GroupHistory(ctx, member.ID, group.ID, 20, 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history.Messages) != 1 {
		t.Errorf("history size after delete = %d, want 1", len(history.Messages))
	}
}

func TestDirectMessagePermissions(t *testing.T) {
	db := newTestDB(t)
	msgSvc := newMessageService(db)
	followSvc := newFollowService(db)
	ctx := t.Context()

	alice := createTestUser(t, db, "alice", false)
	carol := createTestUser(t, db, "carol", true)

	if _, err := msgSvc.SendDirectMessage(ctx, alice.ID, &types.SendDirectMessageRequest{ReceiverID: alice.ID, Content: "hi"}); err == nil {
		t.Fatal("self message should fail")
	}

	// 未被私密账号接受前不能私信
	if _, err := msgSvc.SendDirectMessage(ctx, alice.ID, &types.SendDirectMessageRequest{ReceiverID: carol.ID, Content: "hi"}); err == nil {
		t.Fatal("messaging private stranger should fail")
	}

	if _, err := followSvc.Follow(ctx, alice.ID, carol.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if err := followSvc.Accept(ctx, carol.ID, alice.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	sent, err := msgSvc.SendDirectMessage(ctx, alice.ID, &types.SendDirectMessageRequest{ReceiverID: carol.ID, Content: "hi"})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	wantKey := socket.DirectKey(alice.ID, carol.ID)
	if sent.ConvKey != wantKey {
		t.Errorf("conv key = %q, want %q", sent.ConvKey, wantKey)
	}

	// 双方拉到同一个会话
	history, err := msgSvc.DirectHistory(ctx, carol.ID, alice.ID, 20, 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history.Messages) != 1 || history.Messages[0].Content != "hi" {
		t.Fatalf("history = %+v, want the sent message", history.Messages)
	}

	// 只有发送者能删
	if err := msgSvc.DeleteDirectMessage(ctx, carol.ID, sent.ID, false); err == nil {
		t.Fatal("receiver delete should fail")
	}
	if err := msgSvc.DeleteDirectMessage(ctx, alice.ID, sent.ID, false); err != nil {
		t.Fatalf("sender delete: %v", err)
	}
}
