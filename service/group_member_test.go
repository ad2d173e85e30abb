package service

import (
	"Circle/dao"
	"Circle/types"
	"testing"

	"gorm.io/gorm"
)

func newGroupServices(db *gorm.DB) (*GroupService, *GroupMemberService) {
	groupDAO := dao.NewGroupDAO(db)
	memberDAO := dao.NewGroupMemberDAO(db)
	groupSvc := &GroupService{
		DB:         db,
		GroupDAO:   groupDAO,
		MemberDAO:  memberDAO,
		MessageDAO: dao.NewGroupMessageDAO(db),
		Moderation: allowModeration(),
	}
	memberSvc := &GroupMemberService{
		DB:        db,
		GroupDAO:  groupDAO,
		MemberDAO: memberDAO,
	}
	return groupSvc, memberSvc
}

func TestGroupMembershipLifecycle(t *testing.T) {
	db := newTestDB(t)
	groupSvc, memberSvc := newGroupServices(db)
	ctx := t.Context()

	owner := createTestUser(t, db, "owner", false)
	member := createTestUser(t, db, "member", false)

	group, err := groupSvc.CreateGroup(ctx, owner.ID, &types.CreateGroupRequest{Name: "读书会"})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	if group.MemberCount != 1 {
		t.Fatalf("member count after create = %d, want 1", group.MemberCount)
	}

	// 申请入群 -> 待审核，计数不变
	resp, err := memberSvc.Join(ctx, member.ID, group.ID)
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	if resp.Status != "pending" {
		t.Fatalf("join status = %q, want pending", resp.Status)
	}
	got, _ := groupSvc.GetGroup(ctx, group.ID)
	if got.MemberCount != 1 {
		t.Errorf("member count while pending = %d, want 1", got.MemberCount)
	}

	// 重复申请被拒
	if _, err := memberSvc.Join(ctx, member.ID, group.ID); err == nil {
		t.Fatal("duplicate join should fail")
	}

	// 非群主不能审核
	if err := memberSvc.Accept(ctx, member.ID, group.ID, member.ID); err == nil {
		t.Fatal("non-owner accept should fail")
	}

	if err := memberSvc.Accept(ctx, owner.ID, group.ID, member.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}
	got, _ = groupSvc.GetGroup(ctx, group.ID)
	if got.MemberCount != 2 {
		t.Errorf("member count after accept = %d, want 2", got.MemberCount)
	}

	// 重复审核不能再加计数
	if err := memberSvc.Accept(ctx, owner.ID, group.ID, member.ID); err == nil {
		t.Fatal("second accept should fail")
	}
	got, _ = groupSvc.GetGroup(ctx, group.ID)
	if got.MemberCount != 2 {
		t.Errorf("member count after duplicate accept = %d, want 2", got.MemberCount)
	}

	// 群主不能退群
	if err := memberSvc.Leave(ctx, owner.ID, group.ID); err == nil {
		t.Fatal("owner leave should fail")
	}

	// 普通成员退群，计数 -1
	if err := memberSvc.Leave(ctx, member.ID, group.ID); err != nil {
		t.Fatalf("leave: %v", err)
	}
	got, _ = groupSvc.GetGroup(ctx, group.ID)
	if got.MemberCount != 1 {
		t.Errorf("member count after leave = %d, want 1", got.MemberCount)
	}
}

func TestGroupRemoveAndPendingList(t *testing.T) {
	db := newTestDB(t)
	groupSvc, memberSvc := newGroupServices(db)
	ctx := t.Context()

	owner := createTestUser(t, db, "owner", false)
	applicant := createTestUser(t, db, "applicant", false)

	group, err := groupSvc.CreateGroup(ctx, owner.ID, &types.CreateGroupRequest{Name: "g"})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	if _, err := memberSvc.Join(ctx, applicant.ID, group.ID); err != nil {
		t.Fatalf("join: %v", err)
	}

	pending, err := memberSvc.ListPending(ctx, owner.ID, group.ID)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 1 || pending[0].UserID != applicant.ID {
		t.Fatalf("pending list = %+v, want one entry for applicant", pending)
	}

	// 移除待审核记录等价于拒绝，计数不变
	if err := memberSvc.Remove(ctx, owner.ID, group.ID, applicant.ID); err != nil {
		t.Fatalf("remove pending: %v", err)
	}
	got, _ := groupSvc.GetGroup(ctx, group.ID)
	if got.MemberCount != 1 {
		t.Errorf("member count after reject = %d, want 1", got.MemberCount)
	}

	// 拒绝后可重新申请
	if _, err := memberSvc.Join(ctx, applicant.ID, group.ID); err != nil {
		t.Fatalf("re-join: %v", err)
	}
}

func TestDismissGroupCleansUp(t *testing.T) {
	db := newTestDB(t)
	groupSvc, memberSvc := newGroupServices(db)
	ctx := t.Context()

	owner := createTestUser(t, db, "owner", false)
	member := createTestUser(t, db, "member", false)

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

	// 非群主不能解散
	if err := groupSvc.DeleteGroup(ctx, member.ID, group.ID, false); err == nil {
		t.Fatal("non-owner dismiss should fail")
	}

	if err := groupSvc.DeleteGroup(ctx, owner.ID, group.ID, false); err != nil {
		t.Fatalf("dismiss: %v", err)
	}
	if _, err := groupSvc.GetGroup(ctx, group.ID); err == nil {
		t.Fatal("group should be gone")
	}
	if ok, _ := dao.NewGroupMemberDAO(db).IsMember(ctx, group.ID, member.ID); ok {
		t.Error("member rows should be removed with the group")
	}
}
