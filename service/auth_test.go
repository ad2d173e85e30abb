package service

import (
	"Circle/config"
	"Circle/dao"
	"Circle/types"
	"strings"
	"testing"

	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	return &AuthService{
		Config: &config.Config{
			Jwt: &config.Jwt{
				Secret:        "test-secret",
				AccessExpire:  3600,
				RefreshExpire: 86400,
			},
		},
		UserDAO:  dao.NewUsers(db),
		StatsDAO: dao.NewUserStatsDAO(db),
		Hasher:   NewBcryptHasher(),
	}
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	ctx := t.Context()

	reg, err := svc.Register(ctx, &types.RegisterRequest{
		Handle:   "alice",
		Nickname: "Alice",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if reg.AccessToken == "" || reg.RefreshToken == "" {
		t.Fatal("expected both tokens on register")
	}

	// handle 占用
	if _, err := svc.Register(ctx, &types.RegisterRequest{Handle: "alice", Nickname: "A2", Password: "password123"}); err == nil {
		t.Fatal("duplicate handle should fail")
	}

	login, err := svc.Login(ctx, &types.LoginRequest{Handle: "alice", Password: "password123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if login.UserID != reg.UserID {
		t.Errorf("login user = %d, want %d", login.UserID, reg.UserID)
	}

	if _, err := svc.Login(ctx, &types.LoginRequest{Handle: "alice", Password: "wrong-password"}); err == nil {
		t.Fatal("wrong password should fail")
	}
	if _, err := svc.Login(ctx, &types.LoginRequest{Handle: "nobody", Password: "password123"}); err == nil {
		t.Fatal("unknown handle should fail")
	}
}

func TestRegisterGeneratesHandle(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	reg, err := svc.Register(t.Context(), &types.RegisterRequest{Nickname: "Anon", Password: "password123"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if !strings.HasPrefix(reg.Handle, "u_") {
		t.Errorf("generated handle = %q, want u_ prefix", reg.Handle)
	}
}

func TestRefreshTokens(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	ctx := t.Context()

	reg, err := svc.Register(ctx, &types.RegisterRequest{Handle: "bob", Nickname: "Bob", Password: "password123"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	refreshed, err := svc.Refresh(ctx, reg.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if refreshed.UserID != reg.UserID {
		t.Errorf("refreshed user = %d, want %d", refreshed.UserID, reg.UserID)
	}

	// access token 不能当 refresh token 用
	if _, err := svc.Refresh(ctx, reg.AccessToken); err == nil {
		t.Fatal("access token must not pass refresh")
	}
	if _, err := svc.Refresh(ctx, "garbage"); err == nil {
		t.Fatal("garbage token must fail")
	}
}
