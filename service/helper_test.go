package service

import (
	"Circle/config"
	"Circle/dao"
	"Circle/models"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:circle_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{}, &models.UserStats{}, &models.UserFollow{},
		&models.Post{}, &models.PostStats{}, &models.PostLike{}, &models.Comment{},
		&models.Group{}, &models.GroupMember{},
		&models.GroupMessage{}, &models.DirectMessage{}, &models.Image{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// newTestRedis 指向不存在的地址。缓存路径都是尽力而为，失效时业务照常
func newTestRedis() *redis.Client {
	return redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 10 * time.Millisecond})
}

// allowModeration 审核关闭，全部放行
func allowModeration() IModerationService {
	return NewModerationService(&config.Moderation{})
}

func createTestUser(t *testing.T, db *gorm.DB, handle string, private bool) *models.User {
	t.Helper()
	now := time.Now()
	u := &models.User{
		Handle:       handle,
		Nickname:     handle,
		IsPrivate:    private,
		PasswordHash: "x",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user %s: %v", handle, err)
	}
	if err := dao.NewUserStatsDAO(db).EnsureRow(t.Context(), u.ID); err != nil {
		t.Fatalf("ensure stats row: %v", err)
	}
	return u
}

func newFollowService(db *gorm.DB) *FollowService {
	return &FollowService{
		DB:        db,
		FollowDAO: dao.NewUserFollowDAO(db),
		StatsDAO:  dao.NewUserStatsDAO(db),
		UserDAO:   dao.NewUsers(db),
	}
}

func newPostService(db *gorm.DB) *PostService {
	perm := &PermService{UserDAO: dao.NewUsers(db), FollowDAO: dao.NewUserFollowDAO(db)}
	userSvc := &UserService{UserDAO: dao.NewUsers(db), StatsDAO: dao.NewUserStatsDAO(db), PermService: perm}
	return &PostService{
		DB:          db,
		PostDAO:     dao.NewPostDAO(db),
		StatsDAO:    dao.NewPostStatsDAO(db),
		LikeDAO:     dao.NewPostLikeDAO(db),
		CommentDAO:  dao.NewCommentDAO(db),
		FollowDAO:   dao.NewUserFollowDAO(db),
		PermService: perm,
		UserService: userSvc,
		Moderation:  allowModeration(),
	}
}
