package dao

import (
	"Circle/models"
	"context"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{Repo: NewRepo[models.User](db)}
}

func (d *Users) GetByID(ctx context.Context, id uint64) (*models.User, error) {
	return d.FindById(ctx, id)
}

func (d *Users) GetByHandle(ctx context.Context, handle string) (*models.User, error) {
	return d.FindByWhere(ctx, "handle = ?", handle)
}

// BatchGetByIDs 批量查询用户，返回 id -> user
func (d *Users) BatchGetByIDs(ctx context.Context, ids []uint64) (map[uint64]models.User, error) {
	result := make(map[uint64]models.User, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var users []models.User
	err := d.Db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		result[u.ID] = u
	}
	return result, nil
}

func (d *Users) UpdateProfile(ctx context.Context, id uint64, fields map[string]any) error {
	return d.Db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(fields).Error
}
