package dao

import (
	"Circle/models"

	"gorm.io/gorm"
)

type ImageDAO struct {
	Repo[models.Image]
}

func NewImageDAO(db *gorm.DB) *ImageDAO {
	return &ImageDAO{Repo: NewRepo[models.Image](db)}
}
