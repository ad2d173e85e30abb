package service

import (
	"Circle/config"
	"Circle/dao"
	"Circle/models"
	"Circle/pkg/response"
	"Circle/pkg/snowflake"
	"Circle/types"
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "golang.org/x/image/webp"
)

var _ IUploadService = (*UploadService)(nil)

type IUploadService interface {
	UploadImage(ctx context.Context, userID uint64, fh *multipart.FileHeader) (*types.UploadResponse, error)
}

type UploadService struct {
	Config   *config.Upload
	ImageDAO *dao.ImageDAO
}

var allowedImageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

// UploadImage 图片落到本地磁盘，文件名用雪花ID防冲突
func (s *UploadService) UploadImage(ctx context.Context, userID uint64, fh *multipart.FileHeader) (*types.UploadResponse, error) {
	if fh.Size > s.Config.MaxSize {
		return nil, response.NewError(http.StatusBadRequest, "文件超出大小限制")
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedImageExts[ext] {
		return nil, response.NewError(http.StatusBadRequest, "不支持的图片格式")
	}

	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, s.Config.MaxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > s.Config.MaxSize {
		return nil, response.NewError(http.StatusBadRequest, "文件超出大小限制")
	}

	conf, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, response.NewError(http.StatusBadRequest, "无效的图片文件")
	}

	name := fmt.Sprintf("%d%s", snowflake.GenID(), ext)
	dir := filepath.Join(s.Config.Dir, time.Now().Format("20060102"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return nil, err
	}

	relPath := filepath.ToSlash(filepath.Join(time.Now().Format("20060102"), name))
	record := &models.Image{
		UserID:    userID,
		Path:      relPath,
		Width:     conf.Width,
		Height:    conf.Height,
		Size:      int64(len(data)),
		CreatedAt: time.Now(),
	}
	if err := s.ImageDAO.Create(ctx, record); err != nil {
		return nil, err
	}

	return &types.UploadResponse{
		ID:     record.ID,
		Path:   s.Config.BaseURL + "/" + relPath,
		Width:  conf.Width,
		Height: conf.Height,
		Size:   record.Size,
	}, nil
}
