package handler

import (
	"Circle/config"
	"Circle/middleware"
	"Circle/pkg/context"
	"Circle/pkg/response"
	"Circle/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Upload struct {
	Config        *config.Config
	UploadService service.IUploadService
}

func (h *Upload) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.Config.Jwt.AccessTTL())
	g := r.Group("/v1/upload")
	g.POST("/image", authorize, context.Wrap(h.UploadImage))
}

// UploadImage multipart 表单字段 file
func (h *Upload) UploadImage(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "缺少上传文件")
	}

	resp, err := h.UploadService.UploadImage(c.Request.Context(), userID, fh)
	if err != nil {
		return err
	}

	response.Created(c, resp)
	return nil
}
