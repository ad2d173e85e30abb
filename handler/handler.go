package handler

import (
	"Circle/pkg/response"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseUintParam 路径参数转 uint64
func parseUintParam(c *gin.Context, name string) (uint64, error) {
	raw := c.Param(name)
	if raw == "" {
		return 0, response.NewError(http.StatusBadRequest, fmt.Sprintf("缺少 %s", name))
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, response.NewError(http.StatusBadRequest, fmt.Sprintf("%s 格式错误", name))
	}
	return v, nil
}

// parseIntParam 路径参数转 int64，用于雪花ID
func parseIntParam(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	if raw == "" {
		return 0, response.NewError(http.StatusBadRequest, fmt.Sprintf("缺少 %s", name))
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, response.NewError(http.StatusBadRequest, fmt.Sprintf("%s 格式错误", name))
	}
	return v, nil
}
