package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"gitcraft-go-server/domain/entity"
	domainErrors "gitcraft-go-server/domain/errors"

	"github.com/gin-gonic/gin"
)

// --- 响应结构定义 ---

// UserResponse /api/user 接口的成功响应
type UserResponse struct {
	OK   bool         `json:"ok"`
	User *entity.User `json:"user"`
}

// ErrorResponse 错误响应结构，Error 为机器可读的错误码
type ErrorResponse struct {
	OK      bool   `json:"ok"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ErrInvalidBody 请求体 JSON 格式错误
const ErrInvalidBody = "INVALID_BODY"

var kindStatus = map[domainErrors.Kind]int{
	domainErrors.KindUnauthenticated: http.StatusUnauthorized,
	domainErrors.KindEmailRequired:   http.StatusBadRequest,
	domainErrors.KindUserNotFound:    http.StatusNotFound,
	domainErrors.KindConflict:        http.StatusConflict,
	domainErrors.KindNoChanges:       http.StatusBadRequest,
	domainErrors.KindInternal:        http.StatusInternalServerError,
}

func respondUser(c *gin.Context, user *entity.User) {
	c.JSON(http.StatusOK, UserResponse{OK: true, User: user})
}

// respondError 把 UseCase 错误映射为状态码和错误码
// 内部错误的细节只写日志，不返回给客户端
func respondError(c *gin.Context, err error) {
	kind := domainErrors.KindOf(err)
	status, ok := kindStatus[kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	resp := ErrorResponse{Error: string(kind)}
	if kind == domainErrors.KindInternal {
		slog.Error("request failed", "component", "api", "path", c.FullPath(), "err", err)
	} else {
		resp.Message = rootMessage(err)
	}
	c.JSON(status, resp)
}

func respondInvalidBody(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: ErrInvalidBody, Message: err.Error()})
}

// rootMessage 返回最内层被包装错误的信息
func rootMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
