package controller

import (
	"errors"
	"io"

	"gitcraft-go-server/api/middleware"
	"gitcraft-go-server/usecase"

	"github.com/gin-gonic/gin"
)

// UserController 当前登录用户记录的 HTTP 控制器
type UserController struct {
	userUseCase *usecase.UserUseCase
}

// NewUserController 创建 UserController 实例
func NewUserController(userUseCase *usecase.UserUseCase) *UserController {
	return &UserController{userUseCase: userUseCase}
}

// UserFieldsRequest ensure 和 patch 的请求体，未传的字段为 nil
type UserFieldsRequest struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	CompanyName *string `json:"companyName"`
}

// GetMe 获取当前用户的本地记录
// GET /api/user/me
func (uc *UserController) GetMe(c *gin.Context) {
	user, err := uc.userUseCase.Fetch(c.Request.Context(), middleware.SubjectID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondUser(c, user)
}

// Ensure 创建或同步当前用户记录，请求体可选
// POST /api/user/ensure
func (uc *UserController) Ensure(c *gin.Context) {
	var req UserFieldsRequest
	if ok := bindOptionalJSON(c, &req); !ok {
		return
	}

	user, err := uc.userUseCase.Ensure(c.Request.Context(),
		middleware.SubjectID(c),
		middleware.OrganizationID(c),
		usecase.Hints{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			CompanyName: req.CompanyName,
		})
	if err != nil {
		respondError(c, err)
		return
	}
	respondUser(c, user)
}

// PatchMe 覆盖写入指定的资料字段
// PATCH /api/user/me
func (uc *UserController) PatchMe(c *gin.Context) {
	var req UserFieldsRequest
	if ok := bindOptionalJSON(c, &req); !ok {
		return
	}

	user, err := uc.userUseCase.Patch(c.Request.Context(),
		middleware.SubjectID(c),
		middleware.OrganizationID(c),
		usecase.PatchFields{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			CompanyName: req.CompanyName,
		})
	if err != nil {
		respondError(c, err)
		return
	}
	respondUser(c, user)
}

// bindOptionalJSON 解析请求体到 obj，空请求体等同于 {}
// JSON 格式错误时直接返回 400 并返回 false
func bindOptionalJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		respondInvalidBody(c, err)
		return false
	}
	return true
}
