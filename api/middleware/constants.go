package middleware

import "github.com/gin-gonic/gin"

// gin.Context 中使用的 Key，统一用常量避免拼写错误
const (
	// ContextKeyUserID 已验证的 Clerk 用户 ID（JWT subject）
	ContextKeyUserID = "userID"

	// ContextKeyOrgID 当前激活的 Clerk 组织 ID，可能为空
	ContextKeyOrgID = "orgID"
)

// SubjectID 返回已验证的用户 ID，未认证时返回 ""
func SubjectID(c *gin.Context) string {
	return c.GetString(ContextKeyUserID)
}

// OrganizationID 返回当前组织 ID，没有时返回 ""
func OrganizationID(c *gin.Context) string {
	return c.GetString(ContextKeyOrgID)
}
