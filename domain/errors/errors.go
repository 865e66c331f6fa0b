package errors

import "errors"

// ================= 领域错误 =================
// 用户接口可能返回的业务错误统一定义在这里，Controller 和 Repository 共用

var (
	// ErrUnauthenticated 请求中没有已验证的用户 ID
	ErrUnauthenticated = errors.New("unauthenticated: no verified subject id")

	// ErrEmailRequired 身份提供方没有该用户可用的邮箱
	ErrEmailRequired = errors.New("no email found on identity provider user")

	// ErrUserNotFound 本地没有该用户记录
	ErrUserNotFound = errors.New("user not found")

	// ErrConflict 唯一约束（用户 ID 或邮箱）冲突
	ErrConflict = errors.New("unique constraint failed")

	// ErrNoChanges patch 没有任何可更新的字段
	ErrNoChanges = errors.New("provide at least one of firstName, lastName, or companyName")
)

// ========== 错误类型 ==========
// 客户端按 Kind 判断，不依赖错误信息文本

type Kind string

const (
	KindUnauthenticated Kind = "UNAUTHENTICATED"
	KindEmailRequired   Kind = "EMAIL_REQUIRED"
	KindUserNotFound    Kind = "USER_NOT_FOUND"
	KindConflict        Kind = "CONFLICT"
	KindNoChanges       Kind = "NO_CHANGES"
	KindInternal        Kind = "INTERNAL_ERROR"
)

// KindOf 把（可能被包装的）错误映射为 Kind，未知错误归为内部错误
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return KindUnauthenticated
	case errors.Is(err, ErrEmailRequired):
		return KindEmailRequired
	case errors.Is(err, ErrUserNotFound):
		return KindUserNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrNoChanges):
		return KindNoChanges
	default:
		return KindInternal
	}
}
