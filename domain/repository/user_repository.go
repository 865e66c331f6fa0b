package repository

import (
	"context"

	"gitcraft-go-server/domain/entity"
)

// UserRepository 用户数据访问接口，以 Clerk 用户 ID 为键
// 底层存储必须保证用户 ID 和邮箱唯一
type UserRepository interface {
	// FindByExternalID 记录不存在时返回 (nil, nil)
	FindByExternalID(ctx context.Context, subjectID string) (*entity.User, error)

	// Insert 创建记录，唯一约束冲突返回 ErrConflict
	Insert(ctx context.Context, user *entity.User) error

	// Update 部分更新并返回更新后的记录
	// 没有匹配行返回 ErrUserNotFound，唯一约束冲突返回 ErrConflict
	Update(ctx context.Context, subjectID string, update entity.UserUpdate) (*entity.User, error)
}
