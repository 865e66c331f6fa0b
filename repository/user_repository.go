package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gitcraft-go-server/domain/entity"
	domainErrors "gitcraft-go-server/domain/errors"
	domainRepo "gitcraft-go-server/domain/repository"

	"gorm.io/gorm"
)

// userRepository UserRepository 的 GORM 实现
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 构造函数
func NewUserRepository(db *gorm.DB) domainRepo.UserRepository {
	return &userRepository{db: db}
}

// FindByExternalID 按 Clerk 用户 ID 查询用户
func (r *userRepository) FindByExternalID(ctx context.Context, subjectID string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Where("clerk_user_id = ?", subjectID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // nil 表示不存在，由调用方决定如何处理
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Insert 新建记录
// ⚠️ 这里不能用 Save：并发竞争失败时 Save 会变成覆盖写
func (r *userRepository) Insert(ctx context.Context, user *entity.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Update 只写入 update 中给出的列，并在同一事务内重新读取，
// 保证调用方拿到的就是库里存的值
func (r *userRepository) Update(ctx context.Context, subjectID string, update entity.UserUpdate) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entity.User{}).
			Where("clerk_user_id = ?", subjectID).
			Updates(updateColumns(update))
		if result.Error != nil {
			return translateError(result.Error)
		}
		// MySQL 的 RowsAffected 统计的是实际变更行数而非匹配行数，
		// 记录是否存在以重新读取的结果为准
		err := tx.Where("clerk_user_id = ?", subjectID).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainErrors.ErrUserNotFound
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// updateColumns 把 UserUpdate 转成 GORM 列映射
// 用 map 而不是 struct，空字符串才会被写入
func updateColumns(update entity.UserUpdate) map[string]interface{} {
	cols := map[string]interface{}{}
	if update.FirstName != nil {
		cols["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		cols["last_name"] = *update.LastName
	}
	if update.CompanyName != nil {
		cols["company_name"] = *update.CompanyName
	}
	if update.OrganizationName != nil {
		cols["clerk_org_name"] = *update.OrganizationName
	}
	if !update.UpdatedAt.IsZero() {
		cols["updated_at"] = update.UpdatedAt
	}
	return cols
}

// translateError 把唯一约束冲突映射为 ErrConflict
// 支持 TranslateError 的驱动返回 gorm.ErrDuplicatedKey，其余靠错误信息匹配
func translateError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
		return fmt.Errorf("%w: %v", domainErrors.ErrConflict, err)
	}
	return err
}

func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}
