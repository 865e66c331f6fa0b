package entity

import "time"

// User 用户实体，对应 Clerk 认证用户的本地记录
// Email 和 OrganizationName 只从 Clerk 数据写入
type User struct {
	ID                string    `gorm:"primaryKey;size:36" json:"id"`
	ExternalSubjectID string    `gorm:"column:clerk_user_id;uniqueIndex;size:64;not null" json:"clerkUserId"`
	Email             string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	FirstName         *string   `gorm:"size:100" json:"firstName"`
	LastName          *string   `gorm:"size:100" json:"lastName"`
	CompanyName       *string   `gorm:"size:200" json:"companyName"`
	OrganizationName  *string   `gorm:"column:clerk_org_name;size:200" json:"clerkOrgName"`
	CreatedAt         time.Time `gorm:"autoCreateTime:false;not null" json:"createdAt"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime:false;not null" json:"updatedAt"`
}

// UserUpdate 对 User 的部分更新，nil 字段不修改
// 没有 Email 字段
type UserUpdate struct {
	FirstName        *string
	LastName         *string
	CompanyName      *string
	OrganizationName *string
	UpdatedAt        time.Time
}

// IsEmpty 是否没有任何数据字段需要更新（不计 UpdatedAt）
func (u UserUpdate) IsEmpty() bool {
	return u.FirstName == nil &&
		u.LastName == nil &&
		u.CompanyName == nil &&
		u.OrganizationName == nil
}

// ApplyTo 把已设置的字段复制到 user
func (u UserUpdate) ApplyTo(user *User) {
	if u.FirstName != nil {
		user.FirstName = u.FirstName
	}
	if u.LastName != nil {
		user.LastName = u.LastName
	}
	if u.CompanyName != nil {
		user.CompanyName = u.CompanyName
	}
	if u.OrganizationName != nil {
		user.OrganizationName = u.OrganizationName
	}
	if !u.UpdatedAt.IsZero() {
		user.UpdatedAt = u.UpdatedAt
	}
}
