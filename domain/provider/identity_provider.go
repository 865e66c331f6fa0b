package provider

import "context"

// Profile 同步逻辑需要读取的身份提供方用户资料
type Profile struct {
	PrimaryEmail *string
	FirstName    *string
	LastName     *string
}

// Organization 身份提供方的组织，只使用名称
type Organization struct {
	Name *string
}

// IdentityProvider 外部身份提供方的只读接口
type IdentityProvider interface {
	GetUserProfile(ctx context.Context, subjectID string) (*Profile, error)
	GetOrganization(ctx context.Context, organizationID string) (*Organization, error)
}
