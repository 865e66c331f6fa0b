package identity

import (
	"context"
	"fmt"

	"gitcraft-go-server/domain/provider"

	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/clerk/clerk-sdk-go/v2/organization"
	"github.com/clerk/clerk-sdk-go/v2/user"
)

// ClerkProvider 通过 Clerk Backend API 读取用户和组织
// 持有自己的客户端，不依赖 SDK 的全局 backend
type ClerkProvider struct {
	users *user.Client
	orgs  *organization.Client
}

// NewClerkProvider 根据配置（密钥、可选的 API 地址）创建客户端
func NewClerkProvider(config *clerk.ClientConfig) *ClerkProvider {
	return &ClerkProvider{
		users: user.NewClient(config),
		orgs:  organization.NewClient(config),
	}
}

// NewClerkProviderFromKey 生产环境使用的快捷构造
func NewClerkProviderFromKey(secretKey string) *ClerkProvider {
	config := &clerk.ClientConfig{}
	config.Key = clerk.String(secretKey)
	return NewClerkProvider(config)
}

// GetUserProfile 实现 provider.IdentityProvider
func (p *ClerkProvider) GetUserProfile(ctx context.Context, subjectID string) (*provider.Profile, error) {
	u, err := p.users.Get(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("clerk get user %s: %w", subjectID, err)
	}
	return &provider.Profile{
		PrimaryEmail: PrimaryEmail(u),
		FirstName:    u.FirstName,
		LastName:     u.LastName,
	}, nil
}

// GetOrganization 实现 provider.IdentityProvider
func (p *ClerkProvider) GetOrganization(ctx context.Context, organizationID string) (*provider.Organization, error) {
	org, err := p.orgs.Get(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("clerk get organization %s: %w", organizationID, err)
	}
	name := org.Name
	return &provider.Organization{Name: &name}, nil
}

// PrimaryEmail 优先返回主邮箱，其次第一个邮箱，都没有时返回 nil
func PrimaryEmail(u *clerk.User) *string {
	if u == nil || len(u.EmailAddresses) == 0 {
		return nil
	}
	if u.PrimaryEmailAddressID != nil {
		for _, addr := range u.EmailAddresses {
			if addr != nil && addr.ID == *u.PrimaryEmailAddressID && addr.EmailAddress != "" {
				email := addr.EmailAddress
				return &email
			}
		}
	}
	for _, addr := range u.EmailAddresses {
		if addr != nil && addr.EmailAddress != "" {
			email := addr.EmailAddress
			return &email
		}
	}
	return nil
}
