package bootstrap

import (
	"log/slog"

	"github.com/clerk/clerk-sdk-go/v2"
)

// InitClerk 初始化 Clerk SDK 全局 Key，jwt.Verify 用它获取签名公钥
// 身份提供方使用自己的客户端，不依赖这里
func InitClerk(secretKey string) {
	clerk.SetKey(secretKey)
	slog.Info("clerk initialized", "component", "bootstrap")
}
