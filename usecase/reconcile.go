package usecase

import (
	"strings"

	"gitcraft-go-server/domain/entity"
	"gitcraft-go-server/domain/provider"
)

// ========== 同步规则 ==========
// 用户可编辑字段（名、姓、公司名）只回填：为空时写入，不覆盖已有值。
// 身份提供方字段（组织名）只要能取到就刷新。

// Hints ensure 调用时客户端可选传入的值
type Hints struct {
	FirstName   *string
	LastName    *string
	CompanyName *string
}

// Fallbacks 同步时可用于回填的最终值
type Fallbacks struct {
	FirstName   *string
	LastName    *string
	CompanyName *string
}

// IsBlank v 为 nil 或只含空白时返回 true
func IsBlank(v *string) bool {
	return v == nil || strings.TrimSpace(*v) == ""
}

// trimmed 返回去除空白后的副本，空白时返回 nil
func trimmed(v *string) *string {
	if IsBlank(v) {
		return nil
	}
	s := strings.TrimSpace(*v)
	return &s
}

// firstPresent 返回第一个非空白值（已 trim）
func firstPresent(values ...*string) *string {
	for _, v := range values {
		if t := trimmed(v); t != nil {
			return t
		}
	}
	return nil
}

// ResolveFallbacks 选出回填值：客户端 hint 优先于身份提供方资料
// 身份提供方没有公司名，公司名只来自 hint
func ResolveFallbacks(hints Hints, profile *provider.Profile) Fallbacks {
	var profileFirst, profileLast *string
	if profile != nil {
		profileFirst, profileLast = profile.FirstName, profile.LastName
	}
	return Fallbacks{
		FirstName:   firstPresent(hints.FirstName, profileFirst),
		LastName:    firstPresent(hints.LastName, profileLast),
		CompanyName: firstPresent(hints.CompanyName),
	}
}

// ComputeUpdateSet 为已有记录计算最小更新集
// 结果不含 UpdatedAt，只有更新集非空时才由调用方打时间戳
func ComputeUpdateSet(existing *entity.User, fallbacks Fallbacks, orgName *string) entity.UserUpdate {
	var update entity.UserUpdate

	if IsBlank(existing.FirstName) && fallbacks.FirstName != nil {
		update.FirstName = fallbacks.FirstName
	}
	if IsBlank(existing.LastName) && fallbacks.LastName != nil {
		update.LastName = fallbacks.LastName
	}
	if IsBlank(existing.CompanyName) && fallbacks.CompanyName != nil {
		update.CompanyName = fallbacks.CompanyName
	}

	// 身份提供方字段，不论当前值都刷新
	if orgName != nil {
		update.OrganizationName = orgName
	}

	return update
}
