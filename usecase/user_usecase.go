package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gitcraft-go-server/domain/entity"
	domainErrors "gitcraft-go-server/domain/errors"
	"gitcraft-go-server/domain/provider"
	"gitcraft-go-server/domain/repository"

	"github.com/google/uuid"
)

// 上报给 OutcomeRecorder 的操作名
const (
	OpFetch  = "fetch"
	OpEnsure = "ensure"
	OpPatch  = "patch"
)

// 成功时的结果，失败时上报错误 Kind
const (
	OutcomeFound     = "found"
	OutcomeCreated   = "created"
	OutcomeUpdated   = "updated"
	OutcomeUnchanged = "unchanged"
)

// OutcomeRecorder 每次操作接收一次观测
type OutcomeRecorder interface {
	Observe(operation, outcome string)
}

type noopRecorder struct{}

func (noopRecorder) Observe(string, string) {}

// PatchFields 用户可显式覆盖的字段
// 不包含 Email
type PatchFields struct {
	FirstName   *string
	LastName    *string
	CompanyName *string
}

// UserUseCase 用户业务逻辑层，负责本地记录与身份提供方的同步
// 不持有请求级状态，并发竞争由存储层唯一索引裁决
type UserUseCase struct {
	repo     repository.UserRepository
	idp      provider.IdentityProvider
	recorder OutcomeRecorder
	now      func() time.Time
	newID    func() string
}

// NewUserUseCase 构造函数，依赖注入；recorder 可为 nil
func NewUserUseCase(repo repository.UserRepository, idp provider.IdentityProvider, recorder OutcomeRecorder) *UserUseCase {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &UserUseCase{
		repo:     repo,
		idp:      idp,
		recorder: recorder,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

// Fetch 获取 subjectID 对应的记录，只读
func (uc *UserUseCase) Fetch(ctx context.Context, subjectID string) (user *entity.User, err error) {
	defer func() { uc.record(OpFetch, OutcomeFound, err) }()

	if subjectID == "" {
		return nil, domainErrors.ErrUnauthenticated
	}

	user, err = uc.repo.FindByExternalID(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, domainErrors.ErrUserNotFound
	}
	return user, nil
}

// Ensure 首次访问时创建记录，否则回填为空的用户字段并刷新组织名
// 输入不变时重复调用不会产生写操作
func (uc *UserUseCase) Ensure(ctx context.Context, subjectID, organizationID string, hints Hints) (user *entity.User, err error) {
	outcome := OutcomeUnchanged
	defer func() { uc.record(OpEnsure, outcome, err) }()

	if subjectID == "" {
		return nil, domainErrors.ErrUnauthenticated
	}

	// 1. 邮箱只从身份提供方获取，不接受客户端传入
	profile, err := uc.idp.GetUserProfile(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("get provider profile: %w", err)
	}
	if profile == nil || IsBlank(profile.PrimaryEmail) {
		return nil, domainErrors.ErrEmailRequired
	}
	email := strings.TrimSpace(*profile.PrimaryEmail)

	// 2. 回填候选值；3. 组织名（来自身份提供方）
	fallbacks := ResolveFallbacks(hints, profile)
	orgName := uc.resolveOrganizationName(ctx, organizationID)

	existing, err := uc.repo.FindByExternalID(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	// 4. 首次访问：创建
	if existing == nil {
		now := uc.now()
		user = &entity.User{
			ID:                uc.newID(),
			ExternalSubjectID: subjectID,
			Email:             email,
			FirstName:         fallbacks.FirstName,
			LastName:          fallbacks.LastName,
			CompanyName:       fallbacks.CompanyName,
			OrganizationName:  orgName,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if err := uc.repo.Insert(ctx, user); err != nil {
			return nil, fmt.Errorf("insert user: %w", err)
		}
		outcome = OutcomeCreated
		slog.Info("user created", "component", "usecase", "subject", subjectID, "user_id", user.ID)
		return user, nil
	}

	// 5. 已有记录：计算最小更新集，为空则不写
	update := ComputeUpdateSet(existing, fallbacks, orgName)
	if update.IsEmpty() {
		return existing, nil
	}
	update.UpdatedAt = uc.now()

	user, err = uc.repo.Update(ctx, subjectID, update)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	outcome = OutcomeUpdated
	return user, nil
}

// Patch 直接覆盖指定字段，不做回填检查
// 与 Ensure 不同，有效更新为空时返回校验错误
func (uc *UserUseCase) Patch(ctx context.Context, subjectID, organizationID string, fields PatchFields) (user *entity.User, err error) {
	defer func() { uc.record(OpPatch, OutcomeUpdated, err) }()

	if subjectID == "" {
		return nil, domainErrors.ErrUnauthenticated
	}

	update := entity.UserUpdate{
		FirstName:        trimmedKeepEmpty(fields.FirstName),
		LastName:         trimmedKeepEmpty(fields.LastName),
		CompanyName:      trimmedKeepEmpty(fields.CompanyName),
		OrganizationName: uc.resolveOrganizationName(ctx, organizationID),
	}
	if update.IsEmpty() {
		return nil, domainErrors.ErrNoChanges
	}
	update.UpdatedAt = uc.now()

	user, err = uc.repo.Update(ctx, subjectID, update)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// resolveOrganizationName 向身份提供方查询组织名
// 任何失败都降级为 nil，不会抛给调用方；名称为空时返回 ""
func (uc *UserUseCase) resolveOrganizationName(ctx context.Context, organizationID string) *string {
	if organizationID == "" {
		return nil
	}
	org, err := uc.idp.GetOrganization(ctx, organizationID)
	if err != nil {
		slog.Warn("organization lookup failed, continuing without it",
			"component", "usecase", "org_id", organizationID, "err", err)
		return nil
	}
	if org == nil {
		return nil
	}
	return trimmedKeepEmpty(org.Name)
}

func (uc *UserUseCase) record(operation, success string, err error) {
	if err != nil {
		uc.recorder.Observe(operation, string(domainErrors.KindOf(err)))
		return
	}
	uc.recorder.Observe(operation, success)
}

// trimmedKeepEmpty 去除首尾空白但保留空串，patch 可借此清空字段
func trimmedKeepEmpty(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	return &s
}
