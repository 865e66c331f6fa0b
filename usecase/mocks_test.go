package usecase

import (
	"context"
	"sync"

	"gitcraft-go-server/domain/entity"
	"gitcraft-go-server/domain/provider"

	"github.com/stretchr/testify/mock"
)

// ========== MockUserRepository ==========
// 实现 repository.UserRepository，用于 UserUseCase 单元测试

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByExternalID(ctx context.Context, subjectID string) (*entity.User, error) {
	args := m.Called(ctx, subjectID)
	// 处理 nil 的情况
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Insert(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, subjectID string, update entity.UserUpdate) (*entity.User, error) {
	args := m.Called(ctx, subjectID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// ========== MockIdentityProvider ==========

type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) GetUserProfile(ctx context.Context, subjectID string) (*provider.Profile, error) {
	args := m.Called(ctx, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.Profile), args.Error(1)
}

func (m *MockIdentityProvider) GetOrganization(ctx context.Context, organizationID string) (*provider.Organization, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.Organization), args.Error(1)
}

// ========== recordingRecorder ==========

type observation struct {
	operation string
	outcome   string
}

type recordingRecorder struct {
	mu  sync.Mutex
	obs []observation
}

func (r *recordingRecorder) Observe(operation, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.obs = append(r.obs, observation{operation, outcome})
}

func (r *recordingRecorder) last() observation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.obs[len(r.obs)-1]
}

func strPtr(s string) *string { return &s }
