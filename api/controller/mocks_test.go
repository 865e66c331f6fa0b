package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gitcraft-go-server/api/middleware"
	"gitcraft-go-server/bootstrap"
	"gitcraft-go-server/domain/provider"
	"gitcraft-go-server/repository"
	"gitcraft-go-server/usecase"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
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

func strPtr(s string) *string { return &s }

// ========== 测试夹具 ==========
// 真实的 UserUseCase 和 GORM Repository（内存 SQLite），Clerk 使用 Mock

type fixture struct {
	db      *gorm.DB
	idp     *MockIdentityProvider
	useCase *usecase.UserUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, bootstrap.Migrate(db))

	idp := new(MockIdentityProvider)
	return &fixture{
		db:      db,
		idp:     idp,
		useCase: usecase.NewUserUseCase(repository.NewUserRepository(db), idp, nil),
	}
}

// fakeAuth 替代 ClerkAuth：X-Test-Subject 和 X-Test-Org 头即为已验证身份
func fakeAuth(c *gin.Context) {
	if subject := c.GetHeader("X-Test-Subject"); subject != "" {
		c.Set(middleware.ContextKeyUserID, subject)
	}
	if org := c.GetHeader("X-Test-Org"); org != "" {
		c.Set(middleware.ContextKeyOrgID, org)
	}
	c.Next()
}

func (f *fixture) userRouter() *gin.Engine {
	uc := NewUserController(f.useCase)
	r := gin.New()
	user := r.Group("/api/user", fakeAuth)
	user.GET("/me", uc.GetMe)
	user.POST("/ensure", uc.Ensure)
	user.PATCH("/me", uc.PatchMe)
	return r
}

func serve(r http.Handler, method, path, subject, org, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if subject != "" {
		req.Header.Set("X-Test-Subject", subject)
	}
	if org != "" {
		req.Header.Set("X-Test-Org", org)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
