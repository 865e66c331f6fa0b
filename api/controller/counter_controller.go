package controller

import (
	"net/http"

	"gitcraft-go-server/internal/counter"

	"github.com/gin-gonic/gin"
)

// CounterController /api/test 下的诊断接口
type CounterController struct {
	store *counter.Store
}

// NewCounterController 创建 CounterController 实例
func NewCounterController(store *counter.Store) *CounterController {
	return &CounterController{store: store}
}

// UpdateSettingsRequest 两个字段都可省略
type UpdateSettingsRequest struct {
	Value *float64 `json:"value"`
	Step  *float64 `json:"step"`
}

// Ping 连通性检查
// GET /api/test/ping
func (cc *CounterController) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Count 返回当前值并自增
// GET /api/test/count
func (cc *CounterController) Count(c *gin.Context) {
	current, next := cc.store.ReadAndIncrement()
	c.JSON(http.StatusOK, gin.H{"count": current, "next": next})
}

// GetSettings 获取计数器设置
// GET /api/test/settings
func (cc *CounterController) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, cc.store.Settings())
}

// UpdateSettings 更新计数器设置
// POST /api/test/settings
func (cc *CounterController) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if ok := bindOptionalJSON(c, &req); !ok {
		return
	}
	c.JSON(http.StatusOK, cc.store.Update(req.Value, req.Step))
}
