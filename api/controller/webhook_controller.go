package controller

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	domainErrors "gitcraft-go-server/domain/errors"
	"gitcraft-go-server/usecase"

	"github.com/gin-gonic/gin"
	svix "github.com/svix/svix-webhooks/go"
)

// WebhookController 处理 Clerk Webhook 回调
type WebhookController struct {
	userUseCase   *usecase.UserUseCase
	webhookSecret string
}

// NewWebhookController 构造函数
// secret 为空时跳过签名验证（仅限开发环境）
func NewWebhookController(userUseCase *usecase.UserUseCase, webhookSecret string) *WebhookController {
	return &WebhookController{
		userUseCase:   userUseCase,
		webhookSecret: webhookSecret,
	}
}

// ClerkWebhookPayload Clerk Webhook 事件结构
type ClerkWebhookPayload struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// clerkEventData 只读取事件中的用户 ID，资料本身从 Clerk 拉取
type clerkEventData struct {
	ID string `json:"id"`
}

// HandleClerkWebhook 处理 Clerk Webhook 回调
// POST /webhook/clerk
// 处理 user.created, user.updated, user.deleted 事件
func (wc *WebhookController) HandleClerkWebhook(c *gin.Context) {
	// 1. 读取原始请求体（签名校验要求逐字节一致）
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		slog.Error("read webhook body failed", "component", "webhook", "err", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: ErrInvalidBody, Message: "cannot read body"})
		return
	}

	// 2. 验证 Webhook 签名（使用 Svix SDK）
	if wc.webhookSecret != "" {
		wh, err := svix.NewWebhook(wc.webhookSecret)
		if err != nil {
			slog.Error("webhook verifier init failed", "component", "webhook", "err", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: string(domainErrors.KindInternal)})
			return
		}
		if err := wh.Verify(body, c.Request.Header); err != nil {
			slog.Warn("webhook signature rejected", "component", "webhook", "err", err)
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: string(domainErrors.KindUnauthenticated), Message: "invalid signature"})
			return
		}
	} else {
		slog.Warn("CLERK_WEBHOOK_SECRET not set, skipping signature verification", "component", "webhook")
	}

	// 3. 解析事件
	var payload ClerkWebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: ErrInvalidBody, Message: err.Error()})
		return
	}
	var data clerkEventData
	if len(payload.Data) > 0 {
		if err := json.Unmarshal(payload.Data, &data); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: ErrInvalidBody, Message: err.Error()})
			return
		}
	}

	slog.Info("webhook received", "component", "webhook", "type", payload.Type, "subject", data.ID)

	// 4. 根据事件类型处理
	switch payload.Type {
	case "user.created", "user.updated":
		if data.ID == "" {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: ErrInvalidBody, Message: "missing data.id"})
			return
		}
		if err := wc.syncUser(c, data.ID); err != nil {
			respondError(c, err)
			return
		}
	case "user.deleted":
		// 本地记录保留，删除交给管理命令处理
		slog.Info("user deleted upstream, keeping local record", "component", "webhook", "subject", data.ID)
	default:
		slog.Debug("ignoring webhook event", "component", "webhook", "type", payload.Type)
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

// syncUser 执行与 POST /api/user/ensure 相同的同步逻辑（不带 hints）
// 用户还没有邮箱时直接确认，避免 Clerk 重试；
// 之后的 user.updated 或 ensure 调用会创建记录
func (wc *WebhookController) syncUser(c *gin.Context, subjectID string) error {
	user, err := wc.userUseCase.Ensure(c.Request.Context(), subjectID, "", usecase.Hints{})
	if errors.Is(err, domainErrors.ErrEmailRequired) {
		slog.Warn("webhook user has no email, skipped", "component", "webhook", "subject", subjectID)
		return nil
	}
	if err != nil {
		return err
	}
	slog.Info("user synced from webhook", "component", "webhook", "subject", subjectID, "user_id", user.ID)
	return nil
}
