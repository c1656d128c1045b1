package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/joblink-dev/admin-console/backend/internal/console"
	"github.com/joblink-dev/admin-console/backend/internal/domain"
	"github.com/joblink-dev/admin-console/backend/internal/upstream"
)

// parseFilters 从查询参数中解析筛选条件。列表接口统一支持
// search、category、range、page、mode（pages 或 more）、refresh 参数。
func parseFilters(r *http.Request) (console.Filters, bool) {
	query := r.URL.Query()

	filters := console.NewFilters().
		WithSearch(query.Get("search")).
		WithCategory(query.Get("category")).
		WithRange(console.ParseDateRange(query.Get("range")))

	if pageParam := query.Get("page"); pageParam != "" {
		if page, err := strconv.Atoi(pageParam); err == nil {
			filters = filters.WithPage(page)
		}
	}

	accumulate := query.Get("mode") == "more"
	return filters, accumulate
}

func derivePage[T console.Record](records []T, filters console.Filters, accumulate bool) console.Result[T] {
	now := time.Now()
	if accumulate {
		return console.DeriveAccumulated(records, filters, now)
	}
	return console.Derive(records, filters, now)
}

// loadRecords 读取某类记录的快照，refresh=1 时跳过快照强制重新拉取
func loadRecords[T any](ctx context.Context, store *console.Store[T], r *http.Request) ([]T, error) {
	if r.URL.Query().Get("refresh") == "1" {
		return store.Refresh(ctx)
	}
	return store.Load(ctx)
}

// listLoadError 把读平台数据的失败翻译成给操作员看的提示，
// 快照此时已被清空，界面只会看到空集合，不会残留旧记录
func (h *Handler) listLoadError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, upstream.ErrUnauthorized):
		// 平台认证失效让前端跳回登录入口
		h.writeJSON(w, r, http.StatusUnauthorized, Response{
			Success: false,
			Message: "平台认证已失效，请重新登录",
			Data:    nil,
		})
	case errors.Is(err, upstream.ErrForbidden):
		h.errorResponse(w, r, "没有权限访问平台数据")
	case errors.Is(err, upstream.ErrNotFound):
		h.errorResponse(w, r, "平台接口不存在")
	case errors.Is(err, upstream.ErrUpstream):
		h.errorResponse(w, r, "平台服务暂时不可用，请稍后重试")
	default:
		h.errorResponse(w, r, "拉取平台数据失败")
	}
}

// actionError 处理写操作失败：本地状态保持不变，优先透传平台返回的信息
func (h *Handler) actionError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, upstream.ErrNoToken):
		h.errorResponse(w, r, "未配置平台服务令牌，无法执行该操作")
	case errors.Is(err, upstream.ErrUnauthorized):
		h.writeJSON(w, r, http.StatusUnauthorized, Response{
			Success: false,
			Message: "平台认证已失效，请重新登录",
			Data:    nil,
		})
	default:
		msg := err.Error()
		if msg == "" {
			msg = fallback
		}
		h.errorResponse(w, r, msg)
	}
}

// recordAudit 记录一条审计日志，写入失败只打日志，不影响主流程
func (h *Handler) recordAudit(r *http.Request, action, targetKind, targetID, detail string) {
	subString, _ := r.Context().Value(SubCtxKey).(string)
	operatorID, err := strconv.ParseInt(subString, 10, 64)
	if err != nil {
		slog.Error("审计日志缺少操作员信息", "action", action, "error", err)
		return
	}

	entry := &domain.AuditEntry{
		OperatorID: operatorID,
		Action:     action,
		TargetKind: targetKind,
		TargetID:   targetID,
		Detail:     detail,
	}

	if err := h.repository.CreateAuditEntry(entry); err != nil {
		slog.Error("写入审计日志失败", "action", action, "error", err)
	}
}

func (h *Handler) GetRecentAuditEntries(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		if parsed, err := strconv.Atoi(limitParam); err == nil && parsed > 0 && parsed <= 500 {
			limit = parsed
		}
	}

	entries, err := h.repository.GetRecentAuditEntries(limit)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取审计日志成功", entries)
}
