package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joblink-dev/admin-console/backend/internal/console"
	"github.com/joblink-dev/admin-console/backend/internal/domain"
)

func (h *Handler) GetAdmins(w http.ResponseWriter, r *http.Request) {
	records, err := loadRecords(r.Context(), h.admins, r)
	if err != nil {
		h.listLoadError(w, r, err)
		return
	}

	filters, accumulate := parseFilters(r)

	h.successResponse(w, r, "获取管理员列表成功", map[string]any{
		"page":  derivePage(records, filters, accumulate),
		"stats": console.AdminStats(records, time.Now()),
	})
}

func (h *Handler) DeleteAdmin(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req struct {
		ConfirmName string `json:"confirmName" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if _, err := h.admins.Load(r.Context()); err != nil {
		h.listLoadError(w, r, err)
		return
	}

	record, ok := h.admins.Find(func(a domain.AdminRecord) bool { return a.ID == id })
	if !ok {
		h.errorResponse(w, r, "管理员不存在")
		return
	}

	// 删除前必须输入目标管理员的姓名或邮箱进行确认
	confirm := strings.TrimSpace(req.ConfirmName)
	if !strings.EqualFold(confirm, record.DisplayName()) && !strings.EqualFold(confirm, record.Email) {
		h.errorResponse(w, r, "确认名称与目标管理员不匹配")
		return
	}

	// 同一条记录的操作在处理完成前禁止重复提交
	if !h.admins.BeginAction(id) {
		h.errorResponse(w, r, "该管理员的操作正在处理中，请稍候")
		return
	}
	defer h.admins.EndAction(id)

	if err := h.platform.DeleteAdmin(r.Context(), id); err != nil {
		h.actionError(w, r, err, "删除管理员失败")
		return
	}

	// 删除成功后只做本地剔除，不重新拉取
	h.admins.RemoveFunc(func(a domain.AdminRecord) bool { return a.ID == id })

	h.recordAudit(r, domain.AuditActionDeleteAdmin, "admin", id, record.DisplayName())

	h.successResponse(w, r, "删除管理员成功", nil)
}
