package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joblink-dev/admin-console/backend/internal/console"
	"github.com/joblink-dev/admin-console/backend/internal/domain"
)

func (h *Handler) GetPayments(w http.ResponseWriter, r *http.Request) {
	records, err := loadRecords(r.Context(), h.payments, r)
	if err != nil {
		h.listLoadError(w, r, err)
		return
	}

	filters, accumulate := parseFilters(r)

	h.successResponse(w, r, "获取支付列表成功", map[string]any{
		"page":  derivePage(records, filters, accumulate),
		"stats": console.PaymentStats(records, time.Now()),
	})
}

func (h *Handler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	// 详情请求可能先于列表请求到达，此时快照尚未加载
	if _, err := h.payments.Load(r.Context()); err != nil {
		h.listLoadError(w, r, err)
		return
	}

	record, ok := h.payments.Find(func(p domain.PaymentRecord) bool { return p.ID == id })
	if !ok {
		h.errorResponse(w, r, "支付记录不存在")
		return
	}

	h.successResponse(w, r, "获取支付详情成功", record)
}

func (h *Handler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req struct {
		Decision string `json:"decision" validate:"required,oneof=approve reject"`
		Note     string `json:"note"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if _, err := h.payments.Load(r.Context()); err != nil {
		h.listLoadError(w, r, err)
		return
	}

	record, ok := h.payments.Find(func(p domain.PaymentRecord) bool { return p.ID == id })
	if !ok {
		h.errorResponse(w, r, "支付记录不存在")
		return
	}

	// 只有待处理和处理中的支付才允许审核
	if record.CurrentStatus().IsTerminal() {
		h.errorResponse(w, r, "该支付已处于终态，无法再审核")
		return
	}

	approve := req.Decision == "approve"
	note := strings.TrimSpace(req.Note)

	// 拒绝必须填写原因，校验不通过时请求不会发往平台
	if !approve && note == "" {
		h.errorResponse(w, r, "拒绝支付必须填写拒绝原因")
		return
	}

	if !h.payments.BeginAction(id) {
		h.errorResponse(w, r, "该支付的审核正在处理中，请稍候")
		return
	}
	defer h.payments.EndAction(id)

	if err := h.platform.VerifyPayment(r.Context(), id, approve, note); err != nil {
		h.actionError(w, r, err, "审核支付失败")
		return
	}

	// 审核可能改变平台侧计算的派生字段，整体重新拉取而不是本地修补
	if _, err := h.payments.Refresh(r.Context()); err != nil {
		slog.Warn("审核后刷新支付列表失败", "error", err)
	}

	action := domain.AuditActionApprovePayment
	mailType := "payment_approved"
	if !approve {
		action = domain.AuditActionRejectPayment
		mailType = "payment_rejected"
	}

	h.recordAudit(r, action, "payment", id, note)

	// 有用户邮箱时通知用户审核结果，投递失败不影响审核本身
	if record.UserEmail != "" {
		mailMessage := domain.MailMessage{
			Type: mailType,
			To:   record.UserEmail,
			Data: domain.PaymentDecisionMailData{
				FullName: record.DisplayName(),
				PlanName: record.DisplayPlan(),
				Amount:   record.DisplayAmount(),
				Reason:   note,
			},
		}
		if err := h.publishMailMessage(mailMessage); err != nil {
			slog.Error("投递支付审核通知邮件失败", "payment", id, "error", err)
		}
	}

	h.successResponse(w, r, "支付审核完成", nil)
}
