package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/joblink-dev/admin-console/backend/internal/domain"
	"github.com/joblink-dev/admin-console/backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

func (h *Handler) GetAllOperators(w http.ResponseWriter, r *http.Request) {
	operators, err := h.repository.GetAllOperators()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取操作员列表成功", operators)
}

func (h *Handler) CreateOperator(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username" validate:"required"`
		FullName string `json:"fullName" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Role     string `json:"role" validate:"required,oneof=运营 超级管理员"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 生成随机密码
	password := utils.GenerateRandomPassword(h.config.NewOperator.PasswordLength)

	// 对密码进行哈希
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 插入操作员到数据库中
	operator := &domain.Operator{
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
		FullName:     req.FullName,
		Email:        req.Email,
		Role:         domain.OperatorRole(req.Role),
	}

	if err := h.repository.CreateOperator(operator); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "operators_username_key":
				h.badRequest(w, r, errors.New("用户名已存在"))
			case pgErr.ConstraintName == "operators_email_key":
				h.badRequest(w, r, errors.New("邮箱已存在"))
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// 把初始密码通过邮件发给新操作员
	mailMessage := domain.MailMessage{
		Type: "create_operator",
		To:   operator.Email,
		Data: domain.CreateOperatorMailData{
			FullName: req.FullName,
			Username: req.Username,
			Password: password,
		},
	}

	if err := h.publishMailMessage(mailMessage); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.recordAudit(r, domain.AuditActionCreateOperator, "operator", strconv.FormatInt(operator.ID, 10), operator.Username)

	// 成功响应
	h.successResponse(w, r, "操作员创建成功", operator)
}

func (h *Handler) GetOperatorInfo(w http.ResponseWriter, r *http.Request) {
	operator := r.Context().Value(OperatorInfoCtx).(*domain.Operator)
	h.successResponse(w, r, "获取操作员信息成功", operator)
}

func (h *Handler) UpdateOperator(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName *string `json:"fullName"`
		Email    *string `json:"email" validate:"omitempty,email"`
		Role     *string `json:"role" validate:"omitempty,oneof=运营 超级管理员"`
		IsActive *bool   `json:"isActive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	operator := r.Context().Value(OperatorInfoCtx).(*domain.Operator)

	if req.FullName != nil {
		operator.FullName = *req.FullName
	}
	if req.Email != nil {
		operator.Email = *req.Email
	}
	if req.Role != nil {
		operator.Role = domain.OperatorRole(*req.Role)
	}
	if req.IsActive != nil {
		operator.IsActive = *req.IsActive
	}

	if err := h.repository.UpdateOperator(operator); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "operators_email_key":
				h.badRequest(w, r, errors.New("邮箱已存在"))
			case pgErr.ConstraintName == "operators_username_key":
				h.badRequest(w, r, errors.New("用户名已存在"))
			default:
				h.internalServerError(w, r, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "更新操作员信息失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.recordAudit(r, domain.AuditActionUpdateOperator, "operator", strconv.FormatInt(operator.ID, 10), operator.Username)

	h.successResponse(w, r, "更新操作员信息成功", operator)
}

func (h *Handler) DeleteOperator(w http.ResponseWriter, r *http.Request) {
	operator := r.Context().Value(OperatorInfoCtx).(*domain.Operator)

	if err := h.repository.DeleteOperator(operator.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.recordAudit(r, domain.AuditActionDeleteOperator, "operator", strconv.FormatInt(operator.ID, 10), operator.Username)

	h.successResponse(w, r, "删除操作员成功", nil)
}

func (h *Handler) UpdateOperatorPassword(w http.ResponseWriter, r *http.Request) {
	operator := r.Context().Value(OperatorInfoCtx).(*domain.Operator)

	var req struct {
		Password string `json:"password" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 对密码进行哈希
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	operator.PasswordHash = string(hashedPassword)
	if err := h.repository.UpdateOperator(operator); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "修改密码成功", nil)
}
