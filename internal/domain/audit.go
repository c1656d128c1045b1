package domain

import (
	"time"
)

// 控制台上所有会改变平台状态的操作都会记录一条审计日志
type AuditEntry struct {
	ID         int64     `json:"id"`
	OperatorID int64     `json:"operatorId"`
	Action     string    `json:"action"`
	TargetKind string    `json:"targetKind"`
	TargetID   string    `json:"targetId"`
	Detail     string    `json:"detail"`
	CreatedAt  time.Time `json:"createdAt"`
}

const (
	AuditActionDeleteAdmin    = "delete_admin"
	AuditActionApprovePayment = "approve_payment"
	AuditActionRejectPayment  = "reject_payment"
	AuditActionCreateOperator = "create_operator"
	AuditActionUpdateOperator = "update_operator"
	AuditActionDeleteOperator = "delete_operator"
)
