package domain

import (
	"time"
)

type OperatorRole string

const (
	RoleOperator   OperatorRole = "运营"
	RoleSuperAdmin OperatorRole = "超级管理员"
)

type Operator struct {
	ID           int64        `json:"id"`
	Username     string       `json:"username"`
	PasswordHash string       `json:"-"`
	FullName     string       `json:"fullName"`
	Email        string       `json:"email"`
	Role         OperatorRole `json:"role"`
	IsActive     bool         `json:"isActive"`
	CreatedAt    time.Time    `json:"createdAt"`
	Version      int32        `json:"-"`
}
