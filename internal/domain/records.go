package domain

import (
	"fmt"
	"strings"
	"time"
)

// 平台接口返回的四类记录。所有可选字段缺失时都有固定的展示兜底值，
// 任何访问器都不会返回空白内容。

const (
	FallbackNA      = "N/A"
	FallbackUnknown = "Unknown"
	FallbackNoPlan  = "No Plan"
	DefaultCurrency = "USD"
	CategoryActive  = "active"
	CategoryNoPlan  = "no_plan"
)

type AssistantStatus string

const (
	AssistantOnline  AssistantStatus = "online"
	AssistantOffline AssistantStatus = "offline"
	AssistantBusy    AssistantStatus = "busy"
	AssistantAway    AssistantStatus = "away"
)

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentCompleted  PaymentStatus = "completed"
	PaymentFailed     PaymentStatus = "failed"
	PaymentCanceled   PaymentStatus = "canceled"
)

// IsTerminal 表示支付已经进入终态，不再允许审核操作
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case PaymentCompleted, PaymentFailed, PaymentCanceled:
		return true
	}
	return false
}

type AdminRecord struct {
	ID        string     `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Role      string     `json:"role"`
	CreatedAt *time.Time `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// DisplayName 优先显示姓名，缺失时退回邮箱
func (a AdminRecord) DisplayName() string {
	name := strings.TrimSpace(a.FirstName + " " + a.LastName)
	if name != "" {
		return name
	}
	if a.Email != "" {
		return a.Email
	}
	return FallbackNA
}

func (a AdminRecord) DisplayEmail() string {
	if a.Email == "" {
		return FallbackNA
	}
	return a.Email
}

func (a AdminRecord) DisplayPhone() string {
	if a.Phone == "" {
		return FallbackNA
	}
	return a.Phone
}

func (a AdminRecord) DisplayRole() string {
	if a.Role == "" {
		return FallbackNA
	}
	return a.Role
}

func (a AdminRecord) SearchFields() []string {
	return []string{a.FirstName, a.LastName, a.Email, a.Phone, a.Role}
}

func (a AdminRecord) MatchCategory(category string) bool {
	return strings.ToLower(a.Role) == category
}

func (a AdminRecord) CreatedTime() time.Time {
	if a.CreatedAt == nil {
		return time.Time{}
	}
	return *a.CreatedAt
}

type AssistantNotification struct {
	ID        string     `json:"id"`
	Message   string     `json:"message"`
	CreatedAt *time.Time `json:"createdAt"`
}

type AssistantRecord struct {
	ID                   string                  `json:"id"`
	FirstName            string                  `json:"firstName"`
	LastName             string                  `json:"lastName"`
	Email                string                  `json:"email"`
	Status               string                  `json:"status"`
	AssignedClients      []string                `json:"assignedClients"`
	AssignedJobs         []string                `json:"assignedJobs"`
	Messages             []string                `json:"messages"`
	PendingNotifications []AssistantNotification `json:"pendingNotifications"`
	CreatedAt            *time.Time              `json:"createdAt"`
	UpdatedAt            *time.Time              `json:"updatedAt"`
}

func (a AssistantRecord) DisplayName() string {
	name := strings.TrimSpace(a.FirstName + " " + a.LastName)
	if name != "" {
		return name
	}
	if a.Email != "" {
		return a.Email
	}
	return FallbackNA
}

// CurrentStatus 统一小写，缺失或非法时默认离线
func (a AssistantRecord) CurrentStatus() AssistantStatus {
	switch AssistantStatus(strings.ToLower(a.Status)) {
	case AssistantOnline:
		return AssistantOnline
	case AssistantBusy:
		return AssistantBusy
	case AssistantAway:
		return AssistantAway
	}
	return AssistantOffline
}

func (a AssistantRecord) ClientCount() int {
	return len(a.AssignedClients)
}

func (a AssistantRecord) JobCount() int {
	return len(a.AssignedJobs)
}

func (a AssistantRecord) SearchFields() []string {
	return []string{a.FirstName, a.LastName, a.Email}
}

func (a AssistantRecord) MatchCategory(category string) bool {
	return string(a.CurrentStatus()) == category
}

func (a AssistantRecord) CreatedTime() time.Time {
	if a.CreatedAt == nil {
		return time.Time{}
	}
	return *a.CreatedAt
}

type SubscriptionPlan struct {
	Name      string     `json:"name"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

type UserRecord struct {
	ID                   string            `json:"id"`
	FirstName            string            `json:"firstName"`
	LastName             string            `json:"lastName"`
	Email                string            `json:"email"`
	Phone                string            `json:"phone"`
	Plan                 *SubscriptionPlan `json:"plan"`
	AssistantID          string            `json:"assistantId"`
	JobIDs               []string          `json:"jobIds"`
	PreferredIndustries  []string          `json:"preferredIndustries"`
	PreferredRoles       []string          `json:"preferredRoles"`
	PreferredLocations   []string          `json:"preferredLocations"`
	HasCV                bool              `json:"hasCv"`
	HasPortalCredentials bool              `json:"hasPortalCredentials"`
	CreatedAt            *time.Time        `json:"createdAt"`
	UpdatedAt            *time.Time        `json:"updatedAt"`
}

func (u UserRecord) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name != "" {
		return name
	}
	if u.Email != "" {
		return u.Email
	}
	return FallbackNA
}

func (u UserRecord) DisplayPhone() string {
	if u.Phone == "" {
		return FallbackNA
	}
	return u.Phone
}

func (u UserRecord) PlanName() string {
	if u.Plan == nil || u.Plan.Name == "" {
		return FallbackNoPlan
	}
	return u.Plan.Name
}

// HasActivePlan 要求套餐名称和到期时间同时存在
func (u UserRecord) HasActivePlan() bool {
	return u.Plan != nil && u.Plan.Name != "" && u.Plan.ExpiresAt != nil
}

func (u UserRecord) SearchFields() []string {
	fields := []string{u.FirstName, u.LastName, u.Email, u.Phone}
	fields = append(fields, u.PreferredIndustries...)
	fields = append(fields, u.PreferredRoles...)
	fields = append(fields, u.PreferredLocations...)
	return fields
}

func (u UserRecord) MatchCategory(category string) bool {
	switch category {
	case CategoryActive:
		return u.HasActivePlan()
	case CategoryNoPlan:
		return u.Plan == nil || u.Plan.Name == ""
	}
	return u.Plan != nil && strings.ToLower(u.Plan.Name) == category
}

func (u UserRecord) CreatedTime() time.Time {
	if u.CreatedAt == nil {
		return time.Time{}
	}
	return *u.CreatedAt
}

type PaymentRecord struct {
	ID             string     `json:"id"`
	UserID         string     `json:"userId"`
	UserName       string     `json:"userName"`
	UserEmail      string     `json:"userEmail"`
	UserPhone      string     `json:"userPhone"`
	PlanName       string     `json:"planName"`
	PlanPrice      float64    `json:"planPrice"`
	PlanDuration   string     `json:"planDuration"`
	Amount         float64    `json:"amount"`
	Currency       string     `json:"currency"`
	Status         string     `json:"status"`
	PaymentMethod  string     `json:"paymentMethod"`
	TransactionRef string     `json:"transactionRef"`
	CreatedAt      *time.Time `json:"createdAt"`
	CompletedAt    *time.Time `json:"completedAt"`
	UpdatedAt      *time.Time `json:"updatedAt"`
}

// DisplayName 优先显示冗余的用户姓名，其次邮箱
func (p PaymentRecord) DisplayName() string {
	if p.UserName != "" {
		return p.UserName
	}
	if p.UserEmail != "" {
		return p.UserEmail
	}
	return FallbackUnknown
}

func (p PaymentRecord) DisplayPlan() string {
	if p.PlanName == "" {
		return FallbackNoPlan
	}
	return p.PlanName
}

// CurrentStatus 统一小写，缺失或非法时默认待处理
func (p PaymentRecord) CurrentStatus() PaymentStatus {
	switch PaymentStatus(strings.ToLower(p.Status)) {
	case PaymentProcessing:
		return PaymentProcessing
	case PaymentCompleted:
		return PaymentCompleted
	case PaymentFailed:
		return PaymentFailed
	case PaymentCanceled:
		return PaymentCanceled
	}
	return PaymentPending
}

func (p PaymentRecord) DisplayCurrency() string {
	if p.Currency == "" {
		return DefaultCurrency
	}
	return p.Currency
}

func (p PaymentRecord) DisplayAmount() string {
	return fmt.Sprintf("%.2f %s", p.Amount, p.DisplayCurrency())
}

func (p PaymentRecord) DisplayMethod() string {
	if p.PaymentMethod == "" {
		return FallbackNA
	}
	return p.PaymentMethod
}

func (p PaymentRecord) DisplayTransactionRef() string {
	if p.TransactionRef == "" {
		return FallbackNA
	}
	return p.TransactionRef
}

func (p PaymentRecord) SearchFields() []string {
	return []string{p.UserName, p.UserEmail, p.UserPhone, p.PlanName, p.TransactionRef}
}

func (p PaymentRecord) MatchCategory(category string) bool {
	return string(p.CurrentStatus()) == category
}

func (p PaymentRecord) CreatedTime() time.Time {
	if p.CreatedAt == nil {
		return time.Time{}
	}
	return *p.CreatedAt
}
