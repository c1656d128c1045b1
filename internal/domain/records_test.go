package domain

import (
	"testing"
	"time"
)

func TestAdminRecordFallbacks(t *testing.T) {
	tests := []struct {
		name   string
		record AdminRecord
		want   string
	}{
		{"姓名齐全", AdminRecord{FirstName: "Jane", LastName: "Doe"}, "Jane Doe"},
		{"只有名", AdminRecord{FirstName: "Jane"}, "Jane"},
		{"缺姓名退回邮箱", AdminRecord{Email: "jane@example.com"}, "jane@example.com"},
		{"全部缺失", AdminRecord{}, FallbackNA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, 期望 %q", got, tt.want)
			}
		})
	}

	empty := AdminRecord{}
	if empty.DisplayEmail() != FallbackNA || empty.DisplayPhone() != FallbackNA || empty.DisplayRole() != FallbackNA {
		t.Error("空记录的展示字段都应该退回 N/A")
	}
}

func TestAssistantCurrentStatus(t *testing.T) {
	tests := []struct {
		status string
		want   AssistantStatus
	}{
		{"online", AssistantOnline},
		{"ONLINE", AssistantOnline},
		{"busy", AssistantBusy},
		{"away", AssistantAway},
		{"offline", AssistantOffline},
		{"", AssistantOffline},
		{"sleeping", AssistantOffline},
	}

	for _, tt := range tests {
		record := AssistantRecord{Status: tt.status}
		if got := record.CurrentStatus(); got != tt.want {
			t.Errorf("CurrentStatus(%q) = %q, 期望 %q", tt.status, got, tt.want)
		}
	}
}

func TestUserPlanCategories(t *testing.T) {
	expires := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	active := UserRecord{Plan: &SubscriptionPlan{Name: "Pro", ExpiresAt: &expires}}
	if !active.HasActivePlan() {
		t.Error("名称和到期时间都有的套餐应该算生效")
	}
	if !active.MatchCategory(CategoryActive) {
		t.Error("生效套餐应该匹配 active 分类")
	}
	if !active.MatchCategory("pro") {
		t.Error("应该按小写套餐名匹配分类")
	}

	// 缺到期时间的套餐既不算生效也不算无套餐
	noExpiry := UserRecord{Plan: &SubscriptionPlan{Name: "Basic"}}
	if noExpiry.HasActivePlan() {
		t.Error("缺到期时间的套餐不算生效")
	}
	if noExpiry.MatchCategory(CategoryNoPlan) {
		t.Error("有名称的套餐不算无套餐")
	}

	none := UserRecord{}
	if !none.MatchCategory(CategoryNoPlan) {
		t.Error("没有套餐的用户应该匹配 no_plan 分类")
	}
	if none.PlanName() != FallbackNoPlan {
		t.Errorf("PlanName() = %q, 期望 %q", none.PlanName(), FallbackNoPlan)
	}
}

func TestPaymentRecordFallbacks(t *testing.T) {
	empty := PaymentRecord{}
	if empty.DisplayName() != FallbackUnknown {
		t.Errorf("DisplayName() = %q, 期望 %q", empty.DisplayName(), FallbackUnknown)
	}
	if empty.DisplayPlan() != FallbackNoPlan {
		t.Errorf("DisplayPlan() = %q, 期望 %q", empty.DisplayPlan(), FallbackNoPlan)
	}
	if empty.DisplayAmount() != "0.00 USD" {
		t.Errorf("DisplayAmount() = %q, 期望 0.00 USD", empty.DisplayAmount())
	}
	if empty.CurrentStatus() != PaymentPending {
		t.Errorf("CurrentStatus() = %q, 期望默认待处理", empty.CurrentStatus())
	}

	record := PaymentRecord{Amount: 49.9, Currency: "EUR", UserEmail: "jane@example.com"}
	if record.DisplayAmount() != "49.90 EUR" {
		t.Errorf("DisplayAmount() = %q, 期望 49.90 EUR", record.DisplayAmount())
	}
	if record.DisplayName() != "jane@example.com" {
		t.Errorf("DisplayName() = %q, 期望退回邮箱", record.DisplayName())
	}
}

func TestPaymentStatusIsTerminal(t *testing.T) {
	tests := []struct {
		status PaymentStatus
		want   bool
	}{
		{PaymentCompleted, true},
		{PaymentFailed, true},
		{PaymentCanceled, true},
		{PaymentPending, false},
		{PaymentProcessing, false},
	}

	for _, tt := range tests {
		if got := tt.status.IsTerminal(); got != tt.want {
			t.Errorf("IsTerminal(%q) = %v, 期望 %v", tt.status, got, tt.want)
		}
	}
}

func TestCreatedTimeZeroWhenMissing(t *testing.T) {
	record := AdminRecord{}
	if !record.CreatedTime().IsZero() {
		t.Error("缺失创建时间应该返回零值")
	}

	created := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	record.CreatedAt = &created
	if !record.CreatedTime().Equal(created) {
		t.Errorf("CreatedTime() = %v, 期望 %v", record.CreatedTime(), created)
	}
}
