package console

import (
	"testing"
	"time"

	"github.com/joblink-dev/admin-console/backend/internal/domain"
)

func TestAssistantStats(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	today := now.Add(-time.Hour)
	lastWeek := now.AddDate(0, 0, -5)

	records := []domain.AssistantRecord{
		{ID: "a1", Status: "online", CreatedAt: timePtr(today)},
		{ID: "a2", Status: "busy", CreatedAt: timePtr(lastWeek)},
		{ID: "a3", Status: "away", CreatedAt: timePtr(lastWeek)},
		// 状态缺失或非法时按离线统计
		{ID: "a4", Status: "", CreatedAt: timePtr(lastWeek)},
		{ID: "a5", Status: "sleeping", CreatedAt: timePtr(today)},
	}

	stats := AssistantStats(records, now)
	if stats.Total != 5 {
		t.Errorf("Total = %d, 期望 5", stats.Total)
	}
	if stats.Online != 1 || stats.Busy != 1 || stats.Away != 1 || stats.Offline != 2 {
		t.Errorf("状态分布 = online %d busy %d away %d offline %d, 期望 1/1/1/2",
			stats.Online, stats.Busy, stats.Away, stats.Offline)
	}
	if stats.NewToday != 2 {
		t.Errorf("NewToday = %d, 期望 2", stats.NewToday)
	}
}

func TestPaymentStatsRevenueOnlyCompleted(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	created := timePtr(now.AddDate(0, 0, -2))

	records := []domain.PaymentRecord{
		{ID: "p1", Status: "completed", Amount: 100, CreatedAt: created},
		{ID: "p2", Status: "completed", Amount: 49.5, CreatedAt: created},
		{ID: "p3", Status: "pending", Amount: 200, CreatedAt: created},
		{ID: "p4", Status: "failed", Amount: 300, CreatedAt: created},
		{ID: "p5", Status: "canceled", Amount: 400, CreatedAt: created},
		{ID: "p6", Status: "processing", Amount: 500, CreatedAt: created},
		// 状态缺失时按待处理统计
		{ID: "p7", Status: "", Amount: 600, CreatedAt: created},
	}

	stats := PaymentStats(records, now)
	if stats.Total != 7 {
		t.Errorf("Total = %d, 期望 7", stats.Total)
	}
	if stats.Completed != 2 || stats.Pending != 2 || stats.Failed != 1 || stats.Canceled != 1 || stats.Processing != 1 {
		t.Errorf("状态分布 = completed %d pending %d failed %d canceled %d processing %d, 期望 2/2/1/1/1",
			stats.Completed, stats.Pending, stats.Failed, stats.Canceled, stats.Processing)
	}
	if stats.Revenue != 149.5 {
		t.Errorf("Revenue = %v, 期望 149.5", stats.Revenue)
	}
}

func TestUserStats(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	created := timePtr(now.AddDate(0, 0, -2))
	expires := timePtr(now.AddDate(0, 1, 0))

	records := []domain.UserRecord{
		{ID: "u1", Plan: &domain.SubscriptionPlan{Name: "Pro", ExpiresAt: expires}, AssistantID: "a1", CreatedAt: created},
		// 有名称但缺到期时间的套餐不算生效
		{ID: "u2", Plan: &domain.SubscriptionPlan{Name: "Basic"}, CreatedAt: created},
		{ID: "u3", Plan: nil, CreatedAt: created},
		{ID: "u4", Plan: &domain.SubscriptionPlan{}, CreatedAt: created},
	}

	stats := UserStats(records, now)
	if stats.Total != 4 {
		t.Errorf("Total = %d, 期望 4", stats.Total)
	}
	if stats.ActivePlan != 1 {
		t.Errorf("ActivePlan = %d, 期望 1", stats.ActivePlan)
	}
	if stats.NoPlan != 2 {
		t.Errorf("NoPlan = %d, 期望 2", stats.NoPlan)
	}
	if stats.WithAssistant != 1 {
		t.Errorf("WithAssistant = %d, 期望 1", stats.WithAssistant)
	}
}

// 统计基于未过滤的原始快照，与筛选结果无关
func TestStatsIgnoreFilters(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	records := testAssistants(now)

	filtered := Filter(records, NewFilters().WithCategory("online"), now)
	if len(filtered) != 1 {
		t.Fatalf("过滤后剩 %d 条, 期望 1 条", len(filtered))
	}

	stats := AssistantStats(records, now)
	if stats.Total != 2 {
		t.Errorf("Total = %d, 统计应该覆盖全部记录", stats.Total)
	}
}
