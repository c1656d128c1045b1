package console

import (
	"time"

	"github.com/joblink-dev/admin-console/backend/internal/domain"
)

// 统计数字回答“整个集合处于什么状态”，始终基于未过滤的原始快照计算，
// 与筛选管线回答的“现在应该展示什么”互不混用。

type AdminStatsData struct {
	Total    int `json:"total"`
	NewToday int `json:"newToday"`
}

func AdminStats(records []domain.AdminRecord, now time.Time) AdminStatsData {
	stats := AdminStatsData{Total: len(records)}
	for _, record := range records {
		if MatchRange(record.CreatedTime(), RangeToday, now) {
			stats.NewToday++
		}
	}
	return stats
}

type AssistantStatsData struct {
	Total    int `json:"total"`
	Online   int `json:"online"`
	Busy     int `json:"busy"`
	Away     int `json:"away"`
	Offline  int `json:"offline"`
	NewToday int `json:"newToday"`
}

func AssistantStats(records []domain.AssistantRecord, now time.Time) AssistantStatsData {
	stats := AssistantStatsData{Total: len(records)}
	for _, record := range records {
		switch record.CurrentStatus() {
		case domain.AssistantOnline:
			stats.Online++
		case domain.AssistantBusy:
			stats.Busy++
		case domain.AssistantAway:
			stats.Away++
		default:
			stats.Offline++
		}
		if MatchRange(record.CreatedTime(), RangeToday, now) {
			stats.NewToday++
		}
	}
	return stats
}

type UserStatsData struct {
	Total         int `json:"total"`
	ActivePlan    int `json:"activePlan"`
	NoPlan        int `json:"noPlan"`
	WithAssistant int `json:"withAssistant"`
	NewToday      int `json:"newToday"`
}

func UserStats(records []domain.UserRecord, now time.Time) UserStatsData {
	stats := UserStatsData{Total: len(records)}
	for _, record := range records {
		if record.HasActivePlan() {
			stats.ActivePlan++
		}
		if record.Plan == nil || record.Plan.Name == "" {
			stats.NoPlan++
		}
		if record.AssistantID != "" {
			stats.WithAssistant++
		}
		if MatchRange(record.CreatedTime(), RangeToday, now) {
			stats.NewToday++
		}
	}
	return stats
}

type PaymentStatsData struct {
	Total      int     `json:"total"`
	Pending    int     `json:"pending"`
	Processing int     `json:"processing"`
	Completed  int     `json:"completed"`
	Failed     int     `json:"failed"`
	Canceled   int     `json:"canceled"`
	Revenue    float64 `json:"revenue"`
	NewToday   int     `json:"newToday"`
}

func PaymentStats(records []domain.PaymentRecord, now time.Time) PaymentStatsData {
	stats := PaymentStatsData{Total: len(records)}
	for _, record := range records {
		switch record.CurrentStatus() {
		case domain.PaymentProcessing:
			stats.Processing++
		case domain.PaymentCompleted:
			stats.Completed++
			// 营收只累计已完成的支付
			stats.Revenue += record.Amount
		case domain.PaymentFailed:
			stats.Failed++
		case domain.PaymentCanceled:
			stats.Canceled++
		default:
			stats.Pending++
		}
		if MatchRange(record.CreatedTime(), RangeToday, now) {
			stats.NewToday++
		}
	}
	return stats
}
