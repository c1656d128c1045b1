package console

import (
	"strings"
	"time"
)

// Record 是筛选管线对各类记录的统一要求：提供参与搜索的字段集合、
// 分类匹配逻辑和创建时间
type Record interface {
	SearchFields() []string
	MatchCategory(category string) bool
	CreatedTime() time.Time
}

type Result[T Record] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
}

func matchSearch[T Record](record T, term string) bool {
	for _, field := range record.SearchFields() {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// Filter 按搜索词、分类、时间范围的顺序过滤记录。
// 纯函数：同样的输入永远得到同样的输出，不修改传入的切片。
func Filter[T Record](records []T, f Filters, now time.Time) []T {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	category := strings.ToLower(strings.TrimSpace(f.Category))

	out := make([]T, 0, len(records))
	for _, record := range records {
		if term != "" && !matchSearch(record, term) {
			continue
		}
		if category != "" && category != CategoryAll && !record.MatchCategory(category) {
			continue
		}
		if !MatchRange(record.CreatedTime(), f.Range, now) {
			continue
		}
		out = append(out, record)
	}

	return out
}

// Derive 桌面布局模式：过滤后取当前页对应的切片
func Derive[T Record](records []T, f Filters, now time.Time) Result[T] {
	filtered := Filter(records, f, now)

	total := len(filtered)
	totalPages := (total + PageSize - 1) / PageSize
	if totalPages == 0 {
		totalPages = 1
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := min(start+PageSize, total)

	return Result[T]{
		Items:      filtered[start:end],
		Page:       page,
		TotalPages: totalPages,
		TotalItems: total,
	}
}

// DeriveAccumulated 紧凑布局的“加载更多”模式：不翻页替换，
// 而是取前 page×PageSize 条不断累积
func DeriveAccumulated[T Record](records []T, f Filters, now time.Time) Result[T] {
	filtered := Filter(records, f, now)

	total := len(filtered)
	totalPages := (total + PageSize - 1) / PageSize
	if totalPages == 0 {
		totalPages = 1
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	end := min(page*PageSize, total)

	return Result[T]{
		Items:      filtered[:end],
		Page:       page,
		TotalPages: totalPages,
		TotalItems: total,
	}
}
