package console

import (
	"strings"
	"time"
)

// 每页固定展示 10 条记录
const PageSize = 10

const CategoryAll = "all"

type DateRange string

const (
	RangeAll        DateRange = "all"
	RangeToday      DateRange = "today"
	RangeYesterday  DateRange = "yesterday"
	RangeLast7Days  DateRange = "7days"
	RangeLast30Days DateRange = "30days"
)

// ParseDateRange 把查询参数解析成时间范围，无法识别时退回 all
func ParseDateRange(value string) DateRange {
	switch DateRange(strings.ToLower(value)) {
	case RangeToday:
		return RangeToday
	case RangeYesterday:
		return RangeYesterday
	case RangeLast7Days:
		return RangeLast7Days
	case RangeLast30Days:
		return RangeLast30Days
	}
	return RangeAll
}

type Filters struct {
	Search   string
	Category string
	Range    DateRange
	Page     int
}

func NewFilters() Filters {
	return Filters{
		Category: CategoryAll,
		Range:    RangeAll,
		Page:     1,
	}
}

// 修改任何一个筛选条件都会把页码重置回第一页

func (f Filters) WithSearch(search string) Filters {
	f.Search = search
	f.Page = 1
	return f
}

func (f Filters) WithCategory(category string) Filters {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		category = CategoryAll
	}
	f.Category = category
	f.Page = 1
	return f
}

func (f Filters) WithRange(r DateRange) Filters {
	f.Range = r
	f.Page = 1
	return f
}

func (f Filters) WithPage(page int) Filters {
	if page < 1 {
		page = 1
	}
	f.Page = page
	return f
}

// MatchRange 以观察者本地时区的零点为界计算各个时间桶。
// yesterday 是今天零点之前的完整 24 小时，7days/30days 从今天零点往回数
// N 天且包含今天。
func MatchRange(created time.Time, r DateRange, now time.Time) bool {
	if r == RangeAll || r == "" {
		return true
	}

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch r {
	case RangeToday:
		return !created.Before(midnight)
	case RangeYesterday:
		return !created.Before(midnight.AddDate(0, 0, -1)) && created.Before(midnight)
	case RangeLast7Days:
		return !created.Before(midnight.AddDate(0, 0, -7))
	case RangeLast30Days:
		return !created.Before(midnight.AddDate(0, 0, -30))
	}

	return true
}
