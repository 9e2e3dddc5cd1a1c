// Package filter 是列表页的搜索、过滤和排序，职位和投递记录共用。
// 所有函数都不会修改传入的切片
package filter

import (
	"cmp"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/slice"
)

// Record 可以被搜索和排序的记录
type Record interface {
	// SearchFields 参与搜索的字段
	SearchFields() []string
	// Field 按名字取字段值，不存在时返回 nil
	Field(name string) any
}

// FieldMatcher 需要特殊过滤规则的记录可以实现它，handled 为 false 时退回到相等比较
type FieldMatcher interface {
	MatchField(name, value string) (matched bool, handled bool)
}

type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// Filters 字段名到取值，多个条件之间是 AND
type Filters map[string]string

// IsSentinel "all" "All Types" 和空字符串都表示不过滤
func IsSentinel(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "all", "all types":
		return true
	}
	return false
}

// MatchesSearch 不区分大小写的子串匹配，空的 term 匹配所有记录
func MatchesSearch(item Record, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range item.SearchFields() {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func MatchesFilters(item Record, filters Filters) bool {
	for name, want := range filters {
		if IsSentinel(want) {
			continue
		}
		if m, ok := item.(FieldMatcher); ok {
			if matched, handled := m.MatchField(name, want); handled {
				if !matched {
					return false
				}
				continue
			}
		}
		if toString(item.Field(name)) != want {
			return false
		}
	}
	return true
}

func toString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprint(val)
	}
}

// Apply 先搜索再过滤，保持原来的顺序
func Apply[T Record](items []T, term string, filters Filters) []T {
	return slice.FilterMap(items, func(idx int, src T) (T, bool) {
		return src, MatchesSearch(src, term) && MatchesFilters(src, filters)
	})
}

// SortBy 稳定排序，相等的元素保持原来的相对顺序
func SortBy[T Record](items []T, field string, order Order) []T {
	res := make([]T, len(items))
	copy(res, items)
	sort.SliceStable(res, func(i, j int) bool {
		c := compare(res[i].Field(field), res[j].Field(field))
		if order == Desc {
			return c > 0
		}
		return c < 0
	})
	return res
}

// compare nil 排在最前面，类型不一致的当作相等
func compare(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	switch x := a.(type) {
	case int64:
		if y, ok := b.(int64); ok {
			return cmp.Compare(x, y)
		}
	case int:
		if y, ok := b.(int); ok {
			return cmp.Compare(x, y)
		}
	case float64:
		if y, ok := b.(float64); ok {
			return cmp.Compare(x, y)
		}
	case string:
		if y, ok := b.(string); ok {
			return cmp.Compare(x, y)
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	case bool:
		if y, ok := b.(bool); ok {
			switch {
			case x == y:
				return 0
			case !x:
				return -1
			default:
				return 1
			}
		}
	}
	return 0
}

// SortState 列表头点击排序的状态
type SortState struct {
	Field string
	Order Order
}

// DefaultSortState 默认按 id 倒序
func DefaultSortState() SortState {
	return SortState{Field: "id", Order: Desc}
}

// Toggle 同一个字段切换顺序，新字段从升序开始
func (s SortState) Toggle(field string) SortState {
	if s.Field == field {
		if s.Order == Asc {
			return SortState{Field: field, Order: Desc}
		}
		return SortState{Field: field, Order: Asc}
	}
	return SortState{Field: field, Order: Asc}
}

// Sort 按当前状态排序
func Sort[T Record](items []T, s SortState) []T {
	return SortBy(items, s.Field, s.Order)
}
