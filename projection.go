package main

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ============================================================================
// 视图投影引擎 - 过滤 + 排序的纯函数派生
// ============================================================================
//
// 投影永远返回新切片，规范序列及其记录不会被原地修改。
// 相等键的先后顺序交给 sort.Slice 决定，不做二次键打破（接受非确定性）。

// HoldingSorter 持仓排序接口
type HoldingSorter interface {
	Sort(records []HoldingRecord, key SortKey)
}

// DefaultSorter 默认排序实现（数值比较 + 本地化字符串比较）
type DefaultSorter struct {
	collator *collate.Collator
}

// NewDefaultSorter 创建默认排序器
// 符号排序使用本地化排序规则，使大小写和带变音符号的字符
// 按人类读者的期望排列，而不是按原始字节序。
func NewDefaultSorter() *DefaultSorter {
	return &DefaultSorter{
		collator: collate.New(language.English),
	}
}

// Sort 按排序键原地排序给定切片（调用方负责传入副本）
func (s *DefaultSorter) Sort(records []HoldingRecord, key SortKey) {
	sort.Slice(records, func(i, j int) bool {
		switch key {
		case SortBySymbol:
			return s.collator.CompareString(records[i].Symbol, records[j].Symbol) < 0
		case SortByPnlDesc:
			return records[i].PnL > records[j].PnL
		case SortByPnlAsc:
			return records[i].PnL < records[j].PnL
		default:
			// SortByValueDesc 以及所有未识别的键
			return records[i].Value > records[j].Value
		}
	})
}

// matchesQuery 检查记录的符号或名称是否包含查询子串（不区分大小写）
func matchesQuery(record HoldingRecord, query string) bool {
	return strings.Contains(strings.ToLower(record.Symbol), query) ||
		strings.Contains(strings.ToLower(record.Name), query)
}

// filterHoldings 按查询文本过滤持仓，返回新切片
// 查询去除首尾空白后为空时不过滤，所有记录通过。
func filterHoldings(records []HoldingRecord, query string) []HoldingRecord {
	query = strings.ToLower(strings.TrimSpace(query))

	filtered := make([]HoldingRecord, 0, len(records))
	if query == "" {
		filtered = append(filtered, records...)
		return filtered
	}

	for _, record := range records {
		if matchesQuery(record, query) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// projectHoldings 从（规范序列, 查询文本, 排序键）派生显示序列
// 三个输入任一变化时重新调用即可；任何输入（包括空序列）都不会失败。
func projectHoldings(records []HoldingRecord, query string, key SortKey, sorter HoldingSorter) []HoldingRecord {
	projected := filterHoldings(records, query)
	sorter.Sort(projected, key)
	return projected
}
