package main

import (
	"reflect"
	"testing"
)

// projectionFixture 投影测试用的持仓数据
func projectionFixture() []HoldingRecord {
	return []HoldingRecord{
		{Symbol: "ETH", Name: "Ethereum", Value: 14000, PnL: 6000},
		{Symbol: "BTC", Name: "Bitcoin", Value: 32500, PnL: 17500},
		{Symbol: "DOGE", Name: "Dogecoin", Value: 600, PnL: -200},
		{Symbol: "ada", Name: "Cardano", Value: 1100, PnL: 650},
	}
}

func TestFilterHoldings(t *testing.T) {
	tests := []struct {
		query    string
		expected []string // 期望通过过滤的符号
		desc     string
	}{
		{"", []string{"ETH", "BTC", "DOGE", "ada"}, "空查询全部通过"},
		{"   ", []string{"ETH", "BTC", "DOGE", "ada"}, "纯空白查询全部通过"},
		{"btc", []string{"BTC"}, "小写查询匹配大写符号"},
		{"BTC", []string{"BTC"}, "大写查询匹配大写符号"},
		{"coin", []string{"BTC", "DOGE"}, "子串匹配名称 Bitcoin/Dogecoin"},
		{"ADA", []string{"ada"}, "大写查询匹配小写符号"},
		{"  eth  ", []string{"ETH"}, "查询首尾空白被去除"},
		{"xyz", []string{}, "无匹配返回空"},
	}

	for _, tt := range tests {
		filtered := filterHoldings(projectionFixture(), tt.query)

		got := make([]string, 0, len(filtered))
		for _, record := range filtered {
			got = append(got, record.Symbol)
		}
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("%s: filterHoldings(%q) 符号 = %v, 期望 %v", tt.desc, tt.query, got, tt.expected)
		}
	}
}

func TestSortOrdering(t *testing.T) {
	sorter := NewDefaultSorter()

	tests := []struct {
		key      SortKey
		expected []string
		desc     string
	}{
		{SortByValueDesc, []string{"BTC", "ETH", "ada", "DOGE"}, "市值从高到低"},
		{SortBySymbol, []string{"ada", "BTC", "DOGE", "ETH"}, "符号本地化升序（大小写不敏感）"},
		{SortByPnlDesc, []string{"BTC", "ETH", "ada", "DOGE"}, "盈亏从高到低"},
		{SortByPnlAsc, []string{"DOGE", "ada", "ETH", "BTC"}, "盈亏从低到高"},
	}

	for _, tt := range tests {
		records := projectionFixture()
		sorter.Sort(records, tt.key)

		got := make([]string, 0, len(records))
		for _, record := range records {
			got = append(got, record.Symbol)
		}
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("%s: Sort(%s) 顺序 = %v, 期望 %v", tt.desc, tt.key, got, tt.expected)
		}
	}
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		name     string
		expected SortKey
		desc     string
	}{
		{"value_desc", SortByValueDesc, "市值降序"},
		{"symbol", SortBySymbol, "符号升序"},
		{"pnl_desc", SortByPnlDesc, "盈亏降序"},
		{"pnl_asc", SortByPnlAsc, "盈亏升序"},
		{"bogus", SortByValueDesc, "未识别的键回退到市值降序"},
		{"", SortByValueDesc, "空字符串回退到市值降序"},
	}

	for _, tt := range tests {
		if got := ParseSortKey(tt.name); got != tt.expected {
			t.Errorf("%s: ParseSortKey(%q) = %v, 期望 %v", tt.desc, tt.name, got, tt.expected)
		}
	}
}

func TestProjectHoldingsDoesNotMutateInput(t *testing.T) {
	input := projectionFixture()
	original := cloneHoldings(input)

	projectHoldings(input, "coin", SortBySymbol, NewDefaultSorter())

	if !reflect.DeepEqual(input, original) {
		t.Errorf("projectHoldings 修改了输入序列: %v", input)
	}
}

func TestProjectHoldings(t *testing.T) {
	holdings := []HoldingRecord{
		{Symbol: "BTC", Name: "Bitcoin", Value: 100, PnL: 10},
		{Symbol: "ETH", Name: "Ethereum", Value: 50, PnL: -5},
	}
	sorter := NewDefaultSorter()

	// 默认排序：市值降序
	got := projectHoldings(holdings, "", SortByValueDesc, sorter)
	if len(got) != 2 || got[0].Symbol != "BTC" || got[1].Symbol != "ETH" {
		t.Errorf("默认投影 = %v, 期望 [BTC, ETH]", got)
	}

	// 过滤后只剩 ETH
	got = projectHoldings(holdings, "eth", SortByValueDesc, sorter)
	if len(got) != 1 || got[0].Symbol != "ETH" {
		t.Errorf("过滤 %q 后投影 = %v, 期望 [ETH]", "eth", got)
	}
}

func TestProjectHoldingsEmptyInput(t *testing.T) {
	got := projectHoldings(nil, "btc", SortByValueDesc, NewDefaultSorter())
	if len(got) != 0 {
		t.Errorf("空输入投影 = %v, 期望空序列", got)
	}
}
