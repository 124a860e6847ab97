package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
)

// ColumnID - 列的唯一标识符
type ColumnID string

// 持仓表格列ID常量
const (
	ColCursor  ColumnID = "cursor"
	ColSymbol  ColumnID = "symbol"
	ColName    ColumnID = "name"
	ColAmount  ColumnID = "amount"
	ColAvgCost ColumnID = "avg_cost"
	ColPrice   ColumnID = "current_price"
	ColValue   ColumnID = "value"
	ColPnL     ColumnID = "pnl"
)

// ColumnMetadata - 列的元数据
type ColumnMetadata struct {
	ID      ColumnID // 列ID
	I18nKey string   // 国际化翻译键
	SortKey *SortKey // 关联的排序键（nil表示不可排序）
}

// holdingsColumns 持仓表格的列定义（固定顺序）
var holdingsColumns = makeHoldingsColumns()

// makeHoldingsColumns 创建持仓列定义
func makeHoldingsColumns() []ColumnMetadata {
	sortBySymbol := SortBySymbol
	sortByValueDesc := SortByValueDesc
	sortByPnlDesc := SortByPnlDesc

	return []ColumnMetadata{
		{ID: ColCursor, I18nKey: ""}, // 光标列无需翻译
		{ID: ColSymbol, I18nKey: "col.symbol", SortKey: &sortBySymbol},
		{ID: ColName, I18nKey: "col.name"},
		{ID: ColAmount, I18nKey: "col.amount"},
		{ID: ColAvgCost, I18nKey: "col.avg_cost"},
		{ID: ColPrice, I18nKey: "col.current_price"},
		{ID: ColValue, I18nKey: "col.value", SortKey: &sortByValueDesc},
		{ID: ColPnL, I18nKey: "col.pnl", SortKey: &sortByPnlDesc},
	}
}

// holdingsHeaderRow 构建本地化的表头行
func (m *Model) holdingsHeaderRow() table.Row {
	row := make(table.Row, 0, len(holdingsColumns))
	for _, col := range holdingsColumns {
		if col.I18nKey == "" {
			row = append(row, "")
			continue
		}
		header := m.getText(col.I18nKey)
		// 标出当前排序列（盈亏列同时覆盖升序和降序）
		if col.SortKey != nil && *col.SortKey == m.sortKey {
			header += " *"
		} else if col.ID == ColPnL && m.sortKey == SortByPnlAsc {
			header += " *"
		}
		row = append(row, header)
	}
	return row
}

// tableStyleFromConfig 根据配置返回 go-pretty 表格样式
func tableStyleFromConfig(config Config) table.Style {
	switch config.Display.TableStyle {
	case "bold":
		return table.StyleBold
	case "simple":
		return table.StyleDefault
	default:
		return table.StyleLight
	}
}
