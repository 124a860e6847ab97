package main

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
)

// ============================================================================
// 持仓分布图表（按市值的柱状图）
// ============================================================================

const (
	chartWidth   = 64
	chartHeight  = 16
	chartMaxBars = 12 // 超过时只显示市值最大的前N条
)

// barPalette 柱状图循环配色
var barPalette = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("10")), // 绿色
	lipgloss.NewStyle().Foreground(lipgloss.Color("12")), // 蓝色
	lipgloss.NewStyle().Foreground(lipgloss.Color("11")), // 黄色
	lipgloss.NewStyle().Foreground(lipgloss.Color("13")), // 品红
	lipgloss.NewStyle().Foreground(lipgloss.Color("14")), // 青色
	lipgloss.NewStyle().Foreground(lipgloss.Color("9")),  // 红色
}

// buildAllocationChart 根据投影后的持仓构建市值分布柱状图
// 图表只读取投影结果，不触碰规范序列。
func (m *Model) buildAllocationChart(records []HoldingRecord) string {
	if len(records) == 0 {
		return m.getText("chart.empty")
	}

	// 投影默认按市值降序时，前N条即市值最大的持仓
	bars := records
	if len(bars) > chartMaxBars {
		bars = bars[:chartMaxBars]
	}

	bc := barchart.New(chartWidth, chartHeight)
	for i, record := range bars {
		style := barPalette[i%len(barPalette)]
		bc.Push(barchart.BarData{
			Label: record.Symbol,
			Values: []barchart.BarValue{
				{Name: record.Symbol, Value: record.Value, Style: style},
			},
		})
	}
	bc.Draw()

	return bc.View()
}

// viewAllocationChart 持仓分布图表视图
func (m *Model) viewAllocationChart() string {
	s := m.getText("chart.title") + "\n\n"

	records := m.projected()
	s += m.buildAllocationChart(records) + "\n\n"

	// 图例：符号 -> 市值
	var total float64
	for _, record := range records {
		total += record.Value
	}
	for i, record := range records {
		if i >= chartMaxBars {
			break
		}
		share := 0.0
		if total > 0 {
			share = record.Value / total * 100
		}
		style := barPalette[i%len(barPalette)]
		s += fmt.Sprintf("%s %-6s %12s  %5.1f%%\n",
			style.Render("■"), record.Symbol, m.formatMoney(record.Value), share)
	}

	s += "\n" + m.getText("chart.helpText") + "\n"
	return s
}

// handleAllocationChart 处理图表视图的键盘事件
func (m *Model) handleAllocationChart(key string) bool {
	switch key {
	case "esc", "q":
		m.state = HoldingsViewing
		return true
	}
	return false
}
