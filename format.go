package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/text"
)

// ============================================================================
// 金额/盈亏格式化函数 - 支持多语言颜色方案
// 中文：红涨绿跌 | 英文：绿涨红跌
// ============================================================================

// formatMoney 按配置的小数位数格式化金额（无颜色）
func (m *Model) formatMoney(v float64) string {
	return fmt.Sprintf("%.*f", m.config.Display.DecimalPlaces, v)
}

// formatAmount 格式化持有数量（固定4位小数，足够覆盖碎币持仓）
func formatAmount(v float64) string {
	return fmt.Sprintf("%.4f", v)
}

// formatProfitWithColorLang 格式化盈亏金额（带颜色）
func (m *Model) formatProfitWithColorLang(profit float64) string {
	if m.language == English {
		// 英文：绿色盈利，红色亏损
		if profit >= 0 {
			return text.FgGreen.Sprintf("+%s", m.formatMoney(profit))
		}
		return text.FgRed.Sprint(m.formatMoney(profit))
	}
	// 中文：红色盈利，绿色亏损
	if profit >= 0 {
		return text.FgRed.Sprintf("+%s", m.formatMoney(profit))
	}
	return text.FgGreen.Sprint(m.formatMoney(profit))
}

// formatProfitRateWithColorLang 格式化盈亏比例（带颜色）
func (m *Model) formatProfitRateWithColorLang(rate float64) string {
	if m.language == English {
		if rate >= 0 {
			return text.FgGreen.Sprintf("+%.2f%%", rate)
		}
		return text.FgRed.Sprintf("%.2f%%", rate)
	}
	if rate >= 0 {
		return text.FgRed.Sprintf("+%.2f%%", rate)
	}
	return text.FgGreen.Sprintf("%.2f%%", rate)
}

// formatProfitWithColorZeroLang 格式化盈亏金额（零值显示白色）
func (m *Model) formatProfitWithColorZeroLang(profit float64) string {
	// 当数值接近0时（考虑浮点数精度），显示白色（无颜色）
	if abs(profit) < 0.001 {
		return m.formatMoney(profit)
	}
	return m.formatProfitWithColorLang(profit)
}

// formatProfitRateWithColorZeroLang 格式化盈亏比例（零值显示白色）
func (m *Model) formatProfitRateWithColorZeroLang(rate float64) string {
	if abs(rate) < 0.001 {
		return fmt.Sprintf("%.2f%%", rate)
	}
	return m.formatProfitRateWithColorLang(rate)
}

// ============================================================================
// 辅助函数
// ============================================================================

// abs 返回浮点数的绝对值
func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
