package main

// ============================================================================
// 持仓表格滚动控制（基于投影后的列表）
// ============================================================================

// visibleWindow 根据滚动位置计算当前可见的行范围 [start, end)
func (m *Model) visibleWindow(total int) (int, int) {
	maxLines := m.config.Display.MaxLines
	if total <= maxLines {
		return 0, total
	}

	end := total - m.holdingsScrollPos
	start := end - maxLines
	if start < 0 {
		start = 0
		end = maxLines
	}
	return start, end
}

// scrollHoldingsUp 向上滚动持仓表格
func (m *Model) scrollHoldingsUp(total int) {
	if m.holdingsCursor > 0 {
		m.holdingsCursor--
	}
	m.adjustHoldingsScroll(total)
}

// scrollHoldingsDown 向下滚动持仓表格
func (m *Model) scrollHoldingsDown(total int) {
	if m.holdingsCursor < total-1 {
		m.holdingsCursor++
	}
	m.adjustHoldingsScroll(total)
}

// adjustHoldingsScroll 调整滚动位置，确保光标在可见范围内
func (m *Model) adjustHoldingsScroll(total int) {
	maxLines := m.config.Display.MaxLines
	if total <= maxLines {
		m.holdingsScrollPos = 0
		return
	}

	start, end := m.visibleWindow(total)

	// 光标超出可见范围的上边界，向上调整滚动位置
	if m.holdingsCursor < start {
		m.holdingsScrollPos = total - m.holdingsCursor - maxLines
		if m.holdingsScrollPos < 0 {
			m.holdingsScrollPos = 0
		}
	}

	// 光标超出可见范围的下边界，向下调整滚动位置
	if m.holdingsCursor >= end {
		m.holdingsScrollPos = total - m.holdingsCursor - 1
		if m.holdingsScrollPos < 0 {
			m.holdingsScrollPos = 0
		}
	}
}

// resetHoldingsCursor 重置表格光标和滚动位置到列表开头
func (m *Model) resetHoldingsCursor() {
	m.holdingsCursor = 0
	m.holdingsScrollPos = 0
	total := len(m.projected())
	maxLines := m.config.Display.MaxLines
	if total > maxLines {
		// 显示前N条：滚动位置设置为显示从索引0开始的N条
		m.holdingsScrollPos = total - maxLines
	}
}
