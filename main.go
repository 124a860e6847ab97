package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jedib0t/go-pretty/v6/table"
)

// globalModel 全局模型引用，供日志的 i18n 文本查找使用
var globalModel *Model

func main() {
	config := loadConfig()

	// 初始化日志系统（失败不阻塞启动，持久化与日志都是尽力而为）
	if err := InitLogger(logDir, logLevelFromConfig(config)); err != nil {
		fmt.Printf("Warning: failed to init logger: %v\n", err)
	}

	loadI18nFiles()

	// 组装核心：文件键值存储 + 种子数据，启动时加载一次
	store := NewHoldingsStore(NewFileKVStore(dataDir), seedHoldings())
	store.Load()

	m := Model{
		state:    MainMenu,
		config:   config,
		language: Language(config.System.Language),
		store:    store,
		summary:  seedSummary(),
		sorter:   NewDefaultSorter(),
		sortKey:  ParseSortKey(config.Display.DefaultSort),
	}
	if m.language != Chinese && m.language != English {
		m.language = English
	}
	globalModel = &m

	logInfoDirect("crypto-tracker started, %d holdings loaded", len(store.Holdings()))

	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logErrorDirect("program exited with error: %v", err)
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if globalLogger != nil {
		globalLogger.Sync()
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch m.state {
		case MainMenu:
			return m.handleMainMenu(msg)
		case HoldingsViewing:
			return m.handleHoldingsViewing(msg)
		case HoldingsSearching:
			return m.handleHoldingsSearching(msg)
		case HoldingsSorting:
			return m.handleHoldingsSorting(msg)
		case HoldingsEditing:
			return m.handleHoldingsEditing(msg)
		case RemovingHolding:
			return m.handleRemovingHolding(msg)
		case ResettingHoldings:
			return m.handleResettingHoldings(msg)
		case SummaryViewing:
			return m.handleSummaryViewing(msg)
		case AllocationChart:
			if m.handleAllocationChart(msg.String()) {
				return m, nil
			}
		case LanguageSelection:
			return m.handleLanguageSelection(msg)
		}
	}
	return m, nil
}

func (m *Model) View() string {
	switch m.state {
	case MainMenu:
		return m.viewMainMenu()
	case HoldingsViewing, HoldingsSearching:
		return m.viewHoldingsTable()
	case HoldingsSorting:
		return m.viewHoldingsSorting()
	case HoldingsEditing:
		return m.viewHoldingsEditing()
	case RemovingHolding:
		return m.viewRemovingHolding()
	case ResettingHoldings:
		return m.viewResettingHoldings()
	case SummaryViewing:
		return m.viewSummary()
	case AllocationChart:
		return m.viewAllocationChart()
	case LanguageSelection:
		return m.viewLanguageSelection()
	}
	return ""
}

// ============================================================================
// 投影辅助
// ============================================================================

// projected 从规范序列派生当前显示序列（每次渲染重新计算）
func (m *Model) projected() []HoldingRecord {
	return projectHoldings(m.store.Holdings(), m.searchInput, m.sortKey, m.sorter)
}

// enterHoldingsView 进入表格视图：视图查询状态每次重建
func (m *Model) enterHoldingsView() {
	m.state = HoldingsViewing
	m.searchInput = ""
	m.searchInputCursor = 0
	m.sortKey = ParseSortKey(m.config.Display.DefaultSort)
	m.message = ""
	m.resetHoldingsCursor()
}

// parseNumericInput 解析数值输入
// 非数值文本防御性地归零，而不是拒绝输入。
func parseNumericInput(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// ============================================================================
// 主菜单
// ============================================================================

// menuKeys 主菜单项的 i18n 键（固定顺序）
var menuKeys = []string{
	"menu.holdings",
	"menu.summary",
	"menu.chart",
	"menu.language",
	"menu.quit",
}

func (m *Model) handleMainMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k", "w":
		if m.currentMenuItem > 0 {
			m.currentMenuItem--
		}
	case "down", "j", "s":
		if m.currentMenuItem < len(menuKeys)-1 {
			m.currentMenuItem++
		}
	case "enter", " ":
		return m.executeMenuItem()
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) executeMenuItem() (tea.Model, tea.Cmd) {
	switch menuKeys[m.currentMenuItem] {
	case "menu.holdings":
		m.enterHoldingsView()
	case "menu.summary":
		m.state = SummaryViewing
	case "menu.chart":
		m.state = AllocationChart
	case "menu.language":
		m.state = LanguageSelection
		m.languageCursor = 0
		if m.language == English {
			m.languageCursor = 1
		}
	case "menu.quit":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) viewMainMenu() string {
	s := m.getText("menu.title") + "\n\n"

	for i, key := range menuKeys {
		prefix := "  "
		if i == m.currentMenuItem {
			prefix = "► "
		}
		s += prefix + m.getText(key) + "\n"
	}

	s += "\n" + m.getText("menu.helpText") + "\n"

	if m.message != "" {
		s += "\n" + m.message + "\n"
	}

	return s
}

// ============================================================================
// 持仓表格视图（只读投影 + 操作入口）
// ============================================================================

func (m *Model) handleHoldingsViewing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	total := len(m.projected())

	switch msg.String() {
	case "esc", "q":
		m.state = MainMenu
		m.message = ""
	case "up", "k":
		m.scrollHoldingsUp(total)
	case "down", "j":
		m.scrollHoldingsDown(total)
	case "/":
		m.state = HoldingsSearching
	case "s":
		m.state = HoldingsSorting
		m.sortCursor = int(m.sortKey)
	case "a":
		m.store.AddDefaultRow()
		m.message = m.getText("holdings.added")
		logDebug("log.intent.addRow", len(m.store.Holdings()))
	case "e":
		if len(m.store.Holdings()) == 0 {
			m.message = m.getText("holdings.empty")
			return m, nil
		}
		m.state = HoldingsEditing
		m.editingStep = 0
		m.cursor = 0
		m.message = ""
	case "d":
		if len(m.store.Holdings()) == 0 {
			m.message = m.getText("holdings.empty")
			return m, nil
		}
		m.state = RemovingHolding
		m.editingStep = 0 // 0=选择记录, 1=确认删除
		m.cursor = 0
		m.message = ""
	case "r":
		m.state = ResettingHoldings
		m.message = ""
	case "c":
		m.state = AllocationChart
	case "v":
		m.state = SummaryViewing
	}
	return m, nil
}

func (m *Model) viewHoldingsTable() string {
	s := m.getText("holdings.title") + "\n\n"

	projected := m.projected()

	// 搜索行：输入状态显示光标，否则显示当前查询
	if m.state == HoldingsSearching {
		s += m.getText("holdings.searchPrompt") + " " + formatTextWithCursor(m.searchInput, m.searchInputCursor) + "\n\n"
	} else if strings.TrimSpace(m.searchInput) != "" {
		s += fmt.Sprintf("%s %s\n\n", m.getText("holdings.currentFilter"), m.searchInput)
	}

	if len(projected) == 0 {
		s += m.getText("holdings.noMatch") + "\n\n"
		s += m.getText("holdings.helpText") + "\n"
		return s
	}

	t := table.NewWriter()
	t.SetStyle(tableStyleFromConfig(m.config))
	t.AppendHeader(m.holdingsHeaderRow())

	start, end := m.visibleWindow(len(projected))
	for i := start; i < end; i++ {
		record := projected[i]
		cursor := " "
		if i == m.holdingsCursor {
			cursor = "►"
		}
		t.AppendRow(table.Row{
			cursor,
			record.Symbol,
			record.Name,
			formatAmount(record.Amount),
			m.formatMoney(record.AvgCost),
			m.formatMoney(record.CurrentPrice),
			m.formatMoney(record.Value),
			m.formatProfitWithColorZeroLang(record.PnL),
		})
	}

	s += t.Render() + "\n"
	s += fmt.Sprintf("\n%s: %d/%d  |  %s: %s\n",
		m.getText("holdings.count"), len(projected), len(m.store.Holdings()),
		m.getText("holdings.sortedBy"), m.getText("sort."+m.sortKey.String()))
	s += "\n" + m.getText("holdings.helpText") + "\n"

	if m.message != "" {
		s += "\n" + m.message + "\n"
	}

	return s
}

// ============================================================================
// 搜索输入
// ============================================================================

func (m *Model) handleHoldingsSearching(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		// 保留查询返回表格
		m.state = HoldingsViewing
		m.resetHoldingsCursor()
		logDebug("log.intent.queryChange", m.searchInput)
		return m, nil
	case "esc":
		// 取消搜索并清空查询
		m.searchInput = ""
		m.searchInputCursor = 0
		m.state = HoldingsViewing
		m.resetHoldingsCursor()
		return m, nil
	}

	// 文本编辑：查询变化即时反映到投影
	if handleTextInput(msg, &m.searchInput, &m.searchInputCursor) {
		m.holdingsCursor = 0
		m.holdingsScrollPos = 0
	}
	return m, nil
}

// ============================================================================
// 排序菜单
// ============================================================================

// sortMenuKeys 排序菜单项（顺序与 SortKey 枚举一致）
var sortMenuKeys = []SortKey{SortByValueDesc, SortBySymbol, SortByPnlDesc, SortByPnlAsc}

func (m *Model) handleHoldingsSorting(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.state = HoldingsViewing
	case "up", "k", "w":
		if m.sortCursor > 0 {
			m.sortCursor--
		}
	case "down", "j", "s":
		if m.sortCursor < len(sortMenuKeys)-1 {
			m.sortCursor++
		}
	case "enter", " ":
		m.sortKey = sortMenuKeys[m.sortCursor]
		m.state = HoldingsViewing
		m.resetHoldingsCursor()
		logDebug("log.intent.sortChange", m.sortKey.String())
	}
	return m, nil
}

func (m *Model) viewHoldingsSorting() string {
	s := m.getText("sort.title") + "\n\n"

	for i, key := range sortMenuKeys {
		prefix := "  "
		if i == m.sortCursor {
			prefix = "► "
		}
		marker := ""
		if key == m.sortKey {
			marker = " ✓"
		}
		s += prefix + m.getText("sort."+key.String()) + marker + "\n"
	}

	s += "\n" + m.getText("sort.helpText") + "\n"
	return s
}

// ============================================================================
// 编辑流程（编辑视图使用规范序列，不经过投影）
// ============================================================================

// editFieldCount 逐字段编辑的步数：符号、名称、数量、成本价、现价
// Value/PnL 为透传字段，编辑流程不提供入口。
const editFieldCount = 5

func (m *Model) handleHoldingsEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	holdings := m.store.Holdings()

	switch msg.String() {
	case "esc":
		m.state = HoldingsViewing
		m.message = ""
		return m, nil
	case "up", "k":
		if m.editingStep == 0 && m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.editingStep == 0 && m.cursor < len(holdings)-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		return m.processEditingStep()
	}

	if m.editingStep > 0 {
		handleTextInput(msg, &m.editInput, &m.editInputCursor)
	}
	return m, nil
}

// processEditingStep 处理编辑流程的一步
// 每个字段在回车时立即通过 UpdateRow 提交（整表替换 + 尽力持久化）。
func (m *Model) processEditingStep() (tea.Model, tea.Cmd) {
	holdings := m.store.Holdings()

	if m.editingStep == 0 {
		if len(holdings) == 0 {
			m.state = HoldingsViewing
			return m, nil
		}
		m.selectedIndex = m.cursor
		m.editingStep = 1
		m.prefillEditInput()
		return m, nil
	}

	record := holdings[m.selectedIndex]
	var patch HoldingPatch
	switch m.editingStep {
	case 1:
		symbol := strings.TrimSpace(m.editInput)
		if symbol == "" {
			symbol = record.Symbol
		}
		patch.Symbol = &symbol
	case 2:
		name := strings.TrimSpace(m.editInput)
		if name == "" {
			name = record.Name
		}
		patch.Name = &name
	case 3:
		amount := parseNumericInput(m.editInput)
		patch.Amount = &amount
	case 4:
		avgCost := parseNumericInput(m.editInput)
		patch.AvgCost = &avgCost
	case 5:
		price := parseNumericInput(m.editInput)
		patch.CurrentPrice = &price
	}

	m.store.UpdateRow(m.selectedIndex, patch)
	logDebug("log.intent.updateRow", m.selectedIndex, m.editingStep)

	if m.editingStep < editFieldCount {
		m.editingStep++
		m.prefillEditInput()
		return m, nil
	}

	// 最后一个字段：回到表格视图
	m.state = HoldingsViewing
	m.message = fmt.Sprintf(m.getText("holdings.updated"), m.store.Holdings()[m.selectedIndex].Symbol)
	m.editingStep = 0
	m.editInput = ""
	m.editInputCursor = 0
	return m, nil
}

// prefillEditInput 用当前字段值预填输入框
func (m *Model) prefillEditInput() {
	record := m.store.Holdings()[m.selectedIndex]
	switch m.editingStep {
	case 1:
		m.editInput = record.Symbol
	case 2:
		m.editInput = record.Name
	case 3:
		m.editInput = formatAmount(record.Amount)
	case 4:
		m.editInput = m.formatMoney(record.AvgCost)
	case 5:
		m.editInput = m.formatMoney(record.CurrentPrice)
	}
	m.editInputCursor = len([]rune(m.editInput))
}

// editFieldLabel 当前编辑字段的本地化标签
func (m *Model) editFieldLabel() string {
	switch m.editingStep {
	case 1:
		return m.getText("col.symbol")
	case 2:
		return m.getText("col.name")
	case 3:
		return m.getText("col.amount")
	case 4:
		return m.getText("col.avg_cost")
	case 5:
		return m.getText("col.current_price")
	}
	return ""
}

func (m *Model) viewHoldingsEditing() string {
	s := m.getText("edit.title") + "\n\n"

	holdings := m.store.Holdings()

	if m.editingStep == 0 {
		s += m.getText("edit.selectPrompt") + "\n\n"
		for i, record := range holdings {
			prefix := "  "
			if i == m.cursor {
				prefix = "► "
			}
			s += fmt.Sprintf("%s%d. %s (%s) - %s: %s, %s: %s\n",
				prefix, i+1, record.Symbol, record.Name,
				m.getText("col.amount"), formatAmount(record.Amount),
				m.getText("col.avg_cost"), m.formatMoney(record.AvgCost))
		}
		s += "\n" + m.getText("edit.selectHelpText") + "\n"
		return s
	}

	record := holdings[m.selectedIndex]
	s += fmt.Sprintf("%s: %s (%s)\n", m.getText("edit.editing"), record.Symbol, record.Name)
	s += fmt.Sprintf("%s %d/%d\n\n", m.getText("edit.step"), m.editingStep, editFieldCount)
	s += fmt.Sprintf("%s: %s\n", m.editFieldLabel(), formatTextWithCursor(m.editInput, m.editInputCursor))
	s += "\n" + m.getText("edit.helpText") + "\n"

	if m.message != "" {
		s += "\n" + m.message + "\n"
	}

	return s
}

// ============================================================================
// 删除流程（选择 + 确认）
// ============================================================================

func (m *Model) handleRemovingHolding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	holdings := m.store.Holdings()

	switch msg.String() {
	case "esc", "q":
		m.state = HoldingsViewing
		m.message = ""
	case "up", "k":
		if m.editingStep == 0 && m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.editingStep == 0 && m.cursor < len(holdings)-1 {
			m.cursor++
		}
	case "n":
		if m.editingStep == 1 {
			m.editingStep = 0
		}
	case "enter", " ", "y":
		if m.editingStep == 0 {
			if msg.String() == "y" || len(holdings) == 0 {
				return m, nil
			}
			m.selectedIndex = m.cursor
			m.editingStep = 1
			return m, nil
		}
		// 已确认：执行删除
		removed := holdings[m.selectedIndex]
		m.store.RemoveRow(m.selectedIndex)
		logDebug("log.intent.removeRow", m.selectedIndex)
		m.state = HoldingsViewing
		m.message = fmt.Sprintf(m.getText("holdings.removed"), removed.Symbol, removed.Name)
		m.editingStep = 0
		m.resetHoldingsCursor()
	}
	return m, nil
}

func (m *Model) viewRemovingHolding() string {
	s := m.getText("remove.title") + "\n\n"

	holdings := m.store.Holdings()
	if len(holdings) == 0 {
		s += m.getText("holdings.empty") + "\n\n" + m.getText("remove.helpText") + "\n"
		return s
	}

	if m.editingStep == 0 {
		s += m.getText("remove.selectPrompt") + "\n\n"
		for i, record := range holdings {
			prefix := "  "
			if i == m.cursor {
				prefix = "► "
			}
			s += fmt.Sprintf("%s%d. %s (%s)\n", prefix, i+1, record.Symbol, record.Name)
		}
		s += "\n" + m.getText("remove.helpText") + "\n"
		return s
	}

	record := holdings[m.selectedIndex]
	s += fmt.Sprintf(m.getText("remove.confirmPrompt"), record.Symbol, record.Name) + "\n"
	s += "\n" + m.getText("remove.confirmHelpText") + "\n"
	return s
}

// ============================================================================
// 重置流程（确认后回到种子数据）
// ============================================================================

func (m *Model) handleResettingHoldings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.store.Reset()
		m.state = HoldingsViewing
		m.message = m.getText("holdings.resetDone")
		m.resetHoldingsCursor()
	case "n", "esc", "q":
		m.state = HoldingsViewing
	}
	return m, nil
}

func (m *Model) viewResettingHoldings() string {
	s := m.getText("reset.title") + "\n\n"
	s += m.getText("reset.confirmPrompt") + "\n"
	s += "\n" + m.getText("reset.helpText") + "\n"
	return s
}

// ============================================================================
// 汇总卡片视图（只读透传，本核心不重算任何指标）
// ============================================================================

func (m *Model) handleSummaryViewing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.state = MainMenu
	}
	return m, nil
}

func (m *Model) viewSummary() string {
	s := m.getText("summary.title") + "\n\n"

	t := table.NewWriter()
	t.SetStyle(tableStyleFromConfig(m.config))
	t.AppendRow(table.Row{m.getText("summary.totalInvested"), m.formatMoney(m.summary.TotalInvested)})
	t.AppendRow(table.Row{m.getText("summary.currentValue"), m.formatMoney(m.summary.CurrentValue)})
	t.AppendRow(table.Row{m.getText("summary.profitLoss"), m.formatProfitWithColorZeroLang(m.summary.ProfitLoss)})
	t.AppendRow(table.Row{m.getText("summary.roiPercent"), m.formatProfitRateWithColorZeroLang(m.summary.ROIPercent)})

	s += t.Render() + "\n"
	s += "\n" + m.getText("summary.helpText") + "\n"
	return s
}

// ============================================================================
// 语言选择
// ============================================================================

var languageOptions = []Language{Chinese, English}

func (m *Model) handleLanguageSelection(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.state = MainMenu
	case "up", "k", "w":
		if m.languageCursor > 0 {
			m.languageCursor--
		}
	case "down", "j", "s":
		if m.languageCursor < len(languageOptions)-1 {
			m.languageCursor++
		}
	case "enter", " ":
		m.language = languageOptions[m.languageCursor]
		m.config.System.Language = string(m.language)
		if err := saveConfig(m.config); err != nil {
			logError("log.config.saveFailed", err)
		}
		m.state = MainMenu
	}
	return m, nil
}

func (m *Model) viewLanguageSelection() string {
	s := m.getText("language.title") + "\n\n"

	labels := []string{"中文", "English"}
	for i, label := range labels {
		prefix := "  "
		if i == m.languageCursor {
			prefix = "► "
		}
		marker := ""
		if languageOptions[i] == m.language {
			marker = " ✓"
		}
		s += prefix + label + marker + "\n"
	}

	s += "\n" + m.getText("language.helpText") + "\n"
	return s
}
