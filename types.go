package main

// HoldingRecord 持仓记录数据结构
// Value 和 PnL 为透传字段：由种子数据/外部校验器提供，
// 本核心在编辑 Amount/AvgCost 时不会重新计算它们。
type HoldingRecord struct {
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	Amount       float64 `json:"amount"`
	AvgCost      float64 `json:"avg_cost"`
	CurrentPrice float64 `json:"current_price"`
	Value        float64 `json:"value"` // 透传，不由本核心计算
	PnL          float64 `json:"pnl"`   // 透传，不由本核心计算
}

// HoldingPatch 持仓记录的部分更新（nil 字段保持原值）
type HoldingPatch struct {
	Symbol       *string
	Name         *string
	Amount       *float64
	AvgCost      *float64
	CurrentPrice *float64
	Value        *float64
	PnL          *float64
}

// Summary 汇总数据（由外部校验器计算，本核心只读透传）
type Summary struct {
	TotalInvested float64 `json:"total_invested"`
	CurrentValue  float64 `json:"current_value"`
	ProfitLoss    float64 `json:"profit_loss"`
	ROIPercent    float64 `json:"roi_percent"`
}

// Config 系统配置结构
type Config struct {
	System  SystemConfig  `yaml:"system"`  // 系统设置
	Display DisplayConfig `yaml:"display"` // 显示设置
	Update  UpdateConfig  `yaml:"update"`  // 更新设置
}

// SystemConfig 系统设置
type SystemConfig struct {
	Language  string `yaml:"language"`   // 默认语言 "zh" 或 "en"
	DebugMode bool   `yaml:"debug_mode"` // 调试日志开关（降低日志级别到 DEBUG）
}

// DisplayConfig 显示设置
type DisplayConfig struct {
	ColorScheme   string `yaml:"color_scheme"`   // 颜色方案 "professional", "simple"
	DecimalPlaces int    `yaml:"decimal_places"` // 价格显示小数位数
	TableStyle    string `yaml:"table_style"`    // 表格样式 "light", "bold", "simple"
	MaxLines      int    `yaml:"max_lines"`      // 表格每页最大显示行数
	DefaultSort   string `yaml:"default_sort"`   // 打开表格时的默认排序键
}

// UpdateConfig 更新设置
type UpdateConfig struct {
	AutoSave bool `yaml:"auto_save"` // 变更后是否自动持久化（尽力而为）
}

// TextMap 文本映射结构（用于i18n）
type TextMap map[string]string

// Model 应用程序主模型
type Model struct {
	state           AppState
	currentMenuItem int
	cursor          int
	message         string
	config          Config
	language        Language

	// 核心状态：持仓存储与汇总透传
	store   *HoldingsStore
	summary Summary
	sorter  HoldingSorter

	// 视图查询状态（每次进入表格视图时重建）
	searchInput       string
	searchInputCursor int // 搜索输入光标位置
	sortKey           SortKey
	sortCursor        int // 排序菜单光标位置

	// 表格滚动状态
	holdingsCursor    int // 表格当前选中行（基于投影后的列表）
	holdingsScrollPos int // 表格滚动位置

	// 编辑流程状态
	editingStep        int // 0=选择记录, 1..5=逐字段编辑
	selectedIndex      int // 被编辑/删除记录在规范序列中的下标
	editInput          string
	editInputCursor    int

	// 语言选择
	languageCursor int
}
