package main

// 文件路径常量
const (
	dataDir    = "data"
	configFile = "conf/config.yml"
	logDir     = "logs"

	// holdingsKey 持仓数据在存储后端中的固定键
	holdingsKey = "cpt_holdings_v1"
)

// 语言常量
type Language string

const (
	Chinese Language = "zh"
	English Language = "en"
)

// 应用状态常量
type AppState int

const (
	MainMenu AppState = iota
	HoldingsViewing   // 持仓表格视图
	HoldingsSearching // 持仓搜索输入状态
	HoldingsSorting   // 持仓排序菜单状态
	HoldingsEditing   // 持仓编辑状态
	RemovingHolding   // 删除确认状态
	ResettingHoldings // 重置确认状态
	SummaryViewing    // 汇总卡片视图
	AllocationChart   // 持仓分布图表视图
	LanguageSelection
)

// 排序键枚举
type SortKey int

const (
	SortByValueDesc SortKey = iota // 市值降序（默认）
	SortBySymbol                   // 币种代码升序（本地化排序）
	SortByPnlDesc                  // 盈亏降序
	SortByPnlAsc                   // 盈亏升序
)

// sortKeyNames 排序键的配置名称（用于 config.yml 和日志）
var sortKeyNames = map[SortKey]string{
	SortByValueDesc: "value_desc",
	SortBySymbol:    "symbol",
	SortByPnlDesc:   "pnl_desc",
	SortByPnlAsc:    "pnl_asc",
}

// ParseSortKey 解析排序键名称，无法识别时回退到市值降序
func ParseSortKey(name string) SortKey {
	for key, n := range sortKeyNames {
		if n == name {
			return key
		}
	}
	return SortByValueDesc
}

// String 返回排序键的配置名称
func (k SortKey) String() string {
	if n, ok := sortKeyNames[k]; ok {
		return n
	}
	return sortKeyNames[SortByValueDesc]
}
