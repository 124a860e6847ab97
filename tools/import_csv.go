package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// 交易记录 CSV 导入工具
// 读取交易流水 CSV，按币种聚合为持仓记录，写入 data/cpt_holdings_v1.json。
// 用法: go run tools/import_csv.go <transactions.csv>

// requiredColumns 交易 CSV 必须包含的列（Notes 列可选）
var requiredColumns = []string{
	"Date of Purchase",
	"Coin Type",
	"Quantity",
	"Cost per Coin (USD)",
}

// coinAliases 币种别名 -> 标准符号和名称
var coinAliases = map[string][2]string{
	"bitcoin":  {"BTC", "Bitcoin"},
	"btc":      {"BTC", "Bitcoin"},
	"ethereum": {"ETH", "Ethereum"},
	"eth":      {"ETH", "Ethereum"},
	"cardano":  {"ADA", "Cardano"},
	"ada":      {"ADA", "Cardano"},
	"solana":   {"SOL", "Solana"},
	"sol":      {"SOL", "Solana"},
	"dogecoin": {"DOGE", "Dogecoin"},
	"doge":     {"DOGE", "Dogecoin"},
	"hedera":   {"HBAR", "Hedera"},
	"hbar":     {"HBAR", "Hedera"},
	"ripple":   {"XRP", "Ripple"},
	"xrp":      {"XRP", "Ripple"},
	"stellar":  {"XLM", "Stellar"},
	"xlm":      {"XLM", "Stellar"},
}

// holdingRecord 输出的持仓记录结构（与主程序的持久化格式一致）
// Value/PnL 留空为0，由主程序的数据提供方填充。
type holdingRecord struct {
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	Amount       float64 `json:"amount"`
	AvgCost      float64 `json:"avg_cost"`
	CurrentPrice float64 `json:"current_price"`
	Value        float64 `json:"value"`
	PnL          float64 `json:"pnl"`
}

func main() {
	fmt.Println("=== 交易记录 CSV 导入工具 ===")

	if len(os.Args) < 2 {
		fmt.Println("❌ 用法: go run tools/import_csv.go <transactions.csv>")
		os.Exit(1)
	}
	csvPath := os.Args[1]

	file, err := os.Open(csvPath)
	if err != nil {
		fmt.Printf("❌ 打开文件失败: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		fmt.Printf("❌ 解析 CSV 失败: %v\n", err)
		os.Exit(1)
	}
	if len(rows) < 2 {
		fmt.Println("❌ CSV 中没有交易记录")
		os.Exit(1)
	}

	// 校验表头并建立列索引
	colIndex, err := buildColumnIndex(rows[0])
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	// 按币种聚合：总数量 + 加权平均成本
	type position struct {
		symbol    string
		name      string
		amount    float64
		totalCost float64
	}
	positions := make(map[string]*position)
	order := []string{}
	skipped := 0

	for i, row := range rows[1:] {
		coinType := strings.ToLower(strings.TrimSpace(row[colIndex["Coin Type"]]))
		alias, ok := coinAliases[coinType]
		if !ok {
			fmt.Printf("⚠️  第 %d 行: 未知币种 %q，已跳过\n", i+2, coinType)
			skipped++
			continue
		}

		quantity, err1 := strconv.ParseFloat(strings.TrimSpace(row[colIndex["Quantity"]]), 64)
		cost, err2 := strconv.ParseFloat(strings.TrimSpace(row[colIndex["Cost per Coin (USD)"]]), 64)
		if err1 != nil || err2 != nil {
			fmt.Printf("⚠️  第 %d 行: 数量或成本无法解析，已跳过\n", i+2)
			skipped++
			continue
		}

		symbol := alias[0]
		p, exists := positions[symbol]
		if !exists {
			p = &position{symbol: symbol, name: alias[1]}
			positions[symbol] = p
			order = append(order, symbol)
		}
		p.amount += quantity
		p.totalCost += quantity * cost
	}

	if len(positions) == 0 {
		fmt.Println("❌ 没有可导入的持仓")
		os.Exit(1)
	}

	// 构建持仓记录（保持首次出现顺序）
	records := make([]holdingRecord, 0, len(positions))
	for _, symbol := range order {
		p := positions[symbol]
		avgCost := 0.0
		if p.amount != 0 {
			avgCost = p.totalCost / p.amount
		}
		records = append(records, holdingRecord{
			Symbol:  p.symbol,
			Name:    p.name,
			Amount:  p.amount,
			AvgCost: avgCost,
		})
		fmt.Printf("📦 %-5s %-10s 数量=%.4f 均价=%.4f\n", p.symbol, p.name, p.amount, avgCost)
	}

	// 写入主程序的持久化位置
	outPath := filepath.Join("data", "cpt_holdings_v1.json")
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		fmt.Printf("❌ 序列化失败: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		fmt.Printf("❌ 创建数据目录失败: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		fmt.Printf("❌ 写入失败: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Printf("✅ 已导入 %d 个持仓到 %s", len(records), outPath)
	if skipped > 0 {
		fmt.Printf("（跳过 %d 行）", skipped)
	}
	fmt.Println()
	fmt.Println("💡 导入的持仓现价/市值/盈亏为0，请在主程序中编辑补充")
	fmt.Println(strings.Repeat("=", 50))
}

// buildColumnIndex 校验必需列并返回列名到下标的映射
func buildColumnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, required := range requiredColumns {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("CSV 缺少必需列: %q", required)
		}
	}
	return index, nil
}
