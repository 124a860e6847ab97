package main

// ============================================================================
// 种子数据提供者
// ============================================================================
//
// 当存储后端没有数据或数据损坏时，核心回退到这里的内置持仓列表。
// 汇总数据由外部校验器预先计算，这里只负责透传，核心不做任何重算。

// seedHoldings 返回内置默认持仓列表（每次调用返回新的切片）
func seedHoldings() []HoldingRecord {
	return []HoldingRecord{
		{Symbol: "BTC", Name: "Bitcoin", Amount: 0.5, AvgCost: 30000, CurrentPrice: 65000, Value: 32500, PnL: 17500},
		{Symbol: "ETH", Name: "Ethereum", Amount: 4, AvgCost: 2000, CurrentPrice: 3500, Value: 14000, PnL: 6000},
		{Symbol: "ADA", Name: "Cardano", Amount: 1000, AvgCost: 0.45, CurrentPrice: 1.1, Value: 1100, PnL: 650},
		{Symbol: "SOL", Name: "Solana", Amount: 20, AvgCost: 80, CurrentPrice: 150, Value: 3000, PnL: 1400},
		{Symbol: "DOGE", Name: "Dogecoin", Amount: 5000, AvgCost: 0.08, CurrentPrice: 0.12, Value: 600, PnL: 200},
		{Symbol: "HBAR", Name: "Hedera", Amount: 2000, AvgCost: 0.06, CurrentPrice: 0.09, Value: 180, PnL: 60},
		{Symbol: "XRP", Name: "Ripple", Amount: 800, AvgCost: 0.5, CurrentPrice: 0.55, Value: 440, PnL: 40},
		{Symbol: "XLM", Name: "Stellar", Amount: 1500, AvgCost: 0.1, CurrentPrice: 0.12, Value: 180, PnL: 30},
	}
}

// seedSummary 返回与种子持仓对应的汇总数据（只读透传）
func seedSummary() Summary {
	return Summary{
		TotalInvested: 26120,
		CurrentValue:  52000,
		ProfitLoss:    25880,
		ROIPercent:    99.08,
	}
}
