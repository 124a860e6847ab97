package main

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ============================================================================
// Holdings Store - 持仓规范序列的唯一数据源
// ============================================================================
//
// 所有变更都通过整表替换（ReplaceAll）完成，变更后尽力而为地持久化。
// 持久化失败只记日志不上抛：内存中的规范序列在会话内始终有效。

// HoldingsStore 持仓存储，持有规范序列并协调对存储后端的读写
type HoldingsStore struct {
	kv      KVStore
	seed    []HoldingRecord
	records []HoldingRecord
}

// NewHoldingsStore 创建持仓存储（依赖注入存储后端与种子数据）
func NewHoldingsStore(kv KVStore, seed []HoldingRecord) *HoldingsStore {
	return &HoldingsStore{
		kv:   kv,
		seed: seed,
	}
}

// Holdings 返回当前规范序列
// 调用方不得原地修改返回的切片，变更必须通过 ReplaceAll 等方法进行。
func (s *HoldingsStore) Holdings() []HoldingRecord {
	return s.records
}

// Load 从存储后端加载持仓序列并安装为规范序列
// 键不存在、字节无法解析、或顶层不是数组时，一律静默回退到种子数据。
func (s *HoldingsStore) Load() []HoldingRecord {
	data, ok := s.kv.Get(holdingsKey)
	if !ok {
		logInfo("log.store.seedFallback")
		s.records = cloneHoldings(s.seed)
		return s.records
	}

	records, err := decodeHoldings(data)
	if err != nil {
		logWarn("log.store.corrupt", err)
		s.records = cloneHoldings(s.seed)
		return s.records
	}

	s.records = records
	logInfo("log.store.loaded", len(records))
	return s.records
}

// ReplaceAll 整表替换规范序列，随后尽力而为地持久化
// 本层不做字段校验（校验是外部协作者的职责）。
func (s *HoldingsStore) ReplaceAll(next []HoldingRecord) {
	s.records = next
	if err := s.persist(); err != nil {
		// 持久化是尽力而为的：失败只记日志，内存状态仍然有效
		logWarn("log.store.persistFailed", err)
	}
}

// persist 序列化规范序列并写入存储后端
// 内部返回 error 以便测试，公开路径（ReplaceAll/Reset）会吞掉失败。
func (s *HoldingsStore) persist() error {
	data, err := encodeHoldings(s.records)
	if err != nil {
		return err
	}
	return s.kv.Set(holdingsKey, data)
}

// Reset 丢弃已持久化的数据并重新安装种子序列
func (s *HoldingsStore) Reset() []HoldingRecord {
	if err := s.kv.Delete(holdingsKey); err != nil {
		logWarn("log.store.deleteFailed", err)
	}
	s.records = cloneHoldings(s.seed)
	if err := s.persist(); err != nil {
		logWarn("log.store.persistFailed", err)
	}
	logInfo("log.store.reset", len(s.records))
	return s.records
}

// ============================================================================
// 派生变更方法 - 均构造全新切片，不原地修改
// ============================================================================

// AddDefaultRow 追加一条占位记录（符号 "NEW"，数值全为零）
func (s *HoldingsStore) AddDefaultRow() {
	next := cloneHoldings(s.records)
	next = append(next, HoldingRecord{
		Symbol: "NEW",
		Name:   "New Asset",
	})
	s.ReplaceAll(next)
}

// UpdateRow 将 patch 中的非 nil 字段合并到 index 处的记录
// index 越界时不做任何事（调用方应只传来自当前序列的下标）。
func (s *HoldingsStore) UpdateRow(index int, patch HoldingPatch) {
	if index < 0 || index >= len(s.records) {
		return
	}

	next := cloneHoldings(s.records)
	record := &next[index]
	if patch.Symbol != nil {
		record.Symbol = *patch.Symbol
	}
	if patch.Name != nil {
		record.Name = *patch.Name
	}
	if patch.Amount != nil {
		record.Amount = *patch.Amount
	}
	if patch.AvgCost != nil {
		record.AvgCost = *patch.AvgCost
	}
	if patch.CurrentPrice != nil {
		record.CurrentPrice = *patch.CurrentPrice
	}
	if patch.Value != nil {
		record.Value = *patch.Value
	}
	if patch.PnL != nil {
		record.PnL = *patch.PnL
	}
	s.ReplaceAll(next)
}

// RemoveRow 移除 index 处的记录，后续记录下标前移一位
// index 越界时不做任何事。
func (s *HoldingsStore) RemoveRow(index int) {
	if index < 0 || index >= len(s.records) {
		return
	}

	next := make([]HoldingRecord, 0, len(s.records)-1)
	next = append(next, s.records[:index]...)
	next = append(next, s.records[index+1:]...)
	s.ReplaceAll(next)
}

// ============================================================================
// 编解码
// ============================================================================

// encodeHoldings 将持仓序列编码为 JSON 数组
func encodeHoldings(records []HoldingRecord) ([]byte, error) {
	return json.MarshalIndent(records, "", "  ")
}

// decodeHoldings 将字节解码为持仓序列
// 顶层必须是数组，其他任何形状（包括 null）都视为损坏并返回错误。
func decodeHoldings(data []byte) ([]HoldingRecord, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errors.New("persisted holdings is not a sequence")
	}

	var records []HoldingRecord
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []HoldingRecord{}
	}
	return records, nil
}

// cloneHoldings 复制持仓切片（记录为值类型，浅拷贝即为完整拷贝）
func cloneHoldings(records []HoldingRecord) []HoldingRecord {
	next := make([]HoldingRecord, len(records))
	copy(next, records)
	return next
}
