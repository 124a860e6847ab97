package main

import (
	"errors"
	"reflect"
	"testing"
)

// memKVStore 内存键值存储（测试用）
type memKVStore struct {
	data map[string][]byte
}

func newMemKVStore() *memKVStore {
	return &memKVStore{data: make(map[string][]byte)}
}

func (s *memKVStore) Get(key string) ([]byte, bool) {
	data, ok := s.data[key]
	return data, ok
}

func (s *memKVStore) Set(key string, value []byte) error {
	s.data[key] = value
	return nil
}

func (s *memKVStore) Delete(key string) error {
	delete(s.data, key)
	return nil
}

// failKVStore 写入总是失败的键值存储（测试持久化失败路径）
type failKVStore struct {
	memKVStore
}

func (s *failKVStore) Set(key string, value []byte) error {
	return errors.New("disk full")
}

func (s *failKVStore) Delete(key string) error {
	return errors.New("disk full")
}

// testSeed 测试用种子数据
func testSeed() []HoldingRecord {
	return []HoldingRecord{
		{Symbol: "BTC", Name: "Bitcoin", Amount: 0.5, AvgCost: 30000, CurrentPrice: 65000, Value: 32500, PnL: 17500},
		{Symbol: "ETH", Name: "Ethereum", Amount: 4, AvgCost: 2000, CurrentPrice: 3500, Value: 14000, PnL: 6000},
	}
}

func TestLoadSeedFallback(t *testing.T) {
	tests := []struct {
		data []byte // nil 表示键不存在
		desc string
	}{
		{nil, "键不存在"},
		{[]byte(""), "空字节"},
		{[]byte("   "), "纯空白"},
		{[]byte("not json at all"), "非JSON文本"},
		{[]byte("null"), "JSON null"},
		{[]byte(`{"symbol":"BTC"}`), "顶层是对象而非数组"},
		{[]byte(`"BTC"`), "顶层是字符串"},
		{[]byte(`[{"symbol":`), "截断的数组"},
	}

	for _, tt := range tests {
		kv := newMemKVStore()
		if tt.data != nil {
			kv.data[holdingsKey] = tt.data
		}

		store := NewHoldingsStore(kv, testSeed())
		got := store.Load()

		if !reflect.DeepEqual(got, testSeed()) {
			t.Errorf("%s: Load() = %v, 期望回退到种子数据", tt.desc, got)
		}
	}
}

func TestLoadRoundTrip(t *testing.T) {
	records := []HoldingRecord{
		{Symbol: "SOL", Name: "Solana", Amount: 20, AvgCost: 80, CurrentPrice: 150, Value: 3000, PnL: 1400},
	}
	data, err := encodeHoldings(records)
	if err != nil {
		t.Fatalf("encodeHoldings 失败: %v", err)
	}

	kv := newMemKVStore()
	kv.data[holdingsKey] = data

	store := NewHoldingsStore(kv, testSeed())
	got := store.Load()

	if !reflect.DeepEqual(got, records) {
		t.Errorf("Load() = %v, 期望加载持久化数据 %v", got, records)
	}
}

func TestLoadEmptyArray(t *testing.T) {
	// 空数组是合法的持久化状态，不应回退到种子数据
	kv := newMemKVStore()
	kv.data[holdingsKey] = []byte("[]")

	store := NewHoldingsStore(kv, testSeed())
	got := store.Load()

	if len(got) != 0 {
		t.Errorf("Load() = %v, 空数组应加载为空序列", got)
	}
}

func TestReplaceAllPersists(t *testing.T) {
	kv := newMemKVStore()
	store := NewHoldingsStore(kv, testSeed())
	store.Load()

	next := []HoldingRecord{{Symbol: "ADA", Name: "Cardano"}}
	store.ReplaceAll(next)

	if !reflect.DeepEqual(store.Holdings(), next) {
		t.Errorf("ReplaceAll 后 Holdings() = %v, 期望 %v", store.Holdings(), next)
	}

	data, ok := kv.Get(holdingsKey)
	if !ok {
		t.Fatal("ReplaceAll 后存储中没有持久化数据")
	}
	decoded, err := decodeHoldings(data)
	if err != nil {
		t.Fatalf("持久化数据无法解码: %v", err)
	}
	if !reflect.DeepEqual(decoded, next) {
		t.Errorf("持久化数据 = %v, 期望 %v", decoded, next)
	}
}

func TestReplaceAllPersistFailureKeepsMemoryState(t *testing.T) {
	// 持久化失败是尽力而为的：内存状态必须保持有效
	store := NewHoldingsStore(&failKVStore{}, testSeed())
	store.Load()

	next := []HoldingRecord{{Symbol: "XRP", Name: "XRP"}}
	store.ReplaceAll(next)

	if !reflect.DeepEqual(store.Holdings(), next) {
		t.Errorf("持久化失败后 Holdings() = %v, 期望内存状态仍为 %v", store.Holdings(), next)
	}
}

func TestReset(t *testing.T) {
	kv := newMemKVStore()
	kv.data[holdingsKey] = []byte(`[{"symbol":"DOGE","name":"Dogecoin"}]`)

	store := NewHoldingsStore(kv, testSeed())
	store.Load()
	got := store.Reset()

	if !reflect.DeepEqual(got, testSeed()) {
		t.Errorf("Reset() = %v, 期望种子数据", got)
	}

	// 重置后持久化的应是种子数据
	data, ok := kv.Get(holdingsKey)
	if !ok {
		t.Fatal("Reset 后存储中没有持久化数据")
	}
	decoded, err := decodeHoldings(data)
	if err != nil {
		t.Fatalf("持久化数据无法解码: %v", err)
	}
	if !reflect.DeepEqual(decoded, testSeed()) {
		t.Errorf("Reset 后持久化数据 = %v, 期望种子数据", decoded)
	}
}

func TestResetDeleteFailureStillInstallsSeed(t *testing.T) {
	store := NewHoldingsStore(&failKVStore{}, testSeed())
	store.Load()
	store.RemoveRow(0)

	got := store.Reset()
	if !reflect.DeepEqual(got, testSeed()) {
		t.Errorf("删除失败时 Reset() = %v, 期望仍安装种子数据", got)
	}
}

func TestAddDefaultRow(t *testing.T) {
	store := NewHoldingsStore(newMemKVStore(), testSeed())
	store.Load()

	before := store.Holdings()
	beforeCopy := cloneHoldings(before)

	store.AddDefaultRow()

	after := store.Holdings()
	if len(after) != len(before)+1 {
		t.Fatalf("AddDefaultRow 后长度 = %d, 期望 %d", len(after), len(before)+1)
	}

	added := after[len(after)-1]
	expected := HoldingRecord{Symbol: "NEW", Name: "New Asset"}
	if added != expected {
		t.Errorf("占位记录 = %v, 期望 %v", added, expected)
	}

	// 之前返回的切片不应被修改
	if !reflect.DeepEqual(before, beforeCopy) {
		t.Errorf("AddDefaultRow 原地修改了之前返回的切片")
	}
}

func TestUpdateRow(t *testing.T) {
	symbol := "WBTC"
	amount := 1.5

	tests := []struct {
		index    int
		patch    HoldingPatch
		expected HoldingRecord // 对 index 处记录的期望
		desc     string
	}{
		{
			index:    0,
			patch:    HoldingPatch{Symbol: &symbol},
			expected: HoldingRecord{Symbol: "WBTC", Name: "Bitcoin", Amount: 0.5, AvgCost: 30000, CurrentPrice: 65000, Value: 32500, PnL: 17500},
			desc:     "只更新符号，其他字段保留",
		},
		{
			index:    1,
			patch:    HoldingPatch{Amount: &amount},
			expected: HoldingRecord{Symbol: "ETH", Name: "Ethereum", Amount: 1.5, AvgCost: 2000, CurrentPrice: 3500, Value: 14000, PnL: 6000},
			desc:     "更新数量，透传字段 Value/PnL 不变",
		},
	}

	for _, tt := range tests {
		store := NewHoldingsStore(newMemKVStore(), testSeed())
		store.Load()

		store.UpdateRow(tt.index, tt.patch)

		got := store.Holdings()[tt.index]
		if got != tt.expected {
			t.Errorf("%s: UpdateRow 后记录 = %v, 期望 %v", tt.desc, got, tt.expected)
		}
	}
}

func TestUpdateRowOutOfRange(t *testing.T) {
	symbol := "XXX"

	tests := []struct {
		index int
		desc  string
	}{
		{-1, "负下标"},
		{2, "等于长度"},
		{100, "远超长度"},
	}

	for _, tt := range tests {
		store := NewHoldingsStore(newMemKVStore(), testSeed())
		store.Load()

		store.UpdateRow(tt.index, HoldingPatch{Symbol: &symbol})

		if !reflect.DeepEqual(store.Holdings(), testSeed()) {
			t.Errorf("%s: 越界 UpdateRow 应不做任何事", tt.desc)
		}
	}
}

func TestRemoveRow(t *testing.T) {
	store := NewHoldingsStore(newMemKVStore(), testSeed())
	store.Load()

	store.RemoveRow(0)

	got := store.Holdings()
	if len(got) != 1 || got[0].Symbol != "ETH" {
		t.Errorf("RemoveRow(0) 后 Holdings() = %v, 期望只剩 ETH", got)
	}
}

func TestRemoveRowOutOfRange(t *testing.T) {
	tests := []struct {
		index int
		desc  string
	}{
		{-1, "负下标"},
		{2, "等于长度"},
		{100, "远超长度"},
	}

	for _, tt := range tests {
		store := NewHoldingsStore(newMemKVStore(), testSeed())
		store.Load()

		store.RemoveRow(tt.index)

		if !reflect.DeepEqual(store.Holdings(), testSeed()) {
			t.Errorf("%s: 越界 RemoveRow 应不做任何事", tt.desc)
		}
	}
}

func TestDecodeHoldingsRejectsNonArray(t *testing.T) {
	tests := []struct {
		data    []byte
		wantErr bool
		desc    string
	}{
		{[]byte("[]"), false, "空数组合法"},
		{[]byte(`[{"symbol":"BTC"}]`), false, "单元素数组合法"},
		{[]byte("  [ ]  "), false, "带空白的数组合法"},
		{[]byte("null"), true, "null 视为损坏"},
		{[]byte("{}"), true, "对象视为损坏"},
		{[]byte("42"), true, "数字视为损坏"},
		{[]byte(""), true, "空字节视为损坏"},
	}

	for _, tt := range tests {
		_, err := decodeHoldings(tt.data)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: decodeHoldings(%q) err = %v, wantErr = %v", tt.desc, tt.data, err, tt.wantErr)
		}
	}
}
