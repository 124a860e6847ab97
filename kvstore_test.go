package main

import (
	"bytes"
	"testing"
)

func TestFileKVStore(t *testing.T) {
	store := NewFileKVStore(t.TempDir())

	// 不存在的键
	if _, ok := store.Get("missing"); ok {
		t.Error("Get 不存在的键应返回 false")
	}

	// 写入后读回
	value := []byte(`[{"symbol":"BTC"}]`)
	if err := store.Set("cpt_holdings_v1", value); err != nil {
		t.Fatalf("Set 失败: %v", err)
	}
	got, ok := store.Get("cpt_holdings_v1")
	if !ok {
		t.Fatal("Set 之后 Get 应返回 true")
	}
	if !bytes.Equal(got, value) {
		t.Errorf("Get = %q, 期望 %q", got, value)
	}

	// 删除后读不到
	if err := store.Delete("cpt_holdings_v1"); err != nil {
		t.Fatalf("Delete 失败: %v", err)
	}
	if _, ok := store.Get("cpt_holdings_v1"); ok {
		t.Error("Delete 之后 Get 应返回 false")
	}

	// 删除不存在的键不算错误
	if err := store.Delete("missing"); err != nil {
		t.Errorf("Delete 不存在的键应返回 nil, 得到 %v", err)
	}
}

func TestFileKVStoreCreatesDir(t *testing.T) {
	// 数据目录不存在时 Set 应自动创建
	dir := t.TempDir() + "/nested/data"
	store := NewFileKVStore(dir)

	if err := store.Set("key", []byte("value")); err != nil {
		t.Fatalf("Set 应创建缺失的目录: %v", err)
	}
	if got, ok := store.Get("key"); !ok || string(got) != "value" {
		t.Errorf("Get = %q, %v, 期望 value, true", got, ok)
	}
}
