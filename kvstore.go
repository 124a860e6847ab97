package main

import (
	"os"
	"path/filepath"
)

// ============================================================================
// 字节键值存储后端
// ============================================================================

// KVStore 字节键值存储接口
// Get 返回键对应的字节与是否存在；Set/Delete 的失败由调用方自行决定是否忽略。
type KVStore interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Delete(key string) error
}

// FileKVStore 基于文件的键值存储：每个键对应数据目录下的一个 JSON 文件
type FileKVStore struct {
	dir string
}

// NewFileKVStore 创建文件键值存储
func NewFileKVStore(dir string) *FileKVStore {
	return &FileKVStore{dir: dir}
}

// path 返回键对应的文件路径
func (s *FileKVStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get 读取键对应的字节，文件不存在或不可读时返回 (nil, false)
func (s *FileKVStore) Get(key string) ([]byte, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set 写入键对应的字节（必要时创建数据目录）
func (s *FileKVStore) Set(key string, value []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(s.path(key), value, 0644)
}

// Delete 删除键，键不存在不算错误
func (s *FileKVStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
