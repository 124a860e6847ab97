package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ============================================================================
// Config 配置文件持久化
// ============================================================================

// getDefaultConfig 获取默认配置
func getDefaultConfig() Config {
	return Config{
		System: SystemConfig{
			Language:  "en",  // 默认英文
			DebugMode: false, // 调试日志关闭
		},
		Display: DisplayConfig{
			ColorScheme:   "professional", // 专业配色方案
			DecimalPlaces: 2,              // 2位小数
			TableStyle:    "light",        // 轻量表格样式
			MaxLines:      10,             // 默认每页显示10行
			DefaultSort:   "value_desc",   // 默认按市值降序
		},
		Update: UpdateConfig{
			AutoSave: true, // 变更后自动持久化
		},
	}
}

// loadConfig 加载配置文件
func loadConfig() Config {
	data, err := os.ReadFile(configFile)
	if err != nil {
		// 如果配置文件不存在，创建默认配置文件
		config := getDefaultConfig()
		saveConfig(config)
		return config
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		// 如果配置文件格式错误，使用默认配置
		return getDefaultConfig()
	}

	// 验证配置的合理性
	if config.Display.MaxLines <= 0 || config.Display.MaxLines > 50 {
		config.Display.MaxLines = 10 // 默认值
	}
	if config.Display.DecimalPlaces < 0 || config.Display.DecimalPlaces > 8 {
		config.Display.DecimalPlaces = 2
	}
	if config.Display.DefaultSort == "" {
		config.Display.DefaultSort = "value_desc"
	}

	return config
}

// saveConfig 保存配置文件
func saveConfig(config Config) error {
	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(configFile, data, 0644)
}
